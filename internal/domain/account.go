package domain

import (
	"time"
)

// AccountKind discriminates the two funding-source variants.
type AccountKind string

const (
	KindStore   AccountKind = "store"
	KindSavings AccountKind = "savings"
)

// IsValid checks if the kind is a known account kind.
func (k AccountKind) IsValid() bool {
	return k == KindStore || k == KindSavings
}

// AccountRef is a typed reference to either a store or a savings account.
// Construct via StoreRef/SavingsRef so a kind/id mismatch cannot exist.
type AccountRef struct {
	Kind AccountKind
	ID   string
}

// StoreRef returns a reference to a store account.
func StoreRef(id string) AccountRef {
	return AccountRef{Kind: KindStore, ID: id}
}

// SavingsRef returns a reference to a savings account.
func SavingsRef(id string) AccountRef {
	return AccountRef{Kind: KindSavings, ID: id}
}

// Validate checks that the reference is complete.
func (r AccountRef) Validate() error {
	if !r.Kind.IsValid() {
		return ErrInvalidAccountKind
	}

	if r.ID == "" {
		return ErrMissingAccountID
	}

	return nil
}

// Equal reports whether two references point at the same account.
func (r AccountRef) Equal(other AccountRef) bool {
	return r.Kind == other.Kind && r.ID == other.ID
}

// AccountStatus is the lifecycle state of a store or savings account.
type AccountStatus string

const (
	StatusActive   AccountStatus = "active"
	StatusInactive AccountStatus = "inactive"
	StatusStopped  AccountStatus = "stopped"
)

// IsValid checks if the status is a known lifecycle state.
func (s AccountStatus) IsValid() bool {
	return s == StatusActive || s == StatusInactive || s == StatusStopped
}

// Store represents a point-of-sale branch whose cash position is tracked.
type Store struct {
	ID        string
	Code      string
	Branch    string
	Address   string
	Phone     string
	Email     string
	Status    AccountStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks required store fields.
func (s *Store) Validate() error {
	if s.Code == "" {
		return ErrMissingStoreCode
	}

	if s.Branch == "" {
		return ErrMissingBranch
	}

	if s.Address == "" {
		return ErrMissingAddress
	}

	if !s.Status.IsValid() {
		return ErrInvalidStatus
	}

	return nil
}

// Ref returns the account reference for the store.
func (s *Store) Ref() AccountRef {
	return StoreRef(s.ID)
}

// CanTransact reports whether the store may take part in new postings.
func (s *Store) CanTransact() bool {
	return s.Status == StatusActive
}

// SavingsAccount represents a bank savings account used to park cash.
type SavingsAccount struct {
	ID            string
	Code          string
	Name          string
	AccountType   string
	BankName      string
	AccountNumber string
	Status        AccountStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks required savings account fields.
func (a *SavingsAccount) Validate() error {
	if a.Code == "" {
		return ErrMissingAccountCode
	}

	if a.Name == "" {
		return ErrMissingAccountName
	}

	if a.AccountType == "" {
		return ErrMissingAccountType
	}

	if !a.Status.IsValid() {
		return ErrInvalidStatus
	}

	return nil
}

// Ref returns the account reference for the savings account.
func (a *SavingsAccount) Ref() AccountRef {
	return SavingsRef(a.ID)
}

// CanTransact reports whether the account may take part in new postings.
func (a *SavingsAccount) CanTransact() bool {
	return a.Status == StatusActive
}
