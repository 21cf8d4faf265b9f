package usecase

import "time"

// IdempotencyKeyTTL is how long idempotency keys are cached.
const IdempotencyKeyTTL = 24 * time.Hour
