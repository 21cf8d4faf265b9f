package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL string
	timeout time.Duration

	// swapped in tests
	bcryptGenerate = bcrypt.GenerateFromPassword
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rollinpos-cli",
		Short: "Rollin POS admin CLI",
		Long:  `A command line interface for the Rollin POS bookkeeping API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Rollin POS API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(balancesCmd())
	rootCmd.AddCommand(snapshotCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func balancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "List running balances for every account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/cash-balances/")
		},
	}
}

func snapshotCmd() *cobra.Command {
	var kind, id, date string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Compute one account's daily snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{
				"account_kind": kind,
				"account_id":   id,
			}
			if date != "" {
				payload["date"] = date
			}

			return postJSON("/api/v1/cash-history/compute", payload)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "store", "Account kind (store or savings)")
	cmd.Flags().StringVar(&id, "id", "", "Account ID")
	cmd.Flags().StringVar(&date, "date", "", "Snapshot date (YYYY-MM-DD, defaults to today)")
	cmd.MarkFlagRequired("id")

	return cmd
}

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile [kind id]",
		Short: "Compare stored balances against the transaction log",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/reconciliation/"
			if len(args) == 2 {
				path += url.PathEscape(args[0]) + "/" + url.PathEscape(args[1])
			}

			return getJSON(path)
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Generate a bcrypt hash for seeding users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			fmt.Println(string(hash))
			return nil
		},
	}
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", strings.NewReader(string(body)))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(body), 500))
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(decoded)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%+v\n", v)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
