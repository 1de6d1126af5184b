package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vaultledger-cli",
		Short: "VaultLedger CLI tool",
		Long:  `A command line interface for interacting with the VaultLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the VaultLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Vault commands
	vaultCmd := &cobra.Command{
		Use:   "vault",
		Short: "Vault operations",
	}

	vaultCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List vaults",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/vaults/")
		},
	})

	vaultCmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a vault's balance and denomination holding",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/vaults/" + url.PathEscape(args[0]))
		},
	})

	var certificateDate string
	certificateCmd := &cobra.Command{
		Use:   "certificate <id>",
		Short: "Build a vault's balance certificate",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/vaults/" + url.PathEscape(args[0]) + "/certificate"
			if certificateDate != "" {
				path += "?date=" + url.QueryEscape(certificateDate)
			}
			getJSON(path)
		},
	}
	certificateCmd.Flags().StringVar(&certificateDate, "date", "", "Certificate date (YYYY-MM-DD, defaults to today)")
	vaultCmd.AddCommand(certificateCmd)
	rootCmd.AddCommand(vaultCmd)

	// Cash count commands
	cashCountCmd := &cobra.Command{
		Use:   "cash-counts",
		Short: "Cash count operations",
	}

	var countStatus string
	listCountsCmd := &cobra.Command{
		Use:   "list",
		Short: "List cash counts",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/cash-counts/?status=" + url.QueryEscape(countStatus))
		},
	}
	listCountsCmd.Flags().StringVar(&countStatus, "status", "pending", "Filter by status (pending or received)")
	cashCountCmd.AddCommand(listCountsCmd)
	rootCmd.AddCommand(cashCountCmd)

	// Processing history
	processingCmd := &cobra.Command{
		Use:   "processing",
		Short: "Reconciliation audit records",
	}

	processingCmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "List reconciliation records, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/cash-processing")
		},
	})
	rootCmd.AddCommand(processingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// getJSON fetches a path from the API and pretty-prints the JSON response.
func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, truncate(string(body), 2000))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
