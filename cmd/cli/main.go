package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	userID  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paycore-cli",
		Short: "PayCore CLI tool",
		Long:  `A command line interface for interacting with the PayCore API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the PayCore API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "Caller user id sent as X-User-Id")

	rootCmd.AddCommand(accountCmd(), transferCmd(), entriesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var currency string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/accounts", map[string]string{"currency": currency}, "")
		},
	}
	createCmd.Flags().StringVar(&currency, "currency", "EUR", "ISO 4217 currency code")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your accounts",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/accounts", nil, "")
		},
	}

	getCmd := &cobra.Command{
		Use:   "get IBAN",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/accounts/"+args[0], nil, "")
		},
	}

	var amount string
	depositCmd := &cobra.Command{
		Use:   "deposit IBAN",
		Short: "Deposit funds into an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/accounts/"+args[0]+"/deposits", map[string]string{"amount": amount}, "")
		},
	}
	depositCmd.Flags().StringVar(&amount, "amount", "", "Amount to deposit")

	cmd.AddCommand(createCmd, listCmd, getCmd, depositCmd)
	return cmd
}

func transferCmd() *cobra.Command {
	var from, to, amount, correlationID string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Execute a funds transfer",
		Run: func(cmd *cobra.Command, args []string) {
			if correlationID == "" {
				correlationID = newCorrelationID()
				fmt.Printf("Correlation-ID: %s\n", correlationID)
			}
			doRequest(http.MethodPost, "/api/v1/transfers", map[string]string{
				"fromIban": from,
				"toIban":   to,
				"amount":   amount,
			}, correlationID)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Source IBAN")
	cmd.Flags().StringVar(&to, "to", "", "Destination IBAN")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to transfer")
	cmd.Flags().StringVar(&correlationID, "correlation", "", "Idempotency key (generated when empty)")

	return cmd
}

func entriesCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "entries IBAN",
		Short: "List ledger entries for an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := fmt.Sprintf("/api/v1/accounts/%s/entries?limit=%d&offset=%d", args[0], limit, offset)
			doRequest(http.MethodGet, path, nil, "")
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func newCorrelationID() string {
	return ulid.Make().String()
}

func doRequest(method, path string, body map[string]string, correlationID string) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	if correlationID != "" {
		req.Header.Set("X-Correlation-ID", correlationID)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	fmt.Printf("Status: %d\n", resp.StatusCode)
	if len(respBody) > 0 {
		printRawJSON(respBody)
	}

	if resp.StatusCode >= 400 {
		os.Exit(1)
	}
}

func printRawJSON(data []byte) {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return
	}
	fmt.Println(out.String())
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
