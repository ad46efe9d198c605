package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "payledger-cli",
		Short: "PayLedger CLI tool",
		Long:  `A command line interface for interacting with the PayLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:5000", "Base URL of the PayLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token (fetched automatically when empty)")

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Fetch a demo API token",
		Run: func(cmd *cobra.Command, args []string) {
			fetchToken(true)
		},
	}
	rootCmd.AddCommand(tokenCmd)

	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	accountsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/accounts")
		},
	}

	accountsCmd.AddCommand(accountsListCmd)
	rootCmd.AddCommand(accountsCmd)

	paymentsCmd := &cobra.Command{
		Use:   "payments",
		Short: "Payment operations",
	}

	paymentsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/payments")
		},
	}

	paymentsRecentCmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recent payments",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/payments/recent")
		},
	}

	paymentsCmd.AddCommand(paymentsListCmd, paymentsRecentCmd)
	rootCmd.AddCommand(paymentsCmd)

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard summary",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/dashboard/summary")
		},
	}
	rootCmd.AddCommand(dashboardCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// fetchToken requests a demo token. When print is true the token is written
// to stdout, otherwise it is stored for the current invocation.
func fetchToken(print bool) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/auth/token", "application/json", nil)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Token request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	token = result.Data.Token
	if print {
		fmt.Println(token)
	}
}

func getJSON(path string) {
	if token == "" {
		fetchToken(false)
	}

	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty json.RawMessage = body
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		fmt.Println(string(body))
		return
	}

	fmt.Println(string(out))
}
