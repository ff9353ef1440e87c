package commands

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// NewTestCmd creates the test command
func NewTestCmd() *cobra.Command {
	var baseURL string
	var origin string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Probe a running instance",
		Long:  "Call / and /health on a running instance and report status, body and CORS headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
			if baseURL == "" {
				return fmt.Errorf("--url is required")
			}

			client := &http.Client{Timeout: timeout}
			out := cmd.OutOrStdout()

			var failed []string
			for _, path := range []string{"/", "/health"} {
				fmt.Fprintf(out, "\nTesting %s%s\n", baseURL, path)
				if err := probe(client, out, baseURL+path, origin); err != nil {
					fmt.Fprintf(out, "✗ %v\n", err)
					failed = append(failed, path)
					continue
				}
				fmt.Fprintln(out, "✓ OK")
			}

			if len(failed) > 0 {
				return fmt.Errorf("probe failed for %s", strings.Join(failed, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8000", "Base URL of the running instance")
	cmd.Flags().StringVar(&origin, "origin", "", "Origin header to send; CORS headers are checked when set")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Per-request timeout")
	return cmd
}

func probe(client *http.Client, out io.Writer, url, origin string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if origin != "" {
		req.Header.Set("Origin", origin)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	fmt.Fprintf(out, "  Status: %d\n", resp.StatusCode)
	fmt.Fprintf(out, "  Body: %s\n", strings.TrimSpace(string(body)))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if origin == "" {
		return nil
	}
	allowOrigin := resp.Header.Get("Access-Control-Allow-Origin")
	fmt.Fprintf(out, "  Access-Control-Allow-Origin: %s\n", allowOrigin)
	fmt.Fprintf(out, "  Access-Control-Allow-Credentials: %s\n", resp.Header.Get("Access-Control-Allow-Credentials"))
	if allowOrigin != origin {
		return fmt.Errorf("origin %s is not allowed", origin)
	}
	return nil
}
