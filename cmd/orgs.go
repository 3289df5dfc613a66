// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/caseflow/internal/identity"
	"github.com/canonical/caseflow/internal/types"
)

var (
	httpEndpoint string
	bearerToken  string
	userID       string
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Manage organizations",
}

var listOrgsCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations for the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Organizations []*types.Organization `json:"organizations"`
			Active        *types.Organization   `json:"active"`
		}
		if err := apiRequest(http.MethodGet, "/api/v0/orgs", nil, &resp); err != nil {
			return fmt.Errorf("failed to list organizations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tACTIVE\tCREATED_AT")
		for _, o := range resp.Organizations {
			active := ""
			if resp.Active != nil && resp.Active.ID == o.ID {
				active = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Name, active, o.CreatedAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

var createOrgCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var org types.Organization
		if err := apiRequest(http.MethodPost, "/api/v0/orgs", map[string]string{"name": args[0]}, &org); err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		fmt.Printf("Organization created: %s (ID: %s)\n", org.Name, org.ID)
		return nil
	},
}

var deleteOrgCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := apiRequest(http.MethodDelete, "/api/v0/orgs/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete organization: %w", err)
		}

		fmt.Printf("Organization deleted: %s\n", args[0])
		return nil
	},
}

var setActiveOrgCmd = &cobra.Command{
	Use:   "set-active [id]",
	Short: "Set the active organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := apiRequest(http.MethodPost, "/api/v0/orgs/active", map[string]string{"org_id": args[0]}, nil); err != nil {
			return fmt.Errorf("failed to set active organization: %w", err)
		}

		fmt.Printf("Active organization: %s\n", args[0])
		return nil
	},
}

func init() {
	orgsCmd.AddCommand(listOrgsCmd, createOrgCmd, deleteOrgCmd, setActiveOrgCmd)
	rootCmd.AddCommand(orgsCmd)

	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8080", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "token", "", "Bearer token for authentication")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "", "User ID for impersonation")
}

func apiRequest(method, path string, body any, out any) error {
	endpoint := strings.TrimSuffix(httpEndpoint, "/")

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, endpoint+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}
	if userID != "" {
		req.Header.Set(identity.HeaderName, userID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
