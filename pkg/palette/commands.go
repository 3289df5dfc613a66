// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package palette

import "strings"

const (
	GroupNavigation     = "Navigation"
	GroupAdministration = "Administration"
)

// Command is one palette entry. Keywords extend matching beyond the label so
// "bugs" finds the defects page.
type Command struct {
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Group       string   `json:"group"`
	Target      string   `json:"target"`
	Keywords    []string `json:"keywords"`
}

// Commands returns the static palette table. The slice is rebuilt per call so
// callers can't mutate the table under each other.
func Commands() []Command {
	return []Command{
		{
			Label:       "Dashboard",
			Description: "Project overview and recent activity",
			Group:       GroupNavigation,
			Target:      "/dashboard",
			Keywords:    []string{"home", "overview"},
		},
		{
			Label:       "Test Cases",
			Description: "Browse and edit test cases",
			Group:       GroupNavigation,
			Target:      "/test-cases",
			Keywords:    []string{"cases", "suites", "specs"},
		},
		{
			Label:       "Test Runs",
			Description: "Execution history and live runs",
			Group:       GroupNavigation,
			Target:      "/test-runs",
			Keywords:    []string{"runs", "executions", "results"},
		},
		{
			Label:       "Defects",
			Description: "Defects raised from failed runs",
			Group:       GroupNavigation,
			Target:      "/defects",
			Keywords:    []string{"bugs", "issues", "failures"},
		},
		{
			Label:       "Notifications",
			Description: "Your notification feed",
			Group:       GroupNavigation,
			Target:      "/notifications",
			Keywords:    []string{"feed", "unread", "alerts"},
		},
		{
			Label:       "Members",
			Description: "Manage organization members and roles",
			Group:       GroupAdministration,
			Target:      "/admin/members",
			Keywords:    []string{"users", "roles", "invite"},
		},
		{
			Label:       "Organization Settings",
			Description: "Rename, transfer or delete the organization",
			Group:       GroupAdministration,
			Target:      "/admin/organization",
			Keywords:    []string{"org", "transfer", "ownership"},
		},
		{
			Label:       "Reset Password",
			Description: "Reset a member's password",
			Group:       GroupAdministration,
			Target:      "/admin/reset-password",
			Keywords:    []string{"password", "credentials", "recovery"},
		},
	}
}

// Search filters the table by query. Matching is case-insensitive over label
// and keywords; an empty query returns the full table.
func Search(query string) []Command {
	query = strings.ToLower(strings.TrimSpace(query))
	all := Commands()
	if query == "" {
		return all
	}

	var out []Command
	for _, c := range all {
		if commandMatches(c, query) {
			out = append(out, c)
		}
	}
	return out
}

func commandMatches(c Command, query string) bool {
	if strings.Contains(strings.ToLower(c.Label), query) {
		return true
	}
	for _, kw := range c.Keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true
		}
	}
	return false
}
