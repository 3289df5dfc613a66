// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package palette

import "testing"

func TestMatcher_Dispatch(t *testing.T) {
	m := NewMatcher(DefaultShortcuts())

	testCases := []struct {
		name           string
		event          KeyEvent
		expectedAction string
		expectedMatch  bool
	}{
		{
			name:           "ctrl+k toggles the palette",
			event:          KeyEvent{Key: "k", Ctrl: true},
			expectedAction: ActionTogglePalette,
			expectedMatch:  true,
		},
		{
			name:           "meta+k folds to the same chord",
			event:          KeyEvent{Key: "K", Meta: true},
			expectedAction: ActionTogglePalette,
			expectedMatch:  true,
		},
		{
			name:           "key match is case-insensitive",
			event:          KeyEvent{Key: "D", Ctrl: true, Shift: true},
			expectedAction: ActionGoDashboard,
			expectedMatch:  true,
		},
		{
			name:          "missing shift does not match a shifted chord",
			event:         KeyEvent{Key: "d", Ctrl: true},
			expectedMatch: false,
		},
		{
			name:          "extra alt does not match",
			event:         KeyEvent{Key: "k", Ctrl: true, Alt: true},
			expectedMatch: false,
		},
		{
			name:          "extra shift does not match",
			event:         KeyEvent{Key: "K", Ctrl: true, Shift: true},
			expectedMatch: false,
		},
		{
			name:          "bare key without primary does not match",
			event:         KeyEvent{Key: "k"},
			expectedMatch: false,
		},
		{
			name:          "unbound chord",
			event:         KeyEvent{Key: "z", Ctrl: true},
			expectedMatch: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			action, matched := m.Dispatch(tc.event)
			if matched != tc.expectedMatch {
				t.Fatalf("expected match %v, got %v", tc.expectedMatch, matched)
			}
			if action != tc.expectedAction {
				t.Errorf("expected action %q, got %q", tc.expectedAction, action)
			}
		})
	}
}

func TestMatcher_FirstMatchWins(t *testing.T) {
	m := NewMatcher([]Shortcut{
		{Key: "k", Primary: true, Action: "first"},
		{Key: "k", Primary: true, Action: "second"},
	})

	action, matched := m.Dispatch(KeyEvent{Key: "k", Meta: true})
	if !matched || action != "first" {
		t.Errorf("expected first entry to shadow the second, got %q (matched %v)", action, matched)
	}
}

func TestPalette_ToggleAndSelect(t *testing.T) {
	p := New(NewMatcher(DefaultShortcuts()))

	if p.Open() {
		t.Fatal("expected palette closed initially")
	}

	if _, matched := p.HandleKey(KeyEvent{Key: "k", Ctrl: true}); !matched {
		t.Fatal("expected toggle chord to match")
	}
	if !p.Open() {
		t.Fatal("expected palette open after toggle")
	}

	if _, matched := p.HandleKey(KeyEvent{Key: "k", Meta: true}); !matched {
		t.Fatal("expected toggle chord to match")
	}
	if p.Open() {
		t.Fatal("expected palette closed after second toggle")
	}

	p.Toggle()
	target := p.Select(Command{Label: "Defects", Target: "/defects"})
	if target != "/defects" {
		t.Errorf("expected target /defects, got %q", target)
	}
	if p.Open() {
		t.Error("expected palette closed after selection")
	}
}

func TestPalette_NonMatchingKeyLeavesStateAlone(t *testing.T) {
	p := New(NewMatcher(DefaultShortcuts()))

	if _, matched := p.HandleKey(KeyEvent{Key: "x"}); matched {
		t.Fatal("expected no match")
	}
	if p.Open() {
		t.Error("expected palette to stay closed")
	}
}

func TestSearch(t *testing.T) {
	testCases := []struct {
		name          string
		query         string
		expectedLabel string
		expectedCount int
	}{
		{"empty query returns everything", "", "", len(Commands())},
		{"label match", "defects", "Defects", 1},
		{"keyword match", "bugs", "Defects", 1},
		{"case-insensitive", "DASH", "Dashboard", 1},
		{"no match", "xyzzy", "", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Search(tc.query)
			if len(got) != tc.expectedCount {
				t.Fatalf("expected %d results, got %d", tc.expectedCount, len(got))
			}
			if tc.expectedLabel != "" && got[0].Label != tc.expectedLabel {
				t.Errorf("expected %q, got %q", tc.expectedLabel, got[0].Label)
			}
		})
	}
}

func TestCommands_Groups(t *testing.T) {
	groups := map[string]bool{}
	for _, c := range Commands() {
		groups[c.Group] = true
		if c.Target == "" {
			t.Errorf("command %q has no target", c.Label)
		}
	}
	if !groups[GroupNavigation] || !groups[GroupAdministration] {
		t.Errorf("expected both Navigation and Administration groups, got %v", groups)
	}
}
