// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package palette implements the command palette and its keyboard dispatch:
// a static command table with keyword search, and a shortcut matcher that
// maps key events to actions.
package palette

import (
	"strings"
	"sync"
)

// KeyEvent is one key-down as reported by a client. Ctrl and Meta are kept
// separate on the wire; matching folds them into a single primary modifier so
// one table serves both conventions.
type KeyEvent struct {
	Key   string `json:"key"`
	Ctrl  bool   `json:"ctrl"`
	Meta  bool   `json:"meta"`
	Shift bool   `json:"shift"`
	Alt   bool   `json:"alt"`
}

func (e KeyEvent) primary() bool {
	return e.Ctrl || e.Meta
}

// Shortcut binds a key chord to an action name. Primary means ctrl or meta;
// Shift and Alt must match exactly.
type Shortcut struct {
	Key     string
	Primary bool
	Shift   bool
	Alt     bool
	Action  string
}

func (s Shortcut) matches(e KeyEvent) bool {
	if !strings.EqualFold(s.Key, e.Key) {
		return false
	}
	return s.Primary == e.primary() && s.Shift == e.Shift && s.Alt == e.Alt
}

// Matcher dispatches key events against an ordered shortcut table. The first
// matching shortcut wins; later entries never fire for the same event.
type Matcher struct {
	shortcuts []Shortcut
}

func NewMatcher(shortcuts []Shortcut) *Matcher {
	return &Matcher{shortcuts: shortcuts}
}

// Dispatch returns the matched action and whether the client should suppress
// its default handling. At most one action fires per key-down.
func (m *Matcher) Dispatch(e KeyEvent) (string, bool) {
	for _, s := range m.shortcuts {
		if s.matches(e) {
			return s.Action, true
		}
	}
	return "", false
}

const (
	ActionTogglePalette = "palette.toggle"
	ActionGoDashboard   = "nav.dashboard"
	ActionGoTestCases   = "nav.test-cases"
	ActionGoTestRuns    = "nav.test-runs"
	ActionGoDefects     = "nav.defects"
	ActionGoSettings    = "nav.settings"
)

// DefaultShortcuts is the table the matcher ships with. Order matters: the
// palette toggle shadows any later binding of the same chord.
func DefaultShortcuts() []Shortcut {
	return []Shortcut{
		{Key: "k", Primary: true, Action: ActionTogglePalette},
		{Key: "d", Primary: true, Shift: true, Action: ActionGoDashboard},
		{Key: "t", Primary: true, Shift: true, Action: ActionGoTestCases},
		{Key: "r", Primary: true, Shift: true, Action: ActionGoTestRuns},
		{Key: "b", Primary: true, Shift: true, Action: ActionGoDefects},
		{Key: ",", Primary: true, Action: ActionGoSettings},
	}
}

// Palette holds the open/closed state. Selecting an entry always closes it;
// the toggle chord flips it.
type Palette struct {
	mu      sync.Mutex
	open    bool
	matcher *Matcher
}

func New(matcher *Matcher) *Palette {
	return &Palette{matcher: matcher}
}

func (p *Palette) Open() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

func (p *Palette) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = !p.open
	return p.open
}

func (p *Palette) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = false
}

// HandleKey feeds one key event through the matcher, applying palette state
// transitions as a side effect.
func (p *Palette) HandleKey(e KeyEvent) (string, bool) {
	action, matched := p.matcher.Dispatch(e)
	if !matched {
		return "", false
	}
	if action == ActionTogglePalette {
		p.Toggle()
	}
	return action, true
}

// Select resolves a command to its target and closes the palette.
func (p *Palette) Select(c Command) string {
	p.Close()
	return c.Target
}
