// Package cli defines the closed parameter schema for each refrescante
// command. Every command parses its argument vector into exactly one of
// these invocation types before its handler runs, so a handler only ever
// sees its own declared, typed fields.
package cli

import "strings"

// Invocation is a fully parsed command invocation. Implementations are the
// per-command structs below; the set is closed.
type Invocation interface {
	// Command returns the command identifier the invocation belongs to.
	Command() string
}

// InitInvocation is the parameterless init command.
type InitInvocation struct{}

func (InitInvocation) Command() string { return "init" }

// AddInvocation adds a single named component.
type AddInvocation struct {
	Component string
}

func (AddInvocation) Command() string { return "add" }

// RemoveInvocation removes a single named component.
type RemoveInvocation struct {
	Component string
}

func (RemoveInvocation) Command() string { return "remove" }

// UpgradeInvocation upgrades the named components, or everything when no
// names were given.
type UpgradeInvocation struct {
	Components []string
}

func (UpgradeInvocation) Command() string { return "upgrade" }

// All reports whether the invocation targets the package and all
// components rather than a named subset.
func (u UpgradeInvocation) All() bool { return len(u.Components) == 0 }

// Targets renders the named components for display, preserving input order
// and joining with ", ".
func (u UpgradeInvocation) Targets() string { return strings.Join(u.Components, ", ") }

// ListInvocation lists the catalog, or the project manifest when Installed
// is set.
type ListInvocation struct {
	Installed bool
}

func (ListInvocation) Command() string { return "list" }

// WipeInvocation is the parameterless wipe command.
type WipeInvocation struct{}

func (WipeInvocation) Command() string { return "wipe" }
