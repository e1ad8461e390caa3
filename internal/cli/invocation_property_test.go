//go:build property
// +build property

package cli

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestUpgradeTargetsProperties verifies the display join over arbitrary
// component name lists.
func TestUpgradeTargetsProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	nameGen := gen.RegexMatch(`^[a-z][a-z0-9-]{0,15}$`)

	// Property: splitting the rendered list recovers the input, in order.
	properties.Property("join preserves order", prop.ForAll(
		func(names []string) bool {
			inv := UpgradeInvocation{Components: names}
			if len(names) == 0 {
				return inv.Targets() == ""
			}

			parts := strings.Split(inv.Targets(), ", ")
			if len(parts) != len(names) {
				return false
			}
			for i, name := range names {
				if parts[i] != name {
					return false
				}
			}
			return true
		},
		gen.SliceOf(nameGen),
	))

	// Property: rendering is pure; repeated calls agree.
	properties.Property("rendering is deterministic", prop.ForAll(
		func(names []string) bool {
			inv := UpgradeInvocation{Components: names}
			return inv.Targets() == inv.Targets() && inv.All() == (len(names) == 0)
		},
		gen.SliceOf(nameGen),
	))

	properties.TestingRun(t)
}
