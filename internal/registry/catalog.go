// Package registry models the RefrescanteUI component catalog and the
// per-project manifest of installed components.
package registry

import "sort"

// Component describes an entry in the RefrescanteUI catalog.
type Component struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description,omitempty"`
	Version      string   `yaml:"version"`
	Dependencies []string `yaml:"dependencies,omitempty"`
}

// catalog is the built-in component catalog. It is defined once at process
// start and never mutated.
var catalog = []Component{
	{Name: "avatar", Description: "User avatar with image and initials fallback", Version: "1.0.0"},
	{Name: "badge", Description: "Status and count badge", Version: "1.0.0"},
	{Name: "button", Description: "Action button with variants", Version: "1.2.0"},
	{Name: "card", Description: "Content card with header, body and footer", Version: "1.1.0"},
	{Name: "checkbox", Description: "Checkbox input", Version: "1.0.0"},
	{Name: "dialog", Description: "Modal dialog", Version: "1.1.0", Dependencies: []string{"button"}},
	{Name: "input", Description: "Text input field", Version: "1.2.0"},
	{Name: "select", Description: "Dropdown select", Version: "1.0.1", Dependencies: []string{"input"}},
	{Name: "toast", Description: "Transient notification", Version: "1.0.0", Dependencies: []string{"badge"}},
	{Name: "tooltip", Description: "Hover tooltip", Version: "1.0.0"},
}

// Catalog returns the component catalog sorted by name. The returned slice
// is a copy; callers may not mutate the catalog.
func Catalog() []Component {
	out := make([]Component, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds a catalog component by name.
func Lookup(name string) (Component, bool) {
	for _, c := range catalog {
		if c.Name == name {
			return c, true
		}
	}
	return Component{}, false
}

// Names returns the sorted names of all catalog components.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, c := range catalog {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}
