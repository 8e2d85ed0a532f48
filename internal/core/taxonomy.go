package core

import "strings"

// BuiltinCategories is the fixed set of top-level category labels, in the
// order they are always listed. It is defined once and never mutated at
// runtime.
var BuiltinCategories = []string{
	"Supermercado",
	"Nafta",
	"Perra",
	"Salidas",
	"Servicios",
	"Varios",
}

// Taxonomy holds the built-in labels plus the household's custom ones.
// Customs keep insertion order, contain no duplicates and never overlap
// with the built-ins.
type Taxonomy struct {
	custom []string
}

// NewTaxonomy builds a taxonomy from previously stored custom labels.
// Duplicates and labels shadowing a built-in are silently dropped, so a
// taxonomy loaded from storage always satisfies the no-duplicates invariant.
func NewTaxonomy(custom []string) *Taxonomy {
	t := &Taxonomy{}
	for _, label := range custom {
		t.Add(label)
	}
	return t
}

// Add appends a custom label. It is idempotent: empty labels, built-ins and
// already present customs are a no-op, not an error. Returns true only when
// the label was actually appended.
func (t *Taxonomy) Add(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" || t.Contains(label) {
		return false
	}
	t.custom = append(t.custom, label)
	return true
}

// Contains reports whether label is a built-in or custom category.
func (t *Taxonomy) Contains(label string) bool {
	for _, b := range BuiltinCategories {
		if b == label {
			return true
		}
	}
	for _, c := range t.custom {
		if c == label {
			return true
		}
	}
	return false
}

// Categories returns the built-in labels first, in their fixed order,
// followed by the custom labels in insertion order.
func (t *Taxonomy) Categories() []string {
	out := make([]string, 0, len(BuiltinCategories)+len(t.custom))
	out = append(out, BuiltinCategories...)
	out = append(out, t.custom...)
	return out
}

// Custom returns a copy of the custom labels in insertion order. This is
// what gets persisted; built-ins never are.
func (t *Taxonomy) Custom() []string {
	return append([]string(nil), t.custom...)
}
