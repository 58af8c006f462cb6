// Package selector builds CSS selector strings from typed, validated
// fragments. Fragments are immutable; chaining calls allocate new fragments
// that reference their predecessor, so any prefix of a chain stays usable
// from multiple goroutines without coordination.
package selector

//go:generate go tool go-enum --nocase --names --marshal

// Specification of a selector fragment category. Declaration order is the
// only valid order of categories inside a simple selector chain, so the
// integral value of a Kind doubles as its order rank.
// ENUM(element, id, class, attribute, pseudoClass, pseudoElement)
type Kind int

// Repeatable reports whether fragments of this kind may occur more than once
// inside a single simple selector chain.
func (k Kind) Repeatable() bool {
	switch k {
	case KindElement, KindId, KindPseudoElement:
		return false
	}
	return true
}
