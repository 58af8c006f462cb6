package selector

import (
	"errors"
	"strings"
)

// Chaining rule violations. The message texts are part of the public
// contract and are matched by callers literally, typo included.
var (
	ErrDuplicate  = errors.New("Element, id and pseudo-element should not occur more then one time inside the selector")
	ErrOutOfOrder = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)

// Selector is a complete selector capable of rendering itself to a CSS
// selector string: either a simple selector chain (*Fragment) or a
// combination of two selectors (*Combined).
type Selector interface {
	String() string
}

// Fragment is a single part of a simple selector chain. The zero value is
// not usable; fragments are created by Start or one of the six kind
// constructors and extended through chaining calls.
type Fragment struct {
	kind  Kind
	value string
	prev  *Fragment
}

// Start returns a new chain consisting of a single fragment of the given
// kind. The value is stored verbatim and never interpreted.
func Start(kind Kind, value string) *Fragment {
	return &Fragment{kind: kind, value: value}
}

// Element starts a chain with a type selector fragment.
func Element(value string) *Fragment { return Start(KindElement, value) }

// ID starts a chain with an id fragment.
func ID(value string) *Fragment { return Start(KindId, value) }

// Class starts a chain with a class fragment.
func Class(value string) *Fragment { return Start(KindClass, value) }

// Attr starts a chain with an attribute fragment. The value is the raw
// attribute expression without the surrounding brackets.
func Attr(value string) *Fragment { return Start(KindAttribute, value) }

// PseudoClass starts a chain with a pseudo-class fragment. The value may
// include arguments, e.g. "nth-child(2n)".
func PseudoClass(value string) *Fragment { return Start(KindPseudoClass, value) }

// PseudoElement starts a chain with a pseudo-element fragment.
func PseudoElement(value string) *Fragment { return Start(KindPseudoElement, value) }

// Kind returns the fragment category.
func (f *Fragment) Kind() Kind { return f.kind }

// Value returns the fragment payload as given to the constructor.
func (f *Fragment) Value() string { return f.value }

// Prev returns the preceding fragment in the chain, or nil for the first one.
func (f *Fragment) Prev() *Fragment { return f.prev }

// Append extends the chain with a new fragment of the given kind, enforcing
// the simple selector grammar: non-repeatable kinds (element, id,
// pseudo-element) may occur only once per chain, and categories must appear
// in Kind declaration order. The receiver is not modified; on success a new
// fragment referencing it is returned. On failure the chain the call was
// made on must not be extended further from this call site.
func (f *Fragment) Append(kind Kind, value string) (*Fragment, error) {
	if !kind.Repeatable() && f.contains(kind) {
		return nil, ErrDuplicate
	}
	if f.kind > kind {
		return nil, ErrOutOfOrder
	}
	return &Fragment{kind: kind, value: value, prev: f}, nil
}

// contains walks the chain towards its head looking for the kind.
func (f *Fragment) contains(kind Kind) bool {
	for c := f; c != nil; c = c.prev {
		if c.kind == kind {
			return true
		}
	}
	return false
}

// Element appends a type selector fragment to the chain.
func (f *Fragment) Element(value string) (*Fragment, error) {
	return f.Append(KindElement, value)
}

// ID appends an id fragment to the chain.
func (f *Fragment) ID(value string) (*Fragment, error) {
	return f.Append(KindId, value)
}

// Class appends a class fragment to the chain.
func (f *Fragment) Class(value string) (*Fragment, error) {
	return f.Append(KindClass, value)
}

// Attr appends an attribute fragment to the chain.
func (f *Fragment) Attr(value string) (*Fragment, error) {
	return f.Append(KindAttribute, value)
}

// PseudoClass appends a pseudo-class fragment to the chain.
func (f *Fragment) PseudoClass(value string) (*Fragment, error) {
	return f.Append(KindPseudoClass, value)
}

// PseudoElement appends a pseudo-element fragment to the chain.
func (f *Fragment) PseudoElement(value string) (*Fragment, error) {
	return f.Append(KindPseudoElement, value)
}

// String renders the chain in order, concatenating fragments directly with
// their per-kind decoration. Rendering never fails.
func (f *Fragment) String() string {
	var sb strings.Builder
	f.render(&sb)
	return sb.String()
}

func (f *Fragment) render(sb *strings.Builder) {
	if f.prev != nil {
		f.prev.render(sb)
	}
	switch f.kind {
	case KindId:
		sb.WriteByte('#')
		sb.WriteString(f.value)
	case KindClass:
		sb.WriteByte('.')
		sb.WriteString(f.value)
	case KindAttribute:
		sb.WriteByte('[')
		sb.WriteString(f.value)
		sb.WriteByte(']')
	case KindPseudoClass:
		sb.WriteByte(':')
		sb.WriteString(f.value)
	case KindPseudoElement:
		sb.WriteString("::")
		sb.WriteString(f.value)
	default:
		sb.WriteString(f.value)
	}
}

// Combined joins two complete selectors with a combinator symbol.
type Combined struct {
	left       Selector
	combinator string
	right      Selector
}

// Combine joins two selectors. The combinator is expected to be one of
// " ", "+", "~", ">" but is not validated and renders as-is. With the
// descendant combinator (a single space) the separating spaces around it are
// kept, producing three spaces between the sides; callers comparing rendered
// strings rely on this exact output.
func Combine(left Selector, combinator string, right Selector) *Combined {
	return &Combined{left: left, combinator: combinator, right: right}
}

// Left returns the left-hand side of the combination.
func (c *Combined) Left() Selector { return c.left }

// Right returns the right-hand side of the combination.
func (c *Combined) Right() Selector { return c.right }

// Combinator returns the joining symbol as given to Combine.
func (c *Combined) Combinator() string { return c.combinator }

// String renders the combination left to right.
func (c *Combined) String() string {
	return c.left.String() + " " + c.combinator + " " + c.right.String()
}
