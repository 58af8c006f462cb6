// Package compose turns YAML selector definitions into rendered CSS
// selector strings.
package compose

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"

	"go.uber.org/multierr"

	"cssel/common"
	"cssel/selector"
)

// Document is the top-level structure of a selector definition file.
type Document struct {
	Selectors []Def `yaml:"selectors"`
}

// Def describes a single selector: either a flat chain of parts or a join of
// two nested definitions. Name is optional and used only in diagnostics.
type Def struct {
	Name  string `yaml:"name,omitempty"`
	Parts []Part `yaml:"parts,omitempty"`
	Join  *Join  `yaml:"join,omitempty"`
}

// Join combines two definitions with a combinator. The combinator string is
// rendered as-is, it is not validated.
type Join struct {
	Left       Def    `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      Def    `yaml:"right"`
}

// Part is a single chain fragment; exactly one field must be set.
type Part struct {
	Element       string `yaml:"element,omitempty"`
	ID            string `yaml:"id,omitempty"`
	Class         string `yaml:"class,omitempty"`
	Attr          string `yaml:"attr,omitempty"`
	PseudoClass   string `yaml:"pseudo_class,omitempty"`
	PseudoElement string `yaml:"pseudo_element,omitempty"`
}

func (p Part) kindValue() (selector.Kind, string, error) {
	var (
		kind  selector.Kind
		value string
		set   int
	)
	pick := func(k selector.Kind, v string) {
		if v != "" {
			kind, value = k, v
			set++
		}
	}
	pick(selector.KindElement, p.Element)
	pick(selector.KindId, p.ID)
	pick(selector.KindClass, p.Class)
	pick(selector.KindAttribute, p.Attr)
	pick(selector.KindPseudoClass, p.PseudoClass)
	pick(selector.KindPseudoElement, p.PseudoElement)

	if set != 1 {
		return 0, "", errors.New("part must set exactly one of element, id, class, attr, pseudo_class, pseudo_element")
	}
	return kind, value, nil
}

// Build constructs the selector described by the definition.
func (d Def) Build() (selector.Selector, error) {
	switch {
	case d.Join != nil && len(d.Parts) > 0:
		return nil, errors.New("definition cannot have both parts and join")

	case d.Join != nil:
		left, err := d.Join.Left.Build()
		if err != nil {
			return nil, fmt.Errorf("join left side: %w", err)
		}
		right, err := d.Join.Right.Build()
		if err != nil {
			return nil, fmt.Errorf("join right side: %w", err)
		}
		return selector.Combine(left, d.Join.Combinator, right), nil

	case len(d.Parts) > 0:
		var chain *selector.Fragment
		for i, part := range d.Parts {
			kind, value, err := part.kindValue()
			if err != nil {
				return nil, fmt.Errorf("part %d: %w", i+1, err)
			}
			if chain == nil {
				chain = selector.Start(kind, value)
				continue
			}
			if chain, err = chain.Append(kind, value); err != nil {
				return nil, fmt.Errorf("part %d (%s): %w", i+1, kind, err)
			}
		}
		return chain, nil

	default:
		return nil, errors.New("definition has neither parts nor join")
	}
}

// label identifies a definition in diagnostics.
func (d Def) label(idx int) string {
	if d.Name != "" {
		return fmt.Sprintf("selector %d (%s)", idx+1, d.Name)
	}
	return fmt.Sprintf("selector %d", idx+1)
}

// Rendered is a successfully built selector with its definition name.
type Rendered struct {
	Name string
	Sel  selector.Selector
}

// BuildAll builds every definition in the document. Failed definitions do
// not stop the others; their errors are aggregated and returned together
// with whatever was built.
func (doc *Document) BuildAll() ([]Rendered, error) {
	var (
		out  []Rendered
		errs error
	)
	for i, def := range doc.Selectors {
		sel, err := def.Build()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", def.label(i), err))
			continue
		}
		out = append(out, Rendered{Name: def.Name, Sel: sel})
	}
	return out, errs
}

// ParseDocument decodes a definition file rejecting unknown fields.
func ParseDocument(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode selector definitions: %w", err)
	}
	return doc, nil
}

// Write renders selectors to w in the requested format.
func Write(w io.Writer, format common.OutputFmt, sels []Rendered) error {
	for i, s := range sels {
		var err error
		switch format {
		case common.OutputFmtCss:
			_, err = fmt.Fprintf(w, "%s {\n}\n", s.Sel)
			if err == nil && i < len(sels)-1 {
				_, err = fmt.Fprint(w, "\n")
			}
		default:
			_, err = fmt.Fprintln(w, s.Sel)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
