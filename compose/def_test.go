package compose_test

import (
	"errors"
	"strings"
	"testing"

	"cssel/common"
	"cssel/compose"
	"cssel/selector"
)

func TestDef_Build(t *testing.T) {
	tests := []struct {
		name     string
		def      compose.Def
		expected string
	}{
		{
			"flat chain",
			compose.Def{Parts: []compose.Part{
				{Element: "div"},
				{ID: "main"},
				{Class: "container"},
				{Class: "draggable"},
			}},
			"div#main.container.draggable",
		},
		{
			"single part",
			compose.Def{Parts: []compose.Part{{PseudoElement: "after"}}},
			"::after",
		},
		{
			"attribute and pseudo-class",
			compose.Def{Parts: []compose.Part{
				{Element: "a"},
				{Attr: `href$=".png"`},
				{PseudoClass: "focus"},
			}},
			`a[href$=".png"]:focus`,
		},
		{
			"join",
			compose.Def{Join: &compose.Join{
				Left:       compose.Def{Parts: []compose.Part{{Element: "ul"}}},
				Combinator: ">",
				Right:      compose.Def{Parts: []compose.Part{{Element: "li"}}},
			}},
			"ul > li",
		},
		{
			"nested join with descendant",
			compose.Def{Join: &compose.Join{
				Left: compose.Def{Parts: []compose.Part{{Element: "main"}}},
				Combinator: " ",
				Right: compose.Def{Join: &compose.Join{
					Left:       compose.Def{Parts: []compose.Part{{Element: "p"}}},
					Combinator: ">",
					Right:      compose.Def{Parts: []compose.Part{{Element: "a"}}},
				}},
			}},
			"main   p > a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := tt.def.Build()
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if got := sel.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDef_BuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		def      compose.Def
		expected error
	}{
		{
			"empty definition",
			compose.Def{},
			nil,
		},
		{
			"both parts and join",
			compose.Def{
				Parts: []compose.Part{{Element: "div"}},
				Join:  &compose.Join{},
			},
			nil,
		},
		{
			"part with no fields",
			compose.Def{Parts: []compose.Part{{}}},
			nil,
		},
		{
			"part with two fields",
			compose.Def{Parts: []compose.Part{{Element: "div", ID: "main"}}},
			nil,
		},
		{
			"out of order parts",
			compose.Def{Parts: []compose.Part{{Class: "box"}, {ID: "main"}}},
			selector.ErrOutOfOrder,
		},
		{
			"duplicate element",
			compose.Def{Parts: []compose.Part{{Element: "div"}, {Element: "span"}}},
			selector.ErrDuplicate,
		},
		{
			"error inside join side",
			compose.Def{Join: &compose.Join{
				Left:       compose.Def{Parts: []compose.Part{{Class: "box"}, {Element: "div"}}},
				Combinator: ">",
				Right:      compose.Def{Parts: []compose.Part{{Element: "li"}}},
			}},
			selector.ErrOutOfOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.def.Build()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.expected != nil && !errors.Is(err, tt.expected) {
				t.Errorf("Build() error = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestDocument_BuildAll(t *testing.T) {
	doc := &compose.Document{Selectors: []compose.Def{
		{Name: "good", Parts: []compose.Part{{Element: "div"}}},
		{Name: "bad", Parts: []compose.Part{{Class: "box"}, {ID: "main"}}},
		{Parts: []compose.Part{{ID: "main"}, {Class: "editable"}}},
	}}

	sels, err := doc.BuildAll()
	if err == nil {
		t.Fatal("expected aggregated error, got nil")
	}
	if !errors.Is(err, selector.ErrOutOfOrder) {
		t.Errorf("aggregated error = %v, want wrapped ErrOutOfOrder", err)
	}
	if !strings.Contains(err.Error(), "selector 2 (bad)") {
		t.Errorf("aggregated error %q does not identify the failed definition", err)
	}

	if len(sels) != 2 {
		t.Fatalf("BuildAll() returned %d selectors, want 2", len(sels))
	}
	if got := sels[0].Sel.String(); got != "div" {
		t.Errorf("first selector = %q, want %q", got, "div")
	}
	if got := sels[1].Sel.String(); got != "#main.editable" {
		t.Errorf("second selector = %q, want %q", got, "#main.editable")
	}
}

func TestParseDocument(t *testing.T) {
	data := []byte(`
selectors:
  - name: anchor
    parts:
      - element: a
      - attr: href$=".png"
      - pseudo_class: focus
  - join:
      left:
        parts:
          - element: div
      combinator: "+"
      right:
        parts:
          - element: table
`)

	doc, err := compose.ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument() error: %v", err)
	}

	sels, err := doc.BuildAll()
	if err != nil {
		t.Fatalf("BuildAll() error: %v", err)
	}
	if len(sels) != 2 {
		t.Fatalf("BuildAll() returned %d selectors, want 2", len(sels))
	}
	if got := sels[0].Sel.String(); got != `a[href$=".png"]:focus` {
		t.Errorf("first selector = %q, want %q", got, `a[href$=".png"]:focus`)
	}
	if got := sels[1].Sel.String(); got != "div + table" {
		t.Errorf("second selector = %q, want %q", got, "div + table")
	}
}

func TestParseDocument_UnknownField(t *testing.T) {
	data := []byte(`
selectors:
  - parts:
      - element: div
    extra: nope
`)
	if _, err := compose.ParseDocument(data); err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
}

func TestParseDocument_BadYaml(t *testing.T) {
	if _, err := compose.ParseDocument([]byte("selectors: [")); err == nil {
		t.Fatal("expected error for malformed yaml, got nil")
	}
}

func TestWrite(t *testing.T) {
	sels := []compose.Rendered{
		{Name: "first", Sel: selector.Element("div")},
		{Name: "second", Sel: selector.Combine(selector.Element("ul"), ">", selector.Element("li"))},
	}

	tests := []struct {
		name     string
		format   common.OutputFmt
		expected string
	}{
		{"plain", common.OutputFmtPlain, "div\nul > li\n"},
		{"css", common.OutputFmtCss, "div {\n}\n\nul > li {\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			if err := compose.Write(&buf, tt.format, sels); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			if got := buf.String(); got != tt.expected {
				t.Errorf("Write() output = %q, want %q", got, tt.expected)
			}
		})
	}
}
