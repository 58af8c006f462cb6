package selector

import (
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser reads a single complex selector string back into the builder's node
// graph. Fragments are constructed through the chaining API, so a selector
// violating the ordering or uniqueness rules fails with the corresponding
// chaining error wrapped with input context.
//
// Scope is deliberately narrow: one complex selector per call, no selector
// lists, no stylesheets.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new selector parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("selector-parser")}
}

type token struct {
	tt   css.TokenType
	data string
}

// Parse tokenizes and rebuilds one complex selector. The returned Selector
// is a *Fragment chain, or a *Combined tree when the input contains
// combinators (" ", "+", "~", ">", left-associative).
func (p *Parser) Parse(input string) (Selector, error) {
	toks, err := lexSelector(input)
	if err != nil {
		return nil, fmt.Errorf("unable to tokenize selector %q: %w", input, err)
	}

	var (
		completed Selector
		comb      string
		chain     *Fragment
		pendingWS bool
	)

	// finish the current chain and fold it into the result so far
	flush := func() {
		if chain == nil {
			return
		}
		if completed == nil {
			completed = chain
		} else {
			completed = Combine(completed, comb, chain)
		}
		comb = ""
		chain = nil
	}

	appendPart := func(kind Kind, value string) error {
		if chain != nil && pendingWS {
			// whitespace between chain parts is the descendant combinator
			flush()
			comb = " "
		}
		pendingWS = false
		if chain == nil {
			chain = Start(kind, value)
			return nil
		}
		next, err := chain.Append(kind, value)
		if err != nil {
			return fmt.Errorf("invalid selector %q: %w", input, err)
		}
		chain = next
		return nil
	}

	for i := 0; i < len(toks); i++ {
		t := toks[i]

		switch t.tt {
		case css.WhitespaceToken:
			if chain != nil {
				pendingWS = true
			}

		case css.CommentToken:
			// ignored

		case css.IdentToken:
			if err := appendPart(KindElement, t.data); err != nil {
				return nil, err
			}

		case css.HashToken:
			if err := appendPart(KindId, strings.TrimPrefix(t.data, "#")); err != nil {
				return nil, err
			}

		case css.DelimToken:
			switch t.data {
			case ".":
				if i+1 >= len(toks) || toks[i+1].tt != css.IdentToken {
					return nil, fmt.Errorf("selector %q: expected class name after '.'", input)
				}
				i++
				if err := appendPart(KindClass, toks[i].data); err != nil {
					return nil, err
				}
			case "*":
				if err := appendPart(KindElement, "*"); err != nil {
					return nil, err
				}
			case "+", "~", ">":
				if chain == nil {
					return nil, fmt.Errorf("selector %q: combinator %q has no left-hand side", input, t.data)
				}
				pendingWS = false
				flush()
				comb = t.data
			default:
				return nil, fmt.Errorf("selector %q: unexpected %q", input, t.data)
			}

		case css.LeftBracketToken:
			value, next, err := collectAttr(toks, i)
			if err != nil {
				return nil, fmt.Errorf("selector %q: %w", input, err)
			}
			i = next
			if err := appendPart(KindAttribute, value); err != nil {
				return nil, err
			}

		case css.ColonToken:
			kind := KindPseudoClass
			if i+1 < len(toks) && toks[i+1].tt == css.ColonToken {
				kind = KindPseudoElement
				i++
			}
			value, next, err := collectPseudo(toks, i)
			if err != nil {
				return nil, fmt.Errorf("selector %q: %w", input, err)
			}
			i = next
			if err := appendPart(kind, value); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("selector %q: unexpected %q", input, t.data)
		}
	}

	if chain == nil {
		if comb != "" {
			return nil, fmt.Errorf("selector %q: dangling combinator %q", input, comb)
		}
		return nil, fmt.Errorf("empty selector")
	}
	flush()

	p.log.Debug("Parsed selector", zap.String("input", input), zap.String("rendered", completed.String()))
	return completed, nil
}

// collectAttr gathers the raw text between '[' at position i and the
// matching ']'. The inner text is kept verbatim.
func collectAttr(toks []token, i int) (string, int, error) {
	var sb strings.Builder
	for j := i + 1; j < len(toks); j++ {
		if toks[j].tt == css.RightBracketToken {
			return sb.String(), j, nil
		}
		sb.WriteString(toks[j].data)
	}
	return "", 0, fmt.Errorf("unterminated attribute selector")
}

// collectPseudo gathers a pseudo name after ':' (or '::') at position i,
// including function arguments when the name is functional, e.g.
// "nth-child(2n)".
func collectPseudo(toks []token, i int) (string, int, error) {
	if i+1 >= len(toks) {
		return "", 0, fmt.Errorf("expected pseudo name after ':'")
	}
	t := toks[i+1]

	switch t.tt {
	case css.IdentToken:
		return t.data, i + 1, nil

	case css.FunctionToken:
		// token data is the name with the opening parenthesis
		var sb strings.Builder
		sb.WriteString(t.data)
		depth := 1
		for j := i + 2; j < len(toks); j++ {
			switch toks[j].tt {
			case css.FunctionToken, css.LeftParenthesisToken:
				depth++
			case css.RightParenthesisToken:
				depth--
				if depth == 0 {
					sb.WriteByte(')')
					return sb.String(), j, nil
				}
			}
			sb.WriteString(toks[j].data)
		}
		return "", 0, fmt.Errorf("unterminated arguments in pseudo %q", t.data)

	default:
		return "", 0, fmt.Errorf("expected pseudo name after ':', got %q", t.data)
	}
}

// lexSelector runs the CSS tokenizer over the whole input.
func lexSelector(input string) ([]token, error) {
	l := css.NewLexer(parse.NewInput(strings.NewReader(input)))

	var toks []token
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, err
			}
			return toks, nil
		}
		toks = append(toks, token{tt: tt, data: string(data)})
	}
}
