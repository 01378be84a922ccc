package parser

import (
	"github.com/sable-lang/sable/internal/lexer"
)

type delimitedConfig struct {
	Closing   lexer.TokenKind
	Separator lexer.TokenKind

	AllowEmpty    bool
	AllowTrailing bool

	MissingElementMsg   string
	MissingSeparatorMsg string
}

type delimitedResult[T any] struct {
	Items    []T
	Trailing bool
}

// parseDelimited parses a separator-delimited list up to a closing token.
// Line breaks around separators and before the closing token are permitted.
// On entry cur is the first element's first token (or the closing token for an
// empty list); on success cur is the closing token.
func parseDelimited[T any](p *Parser, cfg delimitedConfig, parseItem func(idx int) (T, bool)) (delimitedResult[T], bool) {
	var result delimitedResult[T]

	if cfg.Separator == "" {
		cfg.Separator = lexer.COMMA
	}

	if cfg.Closing == "" {
		panic("parseDelimited requires a closing token")
	}

	if p.cur.Kind == cfg.Closing {
		if cfg.AllowEmpty {
			return result, true
		}
		msg := cfg.MissingElementMsg
		if msg == "" {
			msg = "expected element"
		}
		p.reportError(msg, p.cur.Span)
		return result, false
	}

	for {
		item, ok := parseItem(len(result.Items))
		if !ok {
			return result, false
		}
		result.Items = append(result.Items, item)

		// A line break may precede the separator or the closing token.
		next := p.peek.Kind
		if next == lexer.NEWLINE {
			next = p.peekPastNewlines().Kind
		}

		switch next {
		case cfg.Separator:
			if p.peek.Kind == lexer.NEWLINE {
				p.nextSkipNewlines() // move to separator
			} else {
				p.nextToken()
			}
			p.nextSkipNewlines() // move to next potential element

			if p.cur.Kind == cfg.Closing {
				if cfg.AllowTrailing {
					result.Trailing = true
					return result, true
				}
				msg := cfg.MissingElementMsg
				if msg == "" {
					msg = "expected element"
				}
				p.reportError(msg, p.cur.Span)
				return result, false
			}
			continue
		case cfg.Closing:
			if p.peek.Kind == lexer.NEWLINE {
				p.nextSkipNewlines()
			} else {
				p.nextToken()
			}
			return result, true
		default:
			msg := cfg.MissingSeparatorMsg
			if msg == "" {
				msg = "expected '" + string(cfg.Separator) + "' or '" + string(cfg.Closing) + "'"
			}
			p.reportError(msg, p.peek.Span)
			return result, false
		}
	}
}
