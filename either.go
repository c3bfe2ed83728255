package regexbuilder

import "fmt"

// Either emits the pending fragment and appends an alternation of the given
// alternatives. Each alternative is either a string, matched literally once,
// or a *Builder whose pattern is embedded.
//
// Two alternatives produce "(?:(?:A)|(?:B))". Every further alternative
// extends that group in place, so three alternatives produce
// "(?:(?:A)|(?:B)|(?:C))" rather than a nested alternation.
//
// A single alternative is held pending and is discarded by the next emitted
// fragment unless [Builder.Or] follows.
func (b *Builder) Either(first any, rest ...any) *Builder {
	alts, ok := b.alternatives("Either", append([]any{first}, rest...))
	if !ok {
		return b
	}
	b.eitherLike(alts[0])
	for _, alt := range alts[1:] {
		b.orLike(alt)
	}
	return b
}

// Or adds one alternative. Directly after a one-element [Builder.Either] it
// opens the alternation group. Otherwise it assumes the pattern ends with
// the closing parenthesis of an alternation group and extends that group.
// Pending state is discarded, not emitted.
func (b *Builder) Or(alt any) *Builder {
	alts, ok := b.alternatives("Or", []any{alt})
	if !ok {
		return b
	}
	b.orLike(alts[0])
	return b
}

// alternatives validates every element before reading any of them, so a bad
// element leaves b and the sub-builders untouched.
func (b *Builder) alternatives(op string, elems []any) ([]string, bool) {
	for i, e := range elems {
		switch e := e.(type) {
		case string:
		case *Builder:
			if e == nil {
				b.fail(op, fmt.Sprintf("alternative %d: nil sub-builder", i), nil)
				return nil, false
			}
			if e.err != nil {
				b.fail(op, fmt.Sprintf("alternative %d: sub-builder is invalid", i), e.err)
				return nil, false
			}
		default:
			b.fail(op, fmt.Sprintf("alternative %d: unsupported type %T", i, e), nil)
			return nil, false
		}
	}
	res := make([]string, len(elems))
	for i, e := range elems {
		switch e := e.(type) {
		case string:
			res[i] = b.sub().Exactly(1).Of(e).Literal()
		case *Builder:
			res[i] = e.Literal()
		}
	}
	return res, true
}

func (b *Builder) eitherLike(lit string) {
	b.flush()
	b.either = lit
}

func (b *Builder) orLike(lit string) {
	if b.either == "" {
		if n := len(b.literal); n > 0 {
			b.literal = b.literal[:n-1]
		}
		b.literal = append(b.literal, "|(?:"...)
		b.literal = append(b.literal, lit...)
		b.literal = append(b.literal, "))"...)
	} else {
		b.literal = append(b.literal, "(?:(?:"...)
		b.literal = append(b.literal, b.either...)
		b.literal = append(b.literal, ")|(?:"...)
		b.literal = append(b.literal, lit...)
		b.literal = append(b.literal, "))"...)
	}
	b.reset()
}
