// Package regexbuilder builds regular expressions from chained method calls.
//
// A [Builder] accumulates pending state (a quantity, a character source,
// capture and greediness markers) and emits it as a pattern fragment when the
// next chain segment starts or when the pattern is requested:
//
//	b := regexbuilder.New().
//		StartOfInput().
//		Exactly(3).Digits().
//		Then("-").
//		Exactly(4).Digits().
//		EndOfInput()
//	re, err := b.RegExp(0)
//
// Every fragment is wrapped twice: an inner non-capturing group carries the
// quantifier, an outer group carries the capture. Exactly(2).Of("a") emits
// "(?:(?:a){2,2})".
//
// Invalid arguments do not panic. The failing call leaves the builder
// unchanged and the first such error is returned by [Builder.Err] and
// [Builder.RegExp].
package regexbuilder

import (
	"strconv"
	"strings"
)

const unset = -1

var (
	outsideClass = strings.NewReplacer(
		`.`, `\.`, `^`, `\^`, `$`, `\$`, `*`, `\*`, `+`, `\+`,
		`?`, `\?`, `(`, `\(`, `)`, `\)`, `[`, `\[`, `{`, `\{`,
	)
	insideClass = strings.NewReplacer(`^`, `\^`, `-`, `\-`, `]`, `\]`)
)

// Builder incrementally constructs a regular expression.
//
// Methods mutate the builder and return it, so calls can be chained.
// A Builder is not safe for concurrent use.
type Builder struct {
	dialect Dialect
	literal []byte
	err     error

	ignoreCase bool
	multiLine  bool

	// Pending fragment. Reset as a whole by reset.
	min         int
	max         int
	of          string
	ofAny       bool
	ofGroup     int
	from        string
	notFrom     string
	like        string
	reluctant   bool
	capture     bool
	captureName string
	either      string
}

// Option configures a [Builder] created by [New].
type Option func(*Builder)

// WithDialect selects the named group syntax and the engine used by
// [Builder.RegExp]. The default is [DialectAuto].
func WithDialect(d Dialect) Option {
	return func(b *Builder) {
		b.dialect = d
	}
}

// New returns an empty builder.
func New(opts ...Option) *Builder {
	b := &Builder{dialect: DialectAuto}
	for _, opt := range opts {
		opt(b)
	}
	b.reset()
	return b
}

// Dialect returns the dialect the builder was created with.
func (b *Builder) Dialect() Dialect {
	return b.dialect
}

// sub returns a new builder in the same dialect.
func (b *Builder) sub() *Builder {
	return New(WithDialect(b.dialect))
}

func (b *Builder) reset() {
	b.min = unset
	b.max = unset
	b.of = ""
	b.ofAny = false
	b.ofGroup = unset
	b.from = ""
	b.notFrom = ""
	b.like = ""
	b.reluctant = false
	b.capture = false
	b.captureName = ""
	b.either = ""
}

func (b *Builder) hasSource() bool {
	return b.of != "" || b.ofAny || b.ofGroup != unset || b.from != "" || b.notFrom != "" || b.like != ""
}

// flush emits the pending fragment, if any, and resets the pending state.
func (b *Builder) flush() {
	if !b.hasSource() {
		return
	}

	var quantity string
	switch {
	case b.min != unset && b.max != unset:
		quantity = "{" + strconv.Itoa(b.min) + "," + strconv.Itoa(b.max) + "}"
	case b.min != unset:
		quantity = "{" + strconv.Itoa(b.min) + ",}"
	case b.max != unset:
		quantity = "{0," + strconv.Itoa(b.max) + "}"
	}

	// Priority is fixed and independent of call order.
	var source string
	switch {
	case b.of != "":
		source = b.of
	case b.ofAny:
		source = "."
	case b.ofGroup != unset:
		source = `\` + strconv.Itoa(b.ofGroup)
	case b.from != "":
		source = "[" + b.from + "]"
	case b.notFrom != "":
		source = "[^" + b.notFrom + "]"
	default:
		source = b.like
	}

	outer := "?:"
	if b.capture {
		outer = ""
		if b.captureName != "" {
			outer = b.dialect.NamedGroupPrefix + b.captureName + ">"
		}
	}

	b.literal = append(b.literal, '(')
	b.literal = append(b.literal, outer...)
	b.literal = append(b.literal, "(?:"...)
	b.literal = append(b.literal, source...)
	b.literal = append(b.literal, ')')
	b.literal = append(b.literal, quantity...)
	if b.reluctant {
		b.literal = append(b.literal, '?')
	}
	b.literal = append(b.literal, ')')
	b.reset()
}

// subLiteral flushes r and returns its literal, or records an error
// on b when r cannot be used as a sub-pattern.
func (b *Builder) subLiteral(op string, r *Builder) (string, bool) {
	if r == nil {
		b.fail(op, "nil sub-builder", nil)
		return "", false
	}
	if r.err != nil {
		b.fail(op, "sub-builder is invalid", r.err)
		return "", false
	}
	return r.Literal(), true
}

// Err returns the first argument error recorded by a chained call.
func (b *Builder) Err() error {
	return b.err
}

// Literal emits any pending fragment and returns the pattern text built so
// far. Calling it again without chaining further returns the same text.
func (b *Builder) Literal() string {
	b.flush()
	return string(b.literal)
}

// RegExp emits any pending fragment and compiles the pattern with the
// dialect's engine. flags is combined with the flags enabled on the builder.
//
// If a chained call recorded an argument error, RegExp returns it without
// compiling. Engine errors are returned as is.
func (b *Builder) RegExp(flags Flag) (Matcher, error) {
	b.flush()
	if b.err != nil {
		return nil, b.err
	}
	if b.ignoreCase {
		flags |= FlagIgnoreCase
	}
	if b.multiLine {
		flags |= FlagMultiline
	}
	return b.dialect.Engine.Compile(string(b.literal), flags)
}

// MustRegExp is like [Builder.RegExp] but panics if the pattern cannot be
// compiled.
func (b *Builder) MustRegExp(flags Flag) Matcher {
	re, err := b.RegExp(flags)
	if err != nil {
		panic("regexbuilder: MustRegExp: " + err.Error())
	}
	return re
}

// IgnoreCase makes the compiled pattern case-insensitive.
func (b *Builder) IgnoreCase() *Builder {
	b.ignoreCase = true
	return b
}

// MultiLine makes "^" and "$" in the compiled pattern match at line
// boundaries.
func (b *Builder) MultiLine() *Builder {
	b.multiLine = true
	return b
}

// StartOfInput appends a start anchor. It does not emit the pending
// fragment, which therefore lands after the anchor.
func (b *Builder) StartOfInput() *Builder {
	b.literal = append(b.literal, "(?:^)"...)
	return b
}

// StartOfLine is StartOfInput with multi-line mode enabled.
func (b *Builder) StartOfLine() *Builder {
	b.MultiLine()
	return b.StartOfInput()
}

// EndOfInput emits the pending fragment and appends an end anchor.
func (b *Builder) EndOfInput() *Builder {
	b.flush()
	b.literal = append(b.literal, "(?:$)"...)
	return b
}

// EndOfLine is EndOfInput with multi-line mode enabled.
func (b *Builder) EndOfLine() *Builder {
	b.MultiLine()
	return b.EndOfInput()
}

// Exactly emits the pending fragment and starts a new one repeated exactly
// n times.
func (b *Builder) Exactly(n int) *Builder {
	if n < 0 {
		return b.fail("Exactly", "negative quantity "+strconv.Itoa(n), nil)
	}
	b.flush()
	b.min = n
	b.max = n
	return b
}

// Min emits the pending fragment and starts a new one repeated at least
// n times.
func (b *Builder) Min(n int) *Builder {
	if n < 0 {
		return b.fail("Min", "negative quantity "+strconv.Itoa(n), nil)
	}
	b.flush()
	b.min = n
	return b
}

// Max emits the pending fragment and starts a new one repeated at most
// n times.
func (b *Builder) Max(n int) *Builder {
	if n < 0 {
		return b.fail("Max", "negative quantity "+strconv.Itoa(n), nil)
	}
	b.flush()
	b.max = n
	return b
}

// Of sets the pending source to literal text. Metacharacters are escaped.
func (b *Builder) Of(s string) *Builder {
	b.of = outsideClass.Replace(s)
	return b
}

// OfAny sets the pending source to any single character.
func (b *Builder) OfAny() *Builder {
	b.ofAny = true
	return b
}

// OfGroup sets the pending source to a backreference to capturing group n.
// Groups are numbered from 1. Only one backreference can be pending at a time.
func (b *Builder) OfGroup(n int) *Builder {
	if n < 1 {
		return b.fail("OfGroup", "invalid group "+strconv.Itoa(n), nil)
	}
	if b.ofGroup != unset {
		return b.fail("OfGroup", "backreference already pending", nil)
	}
	b.ofGroup = n
	return b
}

// FromClass sets the pending source to a character class of chars.
// Order and duplicates do not matter.
func (b *Builder) FromClass(chars []rune) *Builder {
	b.from = insideClass.Replace(string(chars))
	return b
}

// NotFromClass sets the pending source to a negated character class of chars.
func (b *Builder) NotFromClass(chars []rune) *Builder {
	b.notFrom = insideClass.Replace(string(chars))
	return b
}

// Like sets the pending source to the pattern built by r, embedded verbatim
// so that it can be quantified as one unit.
func (b *Builder) Like(r *Builder) *Builder {
	if lit, ok := b.subLiteral("Like", r); ok {
		b.like = lit
	}
	return b
}

// Reluctantly makes the pending fragment non-greedy.
func (b *Builder) Reluctantly() *Builder {
	b.reluctant = true
	return b
}

// NonGreedy is an alias for [Builder.Reluctantly].
func (b *Builder) NonGreedy() *Builder {
	return b.Reluctantly()
}

// NonGreedily is an alias for [Builder.Reluctantly].
func (b *Builder) NonGreedily() *Builder {
	return b.Reluctantly()
}

// AsGroup makes the pending fragment a capturing group, named if a
// non-empty name is given. At most one name is accepted.
func (b *Builder) AsGroup(name ...string) *Builder {
	if len(name) > 1 {
		return b.fail("AsGroup", "more than one group name", nil)
	}
	b.capture = true
	b.captureName = ""
	if len(name) == 1 {
		b.captureName = name[0]
	}
	return b
}

// Capture is an alias for [Builder.AsGroup].
func (b *Builder) Capture(name ...string) *Builder {
	return b.AsGroup(name...)
}

// Ahead emits the pending fragment and appends a positive lookahead for r.
func (b *Builder) Ahead(r *Builder) *Builder {
	lit, ok := b.subLiteral("Ahead", r)
	if !ok {
		return b
	}
	b.flush()
	b.literal = append(b.literal, "(?="...)
	b.literal = append(b.literal, lit...)
	b.literal = append(b.literal, ')')
	return b
}

// NotAhead emits the pending fragment and appends a negative lookahead for r.
func (b *Builder) NotAhead(r *Builder) *Builder {
	lit, ok := b.subLiteral("NotAhead", r)
	if !ok {
		return b
	}
	b.flush()
	b.literal = append(b.literal, "(?!"...)
	b.literal = append(b.literal, lit...)
	b.literal = append(b.literal, ')')
	return b
}

// Append embeds the pattern built by r as the next fragment, exactly once.
func (b *Builder) Append(r *Builder) *Builder {
	lit, ok := b.subLiteral("Append", r)
	if !ok {
		return b
	}
	b.Exactly(1)
	b.like = lit
	return b
}

// Optional embeds the pattern built by r as the next fragment, at most once.
func (b *Builder) Optional(r *Builder) *Builder {
	lit, ok := b.subLiteral("Optional", r)
	if !ok {
		return b
	}
	b.Max(1)
	b.like = lit
	return b
}
