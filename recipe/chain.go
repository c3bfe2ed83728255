package recipe

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/auvred/regexbuilder"
)

// Chain is a parsed sequence of builder calls, such as
//
//	start_of_input().exactly(3).digits().end_of_input()
type Chain struct {
	Pos   lexer.Position
	Calls []*Call `parser:"@@ ( '.' @@ )*"`
}

// Call is a single builder method invocation.
type Call struct {
	Pos  lexer.Position
	Name string `parser:"@Ident '('"`
	Args []*Arg `parser:"( @@ ( ',' @@ )* )? ')'"`
}

// Arg is a call argument: a string, a non-negative integer, a list or a
// nested chain describing a sub-builder.
type Arg struct {
	Pos    lexer.Position
	String *string `parser:"  @(String | RawString)"`
	Int    *int    `parser:"| @Int"`
	List   *List   `parser:"| @@"`
	Chain  *Chain  `parser:"| @@"`
}

type List struct {
	Open  bool   `parser:"@'['"`
	Items []*Arg `parser:"( @@ ( ',' @@ )* )? ']'"`
}

var parser = participle.MustBuild[Chain](
	participle.Unquote("String"),
	participle.Map(unquoteRaw, "RawString"),
)

// unquoteRaw strips the backquotes; escapes inside stay as written.
func unquoteRaw(t lexer.Token) (lexer.Token, error) {
	v, err := strconv.Unquote(t.Value)
	if err != nil {
		return t, participle.Errorf(t.Pos, "invalid raw string %s", t.Value)
	}
	t.Value = v
	return t, nil
}

// ParseChain parses chain source text.
func ParseChain(src string) (*Chain, error) {
	return parser.ParseString("chain", src)
}

// CallError reports a call that could not be applied.
type CallError struct {
	Pos    lexer.Position
	Method string
	Msg    string
	// Err is the builder error raised by the call, if any.
	Err error
}

func (e *CallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Method, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Method, e.Msg)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Apply runs the calls of c against b in order. Nested chains are built
// in b's dialect. Apply stops at the first call that fails, including calls
// the builder rejects.
func (c *Chain) Apply(b *regexbuilder.Builder) error {
	for _, call := range c.Calls {
		m, ok := methods[call.Name]
		if !ok {
			return &CallError{Pos: call.Pos, Method: call.Name, Msg: "unknown method"}
		}
		before := b.Err()
		if err := m(b, call); err != nil {
			return err
		}
		if err := b.Err(); err != nil && before == nil {
			return &CallError{Pos: call.Pos, Method: call.Name, Err: err}
		}
	}
	return nil
}

// Build applies c to a new builder in dialect d.
func (c *Chain) Build(d regexbuilder.Dialect) (*regexbuilder.Builder, error) {
	b := regexbuilder.New(regexbuilder.WithDialect(d))
	if err := c.Apply(b); err != nil {
		return nil, err
	}
	return b, nil
}

type method func(b *regexbuilder.Builder, c *Call) error

var methods map[string]method

func init() {
	methods = map[string]method{
		"ignore_case":    noArgs((*regexbuilder.Builder).IgnoreCase),
		"multi_line":     noArgs((*regexbuilder.Builder).MultiLine),
		"start_of_input": noArgs((*regexbuilder.Builder).StartOfInput),
		"start_of_line":  noArgs((*regexbuilder.Builder).StartOfLine),
		"end_of_input":   noArgs((*regexbuilder.Builder).EndOfInput),
		"end_of_line":    noArgs((*regexbuilder.Builder).EndOfLine),
		"exactly":        intArg((*regexbuilder.Builder).Exactly),
		"min":            intArg((*regexbuilder.Builder).Min),
		"max":            intArg((*regexbuilder.Builder).Max),
		"of":             stringArg((*regexbuilder.Builder).Of),
		"of_any":         noArgs((*regexbuilder.Builder).OfAny),
		"of_group":       intArg((*regexbuilder.Builder).OfGroup),
		"from_class":     classArg((*regexbuilder.Builder).FromClass),
		"not_from_class": classArg((*regexbuilder.Builder).NotFromClass),
		"like":           builderArg((*regexbuilder.Builder).Like),
		"reluctantly":    noArgs((*regexbuilder.Builder).Reluctantly),
		"non_greedy":     noArgs((*regexbuilder.Builder).NonGreedy),
		"non_greedily":   noArgs((*regexbuilder.Builder).NonGreedily),
		"ahead":          builderArg((*regexbuilder.Builder).Ahead),
		"not_ahead":      builderArg((*regexbuilder.Builder).NotAhead),
		"as_group":       asGroup,
		"capture":        asGroup,
		"either":         either,
		"or":             or,
		"append":         builderArg((*regexbuilder.Builder).Append),
		"optional":       builderArg((*regexbuilder.Builder).Optional),

		"then":               stringArg((*regexbuilder.Builder).Then),
		"some":               classArg((*regexbuilder.Builder).Some),
		"maybe_some":         classArg((*regexbuilder.Builder).MaybeSome),
		"maybe":              stringArg((*regexbuilder.Builder).Maybe),
		"something":          noArgs((*regexbuilder.Builder).Something),
		"anything":           noArgs((*regexbuilder.Builder).Anything),
		"any":                noArgs((*regexbuilder.Builder).Any),
		"line_break":         noArgs((*regexbuilder.Builder).LineBreak),
		"line_breaks":        noArgs((*regexbuilder.Builder).LineBreaks),
		"whitespace":         noArgs((*regexbuilder.Builder).Whitespace),
		"not_whitespace":     noArgs((*regexbuilder.Builder).NotWhitespace),
		"tab":                noArgs((*regexbuilder.Builder).Tab),
		"tabs":               noArgs((*regexbuilder.Builder).Tabs),
		"digit":              noArgs((*regexbuilder.Builder).Digit),
		"not_digit":          noArgs((*regexbuilder.Builder).NotDigit),
		"digits":             noArgs((*regexbuilder.Builder).Digits),
		"not_digits":         noArgs((*regexbuilder.Builder).NotDigits),
		"letter":             noArgs((*regexbuilder.Builder).Letter),
		"not_letter":         noArgs((*regexbuilder.Builder).NotLetter),
		"letters":            noArgs((*regexbuilder.Builder).Letters),
		"not_letters":        noArgs((*regexbuilder.Builder).NotLetters),
		"lower_case_letter":  noArgs((*regexbuilder.Builder).LowerCaseLetter),
		"lower_case_letters": noArgs((*regexbuilder.Builder).LowerCaseLetters),
		"upper_case_letter":  noArgs((*regexbuilder.Builder).UpperCaseLetter),
		"upper_case_letters": noArgs((*regexbuilder.Builder).UpperCaseLetters),
	}
}

func arity(c *Call, n int) error {
	if len(c.Args) != n {
		return &CallError{Pos: c.Pos, Method: c.Name, Msg: fmt.Sprintf("want %d arguments, got %d", n, len(c.Args))}
	}
	return nil
}

func argError(c *Call, a *Arg, want string) error {
	return &CallError{Pos: a.Pos, Method: c.Name, Msg: "argument must be " + want}
}

func noArgs(f func(*regexbuilder.Builder) *regexbuilder.Builder) method {
	return func(b *regexbuilder.Builder, c *Call) error {
		if err := arity(c, 0); err != nil {
			return err
		}
		f(b)
		return nil
	}
}

func intArg(f func(*regexbuilder.Builder, int) *regexbuilder.Builder) method {
	return func(b *regexbuilder.Builder, c *Call) error {
		if err := arity(c, 1); err != nil {
			return err
		}
		if c.Args[0].Int == nil {
			return argError(c, c.Args[0], "an integer")
		}
		f(b, *c.Args[0].Int)
		return nil
	}
}

func stringArg(f func(*regexbuilder.Builder, string) *regexbuilder.Builder) method {
	return func(b *regexbuilder.Builder, c *Call) error {
		if err := arity(c, 1); err != nil {
			return err
		}
		if c.Args[0].String == nil {
			return argError(c, c.Args[0], "a string")
		}
		f(b, *c.Args[0].String)
		return nil
	}
}

// classArg accepts a list of strings; their characters are concatenated.
func classArg(f func(*regexbuilder.Builder, []rune) *regexbuilder.Builder) method {
	return func(b *regexbuilder.Builder, c *Call) error {
		if err := arity(c, 1); err != nil {
			return err
		}
		if c.Args[0].List == nil {
			return argError(c, c.Args[0], "a list of strings")
		}
		var chars []rune
		for _, item := range c.Args[0].List.Items {
			if item.String == nil {
				return argError(c, item, "a string")
			}
			chars = append(chars, []rune(*item.String)...)
		}
		f(b, chars)
		return nil
	}
}

func builderArg(f func(*regexbuilder.Builder, *regexbuilder.Builder) *regexbuilder.Builder) method {
	return func(b *regexbuilder.Builder, c *Call) error {
		if err := arity(c, 1); err != nil {
			return err
		}
		if c.Args[0].Chain == nil {
			return argError(c, c.Args[0], "a chain")
		}
		sub, err := c.Args[0].Chain.Build(b.Dialect())
		if err != nil {
			return err
		}
		f(b, sub)
		return nil
	}
}

func asGroup(b *regexbuilder.Builder, c *Call) error {
	if len(c.Args) == 0 {
		b.AsGroup()
		return nil
	}
	if err := arity(c, 1); err != nil {
		return err
	}
	if c.Args[0].String == nil {
		return argError(c, c.Args[0], "a string")
	}
	b.AsGroup(*c.Args[0].String)
	return nil
}

// alternative converts a string or chain argument into an Either/Or element.
func alternative(b *regexbuilder.Builder, c *Call, a *Arg) (any, error) {
	switch {
	case a.String != nil:
		return *a.String, nil
	case a.Chain != nil:
		return a.Chain.Build(b.Dialect())
	}
	return nil, argError(c, a, "a string or a chain")
}

func either(b *regexbuilder.Builder, c *Call) error {
	if err := arity(c, 1); err != nil {
		return err
	}
	list := c.Args[0].List
	if list == nil || len(list.Items) == 0 {
		return argError(c, c.Args[0], "a non-empty list")
	}
	alts := make([]any, len(list.Items))
	for i, item := range list.Items {
		alt, err := alternative(b, c, item)
		if err != nil {
			return err
		}
		alts[i] = alt
	}
	b.Either(alts[0], alts[1:]...)
	return nil
}

func or(b *regexbuilder.Builder, c *Call) error {
	if err := arity(c, 1); err != nil {
		return err
	}
	alt, err := alternative(b, c, c.Args[0])
	if err != nil {
		return err
	}
	b.Or(alt)
	return nil
}
