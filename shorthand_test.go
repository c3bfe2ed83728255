package regexbuilder

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestShorthands(t *testing.T) {
	const lineBreak = "(?:(?:(?:(?:\r\n){1,1}))|(?:(?:(?:\r){1,1}))|(?:(?:(?:\n){1,1})))"

	for _, c := range []struct {
		name     string
		b        *Builder
		expected string
	}{
		{"then", New().Then("a.b"), `(?:(?:a\.b){1,1})`},
		{"some", New().Some([]rune("ab")), `(?:(?:[ab]){1,})`},
		{"maybe some", New().MaybeSome([]rune("a-")), `(?:(?:[a\-]){0,})`},
		{"maybe", New().Maybe("a"), `(?:(?:a){0,1})`},
		{"something", New().Something(), `(?:(?:.){1,})`},
		{"anything", New().Anything(), `(?:(?:.){0,})`},
		{"any", New().Any(), `(?:(?:.){1,1})`},
		{"line break", New().LineBreak(), lineBreak},
		{"line breaks", New().Min(1).LineBreaks(), `(?:(?:` + lineBreak + `){1,})`},
		{"whitespace", New().Whitespace(), `(?:(?:\s){1,1})`},
		{"quantified whitespace", New().Min(2).Whitespace(), `(?:(?:\s){2,})`},
		{"not whitespace", New().NotWhitespace(), `(?:(?:\S){1,1})`},
		{"quantified not whitespace", New().Max(2).NotWhitespace(), `(?:(?:\S){0,2})`},
		{"tab", New().Tab(), "(?:(?:\t){1,1})"},
		{"tabs", New().Exactly(2).Tabs(), "(?:(?:(?:(?:\t){1,1})){2,2})"},
		{"digit", New().Digit(), `(?:(?:\d){1,1})`},
		{"not digit", New().NotDigit(), `(?:(?:\D){1,1})`},
		{"digits", New().Exactly(2).Digits(), `(?:(?:(?:(?:\d){1,1})){2,2})`},
		{"not digits", New().Min(1).NotDigits(), `(?:(?:(?:(?:\D){1,1})){1,})`},
		{"letter", New().Letter(), `(?:(?:[A-Za-z]){1,1})`},
		{"not letter", New().NotLetter(), `(?:(?:[^A-Za-z]){1,1})`},
		{"letters", New().Min(1).Letters(), `(?:(?:[A-Za-z]){1,})`},
		{"not letters", New().Min(1).NotLetters(), `(?:(?:[^A-Za-z]){1,})`},
		{"lower case letter", New().LowerCaseLetter(), `(?:(?:[a-z]){1,1})`},
		{"lower case letters", New().Max(3).LowerCaseLetters(), `(?:(?:[a-z]){0,3})`},
		{"upper case letter", New().UpperCaseLetter(), `(?:(?:[A-Z]){1,1})`},
		{"upper case letters", New().Exactly(2).UpperCaseLetters(), `(?:(?:[A-Z]){2,2})`},
		{"letter then letters", New().Letter().Min(1).Letters(), `(?:(?:[A-Za-z]){1,1})(?:(?:[A-Za-z]){1,})`},
	} {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.b.Literal(), c.expected)
		})
	}
}

func TestShorthandMatch(t *testing.T) {
	for _, d := range dialects {
		t.Run(d.Name, func(t *testing.T) {
			r := newRunner(t, d)

			spaced := func() *Builder {
				return r.b().StartOfInput().Then("a").Min(1).Whitespace().Then("b").EndOfInput()
			}
			r.m(spaced(), "a \t b")
			r.n(spaced(), "ab")

			r.m(r.b().StartOfInput().Exactly(2).NotWhitespace().EndOfInput(), "x!")
			r.n(r.b().StartOfInput().Exactly(2).NotWhitespace().EndOfInput(), "x ")
			r.m(r.b().StartOfInput().Min(1).NotDigits().EndOfInput(), "abc")
			r.n(r.b().StartOfInput().Min(1).NotDigits().EndOfInput(), "a1c")
			r.m(r.b().StartOfInput().Then("a").Tab().Then("b").EndOfInput(), "a\tb")
			r.m(r.b().StartOfInput().Exactly(1).NotLetter().Min(1).Letters().EndOfInput(), "1abc")
			r.n(r.b().StartOfInput().Exactly(1).NotLetter().Min(1).Letters().EndOfInput(), "xabc")
			r.m(r.b().StartOfInput().Something().EndOfInput(), "x")
			r.n(r.b().StartOfInput().Something().EndOfInput(), "")
			r.m(r.b().StartOfInput().Anything().EndOfInput(), "")
			r.m(r.b().StartOfInput().Maybe("-").Min(1).Digits().EndOfInput(), "-12")
			r.m(r.b().StartOfInput().Maybe("-").Min(1).Digits().EndOfInput(), "12")
			r.n(r.b().StartOfInput().Maybe("-").Min(1).Digits().EndOfInput(), "--12")
		})
	}
}
