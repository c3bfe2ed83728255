package regexbuilder

import (
	"testing"
	"time"

	"github.com/auvred/regonaut"
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
	"gotest.tools/v3/assert"
)

const (
	i = FlagIgnoreCase
	m = FlagMultiline
	s = FlagDotAll
)

func TestParseFlags(t *testing.T) {
	for _, c := range []struct {
		str      string
		expected Flag
	}{
		{"", 0},
		{"i", i},
		{"m", m},
		{"s", s},
		{"im", i | m},
		{"smi", i | m | s},
	} {
		f, err := ParseFlags(c.str)
		assert.NilError(t, err)
		assert.Equal(t, f, c.expected)
	}

	_, err := ParseFlags("ii")
	assert.ErrorContains(t, err, "duplicate flag i")
	_, err = ParseFlags("x")
	assert.ErrorContains(t, err, "invalid flag x")

	assert.Equal(t, (s | i).String(), "is")
	assert.Equal(t, (i | m | s).inline(), "(?ims)")
	assert.Equal(t, Flag(0).inline(), "")
}

func TestParseDialect(t *testing.T) {
	d, ok := ParseDialect("")
	assert.Equal(t, ok, true)
	assert.Equal(t, d.Name, DialectAuto.Name)

	for _, want := range dialects {
		d, ok := ParseDialect(want.Name)
		assert.Equal(t, ok, true)
		assert.Equal(t, d.Name, want.Name)
		assert.Equal(t, d.NamedGroupPrefix, want.NamedGroupPrefix)
	}

	d, ok = ParseDialect("ECMAScript")
	assert.Equal(t, ok, true)
	assert.Equal(t, d.NamedGroupPrefix, "?<")

	_, ok = ParseDialect("posix")
	assert.Equal(t, ok, false)
}

func TestDefaultDialect(t *testing.T) {
	assert.Equal(t, New().Dialect().Name, "auto")
	assert.Equal(t, New(WithDialect(DialectPCRE)).Dialect().Name, "pcre")
}

func TestEngineErrorsArePropagated(t *testing.T) {
	t.Run("re2", func(t *testing.T) {
		b := New(WithDialect(DialectRE2)).Exactly(1).Of("a").Ahead(New().Of("b"))
		_, err := b.RegExp(0)
		_, want := coregex.Compile(b.Literal())
		assert.Assert(t, want != nil)
		assert.Error(t, err, want.Error())
	})
	t.Run("pcre", func(t *testing.T) {
		b := New(WithDialect(DialectPCRE)).Exactly(1).OfGroup(3)
		_, err := b.RegExp(0)
		_, want := regexp2.Compile(b.Literal(), regexp2.RE2)
		assert.Assert(t, want != nil)
		assert.Error(t, err, want.Error())
	})
	t.Run("ecmascript", func(t *testing.T) {
		b := New(WithDialect(DialectECMAScript)).Of("a}")
		_, err := b.RegExp(0)
		_, want := regonaut.Compile(b.Literal(), 0)
		assert.Assert(t, want != nil)
		assert.Error(t, err, want.Error())
	})
	t.Run("auto reports the fallback error", func(t *testing.T) {
		b := New().Exactly(1).OfGroup(3)
		_, err := b.RegExp(0)
		_, want := regexp2.Compile(b.Literal(), regexp2.RE2)
		assert.Assert(t, want != nil)
		assert.Error(t, err, want.Error())
	})
}

func TestEngineConfig(t *testing.T) {
	t.Run("re2 config", func(t *testing.T) {
		config := coregex.DefaultConfig()
		d := Dialect{Name: "tuned", NamedGroupPrefix: "?P<", Engine: RE2{Config: &config}}
		re, err := New(WithDialect(d)).Min(1).Digits().RegExp(0)
		assert.NilError(t, err)
		assert.Equal(t, re.MatchString("abc123"), true)
		assert.Equal(t, re.String(), `(?:(?:(?:(?:\d){1,1})){1,})`)
	})
	t.Run("pcre timeout", func(t *testing.T) {
		d := Dialect{Name: "bounded", NamedGroupPrefix: "?P<", Engine: PCRE{Timeout: time.Second}}
		re, err := New(WithDialect(d)).Exactly(1).Of("a").Ahead(New().Of("b")).RegExp(0)
		assert.NilError(t, err)
		assert.Equal(t, re.MatchString("ab"), true)
		assert.Equal(t, re.(*pcreMatcher).re.MatchTimeout, time.Second)
	})
	t.Run("inline flags", func(t *testing.T) {
		re, err := New(WithDialect(DialectRE2)).IgnoreCase().Of("a").RegExp(s)
		assert.NilError(t, err)
		assert.Equal(t, re.String(), `(?is)(?:(?:a))`)
	})
	t.Run("ecmascript keeps the pattern", func(t *testing.T) {
		re, err := New(WithDialect(DialectECMAScript)).Of("a").RegExp(i | m)
		assert.NilError(t, err)
		assert.Equal(t, re.String(), `(?:(?:a))`)
		assert.Equal(t, re.MatchString("A"), true)
	})
}

func TestEngineFunc(t *testing.T) {
	var (
		gotPattern string
		gotFlags   Flag
	)
	d := Dialect{
		Name:             "recording",
		NamedGroupPrefix: "?P<",
		Engine: EngineFunc(func(pattern string, flags Flag) (Matcher, error) {
			gotPattern, gotFlags = pattern, flags
			return ECMAScript{}.Compile(pattern, flags)
		}),
	}
	_, err := New(WithDialect(d)).StartOfLine().IgnoreCase().Of("x").RegExp(s)
	assert.NilError(t, err)
	assert.Equal(t, gotPattern, `(?:^)(?:(?:x))`)
	assert.Equal(t, gotFlags, i|m|s)
}

func TestDotAll(t *testing.T) {
	for _, d := range dialects {
		t.Run(d.Name, func(t *testing.T) {
			r := newRunner(t, d)
			r.n(r.b().StartOfInput().Exactly(3).OfAny().EndOfInput(), "a\nb")
			r.f(s).m(r.b().StartOfInput().Exactly(3).OfAny().EndOfInput(), "a\nb")
		})
	}
}
