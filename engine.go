package regexbuilder

import (
	"strings"
	"time"

	"github.com/auvred/regonaut"
	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
	"github.com/dlclark/regexp2"
)

// Matcher is a compiled pattern returned by an [Engine].
// All matchers returned by the engines in this package are safe for
// concurrent use by multiple goroutines.
type Matcher interface {
	// MatchString reports whether s contains any match of the pattern.
	MatchString(s string) bool
	// FindStringSubmatch returns the leftmost match and its submatches,
	// or nil if there is no match. Groups that did not participate are "".
	FindStringSubmatch(s string) []string
	// String returns the source text the matcher was compiled from.
	String() string
}

// Engine compiles pattern text produced by a [Builder].
type Engine interface {
	Compile(pattern string, flags Flag) (Matcher, error)
}

// EngineFunc adapts an ordinary function to the [Engine] interface.
type EngineFunc func(pattern string, flags Flag) (Matcher, error)

func (f EngineFunc) Compile(pattern string, flags Flag) (Matcher, error) {
	return f(pattern, flags)
}

// RE2 compiles patterns with coregex, an RE2-syntax engine.
// Flags are prepended to the pattern as an inline modifier group.
// Lookahead and backreferences are rejected at compile time.
//
// Submatch bounds reported by coregex are unreliable when a quantified
// group is followed by a literal; use [Auto] when groups matter.
type RE2 struct {
	// Config overrides coregex's default configuration when non-nil.
	Config *meta.Config
}

func (e RE2) Compile(pattern string, flags Flag) (Matcher, error) {
	pattern = flags.inline() + pattern
	var (
		re  *coregex.Regex
		err error
	)
	if e.Config != nil {
		re, err = coregex.CompileWithConfig(pattern, *e.Config)
	} else {
		re, err = coregex.Compile(pattern)
	}
	if err != nil {
		return nil, err
	}
	return re, nil
}

// PCRE compiles patterns with regexp2, a backtracking engine supporting
// lookaround and backreferences. Patterns are parsed in regexp2's RE2
// compatibility mode so that "(?P<name>...)" groups are accepted.
type PCRE struct {
	// Timeout bounds a single match operation. Zero means no limit.
	Timeout time.Duration
}

func (e PCRE) Compile(pattern string, flags Flag) (Matcher, error) {
	opt := regexp2.RegexOptions(regexp2.RE2)
	if flags&FlagIgnoreCase != 0 {
		opt |= regexp2.IgnoreCase
	}
	if flags&FlagMultiline != 0 {
		opt |= regexp2.Multiline
	}
	if flags&FlagDotAll != 0 {
		opt |= regexp2.Singleline
	}
	re, err := regexp2.Compile(pattern, opt)
	if err != nil {
		return nil, err
	}
	if e.Timeout > 0 {
		re.MatchTimeout = e.Timeout
	}
	return &pcreMatcher{re: re}, nil
}

type pcreMatcher struct {
	re *regexp2.Regexp
}

// A timed out match is reported as no match.
func (m *pcreMatcher) MatchString(s string) bool {
	ok, err := m.re.MatchString(s)
	return err == nil && ok
}

func (m *pcreMatcher) FindStringSubmatch(s string) []string {
	match, err := m.re.FindStringMatch(s)
	if err != nil || match == nil {
		return nil
	}
	groups := match.Groups()
	res := make([]string, len(groups))
	for i := range groups {
		res[i] = groups[i].String()
	}
	return res
}

func (m *pcreMatcher) String() string {
	return m.re.String()
}

// ECMAScript compiles patterns with regonaut, an ECMAScript regular
// expression engine. Patterns are always compiled in Unicode mode.
type ECMAScript struct{}

func (ECMAScript) Compile(pattern string, flags Flag) (Matcher, error) {
	var f regonaut.Flag
	if flags&FlagIgnoreCase != 0 {
		f |= regonaut.FlagIgnoreCase
	}
	if flags&FlagMultiline != 0 {
		f |= regonaut.FlagMultiline
	}
	if flags&FlagDotAll != 0 {
		f |= regonaut.FlagDotAll
	}
	re, err := regonaut.Compile(pattern, f)
	if err != nil {
		return nil, err
	}
	return &ecmaMatcher{re: re, pattern: pattern}, nil
}

type ecmaMatcher struct {
	re      *regonaut.RegExp
	pattern string
}

// source converts s for regonaut, which treats a nil source as no input.
func source(s string) []byte {
	if s == "" {
		return []byte{}
	}
	return []byte(s)
}

func (m *ecmaMatcher) MatchString(s string) bool {
	return m.re.FindMatch(source(s)) != nil
}

func (m *ecmaMatcher) FindStringSubmatch(s string) []string {
	match := m.re.FindMatch(source(s))
	if match == nil {
		return nil
	}
	res := make([]string, len(match.Groups))
	for i, g := range match.Groups {
		res[i] = string(g.Data())
	}
	return res
}

func (m *ecmaMatcher) String() string {
	return m.pattern
}

// Auto compiles with both coregex and regexp2. coregex answers MatchString
// and regexp2 extracts submatches. Patterns coregex rejects, such as
// lookaround and backreferences, are served by regexp2 alone. regexp2
// compile errors are returned as is.
type Auto struct {
	RE2  RE2
	PCRE PCRE
}

func (e Auto) Compile(pattern string, flags Flag) (Matcher, error) {
	full, err := e.PCRE.Compile(pattern, flags)
	fast, fastErr := e.RE2.Compile(pattern, flags)
	if err != nil || fastErr != nil {
		return full, err
	}
	return &autoMatcher{fast: fast, full: full}, nil
}

// autoMatcher pairs a coregex matcher with a regexp2 matcher for the same
// pattern. coregex misplaces the bounds of a quantified group followed by
// a literal, so it is not asked for submatches.
type autoMatcher struct {
	fast Matcher
	full Matcher
}

func (m *autoMatcher) MatchString(s string) bool {
	return m.fast.MatchString(s)
}

func (m *autoMatcher) FindStringSubmatch(s string) []string {
	return m.full.FindStringSubmatch(s)
}

func (m *autoMatcher) String() string {
	return m.full.String()
}

// Dialect ties the pattern syntax a builder emits to the engine that
// compiles it. The only syntax that differs between the supported engines
// is the named capturing group prefix.
type Dialect struct {
	// Name identifies the dialect in configuration files.
	Name string
	// NamedGroupPrefix opens a named group, without the leading "(".
	// The group name and ">" follow it.
	NamedGroupPrefix string
	// Engine compiles the emitted patterns.
	Engine Engine
}

var (
	// DialectAuto emits "(?P<name>...)" groups and compiles with [Auto].
	// It is the default dialect.
	DialectAuto = Dialect{Name: "auto", NamedGroupPrefix: "?P<", Engine: Auto{}}
	// DialectRE2 emits "(?P<name>...)" groups and compiles with [RE2].
	DialectRE2 = Dialect{Name: "re2", NamedGroupPrefix: "?P<", Engine: RE2{}}
	// DialectPCRE emits "(?P<name>...)" groups and compiles with [PCRE].
	DialectPCRE = Dialect{Name: "pcre", NamedGroupPrefix: "?P<", Engine: PCRE{}}
	// DialectECMAScript emits "(?<name>...)" groups and compiles with [ECMAScript].
	DialectECMAScript = Dialect{Name: "ecmascript", NamedGroupPrefix: "?<", Engine: ECMAScript{}}
)

var dialects = []Dialect{DialectAuto, DialectRE2, DialectPCRE, DialectECMAScript}

// ParseDialect returns the predefined dialect with the given name,
// compared case-insensitively. The empty name selects [DialectAuto].
func ParseDialect(name string) (Dialect, bool) {
	if name == "" {
		return DialectAuto, true
	}
	for _, d := range dialects {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Dialect{}, false
}
