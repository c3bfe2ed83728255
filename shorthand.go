package regexbuilder

// Shorthands. Each is a plain composition of the primitives above.

const (
	letters          = "A-Za-z"
	lowerCaseLetters = "a-z"
	upperCaseLetters = "A-Z"
)

// Then matches s exactly once.
func (b *Builder) Then(s string) *Builder {
	return b.Exactly(1).Of(s)
}

// Some matches one or more characters from chars.
func (b *Builder) Some(chars []rune) *Builder {
	return b.Min(1).FromClass(chars)
}

// MaybeSome matches zero or more characters from chars.
func (b *Builder) MaybeSome(chars []rune) *Builder {
	return b.Min(0).FromClass(chars)
}

// Maybe matches s at most once.
func (b *Builder) Maybe(s string) *Builder {
	return b.Max(1).Of(s)
}

// Something matches one or more arbitrary characters.
func (b *Builder) Something() *Builder {
	return b.Min(1).OfAny()
}

// Anything matches zero or more arbitrary characters.
func (b *Builder) Anything() *Builder {
	return b.Min(0).OfAny()
}

// Any matches one arbitrary character.
func (b *Builder) Any() *Builder {
	return b.Exactly(1).OfAny()
}

// LineBreak matches "\r\n", "\r" or "\n".
func (b *Builder) LineBreak() *Builder {
	return b.Either("\r\n", "\r", "\n")
}

// LineBreaks uses a line break as the pending source; quantify it first.
func (b *Builder) LineBreaks() *Builder {
	return b.Like(b.sub().LineBreak())
}

// Whitespace matches one whitespace character, or uses whitespace as the
// pending source when a quantity is already pending.
func (b *Builder) Whitespace() *Builder {
	if b.min == unset && b.max == unset {
		return b.Exactly(1).Of(`\s`)
	}
	b.like = `\s`
	return b
}

// NotWhitespace is the negation of [Builder.Whitespace].
func (b *Builder) NotWhitespace() *Builder {
	if b.min == unset && b.max == unset {
		return b.Exactly(1).Of(`\S`)
	}
	b.like = `\S`
	return b
}

func (b *Builder) Tab() *Builder {
	return b.Exactly(1).Of("\t")
}

func (b *Builder) Tabs() *Builder {
	return b.Like(b.sub().Tab())
}

func (b *Builder) Digit() *Builder {
	return b.Exactly(1).Of(`\d`)
}

func (b *Builder) NotDigit() *Builder {
	return b.Exactly(1).Of(`\D`)
}

// Digits uses a digit as the pending source; quantify it first.
func (b *Builder) Digits() *Builder {
	return b.Like(b.sub().Digit())
}

func (b *Builder) NotDigits() *Builder {
	return b.Like(b.sub().NotDigit())
}

// Letter matches one ASCII letter.
func (b *Builder) Letter() *Builder {
	b.Exactly(1)
	b.from = letters
	return b
}

func (b *Builder) NotLetter() *Builder {
	b.Exactly(1)
	b.notFrom = letters
	return b
}

// Letters uses the ASCII letters as the pending source; quantify it first.
func (b *Builder) Letters() *Builder {
	b.from = letters
	return b
}

func (b *Builder) NotLetters() *Builder {
	b.notFrom = letters
	return b
}

func (b *Builder) LowerCaseLetter() *Builder {
	b.Exactly(1)
	b.from = lowerCaseLetters
	return b
}

func (b *Builder) LowerCaseLetters() *Builder {
	b.from = lowerCaseLetters
	return b
}

func (b *Builder) UpperCaseLetter() *Builder {
	b.Exactly(1)
	b.from = upperCaseLetters
	return b
}

func (b *Builder) UpperCaseLetters() *Builder {
	b.from = upperCaseLetters
	return b
}
