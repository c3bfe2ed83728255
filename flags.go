package regexbuilder

import "errors"

// Flag is a bitmask of compile options.
// The zero value compiles the pattern with no options.
// Combine flags with bitwise OR, e.g. FlagIgnoreCase|FlagMultiline.
type Flag uint8

const (
	// Case-insensitive matching ("i" flag).
	FlagIgnoreCase Flag = 1 << iota

	// "^" and "$" match line boundaries ("m" flag).
	FlagMultiline

	// "." matches line terminators ("s" flag).
	FlagDotAll
)

var flagLetters = [...]struct {
	flag   Flag
	letter byte
}{
	{FlagIgnoreCase, 'i'},
	{FlagMultiline, 'm'},
	{FlagDotAll, 's'},
}

// ParseFlags parses a flag string such as "im" into a Flag.
// Unknown and repeated letters are rejected.
func ParseFlags(str string) (Flag, error) {
	var flags Flag
	for _, char := range str {
		var m Flag
		switch char {
		case 'i':
			m = FlagIgnoreCase
		case 'm':
			m = FlagMultiline
		case 's':
			m = FlagDotAll
		default:
			return 0, errors.New("regexbuilder: invalid flag " + string(char))
		}
		if flags&m != 0 {
			return 0, errors.New("regexbuilder: duplicate flag " + string(char))
		}
		flags |= m
	}
	return flags, nil
}

// String returns the flag letters in "ims" order.
func (f Flag) String() string {
	res := make([]byte, 0, len(flagLetters))
	for _, l := range flagLetters {
		if f&l.flag != 0 {
			res = append(res, l.letter)
		}
	}
	return string(res)
}

// inline returns f as an inline modifier group, e.g. "(?im)".
func (f Flag) inline() string {
	if f == 0 {
		return ""
	}
	return "(?" + f.String() + ")"
}
