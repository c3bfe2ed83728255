package regexbuilder

// ArgumentError reports a chained call whose argument violates its
// precondition: a negative quantity, a second backreference before the
// fragment was emitted, a nil or failed sub-builder, or an alternative of
// an unsupported type.
//
// The call that produced it has no other effect on the builder.
type ArgumentError struct {
	// Op is the name of the builder method that rejected its argument.
	Op string
	// Msg describes the violated precondition.
	Msg string
	// Err is the error carried by a rejected sub-builder, if any.
	Err error
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return "regexbuilder: " + e.Op + ": " + e.Msg + ": " + e.Err.Error()
	}
	return "regexbuilder: " + e.Op + ": " + e.Msg
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

var _ error = (*ArgumentError)(nil)

// fail records the first argument error and leaves everything else as is.
func (b *Builder) fail(op, msg string, cause error) *Builder {
	if b.err == nil {
		b.err = &ArgumentError{Op: op, Msg: msg, Err: cause}
	}
	return b
}
