package digits

import "go.trai.ch/zerr"

var (
	// ErrInvalidDigit is returned when a candidate digit is not an integer or
	// single-character string in [0, 9], or is of an unsupported type.
	ErrInvalidDigit = zerr.New("invalid digit")

	// ErrInvalidSequence is returned when a candidate sequence input is nil or
	// of a type that cannot be normalized into digits.
	ErrInvalidSequence = zerr.New("invalid digit sequence")

	// ErrIndexOutOfRange is returned when a digit position falls outside the
	// sequence.
	ErrIndexOutOfRange = zerr.New("index out of range")

	// ErrInvalidRange is returned when a range's end precedes its start after
	// negative positions are resolved.
	ErrInvalidRange = zerr.New("invalid range")

	// ErrInvalidRepeatCount is returned when a repeat count is negative.
	ErrInvalidRepeatCount = zerr.New("repeat count must be non-negative")

	// ErrValueOverflow is returned when a sequence's numeric value does not
	// fit in an int64.
	ErrValueOverflow = zerr.New("numeric value overflows int64")
)
