package digits

import (
	"cmp"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/digits/internal/intern"
	"go.trai.ch/zerr"
)

// digitCache holds the single live rep per digit value. One cache per value
// type; Sequence has its own.
var digitCache = intern.New[int, *digitRep]()

// digitRep is the canonical, immutable representation of one decimal digit.
// At most one live rep exists per value in [0, 9].
type digitRep struct {
	value int
	str   string
}

// Digit is a single decimal digit in [0, 9]. It wraps a pointer to its
// canonical rep, so two Digits built from equivalent inputs compare equal
// with == and share the same underlying representation. The zero value is
// invalid; use NewDigit.
type Digit struct {
	rep *digitRep
}

// NewDigit returns the canonical Digit for v. It accepts an integer in
// [0, 9] of any signed or unsigned kind, a single-character string "0".."9",
// or an existing Digit, which is returned unchanged. Any other input fails
// with ErrInvalidDigit carrying the rejected value and its type.
func NewDigit(v any) (Digit, error) {
	if d, ok := v.(Digit); ok && d.rep != nil {
		return d, nil
	}
	val, err := normalizeDigit(v)
	if err != nil {
		return Digit{}, err
	}
	rep, err := digitCache.Intern(val, func() (*digitRep, error) {
		return &digitRep{value: val, str: string(byte('0' + val))}, nil
	})
	if err != nil {
		return Digit{}, err
	}
	return Digit{rep: rep}, nil
}

// normalizeDigit reduces a digit-like input to its integer value.
func normalizeDigit(v any) (int, error) {
	switch n := v.(type) {
	case Digit:
		if n.rep == nil {
			return 0, invalidDigit(v)
		}
		return n.rep.value, nil
	case int:
		return digitValue(int64(n), v)
	case int8:
		return digitValue(int64(n), v)
	case int16:
		return digitValue(int64(n), v)
	case int32:
		return digitValue(int64(n), v)
	case int64:
		return digitValue(n, v)
	case uint:
		return digitValue(int64(n), v)
	case uint8:
		return digitValue(int64(n), v)
	case uint16:
		return digitValue(int64(n), v)
	case uint32:
		return digitValue(int64(n), v)
	case uint64:
		if n > 9 {
			return 0, invalidDigit(v)
		}
		return int(n), nil
	case string:
		if len(n) == 1 && n[0] >= '0' && n[0] <= '9' {
			return int(n[0] - '0'), nil
		}
		return 0, invalidDigit(v)
	default:
		return 0, invalidDigit(v)
	}
}

// digitValue bounds-checks a normalized integer against [0, 9].
func digitValue(n int64, raw any) (int, error) {
	if n < 0 || n > 9 {
		return 0, invalidDigit(raw)
	}
	return int(n), nil
}

// invalidDigit builds an ErrInvalidDigit carrying the rejected raw value.
func invalidDigit(v any) error {
	return zerr.With(zerr.With(ErrInvalidDigit, "type", fmt.Sprintf("%T", v)), "value", fmt.Sprintf("%v", v))
}

// Value returns the digit's integer value.
func (d Digit) Value() int {
	return d.rep.value
}

// String returns the digit as a single decimal character.
func (d Digit) String() string {
	return d.rep.str
}

// Compare orders digits by value.
func (d Digit) Compare(other Digit) int {
	return cmp.Compare(d.rep.value, other.rep.value)
}

// Equal reports whether other denotes the same digit. Another Digit matches
// by canonical identity; a raw integer or single-character string matches if
// it normalizes to the same value. Operands that are not digit-like are
// unequal, never an error.
func (d Digit) Equal(other any) bool {
	if o, ok := other.(Digit); ok {
		return d.rep == o.rep
	}
	val, err := normalizeDigit(other)
	return err == nil && d.rep.value == val
}

// Hash returns a hash of the canonical digit, consistent with Equal.
func (d Digit) Hash() uint64 {
	return xxhash.Sum64String(d.rep.str)
}

// MarshalText implements encoding.TextMarshaler.
func (d Digit) MarshalText() ([]byte, error) {
	return []byte(d.rep.str), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded digit is
// resolved through the cache, so it shares its rep with every other Digit of
// the same value.
func (d *Digit) UnmarshalText(text []byte) error {
	nd, err := NewDigit(string(text))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
