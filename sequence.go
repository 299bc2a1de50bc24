package digits

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/digits/internal/intern"
	"go.trai.ch/zerr"
)

// sequenceCache holds the single live rep per (digits, width) key.
var sequenceCache = intern.New[seqKey, *seqRep]()

// seqKey is the normalized construction key: the digit characters in order,
// most significant first, plus the display width. Equal keys resolve to the
// same rep.
type seqKey struct {
	digits string
	width  int
}

// seqRep is the canonical, immutable representation of a digit sequence.
// chars mirrors digits one byte per position; str is the rendering,
// left-padded with '0' when width exceeds the digit count.
type seqRep struct {
	digits []Digit
	chars  string
	width  int
	str    string
}

// Sequence is an ordered, immutable sequence of Digits plus a display width,
// representing a possibly zero-padded barcode segment. Like Digit, it wraps
// a pointer to its canonical rep: sequences built from equivalent inputs
// compare equal with ==. The zero value is invalid; use NewSequence.
type Sequence struct {
	rep *seqRep
}

// NewSequence returns the canonical Sequence for v. Accepted inputs:
//
//   - a non-negative integer of any kind: digits are its base-10
//     decomposition, width is the digit count
//   - a string of digit characters: one digit per character, width is the
//     string length, so leading zeros are preserved ("0123" is a distinct
//     canonical value from 123)
//   - a slice of digit-likes ([]any, []int, []string, []Digit): each element
//     is normalized like NewDigit input, width is the element count
//   - an existing Sequence: returned unchanged
//
// Nil or any other type fails with ErrInvalidSequence carrying the rejected
// value. An invalid element inside a string or slice fails with that
// element's ErrInvalidDigit instead, naming the element.
func NewSequence(v any) (Sequence, error) {
	if s, ok := v.(Sequence); ok && s.rep != nil {
		return s, nil
	}
	key, err := normalizeSequence(v)
	if err != nil {
		return Sequence{}, err
	}
	return internSequence(key)
}

// internSequence resolves a validated key to its single live Sequence,
// building the rep on first use.
func internSequence(key seqKey) (Sequence, error) {
	rep, err := sequenceCache.Intern(key, func() (*seqRep, error) {
		return buildSeqRep(key)
	})
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{rep: rep}, nil
}

// buildSeqRep constructs the immutable rep for a validated key. The Digit
// elements are shared with the digit cache.
func buildSeqRep(key seqKey) (*seqRep, error) {
	ds := make([]Digit, len(key.digits))
	for i := 0; i < len(key.digits); i++ {
		d, err := NewDigit(int(key.digits[i] - '0'))
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	str := key.digits
	if key.width > len(key.digits) {
		str = strings.Repeat("0", key.width-len(key.digits)) + str
	}
	return &seqRep{digits: ds, chars: key.digits, width: key.width, str: str}, nil
}

// normalizeSequence reduces a sequence-like input to its canonical key.
func normalizeSequence(v any) (seqKey, error) {
	switch s := v.(type) {
	case Sequence:
		if s.rep == nil {
			return seqKey{}, invalidSequence(v)
		}
		return seqKey{digits: s.rep.chars, width: s.rep.width}, nil
	case int:
		return intKey(int64(s), v)
	case int8:
		return intKey(int64(s), v)
	case int16:
		return intKey(int64(s), v)
	case int32:
		return intKey(int64(s), v)
	case int64:
		return intKey(s, v)
	case uint:
		return seqKey{digits: strconv.FormatUint(uint64(s), 10), width: digitCount(uint64(s))}, nil
	case uint8:
		return intKey(int64(s), v)
	case uint16:
		return intKey(int64(s), v)
	case uint32:
		return intKey(int64(s), v)
	case uint64:
		return seqKey{digits: strconv.FormatUint(s, 10), width: digitCount(s)}, nil
	case string:
		return stringKey(s)
	case []any:
		return elementsKey(len(s), func(i int) any { return s[i] })
	case []int:
		return elementsKey(len(s), func(i int) any { return s[i] })
	case []string:
		return elementsKey(len(s), func(i int) any { return s[i] })
	case []Digit:
		return elementsKey(len(s), func(i int) any { return s[i] })
	default:
		return seqKey{}, invalidSequence(v)
	}
}

// intKey decomposes a non-negative integer. A bare integer carries no
// leading-zero information, so the width equals the digit count.
func intKey(n int64, raw any) (seqKey, error) {
	if n < 0 {
		return seqKey{}, invalidSequence(raw)
	}
	digits := strconv.FormatInt(n, 10)
	return seqKey{digits: digits, width: len(digits)}, nil
}

// digitCount returns the number of base-10 digits in n.
func digitCount(n uint64) int {
	return len(strconv.FormatUint(n, 10))
}

// stringKey normalizes a digit string, preserving leading zeros in the
// width. A non-digit character fails with its own ErrInvalidDigit.
func stringKey(s string) (seqKey, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return seqKey{}, invalidDigit(string(s[i]))
		}
	}
	return seqKey{digits: s, width: len(s)}, nil
}

// elementsKey normalizes a slice of digit-likes, one display position per
// element. Element failures surface as that element's ErrInvalidDigit.
func elementsKey(n int, at func(int) any) (seqKey, error) {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		val, err := normalizeDigit(at(i))
		if err != nil {
			return seqKey{}, err
		}
		b.WriteByte(byte('0' + val))
	}
	return seqKey{digits: b.String(), width: n}, nil
}

// invalidSequence builds an ErrInvalidSequence carrying the rejected raw value.
func invalidSequence(v any) error {
	return zerr.With(zerr.With(ErrInvalidSequence, "type", fmt.Sprintf("%T", v)), "value", fmt.Sprintf("%v", v))
}

// Len returns the number of digit positions, including leading-zero
// positions captured at construction.
func (s Sequence) Len() int {
	return len(s.rep.digits)
}

// Width returns the number of display positions. Every construction path
// keeps Width equal to Len; String pads to Width should they ever diverge.
func (s Sequence) Width() int {
	return s.rep.width
}

// String returns the canonical digit string, left-padded with '0' to Width.
func (s Sequence) String() string {
	return s.rep.str
}

// First returns the most significant digit. It fails with ErrIndexOutOfRange
// on the empty sequence.
func (s Sequence) First() (Digit, error) {
	return s.At(0)
}

// Last returns the least significant digit. It fails with ErrIndexOutOfRange
// on the empty sequence.
func (s Sequence) Last() (Digit, error) {
	return s.At(-1)
}

// At returns the digit at position i. A negative i counts back from the end,
// so At(-1) is the last digit. Positions outside the sequence fail with
// ErrIndexOutOfRange.
func (s Sequence) At(i int) (Digit, error) {
	idx, ok := s.position(i)
	if !ok {
		return Digit{}, outOfRange(i, s.Len())
	}
	return s.rep.digits[idx], nil
}

// position resolves a possibly-negative index to a concrete offset.
func (s Sequence) position(i int) (int, bool) {
	n := len(s.rep.digits)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// outOfRange builds an ErrIndexOutOfRange carrying the offending position.
func outOfRange(i, n int) error {
	return zerr.With(zerr.With(ErrIndexOutOfRange, "index", i), "length", n)
}

// Digits returns a copy of the digit list; the sequence itself stays
// immutable.
func (s Sequence) Digits() []Digit {
	return slices.Clone(s.rep.digits)
}

// All iterates over (position, digit) pairs in order, most significant
// first.
func (s Sequence) All() iter.Seq2[int, Digit] {
	return func(yield func(int, Digit) bool) {
		for i, d := range s.rep.digits {
			if !yield(i, d) {
				return
			}
		}
	}
}

// MarshalText implements encoding.TextMarshaler using the canonical string.
func (s Sequence) MarshalText() ([]byte, error) {
	return []byte(s.rep.str), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded sequence is
// resolved through the cache, and leading zeros in the text are preserved in
// the width.
func (s *Sequence) UnmarshalText(text []byte) error {
	ns, err := NewSequence(string(text))
	if err != nil {
		return err
	}
	*s = ns
	return nil
}
