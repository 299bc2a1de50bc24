package digits

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Slice returns the canonical Sequence over length digits starting at start.
// start may be negative to count back from the end. The result's width
// equals length: a slice is a self-contained sequence and does not inherit
// the parent's padding. Positions outside the sequence, or a negative
// length, fail with ErrIndexOutOfRange. A zero length at any valid boundary
// (including start == Len) yields the canonical empty sequence.
func (s Sequence) Slice(start, length int) (Sequence, error) {
	n := s.Len()
	if start < 0 {
		start += n
	}
	if start < 0 || start > n {
		return Sequence{}, outOfRange(start, n)
	}
	if length < 0 || start+length > n {
		return Sequence{}, outOfRange(start+length, n)
	}
	return internSequence(seqKey{
		digits: s.rep.chars[start : start+length],
		width:  length,
	})
}

// Range returns the canonical Sequence over positions start through end,
// inclusive of both endpoints: Range(2, 3) on 123456 is "34". Negative
// positions count back from the end, so Range(1, -1) drops only the first
// digit. An endpoint outside the sequence fails with ErrIndexOutOfRange; a
// range whose end resolves before its start fails with ErrInvalidRange.
func (s Sequence) Range(start, end int) (Sequence, error) {
	lo, ok := s.position(start)
	if !ok {
		return Sequence{}, outOfRange(start, s.Len())
	}
	hi, ok := s.position(end)
	if !ok {
		return Sequence{}, outOfRange(end, s.Len())
	}
	if hi < lo {
		return Sequence{}, zerr.With(zerr.With(ErrInvalidRange, "start", lo), "end", hi)
	}
	return s.Slice(lo, hi-lo+1)
}

// Concat returns the canonical Sequence of the receiver's digits followed by
// other's. other may be a Sequence, a Digit, a digit string, or a slice of
// digit-likes ([]any, []int, []string, []Digit). An invalid element fails
// with that element's ErrInvalidDigit before any result is built; the
// receiver is never modified. The result's width is the receiver's width
// plus the appended digit count.
func (s Sequence) Concat(other any) (Sequence, error) {
	var appended string
	switch o := other.(type) {
	case Sequence:
		if o.rep == nil {
			return Sequence{}, invalidSequence(other)
		}
		appended = o.rep.chars
	case Digit:
		val, err := normalizeDigit(o)
		if err != nil {
			return Sequence{}, err
		}
		appended = string(byte('0' + val))
	case string, []any, []int, []string, []Digit:
		key, err := normalizeSequence(other)
		if err != nil {
			return Sequence{}, err
		}
		appended = key.digits
	default:
		return Sequence{}, invalidSequence(other)
	}
	return internSequence(seqKey{
		digits: s.rep.chars + appended,
		width:  s.rep.width + len(appended),
	})
}

// Repeat returns the canonical Sequence of the digit list repeated n times
// in order, with the width scaled by n. Repeat(0) is the canonical empty
// sequence; a negative n fails with ErrInvalidRepeatCount.
func (s Sequence) Repeat(n int) (Sequence, error) {
	if n < 0 {
		return Sequence{}, zerr.With(ErrInvalidRepeatCount, "count", n)
	}
	return internSequence(seqKey{
		digits: strings.Repeat(s.rep.chars, n),
		width:  s.rep.width * n,
	})
}

// Equal reports whether other denotes the same canonical sequence: identical
// digits and identical width. Another Sequence matches by identity. Raw
// integers, strings, and digit-like slices are normalized through the
// construction path first, so a sequence built from "123" equals 123 but the
// one built from "0123" does not (widths 3 and 4). Operands that cannot be
// normalized are unequal, never an error.
func (s Sequence) Equal(other any) bool {
	if o, ok := other.(Sequence); ok {
		return s.rep == o.rep
	}
	key, err := normalizeSequence(other)
	if err != nil {
		return false
	}
	return s.rep.chars == key.digits && s.rep.width == key.width
}

// Hash returns a hash of the canonical (digits, width) key, consistent with
// Equal and with ==.
func (s Sequence) Hash() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(s.rep.chars)
	_, _ = h.Write([]byte{0}) // Separator
	var w [8]byte
	binary.BigEndian.PutUint64(w[:], uint64(s.rep.width))
	_, _ = h.Write(w[:])
	return h.Sum64()
}

// Int returns the sequence's numeric value in base 10, ignoring padding.
// Sequences longer than 18 digits can exceed int64 and fail with
// ErrValueOverflow. The empty sequence has value 0.
func (s Sequence) Int() (int64, error) {
	if len(s.rep.chars) > 18 {
		return 0, zerr.With(ErrValueOverflow, "length", len(s.rep.chars))
	}
	var n int64
	for i := 0; i < len(s.rep.chars); i++ {
		n = n*10 + int64(s.rep.chars[i]-'0')
	}
	return n, nil
}
