package digits_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digits"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// mustSequence builds a Sequence or fails the test.
func mustSequence(t *testing.T, v any) digits.Sequence {
	t.Helper()
	s, err := digits.NewSequence(v)
	require.NoError(t, err)
	return s
}

// mustDigit builds a Digit or fails the test.
func mustDigit(t *testing.T, v any) digits.Digit {
	t.Helper()
	d, err := digits.NewDigit(v)
	require.NoError(t, err)
	return d
}

func TestNewSequence_CanonicalIdentity(t *testing.T) {
	three := mustDigit(t, 3)

	tests := []struct {
		name  string
		input any
	}{
		{name: "int", input: 123456},
		{name: "int64", input: int64(123456)},
		{name: "uint64", input: uint64(123456)},
		{name: "string", input: "123456"},
		{name: "int slice", input: []int{1, 2, 3, 4, 5, 6}},
		{name: "string slice", input: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "mixed slice", input: []any{1, "2", three, uint8(4), int64(5), "6"}},
	}

	canonical := mustSequence(t, 123456)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSequence(t, tt.input)

			// Same canonical value, not merely an equal one.
			assert.True(t, s == canonical)
			assert.True(t, s.Equal(canonical))
			assert.Equal(t, canonical.Hash(), s.Hash())
		})
	}
}

func TestNewSequence_Idempotent(t *testing.T) {
	s := mustSequence(t, 42)
	again, err := digits.NewSequence(s)
	require.NoError(t, err)
	assert.True(t, s == again)
}

func TestNewSequence_WidthSensitivity(t *testing.T) {
	padded := mustSequence(t, "0123")
	fromInt := mustSequence(t, 123)
	fromSlice := mustSequence(t, []int{1, 2, 3})

	// Equal numeric value, different width: distinct canonical values.
	assert.False(t, padded == fromInt)
	assert.False(t, padded.Equal(fromInt))
	assert.False(t, padded.Equal(fromSlice))
	assert.NotEqual(t, padded.Hash(), fromInt.Hash())

	// The integer and slice forms agree with each other.
	assert.True(t, fromInt == fromSlice)
}

func TestNewSequence_LeadingZeroRoundTrip(t *testing.T) {
	s := mustSequence(t, "0123")

	assert.Equal(t, "0123", s.String())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 4, s.Width())

	first, err := s.First()
	require.NoError(t, err)
	assert.True(t, first.Equal(0))

	last, err := s.Last()
	require.NoError(t, err)
	assert.True(t, last.Equal(3))
}

func TestNewSequence_Zero(t *testing.T) {
	s := mustSequence(t, 0)
	assert.Equal(t, "0", s.String())
	assert.Equal(t, 1, s.Len())
}

func TestNewSequence_Empty(t *testing.T) {
	s := mustSequence(t, "")
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Width())
	assert.Equal(t, "", s.String())

	_, err := s.First()
	require.ErrorIs(t, err, digits.ErrIndexOutOfRange)
	_, err = s.Last()
	require.ErrorIs(t, err, digits.ErrIndexOutOfRange)
}

func TestNewSequence_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantErr error
	}{
		{name: "nil", input: nil, wantErr: digits.ErrInvalidSequence},
		{name: "bool", input: false, wantErr: digits.ErrInvalidSequence},
		{name: "float", input: 123.4, wantErr: digits.ErrInvalidSequence},
		{name: "negative int", input: -123, wantErr: digits.ErrInvalidSequence},
		{name: "zero-value Sequence", input: digits.Sequence{}, wantErr: digits.ErrInvalidSequence},
		{name: "string with letter", input: "12a4", wantErr: digits.ErrInvalidDigit},
		{name: "slice with letter", input: []any{1, "a"}, wantErr: digits.ErrInvalidDigit},
		{name: "slice with out-of-range int", input: []int{1, 19}, wantErr: digits.ErrInvalidDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := digits.NewSequence(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewSequence_NilCarriesRejectedValue(t *testing.T) {
	_, err := digits.NewSequence(nil)
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "<nil>", zErr.Metadata()["value"])
}

func TestSequence_EqualUnrelatedTypes(t *testing.T) {
	s := mustSequence(t, 123456)

	assert.True(t, s.Equal(123456))
	assert.True(t, s.Equal("123456"))
	assert.True(t, s.Equal([]int{1, 2, 3, 4, 5, 6}))
	assert.False(t, s.Equal(987654))
	assert.False(t, s.Equal(false))
	assert.False(t, s.Equal(nil))
	assert.False(t, s.Equal("0123456"))

	other := mustSequence(t, 987654)
	assert.NotEqual(t, s.Hash(), other.Hash())
}

func TestSequence_DigitsAndAll(t *testing.T) {
	s := mustSequence(t, 123)

	ds := s.Digits()
	require.Len(t, ds, 3)
	assert.True(t, ds[0].Equal(1))

	// Mutating the returned slice must not touch the canonical value.
	ds[0] = mustDigit(t, 9)
	first, err := s.First()
	require.NoError(t, err)
	assert.True(t, first.Equal(1))

	var got []int
	for i, d := range s.All() {
		assert.Equal(t, len(got), i)
		got = append(got, d.Value())
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSequence_JSONRoundTrip(t *testing.T) {
	type payload struct {
		Code digits.Sequence `json:"code"`
	}

	s := mustSequence(t, "0123")

	data, err := json.Marshal(payload{Code: s})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"0123"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Leading zeros survive the round trip and the decoded value is canonical.
	assert.True(t, decoded.Code == s)
	assert.Equal(t, "0123", decoded.Code.String())
}

func TestSequence_UnmarshalTextInvalid(t *testing.T) {
	var s digits.Sequence
	err := s.UnmarshalText([]byte("12x"))
	require.ErrorIs(t, err, digits.ErrInvalidDigit)
}

func TestSequence_ConcurrentConstruction(t *testing.T) {
	inputs := []any{
		908172, "908172",
		[]int{9, 0, 8, 1, 7, 2},
		[]string{"9", "0", "8", "1", "7", "2"},
	}

	results := make([]digits.Sequence, 64)
	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			s, err := digits.NewSequence(inputs[i%len(inputs)])
			if err != nil {
				return err
			}
			results[i] = s
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, s := range results {
		assert.True(t, s == results[0], "goroutine %d observed a different canonical value", i)
	}
}
