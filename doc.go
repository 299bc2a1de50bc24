// Package digits provides canonical, immutable digit values for barcode
// validation: single decimal digits and ordered digit sequences with a
// display width that preserves leading zeros.
//
// Both types are interned. Every construction path normalizes its input to a
// canonical key and resolves it through a process-wide cache, so logically
// equal values share one representation: NewSequence(123456),
// NewSequence("123456"), and NewSequence([]int{1, 2, 3, 4, 5, 6}) all yield
// the same Sequence, while NewSequence("0123") is distinct from
// NewSequence(123) because its width is 4, not 3. Equality, hashing, and the
// == operator all follow from that shared identity.
//
// All operations (Slice, Range, Concat, Repeat) are purely constructive: they
// build new canonical values and never mutate existing ones. The zero values
// of Digit and Sequence are invalid; always construct through NewDigit and
// NewSequence.
package digits
