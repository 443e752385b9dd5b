// Package codec provides the fixed-width binary encoding and the XOR key
// rotation used to obfuscate numeric fields of the save file.
package codec

import (
	"errors"
	"fmt"
	"strings"
)

// Encoding limits.
const (
	// MaxValue is the largest value that fits in a field.
	MaxValue uint = 1023

	// InvalidValue is returned by Decrypt for unreadable input.
	// It exceeds every legal candy value and grid dimension.
	InvalidValue uint = MaxValue + 1
)

// Width is the number of characters in every encoded field,
// ceil(log2(MaxValue)).
const Width = 10

// topBit is the weight of the leftmost character.
var topBit = MaxValue/2 + 1

var (
	// ErrOverflow is returned when a value exceeds MaxValue.
	ErrOverflow = errors.New("codec: value exceeds field capacity")

	// ErrNotBinary is returned when a string holds characters other than '0' and '1'.
	ErrNotBinary = errors.New("codec: not a binary string")
)

// IsBinary reports whether s consists only of '0' and '1'.
func IsBinary(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

// Encode converts v into a Width-character binary string, most significant bit first.
func Encode(v uint) (string, error) {
	if v > MaxValue {
		return "", fmt.Errorf("%w: %d > %d", ErrOverflow, v, MaxValue)
	}

	var b strings.Builder
	b.Grow(Width)

	rest := v
	for weight := topBit; weight >= 1; weight /= 2 {
		if rest >= weight {
			b.WriteByte('1')
			rest -= weight
		} else {
			b.WriteByte('0')
		}
	}
	return b.String(), nil
}

// Decode converts a binary string back into its value.
// Any non-binary character yields 0 and ErrNotBinary.
func Decode(s string) (uint, error) {
	if !IsBinary(s) {
		return 0, fmt.Errorf("%w: %q", ErrNotBinary, s)
	}

	var v uint
	for i := 0; i < len(s); i++ {
		v <<= 1
		if s[i] == '1' {
			v |= 1
		}
	}
	return v, nil
}
