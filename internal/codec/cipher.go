package codec

import (
	"errors"
	"fmt"
	"strings"
)

// KeyTable holds the rotating keys. The active key for a turn is
// KeyTable[KeyIndex(turn)].
var KeyTable = [...]string{
	"0001101101",
	"0101100010",
	"1000010101",
	"0000000110",
}

var (
	// ErrLengthMismatch is returned when XOR operands differ in length.
	ErrLengthMismatch = errors.New("codec: operand length mismatch")

	// ErrBadKey is returned for a key index outside KeyTable.
	ErrBadKey = errors.New("codec: key index out of range")
)

// KeyIndex returns the key table slot used for the given turn.
func KeyIndex(turn uint) int {
	return int(turn % uint(len(KeyTable)))
}

// XOR returns the bitwise exclusive or of two equal-length binary strings.
func XOR(bits, key string) (string, error) {
	if len(bits) != len(key) {
		return "", fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(bits), len(key))
	}
	if !IsBinary(key) {
		return "", fmt.Errorf("%w: key %q", ErrNotBinary, key)
	}
	if !IsBinary(bits) {
		return "", fmt.Errorf("%w: %q", ErrNotBinary, bits)
	}

	var b strings.Builder
	b.Grow(len(bits))
	for i := 0; i < len(bits); i++ {
		if bits[i] != key[i] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String(), nil
}

func key(index int) (string, error) {
	if index < 0 || index >= len(KeyTable) {
		return "", fmt.Errorf("%w: %d", ErrBadKey, index)
	}
	return KeyTable[index], nil
}

// Crypt encodes v and masks it with the key at keyIndex.
func Crypt(v uint, keyIndex int) (string, error) {
	k, err := key(keyIndex)
	if err != nil {
		return "", err
	}
	bits, err := Encode(v)
	if err != nil {
		return "", err
	}
	return XOR(bits, k)
}

// Decrypt reverses Crypt. On failure it returns InvalidValue together with
// the error so the result can never pass for a legal field.
func Decrypt(s string, keyIndex int) (uint, error) {
	k, err := key(keyIndex)
	if err != nil {
		return InvalidValue, err
	}
	if !IsBinary(s) {
		return InvalidValue, fmt.Errorf("%w: %q", ErrNotBinary, s)
	}
	plain, err := XOR(s, k)
	if err != nil {
		return InvalidValue, err
	}
	v, err := Decode(plain)
	if err != nil {
		return InvalidValue, err
	}
	return v, nil
}
