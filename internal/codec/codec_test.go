package codec

import (
	"errors"
	"math"
	"testing"
)

func TestWidth(t *testing.T) {
	if Width != 10 {
		t.Errorf("Width = %d, want 10", Width)
	}
	if want := int(math.Ceil(math.Log2(float64(MaxValue)))); Width != want {
		t.Errorf("Width = %d, want ceil(log2(MaxValue)) = %d", Width, want)
	}
	if MaxValue>>Width != 0 || MaxValue>>(Width-1) == 0 {
		t.Errorf("MaxValue %d does not use exactly %d bits", MaxValue, Width)
	}
	for i, k := range KeyTable {
		if len(k) != Width || !IsBinary(k) {
			t.Errorf("KeyTable[%d] = %q is not a %d-bit binary string", i, k, Width)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		value uint
		want  string
	}{
		{0, "0000000000"},
		{1, "0000000001"},
		{2, "0000000010"},
		{5, "0000000101"},
		{512, "1000000000"},
		{1000, "1111101000"},
		{1023, "1111111111"},
	}

	for _, tt := range tests {
		got, err := Encode(tt.value)
		if err != nil {
			t.Fatalf("Encode(%d) error: %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("Encode(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestEncodeOverflow(t *testing.T) {
	for _, v := range []uint{1024, 2048, 1 << 20} {
		if _, err := Encode(v); !errors.Is(err, ErrOverflow) {
			t.Errorf("Encode(%d) error = %v, want ErrOverflow", v, err)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for v := uint(0); v <= MaxValue; v++ {
		s, err := Encode(v)
		if err != nil {
			t.Fatalf("Encode(%d) error: %v", v, err)
		}
		got, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", s, err)
		}
		if got != v {
			t.Fatalf("Decode(Encode(%d)) = %d", v, got)
		}
	}
}

func TestDecodeNotBinary(t *testing.T) {
	for _, s := range []string{"00000x0000", "abc", "0000000002", "O"} {
		v, err := Decode(s)
		if !errors.Is(err, ErrNotBinary) {
			t.Errorf("Decode(%q) error = %v, want ErrNotBinary", s, err)
		}
		if v != 0 {
			t.Errorf("Decode(%q) = %d, want 0", s, v)
		}
	}
}

func TestXOR(t *testing.T) {
	tests := []struct {
		name string
		bits string
		key  string
		want string
		err  error
	}{
		{name: "basic", bits: "1100", key: "1010", want: "0110"},
		{name: "zero key", bits: "1011", key: "0000", want: "1011"},
		{name: "self", bits: "0101100010", key: "0101100010", want: "0000000000"},
		{name: "length mismatch", bits: "101", key: "1010", err: ErrLengthMismatch},
		{name: "key not binary", bits: "1010", key: "10a0", err: ErrNotBinary},
		{name: "input not binary", bits: "1x10", key: "1010", err: ErrNotBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := XOR(tt.bits, tt.key)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("XOR(%q, %q) error = %v, want %v", tt.bits, tt.key, err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("XOR(%q, %q) error: %v", tt.bits, tt.key, err)
			}
			if got != tt.want {
				t.Errorf("XOR(%q, %q) = %q, want %q", tt.bits, tt.key, got, tt.want)
			}
		})
	}
}

func TestCryptDecryptRoundTrip(t *testing.T) {
	for k := range KeyTable {
		for v := uint(0); v <= MaxValue; v++ {
			c, err := Crypt(v, k)
			if err != nil {
				t.Fatalf("Crypt(%d, %d) error: %v", v, k, err)
			}
			if len(c) != Width {
				t.Fatalf("Crypt(%d, %d) = %q, want width %d", v, k, c, Width)
			}
			got, err := Decrypt(c, k)
			if err != nil {
				t.Fatalf("Decrypt(%q, %d) error: %v", c, k, err)
			}
			if got != v {
				t.Fatalf("Decrypt(Crypt(%d, %d)) = %d", v, k, got)
			}
		}
	}
}

func TestCryptMasksValue(t *testing.T) {
	// Key 0 is 0001101101, so 0 encrypts to the key itself.
	got, err := Crypt(0, 0)
	if err != nil {
		t.Fatalf("Crypt error: %v", err)
	}
	if got != KeyTable[0] {
		t.Errorf("Crypt(0, 0) = %q, want %q", got, KeyTable[0])
	}
}

func TestCryptErrors(t *testing.T) {
	if _, err := Crypt(1, len(KeyTable)); !errors.Is(err, ErrBadKey) {
		t.Errorf("Crypt with bad key error = %v, want ErrBadKey", err)
	}
	if _, err := Crypt(1, -1); !errors.Is(err, ErrBadKey) {
		t.Errorf("Crypt with negative key error = %v, want ErrBadKey", err)
	}
	if _, err := Crypt(MaxValue+1, 0); !errors.Is(err, ErrOverflow) {
		t.Errorf("Crypt overflow error = %v, want ErrOverflow", err)
	}
}

func TestDecryptInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   int
		err   error
	}{
		{name: "non binary", input: "00010x1101", key: 0, err: ErrNotBinary},
		{name: "short", input: "0101", key: 1, err: ErrLengthMismatch},
		{name: "bad key", input: "0000000000", key: 7, err: ErrBadKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decrypt(tt.input, tt.key)
			if !errors.Is(err, tt.err) {
				t.Errorf("Decrypt error = %v, want %v", err, tt.err)
			}
			if v != InvalidValue {
				t.Errorf("Decrypt value = %d, want %d", v, InvalidValue)
			}
		})
	}
}

func TestKeyIndex(t *testing.T) {
	for turn, want := range []int{0, 1, 2, 3, 0, 1, 2, 3, 0} {
		if got := KeyIndex(uint(turn)); got != want {
			t.Errorf("KeyIndex(%d) = %d, want %d", turn, got, want)
		}
	}
}
