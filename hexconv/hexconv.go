package hexconv

import (
	"errors"

	"github.com/hexpoint/hexpoint/internal/constraints"
)

var (
	ErrEmpty     = errors.New("empty hex string")
	ErrOddLength = errors.New("hex string length must be even")
	ErrTooLong   = errors.New("hex string overflows the target type")
	ErrBadDigit  = errors.New("not a hex digit")
)

// bad marks table entries that don't correspond to a hex digit. A nibble
// never exceeds 0xF, so the sentinel cannot collide with a real value
const bad = 0xFF

var decodeTable = func() (table [256]byte) {
	for i := range table {
		table[i] = bad
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 10
	}

	for c := byte('A'); c <= 'F'; c++ {
		table[c] = c - 'A' + 10
	}

	return table
}()

// Halfbyte returns the 4-bit value of a hex digit, or 0xFF if char isn't one.
// So zero stays a legitimate return value, unlike with a zero sentinel
func Halfbyte(char byte) byte {
	return decodeTable[char]
}

func IsDigit(char byte) bool {
	return decodeTable[char] != bad
}

// Parse interprets hexstr as a big-endian unsigned value of type T. The
// string must be non-empty, of even length (two digits per byte) and fit
// into T. The first invalid digit fails the whole parse, no partial value
// is ever returned
func Parse[T constraints.Uint](hexstr string) (T, error) {
	switch {
	case len(hexstr) == 0:
		return 0, ErrEmpty
	case len(hexstr)%2 != 0:
		return 0, ErrOddLength
	case len(hexstr) > digits[T]():
		return 0, ErrTooLong
	}

	var value T

	for i := 0; i < len(hexstr); i++ {
		halfbyte := decodeTable[hexstr[i]]
		if halfbyte == bad {
			return 0, ErrBadDigit
		}

		value = value<<4 | T(halfbyte)
	}

	return value, nil
}

// digits reports how many hex digits fit into T
func digits[T constraints.Uint]() int {
	n := 0

	for value := ^T(0); value != 0; value >>= 4 {
		n++
	}

	return n
}
