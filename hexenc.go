// Package hexpoint converts hexadecimal Unicode code point notation
// (e.g. "0048") into UTF-8 byte sequences.
package hexpoint

import (
	"github.com/hexpoint/hexpoint/codepoint"
	"github.com/hexpoint/hexpoint/hexconv"
	"github.com/indigo-web/utils/uf"
)

// UTF-8 byte prefixes. Lead bytes carry the plane-specific prefix, every
// following byte carries the continuation prefix
const (
	contPrefix      = 0x80 // 0b10000000
	latinPrefix     = 0xC0 // 0b11000000
	multiLingPrefix = 0xE0 // 0b11100000
	extendedPrefix  = 0xF0 // 0b11110000
)

// Encode converts a hex code point (1, 2, 4 or 6 digits by convention, any
// even length up to 8 works) into its UTF-8 byte sequence. Malformed hex
// fails with one of hexconv's errors, unencodable values with
// codepoint.ErrInvalid
func Encode(hexstr string) ([]byte, error) {
	return EncodeTo(hexstr, nil)
}

// EncodeTo appends the UTF-8 byte sequence to buff, saving an allocation
// for callers that already hold one
func EncodeTo(hexstr string, buff []byte) ([]byte, error) {
	value, err := hexconv.Parse[uint32](hexstr)
	if err != nil {
		return nil, err
	}

	cp := int32(value)

	// The code point bits spread over the output bytes as follows:
	//
	//	U+0000..U+007F    0yyyzzzz
	//	U+0080..U+07FF    110xxxyy 10yyzzzz
	//	U+0800..U+FFFF    1110wwww 10xxxxyy 10yyzzzz
	//	U+010000..        11110uvv 10vvwwww 10xxxxyy 10yyzzzz
	//
	// with the code point itself being 00000000 000uvvvv wwwwxxxx yyyyzzzz.
	// Each continuation byte takes the next lower 6 bits of the value
	switch codepoint.Of(cp) {
	case codepoint.Ascii:
		return append(buff, byte(cp)), nil
	case codepoint.Latin:
		return append(buff,
			latinPrefix|byte(cp>>6),
			contPrefix|byte(cp&0x3F),
		), nil
	case codepoint.MultiLingual:
		return append(buff,
			multiLingPrefix|byte(cp>>12),
			contPrefix|byte(cp>>6&0x3F),
			contPrefix|byte(cp&0x3F),
		), nil
	case codepoint.Extended:
		return append(buff,
			extendedPrefix|byte(cp>>18),
			contPrefix|byte(cp>>12&0x3F),
			contPrefix|byte(cp>>6&0x3F),
			contPrefix|byte(cp&0x3F),
		), nil
	}

	return nil, codepoint.ErrInvalid
}

// EncodeString is Encode for callers that want the character back as a
// string. The returned string aliases the encoded bytes, no extra copy
func EncodeString(hexstr string) (string, error) {
	encoded, err := Encode(hexstr)
	if err != nil {
		return "", err
	}

	return uf.B2S(encoded), nil
}
