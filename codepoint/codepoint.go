package codepoint

// Plane is the UTF-8 byte-length class of a code point, not to be confused
// with official Unicode planes
type Plane uint8

const (
	// Ascii code points fit into a single byte
	Ascii Plane = iota
	// Latin code points take two bytes
	Latin
	// MultiLingual code points take three bytes
	MultiLingual
	// Extended code points take four bytes
	Extended
	// Invalid is everything else, including the UTF-16 surrogate range
	Invalid
)

// Of classifies a code point candidate. It is total: any int32, including
// negatives, lands in exactly one plane
func Of(cp int32) Plane {
	switch {
	case cp >= 0x000000 && cp <= 0x00007F:
		return Ascii
	case cp >= 0x000080 && cp <= 0x0007FF:
		return Latin
	// UTF-8 prohibits encoding the U+D800-U+DFFF range, those values are
	// reserved for UTF-16 surrogate pairs
	case (cp >= 0x000800 && cp < 0x00D800) || (cp > 0x00DFFF && cp <= 0x00FFFF):
		return MultiLingual
	case cp >= 0x010000 && cp <= 0x10FFFF:
		return Extended
	}

	return Invalid
}

// Valid reports whether cp is an encodable Unicode code point
func Valid(cp int32) bool {
	return Of(cp) != Invalid
}

func (p Plane) String() string {
	switch p {
	case Ascii:
		return "ascii"
	case Latin:
		return "latin"
	case MultiLingual:
		return "multilingual"
	case Extended:
		return "extended"
	default:
		return "invalid"
	}
}
