package codepoint

import "errors"

// ErrInvalid is returned on an attempt to encode a value from the Invalid
// plane: a surrogate, a negative value or anything past U+10FFFF
var ErrInvalid = errors.New("not an encodable code point")
