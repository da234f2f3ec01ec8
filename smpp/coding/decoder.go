package coding

import (
	"strings"
)

// decodeAt decodes the sequence starting at p[i] and returns its rune and
// length in bytes. An escape prefix with nothing after it is an invalid
// escape sequence.
func decodeAt(p []byte, i int) (rune, int, error) {
	b := p[i]
	if b == EscapePrefix {
		if i+1 >= len(p) {
			return 0, 0, &DecodeError{Offset: i, Byte: b, Err: ErrInvalidEscapeSequence}
		}
		code := p[i+1]
		r, ok := ExtensionRune(code)
		if !ok {
			return 0, 0, &DecodeError{Offset: i, Byte: code, Err: ErrInvalidEscapeSequence}
		}
		return r, 2, nil
	}
	r, ok := MainRune(b)
	if !ok {
		return 0, 0, &DecodeError{Offset: i, Byte: b, Err: ErrInvalidMainTableByte}
	}
	return r, 1, nil
}

// Decode converts unpacked GSM 03.38 bytes to text. Any invalid sequence
// fails the whole input.
func (c *Codec) Decode(p []byte) (string, error) {
	var builder strings.Builder
	builder.Grow(len(p))
	for i := 0; i < len(p); {
		r, n, err := decodeAt(p, i)
		if err != nil {
			return "", err
		}
		builder.WriteRune(r)
		i += n
	}
	return builder.String(), nil
}

// DecodeRunes is Decode returning runes.
func (c *Codec) DecodeRunes(p []byte) ([]rune, error) {
	runes := make([]rune, 0, len(p))
	for i := 0; i < len(p); {
		r, n, err := decodeAt(p, i)
		if err != nil {
			return nil, err
		}
		runes = append(runes, r)
		i += n
	}
	return runes, nil
}
