package coding

import (
	"errors"
	"fmt"
)

//goland:noinspection ALL
var (
	ErrUnmappableCharacter   = errors.New("coding: unmappable character")
	ErrInvalidEscapeSequence = errors.New("coding: invalid escape sequence")
	ErrInvalidMainTableByte  = errors.New("coding: invalid main table byte")
	ErrNoUnmappablePolicy    = errors.New("coding: unmappable policy not set")
	ErrUnknownNULPolicy      = errors.New("coding: unknown nul policy")
	ErrInvalidReplacement    = errors.New("coding: replacement must be a single-byte main table character other than '@'")
)

// UnmappableCharacterError is returned in strict mode for a rune present in
// neither table. Position is the rune index within the input.
type UnmappableCharacterError struct {
	Rune     rune
	Position int
}

func (e *UnmappableCharacterError) Error() string {
	return fmt.Sprintf("coding: unmappable character %U at position %d", e.Rune, e.Position)
}

func (e *UnmappableCharacterError) Unwrap() error { return ErrUnmappableCharacter }

// DecodeError reports the byte offset of an invalid sequence. Err is
// ErrInvalidEscapeSequence or ErrInvalidMainTableByte. Byte is the offending
// byte: the escape code, the escape prefix itself when nothing follows it,
// or the main table byte.
type DecodeError struct {
	Offset int
	Byte   byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: byte 0x%02X at offset %d", e.Err, e.Byte, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }
