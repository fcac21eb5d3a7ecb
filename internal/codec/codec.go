// Package codec holds the shared rules of the fixed-width binary record
// format: exact-length validation and the zero-padded text convention used
// by every entity stored on disk.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrWrongByteLen reports a chunk whose size does not match the fixed
	// record width of the entity being decoded.
	ErrWrongByteLen = errors.New("wrong byte length")
	// ErrBadString reports a text field that is not valid UTF-8.
	ErrBadString = errors.New("bad string")
	// ErrTextInvalid reports text that cannot be stored in a zero-padded
	// field, either because it is too long or contains a zero byte.
	ErrTextInvalid = errors.New("invalid text")
)

// WrongByteLen builds the decode error for a chunk of the wrong size.
func WrongByteLen(entity string, got, want int) error {
	return fmt.Errorf("cannot decode the %s: expected %d bytes, got %d bytes: %w",
		entity, want, got, ErrWrongByteLen)
}

// EncodeText writes s into a zero-padded field of the given width.
// Text containing a zero byte is rejected: padding is stripped on decode,
// so an embedded NUL would silently truncate the text on the next load.
func EncodeText(entity, s string, width int) ([]byte, error) {
	if len(s) > width {
		return nil, fmt.Errorf("the %s is too long: %d bytes, maximum is %d: %w",
			entity, len(s), width, ErrTextInvalid)
	}
	if bytes.IndexByte([]byte(s), 0) >= 0 {
		return nil, fmt.Errorf("the %s contains a zero byte: %w", entity, ErrTextInvalid)
	}
	field := make([]byte, width)
	copy(field, s)
	return field, nil
}

// DecodeText strips the zero padding from a text field and validates the
// remaining bytes as UTF-8.
func DecodeText(entity string, field []byte) (string, error) {
	var text []byte
	for _, b := range field {
		if b != 0 {
			text = append(text, b)
		}
	}
	if !utf8.Valid(text) {
		return "", fmt.Errorf("cannot decode the %s: %w", entity, ErrBadString)
	}
	return string(text), nil
}
