package adapter

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// ErrUnknownEncoding is returned for encoding names the WHATWG index does not know.
var ErrUnknownEncoding = errors.New("unknown encoding")

const utf8Name = "utf-8"

// lookupEncoding resolves an encoding label ("utf-8", "euc-kr", "utf-16le", ...)
// and returns its canonical name.
func lookupEncoding(label string) (encoding.Encoding, string, error) {
	if label == "" {
		label = utf8Name
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	return enc, name, nil
}

// decodeText converts raw file bytes to a string. UTF-8 input is passed
// through unchanged but must be valid.
func decodeText(raw []byte, label string) (string, error) {
	enc, name, err := lookupEncoding(label)
	if err != nil {
		return "", err
	}

	if name == utf8Name {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("invalid %s input", utf8Name)
		}

		return string(raw), nil
	}

	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}

	return string(out), nil
}

// encodeText converts text to bytes in the named encoding. Characters the
// encoding cannot represent are an error.
func encodeText(text string, label string) ([]byte, error) {
	enc, name, err := lookupEncoding(label)
	if err != nil {
		return nil, err
	}

	if name == utf8Name {
		return []byte(text), nil
	}

	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}

	return out, nil
}
