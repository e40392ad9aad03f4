package fileutil

import (
	"bytes"
	"errors"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNotText marks files whose contents do not decode as UTF-8 text.
var ErrNotText = errors.New("not valid UTF-8 text")

// binarySniffLen bounds the NUL-byte probe to the head of the file.
const binarySniffLen = 512

// ReadText reads path and returns its contents decoded as UTF-8. A leading
// byte order mark is stripped (UTF-16 content with a BOM is transcoded).
// Returns ErrNotText when the contents are not valid text.
func ReadText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeText(raw)
}

// DecodeText decodes raw bytes as BOM-tolerant UTF-8 text.
func DecodeText(raw []byte) (string, error) {
	decoder := transform.Chain(unicode.BOMOverride(transform.Nop), encoding.UTF8Validator)
	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", ErrNotText
	}
	if !utf8.Valid(decoded) || looksBinary(decoded) {
		return "", ErrNotText
	}
	return string(decoded), nil
}

// looksBinary probes the head of the content for NUL bytes, which valid
// UTF-8 permits but text asset files never contain.
func looksBinary(data []byte) bool {
	probe := data
	if len(probe) > binarySniffLen {
		probe = probe[:binarySniffLen]
	}
	return bytes.IndexByte(probe, 0) >= 0
}
