// Package content decodes request content that arrives as plain text or base64.
package content

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// Input encodings accepted by every transformation and bridge entry point.
// "string" is the wire name for plain text and is accepted as an alias.
const (
	EncodingPlain  = "plain"
	EncodingBase64 = "base64"
)

// Decode returns the text content for the given encoding. Plain content is
// passed through untouched; base64 content is decoded and checked for valid
// UTF-8. Callers wrap the returned error into their own fault kind.
func Decode(text, encoding string) (string, error) {
	switch encoding {
	case "", EncodingPlain, "string":
		return text, nil
	case EncodingBase64:
		decoded, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return "", fmt.Errorf("failed to decode base64 input: %v", err)
		}
		if !utf8.Valid(decoded) {
			return "", fmt.Errorf("failed to decode base64 input: content is not valid UTF-8")
		}
		return string(decoded), nil
	}

	return "", fmt.Errorf("unknown input encoding %q", encoding)
}
