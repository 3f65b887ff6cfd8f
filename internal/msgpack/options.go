package msgpack

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Encoding selects the text convention applied to str payloads for the
// whole decode pass. The format itself does not distinguish the two;
// they diverge on non-ASCII bytes, so the choice is explicit.
type Encoding int

const (
	// EncodingUTF8 interprets str payloads as UTF-8. This is the
	// documented default.
	EncodingUTF8 Encoding = iota

	// EncodingLatin1 interprets str payloads as ISO 8859-1, one rune
	// per byte.
	EncodingLatin1
)

func (e Encoding) String() string {
	switch e {
	case EncodingLatin1:
		return "latin-1"
	default:
		return "utf-8"
	}
}

// ParseEncoding maps a configuration string to an Encoding.
func ParseEncoding(raw string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	default:
		return EncodingUTF8, fmt.Errorf("msgpack: unknown encoding %q", raw)
	}
}

// Options configures one decode pass.
type Options struct {
	Encoding Encoding
}

func decodeText(raw []byte, enc Encoding) string {
	if enc == EncodingLatin1 {
		// Every byte is defined in ISO 8859-1, so this cannot fail.
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err == nil {
			return string(out)
		}
	}
	return string(raw)
}
