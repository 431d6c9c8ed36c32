package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EncodingDeclarer is implemented by sinks that only accept one encoding.
type EncodingDeclarer interface {
	Encoding() encoding.Encoding
}

// localeVars are consulted in order for the locale charset.
//
//nolint:gochecknoglobals // Read-only lookup table.
var localeVars = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// LookupEncoding resolves an encoding name such as "utf-8", "latin1" or
// "windows-1252". IANA names are tried before WHATWG labels so that
// "iso-8859-1" means ISO 8859-1. An empty name resolves to nil.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil //nolint:nilnil // nil selects the default encoding
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// localeEncoding returns the charset named by the locale environment, or
// nil when none is set or it cannot be resolved.
func localeEncoding() encoding.Encoding {
	for _, key := range localeVars {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		// language_TERRITORY.codeset@modifier
		_, codeset, found := strings.Cut(value, ".")
		if !found {
			return nil
		}
		codeset, _, _ = strings.Cut(codeset, "@")
		enc, err := LookupEncoding(codeset)
		if err != nil {
			return nil
		}
		return enc
	}
	return nil
}

// resolveEncoding picks the encoding for w: the sink's own, then forced,
// then the locale's. Nil means UTF-8.
func resolveEncoding(w io.Writer, forced encoding.Encoding) encoding.Encoding {
	if declarer, ok := w.(EncodingDeclarer); ok {
		if enc := declarer.Encoding(); enc != nil {
			return enc
		}
	}
	if forced != nil {
		return forced
	}
	return localeEncoding()
}

func isUTF8(enc encoding.Encoding) bool {
	if enc == nil || enc == unicode.UTF8 {
		return true
	}
	name, err := htmlindex.Name(enc)
	return err == nil && name == "utf-8"
}

// encodingWriter wraps w in a streaming encoder for enc, or returns w
// itself for UTF-8.
func encodingWriter(w io.Writer, enc encoding.Encoding) io.Writer {
	if isUTF8(enc) {
		return w
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
}

func validUTF8(text string) string {
	return strings.ToValidUTF8(text, string(utf8.RuneError))
}

// Encode converts text to the output encoding as a standalone unit.
// Invalid UTF-8 becomes U+FFFD and characters the encoding lacks become
// its replacement byte. Encodings with a stream prefix, such as UTF-16
// with a BOM, include it in every result; Writeln writes it only once per
// sink.
func (b *Base) Encode(text string) []byte {
	return encodeReplacing(b.enc, text)
}

func encodeReplacing(enc encoding.Encoding, text string) []byte {
	valid := validUTF8(text)
	if isUTF8(enc) {
		return []byte(valid)
	}
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(valid))
	if err != nil {
		return asciiReplacing(valid)
	}
	return out
}

// asciiReplacing is the last resort when an encoder fails outright.
func asciiReplacing(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r < utf8.RuneSelf {
			out = append(out, byte(r))
		} else {
			out = append(out, '?')
		}
	}
	return out
}
