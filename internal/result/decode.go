package result

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var encodingDecl = regexp.MustCompile(`encoding\s*=\s*["']([A-Za-z0-9._-]+)["']`)

// readXMLFile reads a result file and decodes it to a string, honoring a
// byte-order mark or an XML declaration's encoding attribute. Files without
// either are treated as UTF-8.
func readXMLFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return decodeXML(raw)
}

func decodeXML(raw []byte) (string, error) {
	switch {
	case bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}):
		return string(raw[3:]), nil
	case bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		return decodeBytes(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), raw[2:])
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}):
		return decodeBytes(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), raw[2:])
	}

	name := declaredEncoding(raw)
	if name == "" || strings.EqualFold(name, "utf-8") {
		return string(raw), nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return "", fmt.Errorf("unsupported encoding %q in XML declaration", name)
	}
	return decodeBytes(enc, raw)
}

func decodeBytes(enc encoding.Encoding, raw []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding result content: %w", err)
	}
	return string(out), nil
}

// declaredEncoding extracts the encoding name from an XML declaration, if the
// document starts with one.
func declaredEncoding(raw []byte) string {
	if !bytes.HasPrefix(raw, []byte("<?xml")) {
		return ""
	}
	end := bytes.Index(raw, []byte("?>"))
	if end < 0 {
		return ""
	}
	m := encodingDecl.FindSubmatch(raw[:end])
	if m == nil {
		return ""
	}
	return string(m[1])
}
