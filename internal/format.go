package internal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Placeholder names understood by chat templates
const (
	JudgmentPlaceholder = "judgment"
	ElementPlaceholder  = "x"
)

// segment is either a literal run of text or a placeholder reference
type segment struct {
	literal string
	field   bool
}

// fieldTemplate is a parsed template with a single named placeholder.
// "{name}" marks the placeholder, "{{" and "}}" are literal braces.
type fieldTemplate struct {
	raw      string
	segments []segment
}

// parseFieldTemplate parses raw and checks that it references field and nothing else.
// owner names the template in errors.
func parseFieldTemplate(owner, raw, field string) (*fieldTemplate, error) {
	fail := func(format string, args ...interface{}) error {
		return &TemplateError{Template: owner, Placeholder: field, Err: fmt.Errorf(format, args...)}
	}

	var segments []segment
	var lit strings.Builder
	found := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch c {
		case '{':
			if i+1 < len(raw) && raw[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(raw[i+1:], '}')
			if end < 0 {
				return nil, fail("unbalanced '{' at offset %d", i)
			}
			name := raw[i+1 : i+1+end]
			if name != field {
				if name == "" {
					return nil, fail("empty placeholder at offset %d", i)
				}
				return nil, fail("unknown placeholder {%s} at offset %d", name, i)
			}
			if lit.Len() > 0 {
				segments = append(segments, segment{literal: lit.String()})
				lit.Reset()
			}
			segments = append(segments, segment{field: true})
			found = true
			i += end + 1
		case '}':
			if i+1 < len(raw) && raw[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, fail("single '}' at offset %d", i)
		default:
			lit.WriteByte(c)
		}
	}
	if lit.Len() > 0 {
		segments = append(segments, segment{literal: lit.String()})
	}
	if !found {
		return nil, fail("placeholder not found")
	}

	return &fieldTemplate{raw: raw, segments: segments}, nil
}

// execute substitutes value for every placeholder occurrence
func (t *fieldTemplate) execute(value string) string {
	var b strings.Builder
	for _, s := range t.segments {
		if s.field {
			b.WriteString(value)
		} else {
			b.WriteString(s.literal)
		}
	}
	return b.String()
}

// CanonicalJSON encodes v as single-line ASCII JSON with ", " and ": " separators.
// Map keys come out sorted; json.RawMessage input keeps its own key order.
func CanonicalJSON(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode judgment: %w", err)
	}
	return spaceJSON(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// spaceJSON adds a space after every ',' and ':' outside of string literals
// and escapes non-ASCII characters inside them as \uXXXX (UTF-16 pairs above U+FFFF)
func spaceJSON(compact []byte) string {
	var b strings.Builder
	b.Grow(len(compact) + len(compact)/8)

	inString := false
	escaped := false
	for _, r := range string(compact) {
		if inString {
			switch {
			case r > unicode.MaxASCII:
				writeUnicodeEscape(&b, r)
				continue
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			b.WriteRune(r)
			continue
		}
		b.WriteRune(r)
		switch r {
		case '"':
			inString = true
		case ',', ':':
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func writeUnicodeEscape(b *strings.Builder, r rune) {
	if r > 0xFFFF {
		hi, lo := utf16.EncodeRune(r)
		fmt.Fprintf(b, "\\u%04x\\u%04x", hi, lo)
		return
	}
	fmt.Fprintf(b, "\\u%04x", r)
}

// elementText renders one element of a parsed response array.
// Strings substitute as-is, everything else as canonical JSON.
func elementText(x interface{}) string {
	if s, ok := x.(string); ok {
		return s
	}
	text, err := CanonicalJSON(x)
	if err != nil {
		return fmt.Sprint(x)
	}
	return text
}

var errNotArray = errors.New("response is not a JSON array")

// parseResponseArray decodes response as a JSON array, keeping number literals intact
func parseResponseArray(response string) ([]interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(response))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON value")
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, errNotArray
	}
	return items, nil
}
