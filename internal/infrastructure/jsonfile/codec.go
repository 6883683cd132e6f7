package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"RegionEnricher/internal/domain"
)

const (
	indent = "    "

	// maxDepth matches the nesting limit of encoding/json.
	maxDepth = 10000
)

// ErrTooDeep is returned for documents nested deeper than maxDepth.
var ErrTooDeep = fmt.Errorf("document exceeds maximum nesting depth of %d", maxDepth)

// ErrInvalidUTF8 is returned for input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("document is not valid UTF-8")

// Decode parses a JSON document into a generic tree. Objects become
// *domain.Object with key order preserved, arrays []any, numbers json.Number.
func Decode(data []byte) (any, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeValue(dec, 0)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", io.ErrUnexpectedEOF)
		}
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("extra data after offset %d", dec.InputOffset())
	}

	return value, nil
}

func decodeValue(dec *json.Decoder, depth int) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	if depth >= maxDepth {
		return nil, fmt.Errorf("%w at offset %d", ErrTooDeep, dec.InputOffset())
	}

	switch delim {
	case '{':
		obj := domain.NewObject()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key at offset %d is not a string", dec.InputOffset())
			}
			value, err := decodeValue(dec, depth+1)
			if err != nil {
				return nil, err
			}
			obj.Set(key, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		list := make([]any, 0)
		for dec.More() {
			value, err := decodeValue(dec, depth+1)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q at offset %d", delim, dec.InputOffset())
	}
}

// Encode renders records as an indented JSON array. Non-ASCII and HTML
// characters, U+2028 and U+2029 included, are written as-is and no trailing
// newline is added.
func Encode(records []*domain.Object) ([]byte, error) {
	if records == nil {
		records = []*domain.Object{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}

	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes that
// encoding/json always emits back into literal characters. Escape pairs are
// skipped whole so an escaped backslash followed by "u2028" is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if seq := data[i+1:]; len(seq) >= 5 && seq[0] == 'u' && string(seq[1:4]) == "202" && (seq[4] == '8' || seq[4] == '9') {
			r := '\u2028'
			if seq[4] == '9' {
				r = '\u2029'
			}
			out = utf8.AppendRune(out, r)
			i += 5
			continue
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}
