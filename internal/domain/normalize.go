package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares text for accent- and case-insensitive comparison:
//   - converts to lowercase
//   - decomposes (NFD), drops combining marks, recomposes (NFC)
//   - compresses every whitespace run into one space
//   - trims leading/trailing whitespace
//
// "São  Paulo " and "sao paulo" normalize to the same value.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	stripped, _, err := transform.String(newMarkStripper(), text)
	if err == nil {
		text = stripped
	}

	return strings.Join(strings.Fields(text), " ")
}

// newMarkStripper builds a fresh transformer per call: transform.Chain
// keeps internal buffers and is not safe for concurrent use.
func newMarkStripper() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// NormalizeValue normalizes an arbitrary scalar. nil yields "".
func NormalizeValue(v any) string {
	return NormalizeText(Stringify(v))
}

// Stringify renders a decoded JSON scalar as text. Objects and arrays have
// no textual form for matching and yield "".
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
