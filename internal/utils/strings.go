package utils

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// DefaultMaxStringLength is used by TruncateString when maxLen is not positive.
const DefaultMaxStringLength = 500

// JSONToString renders v as JSON, indented when indent is true. Marshal
// failures are rendered as a JSON error object so the result is always safe
// to print.
func JSONToString(v any, indent bool) string {
	var (
		encoded []byte
		err     error
	)
	if indent {
		encoded, err = json.MarshalIndent(v, "", "  ")
	} else {
		encoded, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, "marshal: "+err.Error())
	}
	return string(encoded)
}

// TruncateString shortens s to at most maxLen runes and appends the total
// length so readers know data was omitted.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	n := utf8.RuneCountInString(s)
	if n <= maxLen {
		return s
	}
	runes := []rune(s)
	return fmt.Sprintf("%s... (truncated, total: %d chars)", string(runes[:maxLen]), n)
}
