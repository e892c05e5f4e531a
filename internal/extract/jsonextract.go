package extract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripFences removes a leading ```json (or bare ```) fence and a trailing
// ``` fence from model output, if present.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

// matchBrackets returns the substring of s from the first occurrence of open
// to its matching close, scanning with a depth counter and skipping bracket
// characters inside JSON string literals.
func matchBrackets(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// DecodeObject recovers the first JSON object embedded in raw model text and
// unmarshals it into v. Fencing and surrounding prose are tolerated; a parse
// failure is returned to the caller, not swallowed.
func DecodeObject(raw string, v interface{}) error {
	text := StripFences(raw)
	obj, ok := matchBrackets(text, '{', '}')
	if !ok {
		return fmt.Errorf("no JSON object found in model response")
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return fmt.Errorf("decoding model JSON: %w", err)
	}
	return nil
}

// DecodeArray recovers the first JSON array embedded in raw model text and
// unmarshals it into v.
func DecodeArray(raw string, v interface{}) error {
	text := StripFences(raw)
	arr, ok := matchBrackets(text, '[', ']')
	if !ok {
		return fmt.Errorf("no JSON array found in model response")
	}
	if err := json.Unmarshal([]byte(arr), v); err != nil {
		return fmt.Errorf("decoding model JSON: %w", err)
	}
	return nil
}

// truncate shortens s for inclusion in diagnostic messages.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
