package generator

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fencedJSON    = regexp.MustCompile("(?is)```json[ \\t]*\\r?\\n(.*?)```")
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// strategy proposes a JSON candidate from raw text.
type strategy func(raw string) (string, bool)

// Tried in order; the first candidate that decodes to an object wins.
var strategies = []strategy{
	fencedBlock,
	outermostBraces,
	wholeText,
}

// Extract recovers a JSON object from free-form model output. Each candidate
// is decoded as is and then once more with trailing commas removed. When
// every attempt fails the raw text is returned inside a *ParseError.
func Extract(raw string) (map[string]any, error) {
	for _, s := range strategies {
		candidate, ok := s(raw)
		if !ok {
			continue
		}
		if obj, ok := decode(candidate); ok {
			return obj, nil
		}
	}
	return nil, &ParseError{Raw: raw}
}

func fencedBlock(raw string) (string, bool) {
	m := fencedJSON.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func outermostBraces(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

func wholeText(raw string) (string, bool) {
	return raw, strings.TrimSpace(raw) != ""
}

func decode(candidate string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err == nil && obj != nil {
		return obj, true
	}
	repaired := trailingComma.ReplaceAllString(candidate, "$1")
	if err := json.Unmarshal([]byte(repaired), &obj); err == nil && obj != nil {
		return obj, true
	}
	return nil, false
}
