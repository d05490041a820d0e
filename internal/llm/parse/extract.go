// Package parse turns free-text model completions into fully populated AI
// results. Parsing runs in two stages: ExtractObject pulls a JSON object out
// of the text, and the *FromObject functions default every field
// individually. The combined functions never fail.
package parse

import (
	"encoding/json"
	"strings"
)

// ExtractObject finds the span from the first '{' to the last '}' in raw and
// decodes it as a JSON object. Markdown fences and commentary around the
// object fall outside the span; the span itself is decoded untouched, so
// string values may contain fences or braces.
// It reports false when there is no span or the span is not a JSON object.
func ExtractObject(raw string) (map[string]any, bool) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end < start {
		return nil, false
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &obj); err != nil {
		return nil, false
	}
	if obj == nil {
		return nil, false
	}
	return obj, true
}
