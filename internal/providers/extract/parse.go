package extract

import (
	"encoding/json"
	"errors"
	"strings"
)

// parseResult decodes model output into a Result. The model sometimes wraps
// the JSON in a code fence or surrounds it with prose.
func parseResult(raw string) (Result, error) {
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return Result{}, errors.New("empty payload")
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return Result{}, err
	}
	return Result{
		PromotionName: stringField(fields, "promotionName"),
		TextElement:   stringField(fields, "textElement"),
	}, nil
}

// stringField tolerates schema violations: non-string values become "".
func stringField(fields map[string]any, key string) string {
	v, ok := fields[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return ""
	}
	return strings.TrimSpace(text[start : end+1])
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
