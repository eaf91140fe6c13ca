package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// ErrNoJSONObject is returned when a completion contains no {...} block.
var ErrNoJSONObject = errors.New("no JSON object in completion")

// ExtractJSONObject strips Markdown code fences from a completion and returns
// the span from the first '{' to the last '}'.
func ExtractJSONObject(text string) (string, bool) {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```JSON", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// DecodeJSONObject locates the JSON object in a completion and decodes it
// into v. Strict decoding is tried first, then a repaired form (trailing
// commas, single quotes, unquoted keys), then Hjson.
func DecodeJSONObject(text string, v any) error {
	raw, ok := ExtractJSONObject(text)
	if !ok {
		return ErrNoJSONObject
	}

	strictErr := json.Unmarshal([]byte(raw), v)
	if strictErr == nil {
		return nil
	}

	if repaired, err := jsonrepair.RepairJSON(raw); err == nil {
		if err := json.Unmarshal([]byte(repaired), v); err == nil {
			return nil
		}
	}

	var loose any
	if err := hjson.Unmarshal([]byte(raw), &loose); err == nil {
		if b, err := json.Marshal(loose); err == nil {
			if err := json.Unmarshal(b, v); err == nil {
				return nil
			}
		}
	}

	return fmt.Errorf("decoding completion JSON: %w (raw: %s)", strictErr, Truncate(raw, 200))
}
