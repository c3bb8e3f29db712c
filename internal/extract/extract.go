// Package extract recovers a JSON object from raw model output that may be
// wrapped in markdown fences or surrounded by prose. It is a best-effort
// heuristic: a sufficiently truncated or adversarial response can still
// defeat it, in which case ErrNoJSON is returned.
package extract

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON means no strategy could recover a parseable JSON object.
var ErrNoJSON = errors.New("model did not return a usable JSON structure")

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// strategies are tried in order; the first one that yields valid JSON wins.
var strategies = []func(string) ([]byte, bool){
	direct,
	fenced,
	braced,
}

// JSON returns the first parseable JSON object found in raw.
func JSON(raw string) ([]byte, error) {
	for _, strategy := range strategies {
		if data, ok := strategy(raw); ok {
			return data, nil
		}
	}
	return nil, ErrNoJSON
}

func direct(raw string) ([]byte, bool) {
	return asObject(raw)
}

func fenced(raw string) ([]byte, bool) {
	for _, match := range fencedBlock.FindAllStringSubmatch(raw, -1) {
		if data, ok := asObject(match[1]); ok {
			return data, true
		}
	}
	return nil, false
}

// braced takes the widest {...} span in the text. Greedy on purpose: model
// output tends to be one object with nested braces inside.
func braced(raw string) ([]byte, bool) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return nil, false
	}
	return asObject(raw[start : end+1])
}

func asObject(s string) ([]byte, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return nil, false
	}
	return []byte(trimmed), true
}
