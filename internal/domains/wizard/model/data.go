package model

import (
	"encoding/json"
	"maps"
)

// Data is the answer sheet shared by every step of a session. Values arrive as decoded JSON.
type Data map[string]any

func (d Data) Clone() Data {
	if d == nil {
		return Data{}
	}

	return maps.Clone(d)
}

func (d Data) String(key string) string {
	s, _ := d[key].(string)

	return s
}

// Float reads a number. Strings are not numbers.
func (d Data) Float(key string) (float64, bool) {
	switch v := d[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()

		return f, err == nil
	default:
		return 0, false
	}
}

func (d Data) Int(key string) (int, bool) {
	f, ok := d.Float(key)
	if !ok || f != float64(int(f)) {
		return 0, false
	}

	return int(f), true
}

// Strings reads a list of non-empty strings. Non-string entries are skipped.
func (d Data) Strings(key string) []string {
	switch v := d[key].(type) {
	case []string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if s != "" {
				out = append(out, s)
			}
		}

		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

// Object reads a nested answer such as a guest breakdown.
func (d Data) Object(key string) (Data, bool) {
	switch v := d[key].(type) {
	case map[string]any:
		return Data(v), true
	case Data:
		return v, true
	default:
		return nil, false
	}
}

// Decode copies the answers into out through their JSON field names.
func (d Data) Decode(out any) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return json.Unmarshal(raw, out) //nolint:wrapcheck
}
