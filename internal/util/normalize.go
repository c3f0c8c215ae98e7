package util

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// NormalizeStringList accepts either a JSON array of strings or a single
// comma-separated string and produces a trimmed list with empties
// dropped. The union shape stops here; the domain model only ever sees
// the canonical list.
func NormalizeStringList(v gjson.Result) []string {
	var raw []string
	if v.IsArray() {
		for _, item := range v.Array() {
			raw = append(raw, item.String())
		}
	} else if v.Exists() {
		raw = strings.Split(v.String(), ",")
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ParseIntField reads a numeric payload field that may arrive as a JSON
// number or a numeric string. Returns false when present but not a number.
func ParseIntField(v gjson.Result) (int, bool) {
	switch v.Type {
	case gjson.Number:
		return int(v.Int()), true
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(v.String()))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// TrimmedString returns the field's value with surrounding space removed.
func TrimmedString(v gjson.Result) string {
	return strings.TrimSpace(v.String())
}
