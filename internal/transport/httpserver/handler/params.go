package handler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

func parseIDParam(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("id is required")
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

// text is a record field as sent by browsers and scripts: usually a string,
// but number inputs arrive as JSON numbers. Numbers and booleans keep their
// literal spelling; null becomes "".
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return fmt.Errorf("empty value")
	}

	switch c := raw[0]; {
	case raw == "null":
		*t = ""
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(s)
	case raw == "true" || raw == "false":
		*t = text(raw)
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*t = text(n.String())
	default:
		return fmt.Errorf("expected text, got %s", raw)
	}
	return nil
}
