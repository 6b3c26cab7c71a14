package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList maps a JSON-encoded text column to a []string. Legacy rows may
// hold a bare string instead of an array; both decode without failing the row.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringList) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}

	var raw string
	switch v := src.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		*s = StringList{}
		return nil
	}

	var values []string
	if err := json.Unmarshal([]byte(trimmed), &values); err != nil {
		// legacy single-string value
		*s = StringList{trimmed}
		return nil
	}
	*s = values
	return nil
}
