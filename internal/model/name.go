package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Name is a localized name. Every display name in the catalog carries up to
// three variants so clients can choose which script to render.
//
// Fields:
//
//	Native    – name in the original script, e.g. "残酷な天使のテーゼ".
//	Romanized – romanized variant, e.g. "Zankoku na Tenshi no Tēze".
//	English   – translated name, e.g. "The Cruel Angel's Thesis".
type Name struct {
	Native    *string `json:"native"`
	Romanized *string `json:"romanized"`
	English   *string `json:"english"`
}

// NameList is a JSONB column holding alternative names.
type NameList []Name

func (l NameList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *NameList) Scan(value any) error {
	return scanJSON(value, l)
}

// StringList is a JSONB column holding plain strings (labels, languages).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value any) error {
	return scanJSON(value, l)
}

// scanJSON decodes a JSONB column into dst. NULL leaves dst at its zero
// value, which callers treat as "absent" rather than "empty".
func scanJSON(value, dst any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("model: cannot scan %T into JSONB", value)
	}
}
