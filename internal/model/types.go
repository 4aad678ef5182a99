package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSON-encoded list of strings stored in a single column
// (jsonb on PostgreSQL, text on SQLite).
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// GormDataType tells GORM which column type to use for the generic dialect
func (StringList) GormDataType() string {
	return "json"
}

// Option is one selectable answer inside a conversation node. NextQuestionID
// is nil for terminal options; otherwise it names the node the client should
// fetch next, or the dynamic products node.
type Option struct {
	Option         string  `json:"option"`
	Answer         string  `json:"answer"`
	NextQuestionID *string `json:"nextQuestionId"`
}

// OptionList is a JSON-encoded ordered list of options.
type OptionList []Option

// Value implements driver.Valuer
func (l OptionList) Value() (driver.Value, error) {
	if l == nil {
		l = OptionList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *OptionList) Scan(value interface{}) error {
	if value == nil {
		*l = OptionList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into OptionList", value)
	}
}

// GormDataType tells GORM which column type to use for the generic dialect
func (OptionList) GormDataType() string {
	return "json"
}
