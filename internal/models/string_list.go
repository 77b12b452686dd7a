package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a small set of strings as a JSON text column so the same
// schema works on Postgres and MySQL.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(l))
}
