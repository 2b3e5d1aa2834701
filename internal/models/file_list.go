package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FileList is a list of attachment paths stored as a JSON array in a TEXT column.
type FileList []string

// Value implements driver.Valuer.
func (f FileList) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(f))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (f *FileList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = FileList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("file list: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*f = FileList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("file list: %w", err)
	}
	*f = out
	return nil
}
