// Package ns provides a sql-compatible string type that maps the empty
// string to NULL and back.
package ns

import (
	"database/sql/driver"
	"fmt"
)

type NullString string

func (ns *NullString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*ns = ""
	case string:
		*ns = NullString(v)
	case []byte:
		*ns = NullString(v)
	default:
		return fmt.Errorf("cannot scan %T into NullString", value)
	}
	return nil
}

func (ns NullString) Value() (driver.Value, error) {
	if ns == "" {
		return nil, nil
	}
	return string(ns), nil
}
