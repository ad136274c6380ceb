package task

import (
	"encoding/json"
	"time"

	"github.com/swaggest/jsonschema-go"
)

// DateLayout is the wire format of Date values.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day.
type Date struct {
	time.Time
}

var (
	_ json.Marshaler     = Date{}
	_ json.Unmarshaler   = &Date{}
	_ jsonschema.Exposer = Date{}
)

// NewDate creates a date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := time.Parse(`"`+DateLayout+`"`, string(data))
	if err != nil {
		return err
	}

	d.Time = t

	return nil
}

// JSONSchema exposes Date JSON schema, implements jsonschema.Exposer.
func (Date) JSONSchema() (jsonschema.Schema, error) {
	s := jsonschema.Schema{}
	s.
		WithType(jsonschema.String.Type()).
		WithFormat("date")

	return s, nil
}
