package match

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrNotArray is returned when a document expected to hold records is not a JSON array.
var ErrNotArray = errors.New("document is not a JSON array")

// Record is one loosely typed JSON value, usually an object.
type Record struct {
	raw []byte
}

// NewRecord wraps raw JSON. The bytes are not copied.
func NewRecord(raw []byte) Record {
	return Record{raw: raw}
}

// ParseRecords splits a JSON array into its elements, keeping each element's raw form.
func ParseRecords(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON document")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, ErrNotArray
	}

	var records []Record
	doc.ForEach(func(_, value gjson.Result) bool {
		records = append(records, Record{raw: []byte(value.Raw)})
		return true
	})
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Raw returns the underlying JSON.
func (r Record) Raw() []byte {
	return r.raw
}

// IsObject reports whether the record is a JSON object.
func (r Record) IsObject() bool {
	return len(r.raw) > 0 && gjson.ParseBytes(r.raw).IsObject()
}

// Get returns the value at a gjson path.
func (r Record) Get(path string) gjson.Result {
	return gjson.GetBytes(r.raw, path)
}

// Has reports whether path holds a non-null value.
func (r Record) Has(path string) bool {
	res := r.Get(path)
	return res.Exists() && res.Type != gjson.Null
}

// String returns the value at path as text, or "" when missing or null.
// Integral numbers keep their integer form, so 7 and 7.0 both read as "7".
func (r Record) String(path string) string {
	res := r.Get(path)
	if !res.Exists() || res.Type == gjson.Null {
		return ""
	}
	return res.String()
}

// With returns a copy of the record with field set to value.
func (r Record) With(field, value string) (Record, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return r, fmt.Errorf("failed to encode %s: %w", field, err)
	}

	raw, err := sjson.SetRawBytes(r.raw, field, bytes.TrimRight(buf.Bytes(), "\n"))
	if err != nil {
		return r, fmt.Errorf("failed to set %s: %w", field, err)
	}
	return Record{raw: raw}, nil
}

// MarshalJSON writes the record verbatim.
func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}

// UnmarshalJSON keeps a private copy of the raw value.
func (r *Record) UnmarshalJSON(data []byte) error {
	r.raw = append([]byte(nil), data...)
	return nil
}
