package manifest

import (
	"bytes"
	"encoding/json"
)

// Entry is one key/value pair of a manifest table.
type Entry struct {
	Name  string
	Value string
}

// Table is an insertion-ordered string mapping.
// Setting an existing key replaces its value in place, so the last write wins.
type Table []Entry

// Set adds or replaces name.
func (t *Table) Set(name string, value string) {
	for i := range *t {
		if (*t)[i].Name == name {
			(*t)[i].Value = value
			return
		}
	}
	*t = append(*t, Entry{Name: name, Value: value})
}

// Merge sets every entry of other in order.
func (t *Table) Merge(other []Entry) {
	for _, e := range other {
		t.Set(e.Name, e.Value)
	}
}

// Names returns the keys in order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for _, e := range t {
		names = append(names, e.Name)
	}
	return names
}

// MarshalJSON encodes the table as a JSON object preserving key order.
func (t Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, e.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(&buf, e.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeString appends s as a JSON string without HTML escaping, so ranges like ">=1" stay readable.
func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
