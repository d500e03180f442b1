package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SpecEntry is a single name/value pair of a product specification.
type SpecEntry struct {
	Name  string
	Value string
}

// SpecList holds a product's specification mapping in insertion order, so
// the blob stored alongside a product decodes back to exactly the mapping
// that was encoded. Names are unique within a list.
type SpecList []SpecEntry

// Set adds a pair, overwriting the value in place when the name exists.
func (s *SpecList) Set(name, value string) {
	for i := range *s {
		if (*s)[i].Name == name {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, SpecEntry{Name: name, Value: value})
}

// Get returns the value for name and whether it is present.
func (s SpecList) Get(name string) (string, bool) {
	for _, e := range s {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// Equal reports whether both lists hold the same pairs in the same order.
func (s SpecList) Equal(other SpecList) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// MarshalJSON renders the list as a JSON object in insertion order.
func (s SpecList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping the order keys appear in. A
// repeated key overwrites the earlier value without moving its position.
func (s *SpecList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil { // JSON null
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("specs: expected object, got %v", tok)
	}
	out := SpecList{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("specs: unexpected key token %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("specs: value for %q must be a string: %w", key, err)
		}
		out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// EncodeSpecs serializes a mapping to its storage blob. The empty mapping
// encodes to "{}".
func EncodeSpecs(s SpecList) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeSpecs reconstructs a mapping from its storage blob. Empty or null
// blobs decode to the empty mapping.
func DecodeSpecs(blob string) (SpecList, error) {
	if blob == "" {
		return SpecList{}, nil
	}
	var s SpecList
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return nil, err
	}
	if s == nil {
		s = SpecList{}
	}
	return s, nil
}
