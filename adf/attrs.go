package adf

import (
	"bytes"
	"encoding/json"
	"reflect"
)

var attrsType = reflect.TypeOf(Attrs(nil))

// Attr is one attribute of a node or mark.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered attribute list. It serializes as a JSON object whose
// keys keep insertion order, so identical trees always encode identically.
type Attrs []Attr

// Get returns the value stored under key.
func (a Attrs) Get(key string) (any, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return nil, false
}

// String returns the string value stored under key, or "".
func (a Attrs) String(key string) string {
	v, ok := a.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Set replaces the value under key, appending it when absent.
func (a Attrs) Set(key string, value any) Attrs {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Key: key, Value: value})
}

// MarshalJSON encodes the attributes as an object in insertion order.
func (a Attrs) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(attr.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object, keeping the key order of the input.
func (a *Attrs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*a = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &json.UnmarshalTypeError{Value: "non-object", Type: attrsType}
	}

	out := Attrs{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if num, ok := raw.(json.Number); ok {
			if n, err := num.Int64(); err == nil {
				raw = int(n)
			} else if f, err := num.Float64(); err == nil {
				raw = f
			}
		}
		out = append(out, Attr{Key: key, Value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*a = out
	return nil
}
