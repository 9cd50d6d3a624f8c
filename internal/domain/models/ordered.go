package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OrderedObject is a JSON object that remembers key insertion order.
// The env payload is compared field by field against browser output, so order matters.
type OrderedObject struct {
	keys   []string
	values map[string]interface{}
}

// NewOrderedObject creates an empty object.
func NewOrderedObject() *OrderedObject {
	return &OrderedObject{values: make(map[string]interface{})}
}

// Set adds or replaces key. A new key goes to the end; an existing key keeps its position.
func (o *OrderedObject) Set(key string, value interface{}) *OrderedObject {
	if o.values == nil {
		o.values = make(map[string]interface{})
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Get returns the value stored under key.
func (o *OrderedObject) Get(key string) (interface{}, bool) {
	v, ok := o.values[key]
	return v, ok
}

// GetString returns the value under key when it is a string.
func (o *OrderedObject) GetString(key string) (string, bool) {
	v, ok := o.values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Has reports whether key is present.
func (o *OrderedObject) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Delete removes key, keeping the order of the others.
func (o *OrderedObject) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in order.
func (o *OrderedObject) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of keys.
func (o *OrderedObject) Len() int { return len(o.keys) }

// MarshalJSON writes the keys in insertion order without HTML escaping.
func (o *OrderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeValue(&buf, o.values[k]); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v interface{}) error {
	if m, ok := v.(json.Marshaler); ok {
		if oo, isObj := v.(*OrderedObject); isObj && oo == nil {
			buf.WriteString("null")
			return nil
		}
		b, err := m.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
	if arr, ok := v.([]interface{}); ok {
		buf.WriteByte('[')
		for i, item := range arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// Indent renders the object with a two-space indent.
func (o *OrderedObject) Indent() (string, error) {
	raw, err := o.MarshalJSON()
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}

// UnmarshalJSON decodes an object, keeping key order at every nesting level.
// Numbers are kept as json.Number so they re-encode unchanged.
func (o *OrderedObject) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object")
	}
	*o = OrderedObject{values: make(map[string]interface{})}
	if err := o.decodeBody(dec); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after JSON object")
	}
	return nil
}

func (o *OrderedObject) decodeBody(dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key")
		}
		val, err := decodeValue(dec)
		if err != nil {
			return err
		}
		o.Set(key, val)
	}
	_, err := dec.Token()
	return err
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			child := NewOrderedObject()
			if err := child.decodeBody(dec); err != nil {
				return nil, err
			}
			return child, nil
		case '[':
			arr := []interface{}{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	default:
		return t, nil
	}
}

// ParseOrderedObject decodes raw JSON text into an OrderedObject.
func ParseOrderedObject(raw string) (*OrderedObject, error) {
	o := NewOrderedObject()
	if err := o.UnmarshalJSON([]byte(raw)); err != nil {
		return nil, err
	}
	return o, nil
}
