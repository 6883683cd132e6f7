package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a JSON object that remembers the order its keys were first set in.
// Records and every nested object of a decoded dataset use it.
type Object struct {
	fields *orderedmap.OrderedMap[string, any]
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{fields: orderedmap.New[string, any]()}
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil || o.fields == nil {
		return nil, false
	}
	return o.fields.Get(key)
}

// Set stores value under key. An existing key keeps its position.
func (o *Object) Set(key string, value any) {
	if o.fields == nil {
		o.fields = orderedmap.New[string, any]()
	}
	o.fields.Set(key, value)
}

// Len reports the number of keys.
func (o *Object) Len() int {
	if o == nil || o.fields == nil {
		return 0
	}
	return o.fields.Len()
}

// Keys lists keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	if o.Len() == 0 {
		return keys
	}
	for pair := o.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Clone returns a shallow copy; nested values are shared.
func (o *Object) Clone() *Object {
	clone := NewObject()
	if o.Len() == 0 {
		return clone
	}
	for pair := o.fields.Oldest(); pair != nil; pair = pair.Next() {
		clone.fields.Set(pair.Key, pair.Value)
	}
	return clone
}

// MarshalJSON writes keys in insertion order without HTML escaping.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if o.Len() > 0 {
		first := true
		for pair := o.fields.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false

			if err := encodeLiteral(&buf, pair.Key); err != nil {
				return nil, fmt.Errorf("encode key %q: %w", pair.Key, err)
			}
			buf.WriteByte(':')
			if err := encodeLiteral(&buf, pair.Value); err != nil {
				return nil, fmt.Errorf("encode field %q: %w", pair.Key, err)
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeLiteral(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
