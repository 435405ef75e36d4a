// Package collection holds small generic containers shared by the domain model.
package collection

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OrderedMap is a string-keyed map that remembers insertion order. Replacing
// an existing key keeps its original position. The zero value is ready to use.
type OrderedMap[V any] struct {
	keys  []string
	items map[string]V
}

// NewOrderedMap returns an empty map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{items: make(map[string]V)}
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil || m.items == nil {
		return zero, false
	}
	v, ok := m.items[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set inserts or replaces the value for key.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.items == nil {
		m.items = make(map[string]V)
	}
	if _, exists := m.items[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.items[key] = value
}

// Delete removes key and reports whether it was present.
func (m *OrderedMap[V]) Delete(key string) bool {
	if m == nil || m.items == nil {
		return false
	}
	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return []string{}
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in insertion order.
func (m *OrderedMap[V]) Values() []V {
	if m == nil {
		return []V{}
	}
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.items[k])
	}
	return out
}

// Range calls fn for every entry in insertion order until fn returns false.
// fn must not add or delete keys.
func (m *OrderedMap[V]) Range(fn func(key string, value V) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.items[k]) {
			return
		}
	}
}

// Clone returns a copy of the map. Values are copied by assignment.
func (m *OrderedMap[V]) Clone() *OrderedMap[V] {
	out := NewOrderedMap[V]()
	m.Range(func(k string, v V) bool {
		out.Set(k, v)
		return true
	})
	return out
}

// MarshalJSON encodes the map as a JSON object preserving insertion order.
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	var err error
	i := 0
	m.Range(func(k string, v V) bool {
		var key, val []byte
		if key, err = json.Marshal(k); err != nil {
			return false
		}
		if val, err = json.Marshal(v); err != nil {
			return false
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		i++
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping the order of its members.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.items = make(map[string]V)
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ordered map: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("ordered map: expected string key, got %v", tok)
		}
		var value V
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("ordered map: decode %q: %w", key, err)
		}
		m.Set(key, value)
	}
	_, err = dec.Token()
	return err
}
