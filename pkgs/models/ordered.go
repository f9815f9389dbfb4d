package models

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OrderedMap is a string-keyed map that remembers first-insertion order.
// Overwriting an existing key replaces its value but keeps its position.
// The zero value is not usable; a nil *OrderedMap reads as empty.
type OrderedMap[V any] struct {
	m *orderedmap.OrderedMap[string, V]
}

func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{m: orderedmap.New[string, V]()}
}

func (m *OrderedMap[V]) Set(key string, value V) {
	m.m.Set(key, value)
}

func (m *OrderedMap[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	return m.m.Get(key)
}

func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.m.Len()
}

func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, m.m.Len())
	for pair := m.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Entries returns a snapshot of the map in insertion order.
func (m *OrderedMap[V]) Entries() []Pair[V] {
	if m == nil {
		return nil
	}
	out := make([]Pair[V], 0, m.m.Len())
	for pair := m.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Pair[V]{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// Merge copies every entry of update into m, last write wins.
func (m *OrderedMap[V]) Merge(update *OrderedMap[V]) {
	if update == nil {
		return
	}
	for pair := update.m.Oldest(); pair != nil; pair = pair.Next() {
		m.m.Set(pair.Key, pair.Value)
	}
}

func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return m.m.MarshalJSON()
}

// Pair is one ranked entry. It serializes as a two-element array [key, value].
type Pair[V any] struct {
	Key   string
	Value V
}

func (p Pair[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Key, p.Value})
}
