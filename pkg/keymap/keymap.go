// Package keymap implements a tree map that stores entries in sorted
// byte-key order, keyed by the engine's lexicographic comparator. It backs
// comparator-driven structures such as region boundary indexes.
package keymap

import (
	"fmt"
	"strings"

	gtm "github.com/emirpasic/gods/maps/treemap"
	gutils "github.com/emirpasic/gods/utils"

	"github.com/icomputational/hbase/pkg/bytesutil"
)

// Map implements a map (backed by a red-black tree) that stores entries in
// sorted byte-key order. Methods of the map are not thread-safe.
type Map struct {
	tree *gtm.Map
}

// New instantiates a Map ordered by the default comparator strategy.
func New() *Map {
	return NewWithComparer(bytesutil.NewComparer(bytesutil.DefaultWordCompare))
}

// NewWithComparer instantiates a Map ordered by cmp.
func NewWithComparer(cmp *bytesutil.Comparer) *Map {
	byteCmp := func(k1, k2 interface{}) int {
		return cmp.Compare(k1.([]byte), k2.([]byte))
	}
	return &Map{tree: gtm.NewWith(gutils.Comparator(byteCmp))}
}

// String returns a string representation of the map with keys in display form.
func (m *Map) String() string {
	str := "keymap["
	it := m.tree.Iterator()
	for it.Next() {
		str += fmt.Sprintf("%v:%v ", bytesutil.ToStringBinary(it.Key().([]byte)), it.Value())
	}
	return strings.TrimRight(str, " ") + "]"
}

// Size returns the number of entries in the map.
func (m *Map) Size() int {
	return m.tree.Size()
}

// Get returns the value associated with key, or nil if key is not found.
// The second return value is set to true if key is found, and false otherwise.
func (m *Map) Get(key []byte) (interface{}, bool) {
	return m.tree.Get(key)
}

// Put adds a key-value pair to the map.
// If key exists, the associated value is updated to the new value.
func (m *Map) Put(key []byte, value interface{}) {
	m.tree.Put(key, value)
}

// Del removes key from the map. No-op if key is not found.
func (m *Map) Del(key []byte) {
	m.tree.Remove(key)
}

// Keys returns a copy of all keys in the map in ascending order.
func (m *Map) Keys() [][]byte {
	raws := m.tree.Keys()
	keys := make([][]byte, len(raws))
	for i := 0; i < len(raws); i++ {
		keys[i], _ = raws[i].([]byte)
	}
	return keys
}

// Values returns a copy of all values in the map in ascending key order.
func (m *Map) Values() []interface{} {
	return m.tree.Values()
}

// Floor returns the greatest entry whose key sorts at or before key: the
// lookup a range planner uses to find the region holding a row. The third
// return value is false if no such entry exists.
func (m *Map) Floor(key []byte) ([]byte, interface{}, bool) {
	foundKey, foundValue := m.tree.Floor(key)
	if foundKey == nil {
		return nil, nil, false
	}
	return foundKey.([]byte), foundValue, true
}
