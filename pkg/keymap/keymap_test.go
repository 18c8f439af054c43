package keymap

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/icomputational/hbase/pkg/bytesutil"
)

func TestBasic(t *testing.T) {
	m := New()
	assert.Equal(t, 0, m.Size())

	m.Put([]byte("b"), 2)
	m.Put([]byte("a"), 1)
	m.Put([]byte("c"), 3)
	assert.Equal(t, 3, m.Size())

	v, found := m.Get([]byte("b"))
	assert.True(t, found)
	assert.Equal(t, 2, v)

	_, found = m.Get([]byte("x"))
	assert.False(t, found)

	m.Put([]byte("b"), 20)
	assert.Equal(t, 3, m.Size())
	v, _ = m.Get([]byte("b"))
	assert.Equal(t, 20, v)

	m.Del([]byte("b"))
	assert.Equal(t, 2, m.Size())
	_, found = m.Get([]byte("b"))
	assert.False(t, found)

	m.Del([]byte("x"))
	assert.Equal(t, 2, m.Size())
}

func TestSortedOrder(t *testing.T) {
	num := 1000
	keys := make([][]byte, num)
	for i := 0; i < num; i++ {
		keys[i] = []byte(fmt.Sprintf("key-%04d", i))
	}

	m := New()
	for _, i := range rand.Perm(num) {
		m.Put(keys[i], i)
	}
	assert.Equal(t, num, m.Size())

	got := m.Keys()
	if !assert.Equal(t, num, len(got)) {
		panic(nil)
	}
	for i := 0; i < num; i++ {
		if !assert.Equal(t, keys[i], got[i]) {
			panic(nil)
		}
	}

	vals := m.Values()
	for i := 0; i < num; i++ {
		if !assert.Equal(t, i, vals[i]) {
			panic(nil)
		}
	}
}

func TestFloor(t *testing.T) {
	m := New()
	m.Put([]byte("b"), 2)
	m.Put([]byte("d"), 4)
	m.Put([]byte("f"), 6)

	key, val, found := m.Floor([]byte("d"))
	assert.True(t, found)
	assert.Equal(t, []byte("d"), key)
	assert.Equal(t, 4, val)

	key, val, found = m.Floor([]byte("e"))
	assert.True(t, found)
	assert.Equal(t, []byte("d"), key)
	assert.Equal(t, 4, val)

	key, _, found = m.Floor([]byte("z"))
	assert.True(t, found)
	assert.Equal(t, []byte("f"), key)

	_, _, found = m.Floor([]byte("a"))
	assert.False(t, found)
}

func TestBinaryKeys(t *testing.T) {
	m := New()
	m.Put([]byte{0xFF}, "hi")
	m.Put([]byte{0x01}, "lo")
	m.Put([]byte{0x7F}, "mid")

	// Ordering is unsigned: 0xFF sorts last, not first.
	keys := m.Keys()
	assert.Equal(t, [][]byte{{0x01}, {0x7F}, {0xFF}}, keys)
}

func TestWithBytewiseComparer(t *testing.T) {
	m := NewWithComparer(bytesutil.NewComparer(false))
	m.Put([]byte("bb"), 1)
	m.Put([]byte("b"), 2)
	m.Put([]byte("a"), 3)

	// A key sorts before its own extensions.
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("bb")}, m.Keys())
}

func TestString(t *testing.T) {
	m := New()
	assert.Equal(t, "keymap[]", m.String())

	m.Put([]byte{'a', 0x00}, 1)
	assert.Equal(t, `keymap[a\x00:1]`, m.String())
}
