package bytesutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	lowest := []byte("AAA")
	middle := []byte("CCC")
	highest := []byte("EEE")

	parts := Split(lowest, highest, 1)
	assert.Equal(t, 3, len(parts))
	assert.Equal(t, lowest, parts[0])
	assert.Equal(t, middle, parts[1])
	assert.Equal(t, highest, parts[2])

	// Divide into three parts with an end chosen so the split is even.
	highest = []byte("DDD")
	parts = Split(lowest, highest, 2)
	assert.Equal(t, 4, len(parts))
	assert.Equal(t, middle, parts[2])
}

func TestSplitUnevenRange(t *testing.T) {
	lowest := []byte("http://A")
	highest := []byte("http://z")
	middle := []byte("http://]")

	parts := Split(lowest, highest, 1)
	assert.Equal(t, 3, len(parts))
	assert.Equal(t, middle, parts[1])
}

func TestSplitInfeasible(t *testing.T) {
	low := []byte{1, 1, 1}
	high := []byte{1, 1, 3}

	// Swapped bounds cannot split.
	assert.Nil(t, Split(high, low, 1))

	// Equal bounds cannot split.
	assert.Nil(t, Split(low, low, 1))

	// A negative count cannot split.
	assert.Nil(t, Split(low, high, -1))

	// A single split fits the two-value gap.
	parts := Split(low, high, 1)
	assert.Equal(t, 3, len(parts))

	// Two splits need more distinct values than the gap holds.
	assert.Nil(t, Split(low, high, 2))
}

func TestSplitUnequalLengths(t *testing.T) {
	// The shorter bound is right-padded with zeros before splitting.
	parts := Split([]byte{'A'}, []byte("EEE"), 1)
	assert.Equal(t, 3, len(parts))
	assert.Equal(t, []byte{'A'}, parts[0])
	assert.Equal(t, []byte("EEE"), parts[2])
	assert.True(t, Compare(parts[0], parts[1]) < 0)
	assert.True(t, Compare(parts[1], parts[2]) < 0)
}

func TestSplitRangeInclusive(t *testing.T) {
	// [0, 3] inclusive holds 4 values, so one interior point lands on 2.
	parts := SplitRange([]byte{0}, []byte{3}, true, 1)
	assert.Equal(t, 3, len(parts))
	assert.Equal(t, []byte{2}, parts[1])
}

func TestSplitBoundariesSorted(t *testing.T) {
	parts := Split([]byte{0, 0}, []byte{0xFF, 0xFF}, 9)
	if !assert.Equal(t, 11, len(parts)) {
		panic(nil)
	}
	for i := 1; i < len(parts); i++ {
		if !assert.True(t, Compare(parts[i-1], parts[i]) < 0) {
			panic(nil)
		}
	}
}

func TestArithmeticProgSeq(t *testing.T) {
	seq := ArithmeticProgSeq([]byte{1}, []byte{2}, 3)
	assert.Equal(t, [][]byte{{3}, {4}, {5}}, seq)

	seq = ArithmeticProgSeq([]byte("AAA"), []byte("CCC"), 2)
	assert.Equal(t, 2, len(seq))
	assert.Equal(t, []byte("EEE"), seq[0])
	assert.Equal(t, []byte("GGG"), seq[1])

	assert.Nil(t, ArithmeticProgSeq([]byte{1}, []byte{2}, -1))
	assert.Equal(t, [][]byte{}, ArithmeticProgSeq([]byte{1}, []byte{2}, 0))
}
