package bytesutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteArrayRoundTrip(t *testing.T) {
	tests := [][]byte{
		{},
		{0},
		{1, 2, 3},
		bytes.Repeat([]byte{0xAB}, 300),
	}

	for _, b := range tests {
		var buf bytes.Buffer
		assert.NoError(t, WriteByteArray(&buf, b))

		got, err := ReadByteArray(&buf)
		if !assert.NoError(t, err) {
			panic(nil)
		}
		if !assert.Equal(t, b, got) {
			panic(nil)
		}
		assert.Equal(t, 0, buf.Len())
	}
}

func TestWriteByteArrayNil(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteByteArray(&buf, nil))
	assert.Equal(t, []byte{0}, buf.Bytes())

	got, err := ReadByteArray(&buf)
	assert.NoError(t, err)
	assert.Equal(t, []byte{}, got)
}

func TestReadByteArrayNegativeLength(t *testing.T) {
	// 0xFF is the single-byte vint for -1.
	_, err := ReadByteArray(bytes.NewReader([]byte{0xFF}))
	assert.ErrorIs(t, err, ErrNegativeLength)
}

func TestReadByteArrayTruncated(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteByteArray(&buf, []byte{1, 2, 3, 4}))
	enc := buf.Bytes()

	for cut := 0; cut < len(enc); cut++ {
		_, err := ReadByteArray(bytes.NewReader(enc[:cut]))
		if !assert.ErrorIs(t, err, ErrUnexpectedEnd, "cut=%v", cut) {
			panic(nil)
		}
	}
}

func TestPutByteArray(t *testing.T) {
	dst := make([]byte, 8)
	off, err := PutByteArray(dst, 1, []byte{9, 1, 2, 3, 9}, 1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 5, off)
	assert.Equal(t, []byte{0, 3, 1, 2, 3, 0, 0, 0}, dst)

	got, err := ReadByteArray(bytes.NewReader(dst[1:off]))
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestPutByteArrayInsufficientCapacity(t *testing.T) {
	dst := make([]byte, 3)
	_, err := PutByteArray(dst, 0, []byte{1, 2, 3}, 0, 3)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)

	_, err = PutByteArray(dst, -1, []byte{1}, 0, 1)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
}

func TestStringFixedSizeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteStringFixedSize(&buf, "abc", 8))
	assert.Equal(t, []byte{'a', 'b', 'c', 0, 0, 0, 0, 0}, buf.Bytes())

	s, err := ReadStringFixedSize(&buf, 8)
	assert.NoError(t, err)
	assert.Equal(t, "abc", s)
}

func TestStringFixedSizeExact(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteStringFixedSize(&buf, "abcd", 4))

	s, err := ReadStringFixedSize(&buf, 4)
	assert.NoError(t, err)
	assert.Equal(t, "abcd", s)
}

func TestWriteStringFixedSizeTooLong(t *testing.T) {
	var buf bytes.Buffer
	err := WriteStringFixedSize(&buf, "abcde", 4)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
	assert.Equal(t, 0, buf.Len())
}

func TestReadStringFixedSizeTruncated(t *testing.T) {
	_, err := ReadStringFixedSize(bytes.NewReader([]byte{'a', 'b'}), 4)
	assert.ErrorIs(t, err, ErrUnexpectedEnd)
}
