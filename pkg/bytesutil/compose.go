package bytesutil

import (
	"fmt"

	"github.com/icomputational/hbase/pkg/algods/algo"
)

// Add returns a new slice holding a followed by b.
func Add(a []byte, b []byte) []byte {
	return Add3(a, b, nil)
}

// Add3 returns a new slice holding a, b and c in order.
func Add3(a []byte, b []byte, c []byte) []byte {
	result := make([]byte, len(a)+len(b)+len(c))
	copy(result, a)
	copy(result[len(a):], b)
	copy(result[len(a)+len(b):], c)
	return result
}

// AddRange concatenates three slice ranges into a new slice.
func AddRange(a []byte, aOff int, aLen int, b []byte, bOff int, bLen int,
	c []byte, cOff int, cLen int) []byte {
	result := make([]byte, aLen+bLen+cLen)
	copy(result, a[aOff:aOff+aLen])
	copy(result[aLen:], b[bOff:bOff+bLen])
	copy(result[aLen+bLen:], c[cOff:cOff+cLen])
	return result
}

// Head returns the first length bytes of a.
// Note that the same slice is returned when length equals len(a).
func Head(a []byte, length int) ([]byte, error) {
	if length < 0 || length > len(a) {
		return nil, fmt.Errorf("Head length out of range | length=%v | capacity=%v | err=[%w]",
			length, len(a), ErrOffsetOutOfBounds)
	}
	if length == len(a) {
		return a, nil
	}
	result := make([]byte, length)
	copy(result, a)
	return result, nil
}

// Tail returns the last length bytes of a.
// Note that the same slice is returned when length equals len(a).
func Tail(a []byte, length int) ([]byte, error) {
	if length < 0 || length > len(a) {
		return nil, fmt.Errorf("Tail length out of range | length=%v | capacity=%v | err=[%w]",
			length, len(a), ErrOffsetOutOfBounds)
	}
	if length == len(a) {
		return a, nil
	}
	result := make([]byte, length)
	copy(result, a[len(a)-length:])
	return result, nil
}

// PadHead returns a with length zero bytes prepended.
// Note that the same slice is returned when length is 0.
func PadHead(a []byte, length int) []byte {
	if length == 0 {
		return a
	}
	res := make([]byte, len(a)+length)
	copy(res[length:], a)
	return res
}

// PadTail returns a with length zero bytes appended.
// Note that the same slice is returned when length is 0.
func PadTail(a []byte, length int) []byte {
	return AppendToTail(a, length, 0)
}

// AppendToTail returns a with length copies of fill appended.
// Note that the same slice is returned when length is 0.
func AppendToTail(a []byte, length int, fill byte) []byte {
	if length == 0 {
		return a
	}
	total := len(a) + length
	res := make([]byte, total)
	copy(res, a)
	if fill != 0 {
		for i := len(a); i < total; i++ {
			res[i] = fill
		}
	}
	return res
}

// LongestCommonPrefix returns the length of the longest common prefix of a and b.
func LongestCommonPrefix(a []byte, b []byte) int {
	n := algo.Min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// NextOf returns b with one zero byte appended: the smallest key that sorts
// strictly after b.
func NextOf(b []byte) []byte {
	res := make([]byte, len(b)+1)
	copy(res, b)
	return res
}

// IsNext returns whether b equals NextOf(a). False if either slice is nil.
func IsNext(a []byte, b []byte) bool {
	if a == nil || b == nil {
		return false
	}
	return IsNextRange(a, 0, len(a), b, 0, len(b))
}

// IsNextRange returns whether the b range equals NextOf of the a range.
func IsNextRange(a []byte, aOff int, aLen int, b []byte, bOff int, bLen int) bool {
	if a == nil || b == nil {
		return false
	}
	if bLen != aLen+1 {
		return false
	}
	if b[bOff+aLen] != 0 {
		return false
	}
	return CompareRange(a, aOff, aLen, b, bOff, aLen) == 0
}
