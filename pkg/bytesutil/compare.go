package bytesutil

import (
	"encoding/binary"
	"math/bits"

	"github.com/icomputational/hbase/pkg/algods/algo"
)

const (
	wordSize = 8
	// wordCompareMinLen is the smallest operand length worth the wordwise
	// path. Below two words the setup cost dominates.
	wordCompareMinLen = wordSize * 2
)

// DefaultWordCompare stores the build-time default for the wordwise
// comparison strategy.
const DefaultWordCompare = true

// Comparer orders byte slices lexicographically over unsigned byte values,
// with shorter-is-less on common-prefix ties. The zero value compares
// byte-by-byte; NewComparer(true) enables a word-at-a-time strategy that is
// result-identical for every input.
type Comparer struct {
	wordwise bool
}

// NewComparer instantiates a Comparer with the given comparison strategy.
func NewComparer(wordwise bool) *Comparer {
	return &Comparer{wordwise: wordwise}
}

// Compare returns a negative value if a sorts before b, a positive value if
// a sorts after b, and 0 if they are equal.
func (c *Comparer) Compare(a []byte, b []byte) int {
	return c.CompareRange(a, 0, len(a), b, 0, len(b))
}

// CompareRange compares aLen bytes of a starting at aOff with bLen bytes of
// b starting at bOff.
func (c *Comparer) CompareRange(a []byte, aOff int, aLen int, b []byte, bOff int, bLen int) int {
	if !c.wordwise || aLen < wordCompareMinLen || bLen < wordCompareMinLen {
		return compareBytewise(a, aOff, aLen, b, bOff, bLen)
	}
	return compareWordwise(a, aOff, aLen, b, bOff, bLen)
}

// compareBytewise is the baseline strategy: first differing unsigned byte
// decides, then length.
func compareBytewise(a []byte, aOff int, aLen int, b []byte, bOff int, bLen int) int {
	end1 := aOff + aLen
	end2 := bOff + bLen
	for i, j := aOff, bOff; i < end1 && j < end2; i, j = i+1, j+1 {
		va := int(a[i])
		vb := int(b[j])
		if va != vb {
			return va - vb
		}
	}
	return aLen - bLen
}

// compareWordwise compares eight bytes at a time. Big-endian word loads make
// the unsigned word order match byte order on any host, and the differing
// byte inside a mismatched word is located by a bit scan of the XOR so the
// returned difference is identical to compareBytewise.
func compareWordwise(a []byte, aOff int, aLen int, b []byte, bOff int, bLen int) int {
	minLen := algo.Min(aLen, bLen)
	minWords := minLen / wordSize

	for i := 0; i < minWords*wordSize; i += wordSize {
		lw := binary.BigEndian.Uint64(a[aOff+i:])
		rw := binary.BigEndian.Uint64(b[bOff+i:])
		if diff := lw ^ rw; diff != 0 {
			n := uint(bits.LeadingZeros64(diff)) &^ 7 // bit offset of the differing byte
			return int((lw>>(56-n))&0xFF) - int((rw>>(56-n))&0xFF)
		}
	}

	for i := minWords * wordSize; i < minLen; i++ {
		va := int(a[aOff+i])
		vb := int(b[bOff+i])
		if va != vb {
			return va - vb
		}
	}
	return aLen - bLen
}

// defaultComparer holds the process-wide strategy. Plain assignment is fine:
// both strategies produce identical results, so a stale read is harmless.
var defaultComparer = NewComparer(DefaultWordCompare)

// SetWordCompare selects the comparison strategy used by the package-level
// compare functions. Intended for benchmarking and tests.
func SetWordCompare(enabled bool) {
	defaultComparer = NewComparer(enabled)
}

// Compare compares a and b with the process-wide comparer.
func Compare(a []byte, b []byte) int {
	return defaultComparer.Compare(a, b)
}

// CompareRange compares slice ranges with the process-wide comparer.
func CompareRange(a []byte, aOff int, aLen int, b []byte, bOff int, bLen int) int {
	return defaultComparer.CompareRange(a, aOff, aLen, b, bOff, bLen)
}

// Equal returns whether a and b hold the same bytes.
func Equal(a []byte, b []byte) bool {
	return len(a) == len(b) && Compare(a, b) == 0
}

// EqualRange returns whether the two slice ranges hold the same bytes.
func EqualRange(a []byte, aOff int, aLen int, b []byte, bOff int, bLen int) bool {
	return aLen == bLen && CompareRange(a, aOff, aLen, b, bOff, bLen) == 0
}

// StartsWith returns whether prefix is a prefix of b.
func StartsWith(b []byte, prefix []byte) bool {
	return len(b) >= len(prefix) &&
		CompareRange(b, 0, len(prefix), prefix, 0, len(prefix)) == 0
}

// Hash returns the key hash of b. The accumulation is fixed independently of
// the comparison strategy: it seeds at 1 and folds each byte, interpreted as
// signed, with a factor of 31.
func Hash(b []byte) int32 {
	return HashLen(b, len(b))
}

// HashLen hashes the first length bytes of b.
func HashLen(b []byte, length int) int32 {
	h := int32(1)
	for i := 0; i < length; i++ {
		h = 31*h + int32(int8(b[i]))
	}
	return h
}
