// Package bytesutil handles byte-slice keys of a sorted key-value store:
// conversions to and from numeric types, lexicographic comparisons, binary
// search, key arithmetic, and printable escaping. Every key boundary, scan
// range, and stored row in the engine is an opaque byte slice whose ordering
// is defined here.
//
// All functions are safe for concurrent use, except that IncrementBytes
// mutates its input and callers must not share the buffer while calling it.
package bytesutil

// Type sizes in bytes.
const (
	// SizeofBool stores the encoded size of a bool in bytes.
	SizeofBool = 1
	// SizeofByte stores the encoded size of a single byte.
	SizeofByte = 1
	// SizeofInt16 stores the encoded size of an int16 in bytes.
	SizeofInt16 = 2
	// SizeofUint16 stores the encoded size of a uint16 in bytes.
	SizeofUint16 = 2
	// SizeofInt32 stores the encoded size of an int32 in bytes.
	SizeofInt32 = 4
	// SizeofInt64 stores the encoded size of an int64 in bytes.
	SizeofInt64 = 8
	// SizeofFloat32 stores the encoded size of a float32 in bytes.
	SizeofFloat32 = 4
	// SizeofFloat64 stores the encoded size of a float64 in bytes.
	SizeofFloat64 = 8
)

// NonNil converts a nil byte slice into an empty one, and returns any other
// slice unchanged.
func NonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}

// CopyBytes returns a newly allocated copy of b.
func CopyBytes(b []byte) []byte {
	tmp := make([]byte, len(b))
	copy(tmp, b)
	return tmp
}
