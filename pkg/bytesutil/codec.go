package bytesutil

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Fixed-width numeric codec. Layout is always big-endian, independent of the
// host architecture, so encoded values sort numerically under the
// lexicographic comparator for non-negative inputs.

// BoolToBytes converts a bool to a one-byte slice. True becomes 0xFF and
// false becomes 0x00.
func BoolToBytes(v bool) []byte {
	if v {
		return []byte{0xFF}
	}
	return []byte{0x00}
}

// ToBool reverses BoolToBytes. Any non-zero byte decodes as true.
func ToBool(b []byte) (bool, error) {
	if len(b) != SizeofBool {
		return false, fmt.Errorf("Decode bool failed | length=%v | expected=%v | err=[%w]",
			len(b), SizeofBool, ErrLengthMismatch)
	}
	return b[0] != 0, nil
}

// Int16ToBytes converts an int16 to a two-byte big-endian slice.
func Int16ToBytes(v int16) []byte {
	b := make([]byte, SizeofInt16)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}

// ToInt16 converts the two big-endian bytes at off to an int16.
func ToInt16(b []byte, off int) (int16, error) {
	return ToInt16Len(b, off, SizeofInt16)
}

// ToInt16Len converts the bytes at off to an int16, failing unless length is
// exactly SizeofInt16 and the slice holds that many bytes past off.
func ToInt16Len(b []byte, off int, length int) (int16, error) {
	if err := checkDecode(b, off, length, SizeofInt16); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b[off:])), nil
}

// Uint16ToBytes converts a uint16 to a two-byte big-endian slice.
func Uint16ToBytes(v uint16) []byte {
	b := make([]byte, SizeofUint16)
	binary.BigEndian.PutUint16(b, v)
	return b
}

// ToUint16 converts the two big-endian bytes at off to a uint16.
func ToUint16(b []byte, off int) (uint16, error) {
	v, err := ToInt16(b, off)
	return uint16(v), err
}

// Int32ToBytes converts an int32 to a four-byte big-endian slice.
func Int32ToBytes(v int32) []byte {
	b := make([]byte, SizeofInt32)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}

// ToInt32 converts the four big-endian bytes at off to an int32.
func ToInt32(b []byte, off int) (int32, error) {
	return ToInt32Len(b, off, SizeofInt32)
}

// ToInt32Len converts the bytes at off to an int32, failing unless length is
// exactly SizeofInt32 and the slice holds that many bytes past off.
func ToInt32Len(b []byte, off int, length int) (int32, error) {
	if err := checkDecode(b, off, length, SizeofInt32); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[off:])), nil
}

// Int64ToBytes converts an int64 to an eight-byte big-endian slice.
func Int64ToBytes(v int64) []byte {
	b := make([]byte, SizeofInt64)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// ToInt64 converts the eight big-endian bytes at off to an int64.
func ToInt64(b []byte, off int) (int64, error) {
	return ToInt64Len(b, off, SizeofInt64)
}

// ToInt64Len converts the bytes at off to an int64, failing unless length is
// exactly SizeofInt64 and the slice holds that many bytes past off.
func ToInt64Len(b []byte, off int, length int) (int64, error) {
	if err := checkDecode(b, off, length, SizeofInt64); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b[off:])), nil
}

// Float32ToBytes converts a float32 to a four-byte slice holding its raw
// IEEE-754 bit pattern. NaN payloads are preserved exactly.
func Float32ToBytes(v float32) []byte {
	return Int32ToBytes(int32(math.Float32bits(v)))
}

// ToFloat32 reverses Float32ToBytes.
func ToFloat32(b []byte, off int) (float32, error) {
	bits, err := ToInt32Len(b, off, SizeofFloat32)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

// Float64ToBytes converts a float64 to an eight-byte slice holding its raw
// IEEE-754 bit pattern. NaN payloads are preserved exactly.
func Float64ToBytes(v float64) []byte {
	return Int64ToBytes(int64(math.Float64bits(v)))
}

// ToFloat64 reverses Float64ToBytes.
func ToFloat64(b []byte, off int) (float64, error) {
	bits, err := ToInt64Len(b, off, SizeofFloat64)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}

// PutInt16 writes v big-endian at off and returns the offset past the write.
func PutInt16(b []byte, off int, v int16) (int, error) {
	if err := checkPut(b, off, SizeofInt16); err != nil {
		return 0, err
	}
	binary.BigEndian.PutUint16(b[off:], uint16(v))
	return off + SizeofInt16, nil
}

// PutInt32 writes v big-endian at off and returns the offset past the write.
func PutInt32(b []byte, off int, v int32) (int, error) {
	if err := checkPut(b, off, SizeofInt32); err != nil {
		return 0, err
	}
	binary.BigEndian.PutUint32(b[off:], uint32(v))
	return off + SizeofInt32, nil
}

// PutInt64 writes v big-endian at off and returns the offset past the write.
func PutInt64(b []byte, off int, v int64) (int, error) {
	if err := checkPut(b, off, SizeofInt64); err != nil {
		return 0, err
	}
	binary.BigEndian.PutUint64(b[off:], uint64(v))
	return off + SizeofInt64, nil
}

// PutFloat32 writes the raw bits of v at off and returns the offset past the write.
func PutFloat32(b []byte, off int, v float32) (int, error) {
	return PutInt32(b, off, int32(math.Float32bits(v)))
}

// PutFloat64 writes the raw bits of v at off and returns the offset past the write.
func PutFloat64(b []byte, off int, v float64) (int, error) {
	return PutInt64(b, off, int64(math.Float64bits(v)))
}

// PutByte writes a single byte at off and returns the offset past the write.
func PutByte(b []byte, off int, v byte) (int, error) {
	if err := checkPut(b, off, SizeofByte); err != nil {
		return 0, err
	}
	b[off] = v
	return off + SizeofByte, nil
}

// PutBytes copies srcLen bytes of src starting at srcOff into b at off, and
// returns the offset past the write.
func PutBytes(b []byte, off int, src []byte, srcOff int, srcLen int) (int, error) {
	if err := checkPut(b, off, srcLen); err != nil {
		return 0, err
	}
	copy(b[off:], src[srcOff:srcOff+srcLen])
	return off + srcLen, nil
}

// checkDecode validates a fixed-width decode call. The returned error reports
// whether the explicit length is wrong or the slice is too short.
func checkDecode(b []byte, off int, length int, expected int) error {
	if length != expected {
		return fmt.Errorf("Wrong decode length | length=%v | expected=%v | err=[%w]",
			length, expected, ErrLengthMismatch)
	}
	if off < 0 || off+length > len(b) {
		return fmt.Errorf("Decode reaches past slice end | offset=%v | length=%v | capacity=%v | err=[%w]",
			off, length, len(b), ErrOffsetOutOfBounds)
	}
	return nil
}

// checkPut validates that b has room for width bytes at off.
func checkPut(b []byte, off int, width int) error {
	if off < 0 || len(b)-off < width {
		return fmt.Errorf("Not enough room to put value | offset=%v | width=%v | capacity=%v | err=[%w]",
			off, width, len(b), ErrInsufficientCapacity)
	}
	return nil
}
