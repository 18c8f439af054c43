package bytesutil

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
)

// Variable-length integer codec. A signed 64-bit value encodes to 1-9 bytes
// whose total length is self-describing from the first byte:
//
//	header in [-112, 127]  -> single byte, literal value
//	header in [-120, -113] -> k = -112-header magnitude bytes follow, value >= 0
//	header in [-128, -121] -> k = -120-header magnitude bytes follow, value < 0,
//	                          stored as the bitwise complement of the value
//
// Magnitude bytes are big-endian. The layout is a wire format shared with
// external readers and must not change.

// MaxVIntSize stores the largest possible encoded size of a vint.
const MaxVIntSize = 9

// VIntSize returns the number of bytes VIntToBytes produces for v.
func VIntSize(v int64) int {
	if v >= -112 && v <= 127 {
		return 1
	}
	if v < 0 {
		v = ^v
	}
	return (bits.Len64(uint64(v))+7)/8 + 1
}

// VIntToBytes encodes v into a freshly allocated vint.
func VIntToBytes(v int64) []byte {
	result := make([]byte, VIntSize(v))
	if v >= -112 && v <= 127 {
		result[0] = byte(v)
		return result
	}

	header := -112
	if v < 0 {
		v = ^v // one's complement
		header = -120
	}
	for tmp := v; tmp != 0; tmp >>= 8 {
		header--
	}
	result[0] = byte(header)

	k := -(header + 112)
	if header < -120 {
		k = -(header + 120)
	}
	off := 1
	for idx := k; idx != 0; idx-- {
		shift := uint((idx - 1) * 8)
		result[off] = byte(v >> shift)
		off++
	}
	return result
}

// DecodeVIntSize returns the total encoded length described by a vint's
// first byte, including the header itself.
func DecodeVIntSize(header byte) int {
	h := int8(header)
	if h >= -112 {
		return 1
	}
	if h < -120 {
		return int(-119 - int(h))
	}
	return int(-111 - int(h))
}

// IsNegativeVInt returns whether a vint's first byte describes a negative value.
func IsNegativeVInt(header byte) bool {
	return int8(header) < -120
}

// ReadVInt decodes the vint starting at off and returns its value.
func ReadVInt(b []byte, off int) (int64, error) {
	if off < 0 || off >= len(b) {
		return 0, fmt.Errorf("Read vint header failed | offset=%v | capacity=%v | err=[%w]",
			off, len(b), ErrUnexpectedEnd)
	}
	header := b[off]
	size := DecodeVIntSize(header)
	if size == 1 {
		return int64(int8(header)), nil
	}
	if off+size > len(b) {
		return 0, fmt.Errorf("Vint truncated | offset=%v | size=%v | capacity=%v | err=[%w]",
			off, size, len(b), ErrUnexpectedEnd)
	}
	var v int64
	for i := 0; i < size-1; i++ {
		v = (v << 8) | int64(b[off+1+i])
	}
	if IsNegativeVInt(header) {
		return ^v, nil
	}
	return v, nil
}

// ReadVIntFrom decodes one vint from r.
func ReadVIntFrom(r io.Reader) (int64, error) {
	var buf [MaxVIntSize]byte
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, fmt.Errorf("Read vint header failed | err=[%w]", eofErr(err))
	}
	size := DecodeVIntSize(buf[0])
	if size == 1 {
		return int64(int8(buf[0])), nil
	}
	if _, err := io.ReadFull(r, buf[1:size]); err != nil {
		return 0, fmt.Errorf("Vint truncated | size=%v | err=[%w]", size, eofErr(err))
	}
	v, err := ReadVInt(buf[:size], 0)
	if err != nil {
		return 0, fmt.Errorf("Decode vint failed | err=[%w]", err)
	}
	return v, nil
}

// eofErr maps io end-of-stream errors onto the codec's truncation error.
func eofErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrUnexpectedEnd
	}
	return err
}
