package bytesutil

import (
	"fmt"
	"io"
)

// Framing helpers shared with on-disk and wire layouts: byte arrays carry a
// vint length prefix, and fixed-size string fields are padded with zeros.

// WriteByteArray writes b to w with a vint length prefix. A nil slice is
// written as length 0.
func WriteByteArray(w io.Writer, b []byte) error {
	if _, err := w.Write(VIntToBytes(int64(len(b)))); err != nil {
		return fmt.Errorf("Write length prefix failed | length=%v | err=[%w]", len(b), err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("Write payload failed | length=%v | err=[%w]", len(b), err)
	}
	return nil
}

// ReadByteArray reads a byte array written with a vint length prefix.
func ReadByteArray(r io.Reader) ([]byte, error) {
	n, err := ReadVIntFrom(r)
	if err != nil {
		return nil, fmt.Errorf("Read length prefix failed | err=[%w]", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("Corrupt length prefix | length=%v | err=[%w]", n, ErrNegativeLength)
	}
	result := make([]byte, n)
	if _, err := io.ReadFull(r, result); err != nil {
		return nil, fmt.Errorf("Read payload failed | length=%v | err=[%w]", n, eofErr(err))
	}
	return result, nil
}

// PutByteArray writes srcLen bytes of src starting at srcOff into dst at off
// with a vint length prefix, and returns the offset past the write.
func PutByteArray(dst []byte, off int, src []byte, srcOff int, srcLen int) (int, error) {
	vint := VIntToBytes(int64(srcLen))
	if off < 0 || len(dst)-off < len(vint)+srcLen {
		return 0, fmt.Errorf("Not enough room to put byte array | offset=%v | need=%v | capacity=%v | err=[%w]",
			off, len(vint)+srcLen, len(dst), ErrInsufficientCapacity)
	}
	off += copy(dst[off:], vint)
	off += copy(dst[off:], src[srcOff:srcOff+srcLen])
	return off, nil
}

// WriteStringFixedSize writes s as a field of exactly size bytes, padded
// with zeros. Fails if the string's bytes do not fit.
func WriteStringFixedSize(w io.Writer, s string, size int) error {
	b := []byte(s)
	if len(b) > size {
		return fmt.Errorf("Trying to write %v bytes (%v) into a field of length %v | err=[%w]",
			len(b), ToStringBinary(b), size, ErrInsufficientCapacity)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("Write string failed | size=%v | err=[%w]", size, err)
	}
	for i := len(b); i < size; i++ {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("Write padding failed | size=%v | err=[%w]", size, err)
		}
	}
	return nil
}

// ReadStringFixedSize reads a field of exactly size bytes and strips the
// trailing zero padding.
func ReadStringFixedSize(r io.Reader, size int) (string, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("Read fixed field failed | size=%v | err=[%w]", size, eofErr(err))
	}
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}
	return string(b[:n]), nil
}
