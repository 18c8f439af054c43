package bytesutil

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// displayPunct lists the punctuation bytes that pass through ToStringBinary
// unescaped, alongside ASCII digits and letters.
const displayPunct = " `~!@#$%^&*()-_=+[]{}\\|;:'\",.<>/?"

// ToStringBinary returns a printable rendering of b: printable ASCII bytes
// pass through unchanged and every other byte becomes a \xHH token with
// uppercase hex digits. Consumed by logs and diagnostic tooling.
func ToStringBinary(b []byte) string {
	return ToStringBinaryRange(b, 0, len(b))
}

// ToStringBinaryRange renders length bytes of b starting at off.
func ToStringBinaryRange(b []byte, off int, length int) string {
	var result strings.Builder
	for i := off; i < off+length; i++ {
		ch := b[i]
		if isDisplayByte(ch) {
			result.WriteByte(ch)
		} else {
			fmt.Fprintf(&result, "\\x%02X", ch)
		}
	}
	return result.String()
}

// ToBytesBinary reverses ToStringBinary. A backslash immediately followed by
// x and two uppercase hex digits decodes to one byte; a backslash that does
// not begin a valid token is kept as a literal backslash byte and scanning
// resumes at the following character. Round-trips exactly for any output of
// ToStringBinary, not for arbitrary hand-written escape text.
func ToBytesBinary(in string) []byte {
	b := make([]byte, 0, len(in))
	for i := 0; i < len(in); i++ {
		ch := in[i]
		if ch == '\\' && i+3 < len(in) && in[i+1] == 'x' &&
			isHexDigit(in[i+2]) && isHexDigit(in[i+3]) {
			b = append(b, hexDigitValue(in[i+2])<<4|hexDigitValue(in[i+3]))
			i += 3
		} else {
			b = append(b, ch)
		}
	}
	return b
}

func isDisplayByte(ch byte) bool {
	return (ch >= '0' && ch <= '9') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= 'a' && ch <= 'z') ||
		strings.IndexByte(displayPunct, ch) >= 0
}

// isHexDigit accepts the digits ToStringBinary emits: uppercase only.
func isHexDigit(c byte) bool {
	return (c >= 'A' && c <= 'F') || (c >= '0' && c <= '9')
}

func hexDigitValue(c byte) byte {
	if c >= 'A' {
		return 10 + c - 'A'
	}
	return c - '0'
}

// BytesToHex returns length bytes of b starting at off as uppercase hex digits.
func BytesToHex(b []byte, off int, length int) string {
	return strings.ToUpper(hex.EncodeToString(b[off : off+length]))
}

// HexToBytes decodes a hex digit string into bytes.
func HexToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("Decode hex failed | input=%v | err=[%w]", s, err)
	}
	return b, nil
}

// BytesToString64 returns length bytes of b starting at off as base64 text.
func BytesToString64(b []byte, off int, length int) string {
	return base64.StdEncoding.EncodeToString(b[off : off+length])
}

// String64ToBytes decodes base64 text into bytes.
func String64ToBytes(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("Decode base64 failed | input=%v | err=[%w]", s, err)
	}
	return b, nil
}
