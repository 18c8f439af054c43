package bytesutil

import (
	"fmt"
)

// IncrementBytes adds amount to the big-endian two's-complement integer held
// in value, carrying byte-by-byte from the least significant end, and returns
// the mutated slice. A value shorter than eight bytes is first sign-extended
// into a fresh eight-byte slice, which is then the one mutated and returned;
// a value longer than eight bytes fails with ErrValueTooLarge. Callers own
// exclusive access to value for the duration of the call.
func IncrementBytes(value []byte, amount int64) ([]byte, error) {
	val := value
	if len(val) > SizeofInt64 {
		return nil, fmt.Errorf("Increment value too big | length=%v | err=[%w]",
			len(val), ErrValueTooLarge)
	}
	if len(val) < SizeofInt64 {
		ext := make([]byte, SizeofInt64)
		if int8(val[0]) < 0 {
			for i := range ext {
				ext[i] = 0xFF
			}
		}
		copy(ext[SizeofInt64-len(val):], val)
		val = ext
	}
	if amount == 0 {
		return val, nil
	}
	if int8(val[0]) < 0 {
		return incrementNeg(val, amount), nil
	}
	return incrementPos(val, amount), nil
}

// incrementPos carries through a non-negative value.
func incrementPos(value []byte, amount int64) []byte {
	amo := amount
	sign := int64(1)
	if amount < 0 {
		amo = -amount
		sign = -1
	}
	for i := 0; i < len(value); i++ {
		cur := (amo % 256) * sign
		amo >>= 8
		total := int64(value[len(value)-i-1]) + cur
		if total > 255 {
			amo += sign
			total %= 256
		} else if total < 0 {
			amo -= sign
		}
		value[len(value)-i-1] = byte(total)
		if amo == 0 {
			return value
		}
	}
	return value
}

// incrementNeg carries through a negative value, whose complement
// representation needs the inverse borrow handling.
func incrementNeg(value []byte, amount int64) []byte {
	amo := amount
	sign := int64(1)
	if amount < 0 {
		amo = -amount
		sign = -1
	}
	for i := 0; i < len(value); i++ {
		cur := (amo % 256) * sign
		amo >>= 8
		val := int64(^value[len(value)-i-1]) + 1
		total := cur - val
		if total >= 0 {
			amo += sign
		} else if total < -256 {
			amo -= sign
			total %= 256
		}
		value[len(value)-i-1] = byte(total)
		if amo == 0 {
			return value
		}
	}
	return value
}
