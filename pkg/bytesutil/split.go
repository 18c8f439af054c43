package bytesutil

import (
	"math/big"
)

// splitHeader is prepended before interpreting keys as big integers. The
// leading 1 forces a non-negative value one bit wider than the key data; the
// 0 is a padding indicator whose survival decides the trim on the way back.
var splitHeader = []byte{1, 0}

// Split returns num+2 boundary keys dividing the exclusive range [a, b) into
// num+1 evenly spaced intervals: a itself, num interior points, and b.
// Returns nil if the split is infeasible: b sorts at or before a, num is
// negative, or the range holds fewer than num+1 distinct values. Relatively
// expensive; uses big-integer math.
func Split(a []byte, b []byte, num int) [][]byte {
	return SplitRange(a, b, false, num)
}

// SplitRange is Split with the choice of treating b as an inclusive bound.
// Automatic splits are generally exclusive; manual splits with an explicit
// end of range use an inclusive bound.
func SplitRange(a []byte, b []byte, inclusive bool, num int) [][]byte {
	if num < 0 {
		return nil
	}
	aPadded, bPadded := padToSameLen(a, b)
	if Compare(aPadded, bPadded) >= 0 {
		return nil
	}

	start := new(big.Int).SetBytes(Add(splitHeader, aPadded))
	stop := new(big.Int).SetBytes(Add(splitHeader, bPadded))
	diff := new(big.Int).Sub(stop, start)
	if inclusive {
		diff.Add(diff, big.NewInt(1))
	}
	splits := big.NewInt(int64(num) + 1)
	if diff.Cmp(splits) < 0 {
		return nil // not enough distinct values between a and b
	}
	interval := new(big.Int).Div(diff, splits)

	ret := make([][]byte, num+2)
	ret[0] = a
	cur := new(big.Int).Set(start)
	for i := 1; i <= num; i++ {
		cur.Add(cur, interval)
		ret[i] = stripSplitHeader(cur.Bytes())
	}
	ret[num+1] = b
	return ret
}

// ArithmeticProgSeq continues the a->b interval beyond b: it returns num keys
// b+(b-a)*(i+1) for i in [0, num). The keys a and b should sort ascending.
// Returns nil if num is negative. Uses big-integer math.
func ArithmeticProgSeq(a []byte, b []byte, num int) [][]byte {
	if num < 0 {
		return nil
	}
	aPadded, bPadded := padToSameLen(a, b)

	start := new(big.Int).SetBytes(Add(splitHeader, aPadded))
	stop := new(big.Int).SetBytes(Add(splitHeader, bPadded))
	diff := new(big.Int).Sub(stop, start)

	result := make([][]byte, num)
	cur := new(big.Int).Set(stop)
	for i := 0; i < num; i++ {
		cur.Add(cur, diff)
		result[i] = stripSplitHeader(cur.Bytes())
	}
	return result
}

// padToSameLen right-pads the shorter of a and b with zero bytes so both
// have equal length. At most one of the returned slices is newly allocated.
func padToSameLen(a []byte, b []byte) ([]byte, []byte) {
	if len(a) < len(b) {
		return PadTail(a, len(b)-len(a)), b
	}
	if len(b) < len(a) {
		return a, PadTail(b, len(a)-len(b))
	}
	return a, b
}

// stripSplitHeader undoes the splitHeader prepend on a generated point. If
// the padding indicator survived as zero both header bytes are dropped;
// if a carry overran it only the leading byte is dropped, keeping the extra
// width the carry now occupies.
func stripSplitHeader(padded []byte) []byte {
	if padded[1] == 0 {
		return padded[2:]
	}
	return padded[1:]
}
