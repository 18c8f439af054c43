package bytesutil

// Range algebra over (start, end) key pairs. Start bounds are inclusive and
// end bounds exclusive; a nil or empty bound means unbounded on that side.

// RangeNotEmpty returns whether the range [start, end) holds at least one key.
func RangeNotEmpty(start []byte, end []byte) bool {
	if len(start) == 0 || len(end) == 0 {
		return true
	}
	return Compare(start, end) < 0
}

// RangeIntersect returns the intersection of two ranges: the greater of the
// start bounds and the lesser of the end bounds, with unbounded sides
// deferring to the other range.
func RangeIntersect(start1 []byte, end1 []byte, start2 []byte, end2 []byte) ([]byte, []byte) {
	var start []byte
	switch {
	case len(start1) == 0:
		start = start2
	case len(start2) == 0:
		start = start1
	case Compare(start1, start2) > 0:
		start = start1
	default:
		start = start2
	}

	var end []byte
	switch {
	case len(end1) == 0:
		end = end2
	case len(end2) == 0:
		end = end1
	case Compare(end1, end2) < 0:
		end = end1
	default:
		end = end2
	}

	return start, end
}

// RangesOverlapped returns whether two ranges share at least one key.
func RangesOverlapped(start1 []byte, end1 []byte, start2 []byte, end2 []byte) bool {
	start, end := RangeIntersect(start1, end1, start2, end2)
	return RangeNotEmpty(start, end)
}
