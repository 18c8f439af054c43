package bytesutil

// BinarySearch searches arr, sorted ascending per cmp, for length bytes of
// key starting at off. It returns the zero-based index of a match, with no
// defined choice among duplicates. If the key is absent it returns
// -(insertionPoint + 1), where insertionPoint in [0, len(arr)] is the index
// at which the key would be inserted to keep arr sorted, so the full return
// range is [-(len(arr)+1), len(arr)-1].
func BinarySearch(arr [][]byte, key []byte, off int, length int, cmp *Comparer) int {
	low := 0
	high := len(arr) - 1

	for low <= high {
		mid := int(uint(low+high) >> 1)
		// The key must stay the left operand: comparators with special
		// range-boundary sentinels order them relative to the probe.
		c := cmp.CompareRange(key, off, length, arr[mid], 0, len(arr[mid]))
		switch {
		case c > 0:
			low = mid + 1
		case c < 0:
			high = mid - 1
		default:
			return mid
		}
	}
	return -(low + 1)
}
