// Package algo implements helper algorithms.
package algo

// Min returns the minimum value of a and b.
func Min(a int, b int) int {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of a and b.
func Max(a int, b int) int {
	if a >= b {
		return a
	}
	return b
}
