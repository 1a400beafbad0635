package order

import (
	"cmp"
	"math/rand/v2"
)

// Less reports whether a sorts before b.
func Less[E cmp.Ordered](a, b E) bool { return cmp.Compare(a, b) < 0 }

// LessOrEqual reports whether a sorts before or together with b.
func LessOrEqual[E cmp.Ordered](a, b E) bool { return cmp.Compare(a, b) <= 0 }

// Greater reports whether a sorts after b.
func Greater[E cmp.Ordered](a, b E) bool { return cmp.Compare(a, b) > 0 }

// GreaterOrEqual reports whether a sorts after or together with b.
func GreaterOrEqual[E cmp.Ordered](a, b E) bool { return cmp.Compare(a, b) >= 0 }

// Equal reports whether a and b compare as equal.
func Equal[E cmp.Ordered](a, b E) bool { return cmp.Compare(a, b) == 0 }

// Swap exchanges s[i] and s[j].
func Swap[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}

// IsAscending reports whether s is in non-decreasing order.
func IsAscending[E cmp.Ordered](s []E) bool {
	for i := 0; i+1 < len(s); i++ {
		if Greater(s[i], s[i+1]) {
			return false
		}
	}
	return true
}

// IsDescending reports whether s is in non-increasing order.
func IsDescending[E cmp.Ordered](s []E) bool {
	for i := 0; i+1 < len(s); i++ {
		if Less(s[i], s[i+1]) {
			return false
		}
	}
	return true
}

// RandomInts returns size pseudo-random values in [0, max).
// A nil r uses the package-level source.
func RandomInts(r *rand.Rand, size, max int) []int {
	if size <= 0 {
		return []int{}
	}
	out := make([]int, size)
	if max <= 0 {
		return out
	}
	for i := range out {
		if r != nil {
			out[i] = r.IntN(max)
		} else {
			out[i] = rand.IntN(max)
		}
	}
	return out
}
