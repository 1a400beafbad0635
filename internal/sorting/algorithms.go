package sorting

// bubbleSort is the exchange variant: position i ends up holding the minimum
// of s[i:].
func bubbleSort[E any](s []E, compare func(a, b E) int) {
	for i := 0; i < len(s)-1; i++ {
		for j := i + 1; j < len(s); j++ {
			if compare(s[j], s[i]) < 0 {
				s[i], s[j] = s[j], s[i]
			}
		}
	}
}

func insertionSort[E any](s []E, compare func(a, b E) int) {
	insertionRange(s, 0, len(s)-1, compare)
}

// insertionRange sorts s[l..r] inclusive.
func insertionRange[E any](s []E, l, r int, compare func(a, b E) int) {
	for i := l + 1; i <= r; i++ {
		cur := s[i]
		j := i
		for j > l && compare(cur, s[j-1]) < 0 {
			s[j] = s[j-1]
			j--
		}
		s[j] = cur
	}
}

func mergeSort[E any](s []E, compare func(a, b E) int) {
	buf := make([]E, len(s))
	divide(s, buf, 0, len(s)-1, compare)
}

// divide sorts s[l..r] inclusive.
func divide[E any](s, buf []E, l, r int, compare func(a, b E) int) {
	if l >= r {
		return
	}
	mid := l + (r-l)/2
	divide(s, buf, l, mid, compare)
	divide(s, buf, mid+1, r, compare)
	// Halves already in order.
	if compare(s[mid], s[mid+1]) <= 0 {
		return
	}
	combine(s, buf, l, mid, r, compare)
}

// combine merges the sorted runs s[l..mid] and s[mid+1..r]. Ties take the
// left element first, which keeps the sort stable.
func combine[E any](s, buf []E, l, mid, r int, compare func(a, b E) int) {
	x, y, i := l, mid+1, l
	for x <= mid && y <= r {
		if compare(s[y], s[x]) < 0 {
			buf[i] = s[y]
			y++
		} else {
			buf[i] = s[x]
			x++
		}
		i++
	}
	i += copy(buf[i:], s[x:mid+1])
	copy(buf[i:], s[y:r+1])
	copy(s[l:r+1], buf[l:r+1])
}

const quickCutoff = 16

func quickSort[E any](s []E, compare func(a, b E) int) {
	quickRange(s, 0, len(s)-1, compare)
}

// quickRange sorts s[l..r] with a three-way partition around a
// median-of-three pivot. It recurses into the smaller side and loops on the
// larger so stack depth stays logarithmic.
func quickRange[E any](s []E, l, r int, compare func(a, b E) int) {
	for r-l+1 > quickCutoff {
		pivot := medianOfThree(s, l, l+(r-l)/2, r, compare)

		// s[l:lt] < pivot, s[lt:i] == pivot, s[gt+1:r+1] > pivot
		lt, i, gt := l, l, r
		for i <= gt {
			switch c := compare(s[i], pivot); {
			case c < 0:
				s[lt], s[i] = s[i], s[lt]
				lt++
				i++
			case c > 0:
				s[i], s[gt] = s[gt], s[i]
				gt--
			default:
				i++
			}
		}

		if lt-l < r-gt {
			quickRange(s, l, lt-1, compare)
			l = gt + 1
		} else {
			quickRange(s, gt+1, r, compare)
			r = lt - 1
		}
	}
	insertionRange(s, l, r, compare)
}

func medianOfThree[E any](s []E, a, b, c int, compare func(a, b E) int) E {
	if compare(s[b], s[a]) < 0 {
		s[a], s[b] = s[b], s[a]
	}
	if compare(s[c], s[b]) < 0 {
		s[b], s[c] = s[c], s[b]
		if compare(s[b], s[a]) < 0 {
			s[a], s[b] = s[b], s[a]
		}
	}
	return s[b]
}
