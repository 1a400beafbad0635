package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// Algorithm names a sorting algorithm.
type Algorithm string

const (
	Bubble    Algorithm = "bubble"
	Insertion Algorithm = "insertion"
	Merge     Algorithm = "merge"
	Quick     Algorithm = "quick"
)

// Algorithms lists every supported algorithm in a stable order.
var Algorithms = []Algorithm{Bubble, Insertion, Merge, Quick}

var (
	ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")
	errNilCompare       = errors.New("compare function is nil")
)

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algorithms {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Sorter sorts a slice in place.
type Sorter[E any] interface {
	Sort(s []E)
	Algorithm() Algorithm
}

type sorter[E any] struct {
	algo    Algorithm
	compare func(a, b E) int
	run     func(s []E, compare func(a, b E) int)
}

func (s *sorter[E]) Sort(items []E) {
	if len(items) < 2 {
		return
	}
	s.run(items, s.compare)
}

func (s *sorter[E]) Algorithm() Algorithm { return s.algo }

// New returns a sorter using the natural order of E.
func New[E cmp.Ordered](a Algorithm) (Sorter[E], error) {
	return NewFunc(a, cmp.Compare[E])
}

// NewFunc returns a sorter ordering elements by compare, which must return a
// negative number when a < b, zero when equal and a positive number otherwise.
func NewFunc[E any](a Algorithm, compare func(a, b E) int) (Sorter[E], error) {
	if compare == nil {
		return nil, errNilCompare
	}
	var run func([]E, func(a, b E) int)
	switch a {
	case Bubble:
		run = bubbleSort[E]
	case Insertion:
		run = insertionSort[E]
	case Merge:
		run = mergeSort[E]
	case Quick:
		run = quickSort[E]
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a)
	}
	return &sorter[E]{algo: a, compare: compare, run: run}, nil
}
