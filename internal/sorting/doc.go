// Package sorting implements the classic comparison sorts behind a single
// Sorter interface, plus a concurrent benchmark that runs several of them on
// copies of the same random input.
//
// Every sorter sorts in place and in ascending order of its compare function.
// Merge sort is stable; the others are not.
package sorting
