// Package heap implements a growable binary heap stored as a complete binary
// tree in an array.
//
// Capacity always has the form 2^n-1, a full tree: growing adds one level,
// and once a Pop leaves the heap exactly half full the last level is
// dropped again. A Heap is not safe for concurrent use.
package heap
