// Package matrix implements the struct-of-arrays toroidal doubly-linked
// list that backs the Dancing Links exact cover solver in the parent
// package. Every link is a plain integer index into parallel arrays rather
// than a pointer, so a whole problem lives in a handful of contiguous,
// cache-friendly allocations with zero garbage collector pressure during
// search.
package matrix

import (
	"errors"
	"fmt"
)

// NullIndex marks the absence of an input row association on header and
// root nodes.
const NullIndex = -1

// ErrCapacityExceeded indicates a NodeStore or ColumnStore allocation
// exceeded the capacity it was constructed with. The capacity estimator
// sizes both stores exactly from the constraint description before a
// single node is allocated, so this only ever fires on a builder or
// estimator bug, never on user input.
var ErrCapacityExceeded = errors.New("dlx/matrix: capacity exceeded")

// NodeStore is a fixed-capacity bank of matrix nodes. Left, Right, Up and
// Down are the horizontal (row) and vertical (column) circular neighbor
// links; Col identifies the column a node belongs to; RowIndex is the
// position of the input row a row-body node came from (NullIndex for the
// root and column headers); Data carries the caller's opaque payload.
type NodeStore[T any] struct {
	Left, Right, Up, Down []int
	Col                   []int
	RowIndex              []int
	Data                  []T

	next int
}

// NewNodeStore allocates a NodeStore with exactly capacity node slots.
func NewNodeStore[T any](capacity int) *NodeStore[T] {
	return &NodeStore[T]{
		Left:     make([]int, capacity),
		Right:    make([]int, capacity),
		Up:       make([]int, capacity),
		Down:     make([]int, capacity),
		Col:      make([]int, capacity),
		RowIndex: make([]int, capacity),
		Data:     make([]T, capacity),
	}
}

// Allocate reserves the next node, self-links it in all four directions
// and stamps its column/row/payload metadata, then returns its index.
func (s *NodeStore[T]) Allocate(col, rowIndex int, data T) int {
	if s.next >= len(s.Left) {
		panic(fmt.Errorf("%w: node store capacity is %d", ErrCapacityExceeded, len(s.Left)))
	}
	i := s.next
	s.next++
	s.Left[i], s.Right[i], s.Up[i], s.Down[i] = i, i, i, i
	s.Col[i] = col
	s.RowIndex[i] = rowIndex
	s.Data[i] = data
	return i
}

// LinkHorizontal makes b the right neighbor of a (and a the left
// neighbor of b).
func (s *NodeStore[T]) LinkHorizontal(a, b int) {
	s.Right[a] = b
	s.Left[b] = a
}

// LinkVertical makes b the down neighbor of a (and a the up neighbor of
// b).
func (s *NodeStore[T]) LinkVertical(a, b int) {
	s.Down[a] = b
	s.Up[b] = a
}

// Allocated returns how many nodes have been allocated so far.
func (s *NodeStore[T]) Allocated() int { return s.next }

// ColumnStore is a fixed-capacity bank of column metadata: Head points to
// a column's header node in a NodeStore; Len is the live row-body node
// count (the MRV key); Prev/Next thread the circular ring of active
// primary headers (root included). Secondary headers are left
// self-linked by Allocate and are never spliced into the ring, so they
// never surface in an MRV scan.
type ColumnStore struct {
	Head       []int
	Len        []int
	Prev, Next []int

	next int
}

// NewColumnStore allocates a ColumnStore with exactly capacity column
// slots.
func NewColumnStore(capacity int) *ColumnStore {
	return &ColumnStore{
		Head: make([]int, capacity),
		Len:  make([]int, capacity),
		Prev: make([]int, capacity),
		Next: make([]int, capacity),
	}
}

// Allocate reserves the next column slot, self-linking its ring pointers,
// and returns its index.
func (s *ColumnStore) Allocate() int {
	if s.next >= len(s.Head) {
		panic(fmt.Errorf("%w: column store capacity is %d", ErrCapacityExceeded, len(s.Head)))
	}
	i := s.next
	s.next++
	s.Prev[i], s.Next[i] = i, i
	return i
}

// LinkRing makes b the next column after a (and a the previous column
// before b) in the circular header list. It sets only those two links;
// inserting b between two ring members takes two calls.
func (s *ColumnStore) LinkRing(a, b int) {
	s.Next[a] = b
	s.Prev[b] = a
}

// Allocated returns how many columns have been allocated so far.
func (s *ColumnStore) Allocated() int { return s.next }
