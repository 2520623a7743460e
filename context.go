package dlx

import "github.com/kpitt/dlx/internal/matrix"

// rootColumn is the column index of the root header node, always
// allocated first by build.
const rootColumn = 0

// searchContext owns the toroidal matrix for one problem and the
// resumable cursor Algorithm X advances through it: the current depth,
// the stack of row choices made at each depth, and the column/row the
// state machine is currently considering. Nothing outside search.go
// mutates its fields.
type searchContext[T any] struct {
	nodes   *matrix.NodeStore[T]
	columns *matrix.ColumnStore

	numPrimary, numSecondary int

	level            int
	choice           []int
	bestColIndex     int
	currentNodeIndex int
	hasStarted       bool
}

// build allocates and wires a fresh searchContext for the given
// constraint description, following the ProblemBuilder procedure: root
// header, primary headers threaded into the ring in insertion order,
// secondary headers left outside it, then each row's nodes linked
// horizontally (circular per row) and appended to the tail of each
// column it covers.
func build[T any](numPrimary, numSecondary int, rows []Row[T]) *searchContext[T] {
	numNodes, numColumns := capacity(numPrimary, numSecondary, rows)

	nodes := matrix.NewNodeStore[T](numNodes)
	columns := matrix.NewColumnStore(numColumns)

	var zero T
	root := nodes.Allocate(rootColumn, matrix.NullIndex, zero)
	rootSlot := columns.Allocate()
	columns.Head[rootSlot] = root

	for p := 0; p < numPrimary; p++ {
		slot := p + 1
		header := nodes.Allocate(slot, matrix.NullIndex, zero)
		allocated := columns.Allocate()
		columns.Head[allocated] = header

		last := columns.Prev[rootColumn]
		columns.LinkRing(last, slot)
		columns.LinkRing(slot, rootColumn)
	}

	for sIdx := 0; sIdx < numSecondary; sIdx++ {
		slot := numPrimary + sIdx + 1
		header := nodes.Allocate(slot, matrix.NullIndex, zero)
		allocated := columns.Allocate()
		columns.Head[allocated] = header
		// Secondary headers stay self-linked outside the ring, exactly as
		// ColumnStore.Allocate leaves them.
	}

	for i, row := range rows {
		first, prev := -1, -1
		for _, colIdx := range row.Columns {
			slot := colIdx + 1
			node := nodes.Allocate(slot, i, row.Data)
			if first == -1 {
				first = node
			} else {
				nodes.LinkHorizontal(prev, node)
			}
			prev = node

			head := columns.Head[slot]
			tail := nodes.Up[head]
			nodes.LinkVertical(tail, node)
			nodes.LinkVertical(node, head)
			columns.Len[slot]++
		}
		if first != -1 {
			nodes.LinkHorizontal(prev, first)
		}
	}

	return &searchContext[T]{
		nodes:        nodes,
		columns:      columns,
		numPrimary:   numPrimary,
		numSecondary: numSecondary,
		choice:       make([]int, max(numPrimary, 1)),
	}
}
