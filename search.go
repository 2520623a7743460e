package dlx

// Entry is one chosen row in a Solution: RowIndex is the position of the
// row in the handler's input order (the concatenated order, when rows
// arrived through more than one AddRow/AddSparse/AddBinary call, or
// through a Template followed by further solver adds); Data is the
// payload given when that row was added.
type Entry[T any] struct {
	RowIndex uint32
	Data     T
}

// Solution is one exact cover: the rows chosen, in the order Algorithm X
// chose them.
type Solution[T any] []Entry[T]

// state names the non-recursive Algorithm X state machine's four working
// phases; DONE is not a state value but a return from next.
type state int

const (
	stateForward state = iota
	stateAdvance
	stateBackup
	stateRecover
)

// next resumes the search and runs it until either one more solution is
// produced or the search is fully exhausted. The entry policy matches
// the one invocation contract every public caller (FindOne/Find/FindAll
// build-and-drain a fresh context; Stream reuses one across calls)
// relies on: the first call starts a fresh FORWARD descent; every
// subsequent call re-enters at RECOVER to try the next sibling of the
// solution just returned (including a solution completed by a single
// row at level 0); once backtracking empties the choice stack entirely,
// every further call returns immediately with ok=false.
func (ctx *searchContext[T]) next() (sol Solution[T], ok bool) {
	var st state
	switch {
	case !ctx.hasStarted:
		ctx.hasStarted = true
		st = stateForward
	case ctx.level > 0 || ctx.currentNodeIndex != ctx.columns.Head[ctx.bestColIndex]:
		// At level 0 the cursor rests on a header node only once the
		// search is exhausted (BACKUP) or after the empty solution;
		// resting on a row node means a level-0 solution was returned.
		st = stateRecover
	default:
		return nil, false
	}

	for {
		switch st {
		case stateForward:
			if ctx.columns.Next[rootColumn] == rootColumn {
				// No primary column remains uncovered before a single row
				// was even chosen: either there are no primary columns at
				// all, or (unreachable via any other path into FORWARD,
				// see below) everything already happens to be covered.
				// Either way this is a complete solution.
				return Solution[T]{}, true
			}

			col := ctx.chooseColumn()
			ctx.bestColIndex = col
			ctx.cover(col)
			ctx.currentNodeIndex = ctx.nodes.Down[ctx.columns.Head[col]]
			ctx.choice[ctx.level] = ctx.currentNodeIndex
			st = stateAdvance

		case stateAdvance:
			head := ctx.columns.Head[ctx.bestColIndex]
			if ctx.currentNodeIndex == head {
				st = stateBackup
				continue
			}

			for p := ctx.nodes.Right[ctx.currentNodeIndex]; p != ctx.currentNodeIndex; p = ctx.nodes.Right[p] {
				ctx.cover(ctx.nodes.Col[p])
			}

			if ctx.columns.Next[rootColumn] == rootColumn {
				return ctx.collectSolution(), true
			}
			ctx.level++
			st = stateForward

		case stateBackup:
			ctx.uncover(ctx.bestColIndex)
			if ctx.level == 0 {
				return nil, false
			}
			ctx.level--
			ctx.currentNodeIndex = ctx.choice[ctx.level]
			ctx.bestColIndex = ctx.nodes.Col[ctx.currentNodeIndex]
			st = stateRecover

		case stateRecover:
			for p := ctx.nodes.Left[ctx.currentNodeIndex]; p != ctx.currentNodeIndex; p = ctx.nodes.Left[p] {
				ctx.uncover(ctx.nodes.Col[p])
			}
			ctx.currentNodeIndex = ctx.nodes.Down[ctx.currentNodeIndex]
			ctx.choice[ctx.level] = ctx.currentNodeIndex
			st = stateAdvance
		}
	}
}

// collectSolution reads the chosen rows out of choice[0..level] in the
// order they were picked.
func (ctx *searchContext[T]) collectSolution() Solution[T] {
	sol := make(Solution[T], ctx.level+1)
	for i := 0; i <= ctx.level; i++ {
		n := ctx.choice[i]
		sol[i] = Entry[T]{
			RowIndex: uint32(ctx.nodes.RowIndex[n]),
			Data:     ctx.nodes.Data[n],
		}
	}
	return sol
}

// chooseColumn applies the S-heuristic (minimum remaining values) with
// its two fast paths: a column already at zero candidates is picked on
// sight (the branch is dead, so there is no point scanning further), and
// a column with exactly one candidate is picked on sight too (unit
// propagation — forced moves should collapse immediately rather than
// wait for the rest of the ring to be compared). Ties among columns with
// two or more candidates go to the first one encountered.
func (ctx *searchContext[T]) chooseColumn() int {
	best := rootColumn
	bestLen := -1

	for c := ctx.columns.Next[rootColumn]; c != rootColumn; c = ctx.columns.Next[c] {
		l := ctx.columns.Len[c]
		if l == 0 || l == 1 {
			return c
		}
		if bestLen == -1 || l < bestLen {
			best, bestLen = c, l
		}
	}
	return best
}

// cover removes column c from the ring and, for every row node still in
// c, unlinks every other node of that row from its own column. nextRR is
// read before the inner loop runs so the traversal down c is never
// affected by mutations the inner loop makes to other columns.
func (ctx *searchContext[T]) cover(c int) {
	cs, ns := ctx.columns, ctx.nodes

	cs.Next[cs.Prev[c]] = cs.Next[c]
	cs.Prev[cs.Next[c]] = cs.Prev[c]

	head := cs.Head[c]
	for r := ns.Down[head]; r != head; {
		nextRR := ns.Down[r]
		for n := ns.Right[r]; n != r; n = ns.Right[n] {
			ns.Down[ns.Up[n]] = ns.Down[n]
			ns.Up[ns.Down[n]] = ns.Up[n]
			cs.Len[ns.Col[n]]--
		}
		r = nextRR
	}
}

// uncover is cover's exact reverse: bottom-to-top over the rows,
// right-to-left within each row, restoring links using the node itself
// as the stitch point, and finally splicing the header back into the
// ring.
func (ctx *searchContext[T]) uncover(c int) {
	cs, ns := ctx.columns, ctx.nodes

	head := cs.Head[c]
	for r := ns.Up[head]; r != head; r = ns.Up[r] {
		for n := ns.Left[r]; n != r; n = ns.Left[n] {
			cs.Len[ns.Col[n]]++
			ns.Down[ns.Up[n]] = n
			ns.Up[ns.Down[n]] = n
		}
	}

	cs.Next[cs.Prev[c]] = c
	cs.Prev[cs.Next[c]] = c
}
