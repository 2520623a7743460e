// Package dlx implements Knuth's Algorithm X over a sparse toroidal
// doubly-linked matrix ("Dancing Links"), the classic technique for
// enumerating exact covers of a 0/1 constraint matrix: subsets of rows
// that between them set every primary column exactly once and every
// secondary column at most once.
//
// The matrix is stored as a struct-of-arrays (see internal/matrix)
// instead of a graph of pointer-linked nodes, so a whole search lives in
// a handful of contiguous integer slices; once building is done, the only
// allocation is the slice each emitted solution is returned in. The
// search itself is a resumable, non-recursive
// state machine (see search.go), which is what lets CreateStream hand
// back solutions one at a time without re-running the algorithm from
// scratch.
//
// A DancingLinks[T] is the entry point. It has no state of its own; it
// only exists to carry the payload type parameter T through to the
// constraint handlers, solvers and templates it creates:
//
//	dl := dlx.New[string]()
//	s := dl.CreateSolver(dlx.SimpleConfig{Columns: 3})
//	s.AddSparse("A", []int{0})
//	s.AddSparse("B", []int{1})
//	s.AddSparse("C", []int{2})
//	solutions, err := s.FindAll()
package dlx

// DancingLinks is a stateless factory for solvers and templates sharing
// the payload type T. Mode (simple vs. complex columns) is chosen per
// call via which Create* method is used, and is otherwise a
// compile-time distinction: SimpleConfig always yields a SimpleSolver or
// SimpleTemplate, ComplexConfig always yields a ComplexSolver or
// ComplexTemplate.
type DancingLinks[T any] struct{}

// New creates a factory for solvers and templates over payload type T.
func New[T any]() *DancingLinks[T] {
	return &DancingLinks[T]{}
}

// CreateSolver builds a Solver over a simple (primary-columns-only)
// constraint matrix with cfg.Columns columns.
func (DancingLinks[T]) CreateSolver(cfg SimpleConfig) *SimpleSolver[T] {
	return &SimpleSolver[T]{SimpleHandler: newSimpleHandler[T](cfg.Columns)}
}

// CreateComplexSolver builds a Solver over a complex constraint matrix
// with cfg.PrimaryColumns primary columns and cfg.SecondaryColumns
// secondary columns.
func (DancingLinks[T]) CreateComplexSolver(cfg ComplexConfig) *ComplexSolver[T] {
	return &ComplexSolver[T]{ComplexHandler: newComplexHandler[T](cfg.PrimaryColumns, cfg.SecondaryColumns)}
}

// CreateTemplate builds a Template over a simple constraint matrix with
// cfg.Columns columns.
func (DancingLinks[T]) CreateTemplate(cfg SimpleConfig) *SimpleTemplate[T] {
	return &SimpleTemplate[T]{SimpleHandler: newSimpleHandler[T](cfg.Columns)}
}

// CreateComplexTemplate builds a Template over a complex constraint
// matrix with cfg.PrimaryColumns primary columns and
// cfg.SecondaryColumns secondary columns.
func (DancingLinks[T]) CreateComplexTemplate(cfg ComplexConfig) *ComplexTemplate[T] {
	return &ComplexTemplate[T]{ComplexHandler: newComplexHandler[T](cfg.PrimaryColumns, cfg.SecondaryColumns)}
}
