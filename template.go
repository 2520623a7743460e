package dlx

// SimpleTemplate captures a SimpleHandler configured once so that many
// independent solvers can be spawned cheaply from it. Mutations made to
// a spawned SimpleSolver are never observed by the template or by any
// sibling solver, and mutations made to the template after a solver was
// spawned are never observed by that solver: CreateSolver hands the new
// solver its own copy of the encoded row list.
type SimpleTemplate[T any] struct {
	*SimpleHandler[T]
}

// CreateSolver returns a new SimpleSolver seeded with a copy of the
// template's current rows and validation flag.
func (t *SimpleTemplate[T]) CreateSolver() *SimpleSolver[T] {
	h := &SimpleHandler[T]{
		numPrimary: t.numPrimary,
		validate:   t.validate,
		encoded:    cloneRows(t.encoded),
	}
	return &SimpleSolver[T]{SimpleHandler: h}
}

// ComplexTemplate captures a ComplexHandler configured once so that many
// independent solvers can be spawned cheaply from it. Same isolation
// guarantees as SimpleTemplate.
type ComplexTemplate[T any] struct {
	*ComplexHandler[T]
}

// CreateSolver returns a new ComplexSolver seeded with a copy of the
// template's current rows and validation flag.
func (t *ComplexTemplate[T]) CreateSolver() *ComplexSolver[T] {
	h := &ComplexHandler[T]{
		numPrimary:   t.numPrimary,
		numSecondary: t.numSecondary,
		validate:     t.validate,
		encoded:      cloneRows(t.encoded),
	}
	return &ComplexSolver[T]{ComplexHandler: h}
}

func cloneRows[T any](rows []Row[T]) []Row[T] {
	out := make([]Row[T], len(rows))
	for i, r := range rows {
		out[i] = Row[T]{Data: r.Data, Columns: cloneInts(r.Columns)}
	}
	return out
}
