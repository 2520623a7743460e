package dlx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// S1 — 3x3 toy: two solutions, in algorithm order. Column 1 is the sole
// column with only one candidate row (B) from the start, so unit
// propagation picks it before column 0 or column 2 are ever compared.
func TestScenarioToy(t *testing.T) {
	s := New[string]().CreateSolver(SimpleConfig{Columns: 3})
	require.NoError(t, s.AddSparse("A", []int{0}))
	require.NoError(t, s.AddSparse("B", []int{1}))
	require.NoError(t, s.AddSparse("C", []int{2}))
	require.NoError(t, s.AddSparse("D", []int{0, 2}))

	solutions, err := s.FindAll()
	require.NoError(t, err)
	require.Len(t, solutions, 2)

	require.Equal(t, []uint32{1, 0, 2}, rowIndices(solutions[0]))
	require.Equal(t, []string{"B", "A", "C"}, payloads(solutions[0]))

	require.Equal(t, []uint32{1, 3}, rowIndices(solutions[1]))
	require.Equal(t, []string{"B", "D"}, payloads(solutions[1]))
}

// S2 — unit propagation picks the forced single-candidate column first.
func TestScenarioUnitPropagation(t *testing.T) {
	s := New[string]().CreateSolver(SimpleConfig{Columns: 3})
	require.NoError(t, s.AddSparse("A", []int{0, 1}))
	require.NoError(t, s.AddSparse("B", []int{2}))
	require.NoError(t, s.AddSparse("C", []int{0}))

	solutions, err := s.FindAll()
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, []string{"A", "B"}, payloads(solutions[0]))
}

// S3 — unsolvable matrix yields no solutions and no error.
func TestScenarioUnsolvable(t *testing.T) {
	s := New[string]().CreateSolver(SimpleConfig{Columns: 2})
	require.NoError(t, s.AddSparse("A", []int{0}))
	require.NoError(t, s.AddSparse("B", []int{0}))

	solutions, err := s.FindAll()
	require.NoError(t, err)
	require.Empty(t, solutions)
}

// S4 — secondary columns are optional but still conflict-checked: Y and
// Z both claim secondary value 0, so no exact cover may use both.
func TestScenarioSecondaryOptional(t *testing.T) {
	s := New[string]().CreateComplexSolver(ComplexConfig{PrimaryColumns: 2, SecondaryColumns: 1})
	require.NoError(t, s.AddSparse("P", []int{0}, []int{}))
	require.NoError(t, s.AddSparse("Q", []int{1}, []int{}))
	require.NoError(t, s.AddSparse("Y", []int{0}, []int{0}))
	require.NoError(t, s.AddSparse("Z", []int{1}, []int{0}))

	solutions, err := s.FindAll()
	require.NoError(t, err)
	require.Len(t, solutions, 3)
	require.Equal(t, []string{"P", "Q"}, payloads(solutions[0]))
	require.Equal(t, []string{"P", "Z"}, payloads(solutions[1]))
	require.Equal(t, []string{"Y", "Q"}, payloads(solutions[2]))
}

// S5 — template isolation: solvers spawned from the same template never
// observe each other's or the template's later mutations.
func TestScenarioTemplateIsolation(t *testing.T) {
	tmpl := New[string]().CreateTemplate(SimpleConfig{Columns: 3})
	require.NoError(t, tmpl.AddSparse("R1", []int{0}))
	require.NoError(t, tmpl.AddSparse("R2", []int{1}))

	s1 := tmpl.CreateSolver()
	require.NoError(t, s1.AddSparse("R3", []int{2}))

	require.NoError(t, tmpl.AddSparse("R4", []int{2}))
	s2 := tmpl.CreateSolver()

	sol1, err := s1.FindAll()
	require.NoError(t, err)
	require.Len(t, sol1, 1)
	require.Equal(t, []string{"R1", "R2", "R3"}, payloads(sol1[0]))

	sol2, err := s2.FindAll()
	require.NoError(t, err)
	require.Len(t, sol2, 1)
	require.Equal(t, []string{"R1", "R2", "R4"}, payloads(sol2[0]))
}

// S6 — the lazy stream, collected up to the first element, equals
// Find(1).
func TestScenarioStreamMatchesFind1(t *testing.T) {
	build := func() *SimpleSolver[string] {
		s := New[string]().CreateSolver(SimpleConfig{Columns: 3})
		_ = s.AddSparse("A", []int{0})
		_ = s.AddSparse("B", []int{1})
		_ = s.AddSparse("C", []int{2})
		_ = s.AddSparse("D", []int{0, 2})
		return s
	}

	want, err := build().Find(1)
	require.NoError(t, err)

	stream, err := build().CreateStream()
	require.NoError(t, err)
	got, err := stream.Next()
	require.NoError(t, err)

	require.Equal(t, want[0], got)
}

func TestStreamExhaustionIsSticky(t *testing.T) {
	s := New[string]().CreateSolver(SimpleConfig{Columns: 1})
	require.NoError(t, s.AddSparse("A", []int{0}))

	stream, err := s.CreateStream()
	require.NoError(t, err)

	_, err = stream.Next()
	require.NoError(t, err)

	_, err = stream.Next()
	require.ErrorIs(t, err, ErrExhausted)

	_, err = stream.Next()
	require.ErrorIs(t, err, ErrExhausted)
}

func TestFindAllEqualsDrainedStream(t *testing.T) {
	build := func() *SimpleSolver[string] {
		s := New[string]().CreateSolver(SimpleConfig{Columns: 3})
		_ = s.AddSparse("A", []int{0})
		_ = s.AddSparse("B", []int{1})
		_ = s.AddSparse("C", []int{2})
		_ = s.AddSparse("D", []int{0, 2})
		return s
	}

	all, err := build().FindAll()
	require.NoError(t, err)

	stream, err := build().CreateStream()
	require.NoError(t, err)

	var streamed []Solution[string]
	for {
		sol, err := stream.Next()
		if errors.Is(err, ErrExhausted) {
			break
		}
		require.NoError(t, err)
		streamed = append(streamed, sol)
	}

	require.Equal(t, all, streamed)
}

// Zero rows fails with ErrNoConstraints, for every operation.
func TestNoConstraints(t *testing.T) {
	s := New[string]().CreateSolver(SimpleConfig{Columns: 3})

	_, err := s.FindOne()
	require.ErrorIs(t, err, ErrNoConstraints)

	_, err = s.Find(5)
	require.ErrorIs(t, err, ErrNoConstraints)

	_, err = s.FindAll()
	require.ErrorIs(t, err, ErrNoConstraints)

	_, err = s.CreateStream()
	require.ErrorIs(t, err, ErrNoConstraints)
}

// Zero primary columns (with only secondary-bearing rows present) has
// exactly one solution: the empty set.
func TestZeroPrimaryColumnsEmptySolution(t *testing.T) {
	s := New[string]().CreateComplexSolver(ComplexConfig{PrimaryColumns: 0, SecondaryColumns: 1})
	require.NoError(t, s.AddSparse("X", []int{}, []int{0}))

	solutions, err := s.FindAll()
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Empty(t, solutions[0])
}

// A row with an empty covered-column list is accepted but never chosen.
func TestEmptyRowNeverChosen(t *testing.T) {
	s := New[string]().CreateSolver(SimpleConfig{Columns: 1})
	require.NoError(t, s.AddSparse("empty", []int{}))
	require.NoError(t, s.AddSparse("A", []int{0}))

	solutions, err := s.FindAll()
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, []string{"A"}, payloads(solutions[0]))
}

// find(N) is a prefix of findAll for every N, including N <= 0.
func TestFindIsPrefixOfFindAll(t *testing.T) {
	build := func() *SimpleSolver[string] {
		s := New[string]().CreateSolver(SimpleConfig{Columns: 3})
		_ = s.AddSparse("A", []int{0})
		_ = s.AddSparse("B", []int{1})
		_ = s.AddSparse("C", []int{2})
		_ = s.AddSparse("D", []int{0, 2})
		return s
	}

	all, err := build().FindAll()
	require.NoError(t, err)

	for _, n := range []int{-3, 0, 1, 2, 100} {
		got, err := build().Find(n)
		require.NoError(t, err)
		want := all
		if n < len(all) {
			if n < 0 {
				want = all[:0]
			} else {
				want = all[:n]
			}
		}
		require.Equal(t, want, got)
	}
}

// Validation is opt-in and, once enabled, stays enabled idempotently.
func TestValidationIsOptInAndIdempotent(t *testing.T) {
	s := New[string]().CreateSolver(SimpleConfig{Columns: 2})
	require.NoError(t, s.AddSparse("ok but out of range", []int{5}))

	s2 := New[string]().CreateSolver(SimpleConfig{Columns: 2})
	s2.ValidateConstraints()
	s2.ValidateConstraints()
	err := s2.AddSparse("bad", []int{5})
	require.Error(t, err)
	var invalid *InvalidConstraintError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "column", invalid.Which)
	require.Equal(t, 5, invalid.Value)
	require.ErrorIs(t, err, ErrInvalidConstraint)
}

// Column indices within a row must be unique once validation is on.
func TestValidationRejectsDuplicateColumns(t *testing.T) {
	s := New[string]().CreateSolver(SimpleConfig{Columns: 3})
	s.ValidateConstraints()

	err := s.AddSparse("dup", []int{0, 1, 0})
	require.Error(t, err)
	var invalid *InvalidConstraintError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "duplicateColumn", invalid.Which)
	require.Equal(t, 0, invalid.Value)

	cs := New[string]().CreateComplexSolver(ComplexConfig{PrimaryColumns: 2, SecondaryColumns: 2})
	cs.ValidateConstraints()
	err = cs.AddSparse("dup", []int{0, 0}, nil)
	require.Error(t, err)
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "duplicatePrimaryColumn", invalid.Which)

	err = cs.AddSparse("dup2", []int{0, 1}, []int{1, 1})
	require.Error(t, err)
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "duplicateSecondaryColumn", invalid.Which)
}

func rowIndices[T any](sol Solution[T]) []uint32 {
	out := make([]uint32, len(sol))
	for i, e := range sol {
		out[i] = e.RowIndex
	}
	return out
}

func payloads[T any](sol Solution[T]) []T {
	out := make([]T, len(sol))
	for i, e := range sol {
		out[i] = e.Data
	}
	return out
}
