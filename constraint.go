package dlx

import (
	"strings"

	"github.com/kpitt/dlx/internal/set"
)

// Row is a single pre-encoded constraint row: an opaque payload plus the
// ordered, unique list of column indices (already in the unified
// 0..numPrimary+numSecondary range — secondary columns pre-offset by
// numPrimary) that the row covers. AddRow/AddRows accept this shape
// directly, bypassing translation and validation; it's the shape a
// Template snapshots and the shape the ProblemBuilder consumes.
type Row[T any] struct {
	Data    T
	Columns []int
}

// SparseItem is one element of an AddSparseBatch call on a SimpleHandler.
type SparseItem[T any] struct {
	Data    T
	Columns []int
}

// BinaryItem is one element of an AddBinaryBatch call on a SimpleHandler.
type BinaryItem[T any] struct {
	Data   T
	Values []int
}

// ComplexSparseItem is one element of an AddSparseBatch call on a
// ComplexHandler.
type ComplexSparseItem[T any] struct {
	Data      T
	Primary   []int
	Secondary []int
}

// ComplexBinaryItem is one element of an AddBinaryBatch call on a
// ComplexHandler.
type ComplexBinaryItem[T any] struct {
	Data         T
	PrimaryRow   []int
	SecondaryRow []int
}

// SimpleHandler accepts rows for a simple (primary-columns-only)
// constraint matrix and translates them into the internal Row
// encoding. Validation is opt-in via ValidateConstraints and, when
// enabled, applies all-or-nothing per call: a rejected item leaves the
// handler's row list exactly as it was before the call.
type SimpleHandler[T any] struct {
	numPrimary int
	validate   bool
	encoded    []Row[T]
}

func newSimpleHandler[T any](columns int) *SimpleHandler[T] {
	return &SimpleHandler[T]{numPrimary: columns}
}

// ValidateConstraints enables bounds/length checking for every
// subsequent Add call. Calling it more than once has no additional
// effect.
func (h *SimpleHandler[T]) ValidateConstraints() {
	h.validate = true
}

func (h *SimpleHandler[T]) checkColumns(columns []int) error {
	if !h.validate {
		return nil
	}
	for _, c := range columns {
		if c < 0 || c >= h.numPrimary {
			return &InvalidConstraintError{Which: "column", Value: c, Limit: h.numPrimary - 1}
		}
	}
	return firstDuplicate("duplicateColumn", columns)
}

func (h *SimpleHandler[T]) checkBinaryLength(values []int) error {
	if !h.validate {
		return nil
	}
	if len(values) != h.numPrimary {
		return &InvalidConstraintError{Which: "rowLength", Value: len(values), Limit: h.numPrimary}
	}
	return nil
}

// AddSparse appends a row given directly as its covered column indices.
func (h *SimpleHandler[T]) AddSparse(data T, columns []int) error {
	if err := h.checkColumns(columns); err != nil {
		return err
	}
	h.encoded = append(h.encoded, Row[T]{Data: data, Columns: cloneInts(columns)})
	return nil
}

// AddSparseBatch appends every item in items, in order. If any item
// fails validation, no item in the batch is applied.
func (h *SimpleHandler[T]) AddSparseBatch(items []SparseItem[T]) error {
	for _, it := range items {
		if err := h.checkColumns(it.Columns); err != nil {
			return err
		}
	}
	for _, it := range items {
		h.encoded = append(h.encoded, Row[T]{Data: it.Data, Columns: cloneInts(it.Columns)})
	}
	return nil
}

// AddBinary appends a row given as a {0,1} vector of length Columns.
func (h *SimpleHandler[T]) AddBinary(data T, values []int) error {
	if err := h.checkBinaryLength(values); err != nil {
		return err
	}
	h.encoded = append(h.encoded, Row[T]{Data: data, Columns: sparseFromBinary(values)})
	return nil
}

// AddBinaryBatch appends every item in items, in order. If any item
// fails validation, no item in the batch is applied.
func (h *SimpleHandler[T]) AddBinaryBatch(items []BinaryItem[T]) error {
	for _, it := range items {
		if err := h.checkBinaryLength(it.Values); err != nil {
			return err
		}
	}
	for _, it := range items {
		h.encoded = append(h.encoded, Row[T]{Data: it.Data, Columns: sparseFromBinary(it.Values)})
	}
	return nil
}

// AddRow appends a pre-encoded row unchanged, bypassing validation.
func (h *SimpleHandler[T]) AddRow(row Row[T]) {
	h.encoded = append(h.encoded, Row[T]{Data: row.Data, Columns: cloneInts(row.Columns)})
}

// AddRows appends every pre-encoded row in rows, in order, bypassing
// validation.
func (h *SimpleHandler[T]) AddRows(rows []Row[T]) {
	for _, r := range rows {
		h.AddRow(r)
	}
}

func (h *SimpleHandler[T]) rows() []Row[T] { return h.encoded }
func (h *SimpleHandler[T]) primary() int   { return h.numPrimary }
func (h *SimpleHandler[T]) secondary() int { return 0 }

// ComplexHandler accepts rows for a complex constraint matrix (primary
// columns that must be covered exactly once, secondary columns that may
// be covered at most once) and translates them into the internal Row
// encoding, rewriting secondary column indices to index+PrimaryColumns.
// Validation is opt-in via ValidateConstraints, same rules as
// SimpleHandler.
type ComplexHandler[T any] struct {
	numPrimary, numSecondary int
	validate                 bool
	encoded                  []Row[T]
}

func newComplexHandler[T any](primary, secondary int) *ComplexHandler[T] {
	return &ComplexHandler[T]{numPrimary: primary, numSecondary: secondary}
}

// ValidateConstraints enables bounds/length checking for every
// subsequent Add call. Calling it more than once has no additional
// effect.
func (h *ComplexHandler[T]) ValidateConstraints() {
	h.validate = true
}

func (h *ComplexHandler[T]) checkIndices(which string, indices []int, limit int) error {
	if !h.validate {
		return nil
	}
	for _, c := range indices {
		if c < 0 || c >= limit {
			return &InvalidConstraintError{Which: which, Value: c, Limit: limit - 1}
		}
	}
	return firstDuplicate("duplicate"+strings.ToUpper(which[:1])+which[1:], indices)
}

func (h *ComplexHandler[T]) checkRowLengths(primaryRow, secondaryRow []int) error {
	if !h.validate {
		return nil
	}
	if len(primaryRow) != h.numPrimary {
		return &InvalidConstraintError{Which: "primaryRowLength", Value: len(primaryRow), Limit: h.numPrimary}
	}
	if len(secondaryRow) != h.numSecondary {
		return &InvalidConstraintError{Which: "secondaryRowLength", Value: len(secondaryRow), Limit: h.numSecondary}
	}
	return nil
}

func (h *ComplexHandler[T]) encodeSparse(primary, secondary []int) []int {
	columns := make([]int, 0, len(primary)+len(secondary))
	columns = append(columns, primary...)
	for _, s := range secondary {
		columns = append(columns, s+h.numPrimary)
	}
	return columns
}

// AddSparse appends a row given directly as its covered primary and
// secondary column indices (secondary indices are rewritten internally
// to index+PrimaryColumns).
func (h *ComplexHandler[T]) AddSparse(data T, primary, secondary []int) error {
	if err := h.checkIndices("primaryColumn", primary, h.numPrimary); err != nil {
		return err
	}
	if err := h.checkIndices("secondaryColumn", secondary, h.numSecondary); err != nil {
		return err
	}
	h.encoded = append(h.encoded, Row[T]{Data: data, Columns: h.encodeSparse(primary, secondary)})
	return nil
}

// AddSparseBatch appends every item in items, in order. If any item
// fails validation, no item in the batch is applied.
func (h *ComplexHandler[T]) AddSparseBatch(items []ComplexSparseItem[T]) error {
	for _, it := range items {
		if err := h.checkIndices("primaryColumn", it.Primary, h.numPrimary); err != nil {
			return err
		}
		if err := h.checkIndices("secondaryColumn", it.Secondary, h.numSecondary); err != nil {
			return err
		}
	}
	for _, it := range items {
		h.encoded = append(h.encoded, Row[T]{Data: it.Data, Columns: h.encodeSparse(it.Primary, it.Secondary)})
	}
	return nil
}

// AddBinary appends a row given as a {0,1} primary vector of length
// PrimaryColumns and a {0,1} secondary vector of length
// SecondaryColumns, translated to sparse form in a single pass.
func (h *ComplexHandler[T]) AddBinary(data T, primaryRow, secondaryRow []int) error {
	if err := h.checkRowLengths(primaryRow, secondaryRow); err != nil {
		return err
	}
	columns := sparseFromBinary(primaryRow)
	for _, c := range sparseFromBinary(secondaryRow) {
		columns = append(columns, c+h.numPrimary)
	}
	h.encoded = append(h.encoded, Row[T]{Data: data, Columns: columns})
	return nil
}

// AddBinaryBatch appends every item in items, in order. If any item
// fails validation, no item in the batch is applied.
func (h *ComplexHandler[T]) AddBinaryBatch(items []ComplexBinaryItem[T]) error {
	for _, it := range items {
		if err := h.checkRowLengths(it.PrimaryRow, it.SecondaryRow); err != nil {
			return err
		}
	}
	for _, it := range items {
		columns := sparseFromBinary(it.PrimaryRow)
		for _, c := range sparseFromBinary(it.SecondaryRow) {
			columns = append(columns, c+h.numPrimary)
		}
		h.encoded = append(h.encoded, Row[T]{Data: it.Data, Columns: columns})
	}
	return nil
}

// AddRow appends a pre-encoded row unchanged, bypassing validation.
func (h *ComplexHandler[T]) AddRow(row Row[T]) {
	h.encoded = append(h.encoded, Row[T]{Data: row.Data, Columns: cloneInts(row.Columns)})
}

// AddRows appends every pre-encoded row in rows, in order, bypassing
// validation.
func (h *ComplexHandler[T]) AddRows(rows []Row[T]) {
	for _, r := range rows {
		h.AddRow(r)
	}
}

func (h *ComplexHandler[T]) rows() []Row[T] { return h.encoded }
func (h *ComplexHandler[T]) primary() int   { return h.numPrimary }
func (h *ComplexHandler[T]) secondary() int { return h.numSecondary }

func sparseFromBinary(values []int) []int {
	columns := make([]int, 0, len(values))
	for i, v := range values {
		if v != 0 {
			columns = append(columns, i)
		}
	}
	return columns
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// firstDuplicate reports the first repeated value in indices as an
// InvalidConstraintError with the given Which tag, or nil if every value
// is unique.
func firstDuplicate(which string, indices []int) error {
	seen := set.NewSet[int]()
	for _, c := range indices {
		if seen.Contains(c) {
			return &InvalidConstraintError{Which: which, Value: c, Limit: 0}
		}
		seen.Add(c)
	}
	return nil
}
