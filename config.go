package dlx

// SimpleConfig configures a simple constraint matrix: Columns primary
// columns and nothing else.
type SimpleConfig struct {
	Columns int
}

// ComplexConfig configures a complex constraint matrix: PrimaryColumns
// columns that must be covered exactly once, plus SecondaryColumns
// columns that may be covered at most once. Internally, secondary
// columns occupy indices PrimaryColumns..PrimaryColumns+SecondaryColumns-1.
type ComplexConfig struct {
	PrimaryColumns   int
	SecondaryColumns int
}

// capacity computes the exact NodeStore/ColumnStore sizes for a
// constraint description, per the formula in the matrix's data model:
// one root, one header per column, and one node per covered-column entry
// across all rows.
func capacity[T any](numPrimary, numSecondary int, rows []Row[T]) (numNodes, numColumns int) {
	numNodes = 1 + numPrimary + numSecondary
	for _, r := range rows {
		numNodes += len(r.Columns)
	}
	numColumns = 1 + numPrimary + numSecondary
	return numNodes, numColumns
}
