package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/ratmat/matrix"
)

// ExampleFromPairs demonstrates bulk construction with automatic
// canonicalization of every entry.
func ExampleFromPairs() {
	m, err := matrix.FromPairs([][]matrix.Pair{
		{{2, 4}, {3, 4}},
		{{5, 6}, {7, -8}},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(m)
	// Output:
	// [1/2, 3/4]
	// [5/6, -7/8]
}

// ExampleMatrix_Equal shows that representation never matters: a matrix
// built row by row from unreduced pairs equals its bulk-built twin.
func ExampleMatrix_Equal() {
	incremental := matrix.New()
	_ = incremental.PushRow([]matrix.Pair{{2, 4}, {3, 4}})   // 2/4 reduces to 1/2
	_ = incremental.PushRow([]matrix.Pair{{5, 6}, {-7, 8}})  // sign already canonical
	bulk, _ := matrix.FromPairs([][]matrix.Pair{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, -8}}, // 7/-8 canonicalizes to -7/8
	})

	fmt.Println(incremental.Equal(bulk))
	// Output:
	// true
}

// ExampleMatrix_PushRow demonstrates the rectangular invariant.
func ExampleMatrix_PushRow() {
	m := matrix.New()
	_ = m.PushRow([]matrix.Pair{{1, 2}, {3, 4}})

	if err := m.PushRow([]matrix.Pair{{1, 2}}); err != nil {
		fmt.Println("error:", err)
	}
	fmt.Println(m.RowCount(), "row(s) kept")
	// Output:
	// error: matrix: pushed row has 1 columns, want 2: matrix: all rows must have the same length
	// 1 row(s) kept
}
