package pushrank_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/pushrank"
	"github.com/hupe1980/pushrank/csr"
)

func Example() {
	// Undirected 4-cycle: 0-1-2-3-0.
	g, err := csr.New(
		[]int64{0, 2, 4, 6, 8},
		[]int32{1, 3, 0, 2, 1, 3, 2, 0},
	)
	if err != nil {
		log.Fatal(err)
	}

	m, err := pushrank.TopKMatrix(context.Background(), g, []int32{0, 2},
		pushrank.WithAlpha(0.5),
		pushrank.WithEpsilon(1e-4),
		pushrank.WithTopK(2),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(m)
	fmt.Println(m.RowSupport(0).Contains(0))
	// Output:
	// sparse.Matrix(2x4, nnz=4)
	// true
}
