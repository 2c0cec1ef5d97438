package compress_test

import (
	"fmt"

	"github.com/katalvlaran/lowrank/compress"
	"github.com/katalvlaran/lowrank/matrix"
)

// ExampleCompress keeps every singular value and then none of them.
func ExampleCompress() {
	a, _ := matrix.New([]uint8{
		1, 0, 0, 0, 2,
		0, 0, 3, 0, 0,
		0, 0, 0, 0, 0,
		0, 2, 0, 0, 0,
	}, matrix.Size{Height: 4, Width: 5})

	c := compress.New()
	full, err := compress.Compress(c, a, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(full.Matrix)
	fmt.Printf("%.4f\n", full.Kept[:3])

	none, _ := compress.Compress(c, a, 0)
	fmt.Println(none.Rank, none.Matrix.Elements()[:5])
	// Output:
	// [1, 0, 0, 0, 2]
	// [0, 0, 3, 0, 0]
	// [0, 0, 0, 0, 0]
	// [0, 2, 0, 0, 0]
	// [3.0000 2.2361 2.0000]
	// 0 [0 0 0 0 0]
}

// ExamplePlan_Reduce factorizes once and reduces at several rank factors.
func ExamplePlan_Reduce() {
	a, _ := matrix.New([]float64{
		4, 0, 0,
		0, 3, 0,
		0, 0, 1,
	}, matrix.Size{Height: 3, Width: 3})

	p, _ := compress.Factorize(compress.New(), a)
	for _, f := range []float64{0.34, 0.67, 1} {
		res, _ := p.Reduce(f)
		fmt.Printf("%d %.3g %.3g\n", res.Rank, res.Kept, res.Dropped)
	}
	// Output:
	// 1 [4] [3 1]
	// 2 [4 3] [1]
	// 3 [4 3 1] []
}
