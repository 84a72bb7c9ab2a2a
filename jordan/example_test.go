package jordan_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/jordan"
	"github.com/katalvlaran/lvlalg/matrix"
)

func ExampleNilpotent() {
	a, _ := matrix.NewSquare([][]field.Rat{
		field.Rats(4, -8, 4),
		field.Rats(1, -2, 1),
		field.Rats(-2, 4, -2),
	})
	f, err := jordan.Nilpotent(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("index:", f.Index)
	fmt.Println("chains:", f.Chains)
	fmt.Println(f.J)
	// Output:
	// index: 2
	// chains: [2 1]
	// [0 1 0]
	// [0 0 0]
	// [0 0 0]
}
