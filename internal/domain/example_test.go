package domain_test

import (
	"fmt"

	"github.com/davidlowryduda/phase-mag-plot/internal/domain"
	"github.com/davidlowryduda/phase-mag-plot/internal/sampler"
)

func ExamplePhaseMag() {
	opts := domain.DefaultOptions()
	opts.PlotPoints = 7

	rows, cols := opts.Dimensions()
	g, err := sampler.Sample(func(z complex128) complex128 { return z }, opts.XRange, opts.YRange, cols, rows)
	if err != nil {
		panic(err)
	}

	buf, err := domain.PhaseMag(g, opts)
	if err != nil {
		panic(err)
	}
	fmt.Println("origin:", buf.At(3, 3).Hex())
	fmt.Println("east:  ", buf.At(3, 6).Hex())
	fmt.Println("north: ", buf.At(6, 3).Hex())
	// Output:
	// origin: #ffffff
	// east:   #db0000
	// north:  #6ddb00
}
