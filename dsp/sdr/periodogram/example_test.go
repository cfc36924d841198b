package periodogram_test

import (
	"fmt"
	"math"

	"github.com/go-rf/signals/dsp/sdr/periodogram"
)

func ExampleNew() {
	p, err := periodogram.New(8, periodogram.WithAlpha(0))
	if err != nil {
		panic(err)
	}

	data := make([]complex128, 32)
	for i := range data {
		data[i] = complex(math.Cos(float64(i)), 0)
	}
	if err := p.Accumulate(data); err != nil {
		panic(err)
	}

	out, err := p.Get()
	if err != nil {
		panic(err)
	}

	fmt.Println(len(out))
	// Output:
	// 8
}
