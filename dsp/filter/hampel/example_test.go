package hampel_test

import (
	"fmt"

	"github.com/cwbudde/algo-robust/dsp/filter/hampel"
)

func ExampleWindow() {
	// Window size 5, window pre-filled with 0, outliers beyond
	// median ± 3 robust standard deviations.
	w, err := hampel.New(5, 0, 3)
	if err != nil {
		panic(err)
	}

	for _, x := range []float64{0, 0, 0, 0, 0, 100, 0.2} {
		fmt.Println(w.ProcessSample(x))
	}

	// The spike of 100 is corrected to the window median. The raw 100
	// is still stored, but a single contaminated slot cannot move the
	// median, so the following 0.2 is corrected against 0 as well.

	// Output:
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
}

func ExampleWindowT_ProcessBlock() {
	w, err := hampel.New(3, 1, 3)
	if err != nil {
		panic(err)
	}

	buf := []float64{1, 1, 1, 50, 1, 1}
	w.ProcessBlock(buf)

	fmt.Println(buf)
	fmt.Println(w.OutlierCount())

	// Output:
	// [1 1 1 1 1 1]
	// 1
}
