package robust

import (
	"slices"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// MADConsistency makes the median absolute deviation a consistent
// estimator of the standard deviation for normally distributed data:
// sigma ≈ MADConsistency * MAD.
const MADConsistency = 1.4826

// Median returns the median of data without modifying it.
// For an even number of elements it returns the arithmetic mean of the
// two central order statistics; for an odd number, the central order
// statistic. An empty slice yields 0.
func Median[F algofft.Float](data []F) F {
	if len(data) == 0 {
		return 0
	}

	scratch := make([]F, len(data))
	copy(scratch, data)

	return MedianInPlace(scratch)
}

// MedianInPlace returns the same value as [Median] but sorts data in
// place instead of allocating a scratch copy. Callers that reuse a
// scratch buffer across calls get an allocation-free median.
//
// Sort order is undefined when data contains NaN values.
func MedianInPlace[F algofft.Float](data []F) F {
	n := len(data)
	if n == 0 {
		return 0
	}

	slices.Sort(data)

	mid := n / 2
	if n%2 == 1 {
		return data[mid]
	}

	return (data[mid-1] + data[mid]) / 2
}

// MAD returns the median absolute deviation of data: the median of
// |x_i - median(data)|, using the same even/odd rule as [Median].
// An empty slice yields 0.
func MAD[F algofft.Float](data []F) F {
	if len(data) == 0 {
		return 0
	}

	med := Median(data)

	dev := make([]F, len(data))
	for i, v := range data {
		dev[i] = Abs(v - med)
	}

	return MedianInPlace(dev)
}

// Scale returns the MAD-based robust estimate of the standard
// deviation: MADConsistency * MAD(data). Unlike the sample standard
// deviation it is unaffected by a minority of arbitrarily large
// outliers.
func Scale[F algofft.Float](data []F) F {
	return F(MADConsistency) * MAD(data)
}

// Abs returns the absolute value of x.
func Abs[F algofft.Float](x F) F {
	if x < 0 {
		return -x
	}

	return x
}
