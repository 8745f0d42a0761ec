// Package robust provides order-statistics primitives (median, median
// absolute deviation, and the MAD-based scale estimate) that remain
// meaningful in the presence of outliers. All functions are generic over
// float32 and float64 and are the statistical basis of the Hampel filter
// in dsp/filter/hampel.
package robust
