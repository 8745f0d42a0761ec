// Package hampel implements a streaming Hampel outlier filter: a fixed
// ring buffer of the most recent samples whose median and median
// absolute deviation decide, sample by sample, whether the incoming
// value is an outlier and what to substitute for it.
//
// The filter is strictly causal (it never looks ahead) and performs no
// allocation per sample. It is generic over float32 and float64.
package hampel
