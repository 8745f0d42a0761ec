package hampel

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-robust/stats/robust"
)

// MinWindowSize is the smallest supported window: below 3 samples the
// median and the median absolute deviation degenerate.
const MinWindowSize = 3

// Errors returned by the constructors.
var (
	ErrWindowSize = errors.New("hampel: window size must be at least 3")
	ErrThreshold  = errors.New("hampel: threshold multiplier must be finite and >= 0")
)

// WindowT is a streaming Hampel filter over samples of float width F.
//
// It keeps the last Len() raw input samples in a fixed ring buffer. For
// each incoming sample it computes the median and the MAD-based robust
// scale of the stored window; a sample deviating from the median by
// more than nSigma robust standard deviations is an outlier and is
// replaced in the output. The raw sample is always stored, so
// replacement bias never compounds across consecutive outliers.
//
// A single instance is not safe for concurrent use: every
// ProcessSample call mutates the window and the write cursor.
type WindowT[F algofft.Float] struct {
	window   []F // ring buffer of raw samples, writePos = oldest
	scratch  []F // sort/deviation workspace
	writePos int
	nSigma   F
	coef     F // nSigma * robust.MADConsistency, folded at construction

	extrapolate     bool
	rejectNonFinite bool

	outliers int
}

// Window is the float64 specialization.
type Window = WindowT[float64]

// Window32 is the float32 specialization.
type Window32 = WindowT[float32]

// NewT returns a Hampel filter with the given window size, pre-filled
// with initValue in every slot and the write cursor at the oldest
// position. nSigma is the outlier threshold in robust standard
// deviations; larger values flag fewer samples, 0 flags everything that
// differs from the window median.
//
// Returns ErrWindowSize if size < [MinWindowSize] and ErrThreshold if
// nSigma is negative or non-finite.
func NewT[F algofft.Float](size int, initValue, nSigma F, opts ...Option) (*WindowT[F], error) {
	if size < MinWindowSize {
		return nil, fmt.Errorf("%w: %d", ErrWindowSize, size)
	}

	if s := float64(nSigma); s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, fmt.Errorf("%w: %v", ErrThreshold, nSigma)
	}

	var cfg config
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	w := &WindowT[F]{
		window:          make([]F, size),
		scratch:         make([]F, size),
		nSigma:          nSigma,
		coef:            F(robust.MADConsistency) * nSigma,
		extrapolate:     cfg.extrapolate,
		rejectNonFinite: cfg.rejectNonFinite,
	}

	for i := range w.window {
		w.window[i] = initValue
	}

	return w, nil
}

// New returns a float64 filter. See [NewT].
func New(size int, initValue, nSigma float64, opts ...Option) (*Window, error) {
	return NewT(size, initValue, nSigma, opts...)
}

// New32 returns a float32 filter. See [NewT].
func New32(size int, initValue, nSigma float32, opts ...Option) (*Window32, error) {
	return NewT(size, initValue, nSigma, opts...)
}

// ProcessSample ingests one raw sample and returns the corrected
// output: the sample itself when it lies within nSigma robust standard
// deviations of the window median, the replacement value (median, or
// extrapolation with [WithExtrapolation]) when it does not.
//
// The decision uses only the stored window, never the incoming sample;
// a degenerate window with zero robust scale therefore flags any
// sample that differs from its median at all. The raw sample is then
// written over the oldest window entry (unless rejected by
// [WithNonFiniteRejection]) and the cursor advances.
//
// Outputs are deterministic given the construction parameters and the
// sequence of prior samples. No allocation.
func (w *WindowT[F]) ProcessSample(x F) F {
	copy(w.scratch, w.window)
	med := robust.MedianInPlace(w.scratch)

	if w.rejectNonFinite && !isFinite(x) {
		w.outliers++
		return w.replacement(med)
	}

	// scratch holds the sorted window; overwrite it with the absolute
	// deviations from the median.
	for i, v := range w.window {
		w.scratch[i] = robust.Abs(v - med)
	}
	mad := robust.MedianInPlace(w.scratch)

	out := x
	if robust.Abs(x-med) > w.coef*mad {
		w.outliers++
		out = w.replacement(med)
	}

	w.window[w.writePos] = x

	w.writePos++
	if w.writePos >= len(w.window) {
		w.writePos = 0
	}

	return out
}

// ProcessBlock filters buf in place, applying ProcessSample to each
// element in order.
func (w *WindowT[F]) ProcessBlock(buf []F) {
	for i, x := range buf {
		buf[i] = w.ProcessSample(x)
	}
}

// Len returns the window size.
func (w *WindowT[F]) Len() int {
	return len(w.window)
}

// NSigma returns the outlier threshold multiplier.
func (w *WindowT[F]) NSigma() F {
	return w.nSigma
}

// OutlierCount returns the number of samples flagged as outliers since
// construction or the last Reset.
func (w *WindowT[F]) OutlierCount() int {
	return w.outliers
}

// Values returns a copy of the stored window in chronological order,
// oldest first. Must not be called while a ProcessSample call is in
// flight on another goroutine.
func (w *WindowT[F]) Values() []F {
	out := make([]F, len(w.window))
	for i := range out {
		out[i] = w.at(i)
	}

	return out
}

// Reset refills every window slot with initValue and rewinds the write
// cursor and the outlier counter, as if freshly constructed.
func (w *WindowT[F]) Reset(initValue F) {
	for i := range w.window {
		w.window[i] = initValue
	}

	w.writePos = 0
	w.outliers = 0
}

// replacement returns the substitute for a flagged outlier.
func (w *WindowT[F]) replacement(med F) F {
	if w.extrapolate {
		return w.extrapolated()
	}

	return med
}

// extrapolated fits a least-squares line through the stored window in
// chronological order and evaluates it one step past the newest sample.
func (w *WindowT[F]) extrapolated() F {
	n := len(w.window)

	// Sample positions are 0..n-1, so their mean is (n-1)/2.
	muX := F(n-1) / 2

	var muY F
	for i := 0; i < n; i++ {
		muY += w.at(i)
	}
	muY /= F(n)

	var numer, denom F
	for i := 0; i < n; i++ {
		devX := F(i) - muX
		numer += devX * (w.at(i) - muY)
		denom += devX * devX
	}

	// denom > 0 whenever n >= 2.
	slope := numer / denom
	intercept := muY - slope*muX

	return slope*F(n) + intercept
}

// at returns the i-th stored sample in chronological order (0 = oldest).
func (w *WindowT[F]) at(i int) F {
	return w.window[(w.writePos+i)%len(w.window)]
}

func isFinite[F algofft.Float](x F) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
