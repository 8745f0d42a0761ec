package hampel

type config struct {
	extrapolate     bool
	rejectNonFinite bool
}

// Option configures a [WindowT].
type Option func(*config) error

// WithExtrapolation replaces flagged outliers with the least-squares
// linear extrapolation of the stored window instead of its median.
// Useful on strongly trending signals, where the median lags behind.
func WithExtrapolation() Option {
	return func(cfg *config) error {
		cfg.extrapolate = true
		return nil
	}
}

// WithNonFiniteRejection treats NaN and ±Inf input samples as automatic
// outliers: the replacement value is returned and the sample is not
// written to the window, so it cannot poison later medians.
//
// Without this option non-finite samples propagate: they are stored as
// raw samples like any other and, since every comparison against NaN is
// false, a NaN input passes through unflagged.
func WithNonFiniteRejection() Option {
	return func(cfg *config) error {
		cfg.rejectNonFinite = true
		return nil
	}
}
