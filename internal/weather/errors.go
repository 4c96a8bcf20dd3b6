package weather

import "errors"

var (
	// ErrNoObservations is returned when a summary is requested for an
	// empty forecast window. Averaging nothing must fail loudly rather
	// than produce a zero summary.
	ErrNoObservations = errors.New("no observations to summarize")

	// ErrFetchFailed is returned when the upstream forecast source could
	// not supply data. Callers surface it as-is; no retry happens above
	// the provider layer.
	ErrFetchFailed = errors.New("forecast fetch failed")
)
