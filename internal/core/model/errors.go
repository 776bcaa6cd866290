package model

import "errors"

// Sentinel errors shared by the catalog, sequencer and timekeeper.
var (
	// ErrInvalidCatalog marks catalog data rejected at load time.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrInvalidDuration marks an interval length that is not m:ss.
	ErrInvalidDuration = errors.New("invalid interval duration")
	// ErrUnknownTemplate is returned when a template name is not in the catalog.
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrNoMoreIntervals is returned when advancing past the last interval.
	ErrNoMoreIntervals = errors.New("no more intervals in template")
)
