// Package ephem computes topocentric sun and moon positions for an observer.
package ephem

import "time"

// Body identifies the celestial body being searched for.
type Body int

const (
	BodySun Body = iota
	BodyMoon
)

// String returns the body name.
func (b Body) String() string {
	switch b {
	case BodySun:
		return "sun"
	case BodyMoon:
		return "moon"
	default:
		return "unknown"
	}
}

// Observer is a fixed observing site. Height is meters above sea level,
// resolved once per run.
type Observer struct {
	LatDeg  float64
	LonDeg  float64
	HeightM float64
}

// Position is a topocentric sky position at a single instant.
// Illumination is the sunlit fraction of the lunar disk in [0, 1] and is
// only meaningful for BodyMoon.
type Position struct {
	AltitudeDeg  float64
	AzimuthDeg   float64
	Illumination float64
}

// Provider defines the interface for ephemeris computation.
// Implementations must be deterministic for identical inputs and valid for
// any instant within common-era years, so tests can substitute fixtures.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Position returns the body's position as seen by obs at time t.
	Position(body Body, t time.Time, obs Observer) (Position, error)
}
