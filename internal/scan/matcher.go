package scan

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sector035/chronocalc/internal/astro"
	"github.com/Sector035/chronocalc/internal/ephem"
)

// Moon matching tolerance: altitude and azimuth deviations must each stay
// within this many degrees, independently.
const MoonToleranceDeg = 2.0

// In-tolerance moon samples closer together than this many scan steps are
// one real pass through the target geometry and collapse to their best
// sample.
const clusterGapSteps = 4

// ErrNoInstants is returned when a search window contains no instants.
var ErrNoInstants = errors.New("scan: window contains no instants")

// Target is the sky position being searched for.
type Target struct {
	AltitudeDeg float64
	AzimuthDeg  float64
}

// Config is the immutable configuration of one scan run.
type Config struct {
	Year     int
	Observer ephem.Observer
	Target   Target
	Step     time.Duration
}

// Match is a sampled position selected as a result, with its distance from
// the target.
type Match struct {
	Time         time.Time
	AltitudeDeg  float64
	AzimuthDeg   float64
	Illumination float64 // moon only, fraction in [0, 1]
	Distance     float64
}

// Sun scans the year for the sun's closest approaches to the target.
//
// The year splits at the June solstice into two half-year windows, each
// scanned independently; the sun crosses a given altitude/azimuth pair
// roughly once per window, so the minimum-distance instant of each window
// is a result. There is no tolerance: a window's best candidate is
// returned however far it is, which near the equator can mean a poor
// match rather than an error. Results are chronological, at most two.
func Sun(cfg Config, prov ephem.Provider) ([]Match, error) {
	solstice, err := ephem.JuneSolstice(cfg.Year)
	if err != nil {
		return nil, fmt.Errorf("locating solstice: %w", err)
	}

	year := YearGrid(cfg.Year, cfg.Step)
	windows := []Grid{
		Window(year.Start, solstice, cfg.Step),
		Window(solstice, year.End, cfg.Step),
	}

	matches := make([]Match, 0, len(windows))
	for _, w := range windows {
		best, err := bestInWindow(w, cfg, prov)
		if err != nil {
			return nil, err
		}
		matches = append(matches, best)
	}
	return matches, nil
}

// bestInWindow returns the minimum-distance sample in the window, ties
// broken by the earlier instant.
func bestInWindow(w Grid, cfg Config, prov ephem.Provider) (Match, error) {
	var best Match
	found := false

	for t := range w.Instants() {
		pos, err := prov.Position(ephem.BodySun, t, cfg.Observer)
		if err != nil {
			return Match{}, fmt.Errorf("ephemeris at %s: %w", t.Format(time.RFC3339), err)
		}
		d := astro.PositionDistance(pos.AltitudeDeg, pos.AzimuthDeg,
			cfg.Target.AltitudeDeg, cfg.Target.AzimuthDeg)
		if !found || d < best.Distance {
			best = Match{
				Time:        t,
				AltitudeDeg: pos.AltitudeDeg,
				AzimuthDeg:  pos.AzimuthDeg,
				Distance:    d,
			}
			found = true
		}
	}

	if !found {
		return Match{}, fmt.Errorf("%w: %s to %s", ErrNoInstants,
			w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
	}
	return best, nil
}

// Moon scans the full year and returns every distinct pass of the moon
// through the target geometry.
//
// A sample qualifies when its altitude and azimuth deviations are each
// within MoonToleranceDeg. Qualifying samples closer together than the
// clustering threshold belong to the same pass and collapse to the
// minimum-distance sample. An empty result is a normal outcome, not an
// error. The accurate step is not applied to the moon scan.
func Moon(cfg Config, prov ephem.Provider) ([]Match, error) {
	grid := YearGrid(cfg.Year, cfg.Step)
	if grid.Len() == 0 {
		return nil, fmt.Errorf("%w: year %d at step %s", ErrNoInstants, cfg.Year, cfg.Step)
	}
	gap := time.Duration(clusterGapSteps) * cfg.Step

	var matches []Match
	var (
		rep  Match     // minimum-distance sample of the open cluster
		last time.Time // most recent qualifying instant of the open cluster
		open bool
	)

	for t := range grid.Instants() {
		pos, err := prov.Position(ephem.BodyMoon, t, cfg.Observer)
		if err != nil {
			return nil, fmt.Errorf("ephemeris at %s: %w", t.Format(time.RFC3339), err)
		}

		dAlt := pos.AltitudeDeg - cfg.Target.AltitudeDeg
		if dAlt < 0 {
			dAlt = -dAlt
		}
		dAz := astro.AzimuthDeviation(pos.AzimuthDeg, cfg.Target.AzimuthDeg)
		if dAlt > MoonToleranceDeg || dAz > MoonToleranceDeg {
			continue
		}

		m := Match{
			Time:         t,
			AltitudeDeg:  pos.AltitudeDeg,
			AzimuthDeg:   pos.AzimuthDeg,
			Illumination: pos.Illumination,
			Distance: astro.PositionDistance(pos.AltitudeDeg, pos.AzimuthDeg,
				cfg.Target.AltitudeDeg, cfg.Target.AzimuthDeg),
		}

		switch {
		case !open:
			rep, last, open = m, t, true
		case t.Sub(last) < gap:
			// Same pass; the cluster frontier is the latest qualifying
			// instant, not the representative, so a long grazing pass
			// does not split.
			if m.Distance < rep.Distance {
				rep = m
			}
			last = t
		default:
			matches = append(matches, rep)
			rep, last = m, t
		}
	}
	if open {
		matches = append(matches, rep)
	}
	return matches, nil
}
