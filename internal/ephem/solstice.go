package ephem

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"
)

// Year range the Meeus solstice series is trusted for. Outside it the
// run aborts rather than scanning against a wrong boundary.
const (
	minSolsticeYear = 1000
	maxSolsticeYear = 3000
)

// JuneSolstice returns the UTC instant of the June solstice for the given
// year, truncated to the whole hour. The truncated instant is the boundary
// between the two half-year sun search windows.
//
// The Meeus series is in dynamical time; the ΔT offset from UTC is around
// a minute and vanishes inside the hour truncation.
func JuneSolstice(year int) (time.Time, error) {
	if year < minSolsticeYear || year > maxSolsticeYear {
		return time.Time{}, fmt.Errorf("solstice for year %d outside supported range %d-%d",
			year, minSolsticeYear, maxSolsticeYear)
	}
	jde := solstice.June(year)
	return julian.JDToTime(jde).UTC().Truncate(time.Hour), nil
}
