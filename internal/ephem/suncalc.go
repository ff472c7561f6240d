package ephem

import (
	"fmt"
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/Sector035/chronocalc/internal/astro"
)

// SuncalcProvider computes positions with the suncalc library.
//
// suncalc works in radians and measures azimuth from south, clockwise
// westward; the provider converts to degrees clockwise from true north in
// [0, 360). Observer height is not part of suncalc's position model, so it
// carries no positional effect here.
type SuncalcProvider struct{}

// NewSuncalcProvider creates a suncalc-backed provider.
func NewSuncalcProvider() *SuncalcProvider {
	return &SuncalcProvider{}
}

// Name implements Provider.
func (p *SuncalcProvider) Name() string {
	return "suncalc"
}

// Position implements Provider.
func (p *SuncalcProvider) Position(body Body, t time.Time, obs Observer) (Position, error) {
	switch body {
	case BodySun:
		pos := suncalc.GetPosition(t.UTC(), obs.LatDeg, obs.LonDeg)
		return Position{
			AltitudeDeg: astro.RadToDeg(pos.Altitude),
			AzimuthDeg:  azimuthFromNorth(pos.Azimuth),
		}, nil
	case BodyMoon:
		pos := suncalc.GetMoonPosition(t.UTC(), obs.LatDeg, obs.LonDeg)
		illum := suncalc.GetMoonIllumination(t.UTC())
		return Position{
			AltitudeDeg:  astro.RadToDeg(pos.Altitude),
			AzimuthDeg:   azimuthFromNorth(pos.Azimuth),
			Illumination: illum.Fraction,
		}, nil
	default:
		return Position{}, fmt.Errorf("unknown body %d", body)
	}
}

// azimuthFromNorth converts a suncalc azimuth (radians, zero at south) to
// compass degrees (zero at north, clockwise, [0, 360)).
func azimuthFromNorth(az float64) float64 {
	return astro.NormalizeAngle360(astro.RadToDeg(az) + 180)
}
