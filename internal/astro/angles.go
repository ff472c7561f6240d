// Package astro provides the angle math shared by the scanning code.
package astro

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle360 normalizes an angle to 0-360 degrees.
func NormalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// AzimuthDeviation returns the shorter-arc separation between two compass
// bearings in degrees. The result is in [0, 180]: 10° vs 350° is 20°, not 340°.
func AzimuthDeviation(a, b float64) float64 {
	d := math.Abs(NormalizeAngle360(a) - NormalizeAngle360(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// PositionDistance combines the altitude and azimuth deviations of a sampled
// sky position from a target into a single scalar. Both deviations are taken
// in degrees, the azimuth one wrap-aware, and combined Euclidean-style so a
// large error on either axis dominates the score.
func PositionDistance(altDeg, azDeg, targetAltDeg, targetAzDeg float64) float64 {
	dAlt := math.Abs(altDeg - targetAltDeg)
	dAz := AzimuthDeviation(azDeg, targetAzDeg)
	return math.Hypot(dAlt, dAz)
}
