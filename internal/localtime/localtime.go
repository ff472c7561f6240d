// Package localtime maps observer coordinates to a display time zone.
package localtime

import (
	"time"

	"github.com/bradfitz/latlong"
)

// Location returns the IANA time zone at the given coordinates, falling
// back to UTC when the zone is unknown (open ocean) or not present in the
// local tz database. The zone only affects how instants are displayed; the
// scan itself runs entirely in UTC.
func Location(lat, lon float64) *time.Location {
	name := latlong.LookupZoneName(lat, lon)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
