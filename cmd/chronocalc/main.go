// Command chronocalc determines the dates and times within a year at which
// the sun or moon stands at a given altitude and azimuth, as seen from a
// given location.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/Sector035/chronocalc/internal/elevation"
	"github.com/Sector035/chronocalc/internal/ephem"
	"github.com/Sector035/chronocalc/internal/localtime"
	"github.com/Sector035/chronocalc/internal/logging"
	"github.com/Sector035/chronocalc/internal/render"
	"github.com/Sector035/chronocalc/internal/scan"
	"github.com/Sector035/chronocalc/internal/ui"
)

// CLI flags. Short and long spellings share one variable.
var (
	year        int
	lat         float64
	lon         float64
	alt         float64
	az          float64
	moonMode    bool
	accurate    bool
	height      float64
	interactive bool
	logLevel    string
)

func init() {
	unset := math.NaN()

	flag.IntVar(&year, "y", 0, "The year to calculate (ie: 2017)")
	flag.IntVar(&year, "year", 0, "The year to calculate (ie: 2017)")
	flag.Float64Var(&lat, "lat", unset, "Latitude of the observer's location in decimals (ie: 49.8731)")
	flag.Float64Var(&lat, "latitude", unset, "Latitude of the observer's location in decimals (ie: 49.8731)")
	flag.Float64Var(&lon, "lon", unset, "Longitude of the observer's location in decimals (ie: 7.2332)")
	flag.Float64Var(&lon, "longitude", unset, "Longitude of the observer's location in decimals (ie: 7.2332)")
	flag.Float64Var(&alt, "alt", unset, "Altitude from the observer's perspective in degrees (ie: 25.8)")
	flag.Float64Var(&alt, "altitude", unset, "Altitude from the observer's perspective in degrees (ie: 25.8)")
	flag.Float64Var(&az, "az", unset, "Azimuth from the observer's perspective in degrees (ie: 220.5)")
	flag.Float64Var(&az, "azimuth", unset, "Azimuth from the observer's perspective in degrees (ie: 220.5)")
	flag.BoolVar(&moonMode, "moon", false, "Search for the moon instead of the sun")
	flag.BoolVar(&accurate, "accurate", false, "High accuracy mode (2 min interval, sun only). Useful when nothing is found, for instance near the equator")
	flag.Float64Var(&height, "height", unset, "Observer height in meters; skips the elevation lookup")
	flag.BoolVar(&interactive, "interactive", false, "Browse the results interactively (requires a terminal)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// validate rejects out-of-range input before any scanning starts.
func validate() error {
	switch {
	case year < 1000 || year > 3000:
		return fmt.Errorf("year %d out of range 1000-3000", year)
	case math.IsNaN(lat) || lat < -90 || lat > 90:
		return fmt.Errorf("latitude must be in [-90, 90]")
	case math.IsNaN(lon) || lon < -180 || lon > 180:
		return fmt.Errorf("longitude must be in [-180, 180]")
	case math.IsNaN(alt) || alt < -90 || alt > 90:
		return fmt.Errorf("altitude must be in [-90, 90]")
	case math.IsNaN(az) || az < 0 || az >= 360:
		return fmt.Errorf("azimuth must be in [0, 360)")
	}
	return nil
}

func main() {
	flag.Parse()

	logger := logging.New(logging.ParseLevel(logLevel))

	if err := validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run with -h for usage.")
		os.Exit(1)
	}

	// Resolve observer height once, before scanning. A dead elevation
	// service falls back to sea level and the scan proceeds.
	if math.IsNaN(height) {
		ctx, cancel := context.WithTimeout(context.Background(), elevation.RequestTimeout)
		defer cancel()
		height = elevation.Resolve(ctx, elevation.NewClient(), lat, lon, logger)
	}

	step := scan.StepNormal
	if accurate {
		if moonMode {
			logger.Warn("Accurate mode only applies to the sun scan; the moon scan keeps the %s step", scan.StepNormal)
		} else {
			step = scan.StepAccurate
		}
	}

	cfg := scan.Config{
		Year:     year,
		Observer: ephem.Observer{LatDeg: lat, LonDeg: lon, HeightM: height},
		Target:   scan.Target{AltitudeDeg: alt, AzimuthDeg: az},
		Step:     step,
	}
	prov := ephem.NewSuncalcProvider()

	body := ephem.BodySun
	if moonMode {
		body = ephem.BodyMoon
	}
	logger.Debug("Scanning year %d for the %s at alt %.2f az %.2f, step %s, %d instants",
		year, body, alt, az, step, scan.YearGrid(year, step).Len())

	var (
		matches []scan.Match
		err     error
	)
	if moonMode {
		matches, err = scan.Moon(cfg, prov)
	} else {
		matches, err = scan.Sun(cfg, prov)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loc := localtime.Location(lat, lon)

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			logger.Warn("Standard output is not a terminal; printing the table instead")
		} else {
			p := tea.NewProgram(ui.New(body, cfg.Target, matches, loc), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	if moonMode {
		render.WriteMoonTable(os.Stdout, matches, loc)
	} else {
		render.WriteSunTable(os.Stdout, matches, loc)
	}
}
