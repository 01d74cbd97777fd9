package status

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

func degreesToRadians(d float64) float64 { return d * math.Pi / 180 }

func hemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	default:
		return '?'
	}
}

// UTMString renders lat/lon (decimal degrees) as a UTM coordinate string:
// zone, hemisphere letter, easting and northing. View does not store it.
func UTMString(lat, lon float64) (string, error) {
	latLng := s2.LatLng{
		Lat: s1.Angle(degreesToRadians(lat)),
		Lng: s1.Angle(degreesToRadians(lon)),
	}

	utm, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(latLng, 0)
	if err != nil {
		return "", fmt.Errorf("status: convert to UTM: %w", err)
	}

	return fmt.Sprintf("%d%c %.0f %.0f", utm.Zone, hemisphereToRune(utm.Hemisphere), utm.Easting, utm.Northing), nil
}
