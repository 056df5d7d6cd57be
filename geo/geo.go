package geo

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// EarthRadius is the sphere radius, in meters, used by Haversine.
const EarthRadius float64 = 6371000

// Coordinate is a (latitude, longitude) pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Haversine returns the great-circle distance between a and b in meters.
//
// The result is symmetric and zero for identical coordinates.
// Complexity: O(1).
func Haversine(a, b Coordinate) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	// explicit conversions stop the compiler from fusing into FMA on arm64
	h := float64(sinLat*sinLat) + float64(math.Cos(lat1)*math.Cos(lat2)*float64(sinLon*sinLon))

	return 2 * EarthRadius * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

// Key returns the exact deduplication key of c: "lat,lon".
//
// Each component uses the shortest decimal representation that parses back
// to the same float64. Negative zero renders as "0".
func Key(c Coordinate) string {
	return formatComponent(c.Lat) + "," + formatComponent(c.Lon)
}

func formatComponent(v float64) string {
	if v == 0 {
		// collapses -0 onto 0
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FromPoint converts an orb.Point, which stores (lon, lat), into a Coordinate.
func FromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lon: p.Lon()}
}

// ToPoint converts c into an orb.Point in (lon, lat) order.
func ToPoint(c Coordinate) orb.Point {
	return orb.Point{c.Lon, c.Lat}
}
