package geo_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streetpath/geo"
)

func TestHaversine_Zero(t *testing.T) {
	c := geo.Coordinate{Lat: -23.5505, Lon: -46.6333}
	assert.Equal(t, 0.0, geo.Haversine(c, c))
}

func TestHaversine_Symmetric(t *testing.T) {
	pairs := [][2]geo.Coordinate{
		{{Lat: -23.5505, Lon: -46.6333}, {Lat: -22.9068, Lon: -43.1729}},
		{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}},
		{{Lat: 51.5007, Lon: -0.1246}, {Lat: 40.6892, Lon: -74.0445}},
		{{Lat: -8.0476, Lon: -34.8770}, {Lat: -8.0477, Lon: -34.8771}},
	}
	for _, p := range pairs {
		assert.Equal(t, geo.Haversine(p[0], p[1]), geo.Haversine(p[1], p[0]))
	}
}

func TestHaversine_OneDegreeOfLatitude(t *testing.T) {
	// one degree of arc on the reference sphere is 2πR/360
	want := 2 * math.Pi * geo.EarthRadius / 360
	got := geo.Haversine(geo.Coordinate{Lat: 0, Lon: 10}, geo.Coordinate{Lat: 1, Lon: 10})
	assert.InDelta(t, want, got, 1e-6)
}

func TestHaversine_KnownCities(t *testing.T) {
	// São Paulo to Rio de Janeiro, roughly 360 km
	d := geo.Haversine(
		geo.Coordinate{Lat: -23.5505, Lon: -46.6333},
		geo.Coordinate{Lat: -22.9068, Lon: -43.1729},
	)
	assert.InDelta(t, 360_700, d, 1_500)
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		in   geo.Coordinate
		want string
	}{
		{"integers", geo.Coordinate{Lat: 1, Lon: 2}, "1,2"},
		{"decimals", geo.Coordinate{Lat: -23.5505, Lon: -46.6333}, "-23.5505,-46.6333"},
		{"negative zero", geo.Coordinate{Lat: math.Copysign(0, -1), Lon: 0}, "0,0"},
		{"no exponent", geo.Coordinate{Lat: 1e-7, Lon: 0}, "0.0000001,0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.Key(tt.in))
		})
	}
}

func TestKey_NoTolerance(t *testing.T) {
	x, y := 0.1, 0.2 // summed at run time; a constant sum would be exactly 0.3
	a := geo.Coordinate{Lat: x + y, Lon: 0}
	b := geo.Coordinate{Lat: 0.3, Lon: 0}
	assert.NotEqual(t, geo.Key(a), geo.Key(b), "differently rounded values must stay distinct")
}

func TestPointConversion(t *testing.T) {
	p := orb.Point{-46.6333, -23.5505}
	c := geo.FromPoint(p)
	assert.Equal(t, -23.5505, c.Lat)
	assert.Equal(t, -46.6333, c.Lon)
	assert.Equal(t, p, geo.ToPoint(c))
}

func TestBounds(t *testing.T) {
	var b geo.Bounds
	require.True(t, b.Empty())
	assert.False(t, b.Contains(geo.Coordinate{}))
	assert.Equal(t, geo.Coordinate{}, b.Center())

	b.Extend(geo.Coordinate{Lat: 1, Lon: 5})
	assert.True(t, b.Degenerate())

	b.Extend(geo.Coordinate{Lat: -1, Lon: 7})
	b.Extend(geo.Coordinate{Lat: 0, Lon: 6})

	assert.False(t, b.Empty())
	assert.False(t, b.Degenerate())
	assert.Equal(t, -1.0, b.MinLat)
	assert.Equal(t, 1.0, b.MaxLat)
	assert.Equal(t, 5.0, b.MinLon)
	assert.Equal(t, 7.0, b.MaxLon)
	assert.True(t, b.Contains(geo.Coordinate{Lat: 0.5, Lon: 5.5}))
	assert.False(t, b.Contains(geo.Coordinate{Lat: 2, Lon: 6}))
	assert.Equal(t, geo.Coordinate{Lat: 0, Lon: 6}, b.Center())
}
