package geo

// Bounds is the axis-aligned box enclosing a set of coordinates.
// The zero value is empty; Extend grows it.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`

	set bool
}

// Extend grows b so that it contains c.
func (b *Bounds) Extend(c Coordinate) {
	if !b.set {
		b.MinLat, b.MaxLat = c.Lat, c.Lat
		b.MinLon, b.MaxLon = c.Lon, c.Lon
		b.set = true

		return
	}
	if c.Lat < b.MinLat {
		b.MinLat = c.Lat
	}
	if c.Lat > b.MaxLat {
		b.MaxLat = c.Lat
	}
	if c.Lon < b.MinLon {
		b.MinLon = c.Lon
	}
	if c.Lon > b.MaxLon {
		b.MaxLon = c.Lon
	}
}

// Empty reports whether no coordinate has been added yet.
func (b Bounds) Empty() bool { return !b.set }

// Contains reports whether c lies inside b, edges included.
func (b Bounds) Contains(c Coordinate) bool {
	if !b.set {
		return false
	}

	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat && c.Lon >= b.MinLon && c.Lon <= b.MaxLon
}

// Center returns the midpoint of the box. It is the zero Coordinate for an empty box.
func (b Bounds) Center() Coordinate {
	if !b.set {
		return Coordinate{}
	}

	return Coordinate{Lat: (b.MinLat + b.MaxLat) / 2, Lon: (b.MinLon + b.MaxLon) / 2}
}

// Degenerate reports whether the box has zero height or zero width, the case
// in which a renderer cannot scale it.
func (b Bounds) Degenerate() bool {
	return b.set && (b.MinLat == b.MaxLat || b.MinLon == b.MaxLon)
}
