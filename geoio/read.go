package geoio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/streetpath/builder"
	"github.com/katalvlaran/streetpath/geo"
)

// Sentinel errors for GeoJSON input.
var (
	// ErrInvalidGeoJSON indicates input that is not valid GeoJSON.
	ErrInvalidGeoJSON = errors.New("geoio: invalid GeoJSON")

	// ErrNotFeatureCollection indicates valid JSON that is not a
	// FeatureCollection with a features array.
	ErrNotFeatureCollection = errors.New("geoio: not a FeatureCollection")
)

// NameProperty is the feature property holding the street name.
const NameProperty = "name"

// envelope is decoded first so that the document kind can be reported
// precisely before the full geometry decode.
type envelope struct {
	Type     string          `json:"type"`
	Features json.RawMessage `json:"features"`
}

// Decode parses a GeoJSON FeatureCollection and returns one polyline per
// LineString feature, in document order. Other geometry types and features
// without geometry are skipped.
func Decode(data []byte) ([]builder.Polyline, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeoJSON, err)
	}
	if env.Type != "FeatureCollection" || len(env.Features) == 0 || string(env.Features) == "null" {
		return nil, fmt.Errorf("%w: type %q", ErrNotFeatureCollection, env.Type)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeoJSON, err)
	}

	lines := make([]builder.Polyline, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		ls, ok := f.Geometry.(orb.LineString)
		if !ok {
			continue
		}
		pts := make([]geo.Coordinate, len(ls))
		for i, p := range ls {
			pts[i] = geo.FromPoint(p)
		}
		lines = append(lines, builder.Polyline{Name: featureName(f.Properties), Points: pts})
	}

	return lines, nil
}

// ReadFeatureCollection reads all of r and decodes it with Decode.
func ReadFeatureCollection(r io.Reader) ([]builder.Polyline, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("geoio: read: %w", err)
	}

	return Decode(data)
}

// LoadFile reads and decodes the GeoJSON file at path.
func LoadFile(path string) ([]builder.Polyline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geoio: %w", err)
	}
	lines, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lines, nil
}

// featureName returns the name property as text. Strings are used as-is,
// non-zero numbers and true are formatted. Zero, NaN, false and anything
// else count as unnamed.
func featureName(props geojson.Properties) string {
	switch v := props[NameProperty].(type) {
	case string:
		return v
	case float64:
		if v == 0 || math.IsNaN(v) {
			return ""
		}

		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if !v {
			return ""
		}

		return strconv.FormatBool(v)
	default:
		return ""
	}
}
