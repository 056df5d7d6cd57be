// Package geoio reads road networks from GeoJSON and writes graphs and
// computed paths back as GeoJSON for renderers.
//
// Only LineString features are turned into polylines. GeoJSON positions are
// [lon, lat]; they are swapped into geo.Coordinate on the way in and back on
// the way out. A feature's "name" property becomes the polyline name.
package geoio
