// Package config resolves the runtime configuration of the streetpath
// binaries and builds their logger.
//
// Sources, later ones winning:
//
//  1. Defaults().
//  2. An optional HCL file (see Load).
//  3. Environment variables prefixed with STREETPATH_, looked up through an
//     Lookup built by EnvLookup, which also reads .env files.
//
// Example HCL file:
//
//	addr             = ":8080"
//	data_file        = "data/streets.geojson"
//	log_level        = "debug"
//	log_format       = "text"
//	frontier         = "heap"
//	default_label    = "Rua desconhecida"
//	cors_origins     = ["http://localhost:3000"]
//	max_upload_bytes = 10485760
//	trace_enabled    = true
package config
