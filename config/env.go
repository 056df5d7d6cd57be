package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Lookup returns the value of an environment variable and whether it is set.
type Lookup func(key string) (string, bool)

// EnvLookup returns a Lookup over the process environment, falling back to
// the values of the given .env files. Missing files are skipped; the first
// file defining a key wins, like godotenv.Load.
func EnvLookup(dotenv ...string) (Lookup, error) {
	merged := make(map[string]string)
	for _, path := range dotenv {
		if path == "" {
			continue
		}
		vals, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		for k, v := range vals {
			if _, seen := merged[k]; !seen {
				merged[k] = v
			}
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := merged[key]

		return v, ok
	}, nil
}

// MapLookup adapts a map to Lookup.
func MapLookup(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]

		return v, ok
	}
}
