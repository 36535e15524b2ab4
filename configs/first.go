package configs

import (
	"errors"
)

// First returns the first definition of path across the loader's files, or
// the zero value if none defines it. Panics on malformed config.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
