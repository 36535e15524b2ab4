package registries

import (
	"errors"
	"maps"
	"slices"

	"github.com/reusee/typelang"
)

// DefineAliases registers named aliases, each given as a type-expression
// string resolved against the registry. Aliases may reference each other in
// any order; definitions are retried until a fixpoint, so only genuinely
// unknown names or reference cycles fail. Deterministic regardless of map
// order.
func DefineAliases(registry *TypeRegistry, defs map[string]string) error {
	pending := maps.Clone(defs)

	for len(pending) > 0 {
		progressed := false
		var deferred []error

		for _, name := range slices.Sorted(maps.Keys(pending)) {
			t, err := typelang.Parse(name, pending[name], registry)
			if err != nil {
				// may become resolvable once other aliases are in
				deferred = append(deferred, err)
				continue
			}
			if err := registry.Define(name, t); err != nil {
				return err
			}
			delete(pending, name)
			progressed = true
		}

		if !progressed {
			return errors.Join(deferred...)
		}
	}

	return nil
}
