package typeconfigs

import (
	"github.com/reusee/typelang/configs"
)

// TypeDefs maps alias names to type-expression strings, merged across config
// files; the first definition of a name wins.
type TypeDefs map[string]string

func (Module) TypeDefs(
	loader configs.Loader,
) TypeDefs {
	defs := make(TypeDefs)
	for m := range configs.All[map[string]string](loader, "types") {
		for name, expr := range m {
			if _, ok := defs[name]; ok {
				continue
			}
			defs[name] = expr
		}
	}
	return defs
}
