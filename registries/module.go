package registries

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typelang/logs"
	"github.com/reusee/typelang/typeconfigs"
)

type Module struct {
	dscope.Module
	TypeConfigs typeconfigs.Module
	Logs        logs.Module
}

type Registry = *TypeRegistry

func (Module) Registry(
	defs typeconfigs.TypeDefs,
	logger logs.Logger,
) Registry {
	registry := NewTypeRegistry()
	ce(DefineAliases(registry, defs))
	if len(defs) > 0 {
		logger.Info("type aliases defined",
			"count", len(defs),
		)
	}
	return registry
}
