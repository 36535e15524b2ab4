package registries

import (
	"github.com/reusee/e5"
)

var (
	ce = e5.Check.With(e5.WrapStacktrace)
)
