package typeconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typelang/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
