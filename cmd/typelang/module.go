package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typelang/debugs"
	"github.com/reusee/typelang/registries"
)

type Module struct {
	dscope.Module
	Registries registries.Module
	Debugs     debugs.Module
}
