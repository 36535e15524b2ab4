package registries

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/typelang"
	"github.com/reusee/typelang/typeconfigs"
)

func TestModule(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() typeconfigs.TypeDefs {
			return typeconfigs.TypeDefs{
				"UserId":  "int",
				"Profile": "[id: UserId, tags: list<string>]",
			}
		},
	).Call(func(
		registry Registry,
	) {
		typ, err := typelang.Parse("test", "map<string, Profile>", registry)
		if err != nil {
			t.Fatal(err)
		}
		if got := typ.String(); got != "map<string, [id: int, tags: list<string>]>" {
			t.Fatalf("got %s", got)
		}
	})
}
