package main

import (
	"strings"
	"testing"

	"github.com/reusee/typelang"
	"github.com/reusee/typelang/registries"
)

func TestCheckLines(t *testing.T) {
	registry := registries.NewTypeRegistry()

	var types []string
	ok := checkLines(strings.NewReader(`
# a comment
list<int>

map<string, ?>
`), "test", registry, func(typ *typelang.Type) {
		types = append(types, typ.String())
	})
	if !ok {
		t.Fatal("should pass")
	}
	if got := strings.Join(types, ";"); got != "list<int>;map<string, ?>" {
		t.Fatalf("got %s", got)
	}

	ok = checkLines(strings.NewReader("list<bogus>\nint\n"), "test", registry, nil)
	if ok {
		t.Fatal("should fail")
	}
}

func TestIsSkippable(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\t", true},
		{"# comment", true},
		{"   # indented comment", true},
		{"int", false},
		{"  list<int>", false},
	}
	for _, test := range tests {
		if got := isSkippable(test.line); got != test.expected {
			t.Errorf("%q: got %v", test.line, got)
		}
	}
}
