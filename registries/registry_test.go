package registries

import (
	"strings"
	"sync"
	"testing"

	"github.com/reusee/typelang"
)

func TestBuiltins(t *testing.T) {
	registry := NewTypeRegistry()
	for _, name := range []string{"null", "bool", "int", "float", "number", "string", "html", "uri"} {
		typ, ok := registry.GetType(name)
		if !ok {
			t.Fatalf("missing builtin %q", name)
		}
		if typ.Kind != typelang.TypeNamed || typ.Name != name {
			t.Fatalf("got %v", typ)
		}
	}
	if _, ok := registry.GetType("bogus"); ok {
		t.Fatal("should not resolve")
	}
}

func TestDefine(t *testing.T) {
	registry := NewTypeRegistry()

	typ, err := registry.DefineNamed("Foo.Bar")
	if err != nil {
		t.Fatal(err)
	}
	got, ok := registry.GetType("Foo.Bar")
	if !ok || got != typ {
		t.Fatalf("got %v", got)
	}

	if _, err := registry.DefineNamed("Foo.Bar"); err == nil {
		t.Fatal("redefinition should error")
	}
	if err := registry.Define("int", typ); err == nil {
		t.Fatal("redefining a builtin should error")
	}
}

func TestCanonicalization(t *testing.T) {
	registry := NewTypeRegistry()

	parse := func(input string) *typelang.Type {
		t.Helper()
		typ, err := typelang.Parse("test", input, registry)
		if err != nil {
			t.Fatal(err)
		}
		return typ
	}

	// the same text twice yields the same instance
	for _, input := range []string{
		"list<int>",
		"map<string, ?>",
		"[a: int, b: list<string>]",
		"int|string",
	} {
		if parse(input) != parse(input) {
			t.Fatalf("%s: not canonical", input)
		}
	}

	// structural identity, not textual identity
	if parse("list< int >") != parse("list<int>") {
		t.Fatal("whitespace should not matter")
	}

	// different structures stay apart
	if parse("list<int>") == parse("list<string>") {
		t.Fatal("distinct types interned together")
	}
	if parse("[a: int, b: int]") == parse("[b: int, a: int]") {
		t.Fatal("field order must distinguish records")
	}

	// sub-types are shared with standalone parses
	listType := parse("list<map<string, int>>")
	if listType.Elem != parse("map<string, int>") {
		t.Fatal("element type not canonical")
	}
}

func TestUnionSemantics(t *testing.T) {
	registry := NewTypeRegistry()

	parse := func(input string) *typelang.Type {
		t.Helper()
		typ, err := typelang.Parse("test", input, registry)
		if err != nil {
			t.Fatal(err)
		}
		return typ
	}

	// duplicates collapse, first occurrence order kept
	typ := parse("int|string|int")
	if got := typ.String(); got != "int|string" {
		t.Fatalf("got %s", got)
	}

	// a union of one distinct member is that member
	if parse("int|int") != parse("int") {
		t.Fatal("should collapse to the member")
	}

	// member order is structural
	if parse("int|string") == parse("string|int") {
		t.Fatal("member order must distinguish unions")
	}

	// nested unions flatten
	intType, _ := registry.GetType("int")
	stringType, _ := registry.GetType("string")
	boolType, _ := registry.GetType("bool")
	inner := registry.GetOrCreateUnionType([]*typelang.Type{intType, stringType})
	outer := registry.GetOrCreateUnionType([]*typelang.Type{inner, boolType})
	if got := outer.String(); got != "int|string|bool" {
		t.Fatalf("got %s", got)
	}
	if outer != parse("int|string|bool") {
		t.Fatal("flattened union not canonical")
	}
}

func TestConcurrentParses(t *testing.T) {
	registry := NewTypeRegistry()

	const input = "[a: map<string, list<int|?>>, b: Foo]"
	if _, err := registry.DefineNamed("Foo"); err != nil {
		t.Fatal(err)
	}

	results := make([]*typelang.Type, 32)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			typ, err := typelang.Parse("test", input, registry)
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = typ
		}()
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent parses disagree")
		}
	}
}

func TestDefineAliases(t *testing.T) {
	registry := NewTypeRegistry()

	// Address references UserId; map order must not matter.
	err := DefineAliases(registry, map[string]string{
		"UserId":  "int",
		"Address": "[city: string, zip: UserId]",
		"Contact": "map<string, Address|?>",
	})
	if err != nil {
		t.Fatal(err)
	}

	typ, err := typelang.Parse("test", "list<Contact>", registry)
	if err != nil {
		t.Fatal(err)
	}
	if got := typ.String(); got != "list<map<string, [city: string, zip: int]|?>>" {
		t.Fatalf("got %s", got)
	}

	// an alias is the aliased type, not a new named type
	userID, _ := registry.GetType("UserId")
	intType, _ := registry.GetType("int")
	if userID != intType {
		t.Fatal("alias should resolve to the target type")
	}
}

func TestDefineAliasesUnresolvable(t *testing.T) {
	registry := NewTypeRegistry()

	err := DefineAliases(registry, map[string]string{
		"A": "list<Nope>",
	})
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), `unknown type "Nope"`) {
		t.Fatalf("got %v", err)
	}

	// reference cycles cannot make progress
	err = DefineAliases(registry, map[string]string{
		"X": "list<Y>",
		"Y": "list<X>",
	})
	if err == nil {
		t.Fatal("cycle should error")
	}
}

func TestDefineAliasesBadSyntax(t *testing.T) {
	registry := NewTypeRegistry()
	err := DefineAliases(registry, map[string]string{
		"Broken": "list<",
	})
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "Broken:1:") {
		t.Fatalf("error should carry the alias name as source: %v", err)
	}
}
