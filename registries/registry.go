package registries

import (
	"fmt"
	"sync"

	"github.com/reusee/typelang"
)

// TypeRegistry owns the canonical instance of every type it hands out.
// Composite constructors intern on the canonical source form, so structurally
// identical types from independent parses are pointer-identical. All methods
// are safe for concurrent use; parsers on separate goroutines may share one
// registry.
type TypeRegistry struct {
	mu       sync.RWMutex
	named    map[string]*typelang.Type
	interned map[string]*typelang.Type
}

func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{
		named:    make(map[string]*typelang.Type),
		interned: make(map[string]*typelang.Type),
	}
	for _, name := range builtinNames {
		r.named[name] = &typelang.Type{
			Kind: typelang.TypeNamed,
			Name: name,
		}
	}
	return r
}

var _ typelang.Registry = new(TypeRegistry)

func (r *TypeRegistry) GetType(name string) (*typelang.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.named[name]
	return t, ok
}

// Define registers name as a resolvable type name. Redefinition is an error;
// names are never shadowed or replaced.
func (r *TypeRegistry) Define(name string, t *typelang.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.named[name]; ok {
		return fmt.Errorf("type %q already defined", name)
	}
	r.named[name] = t
	return nil
}

// DefineNamed registers name as a new opaque named type.
func (r *TypeRegistry) DefineNamed(name string) (*typelang.Type, error) {
	t := &typelang.Type{
		Kind: typelang.TypeNamed,
		Name: name,
	}
	if err := r.Define(name, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Names returns all resolvable type names, unordered.
func (r *TypeRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.named))
	for name := range r.named {
		names = append(names, name)
	}
	return names
}

func (r *TypeRegistry) GetOrCreateListType(elem *typelang.Type) *typelang.Type {
	return r.intern(&typelang.Type{
		Kind: typelang.TypeList,
		Elem: elem,
	})
}

func (r *TypeRegistry) GetOrCreateMapType(key *typelang.Type, value *typelang.Type) *typelang.Type {
	return r.intern(&typelang.Type{
		Kind:  typelang.TypeMap,
		Key:   key,
		Value: value,
	})
}

func (r *TypeRegistry) GetOrCreateRecordType(fields []typelang.Field) *typelang.Type {
	return r.intern(&typelang.Type{
		Kind:   typelang.TypeRecord,
		Fields: fields,
	})
}

// GetOrCreateUnionType flattens nested unions and drops duplicate members,
// keeping first-occurrence order. A union with one distinct member collapses
// to that member.
func (r *TypeRegistry) GetOrCreateUnionType(members []*typelang.Type) *typelang.Type {
	var distinct []*typelang.Type
	seen := make(map[string]bool)
	var add func(ts []*typelang.Type)
	add = func(ts []*typelang.Type) {
		for _, t := range ts {
			if t.Kind == typelang.TypeUnion {
				add(t.Members)
				continue
			}
			key := t.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			distinct = append(distinct, t)
		}
	}
	add(members)

	if len(distinct) == 1 {
		return distinct[0]
	}
	return r.intern(&typelang.Type{
		Kind:    typelang.TypeUnion,
		Members: distinct,
	})
}

func (r *TypeRegistry) intern(candidate *typelang.Type) *typelang.Type {
	key := candidate.String()

	r.mu.RLock()
	t, ok := r.interned[key]
	r.mu.RUnlock()
	if ok {
		return t
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.interned[key]; ok {
		return t
	}
	r.interned[key] = candidate
	return candidate
}
