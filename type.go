package typelang

import "strings"

// Type is the parser's sole output value, a tagged variant. Composite types
// are always obtained from a Registry so that structurally identical types
// share one canonical instance; code holding two *Type values from the same
// registry may compare them with ==.
type Type struct {
	Kind TypeKind

	// TypeNamed
	Name string

	// TypeList
	Elem *Type

	// TypeMap
	Key   *Type
	Value *Type

	// TypeRecord, in declaration order
	Fields []Field

	// TypeUnion, in source order
	Members []*Type
}

type TypeKind uint8

const (
	TypeNamed TypeKind = iota
	TypeList
	TypeMap
	TypeRecord
	TypeUnion
	TypeUnknown
)

type Field struct {
	Name string
	Type *Type
}

// Unknown is the singleton unknown marker type, written "?".
var Unknown = &Type{
	Kind: TypeUnknown,
}

// String renders the canonical source form of the type. Registries key their
// intern tables on this form.
func (t *Type) String() string {
	switch t.Kind {

	case TypeNamed:
		return t.Name

	case TypeList:
		return "list<" + t.Elem.String() + ">"

	case TypeMap:
		return "map<" + t.Key.String() + ", " + t.Value.String() + ">"

	case TypeRecord:
		var sb strings.Builder
		sb.WriteString("[")
		for i, field := range t.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(field.Name)
			sb.WriteString(": ")
			sb.WriteString(field.Type.String())
		}
		sb.WriteString("]")
		return sb.String()

	case TypeUnion:
		var sb strings.Builder
		for i, member := range t.Members {
			if i > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(member.String())
		}
		return sb.String()

	case TypeUnknown:
		return "?"

	}
	return "<invalid type>"
}
