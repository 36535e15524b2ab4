package typelang

// Registry resolves named types and owns the canonical instance of every
// composite type. The parser borrows a Registry for the duration of one parse
// and never constructs composite types itself; it only feeds already-resolved
// sub-types to the GetOrCreate constructors.
//
// Implementations must return the same *Type for structurally identical
// arguments. Whether union construction deduplicates members or flattens
// nested unions is the implementation's contract; the parser passes members
// through in source order.
type Registry interface {
	GetType(name string) (*Type, bool)
	GetOrCreateListType(elem *Type) *Type
	GetOrCreateMapType(key *Type, value *Type) *Type
	GetOrCreateRecordType(fields []Field) *Type
	GetOrCreateUnionType(members []*Type) *Type
}
