package registries

// The primitive types of the host template system. Every fresh registry
// resolves these; everything else comes from Define or config aliases.
var builtinNames = []string{
	"null",
	"bool",
	"int",
	"float",
	"number",
	"string",
	"html",
	"uri",
}
