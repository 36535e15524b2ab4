package typelang

import "strings"

// Source is one unit of type-expression text, usually a single annotation
// extracted from a template declaration. Name identifies where the text came
// from and is echoed verbatim in error messages.
type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

type Pos struct {
	Source *Source
	Line   int
	Column int
}
