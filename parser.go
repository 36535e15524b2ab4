package typelang

import "fmt"

// Parser turns one type-expression string into a registry-canonical *Type.
// The grammar needs single-token lookahead only:
//
//	TypeDecl    := TypeExpr EOF
//	TypeExpr    := Primary ( '|' Primary )*
//	Primary     := TypeName | '?' | ListType | MapType | RecordType
//	ListType    := 'list' '<' TypeExpr '>'
//	MapType     := 'map' '<' TypeExpr ',' TypeExpr '>'
//	RecordType  := '[' ( RecordField ( ',' RecordField )* )? ']'
//	RecordField := IDENT ':' TypeExpr
//	TypeName    := IDENT ( '.' IDENT )*
//
// The first error aborts the whole parse; there is no recovery and no
// partial result. One Parser serves one parse; independent Parsers may run
// concurrently as long as the shared Registry allows it.
type Parser struct {
	tokens   TokenStream
	registry Registry
}

func NewParser(source *Source, registry Registry) *Parser {
	return &Parser{
		tokens:   NewTokenizer(source),
		registry: registry,
	}
}

// Parse is the one-call form of NewParser + ParseTypeDeclaration.
func Parse(name string, input string, registry Registry) (*Type, error) {
	return NewParser(NewSource(name, input), registry).ParseTypeDeclaration()
}

// ParseTypeDeclaration parses the whole input as a single type expression.
// Trailing tokens after a complete expression are an error.
func (p *Parser) ParseTypeDeclaration() (*Type, error) {
	t, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenEOF); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Parser) expect(kind TokenKind) (*Token, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != kind {
		return nil, WithPos(
			fmt.Errorf("expected %s, got %s", kind, describe(tok)),
			tok.Pos,
		)
	}
	p.tokens.Consume()
	return tok, nil
}

func describe(tok *Token) string {
	switch tok.Kind {
	case TokenEOF:
		return "end of input"
	case TokenInvalid:
		return fmt.Sprintf("unexpected character %q", tok.Text)
	}
	return fmt.Sprintf("%q", tok.Text)
}

func (p *Parser) parseTypeExpr() (*Type, error) {
	first, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	members := []*Type{first}
	for {
		tok, err := p.tokens.Current()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenBar {
			break
		}
		p.tokens.Consume()

		member, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	if len(members) == 1 {
		return first, nil
	}
	// Members go to the registry in source order; whether it deduplicates
	// is the registry's contract.
	return p.registry.GetOrCreateUnionType(members), nil
}

// parsePrimary dispatches on the kind of the next token alone; a mismatch
// inside the chosen alternative is a hard error, never a fallback.
func (p *Parser) parsePrimary() (*Type, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {

	case TokenList:
		return p.parseListType()

	case TokenMap:
		return p.parseMapType()

	case TokenLBracket:
		return p.parseRecordType()

	case TokenQuestion:
		p.tokens.Consume()
		return Unknown, nil

	case TokenIdentifier:
		return p.parseTypeName()

	}

	return nil, WithPos(
		fmt.Errorf("expected type expression, got %s", describe(tok)),
		tok.Pos,
	)
}

func (p *Parser) parseListType() (*Type, error) {
	p.tokens.Consume() // list
	if _, err := p.expect(TokenLAngle); err != nil {
		return nil, err
	}
	elem, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRAngle); err != nil {
		return nil, err
	}
	return p.registry.GetOrCreateListType(elem), nil
}

func (p *Parser) parseMapType() (*Type, error) {
	p.tokens.Consume() // map
	if _, err := p.expect(TokenLAngle); err != nil {
		return nil, err
	}
	key, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenComma); err != nil {
		return nil, err
	}
	value, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRAngle); err != nil {
		return nil, err
	}
	return p.registry.GetOrCreateMapType(key, value), nil
}

func (p *Parser) parseRecordType() (*Type, error) {
	p.tokens.Consume() // [

	var fields []Field
	seen := make(map[string]bool)

	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenRBracket {
		for {
			field, err := p.parseRecordField(seen)
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)

			tok, err := p.tokens.Current()
			if err != nil {
				return nil, err
			}
			if tok.Kind != TokenComma {
				break
			}
			p.tokens.Consume()
		}
	}

	if _, err := p.expect(TokenRBracket); err != nil {
		return nil, err
	}
	return p.registry.GetOrCreateRecordType(fields), nil
}

func (p *Parser) parseRecordField(seen map[string]bool) (Field, error) {
	nameTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return Field{}, err
	}
	// Duplicates fail on the first re-occurrence.
	if seen[nameTok.Text] {
		return Field{}, WithPos(
			fmt.Errorf("duplicate field %q", nameTok.Text),
			nameTok.Pos,
		)
	}
	seen[nameTok.Text] = true

	if _, err := p.expect(TokenColon); err != nil {
		return Field{}, err
	}
	t, err := p.parseTypeExpr()
	if err != nil {
		return Field{}, err
	}

	return Field{
		Name: nameTok.Text,
		Type: t,
	}, nil
}

func (p *Parser) parseTypeName() (*Type, error) {
	nameTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}
	name := nameTok.Text

	for {
		tok, err := p.tokens.Current()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenDot {
			break
		}
		p.tokens.Consume()

		part, err := p.expect(TokenIdentifier)
		if err != nil {
			return nil, err
		}
		name += "." + part.Text
	}

	// Name resolution is eager; there is no unresolved AST stage.
	t, ok := p.registry.GetType(name)
	if !ok {
		return nil, WithPos(
			fmt.Errorf("unknown type %q", name),
			nameTok.Pos,
		)
	}
	return t, nil
}
