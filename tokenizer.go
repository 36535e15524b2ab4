package typelang

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Tokenizer scans a type-expression Source into Tokens, on demand. It is a
// TokenStream: Current returns the next unconsumed token, Consume advances.
// The scan is a pure function of the source text; a fresh Tokenizer over the
// same Source yields the same token sequence.
type Tokenizer struct {
	source  *Source
	reader  *bufio.Reader
	current *Token

	currPos Pos
	prevPos Pos
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: source,
		reader: bufio.NewReader(strings.NewReader(source.Content)),
		currPos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
}

var _ TokenStream = new(Tokenizer)

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.scanNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.reader.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.reader.UnreadRune()
	t.currPos = t.prevPos
}

func (t *Tokenizer) scanNext() (*Token, error) {
	t.skipWhitespace()
	startPos := t.currPos

	r, err := t.readRune()
	if err == io.EOF {
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}
	if err != nil {
		return nil, err
	}

	if kind, ok := delimiters[r]; ok {
		return &Token{
			Kind: kind,
			Text: string(r),
			Pos:  startPos,
		}, nil
	}

	if isIdentStart(r) {
		t.unreadRune()
		return t.scanIdentifier()
	}

	// Unrecognized runes become tokens instead of scan errors, so the parser
	// can report them with full positional context.
	return &Token{Kind: TokenInvalid, Text: string(r), Pos: startPos}, nil
}

var delimiters = map[rune]TokenKind{
	'<': TokenLAngle,
	'>': TokenRAngle,
	'[': TokenLBracket,
	']': TokenRBracket,
	',': TokenComma,
	'|': TokenBar,
	':': TokenColon,
	'.': TokenDot,
	'?': TokenQuestion,
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			t.unreadRune()
			return
		}
	}
}

func isIdentStart(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) ||
		r >= '0' && r <= '9'
}

func (t *Tokenizer) scanIdentifier() (*Token, error) {
	startPos := t.currPos
	var buf bytes.Buffer
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !isIdentPart(r) {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}

	text := buf.String()
	kind := TokenIdentifier
	// Keyword classification wins over plain identifiers.
	switch text {
	case "list":
		kind = TokenList
	case "map":
		kind = TokenMap
	}

	return &Token{
		Kind: kind,
		Text: text,
		Pos:  startPos,
	}, nil
}
