package typelang

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenLAngle
	TokenRAngle
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenBar
	TokenColon
	TokenDot
	TokenQuestion
	TokenList
	TokenMap
	TokenIdentifier
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenLAngle:
		return "'<'"
	case TokenRAngle:
		return "'>'"
	case TokenLBracket:
		return "'['"
	case TokenRBracket:
		return "']'"
	case TokenComma:
		return "','"
	case TokenBar:
		return "'|'"
	case TokenColon:
		return "':'"
	case TokenDot:
		return "'.'"
	case TokenQuestion:
		return "'?'"
	case TokenList:
		return "'list'"
	case TokenMap:
		return "'map'"
	case TokenIdentifier:
		return "identifier"
	}
	return "invalid token"
}
