package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid TokenType = iota

	TokenLeftBracket  // Open square bracket: "["
	TokenRightBracket // Close square bracket: "]"
	TokenLeftParen    // Open parenthesis: "("
	TokenRightParen   // Close parenthesis: ")"
	TokenComma        // Comma: ","
	TokenColon        // Colon: ":"
	TokenArrow        // Arrow: "->"

	TokenImport // Import marker: "<>"
	TokenFrom   // From marker: "::"

	TokenComment      // Line comment: "@ ..." or "# ..."
	TokenMultiComment // Block comment: "@@ ... @@"
	TokenHashEqual    // Hash equal: "# ="

	TokenLet
	TokenFunc
	TokenIf
	TokenElse
	TokenWhile
	TokenFor
	TokenReturn
	TokenWrite
	TokenAnd // "and" or "&&"
	TokenOr  // "or" or "||"
	TokenTrue
	TokenFalse

	TokenIntType
	TokenFloatType
	TokenStringType
	TokenBoolType
	TokenArrayType

	TokenPlus         // "+"
	TokenMinus        // "-"
	TokenStar         // "*"
	TokenSlash        // "/"
	TokenMod          // "%"
	TokenEquals       // "="
	TokenEqualEqual   // "=="
	TokenBangEqual    // "!="
	TokenBang         // "!"
	TokenLess         // "<"
	TokenLessEqual    // "<="
	TokenGreater      // ">"
	TokenGreaterEqual // ">="

	TokenNumber     // Integers
	TokenFloat      // Digits with a fractional part
	TokenString     // Double quoted text
	TokenIdentifier // Letters, digits and underscore, not starting with a digit

	TokenEOF // End of file
)

var keywords = map[string]TokenType{
	"let":    TokenLet,
	"func":   TokenFunc,
	"if":     TokenIf,
	"else":   TokenElse,
	"while":  TokenWhile,
	"for":    TokenFor,
	"return": TokenReturn,
	"write":  TokenWrite,
	"and":    TokenAnd,
	"or":     TokenOr,
	"true":   TokenTrue,
	"false":  TokenFalse,
	"int":    TokenIntType,
	"float":  TokenFloatType,
	"string": TokenStringType,
	"bool":   TokenBoolType,
	"array":  TokenArrayType,
}

var tokenNames = map[TokenType]string{
	TokenInvalid:      "invalid",
	TokenLeftBracket:  "left_bracket",
	TokenRightBracket: "right_bracket",
	TokenLeftParen:    "left_paren",
	TokenRightParen:   "right_paren",
	TokenComma:        "comma",
	TokenColon:        "colon",
	TokenArrow:        "arrow",
	TokenImport:       "import",
	TokenFrom:         "from",
	TokenComment:      "comment",
	TokenMultiComment: "multi_comment",
	TokenHashEqual:    "hash_equal",
	TokenLet:          "let",
	TokenFunc:         "func",
	TokenIf:           "if",
	TokenElse:         "else",
	TokenWhile:        "while",
	TokenFor:          "for",
	TokenReturn:       "return",
	TokenWrite:        "write",
	TokenAnd:          "and",
	TokenOr:           "or",
	TokenTrue:         "true",
	TokenFalse:        "false",
	TokenIntType:      "int_type",
	TokenFloatType:    "float_type",
	TokenStringType:   "string_type",
	TokenBoolType:     "bool_type",
	TokenArrayType:    "array_type",
	TokenPlus:         "plus",
	TokenMinus:        "minus",
	TokenStar:         "star",
	TokenSlash:        "slash",
	TokenMod:          "mod",
	TokenEquals:       "equals",
	TokenEqualEqual:   "equal_equal",
	TokenBangEqual:    "bang_equal",
	TokenBang:         "bang",
	TokenLess:         "less",
	TokenLessEqual:    "less_equal",
	TokenGreater:      "greater",
	TokenGreaterEqual: "greater_equal",
	TokenNumber:       "number",
	TokenFloat:        "float",
	TokenString:       "string",
	TokenIdentifier:   "identifier",
	TokenEOF:          "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// IsComment returns true for line and block comments.
func (tt TokenType) IsComment() bool {
	return tt == TokenComment || tt == TokenMultiComment
}

// IsTypeName returns true for the built-in type keywords.
func (tt TokenType) IsTypeName() bool {
	return tt >= TokenIntType && tt <= TokenArrayType
}

// LookupIdentifier returns the keyword type for name, or TokenIdentifier.
func LookupIdentifier(name string) TokenType {
	if tt, ok := keywords[name]; ok {
		return tt
	}
	return TokenIdentifier
}

func isOneOf(set string) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range set {
			if v == r {
				return true
			}
		}
		return false
	}
}
