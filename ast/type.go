package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeExpression NodeType = 128
	nodeTypeStatement  NodeType = 256

	NodeTypeInvalid NodeType = 0

	NodeTypeLiteral      = nodeTypeExpression | 1
	NodeTypeBinary       = nodeTypeExpression | 2
	NodeTypeUnary        = nodeTypeExpression | 3
	NodeTypeCall         = nodeTypeExpression | 4
	NodeTypeArrayLiteral = nodeTypeExpression | 5
	NodeTypeIndex        = nodeTypeExpression | 6

	NodeTypeVarDecl    = nodeTypeStatement | 1
	NodeTypeFuncDecl   = nodeTypeStatement | 2
	NodeTypeIfStmt     = nodeTypeStatement | 3
	NodeTypeWhileStmt  = nodeTypeStatement | 4
	NodeTypeForStmt    = nodeTypeStatement | 5
	NodeTypeReturnStmt = nodeTypeStatement | 6
	NodeTypeWriteStmt  = nodeTypeStatement | 7
	NodeTypeBlock      = nodeTypeStatement | 8
)

// IsExpression returns true for node types that produce a value
func (nt NodeType) IsExpression() bool {
	return nt&nodeTypeExpression > 0
}

// IsStatement returns true for declarations, control flow and blocks
func (nt NodeType) IsStatement() bool {
	return nt&nodeTypeStatement > 0
}

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return "invalid"
}

var nodeTypeName = map[NodeType]string{
	NodeTypeLiteral:      "literal",
	NodeTypeBinary:       "binary",
	NodeTypeUnary:        "unary",
	NodeTypeCall:         "call",
	NodeTypeArrayLiteral: "array",
	NodeTypeIndex:        "index",
	NodeTypeVarDecl:      "var_decl",
	NodeTypeFuncDecl:     "func_decl",
	NodeTypeIfStmt:       "if",
	NodeTypeWhileStmt:    "while",
	NodeTypeForStmt:      "for",
	NodeTypeReturnStmt:   "return",
	NodeTypeWriteStmt:    "write",
	NodeTypeBlock:        "block",
}
