package parser

import "github.com/garydbutler/TabularForge-sub001/pkg/token"

// Node is implemented by every AST node.
type Node interface {
	GetSpan() token.Span
}

// Stmt represents a top-level statement in a DAX script.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression.
type Expr interface {
	Node
	exprNode()
}

// NodeInfo provides common position fields for all AST nodes.
// Embed this in node types that need span tracking.
type NodeInfo struct {
	Span token.Span
}

// GetSpan returns the node's source span.
func (n *NodeInfo) GetSpan() token.Span {
	return n.Span
}

// ---------- Statement Types ----------

// Script is the root node: one statement per structural unit found.
type Script struct {
	NodeInfo
	Statements []Stmt
}

func (*Script) stmtNode() {}

// Define represents a DEFINE block with its definitions and the optional
// trailing EVALUATE.
type Define struct {
	NodeInfo
	Definitions []Stmt // MeasureDef and ColumnDef in source order
	Evaluate    *Evaluate
}

func (*Define) stmtNode() {}

// Evaluate represents an EVALUATE statement.
type Evaluate struct {
	NodeInfo
	Expr Expr
}

func (*Evaluate) stmtNode() {}

// MeasureDef represents MEASURE 'Table'[Name] = expression.
type MeasureDef struct {
	NodeInfo
	Table string
	Name  string
	Expr  Expr
}

func (*MeasureDef) stmtNode() {}

// ColumnDef represents COLUMN 'Table'[Name] = expression.
type ColumnDef struct {
	NodeInfo
	Table string
	Name  string
	Expr  Expr
}

func (*ColumnDef) stmtNode() {}

// ExprStmt wraps a bare expression used as a statement.
type ExprStmt struct {
	NodeInfo
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// ErrorNode marks a construct the parser could not make sense of.
// The offending token is kept by value for diagnostics.
type ErrorNode struct {
	NodeInfo
	Message string
	Tok     token.Token
}

func (*ErrorNode) stmtNode() {}
func (*ErrorNode) exprNode() {}

// ---------- Expression Types ----------

// ExprList is a generic expression sequence. It carries VAR ... RETURN
// chains ([VarExpr..., ReturnExpr]) and brace table constructors.
type ExprList struct {
	NodeInfo
	Items []Expr
}

func (*ExprList) exprNode() {}

// VarExpr represents VAR name = value.
type VarExpr struct {
	NodeInfo
	Name  string
	Value Expr
}

func (*VarExpr) exprNode() {}

// ReturnExpr represents RETURN expression.
type ReturnExpr struct {
	NodeInfo
	Value Expr
}

func (*ReturnExpr) exprNode() {}

// FunctionCall represents a function invocation. Unknown names still parse
// as calls; name validity is a semantic concern.
type FunctionCall struct {
	NodeInfo
	Name string
	Args []Expr
}

func (*FunctionCall) exprNode() {}

// TableRef represents a bare table reference such as 'Sales' or Sales.
type TableRef struct {
	NodeInfo
	Table string
}

func (*TableRef) exprNode() {}

// ColumnRef represents a column or measure reference, optionally qualified:
// 'Sales'[Qty], Sales[Qty], or [Total].
type ColumnRef struct {
	NodeInfo
	Table  string // empty if unqualified
	Column string
}

func (*ColumnRef) exprNode() {}

// LiteralKind distinguishes literal types.
type LiteralKind int

// Literal kinds.
const (
	LiteralNumber LiteralKind = iota
	LiteralString
)

// Literal represents a numeric or string literal; Text is the raw source.
type Literal struct {
	NodeInfo
	Kind LiteralKind
	Text string
}

func (*Literal) exprNode() {}

// BinaryExpr represents a binary operation.
type BinaryExpr struct {
	NodeInfo
	Left  Expr
	Op    token.TokenType
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr represents unary + or -.
type UnaryExpr struct {
	NodeInfo
	Op   token.TokenType
	Expr Expr
}

func (*UnaryExpr) exprNode() {}

// ParenExpr represents a parenthesized expression.
type ParenExpr struct {
	NodeInfo
	Expr Expr
}

func (*ParenExpr) exprNode() {}

// Identifier represents a bare identifier (variable reference, TRUE/FALSE,
// or anything else the grammar accepts permissively).
type Identifier struct {
	NodeInfo
	Name string
}

func (*Identifier) exprNode() {}
