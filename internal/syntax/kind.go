package syntax

import "fmt"

// SyntaxKind identifies the kind of a tree node.
type SyntaxKind uint8

const (
	KindNone  SyntaxKind = iota // placeholder of an uncompleted marker
	ErrorNode                   // tokens the grammar could not place
	Root                        // wrapper produced by non-file entry rules

	// Declarations
	SourceFile
	Name
	FnDecl
	StructDecl
	EnumDecl
	TypeAliasDecl
	ConstDecl
	GenericParamList
	GenericParam
	GenericArgList
	GenericArg
	ParamList
	Param
	ReturnType
	StructBody
	StructField
	EnumBody
	EnumVariant
	TupleFields
	TupleField
	RecordFields
	RecordField

	// Types
	TypeRef
	ArrayType
	TupleType

	// Statements
	Block
	LetStmt
	IfStmt
	ElseClause
	WhileStmt
	ForStmt
	ReturnStmt
	ExprStmt
	AssignStmt

	// Expressions
	BinaryExpr
	UnaryExpr
	ParenExpr
	NumberLit
	VarRef
	CallExpr
	FieldExpr
	MethodCallExpr
	IndexExpr
	ArgList
	Arg
	StringLit
	StringPart
	StringInterp

	syntaxKindCount
)

var syntaxKindNames = [...]string{
	KindNone:         "None",
	ErrorNode:        "Error",
	Root:             "Root",
	SourceFile:       "SourceFile",
	Name:             "Name",
	FnDecl:           "FnDecl",
	StructDecl:       "StructDecl",
	EnumDecl:         "EnumDecl",
	TypeAliasDecl:    "TypeAliasDecl",
	ConstDecl:        "ConstDecl",
	GenericParamList: "GenericParamList",
	GenericParam:     "GenericParam",
	GenericArgList:   "GenericArgList",
	GenericArg:       "GenericArg",
	ParamList:        "ParamList",
	Param:            "Param",
	ReturnType:       "ReturnType",
	StructBody:       "StructBody",
	StructField:      "StructField",
	EnumBody:         "EnumBody",
	EnumVariant:      "EnumVariant",
	TupleFields:      "TupleFields",
	TupleField:       "TupleField",
	RecordFields:     "RecordFields",
	RecordField:      "RecordField",
	TypeRef:          "TypeRef",
	ArrayType:        "ArrayType",
	TupleType:        "TupleType",
	Block:            "Block",
	LetStmt:          "LetStmt",
	IfStmt:           "IfStmt",
	ElseClause:       "ElseClause",
	WhileStmt:        "WhileStmt",
	ForStmt:          "ForStmt",
	ReturnStmt:       "ReturnStmt",
	ExprStmt:         "ExprStmt",
	AssignStmt:       "AssignStmt",
	BinaryExpr:       "BinaryExpr",
	UnaryExpr:        "UnaryExpr",
	ParenExpr:        "ParenExpr",
	NumberLit:        "NumberLit",
	VarRef:           "VarRef",
	CallExpr:         "CallExpr",
	FieldExpr:        "FieldExpr",
	MethodCallExpr:   "MethodCallExpr",
	IndexExpr:        "IndexExpr",
	ArgList:          "ArgList",
	Arg:              "Arg",
	StringLit:        "StringLit",
	StringPart:       "StringPart",
	StringInterp:     "StringInterp",
}

func (k SyntaxKind) String() string {
	if k < syntaxKindCount {
		return syntaxKindNames[k]
	}
	return fmt.Sprintf("SyntaxKind(%d)", k)
}

// ParseSyntaxKind returns the kind named s.
func ParseSyntaxKind(s string) (SyntaxKind, bool) {
	for k, name := range syntaxKindNames {
		if name == s {
			return SyntaxKind(k), true
		}
	}
	return KindNone, false
}
