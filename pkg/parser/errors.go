package parser

import (
	"fmt"

	"github.com/garydbutler/TabularForge-sub001/pkg/token"
)

// ParseError represents a parsing error with position information.
// The parser accumulates errors and keeps going; a ParseError is never
// fatal to the rest of the parse.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages.
const (
	ErrUnexpectedToken = "unexpected token %s, expected %s"
	ErrExpectedVarName = "expected variable name after VAR"
	ErrExpectedReturn  = "expected RETURN after VAR definitions"
	ErrExpectedMeasure = "expected 'Table'[Name] after %s"
)
