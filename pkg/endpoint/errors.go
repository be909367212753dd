package endpoint

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/edl-lang/edl/internal/grammar"
)

// ErrorCode classifies parse failures
type ErrorCode int

const (
	SyntaxErrorCode ErrorCode = iota
	UnexpectedRuleCode
	UnsupportedTypeCode
)

// String returns the name of the error code
func (c ErrorCode) String() string {
	switch c {
	case SyntaxErrorCode:
		return "SyntaxError"
	case UnexpectedRuleCode:
		return "UnexpectedRule"
	case UnsupportedTypeCode:
		return "UnsupportedType"
	default:
		return "UnknownError"
	}
}

// ParseError is the interface implemented by every error Parse returns.
type ParseError interface {
	error
	Code() ErrorCode
}

// SyntaxError reports that the input did not match the grammar. It is the
// only error kind carrying a source position; converters report semantic
// failures without one.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %v", e.Err)
}

// Code returns SyntaxErrorCode
func (e *SyntaxError) Code() ErrorCode { return SyntaxErrorCode }

// Unwrap exposes the underlying grammar error
func (e *SyntaxError) Unwrap() error { return e.Err }

// Position returns the failure position when the underlying grammar error
// carries one, and a zero position otherwise.
func (e *SyntaxError) Position() lexer.Position {
	var gerr *grammar.SyntaxError
	if errors.As(e.Err, &gerr) {
		return gerr.Pos
	}
	return lexer.Position{}
}

// UnexpectedRuleError reports that a converter received a syntax node tagged
// with the wrong rule. It intentionally carries no rule tag or position.
type UnexpectedRuleError struct{}

func (e *UnexpectedRuleError) Error() string { return "unexpected rule" }

// Code returns UnexpectedRuleCode
func (e *UnexpectedRuleError) Code() ErrorCode { return UnexpectedRuleCode }

// UnsupportedTypeError reports a variable type token that is lexically valid
// but not one of the seven recognized names. It intentionally carries no
// offending token or position.
type UnsupportedTypeError struct{}

func (e *UnsupportedTypeError) Error() string { return "unsupported type" }

// Code returns UnsupportedTypeCode
func (e *UnsupportedTypeError) Code() ErrorCode { return UnsupportedTypeCode }
