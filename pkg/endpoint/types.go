// Package endpoint parses endpoint notation strings into a typed model.
//
// The notation describes a single HTTP-like API endpoint:
//
//	GET /register/{id:string}?type:string&order:string RQ -> RS
//
// Parse is the only entry point. The resulting Endpoint is immutable and
// fully owned by the caller; parsing holds no shared state and is safe to
// call concurrently.
package endpoint

import (
	"fmt"
	"strings"
)

// Method is an HTTP verb. The notation accepts exactly four.
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
)

// String returns the canonical upper-case verb
func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	default:
		return "unknown"
	}
}

// ParseMethod converts a verb string to a Method, case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(s) {
	case "GET":
		return MethodGet, nil
	case "POST":
		return MethodPost, nil
	case "PUT":
		return MethodPut, nil
	case "DELETE":
		return MethodDelete, nil
	default:
		return 0, fmt.Errorf("unknown method: %s", s)
	}
}

// VariableType is the type of a path variable or query parameter. The set is
// closed: a declaration naming anything else fails with UnsupportedTypeError.
type VariableType int

const (
	TypeString VariableType = iota
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeBool
)

// String returns the lower-case type token as written in the notation
func (t VariableType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeShort:
		return "short"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ParseVariableType converts a type token to a VariableType, case-insensitively.
// Tokens outside the closed set fail with *UnsupportedTypeError.
func ParseVariableType(s string) (VariableType, error) {
	switch strings.ToLower(s) {
	case "string":
		return TypeString, nil
	case "short":
		return TypeShort, nil
	case "int":
		return TypeInt, nil
	case "long":
		return TypeLong, nil
	case "float":
		return TypeFloat, nil
	case "double":
		return TypeDouble, nil
	case "bool":
		return TypeBool, nil
	default:
		return 0, &UnsupportedTypeError{}
	}
}

// Variable is a named, typed value. It backs query parameters and the inner
// representation of path variables.
type Variable struct {
	Name string
	Type VariableType
}

// String renders the variable in name:type notation
func (v Variable) String() string {
	return v.Name + ":" + v.Type.String()
}

// PathElementType discriminates the two kinds of path element
type PathElementType int

const (
	SegmentElement PathElementType = iota
	VariableElement
)

// PathElement is one component of an endpoint path: either a fixed literal
// segment or a brace-delimited typed variable.
type PathElement struct {
	Type    PathElementType
	Literal string       // literal text, segments only
	Name    string       // variable name, variables only
	VarType VariableType // variable type, variables only
}

// Segment builds a literal path element
func Segment(literal string) PathElement {
	return PathElement{Type: SegmentElement, Literal: literal}
}

// PathVar builds a variable path element
func PathVar(name string, varType VariableType) PathElement {
	return PathElement{Type: VariableElement, Name: name, VarType: varType}
}

// String renders the element as it appears in the notation
func (p PathElement) String() string {
	if p.Type == VariableElement {
		return "{" + p.Name + ":" + p.VarType.String() + "}"
	}
	return p.Literal
}

// Endpoint is the parsed form of one endpoint declaration. Path and
// QueryParams preserve source order. RequestType and ResponseType are opaque
// identifiers naming payload types defined elsewhere; empty means absent
// (identifiers are never empty).
type Endpoint struct {
	Method       Method
	Path         []PathElement
	QueryParams  []Variable
	RequestType  string
	ResponseType string
}

// String reconstructs the canonical notation for the endpoint.
func (e *Endpoint) String() string {
	var b strings.Builder
	b.WriteString(e.Method.String())
	b.WriteByte(' ')
	for _, el := range e.Path {
		b.WriteByte('/')
		b.WriteString(el.String())
	}
	if len(e.QueryParams) > 0 {
		b.WriteByte('?')
		for i, q := range e.QueryParams {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(q.String())
		}
	}
	if e.RequestType != "" {
		b.WriteByte(' ')
		b.WriteString(e.RequestType)
		if e.ResponseType != "" {
			b.WriteString(" -> ")
			b.WriteString(e.ResponseType)
		}
	}
	return b.String()
}
