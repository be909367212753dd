package grammar

// Rule identifies the grammar production a syntax node was built from.
type Rule int

const (
	RuleEndpoint Rule = iota
	RuleMethod
	RulePath
	RuleSegment
	RuleVariable
	RuleVariableType
	RuleQueryParams
	RuleRequestType
	RuleResponseType
)

// String returns the grammar name of the rule
func (r Rule) String() string {
	switch r {
	case RuleEndpoint:
		return "endpoint"
	case RuleMethod:
		return "method"
	case RulePath:
		return "path"
	case RuleSegment:
		return "segment"
	case RuleVariable:
		return "variable"
	case RuleVariableType:
		return "variable_type"
	case RuleQueryParams:
		return "query_params"
	case RuleRequestType:
		return "request_type"
	case RuleResponseType:
		return "response_type"
	default:
		return "unknown"
	}
}

// Node is a syntax tree node tagged with the rule that produced it.
// Converters check the tag before looking at the concrete type.
type Node interface {
	Rule() Rule
}

// EndpointNode is the root of a parsed endpoint declaration:
//
//	endpoint = method path query_params? (request_type ("->" response_type)?)?
//
// The response side lives inside its own optional group so that a declaration
// carrying a request type but no response type still parses.
type EndpointNode struct {
	Method   *MethodNode       `parser:"@@"`
	Path     *PathNode         `parser:"@@"`
	Query    *QueryParamsNode  `parser:"@@?"`
	Request  *RequestTypeNode  `parser:"( @@"`
	Response *ResponseTypeNode `parser:"  ( '->' @@ )? )?"`
}

func (n *EndpointNode) Rule() Rule { return RuleEndpoint }

// MethodNode captures one of the four HTTP verb literals. Matching is
// case-insensitive at the lexer-literal level, so "get" lands here too.
type MethodNode struct {
	Verb string `parser:"@('GET' | 'POST' | 'PUT' | 'DELETE')"`
}

func (n *MethodNode) Rule() Rule { return RuleMethod }

// PathNode groups the slash-separated path elements. At least one element is
// required, which is what rejects empty paths.
type PathNode struct {
	Elements []*PathElementNode `parser:"@@+"`
}

func (n *PathNode) Rule() Rule { return RulePath }

// PathElementNode is one "/"-prefixed path component: either a brace-delimited
// variable or a bare segment. Exactly one alternative is set after a parse.
type PathElementNode struct {
	Variable *VariableNode `parser:"'/' ( '{' @@ '}'"`
	Segment  *SegmentNode  `parser:"     | @@ )"`
}

// Element returns whichever alternative matched, or nil if neither did
// (which the grammar rules out).
func (n *PathElementNode) Element() Node {
	if n.Variable != nil {
		return n.Variable
	}
	if n.Segment != nil {
		return n.Segment
	}
	return nil
}

// SegmentNode is a literal path component.
type SegmentNode struct {
	Text string `parser:"@Ident"`
}

func (n *SegmentNode) Rule() Rule { return RuleSegment }

// VariableNode is a name:type pair. The same rule backs query parameters and
// the inside of brace-delimited path variables.
type VariableNode struct {
	Name string            `parser:"@Ident ':'"`
	Type *VariableTypeNode `parser:"@@"`
}

func (n *VariableNode) Rule() Rule { return RuleVariable }

// VariableTypeNode captures the raw type token. The grammar only enforces
// identifier shape here; the closed type set is checked during conversion.
type VariableTypeNode struct {
	Text string `parser:"@Ident"`
}

func (n *VariableTypeNode) Rule() Rule { return RuleVariableType }

// QueryParamsNode groups the "?a:t&b:t" clause.
type QueryParamsNode struct {
	Params []*VariableNode `parser:"'?' @@ ( '&' @@ )*"`
}

func (n *QueryParamsNode) Rule() Rule { return RuleQueryParams }

// RequestTypeNode names the request payload type.
type RequestTypeNode struct {
	Text string `parser:"@Ident"`
}

func (n *RequestTypeNode) Rule() Rule { return RuleRequestType }

// TypeName returns the captured identifier
func (n *RequestTypeNode) TypeName() string { return n.Text }

// ResponseTypeNode names the response payload type.
type ResponseTypeNode struct {
	Text string `parser:"@Ident"`
}

func (n *ResponseTypeNode) Rule() Rule { return RuleResponseType }

// TypeName returns the captured identifier
func (n *ResponseTypeNode) TypeName() string { return n.Text }
