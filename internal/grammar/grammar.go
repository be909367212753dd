// Package grammar defines the lexical and syntactic rules of the endpoint
// notation and produces rule-tagged syntax trees from input strings. It does
// no semantic validation: anything identifier-shaped is accepted where the
// grammar expects an identifier, and the converters in pkg/endpoint decide
// what the tokens mean.
package grammar

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// notationLexer tokenizes the endpoint notation. Arrow must come before Punct
// so that "->" is not split. Whitespace is elided by the parsers; it only
// serves to separate the method, the path clause and the trailing type clause.
var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[/{}:?&]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

func parserOptions() []participle.Option {
	return []participle.Option{
		participle.Lexer(notationLexer),
		participle.Elide("Whitespace"),
		participle.CaseInsensitive("Ident"),
		participle.UseLookahead(2),
	}
}

// One parser per grammar rule, so callers (and tests) can run the grammar
// against any target rule, not only the endpoint root.
var (
	endpointParser     = participle.MustBuild[EndpointNode](parserOptions()...)
	methodParser       = participle.MustBuild[MethodNode](parserOptions()...)
	pathParser         = participle.MustBuild[PathNode](parserOptions()...)
	segmentParser      = participle.MustBuild[SegmentNode](parserOptions()...)
	variableParser     = participle.MustBuild[VariableNode](parserOptions()...)
	variableTypeParser = participle.MustBuild[VariableTypeNode](parserOptions()...)
	queryParamsParser  = participle.MustBuild[QueryParamsNode](parserOptions()...)
	requestTypeParser  = participle.MustBuild[RequestTypeNode](parserOptions()...)
	responseTypeParser = participle.MustBuild[ResponseTypeNode](parserOptions()...)
)

// SyntaxError reports that an input does not match the grammar under the
// requested top-level rule. It carries the failure position and the parser's
// expectation message, and wraps the underlying participle error.
type SyntaxError struct {
	Rule    Rule
	Pos     lexer.Position
	Message string
	err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error in %s: %s", e.Pos, e.Rule, e.Message)
}

func (e *SyntaxError) Unwrap() error { return e.err }

// Parse runs the grammar against input with the given target rule and returns
// the root syntax node of that rule, or a *SyntaxError. It is a pure function
// of (grammar, rule, input).
func Parse(rule Rule, input string) (Node, error) {
	switch rule {
	case RuleEndpoint:
		return run(endpointParser, rule, input)
	case RuleMethod:
		return run(methodParser, rule, input)
	case RulePath:
		return run(pathParser, rule, input)
	case RuleSegment:
		return run(segmentParser, rule, input)
	case RuleVariable:
		return run(variableParser, rule, input)
	case RuleVariableType:
		return run(variableTypeParser, rule, input)
	case RuleQueryParams:
		return run(queryParamsParser, rule, input)
	case RuleRequestType:
		return run(requestTypeParser, rule, input)
	case RuleResponseType:
		return run(responseTypeParser, rule, input)
	default:
		return nil, fmt.Errorf("unknown grammar rule: %d", rule)
	}
}

// ParseEndpoint parses input as a full endpoint declaration.
func ParseEndpoint(input string) (*EndpointNode, error) {
	node, err := endpointParser.ParseString("", input)
	if err != nil {
		return nil, wrapSyntaxError(RuleEndpoint, err)
	}
	return node, nil
}

func run[T any, N interface {
	*T
	Node
}](p *participle.Parser[T], rule Rule, input string) (Node, error) {
	node, err := p.ParseString("", input)
	if err != nil {
		return nil, wrapSyntaxError(rule, err)
	}
	return N(node), nil
}

func wrapSyntaxError(rule Rule, err error) *SyntaxError {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &SyntaxError{Rule: rule, Pos: perr.Position(), Message: perr.Message(), err: err}
	}
	return &SyntaxError{Rule: rule, Message: err.Error(), err: err}
}
