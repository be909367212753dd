package endpoint

import (
	"github.com/edl-lang/edl/internal/grammar"
)

// Parse parses one endpoint declaration. Grammar-level failures surface as
// *SyntaxError; a declaration that is well-formed but names an unrecognized
// variable type fails with *UnsupportedTypeError. The returned Endpoint is
// complete: there is no partial result on error.
func Parse(input string) (*Endpoint, error) {
	root, err := grammar.ParseEndpoint(input)
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}
	return endpointFromNode(root)
}

// Every converter below guards on the node's rule tag before touching the
// concrete type. A missing child where the grammar guarantees presence is a
// producer bug, not a user error, and panics as unreachable.

func endpointFromNode(node grammar.Node) (*Endpoint, error) {
	if node.Rule() != grammar.RuleEndpoint {
		return nil, &UnexpectedRuleError{}
	}
	root := node.(*grammar.EndpointNode)
	if root.Method == nil || root.Path == nil {
		panic("unreachable: endpoint node missing method or path")
	}

	method, err := methodFromNode(root.Method)
	if err != nil {
		return nil, err
	}
	path, err := pathFromNode(root.Path)
	if err != nil {
		return nil, err
	}
	queryParams := []Variable{}
	if root.Query != nil {
		queryParams, err = queryParamsFromNode(root.Query)
		if err != nil {
			return nil, err
		}
	}

	// The trailing type clause has no distinguishing marker, so conversion
	// itself disambiguates: probe the request type first, and only on success
	// look at the response type. A response that fails conversion degrades to
	// absence rather than erroring. Keep this asymmetric.
	var requestType, responseType string
	if root.Request != nil {
		if rq, err := requestTypeFromNode(root.Request); err == nil {
			requestType = rq
			if root.Response != nil {
				if rs, err := responseTypeFromNode(root.Response); err == nil {
					responseType = rs
				}
			}
		}
	}

	return &Endpoint{
		Method:       method,
		Path:         path,
		QueryParams:  queryParams,
		RequestType:  requestType,
		ResponseType: responseType,
	}, nil
}

func methodFromNode(node grammar.Node) (Method, error) {
	if node.Rule() != grammar.RuleMethod {
		return 0, &UnexpectedRuleError{}
	}
	n := node.(*grammar.MethodNode)
	method, err := ParseMethod(n.Verb)
	if err != nil {
		// The grammar restricts the verb to the four literals already.
		panic("unreachable: method literal outside grammar set: " + n.Verb)
	}
	return method, nil
}

func pathFromNode(node grammar.Node) ([]PathElement, error) {
	if node.Rule() != grammar.RulePath {
		return nil, &UnexpectedRuleError{}
	}
	n := node.(*grammar.PathNode)
	path := make([]PathElement, 0, len(n.Elements))
	for _, el := range n.Elements {
		child := el.Element()
		if child == nil {
			panic("unreachable: path element with no alternative set")
		}
		elem, err := pathElementFromNode(child)
		if err != nil {
			return nil, err
		}
		path = append(path, elem)
	}
	return path, nil
}

// pathElementFromNode is the one converter polymorphic over two rule tags:
// a path component is either a bare segment or a brace-delimited variable.
func pathElementFromNode(node grammar.Node) (PathElement, error) {
	switch node.Rule() {
	case grammar.RuleSegment:
		n := node.(*grammar.SegmentNode)
		return Segment(n.Text), nil
	case grammar.RuleVariable:
		variable, err := variableFromNode(node)
		if err != nil {
			return PathElement{}, err
		}
		return PathVar(variable.Name, variable.Type), nil
	default:
		return PathElement{}, &UnexpectedRuleError{}
	}
}

func queryParamsFromNode(node grammar.Node) ([]Variable, error) {
	if node.Rule() != grammar.RuleQueryParams {
		return nil, &UnexpectedRuleError{}
	}
	n := node.(*grammar.QueryParamsNode)
	params := make([]Variable, 0, len(n.Params))
	for _, p := range n.Params {
		variable, err := variableFromNode(p)
		if err != nil {
			return nil, err
		}
		params = append(params, variable)
	}
	return params, nil
}

func variableFromNode(node grammar.Node) (Variable, error) {
	if node.Rule() != grammar.RuleVariable {
		return Variable{}, &UnexpectedRuleError{}
	}
	n := node.(*grammar.VariableNode)
	if n.Type == nil {
		panic("unreachable: variable node missing type child")
	}
	varType, err := variableTypeFromNode(n.Type)
	if err != nil {
		return Variable{}, err
	}
	return Variable{Name: n.Name, Type: varType}, nil
}

func variableTypeFromNode(node grammar.Node) (VariableType, error) {
	if node.Rule() != grammar.RuleVariableType {
		return 0, &UnexpectedRuleError{}
	}
	n := node.(*grammar.VariableTypeNode)
	return ParseVariableType(n.Text)
}

func requestTypeFromNode(node grammar.Node) (string, error) {
	return typeNameFromNode(node, grammar.RuleRequestType)
}

func responseTypeFromNode(node grammar.Node) (string, error) {
	return typeNameFromNode(node, grammar.RuleResponseType)
}

// typeNameFromNode handles the two near-identical type name wrappers,
// parameterized by the rule tag they must carry.
func typeNameFromNode(node grammar.Node, want grammar.Rule) (string, error) {
	if node.Rule() != want {
		return "", &UnexpectedRuleError{}
	}
	n, ok := node.(interface{ TypeName() string })
	if !ok {
		panic("unreachable: " + want.String() + " node without a type name")
	}
	return n.TypeName(), nil
}
