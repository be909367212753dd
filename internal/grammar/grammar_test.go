package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpointFullDeclaration(t *testing.T) {
	node, err := ParseEndpoint("GET /register/{id:string}?type:string&order:string RQ -> RS")
	require.NoError(t, err)

	require.NotNil(t, node.Method)
	assert.Equal(t, "GET", node.Method.Verb)

	require.NotNil(t, node.Path)
	require.Len(t, node.Path.Elements, 2)
	require.NotNil(t, node.Path.Elements[0].Segment)
	assert.Equal(t, "register", node.Path.Elements[0].Segment.Text)
	require.NotNil(t, node.Path.Elements[1].Variable)
	assert.Equal(t, "id", node.Path.Elements[1].Variable.Name)
	assert.Equal(t, "string", node.Path.Elements[1].Variable.Type.Text)

	require.NotNil(t, node.Query)
	require.Len(t, node.Query.Params, 2)
	assert.Equal(t, "type", node.Query.Params[0].Name)
	assert.Equal(t, "order", node.Query.Params[1].Name)

	require.NotNil(t, node.Request)
	assert.Equal(t, "RQ", node.Request.Text)
	require.NotNil(t, node.Response)
	assert.Equal(t, "RS", node.Response.Text)
}

func TestParseEndpointOptionalClauses(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		wantQuery   bool
		wantRequest bool
		wantResp    bool
	}{
		{
			name:  "path only",
			input: "POST /x/{n:int}",
		},
		{
			name:      "query without type clause",
			input:     "GET /register/{id:string}?type:string&order:string ",
			wantQuery: true,
		},
		{
			name:        "type clause without query",
			input:       "GET /register/{id:string} RQ -> RS",
			wantRequest: true,
			wantResp:    true,
		},
		{
			name:        "request type without response type",
			input:       "GET /x RQ",
			wantRequest: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			node, err := ParseEndpoint(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantQuery, node.Query != nil)
			assert.Equal(t, tc.wantRequest, node.Request != nil)
			assert.Equal(t, tc.wantResp, node.Response != nil)
		})
	}
}

func TestParseEndpointCaseInsensitiveMethod(t *testing.T) {
	for _, verb := range []string{"get", "Get", "GET", "post", "PUT", "delete"} {
		node, err := ParseEndpoint(verb + " /x")
		require.NoError(t, err, "verb %q", verb)
		assert.Equal(t, verb, node.Method.Verb)
	}
}

func TestParseEndpointSyntaxErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "unknown method", input: "PATCH /x"},
		{name: "missing path", input: "GET "},
		{name: "empty path", input: "GET /"},
		{name: "variable without type", input: "GET /x/{id}"},
		{name: "variable missing closing brace", input: "GET /register/{id:string"},
		{name: "non-identifier type token", input: "GET /x/{n:1nt}"},
		{name: "dangling query marker", input: "GET /x?"},
		{name: "dangling arrow", input: "GET /x RQ ->"},
		{name: "empty input", input: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseEndpoint(tc.input)
			require.Error(t, err)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, RuleEndpoint, syntaxErr.Rule)
			assert.Contains(t, syntaxErr.Error(), "syntax error")
		})
	}
}

func TestParseByRule(t *testing.T) {
	testCases := []struct {
		rule  Rule
		input string
	}{
		{rule: RuleMethod, input: "GET"},
		{rule: RulePath, input: "/seg/{var:string}"},
		{rule: RuleSegment, input: "users"},
		{rule: RuleVariable, input: "Name:string"},
		{rule: RuleVariableType, input: "bool"},
		{rule: RuleQueryParams, input: "?a:string&b:bool"},
		{rule: RuleRequestType, input: "fasd"},
		{rule: RuleResponseType, input: "UserResponse"},
		{rule: RuleEndpoint, input: "GET /x"},
	}

	for _, tc := range testCases {
		t.Run(tc.rule.String(), func(t *testing.T) {
			node, err := Parse(tc.rule, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.rule, node.Rule())
		})
	}
}

func TestParseVariableNode(t *testing.T) {
	node, err := Parse(RuleVariable, "Name:string")
	require.NoError(t, err)

	variable, ok := node.(*VariableNode)
	require.True(t, ok)
	assert.Equal(t, "Name", variable.Name)
	require.NotNil(t, variable.Type)
	assert.Equal(t, "string", variable.Type.Text)
}

func TestParsePathNodeClassification(t *testing.T) {
	node, err := Parse(RulePath, "/seg/{var:string}")
	require.NoError(t, err)

	path, ok := node.(*PathNode)
	require.True(t, ok)
	require.Len(t, path.Elements, 2)
	assert.Equal(t, RuleSegment, path.Elements[0].Element().Rule())
	assert.Equal(t, RuleVariable, path.Elements[1].Element().Rule())
}

func TestParseUnknownRule(t *testing.T) {
	_, err := Parse(Rule(99), "GET /x")
	require.Error(t, err)
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := ParseEndpoint("PATCH /x")
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 1, syntaxErr.Pos.Line)
	assert.NotEmpty(t, syntaxErr.Message)
	assert.Error(t, syntaxErr.Unwrap())
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "endpoint", RuleEndpoint.String())
	assert.Equal(t, "variable_type", RuleVariableType.String())
	assert.Equal(t, "query_params", RuleQueryParams.String())
	assert.Equal(t, "unknown", Rule(99).String())
}
