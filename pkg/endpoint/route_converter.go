package endpoint

import (
	"strings"
)

// RouteConverter renders a parsed endpoint path in the route syntaxes used by
// common Go routers, for downstream generators that register handlers.
type RouteConverter struct{}

// NewRouteConverter creates a new route converter
func NewRouteConverter() *RouteConverter {
	return &RouteConverter{}
}

// ColonStyle renders the path with :name parameters as used by Echo, Gin and
// Fiber. /register/{id:string} becomes /register/:id.
func (rc *RouteConverter) ColonStyle(path []PathElement) string {
	return rc.render(path, func(name string) string { return ":" + name })
}

// BraceStyle renders the path with {name} parameters as used by chi and
// gorilla/mux. /register/{id:string} becomes /register/{id}.
func (rc *RouteConverter) BraceStyle(path []PathElement) string {
	return rc.render(path, func(name string) string { return "{" + name + "}" })
}

func (rc *RouteConverter) render(path []PathElement, param func(name string) string) string {
	var b strings.Builder
	for _, el := range path {
		b.WriteByte('/')
		if el.Type == VariableElement {
			b.WriteString(param(el.Name))
		} else {
			b.WriteString(el.Literal)
		}
	}
	return b.String()
}

// ParameterTypes extracts the path's variable names and their declared types.
func (rc *RouteConverter) ParameterTypes(path []PathElement) map[string]VariableType {
	types := make(map[string]VariableType)
	for _, el := range path {
		if el.Type == VariableElement {
			types[el.Name] = el.VarType
		}
	}
	return types
}
