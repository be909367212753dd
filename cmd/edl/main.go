package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/edl-lang/edl/internal/utils"
	"github.com/edl-lang/edl/pkg/endpoint"
)

// defaultDeclaration is parsed when no arguments are given, as a demonstration
// of the notation.
const defaultDeclaration = "GET /register/{id:string}/{field:string}?type:string&order:string RQ -> RS"

func main() {
	var (
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag   = flag.Bool("quiet", false, "Only show errors")
		styleFlag   = flag.String("style", "", "Also print the path as a router pattern: 'colon' (echo/gin/fiber) or 'brace' (chi/mux)")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <endpoint-declarations...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "edl Endpoint Notation Parser\n")
		fmt.Fprintf(os.Stderr, "Parses endpoint declarations into their typed representation.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDeclaration format:\n")
		fmt.Fprintf(os.Stderr, "  METHOD /path/{var:type}[?name:type&...] [RequestType -> ResponseType]\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s 'GET /users/{id:int}'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s 'POST /users?page:int&limit:int CreateUser -> User'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -style colon 'DELETE /users/{id:int}'\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	declarations := flag.Args()
	if len(declarations) == 0 {
		declarations = []string{defaultDeclaration}
		diagnostics.Verbose("No declarations given, using the built-in example")
	}

	diagnostics.Header("edl: Endpoint Notation Parser")

	if err := run(declarations, *styleFlag, diagnostics); err != nil {
		diagnostics.Error("%v", err)
		os.Exit(1)
	}
}

// run parses each declaration and reports it through the diagnostic system,
// stopping at the first failure.
func run(declarations []string, style string, diagnostics *utils.DiagnosticSystem) error {
	converter := endpoint.NewRouteConverter()

	for _, declaration := range declarations {
		diagnostics.Verbose("Parsing %q", declaration)

		ep, err := endpoint.Parse(declaration)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", declaration, err)
		}

		diagnostics.Section(ep.String())
		diagnostics.List("method: %s", ep.Method)
		for _, el := range ep.Path {
			switch el.Type {
			case endpoint.SegmentElement:
				diagnostics.List("segment: %s", el.Literal)
			case endpoint.VariableElement:
				diagnostics.List("path variable: %s (%s)", el.Name, el.VarType)
			}
		}
		for _, q := range ep.QueryParams {
			diagnostics.List("query param: %s (%s)", q.Name, q.Type)
		}
		if ep.RequestType != "" {
			diagnostics.List("request type: %s", ep.RequestType)
		}
		if ep.ResponseType != "" {
			diagnostics.List("response type: %s", ep.ResponseType)
		}

		switch style {
		case "":
		case "colon":
			diagnostics.List("route pattern: %s", converter.ColonStyle(ep.Path))
		case "brace":
			diagnostics.List("route pattern: %s", converter.BraceStyle(ep.Path))
		default:
			return fmt.Errorf("unknown route style %q (want 'colon' or 'brace')", style)
		}
	}

	diagnostics.Success("Parsed %d declaration(s)", len(declarations))
	return nil
}
