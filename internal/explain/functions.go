package explain

import (
	"strings"

	"github.com/sqlc-dev/ppl/ast"
)

func explainFunctionCall(sb *strings.Builder, label, name string, args []*ast.FunctionArg, indent string, depth int) {
	header(sb, indent, label+" "+name, len(args))
	for _, arg := range args {
		Node(sb, arg, depth+1)
	}
}

// explainFunctionArg writes named arguments as a labelled node and
// positional arguments as their value.
func explainFunctionArg(sb *strings.Builder, n *ast.FunctionArg, indent string, depth int) {
	if n.Name == "" {
		Node(sb, n.Value, depth)
		return
	}
	header(sb, indent, "FunctionArg "+n.Name, 1)
	Node(sb, n.Value, depth+1)
}

func explainRelevanceFunction(sb *strings.Builder, n *ast.RelevanceFunction, indent string, depth int) {
	header(sb, indent, "RelevanceFunction "+n.Name, len(n.Fields)+1+len(n.Args))
	for _, f := range n.Fields {
		Node(sb, f, depth+1)
	}
	Node(sb, n.Query, depth+1)
	for _, arg := range n.Args {
		Node(sb, arg, depth+1)
	}
}

func explainRelevanceField(sb *strings.Builder, n *ast.RelevanceFieldAndWeight, indent string, depth int) {
	if n.Weight == nil {
		header(sb, indent, "RelevanceField", 1)
		Node(sb, n.Field, depth+1)
		return
	}
	explainBinary(sb, "RelevanceField", n.Field, n.Weight, indent, depth)
}
