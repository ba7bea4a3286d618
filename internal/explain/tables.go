package explain

import (
	"strings"

	"github.com/sqlc-dev/ppl/ast"
)

func explainSearchCommand(sb *strings.Builder, n *ast.SearchCommand, indent string, depth int) {
	label := "SearchCommand"
	if n.FilterFirst {
		label += " filter_first"
	}
	children := 1
	if n.Filter != nil {
		children++
	}
	header(sb, indent, label, children)
	if n.FilterFirst {
		Node(sb, n.Filter, depth+1)
		Node(sb, n.From, depth+1)
		return
	}
	Node(sb, n.From, depth+1)
	if n.Filter != nil {
		Node(sb, n.Filter, depth+1)
	}
}

func explainFromClause(sb *strings.Builder, n *ast.FromClause, indent string, depth int) {
	header(sb, indent, "FromClause "+strings.ToLower(n.Keyword), 1)
	if n.Function != nil {
		Node(sb, n.Function, depth+1)
		return
	}
	Node(sb, n.Sources, depth+1)
}

func explainTableSourceClause(sb *strings.Builder, n *ast.TableSourceClause, indent string, depth int) {
	header(sb, indent, "TableSourceClause", len(n.Sources))
	for _, s := range n.Sources {
		Node(sb, s, depth+1)
	}
}

func explainTableSource(sb *strings.Builder, n *ast.TableSource, indent string) {
	label := "TableSource " + n.Name.String()
	if n.Pattern {
		label += " pattern"
	}
	header(sb, indent, label, 0)
}

func explainTableFunction(sb *strings.Builder, n *ast.TableFunction, indent string, depth int) {
	header(sb, indent, "TableFunction "+n.Name.String(), len(n.Args))
	for _, arg := range n.Args {
		Node(sb, arg, depth+1)
	}
}
