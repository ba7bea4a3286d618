package parser

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/sqlc-dev/ppl/lexer"
	"github.com/sqlc-dev/ppl/token"
)

// Kind categorizes parse errors.
type Kind int

const (
	KindSyntax  Kind = iota // input does not match the grammar
	KindLexical             // unrecognized character or unterminated quote
	KindLimit               // query length or nesting depth limit exceeded
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindLexical:
		return "lexical"
	case KindLimit:
		return "limit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseError is the single error returned for a malformed query.
type ParseError struct {
	Kind     Kind           `json:"kind"`
	Code     string         `json:"code"`    // catalog code, e.g. "PPL-0001"
	Message  string         `json:"message"` // rendered from the catalog
	Hints    []string       `json:"hints,omitempty"`
	Pos      token.Position `json:"pos"`
	End      token.Position `json:"end"`
	Expected []string       `json:"expected,omitempty"`
	Found    string         `json:"found,omitempty"`
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	if len(e.Expected) > 0 {
		sb.WriteString(" (expected one of: ")
		sb.WriteString(strings.Join(e.Expected, ", "))
		sb.WriteString(")")
	}
	return sb.String()
}

// errorDef defines an error in the catalog.
type errorDef struct {
	Kind     Kind
	Template string   // message template with {{.placeholders}}
	Hints    []string // hint templates
}

const (
	codeUnexpected       = "PPL-0001"
	codeUnknownCommand   = "PPL-0002"
	codeSearchNotFirst   = "PPL-0003"
	codeMissingElement   = "PPL-0004"
	codeUnrecognized     = "PPL-0005"
	codeUnterminated     = "PPL-0006"
	codeQueryTooLong     = "PPL-0007"
	codeTooDeep          = "PPL-0008"
	codeInvalidLiteral   = "PPL-0009"
	codeUnknownArgument  = "PPL-0010"
	codeDuplicateSetting = "PPL-0011"
)

// errorCatalog maps error codes to their definitions.
var errorCatalog = map[string]errorDef{
	codeUnexpected: {
		Kind:     KindSyntax,
		Template: "unexpected {{.Found}}",
	},
	codeUnknownCommand: {
		Kind:     KindSyntax,
		Template: "unknown command {{.Found}}",
		Hints:    []string{"{{if .Suggestion}}did you mean {{.Suggestion}}?{{end}}"},
	},
	codeSearchNotFirst: {
		Kind:     KindSyntax,
		Template: "search is only allowed as the first command of a query",
		Hints:    []string{"use where to filter later in the pipeline"},
	},
	codeMissingElement: {
		Kind:     KindSyntax,
		Template: "{{.Command}} requires {{.What}}, found {{.Found}}",
	},
	codeUnrecognized: {
		Kind:     KindLexical,
		Template: "unrecognized character {{.Found}}",
	},
	codeUnterminated: {
		Kind:     KindLexical,
		Template: "unterminated quoted string starting with {{.Found}}",
	},
	codeQueryTooLong: {
		Kind:     KindLimit,
		Template: "query is {{.Length}} bytes, longer than the limit of {{.Max}}",
	},
	codeTooDeep: {
		Kind:     KindLimit,
		Template: "expression nesting exceeds the limit of {{.Max}}",
	},
	codeInvalidLiteral: {
		Kind:     KindSyntax,
		Template: "invalid {{.What}} literal {{.Found}}: {{.Reason}}",
	},
	codeUnknownArgument: {
		Kind:     KindSyntax,
		Template: "unknown argument {{.Found}} for {{.Command}}",
		Hints:    []string{"{{if .Suggestion}}did you mean {{.Suggestion}}?{{end}}"},
	},
	codeDuplicateSetting: {
		Kind:     KindSyntax,
		Template: "{{.Found}} given more than once",
	},
}

// newError builds a ParseError for code covering item.
func newError(code string, item lexer.Item, data map[string]any, expected ...string) *ParseError {
	if data == nil {
		data = map[string]any{}
	}
	found := describe(item)
	if _, ok := data["Found"]; !ok {
		data["Found"] = found
	}

	def, ok := errorCatalog[code]
	if !ok {
		def = errorDef{Kind: KindSyntax, Template: code}
	}

	var hints []string
	for _, h := range def.Hints {
		if rendered := renderTemplate(h, data); rendered != "" {
			hints = append(hints, rendered)
		}
	}

	return &ParseError{
		Kind:     def.Kind,
		Code:     code,
		Message:  renderTemplate(def.Template, data),
		Hints:    hints,
		Pos:      item.Pos,
		End:      item.End,
		Expected: dedupe(expected),
		Found:    found,
	}
}

func renderTemplate(tmplStr string, data map[string]any) string {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return tmplStr
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return tmplStr
	}
	return buf.String()
}

// describe renders a token for use in a message.
func describe(item lexer.Item) string {
	if item.Token == token.EOF {
		return "end of query"
	}
	return "'" + item.Value + "'"
}

func dedupe(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// farthest returns the error that got further into the input. Errors at the
// same offset are merged so the expected set covers both alternatives.
func farthest(a, b *ParseError) *ParseError {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Kind == KindLimit:
		return a
	case b.Kind == KindLimit:
		return b
	case b.Pos.Offset > a.Pos.Offset:
		return b
	case a.Pos.Offset > b.Pos.Offset:
		return a
	}
	merged := *a
	merged.Expected = dedupe(append(append([]string{}, a.Expected...), b.Expected...))
	sort.Strings(merged.Expected)
	return &merged
}

// closest returns the candidate nearest to input by edit distance, or ""
// when nothing is close enough to be a plausible typo.
func closest(input string, candidates []string) string {
	input = strings.ToLower(input)
	best, bestDist := "", len(input)/2+1
	for _, c := range candidates {
		if d := levenshtein(input, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
