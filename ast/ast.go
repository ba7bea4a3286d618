// Package ast defines the abstract syntax tree for PPL queries.
package ast

import (
	"github.com/sqlc-dev/ppl/token"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() token.Position
	End() token.Position
}

// Command is the interface implemented by all pipe segment nodes.
type Command interface {
	Node
	commandNode()
}

// EntryCommand is implemented by the commands allowed in the first pipe
// segment: search, describe and show datasources.
type EntryCommand interface {
	Command
	entryCommandNode()
}

// Expression is the interface implemented by all expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// Literal is the interface implemented by literal values.
type Literal interface {
	Expression
	literalNode()
}

// StatsFunction is the interface implemented by aggregation calls in stats.
type StatsFunction interface {
	Node
	statsFunctionNode()
}

// Extent records the source range of a node. End is the position just past
// the last token of the node.
type Extent struct {
	Position    token.Position `json:"-"`
	EndPosition token.Position `json:"-"`
}

func (e Extent) Pos() token.Position { return e.Position }
func (e Extent) End() token.Position { return e.EndPosition }

// -----------------------------------------------------------------------------
// Statements

// Root is the top-level node of a parsed query. Statement is nil for an
// empty query.
type Root struct {
	Extent
	Statement *QueryStatement `json:"statement,omitempty"`
}

// QueryStatement is a pipeline: one entry command followed by any number of
// pipe segments.
type QueryStatement struct {
	Extent
	Source   EntryCommand `json:"source"`
	Commands []Command    `json:"commands,omitempty"`
}

// -----------------------------------------------------------------------------
// Entry commands

// SearchCommand represents "search source=t", optionally with a filter
// before or after the from clause.
type SearchCommand struct {
	Extent
	From        *FromClause `json:"from"`
	Filter      Expression  `json:"filter,omitempty"`
	FilterFirst bool        `json:"filter_first,omitempty"`
	Implicit    bool        `json:"implicit,omitempty"` // search keyword omitted
}

func (s *SearchCommand) commandNode()      {}
func (s *SearchCommand) entryCommandNode() {}

// DescribeCommand represents "describe t".
type DescribeCommand struct {
	Extent
	Sources *TableSourceClause `json:"sources"`
}

func (d *DescribeCommand) commandNode()      {}
func (d *DescribeCommand) entryCommandNode() {}

// ShowDataSourcesCommand represents "show datasources".
type ShowDataSourcesCommand struct {
	Extent
}

func (s *ShowDataSourcesCommand) commandNode()      {}
func (s *ShowDataSourcesCommand) entryCommandNode() {}

// -----------------------------------------------------------------------------
// Pipeline commands

// WhereCommand filters rows by a logical expression.
type WhereCommand struct {
	Extent
	Filter Expression `json:"filter"`
}

func (w *WhereCommand) commandNode() {}

// FieldsCommand keeps (Sign "+" or "") or removes (Sign "-") fields.
type FieldsCommand struct {
	Extent
	Sign   string                   `json:"sign,omitempty"`
	Fields []*WildcardQualifiedName `json:"fields"`
}

func (f *FieldsCommand) commandNode() {}

// RenameCommand renames one or more fields.
type RenameCommand struct {
	Extent
	Clauses []*RenameClause `json:"clauses"`
}

func (r *RenameCommand) commandNode() {}

// StatsCommand computes aggregations. Optional settings are nil when unset.
type StatsCommand struct {
	Extent
	Partitions       *IntegerLiteral `json:"partitions,omitempty"`
	AllNum           *BooleanLiteral `json:"allnum,omitempty"`
	Delim            *StringLiteral  `json:"delim,omitempty"`
	Terms            []*StatsAggTerm `json:"terms"`
	By               *StatsByClause  `json:"by,omitempty"`
	DedupSplitValues *BooleanLiteral `json:"dedup_splitvalues,omitempty"`
}

func (s *StatsCommand) commandNode() {}

// DedupCommand removes duplicate rows.
type DedupCommand struct {
	Extent
	Number      *IntegerLiteral    `json:"number,omitempty"`
	Fields      []*FieldExpression `json:"fields"`
	KeepEmpty   *BooleanLiteral    `json:"keepempty,omitempty"`
	Consecutive *BooleanLiteral    `json:"consecutive,omitempty"`
}

func (d *DedupCommand) commandNode() {}

// SortCommand orders rows.
type SortCommand struct {
	Extent
	Fields []*SortField `json:"fields"`
}

func (s *SortCommand) commandNode() {}

// EvalCommand computes new fields.
type EvalCommand struct {
	Extent
	Clauses []*EvalClause `json:"clauses"`
}

func (e *EvalCommand) commandNode() {}

// HeadCommand keeps the first Number rows, skipping From rows.
type HeadCommand struct {
	Extent
	Number *IntegerLiteral `json:"number,omitempty"`
	From   *IntegerLiteral `json:"from,omitempty"`
}

func (h *HeadCommand) commandNode() {}

// TopCommand finds the most common values of a field list.
type TopCommand struct {
	Extent
	Number *IntegerLiteral    `json:"number,omitempty"`
	Fields []*FieldExpression `json:"fields"`
	By     *ByClause          `json:"by,omitempty"`
}

func (t *TopCommand) commandNode() {}

// RareCommand finds the least common values of a field list.
type RareCommand struct {
	Extent
	Fields []*FieldExpression `json:"fields"`
	By     *ByClause          `json:"by,omitempty"`
}

func (r *RareCommand) commandNode() {}

// GrokCommand extracts fields with a grok pattern.
type GrokCommand struct {
	Extent
	Source  Expression     `json:"source"`
	Pattern *StringLiteral `json:"pattern"`
}

func (g *GrokCommand) commandNode() {}

// ParseCommand extracts fields with a regular expression.
type ParseCommand struct {
	Extent
	Source  Expression     `json:"source"`
	Pattern *StringLiteral `json:"pattern"`
}

func (p *ParseCommand) commandNode() {}

// PatternsCommand extracts log patterns from a text field.
type PatternsCommand struct {
	Extent
	Params []*PatternsParameter `json:"params,omitempty"`
	Source Expression           `json:"source"`
}

func (p *PatternsCommand) commandNode() {}

// KmeansCommand clusters rows with k-means.
type KmeansCommand struct {
	Extent
	Params []*CommandArg `json:"params,omitempty"`
}

func (k *KmeansCommand) commandNode() {}

// AdCommand runs anomaly detection.
type AdCommand struct {
	Extent
	Params []*CommandArg `json:"params,omitempty"`
}

func (a *AdCommand) commandNode() {}

// MlCommand runs a machine learning algorithm with free-form arguments.
type MlCommand struct {
	Extent
	Args []*CommandArg `json:"args,omitempty"`
}

func (m *MlCommand) commandNode() {}

// -----------------------------------------------------------------------------
// Clauses

// FromClause is "source=..." or "index=...". Exactly one of Sources and
// Function is set.
type FromClause struct {
	Extent
	Keyword  string             `json:"keyword"` // "source" or "index" as written
	Sources  *TableSourceClause `json:"sources,omitempty"`
	Function *TableFunction     `json:"function,omitempty"`
}

// TableSourceClause is a comma separated list of table sources.
type TableSourceClause struct {
	Extent
	Sources []*TableSource `json:"sources"`
}

// TableSource names an index. Pattern is set when the name carries wildcards
// or a date suffix, as in "logs-*" or "logs-2021.01.11".
type TableSource struct {
	Extent
	Name    *TableQualifiedName `json:"name"`
	Pattern bool                `json:"pattern,omitempty"`
}

// TableFunction is a table valued call such as "source=prometheus.query_range(...)".
type TableFunction struct {
	Extent
	Name *QualifiedName `json:"name"`
	Args []*FunctionArg `json:"args,omitempty"`
}

// RenameClause is "from as to".
type RenameClause struct {
	Extent
	From *WildcardQualifiedName `json:"from"`
	To   *WildcardQualifiedName `json:"to"`
}

// ByClause is "by field, ...".
type ByClause struct {
	Extent
	Fields []*FieldExpression `json:"fields"`
}

// StatsByClause is the by clause of stats; it may start with a span.
type StatsByClause struct {
	Extent
	Span   *BySpanClause      `json:"span,omitempty"`
	Fields []*FieldExpression `json:"fields,omitempty"`
}

// BySpanClause is a span with an optional alias.
type BySpanClause struct {
	Extent
	Span  *SpanClause    `json:"span"`
	Alias *QualifiedName `json:"alias,omitempty"`
}

// SpanClause is "span(field, value unit)".
type SpanClause struct {
	Extent
	Field *FieldExpression `json:"field"`
	Value Literal          `json:"value"`
	Unit  string           `json:"unit,omitempty"`
}

// SortField is one entry of a sort command. Cast is "", "auto", "str", "ip"
// or "num".
type SortField struct {
	Extent
	Sign  string           `json:"sign,omitempty"`
	Field *FieldExpression `json:"field"`
	Cast  string           `json:"cast,omitempty"`
}

// EvalClause is "field = expression".
type EvalClause struct {
	Extent
	Field *FieldExpression `json:"field"`
	Expr  Expression       `json:"expr"`
}

// StatsAggTerm is an aggregation call with an optional alias.
type StatsAggTerm struct {
	Extent
	Func  StatsFunction          `json:"func"`
	Alias *WildcardQualifiedName `json:"alias,omitempty"`
}

// PatternsParameter is "new_field=..." or "pattern=..." in patterns.
type PatternsParameter struct {
	Extent
	Key   string         `json:"key"`
	Value *StringLiteral `json:"value"`
}

// CommandArg is a "key=value" argument of kmeans, ad or ml.
type CommandArg struct {
	Extent
	Key   string  `json:"key"`
	Value Literal `json:"value"`
}

// -----------------------------------------------------------------------------
// Stats functions

// StatsFunctionCall is an aggregation over a value expression, e.g. avg(x).
type StatsFunctionCall struct {
	Extent
	Name string     `json:"name"`
	Arg  Expression `json:"arg"`
}

func (s *StatsFunctionCall) statsFunctionNode() {}

// CountAllFunctionCall is count() or a bare count.
type CountAllFunctionCall struct {
	Extent
	Name string `json:"name"`
}

func (c *CountAllFunctionCall) statsFunctionNode() {}

// DistinctCountFunctionCall is distinct_count(x) or dc(x).
type DistinctCountFunctionCall struct {
	Extent
	Name string     `json:"name"`
	Arg  Expression `json:"arg"`
}

func (d *DistinctCountFunctionCall) statsFunctionNode() {}

// PercentileAggFunctionCall is percentile<95>(field).
type PercentileAggFunctionCall struct {
	Extent
	Percent *IntegerLiteral `json:"percent"`
	Field   *QualifiedName  `json:"field"`
}

func (p *PercentileAggFunctionCall) statsFunctionNode() {}

// TakeAggFunctionCall is take(field[, size]).
type TakeAggFunctionCall struct {
	Extent
	Field *QualifiedName  `json:"field"`
	Size  *IntegerLiteral `json:"size,omitempty"`
}

func (t *TakeAggFunctionCall) statsFunctionNode() {}

// -----------------------------------------------------------------------------
// Logical expressions

// LogicalOr is "left OR right".
type LogicalOr struct {
	Extent
	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func (l *LogicalOr) expressionNode() {}

// LogicalAnd is "left AND right". Implicit is set when the AND keyword was
// omitted between two operands.
type LogicalAnd struct {
	Extent
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
	Implicit bool       `json:"implicit,omitempty"`
}

func (l *LogicalAnd) expressionNode() {}

// LogicalXor is "left XOR right".
type LogicalXor struct {
	Extent
	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func (l *LogicalXor) expressionNode() {}

// LogicalNot is "NOT expr".
type LogicalNot struct {
	Extent
	Expr Expression `json:"expr"`
}

func (l *LogicalNot) expressionNode() {}

// ParentheticLogicalExpr is a parenthesized logical expression.
type ParentheticLogicalExpr struct {
	Extent
	Expr Expression `json:"expr"`
}

func (p *ParentheticLogicalExpr) expressionNode() {}

// CompareExpr is "left op right" where op is one of = != < <= > >= REGEXP.
type CompareExpr struct {
	Extent
	Left  Expression `json:"left"`
	Op    string     `json:"op"`
	Right Expression `json:"right"`
}

func (c *CompareExpr) expressionNode() {}

// InExpr is "value IN (literal, ...)".
type InExpr struct {
	Extent
	Value Expression `json:"value"`
	List  []Literal  `json:"list"`
}

func (i *InExpr) expressionNode() {}

// -----------------------------------------------------------------------------
// Value expressions

// BinaryArithmetic is "left op right" where op is one of + - * / %.
type BinaryArithmetic struct {
	Extent
	Left  Expression `json:"left"`
	Op    string     `json:"op"`
	Right Expression `json:"right"`
}

func (b *BinaryArithmetic) expressionNode() {}

// ParentheticValueExpr is a parenthesized value expression.
type ParentheticValueExpr struct {
	Extent
	Expr Expression `json:"expr"`
}

func (p *ParentheticValueExpr) expressionNode() {}

// FieldExpression references a field.
type FieldExpression struct {
	Extent
	Name *QualifiedName `json:"name"`
}

func (f *FieldExpression) expressionNode() {}

// EvalFunctionCall is a call to a math, trigonometric, date/time, text,
// condition or system function.
type EvalFunctionCall struct {
	Extent
	Name string         `json:"name"`
	Args []*FunctionArg `json:"args,omitempty"`
}

func (e *EvalFunctionCall) expressionNode() {}

// BooleanFunctionCall is a condition function used as a predicate, e.g.
// "where isnull(a)".
type BooleanFunctionCall struct {
	Extent
	Name string         `json:"name"`
	Args []*FunctionArg `json:"args,omitempty"`
}

func (b *BooleanFunctionCall) expressionNode() {}

// DataTypeFunctionCall is "cast(expr as type)".
type DataTypeFunctionCall struct {
	Extent
	Expr Expression `json:"expr"`
	Type string     `json:"type"`
}

func (d *DataTypeFunctionCall) expressionNode() {}

// PositionFunctionCall is "position(substr IN str)".
type PositionFunctionCall struct {
	Extent
	Substr Expression `json:"substr"`
	Str    Expression `json:"str"`
}

func (p *PositionFunctionCall) expressionNode() {}

// ExtractFunctionCall is "extract(part FROM arg)".
type ExtractFunctionCall struct {
	Extent
	Part string     `json:"part"`
	Arg  Expression `json:"arg"`
}

func (e *ExtractFunctionCall) expressionNode() {}

// GetFormatFunctionCall is "get_format(type, arg)".
type GetFormatFunctionCall struct {
	Extent
	Type string     `json:"type"`
	Arg  Expression `json:"arg"`
}

func (g *GetFormatFunctionCall) expressionNode() {}

// TimestampFunctionCall is timestampadd or timestampdiff.
type TimestampFunctionCall struct {
	Extent
	Name   string     `json:"name"`
	Part   string     `json:"part"`
	First  Expression `json:"first"`
	Second Expression `json:"second"`
}

func (t *TimestampFunctionCall) expressionNode() {}

// RelevanceFunction is a full-text predicate such as match or multi_match.
// Single field functions have exactly one entry in Fields.
type RelevanceFunction struct {
	Extent
	Name   string                     `json:"name"`
	Fields []*RelevanceFieldAndWeight `json:"fields"`
	Query  Expression                 `json:"query"`
	Args   []*FunctionArg             `json:"args,omitempty"`
}

func (r *RelevanceFunction) expressionNode() {}

// RelevanceFieldAndWeight is a field of a relevance function with an
// optional boost. Field is a *FieldExpression or a *StringLiteral.
type RelevanceFieldAndWeight struct {
	Extent
	Field  Expression `json:"field"`
	Weight Literal    `json:"weight,omitempty"`
}

// FunctionArg is a function argument, optionally named ("name = value").
type FunctionArg struct {
	Extent
	Name  string     `json:"name,omitempty"`
	Value Expression `json:"value"`
}

// -----------------------------------------------------------------------------
// Names

// QualifiedName is a dotted field name.
type QualifiedName struct {
	Extent
	Parts []string `json:"parts"`
}

// String joins the parts with dots.
func (q *QualifiedName) String() string { return joinParts(q.Parts) }

// TableQualifiedName is a dotted table name with an optional remote cluster.
type TableQualifiedName struct {
	Extent
	Cluster string   `json:"cluster,omitempty"`
	Parts   []string `json:"parts"`
}

// String returns the name in "cluster:a.b" form.
func (t *TableQualifiedName) String() string {
	if t.Cluster != "" {
		return t.Cluster + ":" + joinParts(t.Parts)
	}
	return joinParts(t.Parts)
}

// WildcardQualifiedName is a dotted name whose parts may contain "*".
type WildcardQualifiedName struct {
	Extent
	Parts []string `json:"parts"`
}

// String joins the parts with dots.
func (w *WildcardQualifiedName) String() string { return joinParts(w.Parts) }

func joinParts(parts []string) string {
	n := len(parts) - 1
	for _, p := range parts {
		n += len(p)
	}
	if n <= 0 {
		return ""
	}
	b := make([]byte, 0, n)
	for i, p := range parts {
		if i > 0 {
			b = append(b, '.')
		}
		b = append(b, p...)
	}
	return string(b)
}

// -----------------------------------------------------------------------------
// Literals

// StringLiteral is a single or double quoted string. Raw keeps the quotes.
type StringLiteral struct {
	Extent
	Raw   string `json:"raw"`
	Value string `json:"value"`
}

func (s *StringLiteral) expressionNode() {}
func (s *StringLiteral) literalNode()    {}

// IntegerLiteral is an optionally signed integer. When Raw does not fit in
// an int64, Overflow is set and Value is zero.
type IntegerLiteral struct {
	Extent
	Raw      string `json:"raw"`
	Value    int64  `json:"value"`
	Overflow bool   `json:"overflow,omitempty"`
}

func (i *IntegerLiteral) expressionNode() {}
func (i *IntegerLiteral) literalNode()    {}

// DecimalLiteral is an optionally signed decimal number.
type DecimalLiteral struct {
	Extent
	Raw   string  `json:"raw"`
	Value float64 `json:"value"`
}

func (d *DecimalLiteral) expressionNode() {}
func (d *DecimalLiteral) literalNode()    {}

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	Extent
	Value bool `json:"value"`
}

func (b *BooleanLiteral) expressionNode() {}
func (b *BooleanLiteral) literalNode()    {}

// DatetimeLiteral is "DATE 'x'", "TIME 'x'" or "TIMESTAMP 'x'".
type DatetimeLiteral struct {
	Extent
	Kind  string `json:"kind"` // DATE, TIME or TIMESTAMP
	Value string `json:"value"`
}

func (d *DatetimeLiteral) expressionNode() {}
func (d *DatetimeLiteral) literalNode()    {}

// IntervalLiteral is "INTERVAL value unit".
type IntervalLiteral struct {
	Extent
	Value Expression `json:"value"`
	Unit  string     `json:"unit"`
}

func (i *IntervalLiteral) expressionNode() {}
func (i *IntervalLiteral) literalNode()    {}
