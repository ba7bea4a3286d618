package parser

import (
	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/token"
)

// aggregations taking a single value expression.
var statsFunctionNames = map[token.Token]bool{
	token.AVG:         true,
	token.COUNT:       true,
	token.SUM:         true,
	token.MIN:         true,
	token.MAX:         true,
	token.VAR_SAMP:    true,
	token.VAR_POP:     true,
	token.STDDEV_SAMP: true,
	token.STDDEV_POP:  true,
}

var aggregationNames = []string{
	"avg", "count", "sum", "min", "max", "var_samp", "var_pop", "stddev_samp",
	"stddev_pop", "distinct_count", "dc", "percentile", "take",
}

// stats [partitions=int] [allnum=bool] [delim=string] aggTerm (',' aggTerm)*
// [statsBy] [dedup_splitvalues=bool]
func (p *Parser) parseStats() *ast.StatsCommand {
	p.trace("statsCommand")
	start := p.current.Pos
	p.nextToken()
	cmd := &ast.StatsCommand{}

	if p.setting(token.PARTITIONS) {
		if cmd.Partitions = p.parseIntegerLiteral(); p.err != nil {
			return nil
		}
	}
	if p.setting(token.ALLNUM) {
		if cmd.AllNum = p.parseBooleanLiteral(); p.err != nil {
			return nil
		}
	}
	if p.setting(token.DELIM) {
		if cmd.Delim = p.parseStringLiteral(); p.err != nil {
			return nil
		}
	}

	if !p.current.Token.Is(token.StatsFunction) {
		p.missing("stats", "an aggregation", aggregationNames...)
		return nil
	}
	for {
		term := p.parseStatsAggTerm()
		if p.err != nil {
			return nil
		}
		cmd.Terms = append(cmd.Terms, term)
		if !p.currentIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if p.currentIs(token.BY) {
		if cmd.By = p.parseStatsBy(); p.err != nil {
			return nil
		}
	}
	if p.setting(token.DEDUP_SPLITVALUES) {
		if cmd.DedupSplitValues = p.parseBooleanLiteral(); p.err != nil {
			return nil
		}
	}
	cmd.Extent = p.extent(start)
	return cmd
}

// parseStatsAggTerm parses statsFunction [AS wcField].
func (p *Parser) parseStatsAggTerm() *ast.StatsAggTerm {
	start := p.current.Pos
	term := &ast.StatsAggTerm{Func: p.parseStatsFunction()}
	if p.err != nil {
		return nil
	}
	if p.currentIs(token.AS) {
		p.nextToken()
		if term.Alias = p.parseWcQualifiedName(); p.err != nil {
			return nil
		}
	}
	term.Extent = p.extent(start)
	return term
}

// parseStatsFunction parses one aggregation call. A bare count is count().
func (p *Parser) parseStatsFunction() ast.StatsFunction {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	start := p.current.Pos
	name := keywordValue(p.current)
	switch tok := p.current.Token; {
	case tok == token.COUNT && !p.peekIs(token.LT_PRTHS):
		p.nextToken()
		return &ast.CountAllFunctionCall{Extent: p.extent(start), Name: name}
	case tok == token.COUNT && p.item(p.pos+2).Token == token.RT_PRTHS:
		p.nextToken()
		p.nextToken()
		p.nextToken()
		return &ast.CountAllFunctionCall{Extent: p.extent(start), Name: name}
	case tok == token.DISTINCT_COUNT || tok == token.DC:
		p.nextToken()
		arg := p.parseCallArgument()
		if p.err != nil {
			return nil
		}
		return &ast.DistinctCountFunctionCall{Extent: p.extent(start), Name: name, Arg: arg}
	case tok == token.PERCENTILE:
		if fn := p.parsePercentile(); p.err == nil {
			return fn
		}
		return nil
	case tok == token.TAKE:
		if fn := p.parseTake(); p.err == nil {
			return fn
		}
		return nil
	case statsFunctionNames[tok]:
		p.nextToken()
		arg := p.parseCallArgument()
		if p.err != nil {
			return nil
		}
		return &ast.StatsFunctionCall{Extent: p.extent(start), Name: name, Arg: arg}
	}
	p.unexpected(aggregationNames...)
	return nil
}

// parseCallArgument parses ( valueExpression ).
func (p *Parser) parseCallArgument() ast.Expression {
	if !p.expect(token.LT_PRTHS) {
		return nil
	}
	arg := p.parseValueExpression()
	if p.err != nil || !p.expect(token.RT_PRTHS) {
		return nil
	}
	return arg
}

// parsePercentile parses percentile<int>(field).
func (p *Parser) parsePercentile() *ast.PercentileAggFunctionCall {
	start := p.current.Pos
	p.nextToken() // skip PERCENTILE
	if !p.expect(token.LESS) {
		return nil
	}
	percent := p.parseIntegerLiteral()
	if p.err != nil || !p.expect(token.GREATER) || !p.expect(token.LT_PRTHS) {
		return nil
	}
	field := p.parseQualifiedName()
	if p.err != nil || !p.expect(token.RT_PRTHS) {
		return nil
	}
	return &ast.PercentileAggFunctionCall{Extent: p.extent(start), Percent: percent, Field: field}
}

// parseTake parses take(field[, size]).
func (p *Parser) parseTake() *ast.TakeAggFunctionCall {
	start := p.current.Pos
	p.nextToken() // skip TAKE
	if !p.expect(token.LT_PRTHS) {
		return nil
	}
	fn := &ast.TakeAggFunctionCall{Field: p.parseQualifiedName()}
	if p.err != nil {
		return nil
	}
	if p.currentIs(token.COMMA) {
		p.nextToken()
		if fn.Size = p.parseIntegerLiteral(); p.err != nil {
			return nil
		}
	}
	if !p.expect(token.RT_PRTHS) {
		return nil
	}
	fn.Extent = p.extent(start)
	return fn
}

// parseStatsBy parses BY fieldList, or BY span [AS name] [',' fieldList].
func (p *Parser) parseStatsBy() *ast.StatsByClause {
	start := p.current.Pos
	p.nextToken() // skip BY
	by := &ast.StatsByClause{}

	if p.currentIs(token.SPAN) && p.peekIs(token.LT_PRTHS) {
		sstart := p.current.Pos
		span := p.parseSpan()
		if p.err != nil {
			return nil
		}
		by.Span = &ast.BySpanClause{Span: span}
		if p.currentIs(token.AS) {
			p.nextToken()
			if by.Span.Alias = p.parseQualifiedName(); p.err != nil {
				return nil
			}
		}
		by.Span.Extent = p.extent(sstart)
		if !p.currentIs(token.COMMA) {
			by.Extent = p.extent(start)
			return by
		}
		p.nextToken()
	}

	if !p.isIdentStart() {
		p.missing("stats", "a group by field", "field name", "span")
		return nil
	}
	if by.Fields = p.parseFieldList(); p.err != nil {
		return nil
	}
	by.Extent = p.extent(start)
	return by
}

// parseSpan parses span(field, literal [unit]). The unit is kept as written
// since "m" and "M" name different units.
func (p *Parser) parseSpan() *ast.SpanClause {
	start := p.current.Pos
	p.nextToken() // skip SPAN
	if !p.enter() {
		return nil
	}
	defer p.leave()
	if !p.expect(token.LT_PRTHS) {
		return nil
	}
	span := &ast.SpanClause{Field: p.parseFieldExpression()}
	if p.err != nil || !p.expect(token.COMMA) {
		return nil
	}
	if span.Value = p.parseLiteralValue(); p.err != nil {
		return nil
	}
	if p.current.Token.Is(token.TimespanUnit) {
		span.Unit = p.current.Value
		p.nextToken()
	}
	if !p.expect(token.RT_PRTHS) {
		return nil
	}
	span.Extent = p.extent(start)
	return span
}
