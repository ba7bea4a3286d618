package parser

import (
	"strings"

	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/token"
)

// Operator precedence levels. Logical operators bind loosest; arithmetic
// operators bind tightest.
const (
	LOWEST         = iota
	OR_PREC        // OR
	AND_PREC       // AND, implicit AND
	XOR_PREC       // XOR
	ADDITIVE       // + -
	MULTIPLICATIVE // * / %
)

// -----------------------------------------------------------------------------
// Generic expression

// parseExpression parses the expression rule used by eval, grok, parse,
// patterns, cast and function arguments: a logical expression, a
// comparison or a value expression.
func (p *Parser) parseExpression() ast.Expression {
	p.trace("expression")
	if p.currentIs(token.NOT) || p.isCall(token.Relevance) {
		return p.parseLogicalExpression()
	}

	m := p.mark()
	value := p.parseValueExpression()
	if p.err != nil {
		if p.limited() {
			return nil
		}
		valueErr := p.err
		p.traceRewind("valueExpression", valueErr)
		p.reset(m)
		expr := p.parseLogicalExpression()
		if p.err != nil {
			p.err = farthest(valueErr, p.err)
			return nil
		}
		return expr
	}

	switch {
	case p.isComparisonOperator(), p.currentIs(token.IN):
		p.reset(m)
		return p.parseLogicalExpression()
	case isConditionCall(value):
		if p.currentIs(token.AND) || p.currentIs(token.OR) || p.currentIs(token.XOR) {
			p.reset(m)
			return p.parseLogicalExpression()
		}
		return toBooleanCall(value)
	}
	return value
}

// -----------------------------------------------------------------------------
// Logical layer

// parseLogicalExpression parses OR, AND, XOR and NOT over comparisons,
// boolean function calls and relevance functions.
func (p *Parser) parseLogicalExpression() ast.Expression {
	p.trace("logicalExpression")
	return p.parseLogical(LOWEST)
}

// parseLogical climbs binary operators. Only parentheses, calls and NOT add
// to the nesting depth.
func (p *Parser) parseLogical(minPrec int) ast.Expression {
	left := p.parseLogicalOperand()
	if p.err != nil {
		return nil
	}

	for {
		prec, implicit := p.logicalOperator()
		if prec == LOWEST || prec <= minPrec {
			return left
		}
		op := p.current.Token
		if !implicit {
			p.nextToken()
		}
		right := p.parseLogical(prec)
		if p.err != nil {
			return nil
		}
		ext := ast.Extent{Position: left.Pos(), EndPosition: p.prevEnd()}
		switch {
		case implicit:
			left = &ast.LogicalAnd{Extent: ext, Left: left, Right: right, Implicit: true}
		case op == token.OR:
			left = &ast.LogicalOr{Extent: ext, Left: left, Right: right}
		case op == token.AND:
			left = &ast.LogicalAnd{Extent: ext, Left: left, Right: right}
		default:
			left = &ast.LogicalXor{Extent: ext, Left: left, Right: right}
		}
	}
}

// logicalOperator returns the precedence of the binary logical operator at
// the current token. A token that can start another operand is an implicit
// AND.
func (p *Parser) logicalOperator() (prec int, implicit bool) {
	switch p.current.Token {
	case token.OR:
		return OR_PREC, false
	case token.AND:
		return AND_PREC, false
	case token.XOR:
		return XOR_PREC, false
	}
	if p.canStartLogicalOperand() {
		return AND_PREC, true
	}
	return LOWEST, false
}

// canStartLogicalOperand reports whether the current token can begin a
// logical operand.
func (p *Parser) canStartLogicalOperand() bool {
	if p.stopAtSource && p.isFromClauseStart() {
		return false
	}
	return p.currentIs(token.NOT) || p.isCall(token.Relevance) || p.canStartValue()
}

// parseLogicalOperand parses NOT, a relevance function, a parenthesized
// logical expression, a comparison or a boolean function call.
func (p *Parser) parseLogicalOperand() ast.Expression {
	start := p.current.Pos
	switch {
	case p.currentIs(token.NOT):
		if !p.enter() {
			return nil
		}
		defer p.leave()
		p.nextToken()
		expr := p.parseLogicalOperand()
		if p.err != nil {
			return nil
		}
		return &ast.LogicalNot{Extent: p.extent(start), Expr: expr}
	case p.isCall(token.Relevance):
		if fn := p.parseRelevanceFunction(); p.err == nil {
			return fn
		}
		return nil
	case p.currentIs(token.LT_PRTHS):
		return p.parseParenthesizedLogical()
	}
	return p.parseComparison()
}

// parseParenthesizedLogical handles an operand starting with "(": either a
// comparison whose left side is parenthesized, as in "(a + 1) > 2", or a
// parenthesized logical expression.
func (p *Parser) parseParenthesizedLogical() ast.Expression {
	start := p.current.Pos
	m := p.mark()
	if expr := p.parseComparison(); p.err == nil {
		return expr
	}
	if p.limited() {
		return nil
	}
	cmpErr := p.err
	p.traceRewind("comparisonExpression", cmpErr)
	p.reset(m)

	if !p.enter() {
		return nil
	}
	defer p.leave()

	p.nextToken() // skip (
	stop := p.stopAtSource
	p.stopAtSource = false
	inner := p.parseLogical(LOWEST)
	p.stopAtSource = stop
	if p.err == nil {
		p.expect(token.RT_PRTHS)
	}
	if p.err != nil {
		p.err = farthest(cmpErr, p.err)
		return nil
	}
	return &ast.ParentheticLogicalExpr{Extent: p.extent(start), Expr: inner}
}

// -----------------------------------------------------------------------------
// Comparison layer

var comparisonOps = map[token.Token]string{
	token.EQUAL:       "=",
	token.NOT_EQUAL:   "!=",
	token.LESS:        "<",
	token.NOT_GREATER: "<=",
	token.GREATER:     ">",
	token.NOT_LESS:    ">=",
	token.REGEXP:      "REGEXP",
}

func (p *Parser) isComparisonOperator() bool {
	_, ok := comparisonOps[p.current.Token]
	return ok
}

// parseComparison parses valueExpression op valueExpression, valueExpression
// IN (literal, ...), or a condition function call used as a predicate.
func (p *Parser) parseComparison() ast.Expression {
	left := p.parseValueExpression()
	if p.err != nil {
		return nil
	}

	if op, ok := comparisonOps[p.current.Token]; ok {
		p.nextToken()
		right := p.parseValueExpression()
		if p.err != nil {
			return nil
		}
		return &ast.CompareExpr{
			Extent: ast.Extent{Position: left.Pos(), EndPosition: p.prevEnd()},
			Left:   left,
			Op:     op,
			Right:  right,
		}
	}

	if p.currentIs(token.IN) {
		p.nextToken()
		list := p.parseValueList()
		if p.err != nil {
			return nil
		}
		return &ast.InExpr{
			Extent: ast.Extent{Position: left.Pos(), EndPosition: p.prevEnd()},
			Value:  left,
			List:   list,
		}
	}

	if isConditionCall(left) {
		return toBooleanCall(left)
	}

	p.unexpected("=", "!=", "<", "<=", ">", ">=", "REGEXP", "IN")
	return nil
}

// parseValueList parses ( literal, ... ).
func (p *Parser) parseValueList() []ast.Literal {
	if !p.expect(token.LT_PRTHS) {
		return nil
	}
	var list []ast.Literal
	for {
		lit := p.parseLiteralValue()
		if p.err != nil {
			return nil
		}
		list = append(list, lit)
		if !p.currentIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if !p.expect(token.RT_PRTHS) {
		return nil
	}
	return list
}

// isConditionCall reports whether expr is a bare call to a condition
// function such as isnull or like.
func isConditionCall(expr ast.Expression) bool {
	call, ok := expr.(*ast.EvalFunctionCall)
	if !ok {
		return false
	}
	return token.Lookup(strings.ToUpper(call.Name)).Is(token.Condition)
}

func toBooleanCall(expr ast.Expression) ast.Expression {
	call := expr.(*ast.EvalFunctionCall)
	return &ast.BooleanFunctionCall{Extent: call.Extent, Name: call.Name, Args: call.Args}
}

// -----------------------------------------------------------------------------
// Value layer

func arithmeticPrecedence(t token.Token) int {
	switch t {
	case token.PLUS, token.MINUS:
		return ADDITIVE
	case token.STAR, token.DIVIDE, token.MODULE:
		return MULTIPLICATIVE
	}
	return LOWEST
}

// parseValueExpression parses an arithmetic expression. Results are
// memoized by start position so rewinding parsers do not repeat work.
func (p *Parser) parseValueExpression() ast.Expression {
	start := p.pos
	if e, ok := p.memo[start]; ok {
		if e.err != nil {
			p.fail(e.err)
			return nil
		}
		p.reset(savepoint{pos: e.next, err: p.err})
		return e.expr
	}

	expr := p.parseValue(ADDITIVE - 1)
	if !p.limited() {
		p.memo[start] = memoEntry{expr: expr, next: p.pos, err: p.err}
	}
	return expr
}

func (p *Parser) parseValue(minPrec int) ast.Expression {
	left := p.parseValueOperand()
	if p.err != nil {
		return nil
	}

	for {
		prec := arithmeticPrecedence(p.current.Token)
		if prec == LOWEST || prec <= minPrec {
			return left
		}
		op := p.current.Value
		p.nextToken()
		right := p.parseValue(prec)
		if p.err != nil {
			return nil
		}
		left = &ast.BinaryArithmetic{
			Extent: ast.Extent{Position: left.Pos(), EndPosition: p.prevEnd()},
			Left:   left,
			Op:     op,
			Right:  right,
		}
	}
}

// canStartValue reports whether the current token can begin a value
// expression.
func (p *Parser) canStartValue() bool {
	switch p.current.Token {
	case token.LT_PRTHS:
		return true
	case token.CAST, token.POSITION, token.EXTRACT, token.GET_FORMAT,
		token.TIMESTAMPADD, token.TIMESTAMPDIFF:
		return p.peekIs(token.LT_PRTHS)
	}
	return p.isLiteralStart() || p.isIdentStart() || p.isCall(token.EvalFunction)
}

// parseValueOperand parses the leaves of the value layer, in order: eval
// function calls, position, extract, get_format, timestampadd and
// timestampdiff, parenthesized expressions, casts, literals and fields.
func (p *Parser) parseValueOperand() ast.Expression {
	switch {
	case p.currentIs(token.POSITION) && p.peekIs(token.LT_PRTHS):
		return nilIfFailed(p, p.parsePositionFunction())
	case p.isCall(token.EvalFunction):
		return nilIfFailed(p, p.parseEvalFunctionCall())
	case p.currentIs(token.EXTRACT) && p.peekIs(token.LT_PRTHS):
		return nilIfFailed(p, p.parseExtractFunction())
	case p.currentIs(token.GET_FORMAT) && p.peekIs(token.LT_PRTHS):
		return nilIfFailed(p, p.parseGetFormatFunction())
	case (p.currentIs(token.TIMESTAMPADD) || p.currentIs(token.TIMESTAMPDIFF)) && p.peekIs(token.LT_PRTHS):
		return nilIfFailed(p, p.parseTimestampFunction())
	case p.currentIs(token.LT_PRTHS):
		return nilIfFailed(p, p.parseParenthesizedValue())
	case p.currentIs(token.CAST) && p.peekIs(token.LT_PRTHS):
		return nilIfFailed(p, p.parseCast())
	case p.isLiteralStart():
		if lit := p.parseLiteralValue(); p.err == nil {
			return lit
		}
		return nil
	case p.isIdentStart():
		return nilIfFailed(p, p.parseFieldExpression())
	}
	p.unexpected("expression")
	return nil
}

// nilIfFailed converts a typed node to an Expression, returning a nil
// interface when parsing failed.
func nilIfFailed[T ast.Expression](p *Parser, node T) ast.Expression {
	if p.err != nil {
		return nil
	}
	return node
}

func (p *Parser) parseParenthesizedValue() *ast.ParentheticValueExpr {
	start := p.current.Pos
	if !p.enter() {
		return nil
	}
	defer p.leave()

	p.nextToken() // skip (
	inner := p.parseValue(ADDITIVE - 1)
	if p.err != nil {
		return nil
	}
	if !p.expect(token.RT_PRTHS) {
		return nil
	}
	return &ast.ParentheticValueExpr{Extent: p.extent(start), Expr: inner}
}

// -----------------------------------------------------------------------------
// Functions

// parseEvalFunctionCall parses name(arg, ...) for math, trigonometric,
// date/time, text, condition and system functions.
func (p *Parser) parseEvalFunctionCall() *ast.EvalFunctionCall {
	start := p.current.Pos
	name := keywordValue(p.current)
	p.nextToken()
	args := p.parseFunctionArgs()
	if p.err != nil {
		return nil
	}
	return &ast.EvalFunctionCall{Extent: p.extent(start), Name: name, Args: args}
}

// parseFunctionArgs parses ( [expression (, expression)*] ).
func (p *Parser) parseFunctionArgs() []*ast.FunctionArg {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	if !p.expect(token.LT_PRTHS) {
		return nil
	}
	var args []*ast.FunctionArg
	if p.currentIs(token.RT_PRTHS) {
		p.nextToken()
		return args
	}
	for {
		start := p.current.Pos
		value := p.parseExpression()
		if p.err != nil {
			return nil
		}
		args = append(args, &ast.FunctionArg{Extent: p.extent(start), Value: value})
		if !p.currentIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if !p.expect(token.RT_PRTHS) {
		return nil
	}
	return args
}

// parseNamedFunctionArgs parses ( [[name =] value (, ...)*] ), the argument
// list of table functions.
func (p *Parser) parseNamedFunctionArgs() []*ast.FunctionArg {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	if !p.expect(token.LT_PRTHS) {
		return nil
	}
	var args []*ast.FunctionArg
	for !p.currentIs(token.RT_PRTHS) {
		if len(args) > 0 && !p.expect(token.COMMA) {
			return nil
		}
		start := p.current.Pos
		arg := &ast.FunctionArg{}
		if p.isIdentStart() && p.peekIs(token.EQUAL) {
			arg.Name, _ = p.parseIdent()
			p.nextToken() // skip =
		}
		arg.Value = p.parseValueExpression()
		if p.err != nil {
			return nil
		}
		arg.Extent = p.extent(start)
		args = append(args, arg)
	}
	p.nextToken() // skip )
	return args
}

// parsePositionFunction parses position(substr IN str).
func (p *Parser) parsePositionFunction() *ast.PositionFunctionCall {
	start := p.current.Pos
	p.nextToken() // skip POSITION
	if !p.enter() {
		return nil
	}
	defer p.leave()
	if !p.expect(token.LT_PRTHS) {
		return nil
	}
	substr := p.parseValueExpression()
	if p.err != nil || !p.expect(token.IN) {
		return nil
	}
	str := p.parseValueExpression()
	if p.err != nil || !p.expect(token.RT_PRTHS) {
		return nil
	}
	return &ast.PositionFunctionCall{Extent: p.extent(start), Substr: substr, Str: str}
}

// parseExtractFunction parses extract(part FROM arg).
func (p *Parser) parseExtractFunction() *ast.ExtractFunctionCall {
	start := p.current.Pos
	p.nextToken() // skip EXTRACT
	if !p.enter() {
		return nil
	}
	defer p.leave()
	if !p.expect(token.LT_PRTHS) {
		return nil
	}
	if !p.current.Token.Is(token.IntervalUnit) {
		p.unexpected("datetime part")
		return nil
	}
	part := strings.ToUpper(p.current.Value)
	p.nextToken()
	if !p.expect(token.FROM) {
		return nil
	}
	arg := p.parseValueExpression()
	if p.err != nil || !p.expect(token.RT_PRTHS) {
		return nil
	}
	return &ast.ExtractFunctionCall{Extent: p.extent(start), Part: part, Arg: arg}
}

// parseGetFormatFunction parses get_format(type, arg).
func (p *Parser) parseGetFormatFunction() *ast.GetFormatFunctionCall {
	start := p.current.Pos
	p.nextToken() // skip GET_FORMAT
	if !p.enter() {
		return nil
	}
	defer p.leave()
	if !p.expect(token.LT_PRTHS) {
		return nil
	}
	switch p.current.Token {
	case token.DATE, token.DATETIME, token.TIME, token.TIMESTAMP:
	default:
		p.unexpected("DATE", "DATETIME", "TIME", "TIMESTAMP")
		return nil
	}
	typ := strings.ToUpper(p.current.Value)
	p.nextToken()
	if !p.expect(token.COMMA) {
		return nil
	}
	arg := p.parseValueExpression()
	if p.err != nil || !p.expect(token.RT_PRTHS) {
		return nil
	}
	return &ast.GetFormatFunctionCall{Extent: p.extent(start), Type: typ, Arg: arg}
}

var simpleDateTimeParts = map[token.Token]bool{
	token.MICROSECOND: true,
	token.SECOND:      true,
	token.MINUTE:      true,
	token.HOUR:        true,
	token.DAY:         true,
	token.WEEK:        true,
	token.MONTH:       true,
	token.QUARTER:     true,
	token.YEAR:        true,
}

// parseTimestampFunction parses timestampadd(part, a, b) and
// timestampdiff(part, a, b).
func (p *Parser) parseTimestampFunction() *ast.TimestampFunctionCall {
	start := p.current.Pos
	name := keywordValue(p.current)
	p.nextToken()
	if !p.enter() {
		return nil
	}
	defer p.leave()
	if !p.expect(token.LT_PRTHS) {
		return nil
	}
	if !simpleDateTimeParts[p.current.Token] {
		p.unexpected("MICROSECOND", "SECOND", "MINUTE", "HOUR", "DAY", "WEEK", "MONTH", "QUARTER", "YEAR")
		return nil
	}
	part := strings.ToUpper(p.current.Value)
	p.nextToken()
	if !p.expect(token.COMMA) {
		return nil
	}
	first := p.parseValueExpression()
	if p.err != nil || !p.expect(token.COMMA) {
		return nil
	}
	second := p.parseValueExpression()
	if p.err != nil || !p.expect(token.RT_PRTHS) {
		return nil
	}
	return &ast.TimestampFunctionCall{
		Extent: p.extent(start),
		Name:   name,
		Part:   part,
		First:  first,
		Second: second,
	}
}

// parseCast parses cast(expression AS type).
func (p *Parser) parseCast() *ast.DataTypeFunctionCall {
	start := p.current.Pos
	p.nextToken() // skip CAST
	if !p.enter() {
		return nil
	}
	defer p.leave()
	if !p.expect(token.LT_PRTHS) {
		return nil
	}
	expr := p.parseExpression()
	if p.err != nil || !p.expect(token.AS) {
		return nil
	}
	if !p.current.Token.Is(token.DataType) {
		p.unexpected("data type")
		return nil
	}
	typ := strings.ToUpper(p.current.Value)
	p.nextToken()
	if !p.expect(token.RT_PRTHS) {
		return nil
	}
	return &ast.DataTypeFunctionCall{Extent: p.extent(start), Expr: expr, Type: typ}
}
