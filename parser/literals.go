package parser

import (
	"strconv"
	"strings"

	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/lexer"
	"github.com/sqlc-dev/ppl/token"
)

// isLiteralStart reports whether the current token begins a literal value.
func (p *Parser) isLiteralStart() bool {
	switch p.current.Token {
	case token.INTEGER_LITERAL, token.DECIMAL_LITERAL,
		token.DQUOTA_STRING, token.SQUOTA_STRING,
		token.TRUE, token.FALSE, token.INTERVAL:
		return true
	case token.PLUS, token.MINUS:
		return p.peekIs(token.INTEGER_LITERAL) || p.peekIs(token.DECIMAL_LITERAL)
	case token.DATE, token.TIME, token.TIMESTAMP:
		return p.peek.Token.IsString()
	}
	return false
}

// parseLiteralValue parses an interval, string, integer, decimal, boolean
// or datetime literal.
func (p *Parser) parseLiteralValue() ast.Literal {
	switch p.current.Token {
	case token.INTERVAL:
		if lit := p.parseIntervalLiteral(); p.err == nil {
			return lit
		}
	case token.DQUOTA_STRING, token.SQUOTA_STRING:
		return p.parseStringLiteral()
	case token.TRUE, token.FALSE:
		return p.parseBooleanLiteral()
	case token.DATE, token.TIME, token.TIMESTAMP:
		if lit := p.parseDatetimeLiteral(); p.err == nil {
			return lit
		}
	case token.INTEGER_LITERAL, token.DECIMAL_LITERAL, token.PLUS, token.MINUS:
		return p.parseNumber()
	default:
		p.unexpected("literal")
	}
	return nil
}

// parseNumber parses an optionally signed integer or decimal literal.
func (p *Parser) parseNumber() ast.Literal {
	start := p.current.Pos
	neg := false
	if p.currentIs(token.PLUS) || p.currentIs(token.MINUS) {
		neg = p.currentIs(token.MINUS)
		p.nextToken()
	}

	digits := p.current
	switch digits.Token {
	case token.INTEGER_LITERAL:
		p.nextToken()
		lit := &ast.IntegerLiteral{Extent: p.extent(start)}
		lit.Raw = p.input[start.Offset:lit.EndPosition.Offset]
		text := digits.Value
		if neg {
			text = "-" + text
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil && p.cfg.StrictLiterals {
			p.fail(p.invalidLiteral(digits, "integer", lit.Raw, "out of range"))
			return nil
		}
		if err != nil {
			lit.Overflow = true
			v = 0
		}
		lit.Value = v
		return lit
	case token.DECIMAL_LITERAL:
		p.nextToken()
		lit := &ast.DecimalLiteral{Extent: p.extent(start)}
		lit.Raw = p.input[start.Offset:lit.EndPosition.Offset]
		v, err := strconv.ParseFloat(digits.Value, 64)
		if err != nil && p.cfg.StrictLiterals {
			p.fail(p.invalidLiteral(digits, "decimal", lit.Raw, "out of range"))
			return nil
		}
		if neg {
			v = -v
		}
		lit.Value = v
		return lit
	}
	p.unexpected("number")
	return nil
}

// parseIntegerLiteral parses an optionally signed integer.
func (p *Parser) parseIntegerLiteral() *ast.IntegerLiteral {
	if !p.isIntegerStart() {
		p.unexpected("integer")
		return nil
	}
	lit, _ := p.parseNumber().(*ast.IntegerLiteral)
	if p.err != nil {
		return nil
	}
	return lit
}

func (p *Parser) isIntegerStart() bool {
	switch p.current.Token {
	case token.INTEGER_LITERAL:
		return true
	case token.PLUS, token.MINUS:
		return p.peekIs(token.INTEGER_LITERAL)
	}
	return false
}

// parseDecimalOrInteger parses a weight or threshold that may be written
// either way.
func (p *Parser) parseDecimalOrInteger() ast.Literal {
	switch p.current.Token {
	case token.INTEGER_LITERAL, token.DECIMAL_LITERAL, token.PLUS, token.MINUS:
		if lit := p.parseNumber(); p.err == nil {
			return lit
		}
		return nil
	}
	p.unexpected("number")
	return nil
}

func (p *Parser) parseStringLiteral() *ast.StringLiteral {
	if !p.current.Token.IsString() {
		p.unexpected("string")
		return nil
	}
	item := p.current
	p.nextToken()
	return &ast.StringLiteral{
		Extent: ast.Extent{Position: item.Pos, EndPosition: item.End},
		Raw:    item.Value,
		Value:  item.Unquote(),
	}
}

func (p *Parser) parseBooleanLiteral() *ast.BooleanLiteral {
	if !p.currentIs(token.TRUE) && !p.currentIs(token.FALSE) {
		p.unexpected("true", "false")
		return nil
	}
	item := p.current
	p.nextToken()
	return &ast.BooleanLiteral{
		Extent: ast.Extent{Position: item.Pos, EndPosition: item.End},
		Value:  item.Token == token.TRUE,
	}
}

// parseDatetimeLiteral parses DATE 'x', TIME 'x' or TIMESTAMP 'x'.
func (p *Parser) parseDatetimeLiteral() *ast.DatetimeLiteral {
	start := p.current.Pos
	kind := strings.ToUpper(p.current.Value)
	p.nextToken()
	str := p.parseStringLiteral()
	if p.err != nil {
		return nil
	}
	lit := &ast.DatetimeLiteral{
		Extent: p.extent(start),
		Kind:   kind,
		Value:  str.Value,
	}
	if p.cfg.StrictLiterals {
		if _, err := lit.Time(); err != nil {
			item := p.tokens[p.pos-1]
			p.fail(p.invalidLiteral(item, strings.ToLower(kind), str.Raw, err.Error()))
			return nil
		}
	}
	return lit
}

// parseIntervalLiteral parses INTERVAL valueExpression unit.
func (p *Parser) parseIntervalLiteral() *ast.IntervalLiteral {
	start := p.current.Pos
	p.nextToken() // skip INTERVAL
	value := p.parseValueExpression()
	if p.err != nil {
		return nil
	}
	if !p.current.Token.Is(token.IntervalUnit) {
		p.unexpected("interval unit")
		return nil
	}
	unit := strings.ToUpper(p.current.Value)
	p.nextToken()
	return &ast.IntervalLiteral{Extent: p.extent(start), Value: value, Unit: unit}
}

func (p *Parser) invalidLiteral(item lexer.Item, what, raw, reason string) *ParseError {
	return newError(codeInvalidLiteral, item, map[string]any{
		"What":   what,
		"Found":  raw,
		"Reason": reason,
	})
}
