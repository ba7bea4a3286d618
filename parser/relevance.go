package parser

import (
	"sort"
	"strings"

	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/token"
)

// relevanceArgNames lists the argument names accepted by relevance
// functions, used for suggestions.
var relevanceArgNames = func() []string {
	var names []string
	for word, tok := range token.Keywords {
		if tok.Is(token.RelevanceArg) {
			names = append(names, strings.ToLower(word))
		}
	}
	sort.Strings(names)
	return names
}()

// parseRelevanceFunction parses a single or multi field full-text function:
//
//	match(field, query[, arg=value]*)
//	multi_match([field[^weight], ...], query[, arg=value]*)
func (p *Parser) parseRelevanceFunction() *ast.RelevanceFunction {
	p.trace("relevanceFunction")
	if !p.enter() {
		return nil
	}
	defer p.leave()

	start := p.current.Pos
	multi := p.current.Token.Is(token.RelevanceMulti)
	fn := &ast.RelevanceFunction{Name: keywordValue(p.current)}
	p.nextToken()
	if !p.expect(token.LT_PRTHS) {
		return nil
	}

	if multi {
		fn.Fields = p.parseRelevanceFieldList()
	} else {
		fstart := p.current.Pos
		field := p.parseRelevanceField()
		if p.err != nil {
			return nil
		}
		fn.Fields = []*ast.RelevanceFieldAndWeight{{Extent: p.extent(fstart), Field: field}}
	}
	if p.err != nil || !p.expect(token.COMMA) {
		return nil
	}

	fn.Query = p.parseRelevanceArgValue()
	if p.err != nil {
		return nil
	}

	for p.currentIs(token.COMMA) {
		p.nextToken()
		arg := p.parseRelevanceArg(fn.Name)
		if p.err != nil {
			return nil
		}
		fn.Args = append(fn.Args, arg)
	}
	if !p.expect(token.RT_PRTHS) {
		return nil
	}
	fn.Extent = p.extent(start)
	return fn
}

// parseRelevanceFieldList parses [field[^weight], ...].
func (p *Parser) parseRelevanceFieldList() []*ast.RelevanceFieldAndWeight {
	if !p.expect(token.LT_SQR_PRTHS) {
		return nil
	}
	var fields []*ast.RelevanceFieldAndWeight
	for {
		start := p.current.Pos
		fw := &ast.RelevanceFieldAndWeight{Field: p.parseRelevanceField()}
		if p.err != nil {
			return nil
		}
		switch p.current.Token {
		case token.BIT_XOR_OP:
			p.nextToken()
			fw.Weight = p.parseDecimalOrInteger()
		case token.INTEGER_LITERAL, token.DECIMAL_LITERAL:
			fw.Weight = p.parseDecimalOrInteger()
		}
		if p.err != nil {
			return nil
		}
		fw.Extent = p.extent(start)
		fields = append(fields, fw)
		if !p.currentIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if !p.expect(token.RT_SQR_PRTHS) {
		return nil
	}
	return fields
}

// parseRelevanceField parses a field given as a qualified name or a string.
func (p *Parser) parseRelevanceField() ast.Expression {
	if p.current.Token.IsString() {
		return p.parseStringLiteral()
	}
	if !p.isIdentStart() {
		p.unexpected("field name", "string")
		return nil
	}
	return nilIfFailed(p, p.parseFieldExpression())
}

// parseRelevanceArg parses name = value.
func (p *Parser) parseRelevanceArg(function string) *ast.FunctionArg {
	start := p.current.Pos
	if !p.current.Token.Is(token.RelevanceArg) {
		if p.current.Token == token.ID {
			p.fail(newError(codeUnknownArgument, p.current, map[string]any{
				"Command":    function,
				"Suggestion": closest(strings.ToLower(p.current.Value), relevanceArgNames),
			}))
			return nil
		}
		p.unexpected("relevance argument")
		return nil
	}
	name := keywordValue(p.current)
	p.nextToken()
	if !p.expect(token.EQUAL) {
		return nil
	}
	value := p.parseRelevanceArgValue()
	if p.err != nil {
		return nil
	}
	return &ast.FunctionArg{Extent: p.extent(start), Name: name, Value: value}
}

// parseRelevanceArgValue parses a literal or a qualified name.
func (p *Parser) parseRelevanceArgValue() ast.Expression {
	if p.isLiteralStart() {
		if lit := p.parseLiteralValue(); p.err == nil {
			return lit
		}
		return nil
	}
	if p.isIdentStart() {
		return nilIfFailed(p, p.parseFieldExpression())
	}
	p.unexpected("literal", "field name")
	return nil
}
