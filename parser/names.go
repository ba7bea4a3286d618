package parser

import (
	"strings"

	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/lexer"
	"github.com/sqlc-dev/ppl/token"
)

// isIdentStart reports whether the current token can begin an ident.
func (p *Parser) isIdentStart() bool {
	switch {
	case p.current.Token.CanBeIdent(), p.currentIs(token.BQUOTA_STRING):
		return true
	case p.currentIs(token.DOT):
		return p.peekIs(token.ID)
	}
	return false
}

// parseIdent parses one name segment: an ID with an optional leading dot,
// a backtick quoted name, or a keyword that may be used as a name.
func (p *Parser) parseIdent() (string, bool) {
	switch {
	case p.currentIs(token.DOT) && p.peekIs(token.ID):
		p.nextToken()
		name := "." + p.current.Value
		p.nextToken()
		return name, true
	case p.currentIs(token.BQUOTA_STRING):
		name := p.current.Unquote()
		p.nextToken()
		return name, true
	case p.current.Token.CanBeIdent():
		name := p.current.Value
		p.nextToken()
		return name, true
	}
	p.unexpected("field name")
	return "", false
}

// parseQualifiedName parses ident ('.' ident)*.
func (p *Parser) parseQualifiedName() *ast.QualifiedName {
	start := p.current.Pos
	name, ok := p.parseIdent()
	if !ok {
		return nil
	}
	parts := []string{name}
	for p.currentIs(token.DOT) {
		p.nextToken()
		name, ok := p.parseIdent()
		if !ok {
			return nil
		}
		parts = append(parts, name)
	}
	return &ast.QualifiedName{Extent: p.extent(start), Parts: parts}
}

// parseFieldExpression parses a field reference.
func (p *Parser) parseFieldExpression() *ast.FieldExpression {
	start := p.current.Pos
	name := p.parseQualifiedName()
	if p.err != nil {
		return nil
	}
	return &ast.FieldExpression{Extent: p.extent(start), Name: name}
}

// parseFieldList parses fieldExpression (',' fieldExpression)*.
func (p *Parser) parseFieldList() []*ast.FieldExpression {
	var fields []*ast.FieldExpression
	for {
		f := p.parseFieldExpression()
		if p.err != nil {
			return nil
		}
		fields = append(fields, f)
		if !p.currentIs(token.COMMA) {
			return fields
		}
		p.nextToken()
	}
}

// parseTableQualifiedName parses [cluster:] part ('.' part)*. Parts may be
// index patterns; pattern reports whether any was.
func (p *Parser) parseTableQualifiedName() (name *ast.TableQualifiedName, pattern bool) {
	start := p.current.Pos
	name = &ast.TableQualifiedName{}
	if p.currentIs(token.CLUSTER) {
		name.Cluster = strings.TrimSuffix(p.current.Value, ":")
		p.nextToken()
	}
	for {
		if p.currentIs(token.ID_DATE_SUFFIX) {
			name.Parts = append(name.Parts, p.current.Value)
			pattern = true
			p.nextToken()
		} else {
			part, ok := p.parseTableIdent()
			if !ok {
				return nil, false
			}
			name.Parts = append(name.Parts, part)
		}
		if !p.currentIs(token.DOT) {
			break
		}
		p.nextToken()
	}
	name.Extent = p.extent(start)
	return name, pattern
}

func (p *Parser) parseTableIdent() (string, bool) {
	if !p.isIdentStart() {
		p.unexpected("index name")
		return "", false
	}
	return p.parseIdent()
}

// isWildcardStart reports whether the current token can begin a wildcard
// atom.
func (p *Parser) isWildcardStart() bool {
	switch p.current.Token {
	case token.STAR, token.MODULE, token.SQUOTA_STRING, token.DQUOTA_STRING:
		return true
	}
	return p.isIdentStart()
}

// parseWildcard parses one wildcard atom: name pieces joined by "*" or "%"
// markers, or a quoted string holding such an atom. Markers are normalized
// to "*".
func (p *Parser) parseWildcard() (string, bool) {
	switch p.current.Token {
	case token.SQUOTA_STRING, token.DQUOTA_STRING, token.BQUOTA_STRING:
		atom := normalizeWildcard(p.current.Unquote())
		p.nextToken()
		return atom, true
	}

	var sb strings.Builder
	marker := false // last piece was a marker
	for first := true; ; first = false {
		switch {
		case p.currentIs(token.STAR) || p.currentIs(token.MODULE):
			sb.WriteByte('*')
			marker = true
			p.nextToken()
			continue
		case first && p.isIdentStart(), marker && !p.currentIs(token.DOT) && p.isIdentStart():
			name, _ := p.parseIdent()
			sb.WriteString(name)
			marker = false
			continue
		}
		if first {
			p.unexpected("field name")
			return "", false
		}
		return sb.String(), true
	}
}

func normalizeWildcard(s string) string {
	return strings.ReplaceAll(s, "%", "*")
}

// parseWcQualifiedName parses wildcard ('.' wildcard)*.
func (p *Parser) parseWcQualifiedName() *ast.WildcardQualifiedName {
	start := p.current.Pos
	atom, ok := p.parseWildcard()
	if !ok {
		return nil
	}
	parts := []string{atom}
	for p.currentIs(token.DOT) {
		p.nextToken()
		atom, ok := p.parseWildcard()
		if !ok {
			return nil
		}
		parts = append(parts, atom)
	}
	return &ast.WildcardQualifiedName{Extent: p.extent(start), Parts: parts}
}

// parseWcFieldList parses wcQualifiedName (',' wcQualifiedName)*.
func (p *Parser) parseWcFieldList() []*ast.WildcardQualifiedName {
	var fields []*ast.WildcardQualifiedName
	for {
		f := p.parseWcQualifiedName()
		if p.err != nil {
			return nil
		}
		fields = append(fields, f)
		if !p.currentIs(token.COMMA) {
			return fields
		}
		p.nextToken()
	}
}

// isCall reports whether the current token is a keyword of cat followed by "(".
func (p *Parser) isCall(cat token.Category) bool {
	return p.current.Token.Is(cat) && p.peekIs(token.LT_PRTHS)
}

// keywordValue returns the canonical lower-case spelling of a keyword item.
func keywordValue(item lexer.Item) string {
	return strings.ToLower(item.Value)
}
