package parser

import (
	"sort"
	"strings"

	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/token"
)

// commandNames lists the pipeline commands, used for suggestions.
var commandNames = []string{
	"where", "fields", "rename", "stats", "dedup", "sort", "eval", "head",
	"top", "rare", "grok", "parse", "patterns", "kmeans", "ad", "ml",
}

// atSegmentEnd reports whether the current token ends a pipe segment.
func (p *Parser) atSegmentEnd() bool {
	return p.currentIs(token.PIPE) || p.currentIs(token.EOF)
}

// -----------------------------------------------------------------------------
// Entry commands

func (p *Parser) parseEntryCommand() ast.EntryCommand {
	p.trace("entryCommand")
	switch {
	case p.currentIs(token.DESCRIBE):
		if cmd := p.parseDescribe(); p.err == nil {
			return cmd
		}
		return nil
	case p.currentIs(token.SHOW) && p.peekIs(token.DATASOURCES):
		start := p.current.Pos
		p.nextToken()
		p.nextToken()
		return &ast.ShowDataSourcesCommand{Extent: p.extent(start)}
	case p.current.Token.Is(token.Command) && !p.currentIs(token.SEARCH) &&
		!p.isFromClauseStart() && !comparisonFollows(p.peek.Token):
		p.unexpected("search", "source", "index", "describe", "show")
		return nil
	}
	if cmd := p.parseSearch(); p.err == nil {
		return cmd
	}
	return nil
}

func comparisonFollows(t token.Token) bool {
	_, ok := comparisonOps[t]
	return ok || t == token.IN
}

// parseDescribe parses describe tableSourceClause.
func (p *Parser) parseDescribe() *ast.DescribeCommand {
	start := p.current.Pos
	p.nextToken() // skip DESCRIBE
	if p.atSegmentEnd() {
		p.missing("describe", "an index name", "index name")
		return nil
	}
	sources := p.parseTableSourceClause()
	if p.err != nil {
		return nil
	}
	return &ast.DescribeCommand{Extent: p.extent(start), Sources: sources}
}

// parseSearch parses the three search shapes:
//
//	[search] source=t
//	[search] source=t logicalExpression
//	[search] logicalExpression source=t
func (p *Parser) parseSearch() *ast.SearchCommand {
	p.trace("searchCommand")
	start := p.current.Pos
	cmd := &ast.SearchCommand{Implicit: !p.currentIs(token.SEARCH)}
	if !cmd.Implicit {
		p.nextToken()
	}

	if p.isFromClauseStart() {
		cmd.From = p.parseFromClause()
		if p.err != nil {
			return nil
		}
		if !p.atSegmentEnd() {
			cmd.Filter = p.parseLogicalExpression()
			if p.err != nil {
				return nil
			}
		}
		cmd.Extent = p.extent(start)
		return cmd
	}

	if p.atSegmentEnd() {
		p.missing("search", "a source or index clause", "source", "index")
		return nil
	}
	p.stopAtSource = true
	cmd.Filter = p.parseLogicalExpression()
	p.stopAtSource = false
	if p.err != nil {
		return nil
	}
	if !p.isFromClauseStart() {
		p.missing("search", "a source or index clause", "source", "index")
		return nil
	}
	cmd.FilterFirst = true
	cmd.From = p.parseFromClause()
	if p.err != nil {
		return nil
	}
	cmd.Extent = p.extent(start)
	return cmd
}

func (p *Parser) isFromClauseStart() bool {
	return (p.currentIs(token.SOURCE) || p.currentIs(token.INDEX)) && p.peekIs(token.EQUAL)
}

// parseFromClause parses (source|index) = (tableSourceClause | tableFunction).
func (p *Parser) parseFromClause() *ast.FromClause {
	start := p.current.Pos
	from := &ast.FromClause{Keyword: p.current.Value}
	p.nextToken()
	if !p.expect(token.EQUAL) {
		return nil
	}
	if p.isTableFunctionStart() {
		from.Function = p.parseTableFunction()
	} else {
		from.Sources = p.parseTableSourceClause()
	}
	if p.err != nil {
		return nil
	}
	from.Extent = p.extent(start)
	return from
}

// isTableFunctionStart looks ahead for ident ('.' ident)* '('.
func (p *Parser) isTableFunctionStart() bool {
	i := p.pos
	for {
		t := p.item(i).Token
		if !t.CanBeIdent() && t != token.BQUOTA_STRING {
			return false
		}
		i++
		switch p.item(i).Token {
		case token.LT_PRTHS:
			return true
		case token.DOT:
			i++
		default:
			return false
		}
	}
}

func (p *Parser) parseTableFunction() *ast.TableFunction {
	start := p.current.Pos
	name := p.parseQualifiedName()
	if p.err != nil {
		return nil
	}
	args := p.parseNamedFunctionArgs()
	if p.err != nil {
		return nil
	}
	return &ast.TableFunction{Extent: p.extent(start), Name: name, Args: args}
}

// parseTableSourceClause parses tableSource (',' tableSource)*.
func (p *Parser) parseTableSourceClause() *ast.TableSourceClause {
	start := p.current.Pos
	clause := &ast.TableSourceClause{}
	for {
		sstart := p.current.Pos
		name, pattern := p.parseTableQualifiedName()
		if p.err != nil {
			return nil
		}
		clause.Sources = append(clause.Sources, &ast.TableSource{
			Extent:  p.extent(sstart),
			Name:    name,
			Pattern: pattern,
		})
		if !p.currentIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	clause.Extent = p.extent(start)
	return clause
}

// -----------------------------------------------------------------------------
// Pipeline commands

// parseCommand parses one pipe segment after the first.
func (p *Parser) parseCommand() ast.Command {
	p.trace("command")
	switch p.current.Token {
	case token.WHERE:
		return nilIfFailedCommand(p, p.parseWhere())
	case token.FIELDS:
		return nilIfFailedCommand(p, p.parseFields())
	case token.RENAME:
		return nilIfFailedCommand(p, p.parseRename())
	case token.STATS:
		return nilIfFailedCommand(p, p.parseStats())
	case token.DEDUP:
		return nilIfFailedCommand(p, p.parseDedup())
	case token.SORT:
		return nilIfFailedCommand(p, p.parseSort())
	case token.EVAL:
		return nilIfFailedCommand(p, p.parseEval())
	case token.HEAD:
		return nilIfFailedCommand(p, p.parseHead())
	case token.TOP:
		return nilIfFailedCommand(p, p.parseTop())
	case token.RARE:
		return nilIfFailedCommand(p, p.parseRare())
	case token.GROK:
		return nilIfFailedCommand(p, p.parseGrok())
	case token.PARSE:
		return nilIfFailedCommand(p, p.parseParse())
	case token.PATTERNS:
		return nilIfFailedCommand(p, p.parsePatterns())
	case token.KMEANS:
		return nilIfFailedCommand(p, p.parseKmeans())
	case token.AD:
		return nilIfFailedCommand(p, p.parseAd())
	case token.ML:
		return nilIfFailedCommand(p, p.parseMl())
	case token.SEARCH:
		p.fail(newError(codeSearchNotFirst, p.current, nil))
		return nil
	}

	if p.current.Token == token.ID || p.current.Token.IsKeyword() {
		p.fail(newError(codeUnknownCommand, p.current, map[string]any{
			"Suggestion": closest(p.current.Value, commandNames),
		}, commandNames...))
		return nil
	}
	p.unexpected("command")
	return nil
}

// nilIfFailedCommand converts a typed command to a Command, returning a nil
// interface when parsing failed.
func nilIfFailedCommand[T ast.Command](p *Parser, cmd T) ast.Command {
	if p.err != nil {
		return nil
	}
	return cmd
}

// where logicalExpression
func (p *Parser) parseWhere() *ast.WhereCommand {
	start := p.current.Pos
	p.nextToken()
	if p.atSegmentEnd() {
		p.missing("where", "a filter expression", "expression")
		return nil
	}
	filter := p.parseLogicalExpression()
	if p.err != nil {
		return nil
	}
	return &ast.WhereCommand{Extent: p.extent(start), Filter: filter}
}

// fields [+|-] wcFieldList
func (p *Parser) parseFields() *ast.FieldsCommand {
	start := p.current.Pos
	p.nextToken()
	cmd := &ast.FieldsCommand{}
	if p.currentIs(token.PLUS) || p.currentIs(token.MINUS) {
		cmd.Sign = p.current.Value
		p.nextToken()
	}
	if !p.isWildcardStart() {
		p.missing("fields", "a field list", "field name")
		return nil
	}
	cmd.Fields = p.parseWcFieldList()
	if p.err != nil {
		return nil
	}
	cmd.Extent = p.extent(start)
	return cmd
}

// rename wcField AS wcField (',' wcField AS wcField)*
func (p *Parser) parseRename() *ast.RenameCommand {
	start := p.current.Pos
	p.nextToken()
	if !p.isWildcardStart() {
		p.missing("rename", "a field to rename", "field name")
		return nil
	}
	cmd := &ast.RenameCommand{}
	for {
		cstart := p.current.Pos
		from := p.parseWcQualifiedName()
		if p.err != nil || !p.expect(token.AS) {
			return nil
		}
		to := p.parseWcQualifiedName()
		if p.err != nil {
			return nil
		}
		cmd.Clauses = append(cmd.Clauses, &ast.RenameClause{Extent: p.extent(cstart), From: from, To: to})
		if !p.currentIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	cmd.Extent = p.extent(start)
	return cmd
}

// setting reports whether the current token is keyword t followed by "=",
// consuming both when it is.
func (p *Parser) setting(t token.Token) bool {
	if !p.currentIs(t) || !p.peekIs(token.EQUAL) {
		return false
	}
	p.nextToken()
	p.nextToken()
	return true
}

// dedup [int] fieldList [keepempty=bool] [consecutive=bool]
func (p *Parser) parseDedup() *ast.DedupCommand {
	start := p.current.Pos
	p.nextToken()
	cmd := &ast.DedupCommand{}
	if p.isIntegerStart() {
		cmd.Number = p.parseIntegerLiteral()
		if p.err != nil {
			return nil
		}
	}
	if !p.isIdentStart() {
		p.missing("dedup", "a field list", "field name")
		return nil
	}
	cmd.Fields = p.parseFieldList()
	if p.err != nil {
		return nil
	}

	for {
		item := p.current
		var target **ast.BooleanLiteral
		switch {
		case p.setting(token.KEEPEMPTY):
			target = &cmd.KeepEmpty
		case p.setting(token.CONSECUTIVE):
			target = &cmd.Consecutive
		default:
			cmd.Extent = p.extent(start)
			return cmd
		}
		if *target != nil {
			p.fail(newError(codeDuplicateSetting, item, nil))
			return nil
		}
		*target = p.parseBooleanLiteral()
		if p.err != nil {
			return nil
		}
	}
}

// sort sortField (',' sortField)*
func (p *Parser) parseSort() *ast.SortCommand {
	start := p.current.Pos
	p.nextToken()
	if p.atSegmentEnd() {
		p.missing("sort", "a sort field", "field name")
		return nil
	}
	cmd := &ast.SortCommand{}
	for {
		f := p.parseSortField()
		if p.err != nil {
			return nil
		}
		cmd.Fields = append(cmd.Fields, f)
		if !p.currentIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	cmd.Extent = p.extent(start)
	return cmd
}

// parseSortField parses [+|-] (field | auto(field) | str(field) | ip(field) | num(field)).
func (p *Parser) parseSortField() *ast.SortField {
	start := p.current.Pos
	f := &ast.SortField{}
	if p.currentIs(token.PLUS) || p.currentIs(token.MINUS) {
		f.Sign = p.current.Value
		p.nextToken()
	}
	switch p.current.Token {
	case token.AUTO, token.STR, token.IP, token.NUM:
		if p.peekIs(token.LT_PRTHS) {
			f.Cast = keywordValue(p.current)
			p.nextToken()
			p.nextToken()
			f.Field = p.parseFieldExpression()
			if p.err != nil || !p.expect(token.RT_PRTHS) {
				return nil
			}
			f.Extent = p.extent(start)
			return f
		}
	}
	if !p.isIdentStart() {
		p.unexpected("field name")
		return nil
	}
	f.Field = p.parseFieldExpression()
	if p.err != nil {
		return nil
	}
	f.Extent = p.extent(start)
	return f
}

// eval field = expression (',' field = expression)*
func (p *Parser) parseEval() *ast.EvalCommand {
	start := p.current.Pos
	p.nextToken()
	if !p.isIdentStart() {
		p.missing("eval", "an assignment", "field name")
		return nil
	}
	cmd := &ast.EvalCommand{}
	for {
		cstart := p.current.Pos
		field := p.parseFieldExpression()
		if p.err != nil || !p.expect(token.EQUAL) {
			return nil
		}
		expr := p.parseExpression()
		if p.err != nil {
			return nil
		}
		cmd.Clauses = append(cmd.Clauses, &ast.EvalClause{Extent: p.extent(cstart), Field: field, Expr: expr})
		if !p.currentIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	cmd.Extent = p.extent(start)
	return cmd
}

// head [int] [from int]
func (p *Parser) parseHead() *ast.HeadCommand {
	start := p.current.Pos
	p.nextToken()
	cmd := &ast.HeadCommand{}
	if p.isIntegerStart() {
		cmd.Number = p.parseIntegerLiteral()
		if p.err != nil {
			return nil
		}
	}
	if p.currentIs(token.FROM) {
		p.nextToken()
		cmd.From = p.parseIntegerLiteral()
		if p.err != nil {
			return nil
		}
	}
	cmd.Extent = p.extent(start)
	return cmd
}

// top [int] fieldList [by fieldList]
func (p *Parser) parseTop() *ast.TopCommand {
	start := p.current.Pos
	p.nextToken()
	cmd := &ast.TopCommand{}
	if p.isIntegerStart() {
		cmd.Number = p.parseIntegerLiteral()
		if p.err != nil {
			return nil
		}
	}
	cmd.Fields, cmd.By = p.parseFieldsAndBy("top")
	if p.err != nil {
		return nil
	}
	cmd.Extent = p.extent(start)
	return cmd
}

// rare fieldList [by fieldList]
func (p *Parser) parseRare() *ast.RareCommand {
	start := p.current.Pos
	p.nextToken()
	cmd := &ast.RareCommand{}
	cmd.Fields, cmd.By = p.parseFieldsAndBy("rare")
	if p.err != nil {
		return nil
	}
	cmd.Extent = p.extent(start)
	return cmd
}

func (p *Parser) parseFieldsAndBy(command string) ([]*ast.FieldExpression, *ast.ByClause) {
	if !p.isIdentStart() {
		p.missing(command, "a field list", "field name")
		return nil, nil
	}
	fields := p.parseFieldList()
	if p.err != nil {
		return nil, nil
	}
	if !p.currentIs(token.BY) {
		return fields, nil
	}
	start := p.current.Pos
	p.nextToken()
	by := p.parseFieldList()
	if p.err != nil {
		return nil, nil
	}
	return fields, &ast.ByClause{Extent: p.extent(start), Fields: by}
}

// grok expression stringLiteral
func (p *Parser) parseGrok() *ast.GrokCommand {
	start := p.current.Pos
	p.nextToken()
	source, pattern := p.parseSourceAndPattern("grok")
	if p.err != nil {
		return nil
	}
	return &ast.GrokCommand{Extent: p.extent(start), Source: source, Pattern: pattern}
}

// parse expression stringLiteral
func (p *Parser) parseParse() *ast.ParseCommand {
	start := p.current.Pos
	p.nextToken()
	source, pattern := p.parseSourceAndPattern("parse")
	if p.err != nil {
		return nil
	}
	return &ast.ParseCommand{Extent: p.extent(start), Source: source, Pattern: pattern}
}

func (p *Parser) parseSourceAndPattern(command string) (ast.Expression, *ast.StringLiteral) {
	if p.atSegmentEnd() {
		p.missing(command, "a source field", "expression")
		return nil, nil
	}
	source := p.parseExpression()
	if p.err != nil {
		return nil, nil
	}
	if !p.current.Token.IsString() {
		p.missing(command, "a pattern string", "string")
		return nil, nil
	}
	return source, p.parseStringLiteral()
}

// patterns (new_field=string | pattern=string)* expression
func (p *Parser) parsePatterns() *ast.PatternsCommand {
	start := p.current.Pos
	p.nextToken()
	cmd := &ast.PatternsCommand{}
	seen := make(map[token.Token]bool)
	for (p.currentIs(token.NEW_FIELD) || p.currentIs(token.PATTERN)) && p.peekIs(token.EQUAL) {
		if seen[p.current.Token] {
			p.fail(newError(codeDuplicateSetting, p.current, nil))
			return nil
		}
		seen[p.current.Token] = true
		pstart := p.current.Pos
		key := keywordValue(p.current)
		p.nextToken()
		p.nextToken()
		value := p.parseStringLiteral()
		if p.err != nil {
			return nil
		}
		cmd.Params = append(cmd.Params, &ast.PatternsParameter{Extent: p.extent(pstart), Key: key, Value: value})
	}
	if p.atSegmentEnd() {
		p.missing("patterns", "a source field", "new_field", "pattern", "expression")
		return nil
	}
	cmd.Source = p.parseExpression()
	if p.err != nil {
		return nil
	}
	cmd.Extent = p.extent(start)
	return cmd
}

// argKind is the literal type a command parameter takes.
type argKind int

const (
	argInteger argKind = iota
	argDecimal
	argString
)

var kmeansParams = map[token.Token]argKind{
	token.CENTROIDS:     argInteger,
	token.ITERATIONS:    argInteger,
	token.DISTANCE_TYPE: argString,
}

var adParams = map[token.Token]argKind{
	token.NUMBER_OF_TREES:         argInteger,
	token.SHINGLE_SIZE:            argInteger,
	token.SAMPLE_SIZE:             argInteger,
	token.OUTPUT_AFTER:            argInteger,
	token.TIME_DECAY:              argDecimal,
	token.ANOMALY_RATE:            argDecimal,
	token.CATEGORY_FIELD:          argString,
	token.TIME_FIELD:              argString,
	token.DATE_FORMAT:             argString,
	token.TIME_ZONE:               argString,
	token.TRAINING_DATA_SIZE:      argInteger,
	token.ANOMALY_SCORE_THRESHOLD: argDecimal,
}

// kmeans (centroids=int | iterations=int | distance_type=string)*
func (p *Parser) parseKmeans() *ast.KmeansCommand {
	start := p.current.Pos
	p.nextToken()
	params := p.parseCommandArgs("kmeans", kmeansParams)
	if p.err != nil {
		return nil
	}
	return &ast.KmeansCommand{Extent: p.extent(start), Params: params}
}

// ad (name=value)* over the anomaly detection parameters.
func (p *Parser) parseAd() *ast.AdCommand {
	start := p.current.Pos
	p.nextToken()
	params := p.parseCommandArgs("ad", adParams)
	if p.err != nil {
		return nil
	}
	return &ast.AdCommand{Extent: p.extent(start), Params: params}
}

// parseCommandArgs parses key=value pairs whose keys come from params.
func (p *Parser) parseCommandArgs(command string, params map[token.Token]argKind) []*ast.CommandArg {
	var args []*ast.CommandArg
	seen := make(map[token.Token]bool)
	for p.peekIs(token.EQUAL) {
		kind, ok := params[p.current.Token]
		if !ok {
			if p.isIdentStart() {
				names := make([]string, 0, len(params))
				for t := range params {
					names = append(names, strings.ToLower(t.String()))
				}
				sort.Strings(names)
				p.fail(newError(codeUnknownArgument, p.current, map[string]any{
					"Command":    command,
					"Suggestion": closest(p.current.Value, names),
				}))
				return nil
			}
			break
		}
		if seen[p.current.Token] {
			p.fail(newError(codeDuplicateSetting, p.current, nil))
			return nil
		}
		seen[p.current.Token] = true
		start := p.current.Pos
		key := keywordValue(p.current)
		p.nextToken()
		p.nextToken()

		var value ast.Literal
		switch kind {
		case argInteger:
			if lit := p.parseIntegerLiteral(); p.err == nil {
				value = lit
			}
		case argDecimal:
			value = p.parseDecimalOrInteger()
		case argString:
			if lit := p.parseStringLiteral(); p.err == nil {
				value = lit
			}
		}
		if p.err != nil {
			return nil
		}
		args = append(args, &ast.CommandArg{Extent: p.extent(start), Key: key, Value: value})
	}
	return args
}

// ml (ident=literal)*
func (p *Parser) parseMl() *ast.MlCommand {
	start := p.current.Pos
	p.nextToken()
	cmd := &ast.MlCommand{}
	seen := make(map[string]bool)
	for p.isIdentStart() && p.peekIs(token.EQUAL) {
		astart := p.current.Pos
		item := p.current
		key, _ := p.parseIdent()
		if seen[strings.ToLower(key)] {
			p.fail(newError(codeDuplicateSetting, item, nil))
			return nil
		}
		seen[strings.ToLower(key)] = true
		p.nextToken() // skip =
		value := p.parseLiteralValue()
		if p.err != nil {
			return nil
		}
		cmd.Args = append(cmd.Args, &ast.CommandArg{Extent: p.extent(astart), Key: key, Value: value})
	}
	cmd.Extent = p.extent(start)
	return cmd
}
