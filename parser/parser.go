// Package parser implements a parser for the Pipe Processing Language.
package parser

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/lexer"
	"github.com/sqlc-dev/ppl/token"
)

// Parser parses a single PPL query. A Parser must not be reused.
type Parser struct {
	cfg   Config
	log   *log.Entry
	input string

	tokens  []lexer.Item
	pos     int
	current lexer.Item
	peek    lexer.Item

	depth int
	err   *ParseError

	// memo caches value expression results by start token index.
	memo map[int]memoEntry

	// stopAtSource ends an implicit conjunction before "source=" or
	// "index=" while parsing the filter of "search <filter> source=t".
	stopAtSource bool
}

type memoEntry struct {
	expr ast.Expression
	next int
	err  *ParseError
}

// savepoint is a parser position used to rewind after a failed alternative.
type savepoint struct {
	pos int
	err *ParseError
}

// New creates a new Parser for query.
func New(query string, opts ...Option) *Parser {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{
		cfg:   cfg,
		log:   cfg.Logger,
		input: query,
		memo:  make(map[int]memoEntry),
	}
}

// Parse parses a PPL query.
func Parse(ctx context.Context, query string, opts ...Option) (*ast.Root, error) {
	return New(query, opts...).ParseRoot(ctx)
}

// ParseReader parses a PPL query read from r.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*ast.Root, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(ctx, string(b), opts...)
}

// ParseRoot parses the whole query. The returned error is a *ParseError
// unless ctx was cancelled.
func (p *Parser) ParseRoot(ctx context.Context) (*ast.Root, error) {
	if limit := p.cfg.MaxQueryLength; limit > 0 && len(p.input) > limit {
		whole := lexer.Item{
			Token: token.ILLEGAL,
			Pos:   token.Position{Offset: 0, Line: 1, Column: 1},
			End:   token.Position{Offset: len(p.input), Line: 1, Column: 1},
		}
		err := newError(codeQueryTooLong, whole, map[string]any{
			"Length": len(p.input),
			"Max":    limit,
			"Found":  "query",
		})
		p.debugFailure(err)
		return nil, err
	}

	p.tokens = lexer.Tokenize(p.input)
	p.reset(savepoint{})

	root := &ast.Root{}
	root.Position = p.current.Pos
	if !p.currentIs(token.EOF) {
		root.Statement = p.parseQueryStatement(ctx)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p.err == nil && !p.currentIs(token.EOF) {
			p.unexpected("|", "end of query")
		}
		if p.err != nil {
			p.debugFailure(p.err)
			return nil, p.err
		}
	}
	root.EndPosition = p.current.End
	return root, nil
}

func (p *Parser) parseQueryStatement(ctx context.Context) *ast.QueryStatement {
	stmt := &ast.QueryStatement{}
	stmt.Position = p.current.Pos

	stmt.Source = p.parseEntryCommand()
	if p.err != nil {
		return nil
	}

	for p.currentIs(token.PIPE) {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		p.nextToken() // skip |
		cmd := p.parseCommand()
		if p.err != nil {
			return nil
		}
		stmt.Commands = append(stmt.Commands, cmd)
	}

	stmt.EndPosition = p.prevEnd()
	return stmt
}

// -----------------------------------------------------------------------------
// Token navigation

func (p *Parser) item(i int) lexer.Item {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1] // EOF
}

func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.current = p.item(p.pos)
	p.peek = p.item(p.pos + 1)
}

func (p *Parser) currentIs(t token.Token) bool {
	return p.current.Token == t
}

func (p *Parser) peekIs(t token.Token) bool {
	return p.peek.Token == t
}

func (p *Parser) expect(t token.Token) bool {
	if p.currentIs(t) {
		p.nextToken()
		return true
	}
	p.unexpected(t.String())
	return false
}

// prevEnd returns the end of the last consumed token.
func (p *Parser) prevEnd() token.Position {
	if p.pos == 0 {
		return p.current.Pos
	}
	return p.tokens[p.pos-1].End
}

func (p *Parser) extent(start token.Position) ast.Extent {
	return ast.Extent{Position: start, EndPosition: p.prevEnd()}
}

func (p *Parser) mark() savepoint {
	return savepoint{pos: p.pos, err: p.err}
}

func (p *Parser) reset(m savepoint) {
	p.pos = m.pos
	p.err = m.err
	p.current = p.item(p.pos)
	p.peek = p.item(p.pos + 1)
}

// -----------------------------------------------------------------------------
// Errors and limits

// fail records err unless an error is already pending.
func (p *Parser) fail(err *ParseError) {
	if p.err == nil {
		p.err = err
	}
}

// unexpected reports the current token as not matching any of expected.
func (p *Parser) unexpected(expected ...string) {
	switch p.current.Token {
	case token.ERROR_RECOGNITION:
		p.fail(newError(codeUnrecognized, p.current, nil))
	case token.SINGLE_QUOTE, token.DOUBLE_QUOTE, token.BACKTICK:
		p.fail(newError(codeUnterminated, p.current, nil))
	default:
		p.fail(newError(codeUnexpected, p.current, nil, expected...))
	}
}

// missing reports that command requires what at the current token.
func (p *Parser) missing(command, what string, expected ...string) {
	if p.current.Token == token.ERROR_RECOGNITION || p.current.Token == token.SINGLE_QUOTE ||
		p.current.Token == token.DOUBLE_QUOTE || p.current.Token == token.BACKTICK {
		p.unexpected(expected...)
		return
	}
	p.fail(newError(codeMissingElement, p.current, map[string]any{
		"Command": command,
		"What":    what,
	}, expected...))
}

// enter increments the nesting depth; it reports false once the limit is
// exceeded. Every successful enter must be paired with leave.
func (p *Parser) enter() bool {
	p.depth++
	if limit := p.cfg.MaxDepth; limit > 0 && p.depth > limit {
		p.depth--
		p.fail(newError(codeTooDeep, p.current, map[string]any{"Max": limit}))
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// limited reports whether the pending error is a limit error, which no
// alternative may recover from.
func (p *Parser) limited() bool {
	return p.err != nil && p.err.Kind == KindLimit
}
