// Package lexer implements a lexer for the Pipe Processing Language.
package lexer

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/sqlc-dev/ppl/token"
)

// Lexer tokenizes PPL input. Positions are offsets into the input as given.
// Word values and unquoted string contents are NFC normalized so composed and
// decomposed spellings compare equal.
type Lexer struct {
	input string
	ch    rune // current character
	width int  // byte width of ch
	pos   token.Position
	eof   bool

	// State used to decide when words are scanned as table sources.
	segment   int         // index of the current pipe segment
	count     int         // tokens emitted in the current segment
	prev      token.Token // last emitted token
	prevPrev  token.Token
	lastTable bool // last word token was scanned as a table source
}

// Item represents a lexical token with its value and position.
type Item struct {
	Token  token.Token
	Value  string // source text, quotes included for string tokens; NFC for words
	Pos    token.Position
	End    token.Position // position just past the token
	Quoted bool           // true for quoted string tokens
}

// New creates a new Lexer over input.
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		pos:   token.Position{Offset: 0, Line: 1, Column: 1},
	}
	l.decode()
	return l
}

// NewReader creates a new Lexer from the full contents of r.
func NewReader(r io.Reader) (*Lexer, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(string(b)), nil
}

// Tokenize returns every token of input, ending with a single EOF item.
func Tokenize(input string) []Item {
	l := New(input)
	var items []Item
	for {
		item := l.NextToken()
		items = append(items, item)
		if item.Token == token.EOF {
			return items
		}
	}
}

// decode loads the rune at the current offset into ch.
func (l *Lexer) decode() {
	if l.pos.Offset >= len(l.input) {
		l.ch, l.width, l.eof = 0, 0, true
		return
	}
	l.ch, l.width = utf8.DecodeRuneInString(l.input[l.pos.Offset:])
	l.eof = false
}

func (l *Lexer) readChar() {
	if l.eof {
		return
	}
	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	l.pos.Offset += l.width
	l.decode()
}

func (l *Lexer) peekChar() rune {
	off := l.pos.Offset + l.width
	if l.eof || off >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[off:])
	return r
}

// reset moves the lexer back to a previously saved position.
func (l *Lexer) reset(pos token.Position) {
	l.pos = pos
	l.decode()
}

func (l *Lexer) skipWhitespace() {
	// Skip whitespace and BOM (byte order mark U+FEFF)
	for !l.eof && (unicode.IsSpace(l.ch) || l.ch == '\uFEFF') {
		l.readChar()
	}
}

func (l *Lexer) item(t token.Token, start token.Position) Item {
	return Item{
		Token: t,
		Value: l.input[start.Offset:l.pos.Offset],
		Pos:   start,
		End:   l.pos,
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Item {
	table := l.tableMode()
	item := l.scan(table)

	switch item.Token {
	case token.PIPE:
		l.segment++
		l.count = 0
	case token.COMMA, token.DOT:
		// a separator keeps lastTable so the next word continues the list
		l.count++
	default:
		l.count++
		l.lastTable = table && (item.Token == token.ID || item.Token.IsKeyword() ||
			item.Token == token.ID_DATE_SUFFIX || item.Token == token.CLUSTER || item.Quoted)
	}
	l.prevPrev = l.prev
	l.prev = item.Token
	return item
}

// tableMode reports whether the next word should be scanned as a table
// source: after "source=" or "index=" in the first segment, after a leading
// "describe", after a cluster prefix, and after a comma or dot that follows
// another table source word.
func (l *Lexer) tableMode() bool {
	if l.segment != 0 {
		return false
	}
	switch l.prev {
	case token.EQUAL:
		return l.prevPrev == token.SOURCE || l.prevPrev == token.INDEX
	case token.DESCRIBE:
		return l.count == 1
	case token.CLUSTER:
		return true
	case token.COMMA, token.DOT:
		return l.lastTable
	}
	return false
}

func (l *Lexer) scan(table bool) Item {
	l.skipWhitespace()

	pos := l.pos

	if l.eof {
		return Item{Token: token.EOF, Value: "", Pos: pos, End: pos}
	}

	if table && isTableStart(l.ch) {
		return l.readTableWord()
	}

	switch l.ch {
	case '|':
		l.readChar()
		return l.item(token.PIPE, pos)
	case ',':
		l.readChar()
		return l.item(token.COMMA, pos)
	case '.':
		if isDigit(l.peekChar()) {
			return l.readNumber()
		}
		l.readChar()
		return l.item(token.DOT, pos)
	case '=':
		l.readChar()
		return l.item(token.EQUAL, pos)
	case '!':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.item(token.NOT_EQUAL, pos)
		}
		return l.item(token.EXCLAMATION_SYMBOL, pos)
	case '<':
		l.readChar()
		switch l.ch {
		case '=':
			l.readChar()
			return l.item(token.NOT_GREATER, pos)
		case '>':
			l.readChar()
			return l.item(token.NOT_EQUAL, pos)
		}
		return l.item(token.LESS, pos)
	case '>':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.item(token.NOT_LESS, pos)
		}
		return l.item(token.GREATER, pos)
	case '+':
		l.readChar()
		return l.item(token.PLUS, pos)
	case '-':
		l.readChar()
		return l.item(token.MINUS, pos)
	case '*':
		l.readChar()
		return l.item(token.STAR, pos)
	case '/':
		l.readChar()
		return l.item(token.DIVIDE, pos)
	case '%':
		l.readChar()
		return l.item(token.MODULE, pos)
	case ':':
		l.readChar()
		return l.item(token.COLON, pos)
	case '(':
		l.readChar()
		return l.item(token.LT_PRTHS, pos)
	case ')':
		l.readChar()
		return l.item(token.RT_PRTHS, pos)
	case '[':
		l.readChar()
		return l.item(token.LT_SQR_PRTHS, pos)
	case ']':
		l.readChar()
		return l.item(token.RT_SQR_PRTHS, pos)
	case '{':
		l.readChar()
		return l.item(token.LT_CURLY, pos)
	case '}':
		l.readChar()
		return l.item(token.RT_CURLY, pos)
	case '~':
		l.readChar()
		return l.item(token.BIT_NOT_OP, pos)
	case '&':
		l.readChar()
		return l.item(token.BIT_AND_OP, pos)
	case '^':
		l.readChar()
		return l.item(token.BIT_XOR_OP, pos)
	case '"':
		return l.readString('"', token.DQUOTA_STRING, token.DOUBLE_QUOTE)
	case '\'':
		return l.readString('\'', token.SQUOTA_STRING, token.SINGLE_QUOTE)
	case '`':
		return l.readString('`', token.BQUOTA_STRING, token.BACKTICK)
	}

	if isDigit(l.ch) {
		return l.readNumber()
	}
	if isIdentStart(l.ch) {
		return l.readIdentifier()
	}

	l.readChar()
	return l.item(token.ERROR_RECOGNITION, pos)
}

// readString scans a quoted string. Backslash escapes the next character and
// a doubled quote stands for itself. Without a closing quote only the opening
// quote is returned and scanning resumes after it.
func (l *Lexer) readString(quote rune, tok, unterminated token.Token) Item {
	pos := l.pos
	l.readChar() // skip opening quote
	for !l.eof {
		switch l.ch {
		case '\\':
			l.readChar()
			if !l.eof {
				l.readChar()
			}
			continue
		case quote:
			l.readChar()
			if l.ch == quote && !l.eof {
				l.readChar()
				continue
			}
			item := l.item(tok, pos)
			item.Quoted = true
			return item
		}
		l.readChar()
	}

	l.reset(pos)
	l.readChar()
	return l.item(unterminated, pos)
}

// readNumber scans an integer or decimal literal. Signs belong to the grammar.
func (l *Lexer) readNumber() Item {
	pos := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
		return l.item(token.DECIMAL_LITERAL, pos)
	}
	return l.item(token.INTEGER_LITERAL, pos)
}

func (l *Lexer) readIdentifier() Item {
	pos := l.pos
	for isIdentChar(l.ch) {
		l.readChar()
	}
	item := l.word(token.ID, pos)
	item.Token = token.Lookup(strings.ToUpper(item.Value))
	return item
}

// word is item for identifier-like tokens, with the value NFC normalized.
func (l *Lexer) word(t token.Token, start token.Position) Item {
	item := l.item(t, start)
	item.Value = norm.NFC.String(item.Value)
	return item
}

// readTableWord scans an index name such as "logs", "logs-*",
// "logs-2021.01.11" or a "remote:" cluster prefix.
func (l *Lexer) readTableWord() Item {
	pos := l.pos
	pattern := false
	for isTableChar(l.ch) {
		if l.ch == '-' || l.ch == '*' {
			pattern = true
		}
		l.readChar()
	}
	// Date suffix: one or more ".[*0-9]+" groups.
	for l.ch == '.' && isSuffixChar(l.peekChar()) {
		pattern = true
		l.readChar()
		for isSuffixChar(l.ch) {
			l.readChar()
		}
	}

	if l.ch == ':' {
		l.readChar()
		return l.word(token.CLUSTER, pos)
	}

	item := l.word(token.ID, pos)
	if pattern {
		item.Token = token.ID_DATE_SUFFIX
		return item
	}
	item.Token = token.Lookup(strings.ToUpper(item.Value))
	return item
}

// Unquote returns the contents of a quoted token with the surrounding quotes
// removed. A doubled quote or a backslash-escaped quote stands for a single
// quote character; other escapes are kept as written. Values of unquoted
// tokens are returned unchanged.
func (i Item) Unquote() string {
	if !i.Quoted {
		return i.Value
	}
	return norm.NFC.String(Unquote(i.Value))
}

// Unquote removes the enclosing quotes of s if it is wrapped in matching
// single, double or back quotes.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	q := s[0]
	if (q != '"' && q != '\'' && q != '`') || s[len(s)-1] != q {
		return s
	}
	body := s[1 : len(s)-1]
	if strings.IndexByte(body, q) < 0 {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if i+1 < len(body) && body[i+1] == q && (c == q || c == '\\') {
			b.WriteByte(q)
			i++
			continue
		}
		if c == '\\' && i+1 < len(body) {
			b.WriteByte(c)
			b.WriteByte(body[i+1])
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '@' || unicode.IsLetter(ch)
}

// isIdentChar accepts combining marks so decomposed letters stay in one word.
func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch) || unicode.In(ch, unicode.Mn, unicode.Mc)
}

func isTableStart(ch rune) bool {
	return isIdentStart(ch) || ch == '*'
}

func isTableChar(ch rune) bool {
	return isIdentChar(ch) || ch == '-' || ch == '*'
}

func isSuffixChar(ch rune) bool {
	return isDigit(ch) || ch == '*'
}
