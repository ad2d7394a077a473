package parser

import (
	"strconv"
	"strings"

	"github.com/hyperswine/sol/lexer"
	"github.com/hyperswine/sol/solerr"
)

// Parser is a recursive-descent parser over an already-tokenized Sol
// source (spec §4.2). Tokenizing up front lets assignment detection
// scan ahead for an '=' and backtrack to a plain expression statement
// without the parser itself needing a token-pushback mechanism.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New builds a Parser over tokens, which must end with an EOF token
// (as lexer.Lexer.Tokenize always produces).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() lexer.Token { return p.tokens[p.pos] }

func (p *Parser) advance() lexer.Token {
	t := p.tokens[p.pos]
	if t.Type != lexer.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) expect(tt lexer.TokenType, what string) (lexer.Token, *solerr.Error) {
	if p.peek().Type != tt {
		return lexer.Token{}, solerr.New(solerr.ParseError, p.peek().Line, "expected %s, got %s", what, p.peek().Type)
	}
	return p.advance(), nil
}

// ParseProgram parses a full statement sequence up to EOF.
func (p *Parser) ParseProgram() (*Program, *solerr.Error) {
	prog := &Program{}
	for p.peek().Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// parseStatement implements `statement := assignment | expression '.'`.
// Assignment and a bare application statement share an arbitrarily
// long IDENT prefix ("f a b = body." vs "f a b."), so an assignment is
// attempted first via unbounded lookahead and only committed to if an
// '=' is actually found before any other token.
func (p *Parser) parseStatement() (Expression, *solerr.Error) {
	if assign, matched, err := p.tryParseAssignment(); matched {
		return assign, err
	}
	line := p.peek().Line
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.PERIOD, "'.' to terminate statement"); err != nil {
		return nil, err
	}
	return &ExpressionStatement{Expr: expr, base: base{line}}, nil
}

// tryParseAssignment scans forward from the current position over a
// run of IDENT tokens. If that run is immediately followed by '=', it
// commits: the tokens are consumed, the right-hand expression and
// terminating period are parsed, and matched is true regardless of
// whether a later error occurs. If no '=' follows the IDENT run, the
// cursor is left untouched and matched is false so the caller falls
// through to ordinary expression-statement parsing.
func (p *Parser) tryParseAssignment() (Expression, bool, *solerr.Error) {
	if p.peek().Type != lexer.IDENT {
		return nil, false, nil
	}
	name := p.peek().Literal
	line := p.peek().Line

	i := p.pos + 1
	var params []string
	for p.tokens[i].Type == lexer.IDENT {
		params = append(params, p.tokens[i].Literal)
		i++
	}
	if p.tokens[i].Type != lexer.ASSIGN {
		return nil, false, nil
	}

	p.pos = i + 1 // consume name, params, and '='

	value, err := p.parseExpression()
	if err != nil {
		return nil, true, err
	}
	if _, err := p.expect(lexer.PERIOD, "'.' to terminate statement"); err != nil {
		return nil, true, err
	}

	if len(params) == 0 {
		return &ValueAssignment{Name: name, Value: value, base: base{line}}, true, nil
	}
	return &FunctionAssignment{Name: name, Params: params, Body: value, base: base{line}}, true, nil
}

// parseExpression implements `expression := ifexpr | pipeline`.
func (p *Parser) parseExpression() (Expression, *solerr.Error) {
	if p.peek().Type == lexer.IF {
		return p.parseIfExpr()
	}
	return p.parsePipeline()
}

func (p *Parser) parseIfExpr() (Expression, *solerr.Error) {
	tok, _ := p.expect(lexer.IF, "'if'")
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.THEN, "'then'"); err != nil {
		return nil, err
	}
	thenExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ELSE, "'else'"); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &IfExpression{Cond: cond, Then: thenExpr, Else: elseExpr, base: base{tok.Line}}, nil
}

// parsePipeline implements `pipeline := infix { '|>' infix }`,
// left-associated into a single PipelineExpression when more than one
// stage is present.
func (p *Parser) parsePipeline() (Expression, *solerr.Error) {
	first, err := p.parseInfix()
	if err != nil {
		return nil, err
	}
	stages := []Expression{first}
	for p.peek().Type == lexer.PIPE {
		p.advance()
		next, err := p.parseInfix()
		if err != nil {
			return nil, err
		}
		stages = append(stages, next)
	}
	if len(stages) == 1 {
		return first, nil
	}
	return &PipelineExpression{Stages: stages, base: base{first.Line()}}, nil
}

// infixOperatorTypes holds the comparison operators that bind as true
// infix operators (spec §8 scenario 5's `x == 1`) rather than as a
// bare prefix-callable value collected by an ongoing application
// (`fold + 0`, `(> 5)`). Arithmetic operators stay out of this set:
// they remain atom-starts inside parseApplication's continuation loop
// so a builtin like `fold` can still take one as a plain argument.
var infixOperatorTypes = map[lexer.TokenType]bool{
	lexer.EQEQ: true,
	lexer.LT:   true,
	lexer.GT:   true,
}

// parseInfix implements `infix := application [ ('==' | '<' | '>') application ]`.
// Because EQEQ/LT/GT are not atom-starts (see atomStartTypes), a bare
// comparison operator never gets swallowed as a trailing argument of
// the preceding application; once that application stops, a leftover
// comparison operator here rewrites `left OP right` into the same
// `Application{Callee: OperatorRef(OP), Args: [left, right]}` shape
// the prefix form `== left right` already produces.
func (p *Parser) parseInfix() (Expression, *solerr.Error) {
	left, err := p.parseApplication()
	if err != nil {
		return nil, err
	}
	if !infixOperatorTypes[p.peek().Type] {
		return left, nil
	}
	opTok := p.advance()
	right, err := p.parseApplication()
	if err != nil {
		return nil, err
	}
	op := &OperatorRef{Symbol: string(opTok.Type), base: base{opTok.Line}}
	return &ApplicationExpression{Callee: op, Args: []Expression{left, right}, base: base{left.Line()}}, nil
}

var atomStartTypes = map[lexer.TokenType]bool{
	lexer.NUMBER:        true,
	lexer.STRING_SINGLE: true,
	lexer.STRING_DOUBLE: true,
	lexer.IDENT:         true,
	lexer.PLUS:          true,
	lexer.MINUS:         true,
	lexer.STAR:          true,
	lexer.SLASH:         true,
	lexer.PERCENT:       true,
	lexer.LPAREN:        true,
	lexer.LBRACKET:      true,
	lexer.LBRACE:        true,
}

// parseApplication implements `application := atom { atom }`: the
// first atom is the callee, and the parser greedily collects further
// atoms as arguments until a token that cannot start an atom is seen
// (spec §4.2, §9).
func (p *Parser) parseApplication() (Expression, *solerr.Error) {
	callee, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	var args []Expression
	for atomStartTypes[p.peek().Type] {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return callee, nil
	}
	return &ApplicationExpression{Callee: callee, Args: args, base: base{callee.Line()}}, nil
}

// parseAtom implements the `atom` production.
func (p *Parser) parseAtom() (Expression, *solerr.Error) {
	tok := p.peek()

	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		return buildNumber(tok, false)

	case lexer.STRING_SINGLE:
		p.advance()
		return &StringLiteral{Value: tok.Literal, base: base{tok.Line}}, nil

	case lexer.STRING_DOUBLE:
		p.advance()
		return p.parseInterpolatedString(tok)

	case lexer.IDENT:
		return p.parseIdentOrPath()

	case lexer.PLUS, lexer.STAR, lexer.SLASH, lexer.PERCENT, lexer.EQEQ, lexer.LT, lexer.GT:
		p.advance()
		return &OperatorRef{Symbol: string(tok.Type), base: base{tok.Line}}, nil

	case lexer.MINUS:
		return p.parseMinus()

	case lexer.LPAREN:
		return p.parseGroup()

	case lexer.LBRACKET:
		return p.parseArrayLiteral()

	case lexer.LBRACE:
		return p.parseDictLiteral()
	}

	return nil, solerr.New(solerr.ParseError, tok.Line, "unexpected token %s", tok.Type)
}

// parseMinus resolves the sign/operator ambiguity (spec §4.1, §4.2): a
// '-' immediately adjacent to a following NUMBER with no intervening
// whitespace is a negative literal; otherwise it is the subtraction
// builtin used as a value, exactly like the other operator symbols.
func (p *Parser) parseMinus() (Expression, *solerr.Error) {
	minus := p.peek()
	if p.pos+1 < len(p.tokens) {
		next := p.tokens[p.pos+1]
		if next.Type == lexer.NUMBER && minus.AdjacentTo(next) {
			p.advance()
			numTok := p.peek()
			p.advance()
			return buildNumber(numTok, true)
		}
	}
	p.advance()
	return &OperatorRef{Symbol: "-", base: base{minus.Line}}, nil
}

func buildNumber(tok lexer.Token, negative bool) (Expression, *solerr.Error) {
	if strings.ContainsRune(tok.Literal, '.') {
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, solerr.New(solerr.ParseError, tok.Line, "invalid number literal %q", tok.Literal)
		}
		if negative {
			f = -f
		}
		return &NumberLiteral{F: f, base: base{tok.Line}}, nil
	}
	i, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, solerr.New(solerr.ParseError, tok.Line, "invalid number literal %q", tok.Literal)
	}
	if negative {
		i = -i
	}
	return &NumberLiteral{IsInt: true, I: i, base: base{tok.Line}}, nil
}

// parseIdentOrPath implements `path := IDENT { '|' ( IDENT | NUMBER |
// '(' expression ')' ) }`, collapsing to a plain Identifier when no
// '|' component follows.
func (p *Parser) parseIdentOrPath() (Expression, *solerr.Error) {
	tok := p.peek()
	p.advance()
	ident := &Identifier{Name: tok.Literal, base: base{tok.Line}}
	if p.peek().Type != lexer.BAR {
		return ident, nil
	}

	var components []PathComponent
	for p.peek().Type == lexer.BAR {
		p.advance()
		ctok := p.peek()
		switch ctok.Type {
		case lexer.IDENT:
			p.advance()
			components = append(components, PathComponent{Kind: PathIdent, Name: ctok.Literal})

		case lexer.NUMBER:
			p.advance()
			n, err := strconv.ParseInt(ctok.Literal, 10, 64)
			if err != nil {
				return nil, solerr.New(solerr.ParseError, ctok.Line, "path index must be a whole number, got %q", ctok.Literal)
			}
			components = append(components, PathComponent{Kind: PathNumber, N: n})

		case lexer.LPAREN:
			p.advance()
			inner, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RPAREN, "')' to close path component"); err != nil {
				return nil, err
			}
			components = append(components, PathComponent{Kind: PathExprComponent, Expr: inner})

		default:
			return nil, solerr.New(solerr.ParseError, ctok.Line, "expected path component after '|', got %s", ctok.Type)
		}
	}
	return &PathExpression{Base: ident, Components: components, base: base{tok.Line}}, nil
}

func (p *Parser) parseGroup() (Expression, *solerr.Error) {
	open := p.peek()
	p.advance()
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')' to close group"); err != nil {
		return nil, err
	}
	return &GroupExpression{Inner: inner, base: base{open.Line}}, nil
}

func (p *Parser) parseArrayLiteral() (Expression, *solerr.Error) {
	open := p.peek()
	p.advance()
	var elems []Expression
	if p.peek().Type != lexer.RBRACKET {
		for {
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if p.peek().Type == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(lexer.RBRACKET, "']' to close array literal"); err != nil {
		return nil, err
	}
	return &ArrayLiteral{Elements: elems, base: base{open.Line}}, nil
}

// parseDictLiteral implements `pair := (STRING | IDENT) ':' expression`.
// A bareword IDENT key is treated the same as a single-quoted string
// key (spec §9's "dict key rendering").
func (p *Parser) parseDictLiteral() (Expression, *solerr.Error) {
	open := p.peek()
	p.advance()
	var pairs []DictPair
	if p.peek().Type != lexer.RBRACE {
		for {
			keyTok := p.peek()
			var key string
			switch keyTok.Type {
			case lexer.STRING_SINGLE, lexer.STRING_DOUBLE, lexer.IDENT:
				key = keyTok.Literal
				p.advance()
			default:
				return nil, solerr.New(solerr.ParseError, keyTok.Line, "expected dict key, got %s", keyTok.Type)
			}
			if _, err := p.expect(lexer.COLON, "':' after dict key"); err != nil {
				return nil, err
			}
			val, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, DictPair{Key: key, Value: val})
			if p.peek().Type == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(lexer.RBRACE, "'}' to close dict literal"); err != nil {
		return nil, err
	}
	return &DictLiteral{Pairs: pairs, base: base{open.Line}}, nil
}

// parseInterpolatedString splits a double-quoted literal's raw text
// into alternating text/slot fragments (spec §4.5, §9). A slot holds
// only a bare identifier and optional `|`-path components; nested
// braces or any other syntax inside `{...}` is a parse error localized
// to the slot rather than a lexer-level failure, since the lexer has
// no way to know where a slot starts without re-scanning the string.
func (p *Parser) parseInterpolatedString(tok lexer.Token) (Expression, *solerr.Error) {
	raw := tok.Literal
	var frags []StringFragment
	var buf strings.Builder

	i := 0
	for i < len(raw) {
		if raw[i] != '{' {
			buf.WriteByte(raw[i])
			i++
			continue
		}
		if buf.Len() > 0 {
			frags = append(frags, StringFragment{Text: buf.String()})
			buf.Reset()
		}
		end := strings.IndexByte(raw[i+1:], '}')
		if end == -1 {
			return nil, solerr.New(solerr.ParseError, tok.Line, "unterminated interpolation slot in string")
		}
		inner := raw[i+1 : i+1+end]
		if strings.ContainsRune(inner, '{') {
			return nil, solerr.New(solerr.ParseError, tok.Line, "nested braces are not allowed in an interpolation slot")
		}
		slot, err := parseSlot(inner, tok.Line)
		if err != nil {
			return nil, err
		}
		frags = append(frags, StringFragment{Slot: slot, Raw: inner})
		i = i + 1 + end + 1
	}
	if buf.Len() > 0 {
		frags = append(frags, StringFragment{Text: buf.String()})
	}
	return &InterpolatedString{Fragments: frags, base: base{tok.Line}}, nil
}

// parseSlot parses the contents of one `{...}` interpolation slot:
// a bare identifier with optional `|`-path components, and nothing
// else (spec §9). It re-lexes the slot text in isolation so the same
// path grammar used for top-level path atoms governs slots too.
func parseSlot(text string, line int) (*PathExpression, *solerr.Error) {
	toks, lexErr := lexer.New(text).Tokenize()
	if lexErr != nil {
		return nil, solerr.New(solerr.ParseError, line, "invalid interpolation slot: %s", lexErr.Message)
	}
	sub := New(toks)
	if sub.peek().Type != lexer.IDENT {
		return nil, solerr.New(solerr.ParseError, line, "interpolation slot must start with an identifier")
	}
	expr, err := sub.parseIdentOrPath()
	if err != nil {
		return nil, solerr.New(solerr.ParseError, line, "invalid interpolation slot: %s", err.Message)
	}
	if sub.peek().Type != lexer.EOF {
		return nil, solerr.New(solerr.ParseError, line, "unexpected content in interpolation slot")
	}
	switch e := expr.(type) {
	case *Identifier:
		return &PathExpression{Base: e, base: base{line}}, nil
	case *PathExpression:
		return e, nil
	}
	return nil, solerr.New(solerr.ParseError, line, "invalid interpolation slot")
}
