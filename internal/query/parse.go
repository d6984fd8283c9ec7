package query

import "strings"

// Parse reads a serialized query back into its expression tree. For any
// compiled query q, Parse(q.String()) yields a structurally identical
// tree (the round-trip invariant).
//
// Grammar, loosest binding first:
//
//	expr    := andExpr ( "OR" andExpr )*
//	andExpr := unary ( "AND" unary )*
//	unary   := "NOT" unary | "(" expr ")" | term
//	term    := phrase | site:domain | author:"name" | token
func Parse(text string) (*Query, error) {
	lx := &lexer{input: text}
	toks, err := lx.run()
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, &ParseError{Pos: p.peek().pos, Msg: "unexpected trailing input"}
	}
	return &Query{root: root}, nil
}

type tokenType int

const (
	tokEOF tokenType = iota
	tokLParen
	tokRParen
	tokAnd
	tokOr
	tokNot
	tokWord   // bare token
	tokPhrase // quoted literal
	tokSite   // site:domain
	tokAuthor // author:"name"
)

type token struct {
	typ tokenType
	val string
	pos int
}

type lexer struct {
	input string
	pos   int
}

func (lx *lexer) run() ([]token, error) {
	var toks []token
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.typ == tokEOF {
			return toks, nil
		}
	}
}

func (lx *lexer) next() (token, error) {
	for lx.pos < len(lx.input) && lx.input[lx.pos] == ' ' {
		lx.pos++
	}
	start := lx.pos
	if lx.pos >= len(lx.input) {
		return token{typ: tokEOF, pos: start}, nil
	}

	switch lx.input[lx.pos] {
	case '(':
		lx.pos++
		return token{typ: tokLParen, pos: start}, nil
	case ')':
		lx.pos++
		return token{typ: tokRParen, pos: start}, nil
	case '"':
		val, err := lx.quoted()
		if err != nil {
			return token{}, err
		}
		return token{typ: tokPhrase, val: val, pos: start}, nil
	}

	word := lx.word()
	switch {
	case word == "AND":
		return token{typ: tokAnd, pos: start}, nil
	case word == "OR":
		return token{typ: tokOr, pos: start}, nil
	case word == "NOT":
		return token{typ: tokNot, pos: start}, nil
	case strings.HasPrefix(word, "site:") && len(word) > len("site:"):
		return token{typ: tokSite, val: word[len("site:"):], pos: start}, nil
	case word == "author:" && lx.pos < len(lx.input) && lx.input[lx.pos] == '"':
		val, err := lx.quoted()
		if err != nil {
			return token{}, err
		}
		return token{typ: tokAuthor, val: val, pos: start}, nil
	case word == "":
		return token{}, &ParseError{Pos: start, Msg: "unexpected character"}
	}
	return token{typ: tokWord, val: word, pos: start}, nil
}

// word reads characters up to whitespace, parentheses, or a quote.
func (lx *lexer) word() string {
	start := lx.pos
	for lx.pos < len(lx.input) {
		switch lx.input[lx.pos] {
		case ' ', '(', ')', '"':
			return lx.input[start:lx.pos]
		}
		lx.pos++
	}
	return lx.input[start:]
}

// quoted reads a quoted literal, resolving backslash escapes.
func (lx *lexer) quoted() (string, error) {
	open := lx.pos
	lx.pos++ // consume opening quote
	var sb strings.Builder
	for lx.pos < len(lx.input) {
		switch lx.input[lx.pos] {
		case '"':
			lx.pos++
			return sb.String(), nil
		case '\\':
			lx.pos++
			if lx.pos >= len(lx.input) {
				return "", &ParseError{Pos: open, Msg: "unterminated quote"}
			}
			sb.WriteByte(lx.input[lx.pos])
			lx.pos++
		default:
			sb.WriteByte(lx.input[lx.pos])
			lx.pos++
		}
	}
	return "", &ParseError{Pos: open, Msg: "unterminated quote"}
}

type parser struct {
	toks []token
	idx  int
}

func (p *parser) peek() token { return p.toks[p.idx] }

func (p *parser) advance() token {
	tok := p.toks[p.idx]
	if tok.typ != tokEOF {
		p.idx++
	}
	return tok
}

func (p *parser) eof() bool { return p.peek().typ == tokEOF }

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().typ == tokOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().typ == tokAnd {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &And{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	switch tok := p.peek(); tok.typ {
	case tokNot:
		p.advance()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Not{X: child}, nil
	case tokLParen:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek().typ != tokRParen {
			return nil, &ParseError{Pos: p.peek().pos, Msg: "missing closing parenthesis"}
		}
		p.advance()
		return inner, nil
	case tokWord:
		p.advance()
		return &Term{Kind: TermToken, Value: tok.val}, nil
	case tokPhrase:
		p.advance()
		return &Term{Kind: TermPhrase, Value: tok.val}, nil
	case tokSite:
		p.advance()
		return &Term{Kind: TermSite, Value: tok.val}, nil
	case tokAuthor:
		p.advance()
		return &Term{Kind: TermAuthor, Value: tok.val}, nil
	default:
		return nil, &ParseError{Pos: tok.pos, Msg: "expected a term"}
	}
}
