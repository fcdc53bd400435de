// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

// parser is a simple recursive-descent parser with one token of lookahead.
type parser struct {
	src string
	lex *lexer
	tok Token
}

// Parse tokenizes and parses HDL chip source, returning its AST or a
// *ParseError describing the first syntax violation encountered.
func Parse(src string) (*Chip, error) {
	p := &parser{src: src, lex: newLexer(src)}
	p.next()
	c, err := p.parseChip()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != EOF {
		return nil, p.errorf("unexpected %s after chip body", p.tok.Type)
	}
	return c, nil
}

func (p *parser) next() {
	p.tok = p.lex.Next()
}

func (p *parser) errorf(format string, args ...interface{}) *ParseError {
	return newParseError(p.src, p.tok.Pos, sprintf(format, args...))
}

func (p *parser) expect(tt TokenType) (Token, error) {
	if p.tok.Type != tt {
		return Token{}, p.errorf("expected %s, found %s", tt, describe(p.tok))
	}
	t := p.tok
	p.next()
	return t, nil
}

func describe(t Token) string {
	if t.Type == Ident || t.Type == Int {
		return t.Type.String() + " " + quote(t.Lit)
	}
	return t.Type.String()
}

func (p *parser) parseChip() (*Chip, error) {
	kw, err := p.expect(KwChip)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LBrace); err != nil {
		return nil, err
	}
	c := &Chip{Name: name.Lit, Pos: kw.Pos}
	seenParts := false
	for p.tok.Type != RBrace {
		switch p.tok.Type {
		case KwIn:
			if len(c.Inputs) > 0 {
				return nil, p.errorf("duplicate IN section")
			}
			p.next()
			pins, err := p.parsePinDecls()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(Semi); err != nil {
				return nil, err
			}
			c.Inputs = pins
		case KwOut:
			if len(c.Outputs) > 0 {
				return nil, p.errorf("duplicate OUT section")
			}
			p.next()
			pins, err := p.parsePinDecls()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(Semi); err != nil {
				return nil, err
			}
			c.Outputs = pins
		case KwParts:
			if seenParts {
				return nil, p.errorf("duplicate PARTS section")
			}
			seenParts = true
			p.next()
			if _, err := p.expect(Colon); err != nil {
				return nil, err
			}
			for p.tok.Type == Ident {
				call, err := p.parsePart()
				if err != nil {
					return nil, err
				}
				c.Parts = append(c.Parts, call)
			}
		case EOF:
			return nil, p.errorf("unexpected end of input, expected '}'")
		default:
			return nil, p.errorf("expected IN, OUT, PARTS or '}', found %s", describe(p.tok))
		}
	}
	if _, err := p.expect(RBrace); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *parser) parsePinDecls() ([]PinSpec, error) {
	var out []PinSpec
	for {
		name, err := p.expect(Ident)
		if err != nil {
			return nil, err
		}
		size := 1
		if p.tok.Type == LBracket {
			p.next()
			n, err := p.expect(Int)
			if err != nil {
				return nil, err
			}
			if n.Int < 1 || n.Int > 16 {
				return nil, newParseError(p.src, n.Pos, "bus size must be between 1 and 16")
			}
			size = n.Int
			if _, err := p.expect(RBracket); err != nil {
				return nil, err
			}
		}
		out = append(out, PinSpec{Name: name.Lit, Size: size})
		if p.tok.Type != Comma {
			break
		}
		p.next()
	}
	return out, nil
}

func (p *parser) parsePart() (ChipCall, error) {
	name, err := p.expect(Ident)
	if err != nil {
		return ChipCall{}, err
	}
	if _, err := p.expect(LParen); err != nil {
		return ChipCall{}, err
	}
	call := ChipCall{Name: name.Lit, Pos: name.Pos}
	if p.tok.Type != RParen {
		for {
			arg, err := p.parseArgument()
			if err != nil {
				return ChipCall{}, err
			}
			call.Arguments = append(call.Arguments, arg)
			if p.tok.Type != Comma {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(RParen); err != nil {
		return ChipCall{}, err
	}
	if _, err := p.expect(Semi); err != nil {
		return ChipCall{}, err
	}
	return call, nil
}

func (p *parser) parseArgument() (Argument, error) {
	name, err := p.expect(Ident)
	if err != nil {
		return Argument{}, err
	}
	if _, err := p.expect(Equal); err != nil {
		return Argument{}, err
	}
	ref, err := p.parsePinRef()
	if err != nil {
		return Argument{}, err
	}
	return Argument{Name: name.Lit, Value: ref, Pos: name.Pos}, nil
}

func (p *parser) parsePinRef() (PinRef, error) {
	switch p.tok.Type {
	case KwTrue:
		pos := p.tok.Pos
		p.next()
		return PinRef{Kind: RefConstant, Value: true, Pos: pos}, nil
	case KwFalse:
		pos := p.tok.Pos
		p.next()
		return PinRef{Kind: RefConstant, Value: false, Pos: pos}, nil
	case Ident:
		name := p.tok
		p.next()
		if p.tok.Type != LBracket {
			return PinRef{Kind: RefSimple, Name: name.Lit, Pos: name.Pos}, nil
		}
		p.next()
		from, err := p.expect(Int)
		if err != nil {
			return PinRef{}, err
		}
		to := from.Int
		if p.tok.Type == Range {
			p.next()
			toTok, err := p.expect(Int)
			if err != nil {
				return PinRef{}, err
			}
			to = toTok.Int
		}
		if _, err := p.expect(RBracket); err != nil {
			return PinRef{}, err
		}
		if to < from.Int {
			return PinRef{}, newParseError(p.src, from.Pos, "slice end must not precede start")
		}
		return PinRef{Kind: RefSlice, Name: name.Lit, From: from.Int, To: to, Pos: name.Pos}, nil
	default:
		return PinRef{}, p.errorf("expected pin reference, found %s", describe(p.tok))
	}
}
