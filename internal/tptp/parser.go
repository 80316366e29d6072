package tptp

import (
	"github.com/pkg/errors"

	"github.com/apselect/apselect/internal/fol"
)

// Parser reads zero or more cnf(...). statements from a TPTP source
// string.
type Parser struct {
	scan *scanner
	tok  token
}

// NewParser prepares a parser over src.
func NewParser(src string) *Parser {
	p := &Parser{scan: newScanner(src)}
	p.advance()
	return p
}

func (p *Parser) advance() { p.tok = p.scan.next() }

func (p *Parser) expect(kind tokenKind) (token, error) {
	if p.tok.kind != kind {
		return token{}, errors.Errorf("tptp: expected %s, got %q at byte %d", kind, p.tok.literal, p.tok.pos)
	}
	t := p.tok
	p.advance()
	return t, nil
}

// ParseClauses parses every cnf(...). statement in the source and
// returns the resulting clauses in file order.
func (p *Parser) ParseClauses() ([]*fol.Clause, error) {
	var clauses []*fol.Clause
	for p.tok.kind != tokEOF {
		c, err := p.parseCnf()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	return clauses, nil
}

// parseCnf parses one "cnf(name,type,(lit|lit|...))." statement.
func (p *Parser) parseCnf() (*fol.Clause, error) {
	head, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if head.literal != "cnf" {
		return nil, errors.Errorf("tptp: expected %q, got %q at byte %d", "cnf", head.literal, head.pos)
	}
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokComma); err != nil {
		return nil, err
	}
	typ, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokComma); err != nil {
		return nil, err
	}

	vars := make(map[string]*fol.Variable)
	lits, err := p.parseLiterals(vars)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokDot); err != nil {
		return nil, err
	}

	return fol.NewClause(name.literal, fol.ClauseType(typ.literal), lits...), nil
}

// parseLiterals parses a parenthesized, "|"-separated disjunction of
// literals. A bare, unparenthesized single literal is also accepted,
// matching unit clauses written without the wrapping parens.
func (p *Parser) parseLiterals(vars map[string]*fol.Variable) ([]*fol.Literal, error) {
	if p.tok.kind != tokLParen {
		lit, err := p.parseLiteral(vars)
		if err != nil {
			return nil, err
		}
		return []*fol.Literal{lit}, nil
	}

	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	var lits []*fol.Literal
	for {
		lit, err := p.parseLiteral(vars)
		if err != nil {
			return nil, err
		}
		lits = append(lits, lit)
		if p.tok.kind != tokPipe {
			break
		}
		p.advance()
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return lits, nil
}

func (p *Parser) parseLiteral(vars map[string]*fol.Variable) (*fol.Literal, error) {
	sign := fol.Positive
	if p.tok.kind == tokTilde {
		sign = fol.Negative
		p.advance()
	}
	atom, err := p.parseTerm(vars)
	if err != nil {
		return nil, err
	}
	return fol.NewLiteral(sign, atom), nil
}

// parseTerm parses a function/constant application. A variable is
// rejected with an error here; variables in argument position are
// handled by parseArg.
func (p *Parser) parseTerm(vars map[string]*fol.Variable) (*fol.Function, error) {
	if p.tok.kind == tokVariable {
		return nil, errors.Errorf("tptp: variable %q cannot appear in atom position at byte %d", p.tok.literal, p.tok.pos)
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokLParen {
		return fol.NewFunction(name.literal), nil
	}
	p.advance()
	var args []fol.Term
	for {
		arg, err := p.parseArg(vars)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.tok.kind != tokComma {
			break
		}
		p.advance()
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return fol.NewFunction(name.literal, args...), nil
}

func (p *Parser) parseArg(vars map[string]*fol.Variable) (fol.Term, error) {
	if p.tok.kind == tokVariable {
		name := p.tok.literal
		p.advance()
		if v, ok := vars[name]; ok {
			return v, nil
		}
		v := fol.Fresh(name)
		vars[name] = v
		return v, nil
	}
	return p.parseTerm(vars)
}

// ParseClauses parses every cnf(...). statement in src.
func ParseClauses(src string) ([]*fol.Clause, error) {
	clauses, err := NewParser(src).ParseClauses()
	if err != nil {
		return nil, errors.Wrap(err, "parsing tptp source")
	}
	return clauses, nil
}
