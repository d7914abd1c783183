package sexpr

import (
	"fmt"
	"strconv"

	"github.com/zerfoo/glenside/expr"
	"github.com/zerfoo/glenside/value"
)

var computeTypesByName = map[string]value.ComputeType{
	"elementwise-mul": value.ElementwiseMul,
	"elementwise-add": value.ElementwiseAdd,
	"dot-product":     value.DotProduct,
	"relu":            value.ReLU,
	"reduce-sum":      value.ReduceSum,
	"reduce-max":      value.ReduceMax,
}

var padTypesByName = map[string]value.PadType{
	"zero-padding": value.ZeroPadding,
}

// reservedOps lists the seventeen operators declared by spec §6.2 but not
// given semantics by the core. Any list form whose head matches one of
// these names parses to an expr.Reserved node.
var reservedOps = map[string]bool{
	"move-axis":          true,
	"cartesian-product":  true,
	"map-dot-product":    true,
	"slice":              true,
	"concatenate":        true,
	"elementwise-add-op": true, // bare ElementwiseAdd operator, distinct from the compute-type leaf "elementwise-add"
	"bsg-systolic-array": true,
	"systolic-array":     true,
	"access-move-axis":   true,
	"get-access-shape":   true,
	"access-reshape":     true,
	"access-flatten":     true,
	"access-shape":       true,
	"access-slice":       true,
	"access-concatenate": true,
	"access-shift-right": true,
	"access-pair":        true,
}

// parser builds an expr.Expr from s-expression text via recursive descent,
// one expr.Builder call per form.
type parser struct {
	lex    *lexer
	b      *expr.Builder
	peeked *token
}

// Parse reads a single s-expression and returns the built Expr together
// with the position of its root node.
func Parse(src string) (expr.Expr, uint32, error) {
	p := &parser{lex: newLexer(src), b: expr.NewBuilder()}

	root, err := p.parseForm()
	if err != nil {
		return nil, 0, err
	}

	tok, err := p.next()
	if err != nil {
		return nil, 0, err
	}

	if tok.kind != tokenEOF {
		return nil, 0, fmt.Errorf("sexpr: unexpected trailing input starting with %q", tok.text)
	}

	return p.b.Build(), root, nil
}

func (p *parser) next() (token, error) {
	if p.peeked != nil {
		tok := *p.peeked
		p.peeked = nil

		return tok, nil
	}

	return p.lex.next()
}

func (p *parser) peek() (token, error) {
	if p.peeked == nil {
		tok, err := p.lex.next()
		if err != nil {
			return token{}, err
		}

		p.peeked = &tok
	}

	return *p.peeked, nil
}

func (p *parser) expect(kind tokenKind, what string) error {
	tok, err := p.next()
	if err != nil {
		return err
	}

	if tok.kind != kind {
		return fmt.Errorf("sexpr: expected %s, got %q", what, tok.text)
	}

	return nil
}

func (p *parser) parseForm() (uint32, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}

	switch tok.kind {
	case tokenAtom:
		return p.parseAtom(tok.text)
	case tokenLParen:
		return p.parseList()
	default:
		return 0, fmt.Errorf("sexpr: expected a form, got EOF")
	}
}

func (p *parser) parseAtom(text string) (uint32, error) {
	if n, err := strconv.Atoi(text); err == nil && n >= 0 {
		return p.b.Usize(n), nil
	}

	if ct, ok := computeTypesByName[text]; ok {
		return p.b.ComputeType(ct), nil
	}

	if pt, ok := padTypesByName[text]; ok {
		return p.b.PadType(pt), nil
	}

	return p.b.Symbol(text), nil
}

func (p *parser) parseList() (uint32, error) {
	headTok, err := p.next()
	if err != nil {
		return 0, err
	}

	if headTok.kind != tokenAtom {
		return 0, fmt.Errorf("sexpr: expected an operator name, got %q", headTok.text)
	}

	head := headTok.text

	switch head {
	case "compute":
		return p.parseFixed(head, 2, func(c []uint32) uint32 { return p.b.Compute(c[0], c[1]) })
	case "access":
		return p.parseFixed(head, 2, func(c []uint32) uint32 { return p.b.Access(c[0], c[1]) })
	case "access-tensor":
		return p.parseFixed(head, 1, func(c []uint32) uint32 { return p.b.AccessTensor(c[0]) })
	case "access-squeeze":
		return p.parseFixed(head, 2, func(c []uint32) uint32 { return p.b.AccessSqueeze(c[0], c[1]) })
	case "access-pad":
		return p.parseFixed(head, 5, func(c []uint32) uint32 { return p.b.AccessPad(c[0], c[1], c[2], c[3], c[4]) })
	case "access-windows":
		return p.parseFixed(head, 4, func(c []uint32) uint32 { return p.b.AccessWindows(c[0], c[1], c[2], c[3]) })
	case "access-cartesian-product":
		return p.parseFixed(head, 2, func(c []uint32) uint32 { return p.b.AccessCartesianProduct(c[0], c[1]) })
	case "shape-of":
		return p.parseFixed(head, 1, func(c []uint32) uint32 { return p.b.ShapeOf(c[0]) })
	case "slice-shape":
		return p.parseFixed(head, 2, func(c []uint32) uint32 { return p.b.SliceShape(c[0], c[1]) })
	case "shape":
		children, err := p.parseRest()
		if err != nil {
			return 0, err
		}

		return p.b.Shape(children...), nil
	default:
		if !reservedOps[head] {
			return 0, fmt.Errorf("sexpr: unknown operator %q", head)
		}

		children, err := p.parseRest()
		if err != nil {
			return 0, err
		}

		return p.b.Reserved(head, children...), nil
	}
}

// parseFixed parses exactly n child forms followed by a closing paren.
func (p *parser) parseFixed(op string, n int, build func([]uint32) uint32) (uint32, error) {
	children := make([]uint32, n)

	for i := 0; i < n; i++ {
		c, err := p.parseForm()
		if err != nil {
			return 0, fmt.Errorf("sexpr: parsing operand %d of %q: %w", i, op, err)
		}

		children[i] = c
	}

	if err := p.expect(tokenRParen, "closing paren for "+op); err != nil {
		return 0, err
	}

	return build(children), nil
}

// parseRest parses zero or more child forms up to a closing paren.
func (p *parser) parseRest() ([]uint32, error) {
	var children []uint32

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		if tok.kind == tokenRParen {
			_, _ = p.next()

			return children, nil
		}

		c, err := p.parseForm()
		if err != nil {
			return nil, err
		}

		children = append(children, c)
	}
}
