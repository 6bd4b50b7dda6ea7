// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	errExprParse  = errors.New("expression syntax error")
	errDivideZero = errors.New("division by zero")
)

// A resolver converts an identifier appearing in an expression into a
// value.
type resolver interface {
	resolveIdentifier(s string) (int64, error)
}

// Binary operators grouped by precedence, lowest first. Within a level,
// operators associate to the left.
var binaryOps = [][]struct {
	symbol string
	eval   func(a, b int64) (int64, error)
}{
	{{"|", func(a, b int64) (int64, error) { return a | b, nil }}},
	{{"^", func(a, b int64) (int64, error) { return a ^ b, nil }}},
	{{"&", func(a, b int64) (int64, error) { return a & b, nil }}},
	{
		{"<<", func(a, b int64) (int64, error) { return a << uint64(b&63), nil }},
		{">>", func(a, b int64) (int64, error) { return a >> uint64(b&63), nil }},
	},
	{
		{"+", func(a, b int64) (int64, error) { return a + b, nil }},
		{"-", func(a, b int64) (int64, error) { return a - b, nil }},
	},
	{
		{"*", func(a, b int64) (int64, error) { return a * b, nil }},
		{"/", func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errDivideZero
			}
			return a / b, nil
		}},
		{"%", func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errDivideZero
			}
			return a % b, nil
		}},
	},
}

//
// exprParser
//

// An exprParser evaluates integer expressions typed at the monitor prompt.
// Numbers may be written as $hex, 0xhex, %binary, 0bbinary, 0ddecimal,
// 'c' character literals or plain decimal. In hex mode, plain numbers are
// hexadecimal.
type exprParser struct {
	hexMode bool
	r       resolver
	t       tstring
}

func newExprParser() *exprParser {
	return &exprParser{}
}

// Parse evaluates the expression, resolving identifiers through r.
func (p *exprParser) Parse(expr string, r resolver) (int64, error) {
	p.r, p.t = r, tstring(expr)
	defer func() { p.r, p.t = nil, "" }()

	v, err := p.parseLevel(0)
	if err != nil {
		return 0, err
	}

	p.t = p.t.consumeWhitespace()
	if len(p.t) > 0 {
		return 0, fmt.Errorf("%w near '%s'", errExprParse, string(p.t))
	}
	return v, nil
}

func (p *exprParser) parseLevel(level int) (int64, error) {
	if level == len(binaryOps) {
		return p.parseUnary()
	}

	v, err := p.parseLevel(level + 1)
	if err != nil {
		return 0, err
	}

	for {
		p.t = p.t.consumeWhitespace()
		matched := false
		for _, op := range binaryOps[level] {
			if !p.t.hasPrefix(op.symbol) {
				continue
			}
			p.t = p.t.consume(len(op.symbol))
			rhs, err := p.parseLevel(level + 1)
			if err != nil {
				return 0, err
			}
			if v, err = op.eval(v, rhs); err != nil {
				return 0, err
			}
			matched = true
			break
		}
		if !matched {
			return v, nil
		}
	}
}

func (p *exprParser) parseUnary() (int64, error) {
	p.t = p.t.consumeWhitespace()
	if len(p.t) == 0 {
		return 0, errExprParse
	}

	switch p.t[0] {
	case '-', '+', '~':
		c := p.t[0]
		p.t = p.t.consume(1)
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch c {
		case '-':
			return -v, nil
		case '~':
			return ^v, nil
		}
		return v, nil

	case '(':
		p.t = p.t.consume(1)
		v, err := p.parseLevel(0)
		if err != nil {
			return 0, err
		}
		p.t = p.t.consumeWhitespace()
		if len(p.t) == 0 || p.t[0] != ')' {
			return 0, fmt.Errorf("%w: missing ')'", errExprParse)
		}
		p.t = p.t.consume(1)
		return v, nil

	case '\'':
		if len(p.t) < 3 || p.t[2] != '\'' {
			return 0, errExprParse
		}
		v := int64(p.t[1])
		p.t = p.t.consume(3)
		return v, nil
	}

	return p.parseOperand()
}

func (p *exprParser) parseOperand() (int64, error) {
	base, fn, num := 10, decimal, p.t
	if p.hexMode {
		base, fn = 16, hexadecimal
	}

	switch {
	case num[0] == '$':
		base, fn, num = 16, hexadecimal, num.consume(1)
	case num[0] == '%':
		base, fn, num = 2, binary, num.consume(1)
	case len(num) > 2 && num[0] == '0' && (num[1] == 'x' || num[1] == 'b' || num[1] == 'd'):
		switch num[1] {
		case 'x':
			base, fn = 16, hexadecimal
		case 'b':
			base, fn = 2, binary
		case 'd':
			base, fn = 10, decimal
		}
		num = num.consume(2)
	case !decimal(num[0]):
		// An identifier, unless hex mode accepts the whole word as a
		// hexadecimal number.
		id, remain := num.consumeWhile(identifier)
		if len(id) == 0 {
			return 0, fmt.Errorf("%w near '%s'", errExprParse, string(num))
		}
		if !p.hexMode || id.scanWhile(hexadecimal) != len(id) {
			p.t = remain
			if p.r == nil {
				return 0, fmt.Errorf("identifier '%s' not found", string(id))
			}
			return p.r.resolveIdentifier(string(id))
		}
	}

	digits, remain := num.consumeWhile(fn)
	if len(digits) == 0 {
		return 0, fmt.Errorf("%w near '%s'", errExprParse, string(p.t))
	}

	v, err := strconv.ParseInt(string(digits), base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errExprParse, err)
	}

	p.t = remain
	return v, nil
}

//
// tstring
//

type tstring string

func (t tstring) consume(n int) tstring {
	return t[n:]
}

func (t tstring) hasPrefix(s string) bool {
	return len(t) >= len(s) && string(t[:len(s)]) == s
}

func (t tstring) consumeWhitespace() tstring {
	return t.consume(t.scanWhile(whitespace))
}

func (t tstring) scanWhile(fn func(c byte) bool) int {
	i := 0
	for ; i < len(t) && fn(t[i]); i++ {
	}
	return i
}

func (t tstring) consumeWhile(fn func(c byte) bool) (consumed, remain tstring) {
	i := t.scanWhile(fn)
	return t[:i], t[i:]
}

func whitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

func decimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexadecimal(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func binary(c byte) bool {
	return c == '0' || c == '1'
}

func identifier(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '.'
}
