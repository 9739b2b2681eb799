package typedesc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse converts an annotation string into a descriptor. The grammar covers
// the annotation surface the taxonomy models:
//
//   - plain names, optionally module-qualified: int, datetime.datetime
//   - unions: str | int | None
//   - parametrized containers: list[str], dict[str, list[int]]
//   - literals: Literal['a', 'b', 3, True]
//
// The bare name Literal parses to the unparametrized marker. Enum
// descriptors cannot be written as annotation strings because member names
// live on the enum definition; construct them with NewEnum.
func Parse(input string) (Type, error) {
	p := &annotationParser{input: input}
	t, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("unexpected %q at offset %d in %q", p.input[p.pos], p.pos, p.input)
	}
	return t, nil
}

// MustParse is Parse for annotations known at compile time; it panics on a
// malformed annotation.
func MustParse(input string) Type {
	t, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return t
}

type annotationParser struct {
	input string
	pos   int
}

// parseUnion parses one or more '|'-separated terms.
func (p *annotationParser) parseUnion() (Type, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	branches := []Type{first}
	for {
		p.skipSpace()
		if !p.eat('|') {
			break
		}
		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		branches = append(branches, next)
	}
	if len(branches) == 1 {
		return first, nil
	}
	return NewUnion(branches...), nil
}

// parseTerm parses a single name, container, or literal set.
func (p *annotationParser) parseTerm() (Type, error) {
	p.skipSpace()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.eat('[') {
		switch name {
		case "None":
			return None, nil
		case "Literal":
			return LiteralMarker, nil
		default:
			return NewPlain(name), nil
		}
	}

	if name == "Literal" {
		values, err := p.parseLiteralValues()
		if err != nil {
			return nil, err
		}
		return NewLiteral(values...), nil
	}

	var args []Type
	for {
		arg, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipSpace()
		if p.eat(',') {
			continue
		}
		if p.eat(']') {
			break
		}
		return nil, fmt.Errorf("expected ',' or ']' at offset %d in %q", p.pos, p.input)
	}
	return NewGeneric(NewPlain(name), args...), nil
}

// parseLiteralValues parses the comma-separated value list of a literal,
// consuming the closing bracket.
func (p *annotationParser) parseLiteralValues() ([]any, error) {
	var values []any
	for {
		p.skipSpace()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		p.skipSpace()
		if p.eat(',') {
			continue
		}
		if p.eat(']') {
			return values, nil
		}
		return nil, fmt.Errorf("expected ',' or ']' at offset %d in %q", p.pos, p.input)
	}
}

// parseValue parses one literal value: a quoted string, a number, or one of
// the constants True/False/None.
func (p *annotationParser) parseValue() (any, error) {
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of annotation %q", p.input)
	}

	switch c := p.input[p.pos]; {
	case c == '\'' || c == '"':
		return p.parseQuoted(c)
	case c == '-' || unicode.IsDigit(rune(c)):
		return p.parseNumber()
	default:
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		switch name {
		case "True":
			return true, nil
		case "False":
			return false, nil
		case "None":
			return nil, nil
		default:
			return nil, fmt.Errorf("invalid literal value %q in %q", name, p.input)
		}
	}
}

func (p *annotationParser) parseQuoted(quote byte) (string, error) {
	start := p.pos
	p.pos++ // opening quote
	for p.pos < len(p.input) {
		if p.input[p.pos] == quote {
			s := p.input[start+1 : p.pos]
			p.pos++
			return s, nil
		}
		p.pos++
	}
	return "", fmt.Errorf("unterminated string starting at offset %d in %q", start, p.input)
}

func (p *annotationParser) parseNumber() (any, error) {
	start := p.pos
	if p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && (unicode.IsDigit(rune(p.input[p.pos])) || p.input[p.pos] == '.') {
		p.pos++
	}
	text := p.input[start:p.pos]
	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in %q", text, p.input)
		}
		return f, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q in %q", text, p.input)
	}
	return n, nil
}

func (p *annotationParser) parseName() (string, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := rune(p.input[p.pos])
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '.' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", fmt.Errorf("expected name at offset %d in %q", p.pos, p.input)
	}
	return p.input[start:p.pos], nil
}

func (p *annotationParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *annotationParser) eat(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}
