package asm

import (
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// exprPattern matches a compile-time $( ... ) expression.
var exprPattern = regexp.MustCompile(`\$\([^)]*\)`)

// evalExpr evaluates one compile-time expression with the current .EQUATE
// bindings predeclared as integers, clipping the result to a 16-bit word.
func evalExpr(expr string, equates []equateNode) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for _, equ := range equates {
		pred[equ.name] = starlark.MakeInt(equ.value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrExpression(expr)
		return
	}
	rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	rcInt, ok := rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	rc64, ok := rcInt.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value = int(rc64) & maxAddr

	return
}

// statementEnd finds the start of the trailing comment, skipping semicolons
// inside character and string constants.
func statementEnd(line string) int {
	var quote byte
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case quote != 0:
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == ';':
			return i
		}
	}
	return len(line)
}

// expandExprs substitutes every $( ... ) occurrence in the statement field
// of a source line with the decimal spelling of its value.
func expandExprs(line string, equates []equateNode) (out string, err error) {
	end := statementEnd(line)
	stmt := line[:end]

	stmt = exprPattern.ReplaceAllStringFunc(stmt, func(match string) string {
		value, evalErr := evalExpr(match[2:len(match)-1], equates)
		if evalErr != nil {
			err = evalErr
			return match
		}
		return strconv.Itoa(value)
	})

	out = stmt + line[end:]

	return
}
