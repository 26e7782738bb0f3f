package dice

import (
	"fmt"
	"strconv"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
)

// ExpressionKind discriminates the accepted expression forms
type ExpressionKind int

const (
	// KindDice is "[N]dM" with an optional trailing modifier
	KindDice ExpressionKind = iota
	// KindConstant is a bare integer with an optional trailing modifier
	KindConstant
	// KindModifierOnly is a lone signed modifier such as "+3"
	KindModifierOnly
)

const (
	maxDiceCount = 1000
	maxDieSize   = 10000
)

// Expression is a parsed dice expression
type Expression struct {
	Kind     ExpressionKind
	Count    int
	Sides    int
	Constant int
	Modifier int
}

// ExpressionResult carries an evaluated total and a human-readable breakdown
type ExpressionResult struct {
	Total  int
	Detail string
	Rolls  []int
}

// ParseExpression parses "[N]dM[(+|-)K]" or a bare integer with an optional
// trailing modifier. Spaces are ignored and matching is case-insensitive.
// A lone modifier like "+3" is valid on its own.
func ParseExpression(input string) (*Expression, error) {
	if strings.TrimSpace(input) == "" {
		return nil, dnderr.InvalidArgument("empty dice expression")
	}

	expr := strings.ToLower(strings.ReplaceAll(input, " ", ""))

	modifier := 0
	if idx := trailingModifierIndex(expr); idx >= 0 {
		parsed, err := strconv.Atoi(expr[idx:])
		if err != nil {
			return nil, dnderr.InvalidArgumentf("invalid modifier in expression %q", input)
		}
		modifier = parsed
		expr = expr[:idx]
	}

	if expr == "" {
		return &Expression{Kind: KindModifierOnly, Modifier: modifier}, nil
	}

	if countStr, sidesStr, found := strings.Cut(expr, "d"); found {
		count := 1
		if countStr != "" {
			parsed, err := strconv.Atoi(countStr)
			if err != nil {
				return nil, dnderr.InvalidArgumentf("invalid dice count in expression %q", input)
			}
			count = parsed
		}

		sides, err := strconv.Atoi(sidesStr)
		if err != nil {
			return nil, dnderr.InvalidArgumentf("invalid die size in expression %q", input)
		}

		if count < 1 || count > maxDiceCount || sides < 1 || sides > maxDieSize {
			return nil, dnderr.InvalidArgumentf("dice count/size out of range in expression %q", input)
		}

		return &Expression{Kind: KindDice, Count: count, Sides: sides, Modifier: modifier}, nil
	}

	constant, err := strconv.Atoi(expr)
	if err != nil {
		return nil, dnderr.InvalidArgumentf("invalid dice expression %q", input)
	}

	return &Expression{Kind: KindConstant, Constant: constant, Modifier: modifier}, nil
}

// Roll evaluates the expression, drawing any dice from the supplied roller
func (e *Expression) Roll(roller Roller) (*ExpressionResult, error) {
	switch e.Kind {
	case KindModifierOnly:
		return &ExpressionResult{
			Total:  e.Modifier,
			Detail: fmt.Sprintf("modifier only %+d", e.Modifier),
		}, nil

	case KindConstant:
		detail := fmt.Sprintf("const %d", e.Constant)
		if e.Modifier != 0 {
			detail = fmt.Sprintf("const %d %+d", e.Constant, e.Modifier)
		}
		return &ExpressionResult{
			Total:  e.Constant + e.Modifier,
			Detail: detail,
		}, nil

	default:
		result, err := roller.Roll(e.Count, e.Sides, e.Modifier)
		if err != nil {
			return nil, err
		}
		detail := fmt.Sprintf("rolls=%v", result.Rolls)
		if e.Modifier != 0 {
			detail = fmt.Sprintf("%s %+d", detail, e.Modifier)
		}
		return &ExpressionResult{
			Total:  result.Total,
			Detail: detail,
			Rolls:  result.Rolls,
		}, nil
	}
}

// RollExpression parses and evaluates input in one step
func RollExpression(roller Roller, input string) (*ExpressionResult, error) {
	expr, err := ParseExpression(input)
	if err != nil {
		return nil, err
	}
	return expr.Roll(roller)
}

// trailingModifierIndex scans from the end for a +/- that either starts the
// string or follows a digit or 'd'. That is the split point between the dice
// part and the trailing modifier.
func trailingModifierIndex(expr string) int {
	for i := len(expr) - 1; i >= 0; i-- {
		if expr[i] != '+' && expr[i] != '-' {
			continue
		}
		if i == 0 {
			return i
		}
		prev := expr[i-1]
		if (prev >= '0' && prev <= '9') || prev == 'd' {
			return i
		}
	}
	return -1
}
