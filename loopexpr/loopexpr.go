// SPDX-License-Identifier: MIT
// Package: spinfoam/loopexpr
//
// Package loopexpr parses Wilson-loop edge sequences.
//
// Grammar (whitespace-insensitive):
//
//	loop := "["? ( term ( ("->" | ",")? term )* )? "]"?   (brackets balanced)
//	term := Int ( "^" Int )?
//
// "0 -> 1 -> 3 -> 2", "0,1,3,2", "[0 1 3 2]" and "0 -> 1^2" (= 0,1,1) are
// all valid. Edge ids are not range-checked here; WilsonLoop does that
// against a concrete graph.
package loopexpr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// ErrSyntax indicates input that does not match the loop grammar.
	ErrSyntax = errors.New("loopexpr: syntax error")

	// ErrBadRepeat indicates a repeat count outside [1, MaxRepeat].
	ErrBadRepeat = errors.New("loopexpr: bad repeat count")
)

// MaxRepeat bounds a single term's repeat count.
const MaxRepeat = 1 << 12

type loopExpr struct {
	Open  string      `parser:"@\"[\"?"`
	Terms []*loopTerm `parser:"(@@ ((\"->\" | \",\")? @@)*)?"`
	Close string      `parser:"@\"]\"?"`
}

type loopTerm struct {
	Edge   int  `parser:"@Int"`
	Repeat *int `parser:"(\"^\" @Int)?"`
}

var sLoopLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Punct", Pattern: `[,\[\]^]`},
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
})

var sParseLoopExpr = participle.MustBuild[loopExpr](
	participle.Lexer(sLoopLexer),
)

// Parse returns the edge-id sequence described by s. Empty input yields an
// empty, non-nil sequence.
func Parse(s string) ([]int, error) {
	seq := []int{}
	if strings.TrimSpace(s) == "" {
		return seq, nil
	}

	ast, err := sParseLoopExpr.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): %v: %w", s, err, ErrSyntax)
	}
	if (ast.Open == "") != (ast.Close == "") {
		return nil, fmt.Errorf("Parse(%q): unbalanced brackets: %w", s, ErrSyntax)
	}

	for _, t := range ast.Terms {
		n := 1
		if t.Repeat != nil {
			n = *t.Repeat
		}
		if n < 1 || n > MaxRepeat {
			return nil, fmt.Errorf("Parse(%q): edge %d^%d: %w", s, t.Edge, n, ErrBadRepeat)
		}
		for k := 0; k < n; k++ {
			seq = append(seq, t.Edge)
		}
	}

	return seq, nil
}

// Format renders seq in arrow form ("0 -> 1 -> 3 -> 2"). Parse(Format(seq))
// returns seq for any sequence of non-negative ids.
func Format(seq []int) string {
	parts := make([]string, len(seq))
	for i, id := range seq {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " -> ")
}
