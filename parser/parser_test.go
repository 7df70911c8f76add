package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ilpgraph/ilpgraph/ilp"
	"github.com/ilpgraph/ilpgraph/parser"
)

func TestParseBasicMaximize(t *testing.T) {
	src := "maximize x1 + 2x2 + 3x3\n" +
		"x1 <= 5\n" +
		"2x2 <= 6\n" +
		"x3 <= 5\n"

	p, err := parser.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, ilp.Maximize, p.Sense)
	require.Len(t, p.Objective, 3)
	require.Len(t, p.Constraints, 3)
	require.Equal(t, int64(1), p.Objective[0].Coefficient)
	require.Equal(t, "x1", p.Objective[0].Variable)
	require.Equal(t, int64(2), p.Objective[1].Coefficient)
}

func TestParseMinusWithoutExplicitPlus(t *testing.T) {
	src := "minimize x1-3x2\n" +
		"x1+x2 >= 1\n"

	p, err := parser.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, p.Objective, 2)
	require.Equal(t, int64(-3), p.Objective[1].Coefficient)
	require.Equal(t, "x2", p.Objective[1].Variable)
}

func TestParseNotesTrailerIgnored(t *testing.T) {
	src := "maximize x1\n" +
		"x1 <= 5\n" +
		"notes: this is free-form and may contain anything\n" +
		"even more lines that are not constraints at all\n"

	p, err := parser.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, p.Constraints, 1)
}

func TestParseEqualityAndGreaterEqual(t *testing.T) {
	src := "minimize x1+x2\n" +
		"x1+x2 = 5\n" +
		"x1 >= 0\n"

	p, err := parser.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, ilp.EQ, p.Constraints[0].Relation)
	require.Equal(t, ilp.GE, p.Constraints[1].Relation)
}

func TestParseMissingSense(t *testing.T) {
	_, err := parser.Parse(strings.NewReader("optimize x1\nx1 <= 1\n"))
	require.ErrorIs(t, err, parser.ErrMissingSense)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := parser.Parse(strings.NewReader("   \n\n"))
	require.ErrorIs(t, err, parser.ErrEmptyInput)
}

func TestParseSyntaxErrorOnBadConstraint(t *testing.T) {
	_, err := parser.Parse(strings.NewReader("maximize x1\nx1 ?? 5\n"))
	require.ErrorIs(t, err, parser.ErrSyntax)
}
