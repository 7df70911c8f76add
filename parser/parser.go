package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ilpgraph/ilpgraph/ilp"
)

var termPattern = regexp.MustCompile(`^(-?\d*)\*?([A-Za-z][A-Za-z0-9]*)?$`)

// Parse reads the `.ilp` text format from r: a header line
// "maximize|minimize <objective sum>", one constraint line per row
// ("<sum> <=|>=|= <sum>"), and an optional "notes:" line that begins a
// trailer consumed verbatim to EOF (spec.md §9 "Ambiguity").
func Parse(r io.Reader) (ilp.ParsedILP, error) {
	lines, err := readLogicalLines(r)
	if err != nil {
		return ilp.ParsedILP{}, err
	}
	if len(lines) == 0 {
		return ilp.ParsedILP{}, ErrEmptyInput
	}

	sense, objective, err := parseHeader(lines[0])
	if err != nil {
		return ilp.ParsedILP{}, err
	}

	var constraints []ilp.Constraint
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if strings.HasPrefix(strings.ToLower(line), "notes:") {
			break // everything from here to EOF is an ignored trailer
		}
		c, err := parseConstraint(line)
		if err != nil {
			return ilp.ParsedILP{}, fmt.Errorf("%w: line %d: %q", ErrSyntax, i+1, line)
		}
		constraints = append(constraints, c)
	}

	return ilp.ParsedILP{Sense: sense, Objective: objective, Constraints: constraints}, nil
}

// readLogicalLines trims and drops blank lines, preserving original
// line numbers is not required here: notes: detection only needs
// relative order.
func readLogicalLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}

	return out, sc.Err()
}

func parseHeader(line string) (ilp.Sense, []ilp.Term, error) {
	fields := strings.SplitN(line, " ", 2)
	var sense ilp.Sense
	switch strings.ToLower(strings.TrimSpace(fields[0])) {
	case "maximize", "max":
		sense = ilp.Maximize
	case "minimize", "min":
		sense = ilp.Minimize
	default:
		return 0, nil, ErrMissingSense
	}
	if len(fields) < 2 || strings.TrimSpace(fields[1]) == "" {
		return 0, nil, fmt.Errorf("%w: header has no objective", ErrSyntax)
	}
	objective, err := parseSum(fields[1])
	if err != nil {
		return 0, nil, fmt.Errorf("%w: header objective: %v", ErrSyntax, err)
	}

	return sense, objective, nil
}

func parseConstraint(line string) (ilp.Constraint, error) {
	op, rel, idx := findRelation(line)
	if idx < 0 {
		return ilp.Constraint{}, fmt.Errorf("missing relation operator")
	}
	lhs, err := parseSum(line[:idx])
	if err != nil {
		return ilp.Constraint{}, err
	}
	rhs, err := parseSum(line[idx+len(op):])
	if err != nil {
		return ilp.Constraint{}, err
	}

	return ilp.Constraint{LHS: lhs, Relation: rel, RHS: rhs}, nil
}

// findRelation locates the first relational operator in line, checking
// the two-character operators before the single-character "=" so
// "<=" and ">=" are never mis-split as "=" preceded by a stray "<"/">" .
func findRelation(line string) (op string, rel ilp.Relation, idx int) {
	for _, cand := range []struct {
		op  string
		rel ilp.Relation
	}{
		{"<=", ilp.LE},
		{">=", ilp.GE},
		{"=", ilp.EQ},
	} {
		if i := strings.Index(line, cand.op); i >= 0 {
			return cand.op, cand.rel, i
		}
	}

	return "", 0, -1
}

// parseSum splits an additive sum of terms on "+", after inserting an
// explicit "+" before every "-" that is not already at the start of a
// term, so "x1-3x2" and "x1+-3x2" parse identically.
func parseSum(s string) ([]ilp.Term, error) {
	normalized := normalizeSigns(s)
	parts := strings.Split(normalized, "+")

	terms := make([]ilp.Term, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		t, err := parseTerm(p)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("empty sum")
	}

	return terms, nil
}

func normalizeSigns(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' && i > 0 && s[i-1] != '+' {
			b.WriteByte('+')
		}
		b.WriteByte(c)
	}

	return b.String()
}

func parseTerm(tok string) (ilp.Term, error) {
	tok = strings.TrimSpace(strings.ReplaceAll(tok, " ", ""))
	m := termPattern.FindStringSubmatch(tok)
	if m == nil {
		return ilp.Term{}, fmt.Errorf("malformed term %q", tok)
	}

	coefStr, variable := m[1], m[2]
	if coefStr == "" && variable == "" {
		return ilp.Term{}, fmt.Errorf("empty term")
	}

	coef := int64(1)
	switch coefStr {
	case "":
		// bare variable, implicit coefficient 1
	case "-":
		coef = -1
	default:
		v, err := strconv.ParseInt(coefStr, 10, 64)
		if err != nil {
			return ilp.Term{}, fmt.Errorf("bad coefficient %q: %w", coefStr, err)
		}
		coef = v
	}

	return ilp.Term{Coefficient: coef, Variable: variable}, nil
}
