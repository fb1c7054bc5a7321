package semver

import (
	"fmt"
	"strings"
)

// Constraint is a semantic version constraint: an AND-combination of atomic
// operator/version tests.
//
// Examples:
// - ">=1.2.0 <2.0.0"
// - "^1.0.0"
// - "~1.4.0"
//
// The zero Constraint carries no tests and is satisfied by every version.
type Constraint struct {
	raw   string
	atoms []atom
}

type atom struct {
	op      string
	version Version
}

// ConstraintError reports an unparseable constraint expression.
type ConstraintError struct {
	Text   string
	Token  string
	Reason string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("semver: parse constraint %q: token %q: %s", e.Text, e.Token, e.Reason)
}

// Operators, longest first so two-character prefixes match before their
// one-character counterparts.
var operators = []string{">=", "<=", "!=", "^", "~", ">", "<", "="}

// ParseConstraint parses a whitespace-separated list of atomic constraints.
// Each token is an operator prefix followed by a version literal; a token
// with no operator prefix means exact match.
func ParseConstraint(raw string) (Constraint, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return Constraint{}, &ConstraintError{Text: raw, Reason: "empty constraint"}
	}
	atoms := make([]atom, 0, len(tokens))
	for _, tok := range tokens {
		op := "="
		lit := tok
		for _, candidate := range operators {
			if strings.HasPrefix(tok, candidate) {
				op = candidate
				lit = tok[len(candidate):]
				break
			}
		}
		v, err := ParseVersion(lit)
		if err != nil {
			return Constraint{}, &ConstraintError{Text: raw, Token: tok, Reason: err.Error()}
		}
		atoms = append(atoms, atom{op: op, version: v})
	}
	return Constraint{raw: raw, atoms: atoms}, nil
}

func MustParseConstraint(raw string) Constraint {
	c, err := ParseConstraint(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the constraint text as written.
func (c Constraint) String() string { return c.raw }

// IsZero reports whether c carries no tests (the "no requirement" case).
func (c Constraint) IsZero() bool { return len(c.atoms) == 0 }

// Satisfies reports whether v passes every atomic test in c.
//
// Ranges are expanded at evaluation time. Prerelease versions are not given
// special treatment: they satisfy whatever the ordinary version ordering
// admits, so 1.0.0-alpha satisfies "<1.0.0" but not ">=1.0.0".
func Satisfies(v Version, c Constraint) bool {
	for _, a := range c.atoms {
		if !a.matches(v) {
			return false
		}
	}
	return true
}

func (a atom) matches(v Version) bool {
	cmp := Compare(v, a.version)
	switch a.op {
	case "=":
		return cmp == 0
	case "!=":
		return cmp != 0
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	case "^":
		return cmp >= 0 && Compare(v, caretUpper(a.version)) < 0
	case "~":
		return cmp >= 0 && Compare(v, Version{Major: a.version.Major, Minor: a.version.Minor + 1}) < 0
	}
	return false
}

// caretUpper is the exclusive upper bound of a compatible (^) range: the next
// major release, or for 0.x versions the next minor release, or for 0.0.x
// the next patch release.
func caretUpper(v Version) Version {
	switch {
	case v.Major > 0:
		return Version{Major: v.Major + 1}
	case v.Minor > 0:
		return Version{Minor: v.Minor + 1}
	}
	return Version{Patch: v.Patch + 1}
}
