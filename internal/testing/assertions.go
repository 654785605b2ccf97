package testing

import (
	"regexp"
	"strings"
	"testing"
)

var procedurePattern = regexp.MustCompile(`(?m)^\s*PROCEDURE (\w+)`)

// AssertPLSQL provides assertions over generated PL/SQL text
type AssertPLSQL struct {
	t *testing.T
}

// NewAssertPLSQL creates a new PL/SQL assertion helper
func NewAssertPLSQL(t *testing.T) *AssertPLSQL {
	return &AssertPLSQL{t: t}
}

// Contains asserts that the SQL contains a substring
func (a *AssertPLSQL) Contains(sql, expected string) {
	a.t.Helper()
	if !strings.Contains(sql, expected) {
		a.t.Errorf("SQL does not contain expected string\nExpected: %s\nActual SQL:\n%s", expected, sql)
	}
}

// NotContains asserts that the SQL does not contain a substring
func (a *AssertPLSQL) NotContains(sql, unexpected string) {
	a.t.Helper()
	if strings.Contains(sql, unexpected) {
		a.t.Errorf("SQL contains unexpected string\nUnexpected: %s\nActual SQL:\n%s", unexpected, sql)
	}
}

// Procedures returns the procedure names in order of appearance
func Procedures(sql string) []string {
	var names []string
	for _, m := range procedurePattern.FindAllStringSubmatch(sql, -1) {
		names = append(names, m[1])
	}
	return names
}

// AssertProcedures asserts the exact procedure names, in order
func (a *AssertPLSQL) AssertProcedures(sql string, expected ...string) {
	a.t.Helper()
	actual := Procedures(sql)
	if strings.Join(actual, ",") != strings.Join(expected, ",") {
		a.t.Errorf("Expected procedures %v, got %v\nActual SQL:\n%s", expected, actual, sql)
	}
}

// AssertClosed asserts that every procedure of a package body has its END
func (a *AssertPLSQL) AssertClosed(sql string) {
	a.t.Helper()
	for _, name := range Procedures(sql) {
		if !strings.Contains(sql, "END "+name+";") {
			a.t.Errorf("Procedure %s is not closed\nActual SQL:\n%s", name, sql)
		}
	}
}

// AssertNoTrailingComma asserts that no list closes right after a comma
func (a *AssertPLSQL) AssertNoTrailingComma(sql string) {
	a.t.Helper()
	lines := strings.Split(sql, "\n")
	for i := 1; i < len(lines); i++ {
		prev := strings.TrimSpace(lines[i-1])
		if strings.HasPrefix(strings.TrimSpace(lines[i]), ")") && strings.HasSuffix(prev, ",") {
			a.t.Errorf("Trailing comma on line %d\nActual SQL:\n%s", i, sql)
		}
		if strings.Contains(lines[i], ",)") {
			a.t.Errorf("Trailing comma on line %d\nActual SQL:\n%s", i+1, sql)
		}
	}
}
