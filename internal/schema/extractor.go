// Package schema parses table blocks of the form
//
//	table_name("ORDERS");
//	table_attr("ID").primarykey;
//	table_attr("TOTAL");
//
// into a TableSchema.
package schema

import (
	"iter"
	"regexp"
	"strings"

	"github.com/eleven-am/crudgen/internal/logger"
)

var (
	declarationPattern = regexp.MustCompile(`(?i)^\s*table_name\s*\(\s*"(\w+)"\s*\)\s*;`)
	tableNamePattern   = regexp.MustCompile(`(?i)table_name\s*\(\s*"(\w+)"\s*\)\s*;`)
	identifierPattern  = regexp.MustCompile(`^\w+$`)
	attributePattern   = regexp.MustCompile(`(?i)table_attr\s*\(\s*"(\w+)"\s*\)\s*(\.primarykey\s*)?;`)
)

// AttrMatch is a single table_attr declaration found in a table block.
type AttrMatch struct {
	Name       string
	PrimaryKey bool
	Start, End int // byte span of the whole declaration
}

// Matches reports whether text starts with a table_name declaration.
func Matches(text string) bool {
	return declarationPattern.MatchString(text)
}

// TableName returns the identifier of the first table_name declaration, or ""
func TableName(text string) string {
	m := tableNamePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// Attributes yields the table_attr declarations of text from left to right.
// Matches never overlap.
func Attributes(text string) iter.Seq[AttrMatch] {
	return func(yield func(AttrMatch) bool) {
		offset := 0
		for offset < len(text) {
			loc := attributePattern.FindStringSubmatchIndex(text[offset:])
			if loc == nil {
				return
			}

			m := AttrMatch{
				Name:       text[offset+loc[2] : offset+loc[3]],
				PrimaryKey: loc[4] >= 0,
				Start:      offset + loc[0],
				End:        offset + loc[1],
			}
			if !yield(m) {
				return
			}
			offset = m.End
		}
	}
}

// Extract parses text into a TableSchema. It does not check the grammar; call
// Matches first. When several columns carry .primarykey the last one becomes
// the PrimaryKey.
func Extract(text string) *TableSchema {
	t := &TableSchema{
		Name:    TableName(text),
		Columns: make([]Column, 0),
	}

	keys := 0
	for m := range Attributes(text) {
		t.Columns = append(t.Columns, Column{Name: m.Name, IsPrimaryKey: m.PrimaryKey})
		if m.PrimaryKey {
			t.PrimaryKey = m.Name
			keys++
		}
	}

	log := logger.Schema().WithField("table", t.Name)
	log.Debugf("extracted %d columns, primary key %q", len(t.Columns), t.PrimaryKey)
	if keys > 1 {
		log.Debugf("%d columns flagged primary key, keeping the last", keys)
	}

	return t
}

// IsIdentifier reports whether name can appear in a table block.
func IsIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// Format renders t back into a table block, one declaration per line.
func Format(t *TableSchema) string {
	var b strings.Builder
	b.WriteString(`table_name("` + t.Name + `");`)
	for _, col := range t.Columns {
		b.WriteString("\n" + `table_attr("` + col.Name + `")`)
		if col.IsPrimaryKey {
			b.WriteString(".primarykey")
		}
		b.WriteString(";")
	}
	return b.String()
}
