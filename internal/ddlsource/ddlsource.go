// Package ddlsource implements a second catalog.Reader: instead of
// querying a live INFORMATION_SCHEMA, it extracts table and column
// descriptions directly from a CREATE TABLE script. It only recovers
// column name, raw type, size/precision, and nullability — indexes,
// constraints, views, functions, procedures, and triggers are out of
// scope, matching the column-only shape catalog.Reader expects.
package ddlsource

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/mstgnz/sqltransfer/catalog"
	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/mstgnz/sqltransfer/internal/sqlerr"
)

var (
	createTablePattern = regexp.MustCompile(`(?is)CREATE\s+TABLE\s+` +
		`[\[\"\x60]?([.\w]+)[\]\"\x60]?\s*\((.*?)\)\s*;`)
	columnLinePattern = regexp.MustCompile(
		`(?i)^[\[\"\x60]?(\w+)[\]\"\x60]?\s+(\w+)(?:\s*\(\s*([\d,\s]+)\s*\))?\s*(.*)$`)
)

// Table is one CREATE TABLE block recovered from a script.
type Table struct {
	Name    string
	Columns []catalog.ColumnDescription
}

// FileReader is a catalog.Reader backed by an in-memory DDL script
// instead of a live connection. The database argument every Reader
// method accepts is ignored: a DDL file describes exactly one
// database by construction.
type FileReader struct {
	dialect dialect.Dialect
	tables  map[string]Table // keyed by lowercase table name
	order   []string
}

// NewFileReader parses ddl (the full text of one or more CREATE TABLE
// statements). d is validated and recorded; the same parsing rules
// apply to both dialects.
func NewFileReader(d dialect.Dialect, ddl string) (*FileReader, error) {
	if !d.Valid() {
		return nil, sqlerr.New(sqlerr.InvalidDialect, "not a recognized dialect", nil).
			WithContext("dialect", int(d))
	}

	r := &FileReader{dialect: d, tables: make(map[string]Table)}
	for _, m := range createTablePattern.FindAllStringSubmatch(ddl, -1) {
		name := lastIdentifierSegment(m[1])
		cols := parseColumns(m[2])
		t := Table{Name: name, Columns: cols}
		key := strings.ToLower(name)
		if _, exists := r.tables[key]; !exists {
			r.order = append(r.order, key)
		}
		r.tables[key] = t
	}
	return r, nil
}

// lastIdentifierSegment drops schema/database qualification
// ("dbo.customers" -> "customers").
func lastIdentifierSegment(qualified string) string {
	parts := strings.Split(qualified, ".")
	return parts[len(parts)-1]
}

func parseColumns(body string) []catalog.ColumnDescription {
	var cols []catalog.ColumnDescription
	for _, raw := range splitTopLevel(body) {
		line := strings.TrimSpace(raw)
		if line == "" || isConstraintLine(line) {
			continue
		}
		m := columnLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		cols = append(cols, buildColumn(m[1], m[2], m[3], m[4]))
	}
	return cols
}

var constraintKeywords = []string{"primary", "foreign", "unique", "constraint", "check", "index", "key"}

func isConstraintLine(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range constraintKeywords {
		if strings.HasPrefix(lower, kw) {
			return true
		}
	}
	return false
}

// splitTopLevel splits a column-definition body on commas that are
// not nested inside a type's own parentheses, e.g. "decimal(10, 2)".
func splitTopLevel(body string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, body[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, body[start:])
	return parts
}

func buildColumn(name, typeName, sizeSpec, tail string) catalog.ColumnDescription {
	cd := catalog.ColumnDescription{
		ColumnName:   name,
		DatatypeName: strings.ToLower(typeName),
		Nullable:     "YES",
	}
	if strings.Contains(strings.ToUpper(tail), "NOT NULL") {
		cd.Nullable = "NO"
	}

	parts := strings.Split(sizeSpec, ",")
	switch len(parts) {
	case 1:
		if n, ok := parseInt(parts[0]); ok {
			cd.CharacterSize = &n
			cd.NumericPrecision = &n
		}
	case 2:
		if p, ok := parseInt(parts[0]); ok {
			if s, ok2 := parseInt(parts[1]); ok2 {
				cd.NumericPrecision = &p
				cd.NumericScale = &s
			}
		}
	}
	return cd
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Tables lists every CREATE TABLE found in the script, in the order
// they were declared. Every recovered table is reported as a
// "BASE TABLE" since a DDL script cannot distinguish table kinds any
// other way.
func (r *FileReader) Tables(ctx context.Context, database string) ([]catalog.TableDescription, error) {
	tables := make([]catalog.TableDescription, 0, len(r.order))
	for _, key := range r.order {
		t := r.tables[key]
		tables = append(tables, catalog.TableDescription{TableName: t.Name, TableType: "BASE TABLE"})
	}
	return tables, nil
}

// Columns returns the parsed column list for table, ignoring database
// and schemaName (a DDL script is scoped to one database already).
func (r *FileReader) Columns(ctx context.Context, database, schemaName, table string) ([]catalog.ColumnDescription, error) {
	t, ok := r.tables[strings.ToLower(table)]
	if !ok {
		return nil, sqlerr.New(sqlerr.Query, "table not found in DDL script", nil).
			WithContext("table", table)
	}
	return t.Columns, nil
}
