// Package schema implements the Column and Table wrappers laid over
// the typed-datatype algebra: an ordered column list plus table
// identity, and the dialect-qualified SQL statement renders the
// transfer engine executes against source and target.
package schema

import (
	"fmt"
	"strings"

	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/mstgnz/sqltransfer/internal/sqlerr"
	"github.com/mstgnz/sqltransfer/sqltype"
)

// Column pairs a name and nullability with a typed datatype.
type Column struct {
	Name     string
	Datatype sqltype.Datatype
	Nullable bool // true iff the source reported nullable "YES"
}

// Render returns "{name} {datatype render} {null|not null}".
func (c Column) Render() string {
	null := "not null"
	if c.Nullable {
		null = "null"
	}
	return fmt.Sprintf("%s %s %s", c.Name, c.Datatype.Render(), null)
}

// Table is the ordered column list plus identity for one source or
// target table. Database and Table are required; Schema is optional
// and dialect-dependent (MSSQL defaults it to "dbo", MySQL ignores
// it entirely).
type Table struct {
	dialect   dialect.Dialect
	Database  string
	Schema    string
	TableName string
	Columns   []Column
}

// New builds a Table for d. tableType must read "BASE TABLE" — the
// only table kind this system transfers (views, system tables, and
// anything else raise InvalidTableType). schema is ignored for MySQL
// and defaults to "dbo" for MSSQL when empty.
func New(d dialect.Dialect, database, schemaName, tableName, tableType string, columns []Column) (*Table, error) {
	if !d.Valid() {
		return nil, sqlerr.New(sqlerr.InvalidDialect, "not a recognized dialect", nil).
			WithContext("dialect", int(d))
	}
	if tableType != "BASE TABLE" {
		return nil, sqlerr.New(sqlerr.InvalidTableType, "only BASE TABLE can be transferred", nil).
			WithContext("table", tableName).
			WithContext("table_type", tableType)
	}
	if d == dialect.MSSQL {
		if schemaName == "" {
			schemaName = "dbo"
		}
	} else {
		schemaName = ""
	}
	return &Table{dialect: d, Database: database, Schema: schemaName, TableName: tableName, Columns: columns}, nil
}

// Dialect returns the dialect this table belongs to.
func (t *Table) Dialect() dialect.Dialect { return t.dialect }

// Qualified returns the dialect-qualified table reference: MSSQL
// renders "{database}.{schema}.{table}", MySQL "{database}.{table}".
func (t *Table) Qualified() string {
	if t.dialect == dialect.MSSQL {
		return fmt.Sprintf("%s.%s.%s", t.Database, t.Schema, t.TableName)
	}
	return fmt.Sprintf("%s.%s", t.Database, t.TableName)
}

// RenderCreate returns a CREATE TABLE statement for this table.
func (t *Table) RenderCreate() string {
	lines := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		lines[i] = "  " + c.Render()
	}
	return fmt.Sprintf("CREATE TABLE %s (\n\n%s\n\n);", t.Qualified(), strings.Join(lines, ",\n"))
}

// RenderSelect returns a SELECT * statement for this table.
func (t *Table) RenderSelect() string {
	return fmt.Sprintf("SELECT * FROM %s;", t.Qualified())
}

// RenderInsert returns a parameterized INSERT statement with one '?'
// placeholder per column, in column order.
func (t *Table) RenderInsert() string {
	names := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", t.Qualified(), strings.Join(names, ", "), strings.Join(marks, ", "))
}

// RenderDrop returns a DROP TABLE IF EXISTS statement for this table.
func (t *Table) RenderDrop() string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s;", t.Qualified())
}
