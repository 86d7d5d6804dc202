// Package catalog implements the external collaborator contract spec
// §6.1/§6.2 describes: given a dialect and a database, produce the
// table and column descriptions the typed-datatype factory consumes.
// The default implementation queries INFORMATION_SCHEMA; a second
// implementation in internal/ddlsource reads the same shape from a
// CREATE TABLE script instead of a live connection.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/mstgnz/sqltransfer/internal/sqlerr"
)

// ColumnDescription is one row of a table's column description.
// Every field but ColumnName and Nullable is optional because not
// every datatype defines it.
type ColumnDescription struct {
	ColumnName        string
	Nullable          string // "YES" | "NO"
	DatatypeName      string
	CharacterSize     *int
	CharacterSet      *string
	NumericPrecision  *int
	NumericScale      *int
	DatetimePrecision *int
}

// TableDescription is one row of a database's table listing.
type TableDescription struct {
	Schema    string
	TableName string
	TableType string
}

// Reader is the external collaborator contract: given a dialect and a
// database, produce its tables and, for one of them, its columns.
type Reader interface {
	Tables(ctx context.Context, database string) ([]TableDescription, error)
	Columns(ctx context.Context, database, schemaName, table string) ([]ColumnDescription, error)
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// safeIdentifier reports whether name is safe to interpolate directly
// into a FROM clause. Database and schema names cannot be bound as
// query parameters, so they are validated against a conservative
// identifier pattern instead of ever being placed in SQL unchecked.
func safeIdentifier(name string) bool {
	return name != "" && identifierPattern.MatchString(name)
}

// InformationSchemaReader is the Reader backed by a live
// INFORMATION_SCHEMA query against an open *sql.DB.
type InformationSchemaReader struct {
	db      *sql.DB
	dialect dialect.Dialect
}

// NewInformationSchemaReader returns a Reader for d using db. d must
// be a recognized dialect.
func NewInformationSchemaReader(db *sql.DB, d dialect.Dialect) (*InformationSchemaReader, error) {
	if !d.Valid() {
		return nil, sqlerr.New(sqlerr.InvalidDialect, "not a recognized dialect", nil).
			WithContext("dialect", int(d))
	}
	return &InformationSchemaReader{db: db, dialect: d}, nil
}

func (r *InformationSchemaReader) placeholder(pos int) string {
	if r.dialect == dialect.MSSQL {
		return fmt.Sprintf("@p%d", pos)
	}
	return "?"
}

// Tables lists every table INFORMATION_SCHEMA.TABLES reports for
// database, across all its schemas.
func (r *InformationSchemaReader) Tables(ctx context.Context, database string) ([]TableDescription, error) {
	if !safeIdentifier(database) {
		return nil, sqlerr.New(sqlerr.Query, "database name is not a safe identifier", nil).
			WithContext("database", database)
	}

	var query string
	var args []any
	if r.dialect == dialect.MSSQL {
		query = fmt.Sprintf(`SELECT TABLE_SCHEMA, TABLE_NAME, TABLE_TYPE FROM %s.INFORMATION_SCHEMA.TABLES;`, database)
	} else {
		query = fmt.Sprintf(`SELECT '', TABLE_NAME, TABLE_TYPE FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = %s;`, r.placeholder(1))
		args = append(args, database)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlerr.New(sqlerr.Query, "querying INFORMATION_SCHEMA.TABLES failed", err).
			WithContext("database", database)
	}
	defer rows.Close()

	var tables []TableDescription
	for rows.Next() {
		var td TableDescription
		if err := rows.Scan(&td.Schema, &td.TableName, &td.TableType); err != nil {
			return nil, sqlerr.New(sqlerr.Query, "scanning INFORMATION_SCHEMA.TABLES row failed", err)
		}
		tables = append(tables, td)
	}
	return tables, rows.Err()
}

// Columns lists every column INFORMATION_SCHEMA.COLUMNS reports for
// database.schema.table, in ordinal order.
func (r *InformationSchemaReader) Columns(ctx context.Context, database, schemaName, table string) ([]ColumnDescription, error) {
	if !safeIdentifier(database) {
		return nil, sqlerr.New(sqlerr.Query, "database name is not a safe identifier", nil).
			WithContext("database", database)
	}

	const selectList = `COLUMN_NAME, IS_NULLABLE, DATA_TYPE, CHARACTER_MAXIMUM_LENGTH,
		CHARACTER_SET_NAME, NUMERIC_PRECISION, NUMERIC_SCALE, DATETIME_PRECISION`

	var query string
	var args []any
	if r.dialect == dialect.MSSQL {
		query = fmt.Sprintf(`SELECT %s FROM %s.INFORMATION_SCHEMA.COLUMNS
			WHERE TABLE_SCHEMA = %s AND TABLE_NAME = %s ORDER BY ORDINAL_POSITION;`,
			selectList, database, r.placeholder(1), r.placeholder(2))
		args = append(args, schemaName, table)
	} else {
		query = fmt.Sprintf(`SELECT %s FROM INFORMATION_SCHEMA.COLUMNS
			WHERE TABLE_SCHEMA = %s AND TABLE_NAME = %s ORDER BY ORDINAL_POSITION;`,
			selectList, r.placeholder(1), r.placeholder(2))
		args = append(args, database, table)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlerr.New(sqlerr.Query, "querying INFORMATION_SCHEMA.COLUMNS failed", err).
			WithContext("database", database).WithContext("table", table)
	}
	defer rows.Close()

	var columns []ColumnDescription
	for rows.Next() {
		var cd ColumnDescription
		if err := rows.Scan(&cd.ColumnName, &cd.Nullable, &cd.DatatypeName, &cd.CharacterSize,
			&cd.CharacterSet, &cd.NumericPrecision, &cd.NumericScale, &cd.DatetimePrecision); err != nil {
			return nil, sqlerr.New(sqlerr.Query, "scanning INFORMATION_SCHEMA.COLUMNS row failed", err)
		}
		columns = append(columns, cd)
	}
	return columns, rows.Err()
}
