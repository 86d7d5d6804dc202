package ddlsource

import (
	"context"
	"testing"

	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/stretchr/testify/assert"
)

const mssqlDDL = `
CREATE TABLE dbo.customers (
	id int NOT NULL,
	email nvarchar(255) NOT NULL,
	balance decimal(10, 2) NULL,
	CONSTRAINT pk_customers PRIMARY KEY (id)
);
`

const mysqlDDL = `
CREATE TABLE orders (
	id bigint NOT NULL,
	customer_email varchar(320) NULL,
	total decimal(12, 4) NOT NULL,
	PRIMARY KEY (id)
);
`

func TestNewFileReader_InvalidDialect(t *testing.T) {
	_, err := NewFileReader(dialect.Dialect(9), mssqlDDL)
	assert.Error(t, err)
}

func TestTables_RecoversEachCreateTable(t *testing.T) {
	r, err := NewFileReader(dialect.MSSQL, mssqlDDL)
	assert.NoError(t, err)

	tables, err := r.Tables(context.Background(), "shop")
	assert.NoError(t, err)
	assert.Len(t, tables, 1)
	assert.Equal(t, "customers", tables[0].TableName)
	assert.Equal(t, "BASE TABLE", tables[0].TableType)
}

func TestColumns_MSSQL_SkipsConstraintsAndParsesSizes(t *testing.T) {
	r, err := NewFileReader(dialect.MSSQL, mssqlDDL)
	assert.NoError(t, err)

	cols, err := r.Columns(context.Background(), "shop", "dbo", "customers")
	assert.NoError(t, err)
	assert.Len(t, cols, 3)

	assert.Equal(t, "id", cols[0].ColumnName)
	assert.Equal(t, "NO", cols[0].Nullable)

	assert.Equal(t, "email", cols[1].ColumnName)
	assert.Equal(t, "nvarchar", cols[1].DatatypeName)
	assert.NotNil(t, cols[1].CharacterSize)
	assert.Equal(t, 255, *cols[1].CharacterSize)
	assert.Equal(t, "NO", cols[1].Nullable)

	assert.Equal(t, "balance", cols[2].ColumnName)
	assert.NotNil(t, cols[2].NumericPrecision)
	assert.NotNil(t, cols[2].NumericScale)
	assert.Equal(t, 10, *cols[2].NumericPrecision)
	assert.Equal(t, 2, *cols[2].NumericScale)
	assert.Equal(t, "YES", cols[2].Nullable)
}

func TestColumns_MySQL_ParsesDecimalAndVarchar(t *testing.T) {
	r, err := NewFileReader(dialect.MYSQL, mysqlDDL)
	assert.NoError(t, err)

	cols, err := r.Columns(context.Background(), "shop", "", "orders")
	assert.NoError(t, err)
	assert.Len(t, cols, 3)

	assert.Equal(t, "customer_email", cols[1].ColumnName)
	assert.Equal(t, 320, *cols[1].CharacterSize)
	assert.Equal(t, "YES", cols[1].Nullable)

	assert.Equal(t, "total", cols[2].ColumnName)
	assert.Equal(t, 12, *cols[2].NumericPrecision)
	assert.Equal(t, 4, *cols[2].NumericScale)
	assert.Equal(t, "NO", cols[2].Nullable)
}

func TestColumns_UnknownTableReturnsError(t *testing.T) {
	r, err := NewFileReader(dialect.MYSQL, mysqlDDL)
	assert.NoError(t, err)

	_, err = r.Columns(context.Background(), "shop", "", "missing")
	assert.Error(t, err)
}
