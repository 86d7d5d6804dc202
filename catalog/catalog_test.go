package catalog

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/stretchr/testify/assert"
)

func TestNewInformationSchemaReader_InvalidDialect(t *testing.T) {
	_, err := NewInformationSchemaReader(nil, dialect.Dialect(5))
	assert.Error(t, err)
}

func TestSafeIdentifier(t *testing.T) {
	assert.True(t, safeIdentifier("shop_db"))
	assert.True(t, safeIdentifier("_shop"))
	assert.False(t, safeIdentifier(""))
	assert.False(t, safeIdentifier("shop; DROP TABLE users"))
	assert.False(t, safeIdentifier("shop-db"))
}

func TestColumns_RejectsUnsafeDatabaseName(t *testing.T) {
	r, _ := NewInformationSchemaReader(nil, dialect.MYSQL)
	_, err := r.Columns(context.Background(), "shop; --", "", "customers")
	assert.Error(t, err)
}

func TestColumns_MySQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"COLUMN_NAME", "IS_NULLABLE", "DATA_TYPE", "CHARACTER_MAXIMUM_LENGTH",
		"CHARACTER_SET_NAME", "NUMERIC_PRECISION", "NUMERIC_SCALE", "DATETIME_PRECISION",
	}).AddRow("email", "YES", "varchar", 255, "utf8mb4", nil, nil, nil)

	mock.ExpectQuery("FROM INFORMATION_SCHEMA.COLUMNS").
		WithArgs("shop", "customers").
		WillReturnRows(rows)

	r, err := NewInformationSchemaReader(db, dialect.MYSQL)
	assert.NoError(t, err)

	cols, err := r.Columns(context.Background(), "shop", "", "customers")
	assert.NoError(t, err)
	assert.Len(t, cols, 1)
	assert.Equal(t, "email", cols[0].ColumnName)
	assert.Equal(t, "YES", cols[0].Nullable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTables_MSSQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"TABLE_SCHEMA", "TABLE_NAME", "TABLE_TYPE"}).
		AddRow("dbo", "customers", "BASE TABLE")

	mock.ExpectQuery("FROM shop.INFORMATION_SCHEMA.TABLES").WillReturnRows(rows)

	r, err := NewInformationSchemaReader(db, dialect.MSSQL)
	assert.NoError(t, err)

	tables, err := r.Tables(context.Background(), "shop")
	assert.NoError(t, err)
	assert.Len(t, tables, 1)
	assert.Equal(t, "customers", tables[0].TableName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
