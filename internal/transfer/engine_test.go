package transfer

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mstgnz/sqltransfer/catalog"
	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/mstgnz/sqltransfer/internal/console"
	"github.com/mstgnz/sqltransfer/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader is a minimal catalog.Reader fixture for one table.
type fakeReader struct {
	tables  []catalog.TableDescription
	columns map[string][]catalog.ColumnDescription
}

func (f *fakeReader) Tables(ctx context.Context, database string) ([]catalog.TableDescription, error) {
	return f.tables, nil
}

func (f *fakeReader) Columns(ctx context.Context, database, schemaName, table string) ([]catalog.ColumnDescription, error) {
	return f.columns[table], nil
}

func intp(v int) *int { return &v }

func testLoggers(t *testing.T) (*telemetry.Logger, *console.Logger) {
	t.Helper()
	dir := t.TempDir()
	audit, err := telemetry.NewLogger(telemetry.LogConfig{
		Format:     telemetry.JSONFormat,
		OutputPath: filepath.Join(dir, "audit.log"),
		ErrorPath:  filepath.Join(dir, "audit-error.log"),
	})
	require.NoError(t, err)

	cons := console.NewLogger(console.Config{
		Outputs: []console.LogOutput{{Writer: io.Discard, Formatter: &console.TextFormatter{TimeFormat: time.RFC3339}}},
	})
	return audit, cons
}

func TestTransfer_MySQLToMSSQL_SingleTable(t *testing.T) {
	sourceDB, sourceMock, err := sqlmock.New()
	require.NoError(t, err)
	defer sourceDB.Close()

	targetDB, targetMock, err := sqlmock.New()
	require.NoError(t, err)
	defer targetDB.Close()

	reader := &fakeReader{
		tables: []catalog.TableDescription{{Schema: "", TableName: "customers", TableType: "BASE TABLE"}},
		columns: map[string][]catalog.ColumnDescription{
			"customers": {
				{ColumnName: "id", Nullable: "NO", DatatypeName: "int"},
				{ColumnName: "email", Nullable: "YES", DatatypeName: "varchar", CharacterSize: intp(255)},
			},
		},
	}

	rows := sqlmock.NewRows([]string{"id", "email"}).
		AddRow(int64(1), "a@example.com").
		AddRow(int64(2), "b@example.com")
	sourceMock.ExpectQuery("SELECT \\* FROM shop.customers").WillReturnRows(rows)

	targetMock.ExpectExec("DROP TABLE IF EXISTS shop.dbo.customers").WillReturnResult(sqlmock.NewResult(0, 0))
	targetMock.ExpectExec("CREATE TABLE shop.dbo.customers").WillReturnResult(sqlmock.NewResult(0, 0))
	targetMock.ExpectExec("INSERT INTO shop.dbo.customers").WithArgs(int64(1), "a@example.com").WillReturnResult(sqlmock.NewResult(1, 1))
	targetMock.ExpectExec("INSERT INTO shop.dbo.customers").WithArgs(int64(2), "b@example.com").WillReturnResult(sqlmock.NewResult(1, 1))

	audit, cons := testLoggers(t)
	engine := NewEngine(
		Endpoint{Dialect: dialect.MYSQL, DB: sourceDB, Reader: reader, Database: "shop"},
		Endpoint{Dialect: dialect.MSSQL, DB: targetDB, Database: "shop"},
		2, audit, cons,
	)

	err = engine.Transfer(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), engine.Metrics().TablesTransferred())
	assert.Equal(t, int64(2), engine.Metrics().RowsTransferred())
	assert.NoError(t, sourceMock.ExpectationsWereMet())
	assert.NoError(t, targetMock.ExpectationsWereMet())
}

func TestTransfer_AllowListFiltersTables(t *testing.T) {
	sourceDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sourceDB.Close()
	targetDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer targetDB.Close()

	reader := &fakeReader{
		tables: []catalog.TableDescription{
			{TableName: "customers", TableType: "BASE TABLE"},
			{TableName: "orders", TableType: "BASE TABLE"},
		},
	}

	audit, cons := testLoggers(t)
	engine := NewEngine(
		Endpoint{Dialect: dialect.MYSQL, DB: sourceDB, Reader: reader, Database: "shop"},
		Endpoint{Dialect: dialect.MSSQL, DB: targetDB, Database: "shop"},
		1, audit, cons,
	)

	err = engine.Transfer(context.Background(), []string{"does-not-exist"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), engine.Metrics().TablesTransferred())
	assert.Equal(t, int64(0), engine.Metrics().TablesFailed())
}

func TestTransfer_NonBaseTableSkippedAsFailure(t *testing.T) {
	sourceDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sourceDB.Close()
	targetDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer targetDB.Close()

	reader := &fakeReader{
		tables: []catalog.TableDescription{{TableName: "customer_view", TableType: "VIEW"}},
	}

	audit, cons := testLoggers(t)
	engine := NewEngine(
		Endpoint{Dialect: dialect.MYSQL, DB: sourceDB, Reader: reader, Database: "shop"},
		Endpoint{Dialect: dialect.MSSQL, DB: targetDB, Database: "shop"},
		1, audit, cons,
	)

	err = engine.Transfer(context.Background(), nil)
	assert.Error(t, err)
	assert.Equal(t, int64(1), engine.Metrics().TablesFailed())
}

func TestRebind_MSSQLNumbersPlaceholders(t *testing.T) {
	got := rebind(dialect.MSSQL, "INSERT INTO t (a, b) VALUES (?, ?);")
	assert.Equal(t, "INSERT INTO t (a, b) VALUES (@p1, @p2);", got)
}

func TestRebind_MySQLLeavesPlaceholdersUnchanged(t *testing.T) {
	got := rebind(dialect.MYSQL, "INSERT INTO t (a, b) VALUES (?, ?);")
	assert.Equal(t, "INSERT INTO t (a, b) VALUES (?, ?);", got)
}
