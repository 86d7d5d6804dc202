package schema

import (
	"testing"

	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/mstgnz/sqltransfer/sqltype"
	"github.com/stretchr/testify/assert"
)

func col(t *testing.T, d dialect.Dialect, name, raw string, nullable bool, size *int) Column {
	t.Helper()
	dt, err := sqltype.Create(d, raw, sqltype.CreateParams{CharacterSize: size})
	assert.NoError(t, err)
	return Column{Name: name, Datatype: dt, Nullable: nullable}
}

func TestNew_RejectsNonBaseTable(t *testing.T) {
	_, err := New(dialect.MSSQL, "db", "dbo", "v_customers", "VIEW", nil)
	assert.Error(t, err)
}

func TestNew_InvalidDialect(t *testing.T) {
	_, err := New(dialect.Dialect(9), "db", "", "t", "BASE TABLE", nil)
	assert.Error(t, err)
}

func TestNew_MSSQLDefaultsSchemaToDbo(t *testing.T) {
	tbl, err := New(dialect.MSSQL, "db", "", "customers", "BASE TABLE", nil)
	assert.NoError(t, err)
	assert.Equal(t, "dbo", tbl.Schema)
	assert.Equal(t, "db.dbo.customers", tbl.Qualified())
}

func TestNew_MySQLIgnoresSchema(t *testing.T) {
	tbl, err := New(dialect.MYSQL, "db", "whatever", "customers", "BASE TABLE", nil)
	assert.NoError(t, err)
	assert.Equal(t, "", tbl.Schema)
	assert.Equal(t, "db.customers", tbl.Qualified())
}

func TestColumn_RenderNullability(t *testing.T) {
	size := 50
	nullable := col(t, dialect.MSSQL, "email", "varchar", true, &size)
	assert.Equal(t, "email varchar(50) null", nullable.Render())

	notNullable := col(t, dialect.MSSQL, "email", "varchar", false, &size)
	assert.Equal(t, "email varchar(50) not null", notNullable.Render())
}

func TestTable_RenderStatements(t *testing.T) {
	size := 50
	idSize := 0
	cols := []Column{
		col(t, dialect.MYSQL, "id", "bigint", false, &idSize),
		col(t, dialect.MYSQL, "name", "varchar", true, &size),
	}
	tbl, err := New(dialect.MYSQL, "shop", "", "customers", "BASE TABLE", cols)
	assert.NoError(t, err)

	assert.Equal(t, "SELECT * FROM shop.customers;", tbl.RenderSelect())
	assert.Equal(t, "DROP TABLE IF EXISTS shop.customers;", tbl.RenderDrop())
	assert.Equal(t, "INSERT INTO shop.customers (id, name) VALUES (?, ?);", tbl.RenderInsert())

	create := tbl.RenderCreate()
	assert.Contains(t, create, "CREATE TABLE shop.customers (")
	assert.Contains(t, create, "id bigint not null")
	assert.Contains(t, create, "name varchar(50) character set latin1 null")
}
