package sqltype

import (
	"strings"
	"testing"

	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/stretchr/testify/assert"
)

// Invariant: canonical normalization is idempotent — creating from a
// canonical name or any of its synonyms yields the same rendered type.
func TestInvariant_CanonicalNormalization(t *testing.T) {
	a, err := Create(dialect.MSSQL, "integer", CreateParams{})
	assert.NoError(t, err)
	b, err := Create(dialect.MSSQL, "int", CreateParams{})
	assert.NoError(t, err)
	assert.Equal(t, a.Render(), b.Render())
}

// Invariant: the factory is total over every canonical name in a
// dialect's catalog — no canonical name produces an error.
func TestInvariant_FactoryTotalOnCanonicals(t *testing.T) {
	for _, name := range []string{
		"varchar", "nvarchar", "text", "ntext", "char", "nchar", "varbinary", "binary",
		"numeric", "decimal", "float", "real", "bit", "tinyint", "smallint", "int", "bigint",
		"smallmoney", "money", "timestamp", "date", "datetime", "smalldatetime",
		"datetime2", "datetimeoffset", "time", "geography", "geometry", "hierarchyid",
		"image", "sql_variant", "sysname", "uniqueidentifier", "xml",
	} {
		_, err := Create(dialect.MSSQL, name, CreateParams{})
		assert.NoErrorf(t, err, "mssql canonical %q should construct", name)
	}

	for _, name := range []string{
		"varchar", "nvarchar", "text", "tinytext", "mediumtext", "longtext", "char", "nchar",
		"set", "enum", "decimal", "float", "double", "bit", "tinyint", "smallint", "mediumint",
		"int", "bigint", "serial", "varbinary", "binary", "blob", "tinyblob", "mediumblob",
		"longblob", "date", "datetime", "time", "timestamp", "year",
	} {
		_, err := Create(dialect.MYSQL, name, CreateParams{})
		assert.NoErrorf(t, err, "mysql canonical %q should construct", name)
	}
}

// Invariant: clamping is idempotent — re-clamping an already-clamped
// value changes nothing.
func TestInvariant_ClampingIsIdempotent(t *testing.T) {
	once := NewMsNumeric("decimal", 1000, 1000)
	twice := NewMsNumeric("decimal", once.precision, once.scale)
	assert.Equal(t, once.precision, twice.precision)
	assert.Equal(t, once.scale, twice.scale)

	v1 := NewMyVarchar(999999999, "latin1")
	v2 := NewMyVarchar(v1.size, v1.charset)
	assert.Equal(t, v1.size, v2.size)
}

// Invariant: converting to a type's own dialect is the identity.
func TestInvariant_IdentityOnSameDialectConvert(t *testing.T) {
	dts := []Datatype{
		NewMsVarchar("varchar", 10),
		NewMsInteger("bigint"),
		NewMyDecimal(10, 2),
		NewMyDate(),
	}
	for _, dt := range dts {
		got, err := ConvertTo(dt, dt.Dialect())
		assert.NoError(t, err)
		assert.Same(t, dt, got)
	}
}

// Invariant: a conversion target is always itself valid in the target
// dialect — it renders without panicking and is non-empty.
func TestInvariant_TargetIsLegalInTargetDialect(t *testing.T) {
	sources := []Datatype{
		NewMsVarchar("varchar", 10), NewMsText("text"), NewMsChar("char", 5),
		NewMsBinary(10), NewMsVarbinary(10), NewMsNumeric("numeric", 10, 2),
		NewMsFloat("float"), NewMsInteger("bigint"), NewMsMoney("money"),
		NewMsDatetimeOne("date"), NewMsDatetimeTwo("datetime2", 3), NewMsTimestamp(),
		NewMsOther("xml"),
	}
	for _, dt := range sources {
		got, err := ConvertTo(dt, dialect.MYSQL)
		assert.NoError(t, err)
		assert.NotEmpty(t, got.Render())
	}

	targets := []Datatype{
		NewMyVarchar(10, "latin1"), NewMyText(100, "latin1"), NewMyOtherText("tinytext", "latin1"),
		NewMyChar(5, "latin1"), NewMyBinary(10), NewMyVarbinary(10), NewMyBlob(100),
		NewMyOtherBlob("tinyblob"), NewMyDecimal(10, 2), NewMyFloat("float"), NewMyBit(8),
		NewMyInteger("bigint", "signed"), NewMyDate(), NewMyDatetime("datetime", 3), NewMyYear(),
	}
	for _, dt := range targets {
		got, err := ConvertTo(dt, dialect.MSSQL)
		assert.NoError(t, err)
		assert.NotEmpty(t, got.Render())
	}
}

// Invariant: render followed by re-create through the factory using
// the rendered parameters reproduces an equivalent value, except for
// MyText's bucket-name quirk (its render shows the bucket name, not
// its stored canonical "text" name).
func TestInvariant_RenderReparses(t *testing.T) {
	dt, err := Create(dialect.MSSQL, "char", CreateParams{CharacterSize: intp(20)})
	assert.NoError(t, err)
	leading := strings.FieldsFunc(dt.Render(), func(r rune) bool { return r == '(' || r == ' ' })[0]
	again, err := Create(dialect.MSSQL, leading, CreateParams{CharacterSize: intp(20)})
	assert.NoError(t, err)
	assert.Equal(t, dt.Render(), again.Render())
}

func TestInvariant_MyTextBucketNameDivergesFromCanonicalName(t *testing.T) {
	dt := NewMyText(100, "latin1")
	assert.Equal(t, "text", dt.DatatypeName())
	assert.Equal(t, "tinytext character set latin1", dt.Render())
}

// Invariant: a column's datatype survives a render/describe round trip
// through the factory with the same parameters.
func TestInvariant_ColumnRoundTrip(t *testing.T) {
	size := 42
	dt, err := Create(dialect.MYSQL, "varchar", CreateParams{CharacterSize: &size, CharacterSet: strp("utf8mb4")})
	assert.NoError(t, err)
	params := dt.Parameters()
	rebuilt, err := Create(dialect.MYSQL, params.DatatypeName, CreateParams{
		CharacterSize: params.CharacterSize,
		CharacterSet:  params.CharacterSet,
	})
	assert.NoError(t, err)
	assert.Equal(t, dt.Render(), rebuilt.Render())
}
