package sqltype

import (
	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/mstgnz/sqltransfer/internal/sqlerr"
	"github.com/mstgnz/sqltransfer/typename"
)

// CreateParams carries the optional per-variant parameters to Create.
// A nil field means the caller did not supply that parameter; the
// constructed variant falls back to its documented default exactly as
// it would for an explicitly out-of-range value.
type CreateParams struct {
	CharacterSize     *int
	CharacterSet      *string
	NumericPrecision  *int
	NumericScale      *int
	DatetimePrecision *int
}

func orMissingInt(p *int) int {
	if p == nil {
		return -1
	}
	return *p
}

func orMissingString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Create builds a Datatype for rawName under dialect d. rawName is
// resolved through d's datatype-name catalog first, so any synonym in
// any case is accepted. A name the catalog does not recognize returns
// UnknownDatatype; a dialect outside the Dialect enumeration returns
// InvalidDialect. Every other parameter is clamped, never rejected.
func Create(d dialect.Dialect, rawName string, p CreateParams) (Datatype, error) {
	names, err := typename.New(d)
	if err != nil {
		return nil, err
	}
	canonical, ok := names.Canonical(rawName)
	if !ok {
		return nil, sqlerr.New(sqlerr.UnknownDatatype, "not a recognized datatype name", nil).
			WithContext("dialect", d.ID()).
			WithContext("name", rawName)
	}

	switch d {
	case dialect.MSSQL:
		return createMSSQL(canonical, p)
	case dialect.MYSQL:
		return createMySQL(canonical, p)
	default:
		return nil, sqlerr.New(sqlerr.InvalidDialect, "not a recognized dialect", nil)
	}
}

func createMSSQL(name string, p CreateParams) (Datatype, error) {
	size := orMissingInt(p.CharacterSize)
	precision := orMissingInt(p.NumericPrecision)
	scale := orMissingInt(p.NumericScale)
	dtPrecision := orMissingInt(p.DatetimePrecision)

	switch name {
	case "varchar", "nvarchar":
		return NewMsVarchar(name, size), nil
	case "text", "ntext":
		return NewMsText(name), nil
	case "char", "nchar":
		return NewMsChar(name, size), nil
	case "varbinary":
		return NewMsVarbinary(size), nil
	case "binary":
		return NewMsBinary(size), nil
	case "numeric", "decimal":
		return NewMsNumeric(name, precision, scale), nil
	case "float", "real":
		return NewMsFloat(name), nil
	case "bit", "tinyint", "smallint", "int", "bigint":
		return NewMsInteger(name), nil
	case "smallmoney", "money":
		return NewMsMoney(name), nil
	case "timestamp":
		return NewMsTimestamp(), nil
	case "date", "datetime", "smalldatetime":
		return NewMsDatetimeOne(name), nil
	case "datetime2", "datetimeoffset", "time":
		return NewMsDatetimeTwo(name, dtPrecision), nil
	case "geography", "geometry", "hierarchyid", "image", "sql_variant", "sysname", "uniqueidentifier", "xml":
		return NewMsOther(name), nil
	default:
		return nil, sqlerr.New(sqlerr.UnknownDatatype, "not a recognized datatype name", nil).
			WithContext("name", name)
	}
}

func createMySQL(name string, p CreateParams) (Datatype, error) {
	size := orMissingInt(p.CharacterSize)
	cs := orMissingString(p.CharacterSet)
	precision := orMissingInt(p.NumericPrecision)
	scale := orMissingInt(p.NumericScale)
	dtPrecision := orMissingInt(p.DatetimePrecision)

	switch name {
	case "varchar", "enum", "set":
		return NewMyVarchar(size, cs), nil
	case "nvarchar", "nchar":
		// nvarchar/nchar are MySQL synonyms carrying a forced utf8mb4
		// charset rather than independent variants.
		if name == "nchar" {
			return NewMyChar(size, "utf8mb4"), nil
		}
		return NewMyVarchar(size, "utf8mb4"), nil
	case "text":
		return NewMyText(size, cs), nil
	case "tinytext", "mediumtext", "longtext":
		return NewMyOtherText(name, cs), nil
	case "char":
		return NewMyChar(size, cs), nil
	case "varbinary":
		return NewMyVarbinary(size), nil
	case "binary":
		return NewMyBinary(size), nil
	case "blob":
		return NewMyBlob(size), nil
	case "tinyblob", "mediumblob", "longblob":
		return NewMyOtherBlob(name), nil
	case "decimal":
		return NewMyDecimal(precision, scale), nil
	case "float":
		return NewMyFloat("float"), nil
	case "double":
		return NewMyFloat("double"), nil
	case "bit":
		return NewMyBit(precision), nil
	case "tinyint", "smallint", "mediumint", "int", "bigint", "serial":
		return NewMyInteger(name, "signed"), nil
	case "date":
		return NewMyDate(), nil
	case "datetime", "time", "timestamp":
		return NewMyDatetime(name, dtPrecision), nil
	case "year":
		return NewMyYear(), nil
	default:
		return nil, sqlerr.New(sqlerr.UnknownDatatype, "not a recognized datatype name", nil).
			WithContext("name", name)
	}
}
