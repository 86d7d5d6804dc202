// Package sqltype implements the typed-datatype algebra: one tagged
// variant per MSSQL/MySQL datatype family, each with a clamping
// constructor, a dialect-specific render, and a total conversion into
// the other dialect's nearest variant.
//
// Every constructor in this package is total: invalid or out-of-range
// parameters are clamped to the variant's documented default rather
// than rejected. A Datatype, once constructed, never mutates.
package sqltype

import (
	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/mstgnz/sqltransfer/internal/sqlerr"
)

// dialectTag and its two values are local shorthand for the dialect
// constants, used throughout the variant files in this package.
type dialectTag = dialect.Dialect

const (
	mssql = dialect.MSSQL
	mysql = dialect.MYSQL
)

// Params is the neutral parameter record returned by Parameters. A
// field is nil unless the concrete variant defines it.
type Params struct {
	DatatypeName      string
	CharacterSize     *int
	CharacterSet      *string
	NumericPrecision  *int
	NumericScale      *int
	DatetimePrecision *int
}

// Datatype is one dialect-tagged, immutable SQL column type.
type Datatype interface {
	// DatatypeName returns the canonical name this value was built from.
	DatatypeName() string
	// Dialect returns the dialect this value belongs to.
	Dialect() dialect.Dialect
	// Render returns the dialect SQL fragment for this type.
	Render() string
	// Parameters returns the neutral parameter record for this value.
	Parameters() Params

	convertToMSSQL() Datatype
	convertToMySQL() Datatype
}

// ConvertTo maps dt into its nearest equivalent in target. Converting
// to dt's own dialect is the identity. target must be a recognized
// dialect or ConvertTo returns InvalidDialect.
func ConvertTo(dt Datatype, target dialect.Dialect) (Datatype, error) {
	switch target {
	case dialect.MSSQL:
		return dt.convertToMSSQL(), nil
	case dialect.MYSQL:
		return dt.convertToMySQL(), nil
	default:
		return nil, sqlerr.New(sqlerr.InvalidDialect, "not a recognized dialect", nil).
			WithContext("dialect", int(target))
	}
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }
