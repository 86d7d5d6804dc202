// Package charset implements the per-dialect character-set catalog:
// a mapping from character-set name to its maximum byte width per
// character and its character/unicode classification.
//
// MSSQL does not express character set at the type level, so its
// catalog is empty. MYSQL's catalog enumerates the ~41 character sets
// MySQL itself ships.
package charset

import (
	"strings"

	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/mstgnz/sqltransfer/internal/sqlerr"
)

// Category classifies a character set as plain "character" data or
// "unicode" data. Preserved verbatim from the source catalog: utf8
// is classified "unicode" while utf16/utf16le/utf32 are classified
// "character" despite also being Unicode encodings — this is an
// intentional upstream quirk, not a bug, and downstream conversion
// logic depends on it.
type Category string

const (
	Character Category = "character"
	Unicode   Category = "unicode"
)

// Entry is one character set's catalog record.
type Entry struct {
	Name        string
	Description string
	MaxBytes    int // 1, 2, 3, or 4
	Category    Category
}

// Catalog is a dialect's immutable character-set table.
type Catalog struct {
	dialect dialect.Dialect
	entries map[string]Entry
}

// New returns the character-set catalog for d. Passing a value
// outside the dialect.Dialect enumeration returns InvalidDialect.
func New(d dialect.Dialect) (*Catalog, error) {
	if !d.Valid() {
		return nil, sqlerr.New(sqlerr.InvalidDialect, "not a recognized dialect", nil).
			WithContext("dialect", int(d))
	}
	switch d {
	case dialect.MSSQL:
		return &Catalog{dialect: d, entries: mssqlCharacterSets}, nil
	case dialect.MYSQL:
		return &Catalog{dialect: d, entries: mysqlCharacterSets}, nil
	default:
		return nil, sqlerr.New(sqlerr.InvalidDialect, "not a recognized dialect", nil)
	}
}

// Lookup returns the entry for name and whether it exists in the
// catalog. Lookups are case-insensitive.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[strings.ToLower(name)]
	return e, ok
}

// Format renders name as a SQL "character set" clause, or "" if name
// is not in the catalog. The empty-string sentinel (rather than an
// error) lets renderers concatenate output unconditionally (spec
// §4.2 rationale).
func (c *Catalog) Format(name string) string {
	if _, ok := c.Lookup(name); !ok {
		return ""
	}
	return "character set " + strings.ToLower(name)
}

// CategoryOf returns the category of name, or "" if unknown.
func (c *Catalog) CategoryOf(name string) Category {
	e, ok := c.Lookup(name)
	if !ok {
		return ""
	}
	return e.Category
}

// MaxLength returns the max bytes-per-char of name, or 0 if unknown.
func (c *Catalog) MaxLength(name string) int {
	e, ok := c.Lookup(name)
	if !ok {
		return 0
	}
	return e.MaxBytes
}

// Dialect returns the dialect this catalog was built for.
func (c *Catalog) Dialect() dialect.Dialect {
	return c.dialect
}
