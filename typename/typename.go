// Package typename implements the per-dialect datatype-name catalog:
// canonical datatype names, their synonyms, and the reverse
// (synonym → canonical) index the typed-datatype factory uses to
// normalize user input before dispatch.
package typename

import (
	"strings"

	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/mstgnz/sqltransfer/internal/sqlerr"
)

// Category is the coarse classification assigned to every canonical
// datatype name.
type Category string

const (
	CharacterString Category = "CharacterString"
	Numeric         Category = "Numeric"
	Binary          Category = "Binary"
	Datetime        Category = "Datetime"
	Other           Category = "Other"
)

// Entry is one canonical datatype's catalog record.
type Entry struct {
	Name     string
	Synonyms []string
	Category Category
}

// Catalog is a dialect's immutable datatype-name table, with its
// reverse synonym index precomputed at construction.
type Catalog struct {
	dialect dialect.Dialect
	byName  map[string]Entry
	reverse map[string]string // lowercase synonym -> canonical name
}

// New returns the datatype-name catalog for d. Passing a value
// outside the dialect.Dialect enumeration returns InvalidDialect.
func New(d dialect.Dialect) (*Catalog, error) {
	if !d.Valid() {
		return nil, sqlerr.New(sqlerr.InvalidDialect, "not a recognized dialect", nil).
			WithContext("dialect", int(d))
	}

	var entries []Entry
	switch d {
	case dialect.MSSQL:
		entries = mssqlDatatypes
	case dialect.MYSQL:
		entries = mysqlDatatypes
	default:
		return nil, sqlerr.New(sqlerr.InvalidDialect, "not a recognized dialect", nil)
	}

	c := &Catalog{
		dialect: d,
		byName:  make(map[string]Entry, len(entries)),
		reverse: make(map[string]string),
	}
	for _, e := range entries {
		c.byName[e.Name] = e
		for _, syn := range e.Synonyms {
			c.reverse[strings.ToLower(syn)] = e.Name
		}
	}
	return c, nil
}

// Canonical resolves a synonym (any case) to its canonical name. The
// zero value and false are returned if synonym is not in the catalog.
func (c *Catalog) Canonical(synonym string) (string, bool) {
	name, ok := c.reverse[strings.ToLower(synonym)]
	return name, ok
}

// resolve returns the catalog Entry addressed by name, which may be
// either a canonical name or any synonym.
func (c *Catalog) resolve(name string) (Entry, bool) {
	canonical, ok := c.Canonical(name)
	if !ok {
		return Entry{}, false
	}
	e, ok := c.byName[canonical]
	return e, ok
}

// Metadata returns the full catalog entry addressed by name (canonical
// or synonym), or the zero Entry if unknown.
func (c *Catalog) Metadata(name string) Entry {
	e, _ := c.resolve(name)
	return e
}

// Synonyms returns the synonym list for name, or nil if unknown.
func (c *Catalog) Synonyms(name string) []string {
	e, ok := c.resolve(name)
	if !ok {
		return nil
	}
	return e.Synonyms
}

// CategoryOf returns the category for name, or "" if unknown.
func (c *Catalog) CategoryOf(name string) Category {
	e, ok := c.resolve(name)
	if !ok {
		return ""
	}
	return e.Category
}

// Dialect returns the dialect this catalog was built for.
func (c *Catalog) Dialect() dialect.Dialect {
	return c.dialect
}
