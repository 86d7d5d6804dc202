package charset

import (
	"testing"

	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/stretchr/testify/assert"
)

func TestNew_InvalidDialect(t *testing.T) {
	_, err := New(dialect.Dialect(99))
	assert.Error(t, err)
}

func TestNew_MSSQLEmpty(t *testing.T) {
	c, err := New(dialect.MSSQL)
	assert.NoError(t, err)
	_, ok := c.Lookup("utf8mb4")
	assert.False(t, ok)
	assert.Equal(t, "", c.Format("utf8mb4"))
	assert.Equal(t, 0, c.MaxLength("utf8mb4"))
	assert.Equal(t, Category(""), c.CategoryOf("utf8mb4"))
}

func TestMySQL_KnownEntries(t *testing.T) {
	c, err := New(dialect.MYSQL)
	assert.NoError(t, err)

	tests := []struct {
		name     string
		maxBytes int
		category Category
	}{
		{"latin1", 1, Character},
		{"utf8mb4", 4, Unicode},
		{"utf8", 3, Unicode},
		{"utf16", 4, Character},
		{"utf16le", 4, Character},
		{"utf32", 4, Character},
		{"binary", 1, Character},
		{"ucs2", 2, Unicode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := c.Lookup(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.maxBytes, e.MaxBytes)
			assert.Equal(t, tt.category, e.Category)
			assert.Equal(t, tt.maxBytes, c.MaxLength(tt.name))
			assert.Equal(t, tt.category, c.CategoryOf(tt.name))
		})
	}
}

func TestMySQL_CaseInsensitiveLookup(t *testing.T) {
	c, _ := New(dialect.MYSQL)
	_, ok := c.Lookup("UTF8MB4")
	assert.True(t, ok)
}

func TestMySQL_Format(t *testing.T) {
	c, _ := New(dialect.MYSQL)
	assert.Equal(t, "character set utf8mb4", c.Format("utf8mb4"))
	assert.Equal(t, "", c.Format("does-not-exist"))
}

func TestMySQL_EntryCount(t *testing.T) {
	c, _ := New(dialect.MYSQL)
	assert.Len(t, mysqlCharacterSets, 41)
	assert.Equal(t, dialect.MYSQL, c.Dialect())
}
