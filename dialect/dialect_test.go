package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialect_Metadata(t *testing.T) {
	tests := []struct {
		name    string
		d       Dialect
		id      string
		idLower string
		driver  string
		display string
	}{
		{"mssql", MSSQL, "MsSQL", "mssql", "sqlserver", "Microsoft SQL Server"},
		{"mysql", MYSQL, "MySQL", "mysql", "mysql", "MySQL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.d.Valid())
			assert.Equal(t, tt.id, tt.d.ID())
			assert.Equal(t, tt.idLower, tt.d.IDLower())
			assert.Equal(t, tt.driver, tt.d.Driver())
			assert.Equal(t, tt.display, tt.d.Display())
		})
	}
}

func TestDialect_InvalidValue(t *testing.T) {
	var d Dialect = 99
	assert.False(t, d.Valid())
	assert.Equal(t, "", d.ID())
	assert.Contains(t, d.String(), "Dialect(99)")
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"mssql", MSSQL, false},
		{"MsSQL", MSSQL, false},
		{"SQL Server", MSSQL, false},
		{"mysql", MYSQL, false},
		{"MySQL", MYSQL, false},
		{"oracle", invalid, true},
		{"", invalid, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAll(t *testing.T) {
	assert.Equal(t, []Dialect{MSSQL, MYSQL}, All())
}
