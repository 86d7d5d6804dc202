// Package transport registers the two database/sql drivers this
// system dials: go-sql-driver/mysql for MySQL and microsoft/go-mssqldb
// for SQL Server. Importing this package for its side effects makes
// both driver names ("mysql", "sqlserver") available to sql.Open.
package transport

import (
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/microsoft/go-mssqldb"
)
