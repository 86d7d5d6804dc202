package transfer

import (
	"strconv"
	"strings"

	"github.com/mstgnz/sqltransfer/dialect"
)

// rebind rewrites the '?' placeholders schema.Table.RenderInsert emits
// into the form a target driver accepts: go-sql-driver/mysql takes
// '?' unchanged, microsoft/go-mssqldb expects ordinal "@pN" markers.
func rebind(d dialect.Dialect, query string) string {
	if d != dialect.MSSQL {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('@')
			sb.WriteByte('p')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
