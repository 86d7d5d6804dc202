package transfer

import "github.com/mstgnz/sqltransfer/internal/interfaces"

// Executor is the documented external collaborator contract
// (internal/interfaces.QueryExecutor) under the engine's own name; the
// engine calls only its QueryContext and ExecContext methods, one
// cursor per endpoint, single-threaded per table. *sql.DB
// satisfies it directly; tests substitute a go-sqlmock-backed *sql.DB.
type Executor = interfaces.QueryExecutor
