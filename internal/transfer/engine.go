// Package transfer implements the transfer operation: read a table's
// columns from one dialect's catalog, run them through the
// typed-datatype conversion tables, and replay the table — dropped,
// recreated, and repopulated row by row — against the other dialect.
// The typed-datatype algebra stays pure; this package is where the
// system actually blocks on I/O.
package transfer

import (
	"context"
	"time"

	"github.com/mstgnz/sqltransfer/catalog"
	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/mstgnz/sqltransfer/internal/console"
	"github.com/mstgnz/sqltransfer/internal/sqlerr"
	"github.com/mstgnz/sqltransfer/internal/telemetry"
	"github.com/mstgnz/sqltransfer/schema"
	"github.com/mstgnz/sqltransfer/sqltype"
)

// Endpoint is one side of a transfer: a dialect, an open executor,
// the catalog reader that describes its tables, and the database it
// describes.
type Endpoint struct {
	Dialect  dialect.Dialect
	DB       Executor
	Reader   catalog.Reader
	Database string
}

// Engine runs transfers between a source and target Endpoint, one
// goroutine per table bounded by workers, each goroutine
// single-threaded.
type Engine struct {
	source, target Endpoint
	workers        int
	audit          *telemetry.Logger
	console        *console.Logger
	metrics        *telemetry.MetricsCollector
	alerts         *telemetry.AlertManager
}

// NewEngine wires a transfer engine. audit records structured,
// rotated per-table progress; cons reports interactive progress to
// the CLI. workers caps how many tables transfer concurrently.
func NewEngine(source, target Endpoint, workers int, audit *telemetry.Logger, cons *console.Logger) *Engine {
	metrics := telemetry.NewMetricsCollector()
	e := &Engine{
		source:  source,
		target:  target,
		workers: workers,
		audit:   audit,
		console: cons,
		metrics: metrics,
	}
	e.alerts = telemetry.NewAlertManager(telemetry.AlertThreshold{FailureRate: 20}, metrics, cons)
	return e
}

// Metrics returns the engine's running counters.
func (e *Engine) Metrics() *telemetry.MetricsCollector {
	return e.metrics
}

// Transfer transfers every BASE TABLE the source reports, or only
// those named in allowList when it is non-empty. A table whose
// type is not BASE TABLE, or whose columns include an unrecognized
// datatype, is skipped and logged rather than aborting the run.
func (e *Engine) Transfer(ctx context.Context, allowList []string) error {
	tables, err := e.source.Reader.Tables(ctx, e.source.Database)
	if err != nil {
		return sqlerr.New(sqlerr.Query, "listing source tables failed", err)
	}

	allow := make(map[string]bool, len(allowList))
	for _, name := range allowList {
		allow[name] = true
	}

	pool := newTablePool(e.workers)
	for _, td := range tables {
		if len(allow) > 0 && !allow[td.TableName] {
			continue
		}
		task := &transferTableTask{engine: e, table: td}
		pool.submit(ctx, task, func(err error) {
			e.metrics.IncrementTablesFailed()
			fields := map[string]interface{}{"table": td.TableName, "error": err.Error()}
			e.console.Error("table transfer failed", fields)
			e.audit.Error("table transfer failed", fields)
		})
	}

	err = pool.wait()
	e.alerts.CheckThresholds()
	return err
}

// transferTableTask transfers one table end to end: describe, convert,
// drop/create/select/insert.
type transferTableTask struct {
	engine *Engine
	table  catalog.TableDescription
}

func (t *transferTableTask) run(ctx context.Context) error {
	start := time.Now()
	e := t.engine

	if t.table.TableType != "BASE TABLE" {
		return sqlerr.New(sqlerr.InvalidTableType, "only BASE TABLE can be transferred", nil).
			WithContext("table", t.table.TableName).
			WithContext("table_type", t.table.TableType)
	}

	sourceCols, err := e.source.Reader.Columns(ctx, e.source.Database, t.table.Schema, t.table.TableName)
	if err != nil {
		return sqlerr.New(sqlerr.Query, "reading source columns failed", err).WithContext("table", t.table.TableName)
	}

	sourceTable, err := buildTable(e.source.Dialect, e.source.Database, t.table, sourceCols)
	if err != nil {
		return err
	}

	targetTable, err := convertTable(sourceTable, e.target.Dialect, e.target.Database)
	if err != nil {
		return err
	}

	rows, err := e.runTransfer(ctx, sourceTable, targetTable)
	if err != nil {
		return err
	}

	e.metrics.IncrementTablesTransferred()
	e.metrics.RecordTableTime(time.Since(start))
	e.audit.Info("table transferred", map[string]interface{}{
		"table": t.table.TableName,
		"rows":  rows,
	})
	return nil
}

// buildTable turns one catalog table description plus its columns
// into a schema.Table in d, constructing each column's Datatype
// through the typed factory so every clamp rule applies.
func buildTable(d dialect.Dialect, database string, td catalog.TableDescription, cds []catalog.ColumnDescription) (*schema.Table, error) {
	columns := make([]schema.Column, len(cds))
	for i, cd := range cds {
		dt, err := sqltype.Create(d, cd.DatatypeName, sqltype.CreateParams{
			CharacterSize:     cd.CharacterSize,
			CharacterSet:      cd.CharacterSet,
			NumericPrecision:  cd.NumericPrecision,
			NumericScale:      cd.NumericScale,
			DatetimePrecision: cd.DatetimePrecision,
		})
		if err != nil {
			return nil, sqlerr.New(sqlerr.Query, "unsupported source column datatype", err).
				WithContext("table", td.TableName).
				WithContext("column", cd.ColumnName)
		}
		columns[i] = schema.Column{Name: cd.ColumnName, Datatype: dt, Nullable: cd.Nullable == "YES"}
	}
	return schema.New(d, database, td.Schema, td.TableName, td.TableType, columns)
}

// convertTable runs every column of source through the typed
// conversion tables into target, keeping name, order, and nullability.
func convertTable(source *schema.Table, target dialect.Dialect, targetDatabase string) (*schema.Table, error) {
	columns := make([]schema.Column, len(source.Columns))
	for i, c := range source.Columns {
		dt, err := sqltype.ConvertTo(c.Datatype, target)
		if err != nil {
			return nil, sqlerr.New(sqlerr.Query, "converting column datatype failed", err).
				WithContext("table", source.TableName).
				WithContext("column", c.Name)
		}
		columns[i] = schema.Column{Name: c.Name, Datatype: dt, Nullable: c.Nullable}
	}
	return schema.New(target, targetDatabase, "", source.TableName, "BASE TABLE", columns)
}

// runTransfer executes one table's drop/create/select/insert cycle:
// one cursor on the source, one on the target, rows streamed
// single-threaded. It returns the number of rows moved.
func (e *Engine) runTransfer(ctx context.Context, source, target *schema.Table) (int64, error) {
	rows, err := e.source.DB.QueryContext(ctx, source.RenderSelect())
	if err != nil {
		return 0, sqlerr.New(sqlerr.Query, "selecting source rows failed", err).WithContext("table", source.TableName)
	}
	defer rows.Close()

	if _, err := e.target.DB.ExecContext(ctx, rebind(target.Dialect(), target.RenderDrop())); err != nil {
		return 0, sqlerr.New(sqlerr.Query, "dropping target table failed", err).WithContext("table", target.TableName)
	}
	if _, err := e.target.DB.ExecContext(ctx, target.RenderCreate()); err != nil {
		return 0, sqlerr.New(sqlerr.Query, "creating target table failed", err).WithContext("table", target.TableName)
	}

	insertStmt := rebind(target.Dialect(), target.RenderInsert())
	cols, err := rows.Columns()
	if err != nil {
		return 0, sqlerr.New(sqlerr.Query, "reading result columns failed", err)
	}

	var moved int64
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return moved, sqlerr.New(sqlerr.Query, "scanning source row failed", err).WithContext("table", source.TableName)
		}
		if _, err := e.target.DB.ExecContext(ctx, insertStmt, values...); err != nil {
			return moved, sqlerr.New(sqlerr.Query, "inserting target row failed", err).WithContext("table", target.TableName)
		}
		moved++
		e.metrics.AddRowsTransferred(1)
	}
	return moved, rows.Err()
}
