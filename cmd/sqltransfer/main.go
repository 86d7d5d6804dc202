// Command sqltransfer copies every BASE TABLE (or a named subset) from
// one MSSQL/MySQL database to another, converting each column's
// datatype to its closest equivalent in the target dialect as it goes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mstgnz/sqltransfer/catalog"
	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/mstgnz/sqltransfer/internal/app"
	"github.com/mstgnz/sqltransfer/internal/telemetry"
	"github.com/mstgnz/sqltransfer/internal/transfer"
	_ "github.com/mstgnz/sqltransfer/internal/transport"
)

func main() {
	sourceDialect := flag.String("source-dialect", "", "source dialect (mssql, mysql)")
	sourceDSN := flag.String("source-dsn", "", "source driver DSN")
	sourceDatabase := flag.String("source-database", "", "source database name")

	targetDialect := flag.String("target-dialect", "", "target dialect (mssql, mysql)")
	targetDSN := flag.String("target-dsn", "", "target driver DSN")
	targetDatabase := flag.String("target-database", "", "target database name")

	tables := flag.String("tables", "", "comma-separated table allow-list (empty = all BASE TABLEs)")
	workers := flag.Int("workers", 4, "number of tables to transfer concurrently")
	logFormat := flag.String("log-format", "json", "audit log format: json or text")
	logDir := flag.String("log-dir", ".", "directory for the rotating audit log")

	flag.Parse()

	if *sourceDialect == "" || *targetDialect == "" || *sourceDSN == "" || *targetDSN == "" {
		fmt.Fprintln(os.Stderr, "usage: sqltransfer -source-dialect=... -source-dsn=... -source-database=... -target-dialect=... -target-dsn=... -target-database=...")
		flag.PrintDefaults()
		os.Exit(1)
	}

	srcDialect, err := dialect.Parse(*sourceDialect)
	if err != nil {
		fatal(err)
	}
	dstDialect, err := dialect.Parse(*targetDialect)
	if err != nil {
		fatal(err)
	}

	format := telemetry.JSONFormat
	if strings.EqualFold(*logFormat, "text") {
		format = telemetry.TextFormat
	}

	services, _, err := app.Build(app.Config{
		Source:    app.EndpointConfig{Dialect: srcDialect, Driver: srcDialect.Driver(), DSN: *sourceDSN, Database: *sourceDatabase},
		Target:    app.EndpointConfig{Dialect: dstDialect, Driver: dstDialect.Driver(), DSN: *targetDSN, Database: *targetDatabase},
		Workers:   *workers,
		LogFormat: format,
		LogDir:    *logDir,
	})
	if err != nil {
		fatal(err)
	}
	defer services.Connections.Close()

	sourceConn, err := services.Connections.GetConnection("source")
	if err != nil {
		fatal(err)
	}
	targetConn, err := services.Connections.GetConnection("target")
	if err != nil {
		fatal(err)
	}

	sourceReader, err := catalog.NewInformationSchemaReader(sourceConn, srcDialect)
	if err != nil {
		fatal(err)
	}

	engine := transfer.NewEngine(
		transfer.Endpoint{Dialect: srcDialect, DB: sourceConn, Reader: sourceReader, Database: *sourceDatabase},
		transfer.Endpoint{Dialect: dstDialect, DB: targetConn, Database: *targetDatabase},
		*workers, services.Audit, services.Console,
	)

	allowList := parseAllowList(*tables)

	services.Console.Info("starting transfer", map[string]interface{}{
		"source": srcDialect.Display(),
		"target": dstDialect.Display(),
		"tables": allowList,
	})

	if err := engine.Transfer(context.Background(), allowList); err != nil {
		services.Console.Error("transfer completed with errors", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	metrics := engine.Metrics().Snapshot()
	services.Console.Info("transfer complete", metrics)
}

// parseAllowList splits a comma-separated -tables flag into a
// trimmed, empty-entry-free table name list. An empty input yields a
// nil list, which transfer.Engine.Transfer treats as "all BASE TABLEs".
func parseAllowList(tables string) []string {
	if tables == "" {
		return nil
	}
	var allowList []string
	for _, name := range strings.Split(tables, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			allowList = append(allowList, trimmed)
		}
	}
	return allowList
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
