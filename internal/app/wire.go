package app

import (
	"path/filepath"

	"github.com/mstgnz/sqltransfer/dialect"
	"github.com/mstgnz/sqltransfer/internal/console"
	"github.com/mstgnz/sqltransfer/internal/db"
	"github.com/mstgnz/sqltransfer/internal/telemetry"
)

// EndpointConfig is one side (source or target) of a transfer run, as
// the CLI parses it from flags.
type EndpointConfig struct {
	Dialect  dialect.Dialect
	Driver   string // "mysql" or "sqlserver"
	DSN      string // driver-native DSN, passed to sql.Open unchanged as internal/db.Config.ConnectionString
	Database string
}

// Config is everything cmd/sqltransfer needs to build a Services.
type Config struct {
	Source, Target EndpointConfig
	Workers        int
	LogFormat      telemetry.LogFormat
	LogDir         string
}

// Services bundles the constructed connection managers and loggers a
// transfer run needs. Engine itself is built separately once the
// catalog readers for each endpoint are chosen (live INFORMATION_SCHEMA
// or a DDL file), so it is not part of this struct.
type Services struct {
	Connections *db.ConnectionManager
	Audit       *telemetry.Logger
	Console     *console.Logger
}

// Build constructs and registers the services Config describes into a
// fresh Container, then returns them directly for convenience.
func Build(cfg Config) (*Services, *Container, error) {
	connections := db.NewConnectionManager()

	if err := connections.RegisterConnection("source", endpointDBConfig(cfg.Source)); err != nil {
		return nil, nil, err
	}
	if err := connections.RegisterConnection("target", endpointDBConfig(cfg.Target)); err != nil {
		return nil, nil, err
	}

	audit, err := telemetry.NewLogger(telemetry.LogConfig{
		Level:      telemetry.InfoLevel,
		Format:     cfg.LogFormat,
		OutputPath: filepath.Join(cfg.LogDir, "transfer.log"),
		ErrorPath:  filepath.Join(cfg.LogDir, "transfer-error.log"),
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	})
	if err != nil {
		return nil, nil, err
	}

	cons := console.NewLogger(console.Config{Level: console.INFO})

	services := &Services{Connections: connections, Audit: audit, Console: cons}

	container := NewContainer()
	_ = container.Register(services)
	_ = container.Register(connections)
	_ = container.Register(audit)
	_ = container.Register(cons)

	return services, container, nil
}

func endpointDBConfig(ep EndpointConfig) db.Config {
	return db.Config{
		Driver:           ep.Driver,
		ConnectionString: ep.DSN,
		Database:         ep.Database,
	}
}
