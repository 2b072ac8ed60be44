package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/example/jobtrack/internal/logging"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies the embedded SQL migrations with goose.
func Migrate(ctx context.Context, database *sql.DB, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Nop()
	}
	goose.SetBaseFS(migrationFiles)
	goose.SetLogger(gooseLogger{logger})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, database, "migrations")
}

// Version returns the current schema version.
func Version(ctx context.Context, database *sql.DB) (int64, error) {
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, database)
}

// gooseLogger routes goose output to the structured logger at debug level.
type gooseLogger struct {
	l *logging.Logger
}

func (g gooseLogger) Fatal(v ...interface{}) {
	g.l.Fatalf("%s", fmt.Sprint(v...))
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Fatalf(format, v...)
}

func (g gooseLogger) Print(v ...interface{}) {
	g.l.Debug(fmt.Sprint(v...))
}

func (g gooseLogger) Println(v ...interface{}) {
	g.l.Debug(fmt.Sprint(v...))
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.l.Debug(fmt.Sprintf(format, v...))
}
