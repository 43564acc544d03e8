package database

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/logging"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const (
	PgxDriverName   = "pgx"
	PostgresDialect = "postgres"
)

func MigrateDatabase(databaseUrl string, migrations fs.FS, dir, driverName, dialect string, logger logging.Logger) error {
	db, err := sql.Open(driverName, databaseUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLogger{logger: logger})

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return err
	}

	return nil
}

type gooseLogger struct {
	logger logging.Logger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info("goose", "message", sprintfTrimmed(format, v...))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error("goose", "message", sprintfTrimmed(format, v...))
	os.Exit(1)
}

func sprintfTrimmed(format string, v ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
