// Package migration applies the embedded goose SQL migrations.
package migration

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/fiberops/subcore/internal/shared/logger"
)

// ScriptsDir is the directory of the embedded scripts, and the default
// target for new migration files.
const ScriptsDir = "scripts"

//go:embed scripts/*.sql
var scripts embed.FS

const dialect = "mysql"

// Migrator runs goose against one database.
type Migrator struct {
	db     *sql.DB
	logger logger.Interface
}

func NewMigrator(db *sql.DB, log logger.Interface) *Migrator {
	goose.SetBaseFS(scripts)
	goose.SetLogger(&gooseLogger{log: log})
	return &Migrator{db: db, logger: log}
}

func (m *Migrator) Up() error {
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	from, err := goose.GetDBVersion(m.db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(m.db, ScriptsDir); err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	to, err := goose.GetDBVersion(m.db)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	m.logger.Infow("migration completed", "from_version", from, "to_version", to)
	return nil
}

func (m *Migrator) Down(steps int) error {
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(m.db, ScriptsDir); err != nil {
			m.logger.Errorw("down migration failed", "step", i+1, "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}
	return nil
}

func (m *Migrator) Version() (int64, error) {
	if err := goose.SetDialect(dialect); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	version, err := goose.GetDBVersion(m.db)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (m *Migrator) Status() error {
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Status(m.db, ScriptsDir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes a new SQL migration into dir on disk. The embedded scripts
// are read-only, so dir is normally the source tree's scripts directory.
func Create(dir, name string) error {
	goose.SetBaseFS(nil)
	defer goose.SetBaseFS(scripts)

	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	return nil
}

// gooseLogger routes goose output to the application logger.
type gooseLogger struct {
	log logger.Interface
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Infow(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Fatalw(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}
