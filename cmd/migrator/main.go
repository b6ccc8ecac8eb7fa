package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kurochkinivan/port_assigner/internal/config"
	"github.com/kurochkinivan/port_assigner/internal/logging"
	"github.com/kurochkinivan/port_assigner/internal/repository/postgresql"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	migrationTypeUp      = "up"
	migrationTypeDown    = "down"
	migrationTypeVersion = "version"
)

const (
	exitCodeOK = iota
	exitCodeInputErr
	exitCodeInternalErr
)

type flags struct {
	migrationType string
	steps         int
	db            config.PostgreSQL
}

func main() {
	log := logging.New(os.Stderr, slog.LevelDebug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	exitCode, err := run(ctx, log, os.Args[1:])
	if err != nil {
		log.ErrorContext(ctx, "migration failed", slog.String("err", err.Error()))
	}

	stop()
	os.Exit(exitCode)
}

func run(ctx context.Context, log *slog.Logger, args []string) (exitCode int, err error) {
	f, err := parseFlags(args)
	if err != nil {
		return exitCodeInputErr, err
	}

	if err := f.validate(); err != nil {
		return exitCodeInputErr, fmt.Errorf("invalid flags: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return exitCodeInternalErr, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, postgresql.ConnectionURL(f.db))
	if err != nil {
		return exitCodeInternalErr, fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		if closeErr := errors.Join(srcErr, dbErr); closeErr != nil {
			if err == nil {
				exitCode = exitCodeInternalErr
			}
			err = errors.Join(err, closeErr)
		}
	}()

	if f.migrationType == migrationTypeVersion {
		version, dirty, err := migrator.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.InfoContext(ctx, "no migration applied yet")
			return exitCodeOK, nil
		}
		if err != nil {
			return exitCodeInternalErr, fmt.Errorf("failed to read version: %w", err)
		}

		log.InfoContext(ctx, "current schema version",
			slog.Uint64("version", uint64(version)),
			slog.Bool("dirty", dirty))

		return exitCodeOK, nil
	}

	if err := apply(migrator, f.migrationType, f.steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.InfoContext(ctx, "schema is up to date")
			return exitCodeOK, nil
		}

		return exitCodeInternalErr, fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.InfoContext(ctx, "migrations applied",
		slog.String("type", f.migrationType),
		slog.Int("steps", f.steps))

	return exitCodeOK, nil
}

func apply(migrator *migrate.Migrate, migrationType string, steps int) error {
	switch {
	case steps > 0 && migrationType == migrationTypeUp:
		return migrator.Steps(steps)
	case steps > 0 && migrationType == migrationTypeDown:
		return migrator.Steps(-steps)
	case migrationType == migrationTypeUp:
		return migrator.Up()
	case migrationType == migrationTypeDown:
		return migrator.Down()
	default:
		return fmt.Errorf("unknown migration type %q", migrationType)
	}
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{}

	fs := flag.NewFlagSet("migrator", flag.ContinueOnError)
	fs.StringVar(&f.migrationType, "type", migrationTypeUp, "migration type: up/down/version")
	fs.IntVar(&f.steps, "steps", 0, "number of migrations to apply, 0 applies all")
	fs.StringVar(&f.db.Username, "username", "", "database username")
	fs.StringVar(&f.db.Password, "password", "", "database password")
	fs.StringVar(&f.db.Host, "host", "127.0.0.1", "database host")
	fs.StringVar(&f.db.Port, "port", "5432", "database port")
	fs.StringVar(&f.db.DBName, "db", "port_assigner", "database name")
	fs.StringVar(&f.db.SSLMode, "sslmode", "disable", "database sslmode")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	return f, nil
}

func (f *flags) validate() error {
	switch f.migrationType {
	case migrationTypeUp, migrationTypeDown, migrationTypeVersion:
	default:
		return fmt.Errorf("type must be %q, %q or %q, got %q",
			migrationTypeUp, migrationTypeDown, migrationTypeVersion, f.migrationType)
	}

	if f.steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", f.steps)
	}

	for _, req := range []struct{ name, value string }{
		{"username", f.db.Username},
		{"password", f.db.Password},
		{"db", f.db.DBName},
		{"port", f.db.Port},
	} {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}

	return nil
}
