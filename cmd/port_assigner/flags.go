package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/kurochkinivan/port_assigner/internal/app"
	"github.com/kurochkinivan/port_assigner/internal/columns"
	"github.com/kurochkinivan/port_assigner/internal/config"
	"github.com/kurochkinivan/port_assigner/internal/logging"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

const (
	defaultDefinitionColumns = "groupKey/1,floor/2,rackName/3,sw/4,ap/5,printer/6,mfp/7,ocr/8,other/9"
	defaultPropertyColumns   = "deviceNumber/1,floor/2,rackName/3,roomName/4,deviceName/5,modelName/6," +
		"portName/7,cableName/8,connectorName/9,rosette/10,hostName/11"
	defaultPortColumns = "portNumber/1/ポート番号,floor/3/階数,rackName/4/ラック," +
		"roomName/5/部屋,deviceName/6/デバイス,deviceNumber/7/識別名"
)

func cmd() *cli.Command {
	var (
		config  string
		logFile *logging.File
	)

	return &cli.Command{
		Name:    "port_assigner",
		Usage:   "Assign network devices to switch ports",
		Version: version,
		Flags:   globalFlags(&config),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			var err error
			ctx, logFile, err = setupLogger(ctx, cmd)
			return ctx, err
		},
		After: func(context.Context, *cli.Command) error {
			if logFile == nil {
				return nil
			}
			return logFile.Close()
		},
		Commands: []*cli.Command{
			{
				Name:   "assign",
				Usage:  "Read the definition and property workbooks and write the port table",
				Flags:  assignFlags(&config),
				Action: action((*app.App).Assign),
			},
			{
				Name:   "serve",
				Usage:  "Serve the port table stored in PostgreSQL over HTTP",
				Flags:  serveFlags(&config),
				Action: action((*app.App).Serve),
			},
		},
	}
}

func action(run func(*app.App, context.Context) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
		if !ok {
			return errors.New("failed to get logger from context")
		}

		return run(app.New(log, config.Load(cmd)), ctx)
	}
}

// setupLogger replaces the bootstrap logger with one at the configured level,
// also writing to a rolling file when a log directory is set.
func setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, *logging.File, error) {
	level, err := logging.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return ctx, nil, err
	}

	var (
		file  *logging.File
		files []io.Writer
	)
	if dir := cmd.String("log-dir"); dir != "" {
		file, err = logging.OpenFile(dir)
		if err != nil {
			return ctx, nil, err
		}
		files = append(files, file)
	}

	log := logging.New(os.Stderr, level, files...)
	log.InfoContext(ctx, "port_assigner", slog.String("version", version))

	return context.WithValue(ctx, loggerKey{}, log), file, nil
}

func source(key string, config *string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(config)))
}

func globalFlags(config *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: config,
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Set log level: debug, info, warn or error",
			Value:   "info",
			Sources: source("app.log_level", config),
		},
		&cli.StringFlag{
			Name:    "log-dir",
			Usage:   "Also write the log to a rolling file in `DIR`",
			Sources: source("app.log_dir", config),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: source("postgresql.host", config),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: source("postgresql.port", config),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Sources: source("postgresql.username", config),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: source("postgresql.password", config),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "port_assigner",
			Sources: source("postgresql.dbname", config),
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: source("postgresql.sslmode", config),
		},
		&cli.IntFlag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size, 0 keeps the driver default",
			Sources: source("postgresql.max_conns", config),
		},
	}
}

func assignFlags(config *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "definition",
			Aliases:   []string{"d"},
			Usage:     "Read assignment groups from `FILE`",
			Sources:   source("app.definition", config),
			Required:  true,
			Validator: validateWorkbook,
		},
		&cli.StringFlag{
			Name:      "property",
			Aliases:   []string{"p"},
			Usage:     "Read device properties from `FILE`",
			Sources:   source("app.property", config),
			Required:  true,
			Validator: validateWorkbook,
		},
		&cli.StringFlag{
			Name:      "save",
			Aliases:   []string{"s"},
			Usage:     "Write the port table to `FILE` (.xlsx, .tsv or .pdf)",
			Value:     "output.xlsx",
			Sources:   source("app.save", config),
			Validator: validateSaveFile,
		},
		&cli.StringFlag{
			Name:      "sink",
			Usage:     "Write the port table to file or postgresql",
			Value:     app.SinkFile,
			Sources:   source("app.sink", config),
			Validator: validateSink,
		},
		&cli.StringFlag{
			Name:    "definition-sheet",
			Usage:   "Set worksheet of the definition workbook",
			Value:   "Sheet1",
			Sources: source("definition.sheet", config),
		},
		&cli.IntFlag{
			Name:      "definition-data-row",
			Usage:     "Set first data row of the definition worksheet",
			Value:     2,
			Sources:   source("definition.data_row", config),
			Validator: validateRow,
		},
		&cli.StringFlag{
			Name:      "definition-columns",
			Usage:     "Map definition fields to columns as field/column,...",
			Value:     defaultDefinitionColumns,
			Sources:   source("definition.columns", config),
			Validator: validateInputColumns,
		},
		&cli.StringFlag{
			Name:    "definition-nothing",
			Usage:   "Set the word that marks an empty category",
			Value:   columns.DefaultNothing,
			Sources: source("definition.nothing", config),
		},
		&cli.StringFlag{
			Name:    "property-sheet",
			Usage:   "Set worksheet of the property workbook",
			Value:   "Sheet1",
			Sources: source("property.sheet", config),
		},
		&cli.IntFlag{
			Name:      "property-data-row",
			Usage:     "Set first data row of the property worksheet",
			Value:     2,
			Sources:   source("property.data_row", config),
			Validator: validateRow,
		},
		&cli.StringFlag{
			Name:      "property-columns",
			Usage:     "Map property fields to columns as field/column,...",
			Value:     defaultPropertyColumns,
			Sources:   source("property.columns", config),
			Validator: validateInputColumns,
		},
		&cli.IntFlag{
			Name:      "output-header-row",
			Usage:     "Set header row of every switch worksheet",
			Value:     3,
			Sources:   source("output.header_row", config),
			Validator: validateHeaderRow,
		},
		&cli.StringFlag{
			Name:      "output-switch-columns",
			Usage:     "Map switch fields to columns as field/column/header,...",
			Sources:   source("output.switch_columns", config),
			Validator: validateOutputColumns,
		},
		&cli.StringFlag{
			Name:      "output-port-columns",
			Usage:     "Map port fields to columns as field/column/header,...",
			Value:     defaultPortColumns,
			Sources:   source("output.port_columns", config),
			Validator: validateOutputColumns,
		},
		&cli.StringFlag{
			Name:    "output-font",
			Usage:   "Set font of the output workbook",
			Value:   "Meiryo UI",
			Sources: source("output.font", config),
		},
		&cli.StringFlag{
			Name:      "output-time-zone",
			Usage:     "Set time zone of the output timestamp",
			Value:     "Asia/Tokyo",
			Sources:   source("output.time_zone", config),
			Validator: validateTimeZone,
		},
	}
}

func serveFlags(config *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: source("http.host", config),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: source("http.port", config),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: source("http.idle_timeout", config),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: source("http.read_timeout", config),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: source("http.write_timeout", config),
		},
		&cli.DurationFlag{
			Name:    "http-shutdown-timeout",
			Usage:   "Set HTTP server graceful shutdown timeout",
			Value:   5 * time.Second,
			Sources: source("http.shutdown_timeout", config),
		},
	}
}

func validateConfig(config string) error {
	if err := validateFile(config); err != nil {
		return err
	}

	ext := filepath.Ext(config)
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}

func validateWorkbook(path string) error {
	if err := validateFile(path); err != nil {
		return err
	}

	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return fmt.Errorf("%q is not an .xlsx workbook", path)
	}

	return nil
}

func validateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", path)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}

	return nil
}

func validateSaveFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains([]string{".xlsx", ".tsv", ".pdf"}, ext) {
		return fmt.Errorf("%w %q, want .xlsx, .tsv or .pdf", app.ErrUnsupportedFormat, ext)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateSink(sink string) error {
	switch strings.ToLower(sink) {
	case app.SinkFile, app.SinkPostgreSQL:
		return nil
	default:
		return fmt.Errorf("%w %q, want %q or %q", app.ErrUnknownSink, sink, app.SinkFile, app.SinkPostgreSQL)
	}
}

func validateRow(row int) error {
	if row < 1 {
		return fmt.Errorf("row must be positive, got %d", row)
	}
	return nil
}

// validateHeaderRow keeps row 1 free for the timestamp.
func validateHeaderRow(row int) error {
	if row < 2 {
		return fmt.Errorf("header row must be 2 or greater, got %d", row)
	}
	return nil
}

func validateInputColumns(s string) error {
	_, err := columns.ParseInput(s)
	return err
}

func validateOutputColumns(s string) error {
	_, err := columns.ParseOutput(s)
	return err
}

func validateTimeZone(name string) error {
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return nil
}
