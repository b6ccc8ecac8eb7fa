// Package app wires configuration, logging, sources and sinks for each command.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kurochkinivan/port_assigner/internal/columns"
	"github.com/kurochkinivan/port_assigner/internal/config"
	"github.com/kurochkinivan/port_assigner/internal/pdf"
	"github.com/kurochkinivan/port_assigner/internal/pipeline"
	"github.com/kurochkinivan/port_assigner/internal/report"
	"github.com/kurochkinivan/port_assigner/internal/repository/postgresql"
	"github.com/kurochkinivan/port_assigner/internal/sheet"
	"github.com/kurochkinivan/port_assigner/internal/tsv"
)

const (
	SinkFile       = "file"
	SinkPostgreSQL = "postgresql"
)

var (
	// ErrChecksFailed is returned by Assign when the run completed but
	// reported problems.
	ErrChecksFailed      = errors.New("some checks did not pass")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrUnknownSink       = errors.New("unknown sink")
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

// Assign runs one batch and writes the result to the configured sink.
func (a *App) Assign(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting assignment",
		slog.String("definition", a.cfg.App.DefinitionFile),
		slog.String("property", a.cfg.App.PropertyFile),
		slog.String("sink", a.sinkName()),
	)

	groups, props, err := a.sources()
	if err != nil {
		return err
	}

	rep := report.New(a.log)

	saver, closeSaver, err := a.saver(ctx, rep)
	if err != nil {
		return err
	}
	defer closeSaver()

	rep, err = pipeline.New(a.log, groups, props, saver).WithReport(rep).Run(ctx)
	if err != nil {
		return err
	}

	if !rep.Passed() {
		a.summarize(ctx, rep)
		return ErrChecksFailed
	}

	a.log.InfoContext(ctx, "all checks passed")

	return nil
}

func (a *App) sources() (*pipeline.GroupsLoader, *pipeline.PropertiesLoader, error) {
	defBindings, err := columns.ParseInput(a.cfg.Definition.Columns)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse definition columns: %w", err)
	}

	propBindings, err := columns.ParseInput(a.cfg.Property.Columns)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse property columns: %w", err)
	}

	groups := pipeline.NewGroupsLoader(a.log, pipeline.Dataset{
		Path:     a.cfg.App.DefinitionFile,
		Sheet:    a.cfg.Definition.Sheet,
		DataRow:  a.cfg.Definition.DataRow,
		Bindings: defBindings,
	}, a.cfg.Definition.Nothing)

	props := pipeline.NewPropertiesLoader(a.log, pipeline.Dataset{
		Path:     a.cfg.App.PropertyFile,
		Sheet:    a.cfg.Property.Sheet,
		DataRow:  a.cfg.Property.DataRow,
		Bindings: propBindings,
	})

	return groups, props, nil
}

func (a *App) sinkName() string {
	if a.cfg.App.Sink == "" {
		return SinkFile
	}
	return strings.ToLower(a.cfg.App.Sink)
}

// saver picks the result sink. The returned func releases what the sink holds.
func (a *App) saver(ctx context.Context, rep *report.Report) (pipeline.ResultSaver, func(), error) {
	switch a.sinkName() {
	case SinkFile:
		saver, err := a.fileSaver(ctx, rep)
		return saver, func() {}, err

	case SinkPostgreSQL:
		pool, err := a.connect(ctx)
		if err != nil {
			return nil, nil, err
		}

		saver := pipeline.NewDatabaseWriter(a.log,
			postgresql.NewPortsRepository(pool),
			postgresql.NewTxManager(pool),
		)

		return saver, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w %q", ErrUnknownSink, a.cfg.App.Sink)
	}
}

func (a *App) fileSaver(ctx context.Context, rep *report.Report) (pipeline.ResultSaver, error) {
	path := a.cfg.App.SaveFile

	loc, err := time.LoadLocation(a.cfg.Output.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", a.cfg.Output.TimeZone, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		switchCols, portCols, err := a.outputColumns(ctx, rep)
		if err != nil {
			return nil, err
		}

		return sheet.NewWriter(a.log, path, sheet.Layout{
			HeaderRow: a.cfg.Output.HeaderRow,
			Font:      a.cfg.Output.Font,
			Location:  loc,
		}, switchCols, portCols), nil

	case ".tsv":
		return tsv.NewWriter(a.log, path), nil

	case ".pdf":
		return pdf.NewGenerator(a.log, path, loc), nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
}

func (a *App) outputColumns(ctx context.Context, rep *report.Report) (sw, port []columns.OutputColumn, err error) {
	swBindings, err := columns.ParseOutput(a.cfg.Output.SwitchColumns)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse output switch columns: %w", err)
	}

	portBindings, err := columns.ParseOutput(a.cfg.Output.PortColumns)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse output port columns: %w", err)
	}

	sw = columns.ResolveOutput(ctx, rep, swBindings, columns.SwitchFields)
	port = columns.ResolveOutput(ctx, rep, portBindings, columns.PortFields)

	return sw, port, nil
}

func (a *App) summarize(ctx context.Context, rep *report.Report) {
	attrs := []slog.Attr{slog.Int("issues", len(rep.Issues()))}
	for _, kind := range report.Kinds {
		if n := rep.Count(kind); n > 0 {
			attrs = append(attrs, slog.Int(string(kind), n))
		}
	}

	a.log.LogAttrs(ctx, slog.LevelError, "run finished with problems", attrs...)
}
