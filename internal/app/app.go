package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cognivore/cube-with-archive/internal/config"
	"github.com/cognivore/cube-with-archive/internal/cubecobra"
	"github.com/cognivore/cube-with-archive/internal/draft"
	"github.com/cognivore/cube-with-archive/internal/draftmancer"
	"github.com/cognivore/cube-with-archive/internal/logger"
	"github.com/cognivore/cube-with-archive/internal/output"
	"github.com/cognivore/cube-with-archive/internal/presets"
)

// IntoTheStoryCubeID is the CubeCobra id of the Into the Story cube.
const IntoTheStoryCubeID = "633f463453859b175ba27b36"

type MissingArgumentError struct {
	Workflow string
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("please provide a %s for %s", e.Argument, e.Workflow)
}

type App struct {
	cfg     config.Config
	client  *cubecobra.Client
	presets *presets.Registry
	log     zerolog.Logger
	stdout  io.Writer
	stderr  io.Writer
}

func New(cfg config.Config, log zerolog.Logger, stdout, stderr io.Writer) (*App, error) {
	reg, err := presets.Load(cfg.PresetsPath)
	if err != nil {
		return nil, err
	}
	client := cubecobra.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg.BaseURL, cfg.UserAgent, log)
	return &App{
		cfg:     cfg,
		client:  client,
		presets: reg,
		log:     log,
		stdout:  stdout,
		stderr:  stderr,
	}, nil
}

// Main runs the command with the given arguments and returns the exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := run(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
	}
	return exitCode(err)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args)
	if errors.Is(err, config.ErrHelp) {
		fmt.Fprint(stdout, config.Usage())
		return nil
	}
	if err != nil {
		return &usageError{err: err}
	}

	log := logger.New(stderr, cfg.LogLevel, cfg.LogPretty)
	a, err := New(cfg, log, stdout, stderr)
	if err != nil {
		return &usageError{err: err}
	}
	return a.Dispatch(ctx, cfg.Args)
}

// Dispatch selects a workflow by its first argument. Unknown or missing
// workflow names are not an error and do nothing.
func (a *App) Dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.log.Debug().Msg("no workflow given")
		return nil
	}

	switch args[0] {
	case "its", "IntoTheStory":
		return a.RunIntoTheStory(ctx)
	case "rema", "RemasteringMagic":
		if len(args) < 2 || args[1] == "" {
			fmt.Fprintln(a.stderr, &MissingArgumentError{Workflow: "Remastering Magic", Argument: "cube ID"})
			return nil
		}
		return a.RunRemasteringMagic(ctx, args[1])
	default:
		a.log.Debug().Str("workflow", args[0]).Msg("unknown workflow, nothing to do")
		return nil
	}
}

// RunRemasteringMagic converts a cube CSV export into a Draftmancer list with
// layouts, writes it to <out-dir>/<cube-id>.txt and prints it.
func (a *App) RunRemasteringMagic(ctx context.Context, cubeID string) error {
	outPath, err := output.ListPath(a.cfg.OutDir, cubeID)
	if err != nil {
		return err
	}

	presetName, raw, ok := a.presets.Lookup(cubeID)
	if !ok {
		return &draft.ConfigurationError{Layout: presetName, Err: errors.New("preset not found")}
	}
	layouts, err := draft.Expand(raw)
	if err != nil {
		var ce *draft.ConfigurationError
		if errors.As(err, &ce) && ce.Layout == "" {
			ce.Layout = presetName
		}
		return err
	}
	if layouts.Len() == 0 {
		return &draft.ConfigurationError{Layout: presetName, Err: draft.ErrNoVariableSlot}
	}

	data, err := a.client.FetchCSV(ctx, cubeID)
	if err != nil {
		return err
	}
	catalog, err := cubecobra.ParseCSV(data)
	if err != nil {
		return fmt.Errorf("parse cube %s: %w", cubeID, err)
	}

	ev := a.log.Info().Str("cube", cubeID).Str("preset", presetName).Int("cards", catalog.Len())
	for _, r := range catalog.Rarities() {
		ev = ev.Int(r.String(), len(catalog.Cards(r)))
	}
	ev.Strs("layouts", layouts.Names()).Msg("parsed cube")

	text := draftmancer.RenderSettings(layouts, catalog)

	if err := output.WriteTextFile(outPath, text); err != nil {
		return err
	}
	a.log.Info().Str("path", outPath).Msg("wrote draftmancer list")

	if a.cfg.XLSXPath != "" {
		if err := output.ExportCatalogXLSX(a.cfg.XLSXPath, cubeID, catalog, layouts); err != nil {
			return err
		}
		a.log.Info().Str("path", a.cfg.XLSXPath).Msg("wrote catalog workbook")
	}

	fmt.Fprintln(a.stdout, text)
	return nil
}

// RunIntoTheStory prints the Into the Story list with repeated copies moved
// to the Archived pool.
func (a *App) RunIntoTheStory(ctx context.Context) error {
	data, err := a.client.FetchPlaintext(ctx, IntoTheStoryCubeID)
	if err != nil {
		return fmt.Errorf("download card list: %w", err)
	}

	unique, duplicates := cubecobra.ParsePlaintext(data)
	if len(unique) == 0 {
		a.log.Warn().Str("cube", IntoTheStoryCubeID).Msg("mainboard is empty")
	}
	a.log.Info().
		Str("cube", IntoTheStoryCubeID).
		Int("unique", len(unique)).
		Int("duplicates", len(duplicates)).
		Msg("parsed card list")

	fmt.Fprintln(a.stdout, draftmancer.RenderArchiveList(unique, duplicates))
	return nil
}
