package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Rana718/bankseed/internal/database"
	"github.com/Rana718/bankseed/internal/types"
	"github.com/rs/zerolog"
)

// Report summarizes one load run. Skipped and failed tables never abort it.
type Report struct {
	Results        []types.TableLoadResult `json:"results"`
	RelationsError string                  `json:"relations_error,omitempty"`
}

func (r *Report) tables(status types.LoadStatus) []string {
	var names []string
	for _, res := range r.Results {
		if res.Status == status {
			names = append(names, res.Table)
		}
	}
	return names
}

func (r *Report) Loaded() []string  { return r.tables(types.StatusLoaded) }
func (r *Report) Skipped() []string { return r.tables(types.StatusSkipped) }
func (r *Report) Failed() []string  { return r.tables(types.StatusFailed) }

type Loader struct {
	adapter  database.DatabaseAdapter
	manifest *Manifest
	log      zerolog.Logger
}

func New(adapter database.DatabaseAdapter, manifest *Manifest, log zerolog.Logger) *Loader {
	return &Loader{
		adapter:  adapter,
		manifest: manifest,
		log:      log,
	}
}

// Run opens the store at url, loads every manifest table from dir and closes
// the store whatever happens. Only connection failures are returned.
func (l *Loader) Run(ctx context.Context, url, dir string) (*Report, error) {
	if err := l.adapter.Connect(ctx, url); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := l.adapter.Close(); err != nil {
			l.log.Warn().Err(err).Msg("failed to close database")
		}
	}()

	if err := l.adapter.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	return l.Load(ctx, dir)
}

// Load replaces each manifest table with the contents of its file in dir, then
// records the declared foreign keys. The adapter must already be connected.
func (l *Loader) Load(ctx context.Context, dir string) (*Report, error) {
	report := &Report{}

	for _, spec := range l.manifest.Tables {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Results = append(report.Results, l.loadTable(ctx, dir, spec))
	}

	if err := l.adapter.DeclareRelations(ctx, l.manifest.ForeignKeys); err != nil {
		l.log.Error().Err(err).Msg("failed to declare relations")
		report.RelationsError = err.Error()
	}

	l.log.Info().
		Strs("loaded", report.Loaded()).
		Strs("skipped", report.Skipped()).
		Strs("failed", report.Failed()).
		Msg("load complete")
	return report, nil
}

func (l *Loader) loadTable(ctx context.Context, dir string, spec TableSpec) types.TableLoadResult {
	path := filepath.Join(dir, spec.File)
	result := types.TableLoadResult{Table: spec.Name, File: path}
	log := l.log.With().Str("table", spec.Name).Str("file", path).Logger()
	started := time.Now()

	table, err := ReadCSV(path, spec.Name)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Msg("input file not found, skipping table")
		result.Status = types.StatusSkipped
		result.Error = err.Error()
		return result
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to read table")
		result.Status = types.StatusFailed
		result.Error = err.Error()
		return result
	}

	if cols := NormalizeDateColumns(table); len(cols) > 0 {
		log.Debug().Strs("columns", cols).Msg("normalized date columns")
	}

	if err := l.adapter.ReplaceTable(ctx, table, l.manifest.ForeignKeys); err != nil {
		log.Error().Err(err).Msg("failed to load table")
		result.Status = types.StatusFailed
		result.Error = err.Error()
		return result
	}

	result.Status = types.StatusLoaded
	result.Rows = len(table.Rows)
	log.Info().Int("rows", result.Rows).Dur("took", time.Since(started)).Msg("table loaded")
	return result
}
