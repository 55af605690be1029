package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"wfind/internal/config"
	"wfind/internal/history"
	"wfind/internal/wf"
)

// App is the application layer between the CLI and the search
// enumerator. It constructs all dependencies from config, exposes
// high-level operations, and manages store/log lifecycle on Close.
type App struct {
	cfg     *config.Config
	store   history.Store
	exclude *wf.ExcludeMatcher
	logger  *slog.Logger
	logFile *os.File
	opID    string
}

// NewApp creates a fully wired App from the given config. operation
// identifies the CLI command being run (e.g. "List", "History").
// The caller must call Close when done.
func NewApp(cfg *config.Config, operation string) (*App, error) {
	store, err := history.NewStoreFromConfig(cfg.History, cfg.HostID)
	if err != nil {
		return nil, fmt.Errorf("creating history store: %w", err)
	}

	opID := history.UUIDGenerator{}.New()
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger = logger.With("operation", operation)

	return &App{
		cfg:     cfg,
		store:   store,
		exclude: wf.NewExcludeMatcher(cfg.Search.Exclude),
		logger:  logger,
		logFile: logFile,
		opID:    opID,
	}, nil
}

// List runs a full enumeration for the pattern path and returns the
// matching records, applying the configured exclude patterns and
// hidden-entry filtering on top of the core search. The run is logged
// to the history store with its final match count and status.
func (a *App) List(patternPath string) ([]*wf.FindResult, error) {
	rec, err := a.store.Begin(a.opID, patternPath)
	if err != nil {
		return nil, fmt.Errorf("recording search start: %w", err)
	}
	a.logger.Info("search started", "pattern", patternPath)

	results, err := a.runSearch(patternPath)
	if err != nil {
		a.logger.Error("search failed", "pattern", patternPath, "error", err)
		if ferr := a.store.Finish(rec.ID, 0, history.StatusFailed); ferr != nil {
			a.logger.Error("recording search failure", "error", ferr)
		}
		return nil, err
	}

	a.logger.Info("search finished", "pattern", patternPath, "matches", len(results))
	if err := a.store.Finish(rec.ID, int64(len(results)), history.StatusCompleted); err != nil {
		return nil, fmt.Errorf("recording search result: %w", err)
	}
	return results, nil
}

// runSearch drains one enumeration, filtering excluded and hidden
// entries per config.
func (a *App) runSearch(patternPath string) ([]*wf.FindResult, error) {
	s, err := wf.NewSearch(patternPath)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var results []*wf.FindResult
	for {
		res, err := s.Next()
		if errors.Is(err, wf.StatusNoMoreFiles) {
			return results, nil
		}
		if err != nil {
			return nil, err
		}
		if a.exclude.Match(res.Name) {
			a.logger.Debug("entry excluded", "name", res.Name)
			continue
		}
		if a.cfg.Search.SkipHidden && res.Attributes.Has(wf.AttrHidden) {
			a.logger.Debug("hidden entry skipped", "name", res.Name)
			continue
		}
		results = append(results, res)
	}
}

// Attributes synthesizes the attribute record for a single path.
func (a *App) Attributes(path string) (*wf.FindResult, error) {
	return wf.Stat(path)
}

// History returns the most recent search operations.
func (a *App) History(limit int) ([]*history.Record, error) {
	return a.store.Recent(limit)
}

// Close releases the history store and the log file.
func (a *App) Close() error {
	var firstErr error
	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing history store: %w", err)
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
	return firstErr
}
