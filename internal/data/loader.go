package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Fetcher resolves a content path to raw bytes. The filesystem source and
// the database-backed source both satisfy it.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// DirFetcher reads content files relative to a root directory.
type DirFetcher struct {
	Root string
}

func (f DirFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(f.Root, path))
	if err != nil {
		return nil, &FileLoadError{Path: path, Err: err}
	}
	return b, nil
}

// Manifest lists the content files per category. Cross-category ordering is
// fixed (component templates, then races, classes, items, entities); files
// within one category have no ordering guarantees among themselves.
type Manifest struct {
	RenderFiles []string
	StatsFiles  []string
	AIFiles     []string
	HealthFiles []string
	RaceFiles   []string
	ClassFiles  []string
	ItemFiles   []string
	EntityFiles []string
}

// Files returns every path in the manifest in load order.
func (m Manifest) Files() []string {
	var out []string
	for _, group := range [][]string{
		m.RenderFiles, m.StatsFiles, m.AIFiles, m.HealthFiles,
		m.RaceFiles, m.ClassFiles, m.ItemFiles, m.EntityFiles,
	} {
		out = append(out, group...)
	}
	return out
}

// FileReport summarizes one processed content file.
type FileReport struct {
	Path       string
	Registered int
	Rejected   int
	Errors     []string
	Warnings   []string
}

// Loader populates a Tables instance from content files. Loading is a
// single-threaded phase from the caller's point of view; only files within
// one category are fetched concurrently.
type Loader struct {
	tables  *Tables
	fetcher Fetcher

	loading atomic.Bool

	mu      sync.Mutex
	reports []FileReport
}

// NewLoader creates a loader writing into tables.
func NewLoader(tables *Tables, fetcher Fetcher) *Loader {
	return &Loader{tables: tables, fetcher: fetcher}
}

// Reports returns the per-file reports accumulated by the last LoadAll.
func (l *Loader) Reports() []FileReport {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]FileReport(nil), l.reports...)
}

// LoadAll loads every category in dependency order. Foundational category
// failures (races, classes, items) abort dependent loading with an
// aggregate error; optional categories are best-effort. Re-entrant calls
// while a load is in flight return immediately with a warning. A category
// that fails part-way leaves already-populated sibling registries intact.
func (l *Loader) LoadAll(ctx context.Context, m Manifest) error {
	if !l.loading.CompareAndSwap(false, true) {
		slog.Warn("content load already in progress, ignoring re-entrant call")
		return nil
	}
	defer l.loading.Store(false)

	l.mu.Lock()
	l.reports = nil
	l.mu.Unlock()

	type category struct {
		name         string
		files        []string
		foundational bool
		process      func(path string, doc map[string]any) FileReport
	}

	categories := []category{
		{"render templates", m.RenderFiles, false, l.processRenderFile},
		{"stats templates", m.StatsFiles, false, l.processStatsFile},
		{"ai templates", m.AIFiles, false, l.processAIFile},
		{"health templates", m.HealthFiles, false, l.processHealthFile},
		{"races", m.RaceFiles, true, l.processRaceFile},
		{"classes", m.ClassFiles, true, l.processClassFile},
		{"items", m.ItemFiles, true, l.processItemFile},
		{"entities", m.EntityFiles, false, l.processEntityFile},
	}

	for _, cat := range categories {
		if err := l.loadCategory(ctx, cat.name, cat.files, cat.process); err != nil {
			if cat.foundational {
				// Unresolved foundational references would corrupt every
				// dependent spawn; halt before loading dependents.
				return &DataLoadError{
					Detail: fmt.Sprintf("foundational category %q failed", cat.name),
					Err:    err,
				}
			}
			slog.Error("optional category failed, continuing", "category", cat.name, "err", err)
		}
	}
	return nil
}

// loadCategory fetches and parses the category's files concurrently, then
// registers sequentially: registries are unsynchronized by design, so the
// validate-register pass stays on the calling goroutine. A transport or
// parse failure on any file fails the whole category before anything from
// it is registered.
func (l *Loader) loadCategory(ctx context.Context, name string, files []string, process func(string, map[string]any) FileReport) error {
	if len(files) == 0 {
		return nil
	}

	docs := make([]map[string]any, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			raw, err := l.fetcher.Fetch(ctx, path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			var doc map[string]any
			if err := json.Unmarshal(raw, &doc); err != nil {
				return &ParseError{Path: path, Err: err}
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range files {
		report := process(path, docs[i])
		l.mu.Lock()
		l.reports = append(l.reports, report)
		l.mu.Unlock()
		if len(report.Errors) > 0 {
			slog.Warn("content file had rejected entries",
				"path", path, "registered", report.Registered, "rejected", report.Rejected)
		}
	}
	slog.Info("category loaded", "category", name, "files", len(files))
	return nil
}

// entries extracts the top-level named array from a document. Absence is a
// warning, not a failure: an empty file section is legal for non-critical
// content.
func entries(doc map[string]any, key, path string, report *FileReport) []any {
	v, ok := doc[key]
	if !ok {
		report.Warnings = append(report.Warnings, fmt.Sprintf("no %q array in %s", key, path))
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%q in %s is not an array", key, path))
		return nil
	}
	return arr
}

// processBatch runs the validate-register loop shared by every array-shaped
// category: invalid entries are rejected and logged, siblings continue.
func processBatch[T Identifiable](path string, raw []any, reg *Registry[T], validate func(any, string) ValidationResult[T], report *FileReport) {
	for _, entry := range raw {
		res := validate(entry, "")
		report.Warnings = append(report.Warnings, res.Warnings...)
		if !res.IsValid() {
			report.Rejected++
			verr := &ValidationError{
				Path:     path,
				ID:       res.Data.TemplateID(),
				Errors:   res.Errors,
				Warnings: res.Warnings,
			}
			report.Errors = append(report.Errors, verr.Error())
			slog.Warn("rejected template entry", "path", path, "id", res.Data.TemplateID(), "errors", res.Errors)
			continue
		}
		reg.Register(res.Data)
		report.Registered++
	}
}

func (l *Loader) processRenderFile(path string, doc map[string]any) FileReport {
	report := FileReport{Path: path}
	processBatch(path, entries(doc, "renderTemplates", path, &report), l.tables.Render, ValidateRenderTemplate, &report)
	return report
}

func (l *Loader) processStatsFile(path string, doc map[string]any) FileReport {
	report := FileReport{Path: path}
	processBatch(path, entries(doc, "statsTemplates", path, &report), l.tables.Stats, ValidateStatsTemplate, &report)
	return report
}

func (l *Loader) processAIFile(path string, doc map[string]any) FileReport {
	report := FileReport{Path: path}
	processBatch(path, entries(doc, "aiTemplates", path, &report), l.tables.AI, ValidateAITemplate, &report)
	return report
}

func (l *Loader) processHealthFile(path string, doc map[string]any) FileReport {
	report := FileReport{Path: path}
	processBatch(path, entries(doc, "healthTemplates", path, &report), l.tables.Health, ValidateHealthTemplate, &report)
	return report
}

func (l *Loader) processRaceFile(path string, doc map[string]any) FileReport {
	report := FileReport{Path: path}
	processBatch(path, entries(doc, "races", path, &report), l.tables.Races, ValidateRace, &report)
	return report
}

func (l *Loader) processClassFile(path string, doc map[string]any) FileReport {
	report := FileReport{Path: path}
	processBatch(path, entries(doc, "classes", path, &report), l.tables.Classes, ValidateClass, &report)
	return report
}

// processItemFile handles both the "items" array and the optional
// "itemProperties" keyed map carried in the same file.
func (l *Loader) processItemFile(path string, doc map[string]any) FileReport {
	report := FileReport{Path: path}
	processBatch(path, entries(doc, "items", path, &report), l.tables.Items, ValidateItem, &report)

	if v, ok := doc["itemProperties"]; ok {
		props, ok := asObject(v)
		if !ok {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%q in %s is not an object", "itemProperties", path))
			return report
		}
		for id, entry := range props {
			res := ValidateItemProperty(entry, id)
			report.Warnings = append(report.Warnings, res.Warnings...)
			if !res.IsValid() {
				report.Rejected++
				report.Errors = append(report.Errors, (&ValidationError{
					Path: path, ID: id, Errors: res.Errors, Warnings: res.Warnings,
				}).Error())
				slog.Warn("rejected item property", "path", path, "id", id, "errors", res.Errors)
				continue
			}
			l.tables.ItemProperties.Register(res.Data)
			report.Registered++
		}
	}
	return report
}

func (l *Loader) processEntityFile(path string, doc map[string]any) FileReport {
	report := FileReport{Path: path}
	processBatch(path, entries(doc, "entities", path, &report), l.tables.Entities, ValidateEntity, &report)
	return report
}
