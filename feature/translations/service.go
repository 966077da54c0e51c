package translations

import (
	"context"
	"fmt"
	"sync"

	"intl-sheets/core/reconcile"
	"intl-sheets/core/sheets"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// CatalogLoader provides the local message catalog.
type CatalogLoader interface {
	Load(ctx context.Context) ([]reconcile.Message, error)
}

// Service synchronizes the message catalog with the translation spreadsheet.
type Service struct {
	client        sheets.Client
	catalog       CatalogLoader
	spreadsheetID string
	languages     sheets.LanguageSet
	logger        *zap.Logger

	// sf collapses concurrent runs so two syncs never interleave
	// clears and writes on the same ranges.
	sf singleflight.Group
}

// NewService creates a new translations service.
func NewService(client sheets.Client, catalog CatalogLoader, spreadsheetID string, languages sheets.LanguageSet, logger *zap.Logger) *Service {
	return &Service{
		client:        client,
		catalog:       catalog,
		spreadsheetID: spreadsheetID,
		languages:     languages,
		logger:        logger,
	}
}

// Plan loads the catalog, reads every language range and reconciles them.
// Nothing is written.
func (s *Service) Plan(ctx context.Context) (*reconcile.Plan, error) {
	// The catalog is loaded first so a bad file aborts before any remote call.
	messages, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Loaded message catalog", zap.Int("messages", len(messages)))

	base, err := s.readBase(ctx)
	if err != nil {
		return nil, err
	}

	secondary, err := s.readSecondaries(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := reconcile.Reconcile(messages, base, secondary)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile: %w", err)
	}

	s.logPlan(plan)
	return plan, nil
}

// Sync plans and, unless opts.DryRun is set, applies the plan. Read and
// reconcile failures are returned as errors. Clear and write failures do not
// stop the run; they are recorded in the report (see Report.Err).
func (s *Service) Sync(ctx context.Context, opts Options) (*Report, error) {
	key := "sync"
	if opts.DryRun {
		key = "plan"
	}

	v, err, shared := s.sf.Do(key, func() (interface{}, error) {
		return s.sync(ctx, opts)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Joined an in-flight run", zap.String("kind", key))
	}
	return v.(*Report), nil
}

func (s *Service) sync(ctx context.Context, opts Options) (*Report, error) {
	plan, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Plan: plan, DryRun: opts.DryRun}
	if opts.DryRun {
		s.logger.Info("Dry-run mode: no changes were made")
		return report, nil
	}

	report.Results = s.apply(ctx, plan)

	if failed := report.Failed(); len(failed) > 0 {
		s.logger.Warn("Sync finished with failures",
			zap.Int("failed", len(failed)),
			zap.Int("operations", len(report.Results)),
		)
	} else {
		s.logger.Info("Sync finished", zap.Int("operations", len(report.Results)))
	}
	return report, nil
}

// readBase fetches the base-language rows.
func (s *Service) readBase(ctx context.Context) ([]reconcile.BaseRow, error) {
	lang := s.languages.Base
	rng := sheets.BaseRange(lang.Tab)

	values, err := s.client.Get(ctx, s.spreadsheetID, rng)
	if err != nil {
		return nil, &RemoteError{Op: "read", Language: lang.Code, Range: rng, Err: err}
	}

	s.logger.Debug("Read base language", zap.String("language", lang.Code), zap.Int("rows", len(values)))
	return sheets.BaseRowsFromValues(values), nil
}

// readSecondaries fetches every secondary language concurrently.
// The first failure cancels the others and is returned.
func (s *Service) readSecondaries(ctx context.Context) (map[string][]reconcile.TranslationRow, error) {
	langs := s.languages.Secondary
	rows := make([][]reconcile.TranslationRow, len(langs))

	g, gctx := errgroup.WithContext(ctx)
	for i, lang := range langs {
		g.Go(func() error {
			rng := sheets.SecondaryRange(lang.Tab)
			values, err := s.client.Get(gctx, s.spreadsheetID, rng)
			if err != nil {
				return &RemoteError{Op: "read", Language: lang.Code, Range: rng, Err: err}
			}
			rows[i] = sheets.TranslationRowsFromValues(values)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	secondary := make(map[string][]reconcile.TranslationRow, len(langs))
	for i, lang := range langs {
		secondary[lang.Code] = rows[i]
		s.logger.Debug("Read secondary language", zap.String("language", lang.Code), zap.Int("rows", len(rows[i])))
	}
	return secondary, nil
}

// apply clears every range, then writes every range. Phases run in order:
// clear base, clear secondaries (parallel), write base, write secondaries
// (parallel). A failure is recorded and the run continues.
func (s *Service) apply(ctx context.Context, plan *reconcile.Plan) []RangeResult {
	base := s.languages.Base
	baseRange := sheets.BaseRange(base.Tab)

	results := make([]RangeResult, 0, 2*(1+len(s.languages.Secondary)))

	// Pass 1: clear
	results = append(results, s.clear(ctx, base.Code, baseRange))
	results = append(results, s.fanOut(func(lang sheets.Language) RangeResult {
		return s.clear(ctx, lang.Code, sheets.SecondaryRange(lang.Tab))
	})...)

	// Pass 2: write
	results = append(results, s.write(ctx, base.Code, baseRange, sheets.BaseRowsToValues(plan.Base)))
	results = append(results, s.fanOut(func(lang sheets.Language) RangeResult {
		values := sheets.TranslationRowsToValues(plan.Secondary[lang.Code])
		return s.write(ctx, lang.Code, sheets.SecondaryRange(lang.Tab), values)
	})...)

	return results
}

// fanOut runs fn for every secondary language concurrently and returns the
// results in configuration order.
func (s *Service) fanOut(fn func(lang sheets.Language) RangeResult) []RangeResult {
	langs := s.languages.Secondary
	results := make([]RangeResult, len(langs))

	var wg sync.WaitGroup
	wg.Add(len(langs))
	for i, lang := range langs {
		go func() {
			defer wg.Done()
			results[i] = fn(lang)
		}()
	}
	wg.Wait()

	return results
}

func (s *Service) clear(ctx context.Context, code, rng string) RangeResult {
	res := RangeResult{Language: code, Range: rng, Op: OpClear}
	if err := s.client.Clear(ctx, s.spreadsheetID, rng); err != nil {
		return s.failed(res, err)
	}
	return res
}

func (s *Service) write(ctx context.Context, code, rng string, values [][]string) RangeResult {
	res := RangeResult{Language: code, Range: rng, Op: OpWrite, Rows: len(values)}
	if len(values) == 0 {
		res.Skipped = true
		return res
	}

	err := s.client.BatchUpdate(ctx, s.spreadsheetID, []sheets.ValueRange{{Range: rng, Values: values}})
	if err != nil {
		return s.failed(res, err)
	}

	s.logger.Info("Wrote range", zap.String("language", code), zap.String("range", rng), zap.Int("rows", len(values)))
	return res
}

func (s *Service) failed(res RangeResult, err error) RangeResult {
	res.Err = err
	res.Error = err.Error()
	s.logger.Error("Range operation failed",
		zap.String("op", string(res.Op)),
		zap.String("language", res.Language),
		zap.String("range", res.Range),
		zap.Error(err),
	)
	return res
}

// logPlan reports the diff and any inconsistency between language tabs.
func (s *Service) logPlan(plan *reconcile.Plan) {
	sum := plan.Summary
	s.logger.Info("Reconciliation report",
		zap.Int("total_messages", sum.TotalMessages),
		zap.Int("added", sum.Added),
		zap.Int("removed", sum.Removed),
		zap.Int("kept", sum.Kept),
	)

	for _, lang := range plan.Languages() {
		if orphans := plan.Orphans[lang]; len(orphans) > 0 {
			s.logger.Warn("Dropping rows with no base entry",
				zap.String("language", lang),
				zap.Strings("ids", orphans),
			)
		}
		if missing := plan.Missing[lang]; len(missing) > 0 {
			s.logger.Warn("Language is missing rows for base entries",
				zap.String("language", lang),
				zap.Strings("ids", missing),
			)
		}
	}
}
