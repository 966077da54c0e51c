package cmd

import (
	"context"
	"fmt"

	"intl-sheets/core/auth"
	"intl-sheets/core/catalog"
	"intl-sheets/core/config"
	"intl-sheets/core/logger"
	"intl-sheets/core/reconcile"
	"intl-sheets/core/sheets"
	"intl-sheets/core/storage"
	"intl-sheets/feature/translations"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for sync command
	dryRunSync   bool
	allowPartial bool
)

// syncCmd reconciles the catalog with the spreadsheet and writes the result.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the message catalog with the spreadsheet",
	Long: `Synchronize the message catalog with the translation spreadsheet.

New ids are appended to the base tab and to every secondary tab with an
empty translation. Ids no longer in the catalog are removed from every tab.

Examples:
  # Sync using .env / environment configuration
  sync

  # Show what would change without writing
  sync --dry-run

  # Do not fail when some tabs could not be written
  sync --allow-partial`,
	RunE: runSync,
}

// planCmd prints the reconciliation report without writing.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Report what a sync would change",
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRunSync = true
		return runSync(cmd, args)
	},
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Compute the plan without writing to the spreadsheet")
	syncCmd.Flags().BoolVar(&allowPartial, "allow-partial", false, "Exit successfully even if some ranges failed to update")

	RootCmd.AddCommand(syncCmd)
	RootCmd.AddCommand(planCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	svc, err := buildService(ctx, cfg, l)
	if err != nil {
		return err
	}

	l.Info("Starting translation sync",
		zap.String("spreadsheet", cfg.Sheets.SpreadsheetID),
		zap.Bool("dry_run", dryRunSync),
	)

	report, err := svc.Sync(ctx, translations.Options{DryRun: dryRunSync})
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	printPlan(l, report.Plan)

	if err := report.Err(); err != nil {
		if allowPartial {
			l.Warn("Partial sync accepted", zap.Error(err))
			return nil
		}
		return err
	}
	return nil
}

// setup loads and validates the configuration and builds the logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// buildService wires the catalog loader, the authorized Sheets client and
// the translations service.
func buildService(ctx context.Context, cfg *config.Config, l *zap.Logger) (*translations.Service, error) {
	languages, err := cfg.Sheets.LanguageSet()
	if err != nil {
		return nil, err
	}

	var store storage.Client
	if cfg.Catalog.Source == catalog.SourceStorage {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
	}
	loader := catalog.NewLoader(cfg.Catalog, store, cfg.Storage.Bucket)

	httpClient, err := auth.NewHTTPClient(ctx, cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize: %w", err)
	}

	client, err := sheets.NewClient(ctx, cfg.Sheets, httpClient)
	if err != nil {
		return nil, err
	}

	return translations.NewService(client, loader, cfg.Sheets.SpreadsheetID, languages, l), nil
}

// printPlan logs a short sample of the additions and removals.
func printPlan(l *zap.Logger, plan *reconcile.Plan) {
	const maxShow = 5

	show := func(label string, ids []string) {
		if len(ids) == 0 {
			return
		}
		n := min(len(ids), maxShow)
		l.Info(label, zap.Strings("ids", ids[:n]), zap.Int("total", len(ids)))
	}

	added := make([]string, 0, len(plan.NewMessages))
	for _, m := range plan.NewMessages {
		added = append(added, m.ID)
	}
	show("Added messages", added)
	show("Removed messages", plan.StaleIDs)

	if plan.IsNoop() {
		l.Info("Catalog and spreadsheet already in sync")
	}
}
