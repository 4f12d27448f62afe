package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/khoahotran/portfolio-api/adapters/persistence"
	seedUC "github.com/khoahotran/portfolio-api/internal/application/usecase/seed"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/metrics"
)

var errPartialSeed = errors.New("some collections were not seeded")

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the default portfolio content into the document store",
	Long: `Seed replaces the profile, skills, experience and projects documents
with the built-in content set. Every collection is attempted even when an
earlier one fails.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}
		return runSeed(cmd.Context(), cfg, logger.NewZapLogger(cfg.App.Env), cmd.OutOrStdout())
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runSeed(ctx context.Context, cfg config.Config, log logger.Logger, out io.Writer) error {
	defer log.Sync()

	backend, err := persistence.OpenDocumentStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("cannot open document store: %w", err)
	}

	// Writes go through the cache so a running server never serves the
	// documents seed just replaced.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		if rdb, err = persistence.NewRedisClient(ctx, cfg, log); err != nil {
			log.Warn("Redis unavailable, cached documents expire on their own TTL")
		} else {
			defer rdb.Close()
		}
	}
	store := persistence.Decorate(backend, rdb, cfg, log, metrics.NewCollector("portfolio_seed"))
	defer store.Close()

	uc := seedUC.NewSeedUseCase(
		persistence.NewProfileRepo(store),
		persistence.NewSkillRepo(store),
		persistence.NewExperienceRepo(store),
		persistence.NewProjectRepo(store),
		log,
	)
	res := uc.Execute(ctx)

	printSummary(out, res)
	if !res.AllSucceeded() {
		return errPartialSeed
	}
	return nil
}

func printSummary(out io.Writer, res seedUC.SeedResult) {
	mark := func(ok bool) string {
		if ok {
			return "✓"
		}
		return "✗"
	}

	fmt.Fprintln(out, "Seeding portfolio data:")
	fmt.Fprintf(out, "  %s profile\n", mark(res.Profile))
	fmt.Fprintf(out, "  %s skills\n", mark(res.Skills))
	fmt.Fprintf(out, "  %s experience\n", mark(res.Experience))
	fmt.Fprintf(out, "  %s projects\n", mark(res.Projects))
	if res.AllSucceeded() {
		fmt.Fprintln(out, "All data initialized successfully!")
	}
}
