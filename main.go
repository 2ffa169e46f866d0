// Package main provides the entry point for the ci-stats CLI tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/ci-stats/internal/logger"
	"github.com/sgaunet/ci-stats/internal/security"
	"github.com/sgaunet/ci-stats/internal/ui"
	"github.com/sgaunet/ci-stats/internal/urlutil"
	"github.com/sgaunet/ci-stats/pkg/builds"
	"github.com/sgaunet/ci-stats/pkg/config"
	"github.com/sgaunet/ci-stats/pkg/git"
	"github.com/sgaunet/ci-stats/pkg/output"
	"github.com/sgaunet/ci-stats/pkg/platform"
	"github.com/sgaunet/ci-stats/pkg/stats"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	log      *bullets.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ci-stats",
	Short: "Build duration statistics for the current repository",
	Long: `ci-stats fetches the recent passed builds of the repository in the current
directory from Travis CI (or GitHub Actions) and charts their durations
against the fastest, average and slowest build.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCIStats(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info",
		"Set log level (debug, info, warn, error)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", security.SanitizeError(err))
		os.Exit(1)
	}
}

func runCIStats(ctx context.Context) error {
	log = logger.NewLogger(logLevel)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log.Debug("Configuration loaded, provider: " + cfg.Provider)

	owner, repo, err := resolveRepository()
	if err != nil {
		return fmt.Errorf("failed to resolve repository: %w", err)
	}
	log.Infof("Repository %s/%s", owner, repo)

	session, err := platform.NewSession(ctx, cfg, ui.NewSurveyPrompter(), log)
	if err != nil {
		return fmt.Errorf("failed to create %s session: %w", cfg.Provider, err)
	}

	all, err := fetchBuilds(ctx, session, owner, repo)
	if err != nil {
		return fmt.Errorf("failed to fetch builds: %w", err)
	}

	report, err := stats.NewRenderer(stats.WithLogger(log)).Render(all)
	if err != nil {
		return fmt.Errorf("failed to render build stats: %w", err)
	}
	log.Debugf("Charting %d passed builds (%d skipped)", len(report.Rows()), report.Skipped)

	return output.NewTerminal(os.Stdout).Write(report)
}

// resolveRepository reads owner/repo from the origin remote of the
// repository containing the working directory.
func resolveRepository() (string, string, error) {
	repo, err := git.OpenRepository(".")
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", urlutil.ErrRepositoryUnresolved, err)
	}

	remoteURL, err := repo.OriginURL()
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", urlutil.ErrRepositoryUnresolved, err)
	}
	log.Debug("Origin remote: " + security.SanitizeString(remoteURL))

	return urlutil.ParseRepository(remoteURL)
}

func fetchBuilds(ctx context.Context, session builds.Session, owner, repo string) ([]builds.Build, error) {
	progress := ui.NewFetchProgress(logger.NewUpdatable())
	fetcher := builds.NewFetcher(session, builds.DefaultMaxPages,
		builds.WithProgress(progress),
		builds.WithLogger(log))

	all, err := fetcher.Fetch(ctx, owner, repo)
	if err != nil {
		progress.Fail(security.SanitizeError(err))
		return nil, err
	}
	progress.Done()
	log.Debugf("Received %d builds over %d pages", progress.Total(), progress.Pages())
	return all, nil
}
