package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reelgrid/reelgrid/config"
	"github.com/reelgrid/reelgrid/movieapi"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	apiClient *movieapi.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "reelgrid",
	Short: "A web UI for browsing and discovering movies from a hosted recommender API",
	Long: `reelgrid serves a small server-rendered web UI on top of an externally
hosted movie recommender API: a searchable home feed, per-movie detail pages,
and genre-based recommendations. All search and recommendation logic lives
behind the remote API; reelgrid only routes views and renders grids.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information for the root command
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the upstream client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create the recommender API client
	apiClient, err = movieapi.NewClient(
		cfg.API.BaseURL,
		logger,
		movieapi.WithTimeout(cfg.API.Timeout),
		movieapi.WithCacheTTL(cfg.API.CacheTTL),
	)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the recommender API",
	Long:  `Probe the configured recommender API and print a small sample of the trending feed.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to recommender API at %s...\n", cfg.API.BaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if err := apiClient.Ping(ctx); err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}
	fmt.Println("✓ Connection successful!")

	movies, err := apiClient.HomeFeed(ctx, "trending", 5)
	if err != nil {
		return fmt.Errorf("failed to fetch trending feed: %w", err)
	}

	fmt.Printf("\nTrending sample (%d movies):\n", len(movies))
	for _, m := range movies {
		id := m.TmdbID
		if id == 0 {
			id = m.ID
		}
		fmt.Printf("  • %s (TMDB %d)\n", m.Title, id)
	}

	return nil
}
