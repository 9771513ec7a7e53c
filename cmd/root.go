package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/wct/config"
	"github.com/s0up4200/wct/webcams"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  webcams.API

	// clientOptions are appended to the options built from config
	clientOptions []webcams.Option

	// Command flags
	devID      string
	selectExpr string
	rawOutput  bool
	extraArgs  []string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wct",
	Short: "Query the webcams.travel API from the command line",
	Long: `wct is a CLI for the webcams.travel REST API. Every subcommand maps to
one API method and prints the decoded response as JSON.

Negative coordinates must follow "--" so they are not read as flags:

  wct nearby -- -33.8688 151.2093`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// An interrupt cancels the request in flight.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&devID, "devid", "", "webcams.travel developer ID (overrides webcams.devid)")
	rootCmd.PersistentFlags().StringVarP(&selectExpr, "select", "s", "", "expression selecting part of the response")
	rootCmd.PersistentFlags().BoolVar(&rawOutput, "raw", false, "print compact JSON")
	rootCmd.PersistentFlags().StringArrayVarP(&extraArgs, "param", "P", nil, "extra query parameter as key=value (repeatable)")
}

// initializeApp initializes the configuration and client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create webcams.travel client
	opts := append([]webcams.Option{
		webcams.WithBaseURL(cfg.Webcams.URL),
		webcams.WithTimeout(cfg.Webcams.Timeout),
		webcams.WithUserAgent(userAgent()),
	}, clientOptions...)
	client, err = webcams.NewClient(cfg.Webcams.DevID, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create webcams.travel client: %w", err)
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

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func userAgent() string {
	if cfg != nil && cfg.Webcams.UserAgent != "" {
		return cfg.Webcams.UserAgent
	}
	return "wct/" + displayVersion()
}
