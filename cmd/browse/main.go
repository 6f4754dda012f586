// Command browse fetches one locator and prints a text rendering of
// the document to standard output.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dqx0.com/go/browse/internal/config"
	"dqx0.com/go/browse/internal/obs"
	"dqx0.com/go/browse/internal/ratelimit"
	"dqx0.com/go/browse/webx"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "browse [locator]",
	Short: "Fetch a locator and render the document as text",
	Long: "browse resolves a locator (http, https, file or data, optionally " +
		"prefixed with view-source:), issues a single GET, follows redirects, " +
		"and prints a text approximation of the document.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	var logger obs.Logger = obs.NopLogger{}
	if verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer zl.Sync()
		logger = obs.ZapLogger{L: zl}
	}

	raw := cfg.DefaultURL
	if len(args) == 1 {
		raw = args[0]
	}
	u, err := webx.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %q: %w", raw, err)
	}

	rc := webx.NewRequestContext()
	rc.UserAgent = cfg.UserAgent
	rc.MaxRedirects = cfg.MaxRedirects
	rc.Dial = webx.NetDialer(cfg.DialTimeout)
	rc.Logger = logger
	if cfg.RateRPS > 0 {
		rc.Throttle = ratelimit.New(cfg.RateRPS, cfg.RateBurst)
	}

	return rc.Load(os.Stdout, u)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "browse:", err)
		os.Exit(1)
	}
}
