// Command a11yaudit audits, optimizes and reports on UI trees loaded from
// HTML files, live pages or JSON snapshots.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/phanxgames/a11ykit"
	"github.com/phanxgames/a11ykit/htmltree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	optionList []string
	colorMode  string
	timeout    time.Duration

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "a11yaudit",
	Short: "Accessibility audits for UI trees",
	Long: `a11yaudit checks a UI tree for missing screen-reader labels, fonts that
ignore the user's text size and text with too little contrast.

Inputs may be an HTML file, an http(s) URL (rendered in headless Chrome)
or a JSON snapshot written by "a11yaudit optimize".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit [input]",
	Short: "List accessibility issues without changing anything",
	Args:  cobra.ExactArgs(1),
	RunE:  runAudit,
}

var reportCmd = &cobra.Command{
	Use:   "report [input]",
	Short: "Print the deduplicated accessibility report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize [input]",
	Short: "Fix issues and write the optimized tree as a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runOptimize,
}

var (
	auditJSON   bool
	failOn      string
	outputPath  string
	showSummary bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringSliceVar(&optionList, "options", []string{"all"}, "Strategies to run: voiceover, dynamictype, colorcontrast, all")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Colorize output: auto, always, never")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Page load timeout for URL inputs")

	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Print issues as JSON lines")
	auditCmd.Flags().StringVar(&failOn, "fail-on", "", "Exit non-zero when an issue of this severity or higher is found (low, medium, high)")

	optimizeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Snapshot output path (default stdout)")
	optimizeCmd.Flags().BoolVar(&showSummary, "summary", true, "Print remaining issue counts to stderr")

	rootCmd.AddCommand(auditCmd, reportCmd, optimizeCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newEngine builds an engine from the --config file and the global logger.
func newEngine() (*a11ykit.Engine, error) {
	engine := a11ykit.NewEngine()
	engine.SetLogger(logger)
	if configPath == "" {
		return engine, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := a11ykit.LoadConfig(data)
	if err != nil {
		return nil, err
	}
	engine.UpdateConfiguration(cfg)
	return engine, nil
}

// parseOptions converts the --options list to a bitmask.
func parseOptions(names []string) (a11ykit.Options, error) {
	var opts a11ykit.Options
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "voiceover":
			opts |= a11ykit.OptionVoiceOver
		case "dynamictype":
			opts |= a11ykit.OptionDynamicType
		case "colorcontrast", "contrast":
			opts |= a11ykit.OptionColorContrast
		case "all":
			opts |= a11ykit.OptionsAll
		default:
			return 0, fmt.Errorf("unknown option %q", name)
		}
	}
	return opts, nil
}

// loadTree reads input as a URL, a JSON snapshot or an HTML file.
func loadTree(ctx context.Context, input string) (*a11ykit.Node, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		logger.Debug("capturing page", zap.String("url", input))
		return htmltree.Capture(ctx, input, htmltree.CaptureOptions{Timeout: timeout})
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if strings.HasSuffix(strings.ToLower(input), ".json") {
		return a11ykit.LoadSnapshot(data)
	}
	return htmltree.ParseBytes(data)
}
