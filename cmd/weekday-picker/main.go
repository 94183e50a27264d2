package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/weekday-picker/internal/config"
	"github.com/username/weekday-picker/internal/picker"
	"github.com/username/weekday-picker/internal/session"
	"github.com/username/weekday-picker/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "weekday-picker",
		Short: "Weekday-restricted date range picker",
		Long:  "Pick weekday-bounded date ranges from a calendar, with predefined shortcuts and weekend-date reporting",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(pickCmd())
	rootCmd.AddCommand(weekendsCmd())
	rootCmd.AddCommand(shortcutCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func pickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a weekday-bounded date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			p := picker.New(toRanges(cfg.Ranges), printChange(os.Stdout), logger)

			sess := session.New(p, os.Stdin, os.Stdout, logger)
			sess.YearWindow = cfg.UI.YearWindow
			sess.YearOffset = cfg.UI.YearOffset

			return sess.Run()
		},
	}
}

func weekendsCmd() *cobra.Command {
	var startStr, endStr string

	cmd := &cobra.Command{
		Use:   "weekends",
		Short: "List weekend dates in an inclusive date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ParseDate(startStr)
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
			end, err := dateutil.ParseDate(endStr)
			if err != nil {
				return fmt.Errorf("invalid end date: %w", err)
			}
			if end.Before(start) {
				return fmt.Errorf("start %s is after end %s", startStr, endStr)
			}

			logger.Info("Listing weekend dates",
				zap.String("start", dateutil.FormatDate(start)),
				zap.String("end", dateutil.FormatDate(end)))

			for _, d := range dateutil.WeekendDates(start, end) {
				fmt.Println(d)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "Range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "Range end date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func shortcutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortcut NAME",
		Short: "Activate a predefined range and print the selection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			p := picker.New(toRanges(cfg.Ranges), printChange(os.Stdout), logger)
			return p.ActivateRange(strings.Join(args, " "))
		},
	}
}

// printChange writes a completed selection to w
func printChange(w io.Writer) func(picker.Change) {
	return func(c picker.Change) {
		fmt.Fprintf(w, "Selected %s to %s\n", c.Range[0], c.Range[1])
		if len(c.WeekendDates) == 0 {
			fmt.Fprintln(w, "No weekend dates in range")
			return
		}
		fmt.Fprintf(w, "Weekend dates (%d): %s\n",
			len(c.WeekendDates), strings.Join(c.WeekendDates, ", "))
	}
}

func toRanges(configured []config.RangeConfig) []picker.PredefinedRange {
	ranges := make([]picker.PredefinedRange, len(configured))
	for i, r := range configured {
		ranges[i] = picker.PredefinedRange{Name: r.Name, Days: r.Days}
	}
	return ranges
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
