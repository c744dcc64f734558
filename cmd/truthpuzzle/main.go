package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/truthpuzzle/internal/config"
	"svw.info/truthpuzzle/internal/evaluator"
	"svw.info/truthpuzzle/internal/generator"
	"svw.info/truthpuzzle/internal/hint"
	"svw.info/truthpuzzle/internal/logging"
	"svw.info/truthpuzzle/internal/random"
	"svw.info/truthpuzzle/internal/solver"
	"svw.info/truthpuzzle/internal/storage"
	"svw.info/truthpuzzle/internal/usecase"
)

var (
	// Global flags
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "truthpuzzle",
	Short: "Self-referential true/false sentence puzzles",
	Long: `truthpuzzle deals puzzles made of numbered sentences, each talking about
the truth of the others. Tick the sentences you believe are true; the guess
passes when every sentence's claim matches its own box.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogLevel, cfg.LogFormat)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "json|console")

	rootCmd.AddCommand(serveCmd, generateCmd, solveCmd, checkCmd)
}

// newService wires providers into the use case layer.
func newService() (*usecase.Service, error) {
	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return nil, err
	}
	s := solver.NewBacktrackingSolver()
	return usecase.NewService(
		generator.New(),
		evaluator.New(),
		s,
		hint.NewFlip(s),
		storage.NewMemory(cfg.MaxSessions),
		seed,
		logger,
	), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
