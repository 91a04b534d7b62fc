package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmans/gradebook/internal/config"
	"github.com/hmans/gradebook/internal/seed"
	"github.com/hmans/gradebook/internal/store"
)

var (
	book   *store.Store
	cfg    *config.Config
	logger *slog.Logger
)

var (
	configPath string
	dataDir    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gradebook",
	Short: "An in-memory GraphQL service for courses, students and grades",
	Long: `Gradebook loads courses, students and grades from seed files into memory
and serves them over GraphQL. Changes made through mutations live only as long
as the process.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if dataDir != "" {
			cfg.Data = config.DataInDir(dataDir)
		}

		// Writing the config and printing the schema need no records.
		if cmd.Name() == "init" || (cmd.Name() == "graphql" && querySchemaOnly) {
			book = store.NewEmpty()
			return nil
		}

		sd, err := seed.Load(cfg.Data)
		if err != nil {
			return fmt.Errorf("loading seed data: %w", err)
		}
		book = store.New(sd)

		courses, students, grades := book.Counts()
		logger.Debug("seed loaded", "courses", courses, "students", students, "grades", grades)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigFile, "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Directory holding courses.json, students.json and grades.json (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
