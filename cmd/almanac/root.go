package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac"
)

var (
	verbose  bool
	path     string
	fromDate string
	toDate   string
	commit   bool
	dryRun   bool
)

// rootCmd prepares the calendar pages when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Prepare calendar pages for a Logseq graph",
	Long: `Almanac writes journal pages for a range of days, together with the
week, month and year pages they belong to. Existing pages are merged:
properties are refreshed, missing bullets appended, your own notes kept.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := graphRoot()
		if err != nil {
			return err
		}

		from := almanac.Today()
		if fromDate != "" {
			if from, err = almanac.ParseDay(fromDate); err != nil {
				return fmt.Errorf("--from: %w", err)
			}
		}
		to := from.AddMonths(1)
		if toDate != "" {
			if to, err = almanac.ParseDay(toDate); err != nil {
				return fmt.Errorf("--to: %w", err)
			}
		}

		opts := graphOptions(cmd.OutOrStdout())
		if cmd.Flags().Changed("commit") {
			opts = append(opts, almanac.WithVersioning(commit))
		}
		return almanac.Prepare(cmd.Context(), root, from, to, opts...)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// graphRoot returns --path, or the graph root above the working directory.
func graphRoot() (string, error) {
	if path != "" {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	root, err := almanac.FindGraphRoot(cwd)
	if err != nil {
		return "", fmt.Errorf("%w (use --path)", err)
	}
	return root, nil
}

// graphOptions returns the options shared by every command.
func graphOptions(out io.Writer) []almanac.Option {
	return []almanac.Option{
		almanac.WithLogger(slog.Default()),
		almanac.WithOutput(out),
		almanac.WithDryRun(dryRun),
		almanac.WithMustExist(true),
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&path, "path", "", "Path to the Logseq graph (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the pages that would be written without writing them")

	rootCmd.Flags().StringVar(&fromDate, "from", "", "First day to prepare, YYYY-MM-DD (default: today)")
	rootCmd.Flags().StringVar(&toDate, "to", "", "Last day to prepare, YYYY-MM-DD (default: one month after --from)")
	rootCmd.Flags().BoolVar(&commit, "commit", false, "Commit prepared pages with git (default: the commit key of .almanac.yaml)")
}
