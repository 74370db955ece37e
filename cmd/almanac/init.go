package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac"
)

var initCommit bool

// initCmd writes a default configuration file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .almanac.yaml into the graph",
	Long: `Write a .almanac.yaml with the Logseq defaults into the graph root, so
it can be found from any subdirectory and tuned (directories, extension,
bullet, commit).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := path
		if root == "" {
			root = "."
		}

		cfg := almanac.Config{
			Journals:  "journals",
			Pages:     "pages",
			Extension: ".md",
			Commit:    initCommit,
		}
		file, err := almanac.Init(root, cfg)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Initialized", file)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initCommit, "commit", false, "Commit prepared pages by default")
}
