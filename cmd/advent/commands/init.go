package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dyluth/advent/internal/printer"
	"github.com/dyluth/advent/internal/scaffold"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create advent.yml and the input cache directory",
	Long: `Initialize the current directory for solving puzzles.

Creates:
  • advent.yml - configuration with every default spelled out
  • <input_dir>/.gitignore - keeps puzzle inputs out of version control

Use --force to replace an existing advent.yml. Cached inputs are kept.`,
	Args: cobra.NoArgs,
	// init must work before any advent.yml exists, so skip config loading.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	PersistentPostRun: func(cmd *cobra.Command, args []string) {},
	RunE:              runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Replace an existing advent.yml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	if !forceInit {
		if err := scaffold.CheckExisting(root); err != nil {
			return printer.Error("project already initialized", err.Error(),
				[]string{"Use 'advent init --force' to replace advent.yml (cached inputs are kept)"})
		}
	}

	dir := inputDir
	if dir == "" {
		dir = "input"
	}
	created, err := scaffold.Initialize(root, dir, forceInit)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	printer.Success("Initialized advent project\n")
	printer.Info("\nCreated:\n")
	for _, path := range created {
		printer.Info("  ✓ %s\n", path)
	}
	printer.Info("\nNext steps:\n")
	printer.Info("  1. Export AOC_SESSION with your adventofcode.com session cookie\n")
	printer.Info("  2. Run 'advent fetch 1' to cache the first input\n")
	printer.Info("  3. Run 'advent 1' to solve it\n")
	return nil
}
