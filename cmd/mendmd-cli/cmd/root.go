package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mendmd/internal/adapters/filesystem"
	"mendmd/internal/config"
	"mendmd/internal/domain"
	"mendmd/internal/logger"
	"mendmd/internal/ports"
)

var (
	dataDir    string
	verbose    bool
	categories []string
)

var rootCmd = &cobra.Command{
	Use:   "mendmd-cli",
	Short: "CLI for mending markdown vaults",
	Long: `mendmd-cli renames attachments in a markdown notes vault to unique
timestamp names and rewrites the references in every document so broken
links point at real files again.

It provides commands to run the full pipeline or its stages (scan,
rename, fix) individually, and to inspect past runs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		logger.Init(verbose)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", config.DataDir(), "directory for state records and run history")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func addCategoriesFlag(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&categories, "categories", "c", nil,
		"attachment categories to rename (image, video, audio, office, other, all)")
}

func selectedCategories() ([]domain.Category, error) {
	return domain.NormalizeCategories(categories)
}

func openVault(root string) ports.VaultRepository {
	return filesystem.NewRepository(root)
}

func formatDuplicates(groups []domain.DuplicateGroup) string {
	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "%s\n", g.Name)
		for _, p := range g.Paths {
			fmt.Fprintf(&b, "  %s\n", p)
		}
	}
	return b.String()
}
