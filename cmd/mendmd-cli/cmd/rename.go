package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mendmd/internal/adapters/state"
	"mendmd/internal/application/commands"
)

var renameCmd = &cobra.Command{
	Use:   "rename <vault-root>",
	Short: "Rename attachments to canonical timestamp names",
	Long: `Rename attachments in the selected categories without touching any
document. Files that already carry a canonical name are skipped, so the
command is safe to repeat.

Renaming alone leaves references stale; follow up with "fix" or use
"run" to do both in one pass.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := selectedCategories()
		if err != nil {
			return err
		}

		ctx := context.Background()
		repo := openVault(args[0])

		scan, err := commands.NewScanCommand(repo).Execute(ctx)
		if err != nil {
			return err
		}

		rename := commands.NewRenameCommand(repo, state.NewStore(dataDir), cats, scan.Files)
		result, err := rename.Execute(ctx)
		if err != nil {
			return err
		}

		for _, m := range result.Renames {
			fmt.Printf("%s -> %s\n", m.OriginalPath, m.NewPath)
		}
		fmt.Printf("Renamed %d of %d candidates\n", len(result.Renames), result.Candidates)
		for _, e := range result.Errors {
			fmt.Printf("error: %v\n", e)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
	addCategoriesFlag(renameCmd)
}
