package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mendmd/internal/application/commands"
	"mendmd/internal/domain"
)

var fixCmd = &cobra.Command{
	Use:   "fix <vault-root>",
	Short: "Repair broken references without renaming anything",
	Long: `Resolve and rewrite broken references in every markdown document
against the vault as it is now. No file is renamed.

References that match nothing, or match more than one file, are left
untouched and listed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		repo := openVault(args[0])

		scan, err := commands.NewScanCommand(repo).Execute(ctx)
		if err != nil {
			return err
		}

		fix := commands.NewFixLinksCommand(repo, domain.BuildPathIndex(scan.Files), scan.Files)
		result, err := fix.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Fixed %d links in %d documents, skipped %d\n",
			result.LinksFixed, result.DocumentsChanged, result.LinksSkipped)
		for _, ref := range result.Invalid {
			fmt.Printf("unresolved: %s -> %s\n", ref.Document, ref.WrittenPath)
		}
		for _, e := range result.Errors {
			fmt.Printf("error: %v\n", e)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
