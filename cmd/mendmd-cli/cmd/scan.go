package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mendmd/internal/application/commands"
)

var scanCmd = &cobra.Command{
	Use:   "scan <vault-root>",
	Short: "Scan a vault and report its file inventory",
	Long: `Scan a vault without modifying anything.

Reports how many documents and attachments were found and lists groups
of files sharing the same filename, the ones that make bare-filename
references ambiguous.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewScanCommand(openVault(args[0])).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Files: %d (%d documents, %d attachments)\n",
			len(result.Files), result.Documents, result.Attachments)
		for _, e := range result.Errors {
			fmt.Printf("scan error: %v\n", e)
		}
		if len(result.Duplicates) > 0 {
			fmt.Printf("\nDuplicate filenames:\n%s", formatDuplicates(result.Duplicates))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
