package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"mendmd/internal/adapters/report"
	"mendmd/internal/adapters/sqlite"
	"mendmd/internal/adapters/state"
	"mendmd/internal/application/commands"
)

var runCmd = &cobra.Command{
	Use:   "run <vault-root>",
	Short: "Run the full pipeline: rename attachments, then repair links",
	Long: `Run the full pipeline over a vault.

Attachments in the selected categories get canonical timestamp names,
then every markdown document is scanned and its broken references are
rewritten to point at the files that actually exist. The outcome is
printed as a report and recorded in the run history.

Examples:
  mendmd-cli run ~/notes
  mendmd-cli run ~/notes --categories image,office
  mendmd-cli run ~/notes -c all`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := selectedCategories()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		history, err := sqlite.OpenHistory(dataDir)
		if err != nil {
			return err
		}
		defer history.Close()

		run := commands.NewRunCommand(openVault(args[0]), state.NewStore(dataDir), history, cats)
		rep, runErr := run.Execute(ctx)
		if rep != nil {
			if err := report.WriteArtifacts(dataDir, rep); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not write report artifacts: %v\n", err)
			}
			fmt.Print(report.RenderMarkdown(rep))
		}
		return runErr
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addCategoriesFlag(runCmd)
}
