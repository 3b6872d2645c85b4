package cmd

import (
	"fmt"

	"github.com/arcanaland/cardtable/internal/snapshot"
	"github.com/arcanaland/cardtable/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the initial card snapshot",
	Long: `Validate checks that every card of the initial snapshot is stored under its own id,
follows the <value>-<suit> naming convention and starts face-down, available and unmoved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := validator.NewValidator(snapshot.InitialCards())
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ Snapshot of %d cards is valid.\n", len(v.Cards))
		} else {
			fmt.Fprintf(out, "❌ Snapshot has %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
