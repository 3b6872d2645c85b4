package cmd

import (
	"fmt"

	"github.com/arcanaland/cardtable/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cardtable configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

var configSetFormatCmd = &cobra.Command{
	Use:   "set-format [format]",
	Short: "Set the default export format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetFormat(args[0]); err != nil {
			return fmt.Errorf("error setting format: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default format set to: %s\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetFormatCmd)
}
