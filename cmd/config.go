package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Recognized keys:
  print-color        "true" or "false" – colorize the pretty output
  ls-default-period  default listing window, e.g. "28 days" or "2 weeks"`,
	Args: cobra.ExactArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	if err := s.config.TrySet(args[0], args[1]); err != nil {
		return err
	}
	if err := s.config.Save(); err != nil {
		return err
	}
	fmt.Println("The config was updated.")
	return nil
}
