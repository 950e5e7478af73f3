package main

import (
	"fmt"

	"github.com/iwvelando/youth-budget/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default program and rates as YAML",
	Long:  "Print the default program and rates as YAML, ready to save as a starting config.yaml.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := yaml.Marshal(config.Default())
		if err != nil {
			return fmt.Errorf("failed to encode defaults: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}
