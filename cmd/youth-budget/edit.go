package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/iwvelando/youth-budget/internal/config"
	"github.com/iwvelando/youth-budget/internal/form"
	"github.com/iwvelando/youth-budget/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var flagEditSave string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the program interactively and print the estimate",
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditSave, "save", "", "write the edited program and rates to this YAML file")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	session, err := newSession(nil)
	if err != nil {
		return err
	}

	if err := form.Run(cmd.Context(), logger, session); err != nil {
		if errors.Is(err, form.ErrAborted) {
			logger.Info("edit aborted", zap.String("op", "main.edit"))
			return nil
		}
		return err
	}

	if flagEditSave != "" {
		edited := *conf
		edited.Program = session.Program()
		edited.Rates = session.Rates()
		if err := saveConfig(flagEditSave, edited); err != nil {
			return err
		}
		logger.Info("configuration saved",
			zap.String("op", "main.edit"),
			zap.String("path", flagEditSave),
		)
	}

	return output.Write(cmd.OutOrStdout(), format, session.Report())
}

func saveConfig(path string, c config.Configuration) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration to %s: %w", path, err)
	}
	return nil
}
