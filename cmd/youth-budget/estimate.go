package main

import (
	"github.com/iwvelando/youth-budget/pkg/output"
	"github.com/iwvelando/youth-budget/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagEstimateSets []string

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Print the cost breakdown and recommendations",
	Example: `  youth-budget estimate --config config.yaml
  youth-budget estimate --set numberOfParticipants=12 --set isPaid=yes -o json`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringArrayVar(&flagEstimateSets, "set", nil, "override a field, e.g. --set programDays=45 (repeatable)")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	session, err := newSession(flagEstimateSets)
	if err != nil {
		return err
	}

	report := session.Report()
	if len(flagEstimateSets) > 0 {
		for _, warning := range validation.ValidateProgram(report.Program) {
			logger.Warn("Program warning: "+warning,
				zap.String("op", "main.estimate"),
			)
		}
		for _, warning := range validation.ValidateRates(report.Rates) {
			logger.Warn("Rate warning: "+warning,
				zap.String("op", "main.estimate"),
			)
		}
	}

	logger.Debug("estimate computed",
		zap.String("op", "main.estimate"),
		zap.String("report", report.ID),
		zap.Float64("total", report.Breakdown.Total),
	)

	return output.Write(cmd.OutOrStdout(), format, report)
}
