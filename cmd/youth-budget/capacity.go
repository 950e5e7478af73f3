package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iwvelando/youth-budget/internal/planner"
	"github.com/iwvelando/youth-budget/pkg/constants"
	"github.com/iwvelando/youth-budget/pkg/output"
	"github.com/spf13/cobra"
)

var (
	flagCapacityCeiling float64
	flagCapacityLimit   int
	flagCapacitySets    []string
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Find the most participants a budget ceiling can support",
	Long: `Search participant counts for the largest program whose total cost stays
within the ceiling. Every other program field is held at its configured value.`,
	Example: `  youth-budget capacity --ceiling 50000
  youth-budget capacity --ceiling 40000 --set isPaid=true`,
	RunE: runCapacity,
}

func init() {
	capacityCmd.Flags().Float64Var(&flagCapacityCeiling, "ceiling", 0, "budget ceiling in USD (defaults to budget.ceiling from the config)")
	capacityCmd.Flags().IntVar(&flagCapacityLimit, "limit", 0, "largest participant count to consider (defaults to budget.searchLimit)")
	capacityCmd.Flags().StringArrayVar(&flagCapacitySets, "set", nil, "override a field before searching (repeatable)")
	rootCmd.AddCommand(capacityCmd)
}

func runCapacity(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	ceiling := conf.Budget.Ceiling
	if cmd.Flags().Changed("ceiling") {
		ceiling = flagCapacityCeiling
	} else if ceiling == 0 {
		return errors.New("no budget ceiling given: pass --ceiling or set budget.ceiling")
	}

	limit := conf.Budget.SearchLimit
	if flagCapacityLimit > 0 {
		limit = flagCapacityLimit
	}

	session, err := newSession(flagCapacitySets)
	if err != nil {
		return err
	}

	result, err := planner.NewRunner(logger, limit).MaxParticipants(session.Program(), session.Rates(), ceiling)
	if err != nil {
		return fmt.Errorf("capacity search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case constants.OutputFormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		_, err = fmt.Fprint(out, output.CapacityFormat(result))
		return err
	}
}
