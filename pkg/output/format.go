// Package output provides utilities for formatting and displaying budget reports.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/youth-budget/internal/budget"
	"github.com/iwvelando/youth-budget/internal/planner"
	"github.com/iwvelando/youth-budget/pkg/constants"
	"github.com/iwvelando/youth-budget/pkg/format"
)

// Write renders report to w in the named output format.
func Write(w io.Writer, outputFormat string, report budget.Report) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		_, err := io.WriteString(w, PrettyFormat(report))
		return err
	case constants.OutputFormatCSV:
		out, err := CsvString(report)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case constants.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// PrettyFormat renders a human-readable cost summary followed by the
// recommendations grouped by severity.
func PrettyFormat(report budget.Report) string {
	var b strings.Builder

	b.WriteString(RenderTitle("Youth Program Budget Estimate"))
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Cost Summary"))
	b.WriteString("\n")
	writeLine(&b, "Required Coordinators:", valueStyle.Render(strconv.Itoa(report.Coordinators)))
	costs := report.Breakdown
	writeLine(&b, "Staffing Costs:", costStyle.Render(format.Currency(costs.Staffing)))
	writeLine(&b, "Food Costs:", costStyle.Render(format.Currency(costs.Food)))
	writeLine(&b, "Equipment & Supplies:", costStyle.Render(format.Currency(costs.Equipment)))
	writeLine(&b, "Transportation Costs:", costStyle.Render(format.Currency(costs.Transport)))
	writeLine(&b, "Total Program Cost:", totalStyle.Render(format.Currency(costs.Total)))

	if len(report.Recommendations) == 0 {
		return b.String()
	}

	b.WriteString("\n  ")
	b.WriteString(headerStyle.Render("Program Recommendations"))
	b.WriteString("\n")

	grouped := budget.GroupBySeverity(report.Recommendations)
	for _, severity := range budget.Severities {
		recs := grouped[severity]
		if len(recs) == 0 {
			continue
		}
		b.WriteString("  ")
		b.WriteString(severityStyles[severity].Render(strings.ToUpper(string(severity))))
		b.WriteString("\n")
		for _, rec := range recs {
			b.WriteString("    ")
			b.WriteString(valueStyle.Render(rec.Message))
			b.WriteString("\n")
			for _, detail := range rec.Details {
				b.WriteString("      ")
				b.WriteString(detailStyle.Render("- " + detail))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-24s", label)))
	b.WriteString(value)
	b.WriteString("\n")
}

// CsvString renders the report as CSV with one row per cost line and one row
// per recommendation.
func CsvString(report budget.Report) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	costs := report.Breakdown
	rows := [][]string{
		{"kind", "name", "value", "details"},
		{"staff", "coordinators", strconv.Itoa(report.Coordinators), ""},
		{"cost", "staffing", amount(costs.Staffing), ""},
		{"cost", "food", amount(costs.Food), ""},
		{"cost", "equipment", amount(costs.Equipment), ""},
		{"cost", "transport", amount(costs.Transport), ""},
		{"cost", "total", amount(costs.Total), ""},
	}
	for _, rec := range report.Recommendations {
		rows = append(rows, []string{
			"recommendation:" + string(rec.Severity),
			rec.Code,
			rec.Message,
			strings.Join(rec.Details, "; "),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CapacityFormat renders a capacity search result for the terminal.
func CapacityFormat(result planner.Result) string {
	var b strings.Builder

	b.WriteString(RenderTitle("Capacity Plan"))
	b.WriteString("\n\n")
	writeLine(&b, "Budget Ceiling:", valueStyle.Render(format.Currency(result.Ceiling)))
	writeLine(&b, "Max Participants:", totalStyle.Render(strconv.Itoa(result.Participants)))
	writeLine(&b, "Required Coordinators:", valueStyle.Render(strconv.Itoa(result.Coordinators)))
	writeLine(&b, "Total Program Cost:", costStyle.Render(format.Currency(result.Breakdown.Total)))
	writeLine(&b, "Headroom:", costStyle.Render(format.Currency(result.Headroom)))
	for _, note := range result.Notes {
		b.WriteString("  ")
		b.WriteString(detailStyle.Render(note))
		b.WriteString("\n")
	}

	return b.String()
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
