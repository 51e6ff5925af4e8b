// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"crackbench/internal/core/domain"
)

// OutputTable imprime el reporte como tabla legible en w.
func OutputTable(w io.Writer, report *domain.Report) error {
	if report == nil {
		return fmt.Errorf("nil report")
	}
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== crackbench results ===\n")
	fmt.Fprintf(tw, "URL:\t%s\n", report.URL)
	fmt.Fprintf(tw, "Hash mode:\t%s\n", report.HashMode)
	fmt.Fprintf(tw, "Duration:\t%s\n", report.Duration.Round(time.Millisecond))

	keywords := make([]string, 0, len(report.Keywords))
	for _, k := range report.Keywords {
		keywords = append(keywords, string(k))
	}
	fmt.Fprintf(tw, "Keywords:\t%s\n\n", strings.Join(keywords, ", "))

	fmt.Fprintln(tw, "STRATEGY\tCRACKED\tTIME\tWORDLIST")
	fmt.Fprintln(tw, "--------\t-------\t----\t--------")
	for _, a := range report.Results.Attacks() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", a.Strategy, crackedCell(a), timeCell(a), a.WordlistSize)
	}

	bf := report.Results.BruteForce
	combinations := "-"
	if bf.Combinations != nil {
		combinations = bf.Combinations.String()
	}
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", domain.StrategyBruteForce, "-", bf.Time, combinations)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	var failed []domain.AttackResult
	for _, a := range report.Results.Attacks() {
		if a.Failed() && a.Error != "" {
			failed = append(failed, a)
		}
	}
	if len(failed) > 0 {
		fmt.Fprintf(w, "\n❌ Errors (%d):\n", len(failed))
		for i, a := range failed {
			fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, a.Strategy, a.Error)
		}
	}

	fmt.Fprintln(w)
	return nil
}

func crackedCell(a domain.AttackResult) string {
	switch {
	case a.IsCracked():
		return "yes"
	case a.Failed():
		return "error"
	default:
		return "no"
	}
}

func timeCell(a domain.AttackResult) string {
	if a.ElapsedMS == nil {
		return "-"
	}
	return fmt.Sprintf("%.2fms", *a.ElapsedMS)
}
