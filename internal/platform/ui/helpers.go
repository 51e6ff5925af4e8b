// internal/platform/ui/helpers.go
package ui

import (
	"fmt"
	"time"

	"crackbench/internal/core/domain"
)

// formatDuration formatea una duración de manera legible
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
}

// formatElapsed renders an attack's elapsed milliseconds, or "-" when the
// engine never ran to completion.
func formatElapsed(r domain.AttackResult) string {
	if r.ElapsedMS == nil {
		return "-"
	}
	return formatDuration(time.Duration(*r.ElapsedMS * float64(time.Millisecond)))
}

// outcome is the one-word result of an attack.
func outcome(r domain.AttackResult) string {
	return attackStatus(r).String()
}
