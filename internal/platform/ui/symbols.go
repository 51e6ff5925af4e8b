// internal/platform/ui/symbols.go
package ui

import "github.com/pterm/pterm"

// Status is the display state of one strategy row.
type Status int

const (
	StatusRunning  Status = iota // attack in progress
	StatusCracked                // password recovered
	StatusMissed                 // clean run, no match
	StatusFailed                 // engine or predictor failure
	StatusEstimate               // brute-force row, never run
)

type statusLook struct {
	name   string
	symbol string
	color  pterm.Color
}

var statusLooks = map[Status]statusLook{
	StatusRunning:  {"running", "⣾", pterm.FgCyan},
	StatusCracked:  {"cracked", "✓", pterm.FgGreen},
	StatusMissed:   {"not found", "⊘", pterm.FgGray},
	StatusFailed:   {"failed", "✗", pterm.FgRed},
	StatusEstimate: {"estimate", "≈", pterm.FgYellow},
}

func (s Status) look() statusLook {
	if l, ok := statusLooks[s]; ok {
		return l
	}
	return statusLook{"unknown", "?", pterm.FgDefault}
}

func (s Status) String() string { return s.look().name }

func (s Status) Symbol() string { return s.look().symbol }

// Style retorna un pterm.Style con el color del estado.
func (s Status) Style() *pterm.Style {
	return pterm.NewStyle(s.look().color)
}

// Icons
var (
	IconTarget   = "🎯"
	IconHash     = "🔑"
	IconTime     = "⏱"
	IconWordlist = "📜"
)

// SeparatorHeavy underlines the header.
var SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
