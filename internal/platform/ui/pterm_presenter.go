// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"crackbench/internal/core/domain"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm
// para renderizar spinners, colores y símbolos en la terminal.
type PTermPresenter struct {
	mu sync.Mutex

	info      AnalysisInfo
	startTime time.Time

	// ataques en curso y spinner compartido
	running map[domain.Strategy]time.Time
	spinner *pterm.SpinnerPrinter
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{
		running: make(map[domain.Strategy]time.Time),
	}
}

// Start muestra el header del análisis
func (p *PTermPresenter) Start(info AnalysisInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info = info
	p.startTime = time.Now()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("crackbench - Password Attack Benchmark")

	pterm.Println()

	panel := pterm.DefaultBox.
		WithTitle("Target").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgYellow))

	body := fmt.Sprintf("%s URL: %s\n", IconTarget, StyleAccent.Sprint(info.URL))
	body += fmt.Sprintf("%s Hash mode: %s\n", IconHash, info.HashMode)
	body += fmt.Sprintf("   Analysis: %s", StyleSecondary.Sprint(info.ID))
	panel.Println(body)

	pterm.Println()
}

// StartAttack registra el ataque y actualiza el spinner
func (p *PTermPresenter) StartAttack(strategy domain.Strategy, wordlistSize int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.running[strategy] = time.Now()

	line := fmt.Sprintf("%s %s  %s %d candidates",
		StatusRunning.Style().Sprint(StatusRunning.Symbol()),
		strategyLabel(strategy),
		IconWordlist,
		wordlistSize,
	)
	if p.spinner == nil {
		p.spinner, _ = pterm.DefaultSpinner.
			WithStyle(pterm.NewStyle(pterm.FgYellow)).
			WithSequence("⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷").
			WithRemoveWhenDone(true).
			Start(line)
		return
	}
	p.spinner.UpdateText(line)
}

// FinishAttack imprime la línea final del ataque
func (p *PTermPresenter) FinishAttack(result domain.AttackResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.running, result.Strategy)
	if len(p.running) == 0 && p.spinner != nil {
		_ = p.spinner.Stop()
		p.spinner = nil
	}

	status := attackStatus(result)
	line := fmt.Sprintf("%s %-24s %s %-10s %s %s",
		status.Style().Sprint(status.Symbol()),
		strategyLabel(result.Strategy),
		IconTime,
		formatElapsed(result),
		IconWordlist,
		pterm.Sprintf("%d", result.WordlistSize),
	)
	if result.Failed() && result.Error != "" {
		line += "  " + StyleError.Sprint(result.Error)
	}
	pterm.Println(line)

	if p.spinner != nil {
		for s := range p.running {
			p.spinner.UpdateText(fmt.Sprintf("%s running...", strategyLabel(s)))
			break
		}
	}
}

func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pterm.Info.Println(msg)
}

func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pterm.Warning.Println(msg)
}

func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pterm.Error.Println(msg)
}

// Finish muestra la tabla resumen
func (p *PTermPresenter) Finish(report *domain.Report) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopSpinner()
	if report == nil {
		return
	}

	pterm.Println()
	pterm.Println(StylePrimary.Sprint(SeparatorHeavy))
	pterm.DefaultSection.Println("Results")

	keywords := make([]string, 0, len(report.Keywords))
	for _, k := range report.Keywords {
		keywords = append(keywords, string(k))
	}
	pterm.Printf("Keywords: %s\n\n", StyleAccent.Sprint(keywords))

	data := pterm.TableData{{"Strategy", "Result", "Time", "Wordlist"}}
	for _, a := range report.Results.Attacks() {
		status := attackStatus(a)
		data = append(data, []string{
			strategyLabel(a.Strategy),
			status.Style().Sprint(status.Symbol() + " " + outcome(a)),
			formatElapsed(a),
			fmt.Sprintf("%d", a.WordlistSize),
		})
	}
	bf := report.Results.BruteForce
	combinations := "-"
	if bf.Combinations != nil {
		combinations = bf.Combinations.String()
	}
	data = append(data, []string{
		strategyLabel(domain.StrategyBruteForce),
		StatusEstimate.Style().Sprint(StatusEstimate.String()),
		bf.Time,
		combinations,
	})

	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	pterm.Println()
	summary := fmt.Sprintf("%d/%d attacks cracked the hash in %s",
		report.CrackedCount(), len(report.Results.Attacks()), formatDuration(report.Duration))
	if report.CrackedCount() > 0 {
		pterm.Success.Println(summary)
	} else {
		pterm.Warning.Println(summary)
	}
}

// Close detiene cualquier spinner activo
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopSpinner()
	return nil
}

func (p *PTermPresenter) stopSpinner() {
	if p.spinner != nil {
		_ = p.spinner.Stop()
		p.spinner = nil
	}
	clear(p.running)
}
