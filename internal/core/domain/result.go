// internal/core/domain/result.go
package domain

import (
	"encoding/json"
	"math/big"
	"time"
)

// AttackResult is the outcome of one strategy run against the cracking engine.
//
// Cracked and ElapsedMS are both set on success. A clean run that found
// nothing carries ElapsedMS only. A hard engine failure carries neither.
type AttackResult struct {
	Strategy     Strategy
	Cracked      *string
	ElapsedMS    *float64
	WordlistSize int
	Error        string
}

// NewCrackedResult builds a successful result.
func NewCrackedResult(s Strategy, password string, elapsedMS float64, size int) AttackResult {
	return AttackResult{Strategy: s, Cracked: &password, ElapsedMS: &elapsedMS, WordlistSize: size}
}

// NewMissResult builds a timed result with no match.
func NewMissResult(s Strategy, elapsedMS float64, size int) AttackResult {
	return AttackResult{Strategy: s, ElapsedMS: &elapsedMS, WordlistSize: size}
}

// NewFailedResult builds a result for a failed engine invocation.
func NewFailedResult(s Strategy, size int, err error) AttackResult {
	r := AttackResult{Strategy: s, WordlistSize: size}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// IsCracked reports whether a non-empty password was recovered.
func (r AttackResult) IsCracked() bool {
	return r.Cracked != nil && *r.Cracked != ""
}

// Failed reports whether the engine hard-failed for this attack.
func (r AttackResult) Failed() bool {
	return r.ElapsedMS == nil && r.Cracked == nil
}

// PasswordLength returns the length in characters of the recovered password, or 0.
func (r AttackResult) PasswordLength() int {
	if !r.IsCracked() {
		return 0
	}
	return len([]rune(*r.Cracked))
}

type attackResultJSON struct {
	Strategy       Strategy `json:"strategy"`
	Cracked        bool     `json:"cracked"`
	Time           *float64 `json:"time"`
	WordlistSize   int      `json:"wordlist_size"`
	PasswordLength int      `json:"password_length,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// MarshalJSON never exposes the recovered plaintext.
func (r AttackResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(attackResultJSON{
		Strategy:       r.Strategy,
		Cracked:        r.IsCracked(),
		Time:           r.ElapsedMS,
		WordlistSize:   r.WordlistSize,
		PasswordLength: r.PasswordLength(),
		Error:          r.Error,
	})
}

// UnmarshalJSON restores a result from its stored form. The plaintext is not
// recoverable, so a cracked result is restored with a placeholder of the
// original length.
func (r *AttackResult) UnmarshalJSON(data []byte) error {
	var aux attackResultJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = AttackResult{
		Strategy:     aux.Strategy,
		ElapsedMS:    aux.Time,
		WordlistSize: aux.WordlistSize,
		Error:        aux.Error,
	}
	if aux.Cracked {
		masked := maskOfLength(aux.PasswordLength)
		r.Cracked = &masked
	}
	return nil
}

func maskOfLength(n int) string {
	if n <= 0 {
		n = 1
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = '*'
	}
	return string(out)
}

// BruteForceResult is the theoretical exhaustive-search estimate.
type BruteForceResult struct {
	// Time is the human-readable duration, e.g. "19 years" or "1,000+ years".
	Time string `json:"time"`

	// Combinations is charset^length.
	Combinations *big.Int `json:"wordlist_size"`

	// PasswordLength is the length the estimate was computed for.
	PasswordLength int `json:"password_length"`
}

// MarshalJSON adds the fixed null "cracked" field expected by clients.
func (b BruteForceResult) MarshalJSON() ([]byte, error) {
	type alias BruteForceResult
	return json.Marshal(struct {
		Strategy Strategy `json:"strategy"`
		Cracked  *bool    `json:"cracked"`
		alias
	}{
		Strategy: StrategyBruteForce,
		alias:    alias(b),
	})
}

// Results groups the outcome of every strategy.
type Results struct {
	Dictionary AttackResult     `json:"dictionary"`
	AIOnly     AttackResult     `json:"ai_only"`
	Hybrid     AttackResult     `json:"hybrid"`
	BruteForce BruteForceResult `json:"brute_force"`
}

// Attack returns the result of an attack strategy.
func (r *Results) Attack(s Strategy) (AttackResult, bool) {
	switch s {
	case StrategyDictionary:
		return r.Dictionary, true
	case StrategyAIOnly:
		return r.AIOnly, true
	case StrategyHybrid:
		return r.Hybrid, true
	default:
		return AttackResult{}, false
	}
}

// SetAttack stores the result under its strategy.
func (r *Results) SetAttack(res AttackResult) error {
	switch res.Strategy {
	case StrategyDictionary:
		r.Dictionary = res
	case StrategyAIOnly:
		r.AIOnly = res
	case StrategyHybrid:
		r.Hybrid = res
	default:
		return ErrInvalidStrategy
	}
	return nil
}

// Attacks returns the attack results in priority order.
func (r *Results) Attacks() []AttackResult {
	return []AttackResult{r.Dictionary, r.AIOnly, r.Hybrid}
}

// Report is the aggregate outcome of one analysis.
type Report struct {
	ID         string        `json:"id"`
	URL        string        `json:"url"`
	TargetHash string        `json:"target_hash"`
	HashMode   string        `json:"hash_mode"`
	Keywords   []SeedKeyword `json:"keywords"`
	Results    Results       `json:"results"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Duration   time.Duration `json:"duration_ns"`
}

// NewReport creates a report for a normalized request.
func NewReport(id string, req AnalysisRequest) *Report {
	return &Report{
		ID:         id,
		URL:        req.URL,
		TargetHash: req.TargetHash,
		HashMode:   req.HashMode,
		Keywords:   []SeedKeyword{},
		StartedAt:  time.Now(),
	}
}

// Finalize marca el reporte como terminado.
func (r *Report) Finalize() {
	r.FinishedAt = time.Now()
	r.Duration = r.FinishedAt.Sub(r.StartedAt)
}

// CrackedCount returns how many attacks recovered the password.
func (r *Report) CrackedCount() int {
	n := 0
	for _, a := range r.Results.Attacks() {
		if a.IsCracked() {
			n++
		}
	}
	return n
}
