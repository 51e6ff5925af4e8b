// internal/core/domain/enums.go
package domain

// Strategy identifies one comparison axis of an analysis report.
type Strategy string

const (
	// StrategyDictionary runs the static dictionary wordlist.
	StrategyDictionary Strategy = "dictionary"

	// StrategyAIOnly runs the candidates produced by next-character prediction.
	StrategyAIOnly Strategy = "ai_only"

	// StrategyHybrid runs the mutated AI candidates.
	StrategyHybrid Strategy = "hybrid"

	// StrategyBruteForce is the theoretical exhaustive-search estimate.
	StrategyBruteForce Strategy = "brute_force"
)

// attackOrder is the fixed execution and tie-break order of real attacks.
var attackOrder = []Strategy{StrategyDictionary, StrategyAIOnly, StrategyHybrid}

// AttackStrategies returns the strategies that run against the cracking engine,
// in priority order.
func AttackStrategies() []Strategy {
	out := make([]Strategy, len(attackOrder))
	copy(out, attackOrder)
	return out
}

// IsValid verifica si la estrategia es conocida.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyDictionary, StrategyAIOnly, StrategyHybrid, StrategyBruteForce:
		return true
	default:
		return false
	}
}

// IsAttack reports whether the strategy invokes the cracking engine.
func (s Strategy) IsAttack() bool {
	return s.IsValid() && s != StrategyBruteForce
}

// Priority returns the position of the strategy in the attack order, or -1.
func (s Strategy) Priority() int {
	for i, st := range attackOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// String retorna la representación string de la estrategia.
func (s Strategy) String() string {
	return string(s)
}

// ParseStrategy converts a name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(name)
	if !s.IsValid() {
		return "", ErrInvalidStrategy
	}
	return s, nil
}
