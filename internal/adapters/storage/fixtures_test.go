package storage

import (
	"math/big"
	"time"

	"github.com/google/uuid"

	"crackbench/internal/core/domain"
)

func sampleReport(startedAt time.Time) *domain.Report {
	r := domain.NewReport(uuid.NewString(), domain.AnalysisRequest{
		URL:        "https://example.com",
		TargetHash: "5f4dcc3b5aa765d61d8327deb882cf99",
		HashMode:   "0",
	})
	r.StartedAt = startedAt
	r.Keywords = []domain.SeedKeyword{"login", "bakery"}
	_ = r.Results.SetAttack(domain.NewMissResult(domain.StrategyDictionary, 12.5, 100))
	_ = r.Results.SetAttack(domain.NewMissResult(domain.StrategyAIOnly, 1.25, 15))
	_ = r.Results.SetAttack(domain.NewCrackedResult(domain.StrategyHybrid, "Loginaa123", 3.5, 300))
	r.Results.BruteForce = domain.BruteForceResult{
		Time:           "19 years",
		Combinations:   new(big.Int).Exp(big.NewInt(95), big.NewInt(10), nil),
		PasswordLength: 10,
	}
	r.FinishedAt = startedAt.Add(2 * time.Second)
	r.Duration = 2 * time.Second
	return r
}
