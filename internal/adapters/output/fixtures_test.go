package output

import (
	"errors"
	"math/big"
	"time"

	"crackbench/internal/core/domain"
)

func sampleReport() *domain.Report {
	r := domain.NewReport("7f9c2ba4-e88f-41f4-9a2b-1e3f5c8d9a10", domain.AnalysisRequest{
		URL:        "https://shop.example.com/login",
		TargetHash: "5f4dcc3b5aa765d61d8327deb882cf99",
		HashMode:   "0",
	})
	r.StartedAt = time.Date(2026, 3, 4, 10, 20, 30, 0, time.UTC)
	r.Keywords = []domain.SeedKeyword{"bakery", "bread"}
	_ = r.Results.SetAttack(domain.NewMissResult(domain.StrategyDictionary, 812.25, 14344391))
	_ = r.Results.SetAttack(domain.NewFailedResult(domain.StrategyAIOnly, 15, errors.New("exit status 255")))
	_ = r.Results.SetAttack(domain.NewCrackedResult(domain.StrategyHybrid, "Bakery123", 3.5, 300))
	r.Results.BruteForce = domain.BruteForceResult{
		Time:           "1 hour",
		Combinations:   new(big.Int).Exp(big.NewInt(95), big.NewInt(9), nil),
		PasswordLength: 9,
	}
	r.Duration = 1234 * time.Millisecond
	return r
}
