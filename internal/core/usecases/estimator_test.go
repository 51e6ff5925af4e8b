// internal/core/usecases/estimator_test.go
package usecases

import (
	"testing"

	"crackbench/internal/core/domain"
	"crackbench/internal/testutil"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		length       int
		time         string
		combinations string
	}{
		{0, "0 years", "1"},
		{1, "0 years", "95"},
		{8, "0 years", "6634204312890625"},
		{9, "0 years", "630249409724609375"},
		{10, "19 years", "59873693923837890625"},
		{11, CappedEstimate, "5688000922764599609375"},
		{12, CappedEstimate, "540360087662636962890625"},
	}

	for _, tt := range tests {
		got := Estimate(tt.length)
		testutil.AssertEqual(t, got.Time, tt.time, "time string")
		testutil.AssertEqual(t, got.Combinations.String(), tt.combinations, "combinations")
	}
}

func TestEstimate_NegativeClampsToZero(t *testing.T) {
	got := Estimate(-3)
	testutil.AssertEqual(t, got.Combinations.String(), "1", "95^0")
	testutil.AssertEqual(t, got.Time, "0 years", "time")
}

func TestEstimate_Monotonic(t *testing.T) {
	prev := Estimate(0)
	for l := 1; l <= 20; l++ {
		cur := Estimate(l)
		testutil.AssertTrue(t, cur.Combinations.Cmp(prev.Combinations) > 0, "combinations grow")
		testutil.AssertTrue(t, cur.Seconds.Cmp(prev.Seconds) > 0, "seconds grow")
		prev = cur
	}
}

func TestEstimator_CustomKeyspace(t *testing.T) {
	e := NewEstimator(EstimatorOptions{CharsetSize: 2, GuessesPerSecond: 1})

	testutil.AssertEqual(t, e.Estimate(34).Time, "545 years", "2^34 seconds")
	testutil.AssertEqual(t, e.Estimate(35).Time, CappedEstimate, "2^35 seconds exceed the cap")
	testutil.AssertEqual(t, e.Estimate(10).Combinations.String(), "1024", "2^10")
}

func TestEstimator_DefaultsOnInvalidOptions(t *testing.T) {
	e := NewEstimator(EstimatorOptions{CharsetSize: -1, GuessesPerSecond: 0})
	testutil.AssertEqual(t, e.Estimate(10).Time, "19 years", "falls back to defaults")
}

func TestBruteForceEstimate_Result(t *testing.T) {
	res := Estimate(10).Result(10)
	testutil.AssertEqual(t, res.Time, "19 years", "time")
	testutil.AssertEqual(t, res.PasswordLength, 10, "length")
	testutil.AssertEqual(t, res.Combinations.String(), "59873693923837890625", "wordlist size")
}

func TestCrackedLength(t *testing.T) {
	hit := func(s domain.Strategy, pw string) domain.AttackResult {
		return domain.NewCrackedResult(s, pw, 1, 10)
	}
	miss := func(s domain.Strategy) domain.AttackResult {
		return domain.NewMissResult(s, 1, 10)
	}
	failed := func(s domain.Strategy) domain.AttackResult {
		return domain.NewFailedResult(s, 10, nil)
	}

	tests := []struct {
		name    string
		results []domain.AttackResult
		want    int
	}{
		{"none cracked", []domain.AttackResult{miss(domain.StrategyDictionary), miss(domain.StrategyAIOnly), miss(domain.StrategyHybrid)}, DefaultPasswordLength},
		{"no results", nil, DefaultPasswordLength},
		{"dictionary only", []domain.AttackResult{hit(domain.StrategyDictionary, "abc"), miss(domain.StrategyAIOnly), failed(domain.StrategyHybrid)}, 3},
		{"hybrid wins over dictionary", []domain.AttackResult{hit(domain.StrategyDictionary, "abc"), miss(domain.StrategyAIOnly), hit(domain.StrategyHybrid, "abcdefghij")}, 10},
		{"ai wins over dictionary", []domain.AttackResult{hit(domain.StrategyDictionary, "abc"), hit(domain.StrategyAIOnly, "abcde"), miss(domain.StrategyHybrid)}, 5},
		{"failures ignored", []domain.AttackResult{failed(domain.StrategyDictionary), failed(domain.StrategyAIOnly), failed(domain.StrategyHybrid)}, DefaultPasswordLength},
		{"length in characters", []domain.AttackResult{hit(domain.StrategyHybrid, "contraseña")}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, CrackedLength(tt.results...), tt.want, "password length")
		})
	}
}
