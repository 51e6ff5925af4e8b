// internal/core/domain/result_test.go
package domain

import (
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"

	"crackbench/internal/testutil"
)

func TestAttackResult_States(t *testing.T) {
	cracked := NewCrackedResult(StrategyHybrid, "secure123", 12.5, 42)
	testutil.AssertTrue(t, cracked.IsCracked(), "cracked")
	testutil.AssertFalse(t, cracked.Failed(), "not failed")
	testutil.AssertEqual(t, cracked.PasswordLength(), 9, "length")

	miss := NewMissResult(StrategyAIOnly, 3.25, 10)
	testutil.AssertFalse(t, miss.IsCracked(), "miss")
	testutil.AssertFalse(t, miss.Failed(), "timed miss is not a failure")
	testutil.AssertEqual(t, miss.PasswordLength(), 0, "no length")

	failed := NewFailedResult(StrategyDictionary, 100, errors.New("exit 255"))
	testutil.AssertTrue(t, failed.Failed(), "failed")
	testutil.AssertEqual(t, failed.Error, "exit 255", "error text")
	testutil.AssertEqual(t, failed.WordlistSize, 100, "size kept")
}

func TestAttackResult_EmptyPlaintextIsNotCracked(t *testing.T) {
	r := NewCrackedResult(StrategyHybrid, "", 1, 1)
	testutil.AssertFalse(t, r.IsCracked(), "empty plaintext")
}

func TestAttackResult_MarshalJSON_HidesPlaintext(t *testing.T) {
	r := NewCrackedResult(StrategyHybrid, "secure123", 12.5, 42)

	data, err := json.Marshal(r)
	testutil.AssertNoError(t, err, "marshal")

	s := string(data)
	testutil.AssertFalse(t, strings.Contains(s, "secure123"), "plaintext never serialized")
	testutil.AssertContains(t, s, `"cracked":true`, "cracked flag")
	testutil.AssertContains(t, s, `"time":12.5`, "elapsed")
	testutil.AssertContains(t, s, `"wordlist_size":42`, "size")
	testutil.AssertContains(t, s, `"password_length":9`, "length")
	testutil.AssertFalse(t, strings.Contains(s, `"error"`), "no error field")
}

func TestAttackResult_MarshalJSON_Failed(t *testing.T) {
	r := NewFailedResult(StrategyDictionary, 7, errors.New("boom"))

	data, err := json.Marshal(r)
	testutil.AssertNoError(t, err, "marshal")

	s := string(data)
	testutil.AssertContains(t, s, `"cracked":false`, "not cracked")
	testutil.AssertContains(t, s, `"time":null`, "null time")
	testutil.AssertContains(t, s, `"error":"boom"`, "error")
}

func TestAttackResult_UnmarshalJSON_MasksPlaintext(t *testing.T) {
	data, err := json.Marshal(NewCrackedResult(StrategyAIOnly, "abcd", 1.5, 3))
	testutil.AssertNoError(t, err, "marshal")

	var r AttackResult
	testutil.AssertNoError(t, json.Unmarshal(data, &r), "unmarshal")
	testutil.AssertTrue(t, r.IsCracked(), "still cracked")
	testutil.AssertEqual(t, *r.Cracked, "****", "masked placeholder")
	testutil.AssertEqual(t, r.PasswordLength(), 4, "length preserved")
	testutil.AssertEqual(t, r.Strategy, StrategyAIOnly, "strategy")
}

func TestBruteForceResult_MarshalJSON(t *testing.T) {
	combos, _ := new(big.Int).SetString("5688000922764599609375", 10)
	b := BruteForceResult{Time: "1,000+ years", Combinations: combos, PasswordLength: 11}

	data, err := json.Marshal(b)
	testutil.AssertNoError(t, err, "marshal")

	s := string(data)
	testutil.AssertContains(t, s, `"cracked":null`, "cracked always null")
	testutil.AssertContains(t, s, `"strategy":"brute_force"`, "strategy")
	testutil.AssertContains(t, s, `"wordlist_size":5688000922764599609375`, "exact combinations")
	testutil.AssertContains(t, s, `"time":"1,000+ years"`, "time string")
}

func TestResults_SetAttack(t *testing.T) {
	var r Results

	testutil.AssertNoError(t, r.SetAttack(NewMissResult(StrategyAIOnly, 1, 1)), "ai_only")
	got, ok := r.Attack(StrategyAIOnly)
	testutil.AssertTrue(t, ok, "found")
	testutil.AssertEqual(t, got.Strategy, StrategyAIOnly, "stored")

	err := r.SetAttack(AttackResult{Strategy: StrategyBruteForce})
	testutil.AssertEqual(t, err, ErrInvalidStrategy, "brute force is not an attack")

	_, ok = r.Attack(StrategyBruteForce)
	testutil.AssertFalse(t, ok, "no attack result for brute force")
}

func TestReport_CrackedCount(t *testing.T) {
	req := AnalysisRequest{URL: "https://example.com", TargetHash: "abc"}
	req.Normalize()
	r := NewReport("id-1", req)

	_ = r.Results.SetAttack(NewCrackedResult(StrategyDictionary, "pw", 1, 1))
	_ = r.Results.SetAttack(NewMissResult(StrategyAIOnly, 1, 1))
	_ = r.Results.SetAttack(NewCrackedResult(StrategyHybrid, "pw", 1, 1))
	r.Finalize()

	testutil.AssertEqual(t, r.CrackedCount(), 2, "cracked count")
	testutil.AssertEqual(t, r.HashMode, DefaultHashMode, "default hash mode")
	testutil.AssertTrue(t, !r.FinishedAt.Before(r.StartedAt), "finished after start")
}
