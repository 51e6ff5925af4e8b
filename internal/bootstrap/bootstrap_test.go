package bootstrap

import (
	"context"
	"testing"

	"crackbench/internal/adapters/storage"
	"crackbench/internal/core/domain"
	"crackbench/internal/platform/config"
	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/logx"
	"crackbench/internal/platform/resilience"
	"crackbench/internal/testutil"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Dictionary.Path = testutil.WriteLines(t, dir, "dict.txt", []string{"password", "123456", "iloveyou"})
	cfg.Core.WorkDir = dir + "/work"
	cfg.Keywords.Mode = "static"
	cfg.Hashcat.Path = dir + "/missing-hashcat"
	return cfg
}

func TestBuild(t *testing.T) {
	cfg := testConfig(t)

	c, err := Build(context.Background(), cfg, logx.NewSilent())
	testutil.AssertNoError(t, err, "build")
	defer c.Close()

	testutil.AssertNotNil(t, c.Analyzer, "analyzer")
	testutil.AssertEqual(t, c.Dictionary.Lines, 3, "dictionary lines")
	testutil.AssertEqual(t, c.Keywords.Name(), "static", "keyword backend")
	_, inMemory := c.Repository.(*storage.Memory)
	testutil.AssertTrue(t, inMemory, "memory store without database url")

	_, wrapped := c.Keywords.(*resilience.RetryableKeywordSource)
	testutil.AssertFalse(t, wrapped, "no resilience by default")
}

func TestBuild_Resilience(t *testing.T) {
	cfg := testConfig(t)
	cfg.Resilience.MaxRetries = 2

	c, err := Build(context.Background(), cfg, logx.NewSilent())
	testutil.AssertNoError(t, err, "build")
	defer c.Close()

	_, wrapped := c.Keywords.(*resilience.RetryableKeywordSource)
	testutil.AssertTrue(t, wrapped, "keyword source wrapped")
}

func TestBuild_MissingDictionary(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dictionary.Path = t.TempDir() + "/nope.txt"

	_, err := Build(context.Background(), cfg, logx.NewSilent())
	testutil.AssertError(t, err, "missing dictionary")
	testutil.AssertTrue(t, errors.Is(err, domain.ErrWordlistUnavailable), "wordlist unavailable")
}

func TestBuild_PredictorEndpointRequired(t *testing.T) {
	cfg := testConfig(t)
	cfg.Predictor.Endpoint = ""

	_, err := Build(context.Background(), cfg, logx.NewSilent())
	testutil.AssertError(t, err, "missing predictor endpoint")
}

func TestBuild_UnknownScheduler(t *testing.T) {
	cfg := testConfig(t)
	cfg.Core.AttackScheduler = "lottery"

	_, err := Build(context.Background(), cfg, logx.NewSilent())
	testutil.AssertError(t, err, "unknown scheduler")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidInput), "invalid input")
}

func TestChecks(t *testing.T) {
	cfg := testConfig(t)
	c, err := Build(context.Background(), cfg, logx.NewSilent())
	testutil.AssertNoError(t, err, "build")
	defer c.Close()

	checks := c.Checks()
	testutil.AssertNoError(t, checks["dictionary"](context.Background()), "dictionary present")
	testutil.AssertError(t, checks["hashcat"](context.Background()), "hashcat missing")
}
