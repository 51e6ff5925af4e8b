package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
	"crackbench/internal/platform/logx"
	"crackbench/internal/testutil"
)

func TestStreamingWriter_WritePartial(t *testing.T) {
	tmpDir := t.TempDir()
	writer := NewStreamingWriter(tmpDir, logx.NewSilent())

	path, err := writer.WritePartial("scan-1", domain.NewMissResult(domain.StrategyDictionary, 10, 5))
	testutil.AssertNoError(t, err, "WritePartial should succeed")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err, "partial file should exist")

	var partial PartialAttackResult
	testutil.AssertNoError(t, json.Unmarshal(data, &partial), "decode partial")
	testutil.AssertEqual(t, partial.AnalysisID, "scan-1", "analysis id")
	testutil.AssertEqual(t, partial.Result.Strategy, domain.StrategyDictionary, "strategy")
	testutil.AssertEqual(t, partial.Result.WordlistSize, 5, "wordlist size")
}

func TestStreamingWriter_NotifyAndCleanup(t *testing.T) {
	tmpDir := t.TempDir()
	writer := NewStreamingWriter(tmpDir, logx.NewSilent())
	ctx := context.Background()

	for _, s := range domain.AttackStrategies() {
		ev := ports.NewEvent(ports.EventTypeAttackCompleted, string(s), ports.AttackCompletedEvent{
			AnalysisID: "scan-2",
			Result:     domain.NewMissResult(s, 1, 1),
		})
		testutil.AssertNoError(t, writer.Notify(ctx, ev), "notify")
	}
	// other events are ignored
	testutil.AssertNoError(t, writer.Notify(ctx, ports.NewEvent(ports.EventTypeAnalysisStarted, "analyzer", ports.AnalysisStartedEvent{AnalysisID: "scan-2"})), "ignored")

	matches, _ := filepath.Glob(filepath.Join(tmpDir, writer.GetPattern("scan-2")))
	testutil.AssertEqual(t, len(matches), 3, "one partial per attack")

	testutil.AssertNoError(t, writer.Cleanup("scan-2"), "cleanup")
	matches, _ = filepath.Glob(filepath.Join(tmpDir, writer.GetPattern("scan-2")))
	testutil.AssertEqual(t, len(matches), 0, "partials removed")
}

func TestStreamingWriter_GeneratePartialFilename(t *testing.T) {
	writer := NewStreamingWriter(t.TempDir(), logx.NewSilent())
	writer.timestamp = "20260101_000000"

	got := writer.GeneratePartialFilename("a.b", domain.StrategyHybrid)
	testutil.AssertEqual(t, got, "crackbench_a_b_20260101_000000_partial_hybrid.json", "filename")
}
