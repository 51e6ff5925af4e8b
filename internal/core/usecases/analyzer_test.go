// internal/core/usecases/analyzer_test.go
package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
	"crackbench/internal/platform/logx"
	"crackbench/internal/platform/workerpool"
	"crackbench/internal/testutil"
)

type analyzerFixture struct {
	keywords  *mockKeywordSource
	predictor *mockPredictor
	cracker   *mockCracker
	notifier  *mockNotifier
	repo      *mockRepository
	workDir   string
	analyzer  *Analyzer
}

// newAnalyzerFixture wires an analyzer whose predictor always appends 'a', so
// the seed "login" yields {logina, loginaa, loginaaa}.
func newAnalyzerFixture(t *testing.T, parallel bool) *analyzerFixture {
	t.Helper()

	f := &analyzerFixture{
		keywords: newMockKeywordSource("login"),
		cracker:  newMockCracker(),
		notifier: newMockNotifier(),
		repo:     &mockRepository{},
		workDir:  t.TempDir(),
	}

	vocab := testVocabulary()
	f.predictor = newMockPredictor(vocab, func(string) rune { return 'a' })

	logger := logx.NewNop()
	dictPath := testutil.WriteLines(t, t.TempDir(), "dictionary.txt", testutil.FixtureDictionary)
	materializer := NewMaterializer(f.workDir, logger)

	f.analyzer = NewAnalyzer(AnalyzerOptions{
		Keywords:        f.keywords,
		Assembler:       NewAssembler(f.predictor, vocab, AssemblerOptions{Logger: logger}),
		Attacks:         NewAttackRunner(f.cracker, materializer, AttackRunnerOptions{Logger: logger}),
		Dictionary:      PersistentWordlist{Path: dictPath, Lines: len(testutil.FixtureDictionary)},
		Repository:      f.repo,
		Observers:       []ports.Notifier{f.notifier},
		Logger:          logger,
		ParallelAttacks: parallel,
	})
	return f
}

func request(hash string) domain.AnalysisRequest {
	return domain.AnalysisRequest{URL: "https://example.com/login", TargetHash: hash}
}

func TestAnalyzer_Run_HybridCracks(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		f := newAnalyzerFixture(t, parallel)

		report, err := f.analyzer.Run(context.Background(), request(testutil.MD5Hex("Loginaa123")))

		testutil.AssertNoError(t, err, "run")
		testutil.AssertNotNil(t, report, "report")
		testutil.AssertTrue(t, report.ID != "", "report id")

		r := report.Results
		testutil.AssertFalse(t, r.Dictionary.IsCracked(), "dictionary misses")
		testutil.AssertFalse(t, r.AIOnly.IsCracked(), "ai misses")
		testutil.AssertTrue(t, r.Hybrid.IsCracked(), "hybrid cracks")
		testutil.AssertEqual(t, *r.Hybrid.Cracked, "Loginaa123", "hybrid plaintext")

		testutil.AssertEqual(t, r.Dictionary.WordlistSize, len(testutil.FixtureDictionary), "dictionary size")
		testutil.AssertEqual(t, r.AIOnly.WordlistSize, 3, "ai size")
		testutil.AssertTrue(t, r.Hybrid.WordlistSize > r.AIOnly.WordlistSize, "hybrid larger than ai")
		testutil.AssertTrue(t, r.Hybrid.WordlistSize <= 21*r.AIOnly.WordlistSize, "hybrid bounded")

		testutil.AssertEqual(t, r.BruteForce.PasswordLength, 10, "length of hybrid plaintext")
		testutil.AssertEqual(t, r.BruteForce.Time, "19 years", "estimate for 10 chars")
		testutil.AssertEqual(t, r.BruteForce.Combinations.String(), "59873693923837890625", "95^10")

		testutil.AssertEqual(t, len(report.Keywords), 1, "keywords")
		testutil.AssertEqual(t, len(testutil.ListDir(t, f.workDir)), 0, "no transient files left")
	}
}

func TestAnalyzer_Run_DictionaryCracks(t *testing.T) {
	f := newAnalyzerFixture(t, false)

	report, err := f.analyzer.Run(context.Background(), request(testutil.MD5Hex("iloveyou")))

	testutil.AssertNoError(t, err, "run")
	testutil.AssertTrue(t, report.Results.Dictionary.IsCracked(), "dictionary cracks")
	testutil.AssertEqual(t, report.Results.BruteForce.PasswordLength, 8, "len(iloveyou)")
	testutil.AssertEqual(t, report.Results.BruteForce.Time, "0 years", "estimate")
	testutil.AssertEqual(t, report.CrackedCount(), 1, "one attack cracked")
}

func TestAnalyzer_Run_AIAndHybridCrack(t *testing.T) {
	f := newAnalyzerFixture(t, false)

	report, err := f.analyzer.Run(context.Background(), request(testutil.MD5Hex("loginaa")))

	testutil.AssertNoError(t, err, "run")
	testutil.AssertTrue(t, report.Results.AIOnly.IsCracked(), "ai cracks")
	testutil.AssertTrue(t, report.Results.Hybrid.IsCracked(), "hybrid contains the lowercase form")
	testutil.AssertEqual(t, report.Results.BruteForce.PasswordLength, 7, "len(loginaa)")
	testutil.AssertEqual(t, report.CrackedCount(), 2, "two attacks cracked")
}

func TestAnalyzer_Run_NothingCracked(t *testing.T) {
	f := newAnalyzerFixture(t, false)

	report, err := f.analyzer.Run(context.Background(), request(testutil.MD5Hex("correct horse battery staple")))

	testutil.AssertNoError(t, err, "run")
	testutil.AssertEqual(t, report.CrackedCount(), 0, "nothing cracked")
	testutil.AssertEqual(t, report.Results.BruteForce.PasswordLength, DefaultPasswordLength, "default length")
	testutil.AssertEqual(t, report.Results.BruteForce.Combinations.String(), "6634204312890625", "95^8")
	for _, a := range report.Results.Attacks() {
		testutil.AssertNotNil(t, a.ElapsedMS, "timed miss for "+a.Strategy.String())
	}
}

func TestAnalyzer_Run_AttackOrder(t *testing.T) {
	f := newAnalyzerFixture(t, false)
	dictPath := f.analyzer.dictionary.Path

	_, err := f.analyzer.Run(context.Background(), request(testutil.MD5Hex("x")))
	testutil.AssertNoError(t, err, "run")

	reqs := f.cracker.getRequests()
	testutil.AssertEqual(t, len(reqs), 3, "three engine runs")
	testutil.AssertEqual(t, reqs[0].Wordlist, dictPath, "dictionary first")
	testutil.AssertSameStrings(t, f.cracker.wordlistFor(reqs[1].Wordlist),
		[]string{"logina", "loginaa", "loginaaa"}, "ai second")
	testutil.AssertEqual(t, len(f.cracker.wordlistFor(reqs[2].Wordlist)), len(Mutate("logina").Sorted())*3, "hybrid third")
}

func TestAnalyzer_Run_InvalidInput(t *testing.T) {
	f := newAnalyzerFixture(t, false)

	cases := []domain.AnalysisRequest{
		{URL: "", TargetHash: "abc"},
		{URL: "https://example.com", TargetHash: "  "},
		{},
	}
	for _, req := range cases {
		_, err := f.analyzer.Run(context.Background(), req)
		testutil.AssertTrue(t, errors.Is(err, domain.ErrInvalidInput), "invalid input")
	}

	testutil.AssertEqual(t, f.keywords.getCallCount(), 0, "keyword source untouched")
	testutil.AssertEqual(t, f.predictor.getCalls(), 0, "predictor untouched")
	testutil.AssertEqual(t, len(f.cracker.getRequests()), 0, "engine untouched")
}

func TestAnalyzer_Run_NoKeywords(t *testing.T) {
	f := newAnalyzerFixture(t, false)
	f.keywords.keywords = nil

	report, err := f.analyzer.Run(context.Background(), request("abc"))

	testutil.AssertTrue(t, report == nil, "no report")
	testutil.AssertTrue(t, errors.Is(err, domain.ErrNoKeywords), "no keywords")
	testutil.AssertEqual(t, len(f.cracker.getRequests()), 0, "no attacks run")
	testutil.AssertEqual(t, len(f.notifier.getEventsByType(ports.EventTypeAnalysisFailed)), 1, "failure notified")
	testutil.AssertEqual(t, len(f.repo.saved), 0, "nothing persisted")
}

func TestAnalyzer_Run_KeywordSourceError(t *testing.T) {
	f := newAnalyzerFixture(t, false)
	f.keywords.err = errors.New("navigation timeout")

	_, err := f.analyzer.Run(context.Background(), request("abc"))

	testutil.AssertTrue(t, errors.Is(err, domain.ErrKeywordSourceFailed), "keyword source failure")
	testutil.AssertEqual(t, len(f.cracker.getRequests()), 0, "no attacks run")
}

func TestAnalyzer_Run_PredictorError(t *testing.T) {
	f := newAnalyzerFixture(t, false)
	f.predictor.err = errors.New("model not loaded")

	report, err := f.analyzer.Run(context.Background(), request(testutil.MD5Hex("iloveyou")))

	testutil.AssertNoError(t, err, "predictor failures never abort")
	testutil.AssertNotNil(t, report, "report returned")
	testutil.AssertEqual(t, len(f.cracker.getRequests()), 1, "only the dictionary attack runs")
	testutil.AssertTrue(t, report.Results.Dictionary.IsCracked(), "dictionary still cracks")
	testutil.AssertEqual(t, report.Results.BruteForce.PasswordLength, 8, "len(iloveyou)")

	for _, a := range []domain.AttackResult{report.Results.AIOnly, report.Results.Hybrid} {
		testutil.AssertTrue(t, a.Failed(), "failed "+a.Strategy.String())
		testutil.AssertContains(t, a.Error, "model not loaded", "error recorded for "+a.Strategy.String())
	}
	testutil.AssertEqual(t, report.Results.AIOnly.Strategy, domain.StrategyAIOnly, "ai slot")
	testutil.AssertEqual(t, report.Results.Hybrid.Strategy, domain.StrategyHybrid, "hybrid slot")

	completed := f.notifier.getEventsByType(ports.EventTypeAttackCompleted)
	testutil.AssertEqual(t, len(completed), 3, "every strategy reported")
	testutil.AssertEqual(t, len(f.repo.saved), 1, "report persisted")
}

func TestAnalyzer_Run_EngineFailureIsRecorded(t *testing.T) {
	f := newAnalyzerFixture(t, false)
	f.cracker.crackFunc = func(ctx context.Context, req ports.CrackRequest) (ports.CrackOutput, error) {
		return ports.CrackOutput{ExitCode: 255, Stderr: "boom"}, nil
	}

	report, err := f.analyzer.Run(context.Background(), request(testutil.MD5Hex("x")))

	testutil.AssertNoError(t, err, "engine failures never abort")
	for _, a := range report.Results.Attacks() {
		testutil.AssertTrue(t, a.Failed(), "failed "+a.Strategy.String())
	}
	testutil.AssertEqual(t, report.Results.BruteForce.PasswordLength, DefaultPasswordLength, "default length")
}

func TestAnalyzer_Run_TruncatesKeywords(t *testing.T) {
	f := newAnalyzerFixture(t, false)
	f.keywords = newMockKeywordSource("alpha", "bravo", "charlie", "delta", "echo", "foxtrot")
	f.analyzer.keywords = f.keywords

	report, err := f.analyzer.Run(context.Background(), request(testutil.MD5Hex("x")))

	testutil.AssertNoError(t, err, "run")
	testutil.AssertEqual(t, len(report.Keywords), DefaultMaxKeywords, "at most five seeds")
	testutil.AssertEqual(t, report.Results.AIOnly.WordlistSize, DefaultMaxKeywords*DefaultRounds, "rounds per seed")
}

func TestAnalyzer_Run_Events(t *testing.T) {
	f := newAnalyzerFixture(t, false)

	report, err := f.analyzer.Run(context.Background(), request(testutil.MD5Hex("x")))
	testutil.AssertNoError(t, err, "run")

	testutil.AssertEqual(t, len(f.notifier.getEventsByType(ports.EventTypeAnalysisStarted)), 1, "started")
	testutil.AssertEqual(t, len(f.notifier.getEventsByType(ports.EventTypeAttackStarted)), 3, "attack started")
	testutil.AssertEqual(t, len(f.notifier.getEventsByType(ports.EventTypeAttackCompleted)), 3, "attack completed")

	completed := f.notifier.getEventsByType(ports.EventTypeAnalysisCompleted)
	testutil.AssertEqual(t, len(completed), 1, "completed")
	data, ok := completed[0].Data.(ports.AnalysisCompletedEvent)
	testutil.AssertTrue(t, ok, "completed payload")
	testutil.AssertEqual(t, data.AnalysisID, report.ID, "analysis id")

	// Sequential mode: every attack.started is immediately followed by its attack.completed.
	var order []ports.EventType
	for _, e := range f.notifier.events {
		if e.Type == ports.EventTypeAttackStarted || e.Type == ports.EventTypeAttackCompleted {
			order = append(order, e.Type)
		}
	}
	for i := 0; i < len(order); i += 2 {
		testutil.AssertEqual(t, order[i], ports.EventTypeAttackStarted, "started first")
		testutil.AssertEqual(t, order[i+1], ports.EventTypeAttackCompleted, "then completed")
	}
}

func TestAnalyzer_Run_NotifierErrorIgnored(t *testing.T) {
	f := newAnalyzerFixture(t, false)
	f.notifier.notifyFunc = func(ctx context.Context, e ports.Event) error {
		return errors.New("metrics backend down")
	}

	_, err := f.analyzer.Run(context.Background(), request(testutil.MD5Hex("x")))
	testutil.AssertNoError(t, err, "observer errors do not fail the analysis")
}

func TestAnalyzer_Run_Persists(t *testing.T) {
	f := newAnalyzerFixture(t, false)

	report, err := f.analyzer.Run(context.Background(), request(testutil.MD5Hex("x")))
	testutil.AssertNoError(t, err, "run")

	stored, err := f.repo.Get(context.Background(), report.ID)
	testutil.AssertNoError(t, err, "report stored")
	testutil.AssertEqual(t, stored.ID, report.ID, "same report")

	f.repo.saveErr = errors.New("disk full")
	_, err = f.analyzer.Run(context.Background(), request(testutil.MD5Hex("x")))
	testutil.AssertNoError(t, err, "persistence failures are logged only")
}

func TestAnalyzer_Run_NormalizesRequest(t *testing.T) {
	f := newAnalyzerFixture(t, false)
	hash := testutil.MD5Hex("iloveyou")

	report, err := f.analyzer.Run(context.Background(), domain.AnalysisRequest{
		URL:        "  https://example.com  ",
		TargetHash: "  " + strings.ToUpper(hash) + " ",
	})

	testutil.AssertNoError(t, err, "run")
	testutil.AssertEqual(t, report.URL, "https://example.com", "trimmed url")
	testutil.AssertEqual(t, report.TargetHash, hash, "lowercased hash")
	testutil.AssertEqual(t, report.HashMode, domain.DefaultHashMode, "default mode")
	testutil.AssertTrue(t, report.Results.Dictionary.IsCracked(), "cracks with normalized hash")
}

func TestAnalyzer_Run_BoundedWorkersFollowScheduler(t *testing.T) {
	f := newAnalyzerFixture(t, true)
	f.analyzer.pool = workerpool.New(workerpool.Config{Workers: 1, Scheduler: workerpool.NewWeightedScheduler()})

	report, err := f.analyzer.Run(context.Background(), request(testutil.MD5Hex("Loginaa123")))
	testutil.AssertNoError(t, err, "run")

	started := f.notifier.getEventsByType(ports.EventTypeAttackStarted)
	testutil.AssertEqual(t, len(started), 3, "three attacks")
	first := started[0].Data.(ports.AttackStartedEvent)
	testutil.AssertEqual(t, first.Strategy, domain.StrategyAIOnly, "smallest wordlist starts first")

	// el orden de arranque no cambia dónde queda cada resultado
	testutil.AssertTrue(t, report.Results.Hybrid.IsCracked(), "hybrid cracks")
	testutil.AssertEqual(t, report.Results.Dictionary.Strategy, domain.StrategyDictionary, "dictionary slot")
	testutil.AssertEqual(t, report.Results.AIOnly.Strategy, domain.StrategyAIOnly, "ai slot")
}
