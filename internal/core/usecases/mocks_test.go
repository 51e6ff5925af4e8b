// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"os"
	"strings"
	"sync"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
)

// mockPredictor decodes the window back to text and answers with a one-hot
// distribution on the character chosen by nextFunc.
type mockPredictor struct {
	mu       sync.Mutex
	vocab    *domain.Vocabulary
	nextFunc func(text string) rune
	err      error
	calls    int
	windows  [][]int
}

func newMockPredictor(vocab *domain.Vocabulary, next func(text string) rune) *mockPredictor {
	return &mockPredictor{vocab: vocab, nextFunc: next}
}

func (m *mockPredictor) Predict(ctx context.Context, window []int) ([]float32, error) {
	m.mu.Lock()
	m.calls++
	m.windows = append(m.windows, append([]int(nil), window...))
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	var text strings.Builder
	for _, idx := range window {
		if ch, ok := m.vocab.Char(idx); ok {
			text.WriteString(ch)
		}
	}

	probs := make([]float32, m.vocab.Size()+1)
	if m.nextFunc == nil {
		return probs, nil
	}
	if enc := m.vocab.Encode(string(m.nextFunc(text.String()))); len(enc) == 1 {
		probs[enc[0]] = 1
	}
	return probs, nil
}

func (m *mockPredictor) getCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockKeywordSource es un mock de ports.KeywordSource
type mockKeywordSource struct {
	mu        sync.Mutex
	keywords  []domain.SeedKeyword
	err       error
	callCount int
}

func newMockKeywordSource(words ...string) *mockKeywordSource {
	kw := make([]domain.SeedKeyword, 0, len(words))
	for _, w := range words {
		kw = append(kw, domain.SeedKeyword(w))
	}
	return &mockKeywordSource{keywords: kw}
}

func (m *mockKeywordSource) Name() string { return "mock" }

func (m *mockKeywordSource) Keywords(ctx context.Context, url string) ([]domain.SeedKeyword, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.keywords, nil
}

func (m *mockKeywordSource) Close() error { return nil }

func (m *mockKeywordSource) getCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// mockCracker behaves like a straight-mode MD5 engine in --show mode: it reads
// both files and prints "hash:plaintext" when a wordlist line matches.
type mockCracker struct {
	mu        sync.Mutex
	crackFunc func(ctx context.Context, req ports.CrackRequest) (ports.CrackOutput, error)
	requests  []ports.CrackRequest
	wordlists map[string][]string // by file path, captured during the run
}

func newMockCracker() *mockCracker {
	return &mockCracker{wordlists: make(map[string][]string)}
}

func (m *mockCracker) Name() string { return "mock-hashcat" }

func (m *mockCracker) Crack(ctx context.Context, req ports.CrackRequest) (ports.CrackOutput, error) {
	lines, readErr := readLines(req.Wordlist)

	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.wordlists[req.Wordlist] = lines
	m.mu.Unlock()

	if m.crackFunc != nil {
		return m.crackFunc(ctx, req)
	}
	if readErr != nil {
		return ports.CrackOutput{ExitCode: 255, Stderr: readErr.Error()}, nil
	}

	hashes, err := readLines(req.HashFile)
	if err != nil || len(hashes) == 0 {
		return ports.CrackOutput{ExitCode: 255, Stderr: "no hashes loaded"}, nil
	}
	target := hashes[0]

	for _, candidate := range lines {
		sum := md5.Sum([]byte(candidate))
		if hex.EncodeToString(sum[:]) == target {
			return ports.CrackOutput{Stdout: target + ":" + candidate + "\n"}, nil
		}
	}
	return ports.CrackOutput{}, nil
}

func (m *mockCracker) getRequests() []ports.CrackRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.CrackRequest(nil), m.requests...)
}

func (m *mockCracker) wordlistFor(path string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wordlists[path]
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(text, "\n"), nil
}

// mockNotifier es un mock de ports.Notifier para tests
type mockNotifier struct {
	mu         sync.Mutex
	notifyFunc func(ctx context.Context, event ports.Event) error
	events     []ports.Event
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{events: []ports.Event{}}
}

func (m *mockNotifier) Notify(ctx context.Context, event ports.Event) error {
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()

	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, event)
	}
	return nil
}

// getEventsByType returns events filtered by type
func (m *mockNotifier) getEventsByType(eventType ports.EventType) []ports.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	var filtered []ports.Event
	for _, e := range m.events {
		if e.Type == eventType {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// mockRepository guarda reportes en memoria
type mockRepository struct {
	mu      sync.Mutex
	saved   []*domain.Report
	saveErr error
}

func (m *mockRepository) Save(ctx context.Context, r *domain.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, r)
	return nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (*domain.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.saved {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrReportNotFound
}

func (m *mockRepository) List(ctx context.Context, limit int) ([]*domain.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Report(nil), m.saved...), nil
}

func (m *mockRepository) Ping(ctx context.Context) error { return nil }

func (m *mockRepository) Close() error { return nil }
