// internal/core/usecases/attack.go
package usecases

import (
	"context"
	"math"
	"strings"
	"time"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/logx"
)

// AttackRunner runs one strategy's wordlist against the target hash.
type AttackRunner struct {
	cracker      ports.Cracker
	materializer *Materializer
	hashMode     string
	logger       logx.Logger
}

// AttackRunnerOptions configura el runner.
type AttackRunnerOptions struct {
	// HashMode is used when a call does not name one. Defaults to MD5.
	HashMode string
	Logger   logx.Logger
}

// NewAttackRunner crea un runner sobre el motor de cracking.
func NewAttackRunner(cracker ports.Cracker, materializer *Materializer, opts AttackRunnerOptions) *AttackRunner {
	if opts.HashMode == "" {
		opts.HashMode = domain.DefaultHashMode
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &AttackRunner{
		cracker:      cracker,
		materializer: materializer,
		hashMode:     opts.HashMode,
		logger:       opts.Logger.With("component", "attack"),
	}
}

// RunAttack materializes the source, runs the engine once and parses its
// output. Engine failures are recorded in the result and never returned; the
// transient hash file and wordlist are removed on every path.
func (r *AttackRunner) RunAttack(ctx context.Context, strategy domain.Strategy, source WordlistSource, targetHash string, hashMode string) domain.AttackResult {
	size := source.Size()
	if hashMode == "" {
		hashMode = r.hashMode
	}
	log := r.logger.With("strategy", strategy.String())

	hashRef, err := r.materializer.WriteHashFile(targetHash)
	if err != nil {
		log.Warn("hash file unavailable", "error", err.Error())
		return domain.NewFailedResult(strategy, size, err)
	}
	defer hashRef.Release()

	wordlist, err := r.materializer.Materialize(source)
	if err != nil {
		log.Warn("wordlist unavailable", "error", err.Error())
		return domain.NewFailedResult(strategy, size, err)
	}
	defer wordlist.Release()

	log.Debug("running cracking engine",
		"engine", r.cracker.Name(),
		"wordlist", wordlist.Path,
		"wordlist_size", size,
		"hash_mode", hashMode,
	)

	start := time.Now()
	out, err := r.cracker.Crack(ctx, ports.CrackRequest{
		HashMode:   hashMode,
		AttackMode: ports.AttackModeStraight,
		HashFile:   hashRef.Path,
		Wordlist:   wordlist.Path,
		Show:       true,
	})
	elapsed := elapsedMillis(time.Since(start))

	if err != nil {
		log.Warn("cracking engine failed", "error", err.Error())
		return domain.NewFailedResult(strategy, size, errors.Mark(err, domain.ErrOracleFailed))
	}
	if out.ExitCode != 0 {
		log.Warn("cracking engine exited with error",
			"exit_code", out.ExitCode,
			"stderr", strings.TrimSpace(out.Stderr),
		)
		return domain.NewFailedResult(strategy, size,
			errors.Wrapf(domain.ErrOracleFailed, "exit code %d", out.ExitCode))
	}

	if password, ok := ParseCracked(out.Stdout, targetHash); ok {
		log.Info("password recovered", "elapsed_ms", elapsed, "length", len([]rune(password)))
		return domain.NewCrackedResult(strategy, password, elapsed, size)
	}

	log.Debug("password not found", "elapsed_ms", elapsed)
	return domain.NewMissResult(strategy, elapsed, size)
}

// ParseCracked extracts the plaintext from the engine's show output, one
// "hash:plaintext" pair per line. A line for targetHash wins, otherwise the
// last line holding a ':' is used. The plaintext is the text after the last
// ':' of that line; an empty plaintext counts as not cracked.
func ParseCracked(stdout, targetHash string) (string, bool) {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")

	prefix := strings.ToLower(strings.TrimSpace(targetHash)) + ":"
	fallback := ""
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimRight(lines[i], "\r")
		if !strings.Contains(line, ":") {
			continue
		}
		if prefix != ":" && len(line) >= len(prefix) && strings.EqualFold(line[:len(prefix)], prefix) {
			fallback = line
			break
		}
		if fallback == "" {
			fallback = line
		}
	}
	if fallback == "" {
		return "", false
	}

	password := fallback[strings.LastIndex(fallback, ":")+1:]
	return password, password != ""
}

// elapsedMillis convierte a milisegundos con dos decimales.
func elapsedMillis(d time.Duration) float64 {
	ms := float64(d) / float64(time.Millisecond)
	return math.Round(ms*100) / 100
}
