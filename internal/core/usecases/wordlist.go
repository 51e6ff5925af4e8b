// internal/core/usecases/wordlist.go
package usecases

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"crackbench/internal/core/domain"
	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/logx"
)

// WordlistSource is where an attack's candidates come from: a file already on
// disk or an in-memory set.
type WordlistSource interface {
	// Size is the wordlist_size reported for the attack.
	Size() int
	isWordlistSource()
}

// PersistentWordlist is a pre-existing file. It is never deleted.
type PersistentWordlist struct {
	Path  string
	Lines int
}

func (p PersistentWordlist) Size() int { return p.Lines }
func (PersistentWordlist) isWordlistSource() {}

// GeneratedWordlist is a candidate set that must be written to disk before the
// engine can read it.
type GeneratedWordlist struct {
	Candidates domain.CandidateSet
}

func (g GeneratedWordlist) Size() int { return g.Candidates.Len() }
func (GeneratedWordlist) isWordlistSource() {}

// FileRef points at a file handed to the cracking engine. Transient files are
// owned by the ref and removed by Release.
type FileRef struct {
	Path      string
	Transient bool
	Size      int

	once   sync.Once
	logger logx.Logger
}

// Release removes a transient file. Failures are logged, never returned, and
// calling Release more than once is a no-op.
func (r *FileRef) Release() {
	if r == nil || !r.Transient {
		return
	}
	r.once.Do(func() {
		if err := os.Remove(r.Path); err != nil && !os.IsNotExist(err) {
			r.logger.Warn("failed to remove transient file", "path", r.Path, "error", err.Error())
		}
	})
}

// Materializer turns wordlist sources and hashes into files on disk.
type Materializer struct {
	workDir string
	logger  logx.Logger
}

// NewMaterializer crea un materializer que escribe en workDir (os.TempDir si está vacío).
func NewMaterializer(workDir string, logger logx.Logger) *Materializer {
	if workDir == "" {
		workDir = os.TempDir()
	}
	if logger == nil {
		logger = logx.New()
	}
	return &Materializer{
		workDir: workDir,
		logger:  logger.With("component", "materializer"),
	}
}

// WorkDir returns the directory transient files are written to.
func (m *Materializer) WorkDir() string {
	return m.workDir
}

// Materialize resolves a source to a readable file.
func (m *Materializer) Materialize(src WordlistSource) (*FileRef, error) {
	switch s := src.(type) {
	case PersistentWordlist:
		abs, err := filepath.Abs(s.Path)
		if err != nil {
			return nil, errors.Mark(err, domain.ErrWordlistUnavailable)
		}
		if _, err := os.Stat(abs); err != nil {
			return nil, errors.Mark(err, domain.ErrWordlistUnavailable)
		}
		return &FileRef{Path: abs, Size: s.Lines, logger: m.logger}, nil

	case GeneratedWordlist:
		ref, err := m.writeTransient("wordlist", s.Candidates.Sorted())
		if err != nil {
			return nil, errors.Mark(err, domain.ErrWordlistUnavailable)
		}
		ref.Size = s.Candidates.Len()
		return ref, nil

	default:
		return nil, errors.Wrapf(domain.ErrWordlistUnavailable, "unsupported source %T", src)
	}
}

// WriteHashFile writes the target hash into a transient single-line file.
func (m *Materializer) WriteHashFile(hash string) (*FileRef, error) {
	ref, err := m.writeTransient("hash", []string{hash})
	if err != nil {
		return nil, errors.Wrap(err, "write hash file")
	}
	ref.Size = 1
	return ref, nil
}

func (m *Materializer) writeTransient(prefix string, lines []string) (*FileRef, error) {
	if err := os.MkdirAll(m.workDir, 0o700); err != nil {
		return nil, err
	}

	path := filepath.Join(m.workDir, prefix+"-"+uuid.NewString()+".txt")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	ref := &FileRef{Path: path, Transient: true, logger: m.logger}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			break
		}
		if err := w.WriteByte('\n'); err != nil {
			break
		}
	}
	err = w.Flush()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		ref.Release()
		return nil, err
	}

	m.logger.Debug("transient file written", "path", path, "lines", len(lines))
	return ref, nil
}
