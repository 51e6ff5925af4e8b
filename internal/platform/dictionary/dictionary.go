// Package dictionary loads the reference password list used by the
// dictionary attack and to fit the character vocabulary.
package dictionary

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"crackbench/internal/core/domain"
	"crackbench/internal/platform/errors"
)

// DefaultVocabularyLines is how many leading lines feed the vocabulary.
const DefaultVocabularyLines = 50000

// Dictionary is the loaded metadata of a wordlist file.
type Dictionary struct {
	Path   string   // absolute path
	Lines  int      // total number of lines
	Sample []string // first lines, decoded
}

// Load reads path as ISO-8859-1 text, counting every line and keeping the
// first sampleLines (<= 0 keeps DefaultVocabularyLines).
func Load(path string, sampleLines int) (*Dictionary, error) {
	if sampleLines <= 0 {
		sampleLines = DefaultVocabularyLines
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid dictionary path %q", path)
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "open dictionary"), domain.ErrWordlistUnavailable)
	}
	defer f.Close()

	d := &Dictionary{Path: abs}
	if err := d.read(f, sampleLines); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read dictionary %s", abs), domain.ErrWordlistUnavailable)
	}
	return d, nil
}

// read counts lines of any length; only the sampled ones are kept.
func (d *Dictionary) read(r io.Reader, sampleLines int) error {
	br := bufio.NewReaderSize(charmap.ISO8859_1.NewDecoder().Reader(r), 64*1024)

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if d.Lines < sampleLines {
				d.Sample = append(d.Sample, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
			}
			d.Lines++
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Vocabulary fits the character vocabulary on the sample.
func (d *Dictionary) Vocabulary() *domain.Vocabulary {
	return domain.NewVocabulary(d.Sample)
}
