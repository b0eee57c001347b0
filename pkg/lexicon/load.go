package lexicon

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/edsrzf/mmap-go"
)

// LoadOption adjusts the merged source before it is built.
type LoadOption func(*Source)

// WithMinRootLength overrides the bundle's shortest strippable root.
func WithMinRootLength(n int) LoadOption {
	return func(s *Source) {
		if n > 0 {
			s.MinRootLength = n
		}
	}
}

// Load builds the embedded bundle merged with every lexicon file found in dir.
// An empty dir loads the embedded bundle only.
func Load(dir string, opts ...LoadOption) (*Lexicon, error) {
	src, err := BuiltinSource()
	if err != nil {
		return nil, err
	}
	if dir != "" {
		extra, err := ReadDir(dir)
		if err != nil {
			return nil, err
		}
		src.Merge(extra)
	}
	for _, opt := range opts {
		opt(&src)
	}
	lex, err := Build(src)
	if err != nil {
		return nil, err
	}
	log.Debugf("Lexicon ready: %d words", lex.Words().Len())
	return lex, nil
}

// ReadDir merges the bundles and word lists of dir, in file name order per format.
func ReadDir(dir string) (Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Source{}, fmt.Errorf("lexicon: %w", err)
	}
	if !info.IsDir() {
		return Source{}, fmt.Errorf("lexicon: %s is not a directory", dir)
	}

	var src Source
	for _, path := range utils.ListLexiconFiles(dir) {
		part, err := ReadFile(path)
		if err != nil {
			return Source{}, err
		}
		src.Merge(part)
	}
	return src, nil
}

// ReadFile reads one bundle or word list.
func ReadFile(path string) (Source, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return Source{}, err
	}
	if err := ValidateFileFormat(path, format); err != nil {
		return Source{}, fmt.Errorf("lexicon: %w", err)
	}

	var src Source
	err = mapFile(path, func(data []byte) error {
		switch format {
		case FormatBundle:
			parsed, err := ParseSource(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			src = parsed
		case FormatWordList:
			words, err := parseWordList(data)
			if err != nil {
				return fmt.Errorf("lexicon: read %s: %w", path, err)
			}
			src.Words = words
		}
		return nil
	})
	if err != nil {
		return Source{}, err
	}
	if info, ok := GetFormatInfo(format); ok {
		log.Debugf("Read %s (%s): %d words", path, info.Description, len(src.Words))
	}
	return src, nil
}

// mapFile memory-maps path read-only for the duration of fn.
// Empty files are skipped since they cannot be mapped.
func mapFile(path string, fn func([]byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("lexicon: stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		log.Debugf("Skipping empty lexicon file %s", path)
		return nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("lexicon: mmap %s: %w", path, err)
	}
	defer m.Unmap()
	return fn(m)
}

// parseWordList copies every non-empty, non-comment line out of the mapping.
func parseWordList(data []byte) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
