package lexicon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileFormat represents the lexicon file kinds the loader understands.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatBundle             // YAML bundle in the Source shape
	FormatWordList           // one word per line, '#' starts a comment
)

// FormatInfo contains metadata about a lexicon file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatBundle: {
		Format:      FormatBundle,
		Description: "YAML lexicon bundle",
		Extensions:  []string{".yaml", ".yml"},
	},
	FormatWordList: {
		Format:      FormatWordList,
		Description: "Plain text word list",
		Extensions:  []string{".txt"},
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "unknown"
}

// DetectFileFormat picks the format from the file extension.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
}

// ValidateFileFormat checks that filename exists, is a regular file and
// carries an extension of the expected format.
func ValidateFileFormat(filename string, expected FileFormat) error {
	info, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", filename)
	}
	got, err := DetectFileFormat(filename)
	if err != nil {
		return err
	}
	if got != expected {
		want, _ := GetFormatInfo(expected)
		return fmt.Errorf("file %s is %s, expected %s (%s)", filename, got, expected, strings.Join(want.Extensions, ", "))
	}
	return nil
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
