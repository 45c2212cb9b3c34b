package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Defaults for the file boundary.
const (
	DefaultExtension    = ".txt"
	DefaultResultSuffix = "_result.txt"
)

// ErrBadPath is returned for a blank path or a wrong extension.
var ErrBadPath = errors.New("invalid scenario path")

// CheckInputPath rejects blank paths and paths whose extension is not ext
// (compared case-insensitively).
func CheckInputPath(path, ext string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: the path is empty, please try again", ErrBadPath)
	}
	if !strings.EqualFold(filepath.Ext(path), ext) {
		return fmt.Errorf("%w: the file extension must be %q, please try again", ErrBadPath, ext)
	}
	return nil
}

// ReadLines reads a scenario file. "\n", "\r\n" and "\r" all end a line and
// a final line terminator does not produce an extra empty line.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: cannot read %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines breaks scenario text into lines the same way ReadLines does.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// WriteLines replaces path with lines, each followed by a newline.
func WriteLines(path string, lines []string) error {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("scenario: cannot write %s: %w", path, err)
	}
	return nil
}

// ResultPath returns the output path for input: same directory, same base
// name without its extension, followed by suffix.
func ResultPath(input, suffix string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(input), base+suffix)
}
