package facts

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

//go:embed data/nj.tsv
var builtinTSV []byte

// BuiltinName is the name of the embedded New Jersey fact set.
const BuiltinName = "builtin:nj"

// Builtin returns the embedded New Jersey municipality/county facts.
func Builtin() (*Set, error) {
	facts, err := ParseTSV(bytes.NewReader(builtinTSV))
	if err != nil {
		return nil, fmt.Errorf("failed to parse builtin facts: %w", err)
	}
	return New(BuiltinName, facts, nil)
}

// LoadFile reads tab-separated subject/category lines from path.
func LoadFile(path string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only fact file.
			_ = cerr
		}
	}()

	facts, err := ParseTSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(path, facts, nil)
}

// ParseTSV parses "subject<TAB>category" lines. Blank lines and lines
// starting with '#' are skipped.
func ParseTSV(r io.Reader) ([]Fact, error) {
	var facts []Fact
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrInvalidUTF8)
		}
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		subject, category, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected subject<TAB>category", lineNo)
		}
		subject = strings.TrimSpace(subject)
		category = strings.TrimSpace(category)
		if subject == "" || category == "" {
			return nil, fmt.Errorf("line %d: empty subject or category", lineNo)
		}
		facts = append(facts, Fact{Subject: subject, Category: category})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return facts, nil
}

// WriteFile writes src as a TSV file, replacing path atomically.
func WriteFile(path string, src Source) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create fact file dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "facts-*.tsv")
	if err != nil {
		return fmt.Errorf("failed to create temp fact file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for i := 0; i < src.Len(); i++ {
		f := src.At(i)
		if _, err := fmt.Fprintf(writer, "%s\t%s\n", f.Subject, f.Category); err != nil {
			return fmt.Errorf("failed to write fact file: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush fact file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close fact file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write fact file: %w", err)
	}
	return nil
}
