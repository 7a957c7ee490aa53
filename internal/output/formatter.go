package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/intermittent/are-simulator/internal/domain"
)

// ErrUnsupportedFormat is returned for unknown export format names
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable history export that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(entries []domain.HistoryEntry) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when writing the export.
	Extension() string
}

// WriteFormatted runs a formatter and writes its output. An empty path
// writes a timestamped file in dir.
func WriteFormatted(f Formatter, entries []domain.HistoryEntry, path, dir string) (string, error) {
	data, err := f.Format(entries)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = filepath.Join(dir, fmt.Sprintf("historique_intermittent_%s.%s", time.Now().Format("20060102_150405"), f.Extension()))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	XLSXFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"excel":       "xlsx",
	"spreadsheet": "xlsx",
	"table":       "console",
	"text":        "console",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
