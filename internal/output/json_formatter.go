package output

import (
	json "github.com/goccy/go-json"

	"github.com/intermittent/are-simulator/internal/domain"
)

// JSONFormatter serializes the history log as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(entries []domain.HistoryEntry) ([]byte, error) {
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}
