package output

import (
	"bytes"
	"encoding/csv"

	"github.com/intermittent/are-simulator/internal/domain"
)

// CSVFormatter exports the history log as CSV, one row per simulation.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(entries []domain.HistoryEntry) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(historyHeader); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := w.Write(historyRow(e)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
