package output

import (
	"fmt"

	"github.com/intermittent/are-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// XLSXSheet is the worksheet holding the exported log
const XLSXSheet = "Sheet1"

// XLSXFormatter exports the history log as an Excel workbook.
// Amounts are written as numeric cells so they stay editable in a spreadsheet.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string      { return "xlsx" }
func (x XLSXFormatter) Extension() string { return "xlsx" }

func (x XLSXFormatter) Format(entries []domain.HistoryEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(historyHeader))
	for i, h := range historyHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(XLSXSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			e.ID,
			e.RecordedAt.Format(DateLayout),
			e.Kind.Label(),
			int(e.Category),
			e.Cachets,
			e.RehearsalCachets,
			e.Hours.InexactFloat64(),
			optionalNumber(e.ReferenceSalary),
			e.DailyBenefit.Round(2).InexactFloat64(),
			optionalNumber(e.MonthlyBenefit),
			e.ContractDetails,
		}
		if err := f.SetSheetRow(XLSXSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(XLSXSheet, "A", "A", 38); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(XLSXSheet, "B", "K", 16); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func optionalNumber(d *decimal.Decimal) interface{} {
	if d == nil {
		return "N/A"
	}
	return d.Round(2).InexactFloat64()
}
