// Package export writes learner progress to spreadsheet files.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/mathtik/internal/facts"
	"github.com/abhisek/mathtik/internal/mastery"
	"github.com/abhisek/mathtik/internal/store"
)

// SheetName is the worksheet the mastery table is written to.
const SheetName = "Sheet1"

// Header is the first row of the mastery sheet.
var Header = []string{
	"Signature", "Question", "Level", "Score", "Strength", "Ease",
	"Interval (s)", "Due", "Last Result", "Attempts", "Correct",
}

// MasteryWorkbook writes one row per tracked fact to path. accuracy may
// be nil when no event history is available.
func MasteryWorkbook(path string, bank *facts.Bank, tbl *mastery.Table, accuracy []store.FactAccuracy, now time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	bySig := make(map[string]store.FactAccuracy, len(accuracy))
	for _, a := range accuracy {
		bySig[a.Signature] = a
	}

	if err := writeRow(f, 1, toRow(Header)); err != nil {
		return err
	}

	for i, r := range tbl.All() {
		question, level := string(r.Signature), 0
		if fact, err := bank.Resolve(r.Signature); err == nil {
			question = fact.Question()
			if _, ok := bank.Lookup(r.Signature); ok {
				level = fact.Level
			}
		}
		last := "wrong"
		if r.LastResult {
			last = "right"
		}
		acc := bySig[string(r.Signature)]

		row := []interface{}{
			string(r.Signature), question, level, r.Score, string(r.Strength()), r.Ease,
			r.IntervalSecs, r.DueIn(now), last, acc.Attempts, acc.Correct,
		}
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetName, "A", "B", 14); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

func toRow(cols []string) []interface{} {
	out := make([]interface{}, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}
