package schedule

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"gamenight-backend/internal/slot"
)

var exportHeader = []string{"day", "slot", "available_count"}

// ExportCSV flattens the group counts into day,slot,available_count rows,
// ordered day ascending then slot enumeration order. An empty result yields
// a header-only stream.
func ExportCSV(counts map[Key]int) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range exportRows(counts) {
		record := []string{row.Day, row.Slot, strconv.Itoa(row.Count)}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders the same flattened rows as a single-sheet workbook.
func ExportXLSX(counts map[Key]int) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for col, name := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}

	for i, row := range exportRows(counts) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{row.Day, row.Slot, row.Count}); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to generate workbook: %w", err)
	}
	return buf, nil
}

// exportRows orders the sparse counts by day asc, slot order asc. Counts are
// exported as submitted, including explicit zero rows, matching what the
// group summary query returns.
func exportRows(counts map[Key]int) []RankedSlot {
	rows := flatten(counts)
	// flatten sorts count-first for ranking; exports read better day-first.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Day != rows[j].Day {
			return rows[i].Day < rows[j].Day
		}
		si, _ := slot.Index(rows[i].Slot)
		sj, _ := slot.Index(rows[j].Slot)
		return si < sj
	})
	return rows
}
