package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gamenight-backend/internal/slot"
)

// DayLayout is the ISO-8601 date format used for the day key everywhere:
// in the store, on the wire, and in exports.
const DayLayout = "2006-01-02"

// DefaultTopK is the number of ranked slots returned when the caller does not
// ask for a specific count.
const DefaultTopK = 10

var (
	// ErrInvalidInput flags a malformed day, slot label, or empty name.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRange flags a date range whose start is after its end.
	ErrInvalidRange = errors.New("start date is after end date")
)

// Key identifies one cell of the availability table.
type Key struct {
	Day  string
	Slot string
}

// GridRow is one day of a user's editable grid. Slots holds one boolean per
// slot, in enumeration order.
type GridRow struct {
	Day   string `json:"day"`
	Slots []bool `json:"slots"`
}

// MatrixRow is one day of the dense group count matrix.
type MatrixRow struct {
	Day    string `json:"day"`
	Counts []int  `json:"counts"`
}

// RankedSlot is one entry of the top-N ranking.
type RankedSlot struct {
	Day   string `json:"day"`
	Slot  string `json:"slot"`
	Count int    `json:"count"`
}

// ParseDay validates a single ISO date string and normalizes nothing: the
// stored key is exactly what was submitted, provided it parses.
func ParseDay(s string) error {
	if _, err := time.Parse(DayLayout, s); err != nil {
		return fmt.Errorf("%w: bad day %q", ErrInvalidInput, s)
	}
	return nil
}

// Days expands [start, end] into every calendar day, inclusive on both ends.
// A single-day range is valid; start after end is not.
func Days(start, end string) ([]string, error) {
	from, err := time.Parse(DayLayout, start)
	if err != nil {
		return nil, fmt.Errorf("%w: bad start date %q", ErrInvalidInput, start)
	}
	to, err := time.Parse(DayLayout, end)
	if err != nil {
		return nil, fmt.Errorf("%w: bad end date %q", ErrInvalidInput, end)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}

	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayLayout))
	}
	return days, nil
}

// BuildGrid turns a user's sparse records into a dense day×slot grid over the
// requested days. Absent records read as false; the grid is total over the
// full domain so consumers never deal with missing cells.
func BuildGrid(days []string, existing map[Key]bool) []GridRow {
	rows := make([]GridRow, 0, len(days))
	for _, day := range days {
		row := GridRow{Day: day, Slots: make([]bool, slot.Count)}
		for i, label := range slot.Labels() {
			row.Slots[i] = existing[Key{Day: day, Slot: label}]
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildMatrix turns sparse group counts into a dense day×slot count matrix.
// Cells with no records are 0, never omitted.
func BuildMatrix(days []string, counts map[Key]int) []MatrixRow {
	rows := make([]MatrixRow, 0, len(days))
	for _, day := range days {
		row := MatrixRow{Day: day, Counts: make([]int, slot.Count)}
		for i, label := range slot.Labels() {
			row.Counts[i] = counts[Key{Day: day, Slot: label}]
		}
		rows = append(rows, row)
	}
	return rows
}

// TopSlots ranks the submitted (day, slot, count) entries by count descending,
// then day ascending, then slot enumeration order, and returns at most k.
// The two secondary keys make the ranking fully deterministic; re-running on
// unchanged data yields the same sequence.
func TopSlots(counts map[Key]int, k int) []RankedSlot {
	if k <= 0 {
		k = DefaultTopK
	}

	ranked := flatten(counts)
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// flatten orders the sparse counts by count desc, day asc, slot order asc.
func flatten(counts map[Key]int) []RankedSlot {
	out := make([]RankedSlot, 0, len(counts))
	for key, count := range counts {
		out = append(out, RankedSlot{Day: key.Day, Slot: key.Slot, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		si, _ := slot.Index(out[i].Slot)
		sj, _ := slot.Index(out[j].Slot)
		return si < sj
	})
	return out
}
