package slot

import (
	"fmt"
	"regexp"
	"strings"
)

// The four bookable windows of a day, in enumeration order. The labels are
// the canonical persisted values; ranking tie-breaks use this order, not a
// lexical one.
const (
	Morning   = "Morning (09:00–12:00)"
	Afternoon = "Afternoon (12:00–17:00)"
	Evening   = "Evening (17:00–21:00)"
	Late      = "Late (21:00–01:00)"
)

var labels = [...]string{Morning, Afternoon, Evening, Late}

// Count is the number of slots in a day.
const Count = len(labels)

// Labels returns the slot labels in enumeration order.
func Labels() []string {
	out := make([]string, Count)
	copy(out, labels[:])
	return out
}

// Index returns the enumeration position of a label, or false when the label
// is not part of the closed set. Labels are matched exactly, no trimming.
func Index(label string) (int, bool) {
	for i, l := range labels {
		if l == label {
			return i, true
		}
	}
	return 0, false
}

// Valid reports whether label is one of the four known slots.
func Valid(label string) bool {
	_, ok := Index(label)
	return ok
}

var labelRe = regexp.MustCompile(`^([A-Za-z]+)\s*\((\d{2}:\d{2})[–-](\d{2}:\d{2})\)$`)

// Window holds the structured parts of a slot label.
type Window struct {
	Name  string
	Start string
	End   string
}

// ParseLabel extracts the window name and clock range from a slot label such
// as "Evening (17:00–21:00)".
func ParseLabel(raw string) (Window, error) {
	s := strings.TrimSpace(raw)
	m := labelRe.FindStringSubmatch(s)
	if m == nil {
		return Window{}, fmt.Errorf("unable to parse slot label: %q", raw)
	}
	return Window{Name: m[1], Start: m[2], End: m[3]}, nil
}
