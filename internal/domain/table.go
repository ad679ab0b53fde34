package domain

import "fmt"

// Table represents a physical table in the restaurant floor plan
type Table struct {
	ID           string
	Seats        int
	MinSpend     float64 // Minimum spend, only meaningful for VIP tables
	SpecialNotes string
}

// IsVIP returns true if the table is a VIP table
// VIP status is purely a function of capacity and is never stored independently
func (t *Table) IsVIP() bool {
	return t.Seats >= VIPSeatsThreshold
}

// TypeLabel returns the human-readable table type
func (t *Table) TypeLabel() string {
	if t.IsVIP() {
		return TableTypeVIPLabel
	}
	return TableTypeStandardLabel
}

// DisplayName returns the presentation name of the table ("Table7" -> "Table 7")
func (t *Table) DisplayName() string {
	return displayName(t.ID)
}

func displayName(tableID string) string {
	var prefix, num string
	for i, r := range tableID {
		if r >= '0' && r <= '9' {
			prefix, num = tableID[:i], tableID[i:]
			break
		}
	}
	if num == "" {
		return tableID
	}
	return fmt.Sprintf("%s %s", prefix, num)
}

// TableDisplayName returns the presentation name for a raw table identifier
func TableDisplayName(tableID string) string {
	return displayName(tableID)
}
