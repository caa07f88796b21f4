// Package grid implements a themeable terminal data-grid widget with
// stable sorting, page navigation, and multi-row selection over an
// in-memory dataset. The transformation pipeline is pure: sorting and
// pagination never mutate the caller's rows.
package grid

import "fmt"

// Align specifies the horizontal alignment of a column's cells.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Column describes one displayed field of a row. Columns are supplied by
// the caller and treated as immutable during a render pass.
type Column[T any] struct {
	// Key uniquely identifies the column for sort-state tracking.
	Key string
	// Title is the header label.
	Title string
	// Value reads the column's field off a row. A nil return sorts as
	// a null (low ascending, high descending) and renders empty.
	Value func(row T) any
	// Sortable enables the header sort cycle for this column.
	Sortable bool
	// Render overrides the default cell text. The index is the row's
	// position within the visible page.
	Render func(row T, index int) string
	// Width fixes the column width in cells; zero means fit content.
	Width int
	// Alignment positions cell content within the column.
	Alignment Align
}

// CellText resolves the display text for a row's cell.
func (c Column[T]) CellText(row T, index int) string {
	if c.Render != nil {
		return c.Render(row, index)
	}
	if c.Value == nil {
		return ""
	}
	value := c.Value(row)
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// SortDirection is one of none, ascending, or descending.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

// String returns the direction's wire-friendly name.
func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "none"
	}
}

// Indicator returns the header glyph for the direction.
func (d SortDirection) Indicator() string {
	switch d {
	case SortAscending:
		return "↑"
	case SortDescending:
		return "↓"
	default:
		return "↕"
	}
}

// SortState tracks the single active sort column and its direction.
// The zero value means natural input order.
type SortState struct {
	Column    string
	Direction SortDirection
}

// IsActive reports whether a sort is in effect.
func (s SortState) IsActive() bool {
	return s.Column != "" && s.Direction != SortNone
}

// Advance returns the state after activating the given column key.
// Activating a new column starts at ascending; re-activating the current
// column steps through the ascending, descending, none cycle.
func (s SortState) Advance(key string) SortState {
	if s.Column != key {
		return SortState{Column: key, Direction: SortAscending}
	}
	switch s.Direction {
	case SortAscending:
		return SortState{Column: key, Direction: SortDescending}
	case SortDescending:
		return SortState{}
	default:
		return SortState{Column: key, Direction: SortAscending}
	}
}
