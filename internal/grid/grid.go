package grid

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/collate"
)

// DisplayMode is the rendering gate for the grid body. Loading takes
// precedence over Empty, which takes precedence over Populated.
type DisplayMode int

const (
	ModePopulated DisplayMode = iota
	ModeEmpty
	ModeLoading
)

// RowID derives a stable identifier for a row. The index is the row's
// position in the original dataset, not its position after sorting.
type RowID[T any] func(row T, index int) string

// Model is a sortable, selectable, paginated data grid over rows of T.
// Zero rows with loading disabled renders the empty state; the column
// headers render in every mode.
type Model[T any] struct {
	rows    []T
	columns []Column[T]
	rowID   RowID[T]

	sort      SortState
	page      PageState
	selection *Selection
	collator  *collate.Collator

	selectable bool
	paginated  bool
	loading    bool

	emptyMessage string

	cursor       int
	activeColumn int

	onSelect   func([]T)
	onRowClick func(row T, index int)
}

// New creates a grid over the given columns with pagination enabled at
// the default page size.
func New[T any](columns []Column[T]) *Model[T] {
	return &Model[T]{
		columns:      columns,
		rowID:        defaultRowID[T],
		page:         NewPageState(DefaultPageSize),
		selection:    NewSelection(),
		collator:     DefaultCollator(),
		paginated:    true,
		emptyMessage: "No data available",
	}
}

func defaultRowID[T any](_ T, index int) string {
	return strconv.Itoa(index)
}

// WithRows seeds the initial dataset.
func (m *Model[T]) WithRows(rows []T) *Model[T] {
	m.rows = rows
	return m
}

// WithRowID overrides how row identifiers are derived.
func (m *Model[T]) WithRowID(fn RowID[T]) *Model[T] {
	if fn != nil {
		m.rowID = fn
	}
	return m
}

// WithSelectable toggles multi-row selection.
func (m *Model[T]) WithSelectable(on bool) *Model[T] {
	m.selectable = on
	return m
}

// WithPagination toggles pagination. When off, every row renders on a
// single page.
func (m *Model[T]) WithPagination(on bool) *Model[T] {
	m.paginated = on
	return m
}

// WithPageSize sets the page size for paginated grids.
func (m *Model[T]) WithPageSize(size int) *Model[T] {
	m.page = NewPageState(size)
	return m
}

// WithEmptyMessage sets the message shown when the grid has no rows.
func (m *Model[T]) WithEmptyMessage(msg string) *Model[T] {
	if msg != "" {
		m.emptyMessage = msg
	}
	return m
}

// WithCollator overrides the collator used for string comparison.
func (m *Model[T]) WithCollator(c *collate.Collator) *Model[T] {
	if c != nil {
		m.collator = c
	}
	return m
}

// OnSelect registers a callback fired with the selected rows, in
// dataset order, whenever the selection changes.
func (m *Model[T]) OnSelect(fn func([]T)) *Model[T] {
	m.onSelect = fn
	return m
}

// OnRowClick registers a callback fired when a row is activated. The
// index is the row's offset within the visible page.
func (m *Model[T]) OnRowClick(fn func(row T, index int)) *Model[T] {
	m.onRowClick = fn
	return m
}

// SetRows replaces the dataset. Sort state, page and selection are left
// untouched; identifiers that no longer resolve simply stop matching.
func (m *Model[T]) SetRows(rows []T) {
	m.rows = rows
	if m.cursor >= len(m.visibleEntries()) {
		m.cursor = 0
	}
}

// Rows returns the full dataset in original order.
func (m *Model[T]) Rows() []T {
	return m.rows
}

// SetLoading toggles the loading state.
func (m *Model[T]) SetLoading(on bool) {
	m.loading = on
}

// Loading reports whether the grid is in the loading state.
func (m *Model[T]) Loading() bool {
	return m.loading
}

// Mode returns the current rendering gate, recomputed on every call.
func (m *Model[T]) Mode() DisplayMode {
	switch {
	case m.loading:
		return ModeLoading
	case len(m.rows) == 0:
		return ModeEmpty
	default:
		return ModePopulated
	}
}

// SortState returns the current sort column and direction.
func (m *Model[T]) SortState() SortState {
	return m.sort
}

// CycleSort advances the sort state for the given column key. Clicking
// the active column cycles ascending, descending, unsorted; switching
// columns restarts at ascending. Non-sortable and unknown columns are
// ignored.
func (m *Model[T]) CycleSort(key string) {
	col, ok := m.columnByKey(key)
	if !ok || !col.Sortable {
		return
	}
	m.sort = m.sort.Advance(key)
}

func (m *Model[T]) columnByKey(key string) (Column[T], bool) {
	for _, c := range m.columns {
		if c.Key == key {
			return c, true
		}
	}
	var zero Column[T]
	return zero, false
}

// sortedEntries returns the dataset paired with original indices, in
// display order.
func (m *Model[T]) sortedEntries() []entry[T] {
	entries := indexed(m.rows)
	if !m.sort.IsActive() {
		return entries
	}
	col, ok := m.columnByKey(m.sort.Column)
	if !ok {
		return entries
	}
	return SortEntries(entries, col, m.sort.Direction, m.collator)
}

// visibleEntries returns the entries for the current page in display
// order, or all sorted entries when pagination is off.
func (m *Model[T]) visibleEntries() []entry[T] {
	entries := m.sortedEntries()
	if !m.paginated {
		return entries
	}
	lo, hi := m.page.Bounds(len(entries))
	return entries[lo:hi]
}

// VisibleRows returns the rows currently on screen, in display order.
func (m *Model[T]) VisibleRows() []T {
	entries := m.visibleEntries()
	rows := make([]T, len(entries))
	for i, e := range entries {
		rows[i] = e.row
	}
	return rows
}

// Page returns the current pagination state.
func (m *Model[T]) Page() PageState {
	return m.page
}

// TotalPages returns the page count for the current dataset.
func (m *Model[T]) TotalPages() int {
	return m.page.TotalPages(len(m.rows))
}

// NextPage advances one page, clamped to the last page.
func (m *Model[T]) NextPage() {
	if !m.paginated {
		return
	}
	m.page = m.page.Next(len(m.rows))
	m.cursor = 0
}

// PrevPage moves back one page, clamped to the first page.
func (m *Model[T]) PrevPage() {
	if !m.paginated {
		return
	}
	m.page = m.page.Prev()
	m.cursor = 0
}

// StatusLine reports the visible window, one-based inclusive, in the
// form "Showing 4 to 6 of 10 results". An empty window reports
// "Showing 0 to 0 of 0 results".
func (m *Model[T]) StatusLine() string {
	total := len(m.rows)
	if !m.paginated {
		if total == 0 {
			return "Showing 0 to 0 of 0 results"
		}
		return fmt.Sprintf("Showing 1 to %d of %d results", total, total)
	}
	lo, hi := m.page.Bounds(total)
	if hi == lo {
		return fmt.Sprintf("Showing 0 to 0 of %d results", total)
	}
	return fmt.Sprintf("Showing %d to %d of %d results", lo+1, hi, total)
}

// PageLine reports the current page in the form "Page 2 of 4".
func (m *Model[T]) PageLine() string {
	return fmt.Sprintf("Page %d of %d", m.page.Page, m.TotalPages())
}

// ToggleRow selects or deselects a single row by identifier.
func (m *Model[T]) ToggleRow(id string, selected bool) {
	if !m.selectable {
		return
	}
	m.selection.Toggle(id, selected)
	m.notifySelect()
}

// ToggleSelectAll sets the selection to exactly the current page's rows,
// or clears it entirely. Selections on other pages do not survive either
// direction.
func (m *Model[T]) ToggleSelectAll(selected bool) {
	if !m.selectable {
		return
	}
	if !selected {
		m.selection.Clear()
		m.notifySelect()
		return
	}
	entries := m.visibleEntries()
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = m.rowID(e.row, e.index)
	}
	m.selection.Replace(ids)
	m.notifySelect()
}

// ClearSelection empties the selection.
func (m *Model[T]) ClearSelection() {
	m.selection.Clear()
	m.notifySelect()
}

// Selected reports whether the row with the given identifier is
// selected.
func (m *Model[T]) Selected(id string) bool {
	return m.selection.Has(id)
}

// SelectionCount returns the number of selected identifiers.
func (m *Model[T]) SelectionCount() int {
	return m.selection.Len()
}

// SelectedRows materializes the selected rows in original dataset
// order, regardless of the current sort.
func (m *Model[T]) SelectedRows() []T {
	var out []T
	for i, row := range m.rows {
		if m.selection.Has(m.rowID(row, i)) {
			out = append(out, row)
		}
	}
	return out
}

// AllSelectedOnPage reports whether every row on the current page is
// selected. An empty page is never fully selected.
func (m *Model[T]) AllSelectedOnPage() bool {
	entries := m.visibleEntries()
	if len(entries) == 0 {
		return false
	}
	for _, e := range entries {
		if !m.selection.Has(m.rowID(e.row, e.index)) {
			return false
		}
	}
	return true
}

// IndeterminateOnPage reports whether some but not all rows on the
// current page are selected.
func (m *Model[T]) IndeterminateOnPage() bool {
	entries := m.visibleEntries()
	if len(entries) == 0 {
		return false
	}
	selected := 0
	for _, e := range entries {
		if m.selection.Has(m.rowID(e.row, e.index)) {
			selected++
		}
	}
	return selected > 0 && selected < len(entries)
}

func (m *Model[T]) notifySelect() {
	if m.onSelect != nil {
		m.onSelect(m.SelectedRows())
	}
}

// Cursor returns the highlighted row offset within the current page.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// ActiveColumn returns the index of the column targeted by the sort
// key binding.
func (m *Model[T]) ActiveColumn() int {
	return m.activeColumn
}

// Update handles key messages. Unrecognized messages are ignored; the
// grid issues no commands.
func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.loading {
		return nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visibleEntries())-1 {
			m.cursor++
		}
	case "left", "h":
		if m.activeColumn > 0 {
			m.activeColumn--
		}
	case "right", "l":
		if m.activeColumn < len(m.columns)-1 {
			m.activeColumn++
		}
	case "s":
		if m.activeColumn < len(m.columns) {
			m.CycleSort(m.columns[m.activeColumn].Key)
		}
	case " ":
		m.toggleCursorRow()
	case "a":
		if m.selectable {
			m.ToggleSelectAll(!m.AllSelectedOnPage())
		}
	case "[":
		m.PrevPage()
	case "]":
		m.NextPage()
	case "enter":
		m.clickCursorRow()
	}
	return nil
}

func (m *Model[T]) toggleCursorRow() {
	if !m.selectable {
		return
	}
	entries := m.visibleEntries()
	if m.cursor >= len(entries) {
		return
	}
	e := entries[m.cursor]
	id := m.rowID(e.row, e.index)
	m.ToggleRow(id, !m.selection.Has(id))
}

func (m *Model[T]) clickCursorRow() {
	if m.onRowClick == nil {
		return
	}
	entries := m.visibleEntries()
	if m.cursor >= len(entries) {
		return
	}
	m.onRowClick(entries[m.cursor].row, m.cursor)
}
