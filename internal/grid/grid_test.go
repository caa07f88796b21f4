package grid

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personColumns() []Column[person] {
	return []Column[person]{
		nameColumn(),
		ageColumn(),
		{
			Key:   "email",
			Title: "Email",
			Value: func(p person) any { return p.Email },
		},
	}
}

func samplePeople() []person {
	return []person{
		{Name: "bob", Age: 32, Email: "bob@example.com"},
		{Name: "alice", Age: 28, Email: "alice@example.com"},
		{Name: "carol", Age: 24, Email: "carol@example.com"},
	}
}

func manyPeople(n int) []person {
	rows := make([]person, n)
	for i := range rows {
		rows[i] = person{
			Name:  fmt.Sprintf("user%02d", i+1),
			Age:   20 + i,
			Email: fmt.Sprintf("user%02d@example.com", i+1),
		}
	}
	return rows
}

func visibleNames(m *Model[person]) []string {
	rows := m.VisibleRows()
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	return names
}

func TestGridSortCycle(t *testing.T) {
	t.Parallel()

	m := New(personColumns()).WithRows(samplePeople()).WithPagination(false)

	m.CycleSort("age")
	assert.Equal(t, []string{"carol", "alice", "bob"}, visibleNames(m))
	assert.Equal(t, SortAscending, m.SortState().Direction)

	m.CycleSort("age")
	assert.Equal(t, []string{"bob", "alice", "carol"}, visibleNames(m))
	assert.Equal(t, SortDescending, m.SortState().Direction)

	m.CycleSort("age")
	assert.Equal(t, []string{"bob", "alice", "carol"}, visibleNames(m))
	assert.False(t, m.SortState().IsActive())
}

func TestGridSortSwitchRestartsAscending(t *testing.T) {
	t.Parallel()

	m := New(personColumns()).WithRows(samplePeople()).WithPagination(false)

	m.CycleSort("age")
	m.CycleSort("age")
	require.Equal(t, SortDescending, m.SortState().Direction)

	m.CycleSort("name")
	assert.Equal(t, SortState{Column: "name", Direction: SortAscending}, m.SortState())
	assert.Equal(t, []string{"alice", "bob", "carol"}, visibleNames(m))
}

func TestGridSortIgnoresNonSortable(t *testing.T) {
	t.Parallel()

	m := New(personColumns()).WithRows(samplePeople()).WithPagination(false)

	m.CycleSort("email")
	assert.False(t, m.SortState().IsActive())

	m.CycleSort("unknown")
	assert.False(t, m.SortState().IsActive())
}

func TestGridSortDoesNotMutateDataset(t *testing.T) {
	t.Parallel()

	rows := samplePeople()
	m := New(personColumns()).WithRows(rows).WithPagination(false)

	m.CycleSort("age")
	_ = m.VisibleRows()
	assert.Equal(t, "bob", rows[0].Name)
}

func TestGridPagination(t *testing.T) {
	t.Parallel()

	m := New(personColumns()).WithRows(manyPeople(10)).WithPageSize(3)

	assert.Equal(t, []string{"user01", "user02", "user03"}, visibleNames(m))
	assert.Equal(t, "Showing 1 to 3 of 10 results", m.StatusLine())
	assert.Equal(t, "Page 1 of 4", m.PageLine())

	m.NextPage()
	m.NextPage()
	m.NextPage()
	assert.Equal(t, []string{"user10"}, visibleNames(m))
	assert.Equal(t, "Showing 10 to 10 of 10 results", m.StatusLine())
	assert.Equal(t, "Page 4 of 4", m.PageLine())
	assert.True(t, m.Page().AtLast(10))

	// Clamped at the last page.
	m.NextPage()
	assert.Equal(t, "Page 4 of 4", m.PageLine())

	m.PrevPage()
	assert.Equal(t, "Showing 7 to 9 of 10 results", m.StatusLine())
	assert.Equal(t, []string{"user07", "user08", "user09"}, visibleNames(m))
}

func TestGridStatusLineEmptyDataset(t *testing.T) {
	t.Parallel()

	m := New(personColumns()).WithPageSize(3)
	assert.Equal(t, "Showing 0 to 0 of 0 results", m.StatusLine())
	assert.Equal(t, "Page 1 of 1", m.PageLine())
}

func TestGridPaginationAppliesAfterSort(t *testing.T) {
	t.Parallel()

	rows := []person{
		{Name: "dave", Age: 40},
		{Name: "alice", Age: 10},
		{Name: "carol", Age: 30},
		{Name: "bob", Age: 20},
	}
	m := New(personColumns()).WithRows(rows).WithPageSize(2)

	m.CycleSort("age")
	assert.Equal(t, []string{"alice", "bob"}, visibleNames(m))

	m.NextPage()
	assert.Equal(t, []string{"carol", "dave"}, visibleNames(m))
}

func TestGridSelection(t *testing.T) {
	t.Parallel()

	var notified [][]person
	m := New(personColumns()).
		WithRows(samplePeople()).
		WithPagination(false).
		WithSelectable(true).
		OnSelect(func(rows []person) { notified = append(notified, rows) })

	m.ToggleRow("2", true)
	m.ToggleRow("0", true)
	require.Len(t, notified, 2)

	// Materialized in dataset order, not selection order.
	selected := m.SelectedRows()
	require.Len(t, selected, 2)
	assert.Equal(t, "bob", selected[0].Name)
	assert.Equal(t, "carol", selected[1].Name)

	m.ToggleRow("0", false)
	assert.Equal(t, 1, m.SelectionCount())
	assert.False(t, m.Selected("0"))
}

func TestGridSelectionSurvivesSort(t *testing.T) {
	t.Parallel()

	m := New(personColumns()).
		WithRows(samplePeople()).
		WithPagination(false).
		WithSelectable(true)

	m.ToggleRow("1", true) // alice

	m.CycleSort("age")
	selected := m.SelectedRows()
	require.Len(t, selected, 1)
	assert.Equal(t, "alice", selected[0].Name)
}

func TestGridSelectAllScopesToPage(t *testing.T) {
	t.Parallel()

	m := New(personColumns()).
		WithRows(manyPeople(10)).
		WithPageSize(3).
		WithSelectable(true)

	m.ToggleSelectAll(true)
	assert.Equal(t, 3, m.SelectionCount())
	assert.True(t, m.AllSelectedOnPage())
	assert.False(t, m.IndeterminateOnPage())

	// Exactly the visible page is selected, nothing beyond it.
	m.NextPage()
	assert.False(t, m.AllSelectedOnPage())
	assert.False(t, m.IndeterminateOnPage())

	m.ToggleRow("3", true) // user04, first row of page two
	assert.True(t, m.IndeterminateOnPage())
}

func TestGridSelectAllReplacesSelection(t *testing.T) {
	t.Parallel()

	m := New(personColumns()).
		WithRows(manyPeople(10)).
		WithPageSize(3).
		WithSelectable(true)

	// A selection on page two does not survive select-all on page one.
	m.ToggleRow("4", true) // user05
	require.Equal(t, 1, m.SelectionCount())

	m.ToggleSelectAll(true)
	assert.Equal(t, 3, m.SelectionCount())
	assert.False(t, m.Selected("4"))
	assert.True(t, m.Selected("0"))

	// Deselect-all clears everything, on-page or not.
	m.ToggleRow("4", true)
	m.ToggleSelectAll(false)
	assert.Zero(t, m.SelectionCount())
}

func TestGridSelectAllEmptyPage(t *testing.T) {
	t.Parallel()

	m := New(personColumns()).WithSelectable(true)
	assert.False(t, m.AllSelectedOnPage())

	m.ToggleSelectAll(true)
	assert.Zero(t, m.SelectionCount())
}

func TestGridCustomRowID(t *testing.T) {
	t.Parallel()

	m := New(personColumns()).
		WithRows(samplePeople()).
		WithPagination(false).
		WithSelectable(true).
		WithRowID(func(p person, _ int) string { return p.Email })

	m.ToggleRow("alice@example.com", true)
	selected := m.SelectedRows()
	require.Len(t, selected, 1)
	assert.Equal(t, "alice", selected[0].Name)
}

func TestGridSetRowsKeepsState(t *testing.T) {
	t.Parallel()

	m := New(personColumns()).
		WithRows(manyPeople(10)).
		WithPageSize(3).
		WithSelectable(true)

	m.CycleSort("age")
	m.NextPage()
	m.ToggleRow("0", true)

	m.SetRows(manyPeople(4))

	// Sort, page, and selection carry over unchanged.
	assert.True(t, m.SortState().IsActive())
	assert.Equal(t, 2, m.Page().Page)
	assert.Equal(t, 1, m.SelectionCount())
}

func TestGridMode(t *testing.T) {
	t.Parallel()

	m := New(personColumns())
	assert.Equal(t, ModeEmpty, m.Mode())

	m.SetLoading(true)
	assert.Equal(t, ModeLoading, m.Mode())

	m.SetRows(samplePeople())
	assert.Equal(t, ModeLoading, m.Mode(), "loading wins over populated")

	m.SetLoading(false)
	assert.Equal(t, ModePopulated, m.Mode())

	m.SetRows(nil)
	assert.Equal(t, ModeEmpty, m.Mode())
}

func keyMsg(s string) tea.KeyMsg {
	if s == "up" {
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	if s == "down" {
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGridUpdateKeys(t *testing.T) {
	t.Parallel()

	t.Run("cursor movement clamps to page", func(t *testing.T) {
		t.Parallel()

		m := New(personColumns()).WithRows(samplePeople()).WithPagination(false)
		m.Update(keyMsg("up"))
		assert.Zero(t, m.Cursor())

		m.Update(keyMsg("down"))
		m.Update(keyMsg("down"))
		m.Update(keyMsg("down"))
		assert.Equal(t, 2, m.Cursor())
	})

	t.Run("s sorts the active column", func(t *testing.T) {
		t.Parallel()

		m := New(personColumns()).WithRows(samplePeople()).WithPagination(false)
		m.Update(keyMsg("right"))
		m.Update(keyMsg("s"))
		assert.Equal(t, SortState{Column: "age", Direction: SortAscending}, m.SortState())
	})

	t.Run("space toggles the cursor row", func(t *testing.T) {
		t.Parallel()

		m := New(personColumns()).
			WithRows(samplePeople()).
			WithPagination(false).
			WithSelectable(true)
		m.Update(keyMsg("down"))
		m.Update(keyMsg(" "))
		assert.True(t, m.Selected("1"))

		m.Update(keyMsg(" "))
		assert.False(t, m.Selected("1"))
	})

	t.Run("a toggles select all on the page", func(t *testing.T) {
		t.Parallel()

		m := New(personColumns()).
			WithRows(manyPeople(10)).
			WithPageSize(3).
			WithSelectable(true)
		m.Update(keyMsg("a"))
		assert.Equal(t, 3, m.SelectionCount())

		m.Update(keyMsg("a"))
		assert.Zero(t, m.SelectionCount())
	})

	t.Run("brackets page and reset the cursor", func(t *testing.T) {
		t.Parallel()

		m := New(personColumns()).WithRows(manyPeople(10)).WithPageSize(3)
		m.Update(keyMsg("down"))
		m.Update(keyMsg("]"))
		assert.Equal(t, 2, m.Page().Page)
		assert.Zero(t, m.Cursor())

		m.Update(keyMsg("["))
		assert.Equal(t, 1, m.Page().Page)
	})

	t.Run("enter reports the visible offset", func(t *testing.T) {
		t.Parallel()

		var clicked person
		var clickedIndex int
		m := New(personColumns()).
			WithRows(samplePeople()).
			WithPagination(false).
			OnRowClick(func(p person, index int) {
				clicked = p
				clickedIndex = index
			})

		m.CycleSort("age")
		m.Update(keyMsg("down"))
		m.Update(keyMsg("enter"))
		assert.Equal(t, "alice", clicked.Name, "callback sees the sorted order")
		assert.Equal(t, 1, clickedIndex)
	})

	t.Run("keys are ignored while loading", func(t *testing.T) {
		t.Parallel()

		m := New(personColumns()).WithRows(manyPeople(10)).WithPageSize(3)
		m.SetLoading(true)
		m.Update(keyMsg("]"))
		assert.Equal(t, 1, m.Page().Page)
	})
}
