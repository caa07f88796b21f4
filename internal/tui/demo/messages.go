package demo

// FocusZone determines which region receives key input.
type FocusZone int

const (
	ZoneForm FocusZone = iota
	ZoneGrid
)

// Operation names the async action currently in flight. One operation
// runs at a time and there is no cancellation.
type Operation string

const (
	OpNone    Operation = ""
	OpAddRow  Operation = "add"
	OpRefresh Operation = "refresh"
)

// RowAddedMsg delivers a new row after the simulated latency elapses.
type RowAddedMsg struct {
	Row Person
}

// RefreshedMsg delivers the refreshed dataset after the simulated
// latency elapses.
type RefreshedMsg struct {
	Rows []Person
}
