package demo

import (
	"strings"

	"github.com/jbickler/termgrid/internal/config"
	"github.com/jbickler/termgrid/internal/grid"
)

// Person is one row of the demo dataset.
type Person struct {
	Name   string
	Email  string
	Age    int
	City   string
	Status string
}

// SamplePeople returns the built-in dataset used when the configuration
// supplies no seed rows.
func SamplePeople() []Person {
	return []Person{
		{Name: "Alice Johnson", Email: "alice@example.com", Age: 28, City: "Oslo", Status: "active"},
		{Name: "Bob Smith", Email: "bob@example.com", Age: 32, City: "Lisbon", Status: "active"},
		{Name: "Carol Reyes", Email: "carol@example.com", Age: 24, City: "Austin", Status: "pending"},
		{Name: "Dave Novak", Email: "dave@example.com", Age: 45, City: "Prague", Status: "inactive"},
		{Name: "Erin Walsh", Email: "erin@example.com", Age: 37, City: "Dublin", Status: "active"},
		{Name: "Frank Mori", Email: "frank@example.com", Age: 51, City: "Kyoto", Status: "inactive"},
		{Name: "Grace Lindqvist", Email: "grace@example.com", Age: 29, City: "Umeå", Status: "active"},
		{Name: "Hank Pereira", Email: "hank@example.com", Age: 41, City: "Porto", Status: "pending"},
		{Name: "Iris Chen", Email: "iris@example.com", Age: 33, City: "Taipei", Status: "active"},
		{Name: "Jonas Bergström", Email: "jonas@example.com", Age: 26, City: "Malmö", Status: "active"},
	}
}

// PeopleFromSeeds converts configuration seed rows into the dataset,
// falling back to the built-in sample when no seeds are configured.
func PeopleFromSeeds(seeds []config.Seed) []Person {
	if len(seeds) == 0 {
		return SamplePeople()
	}
	people := make([]Person, len(seeds))
	for i, s := range seeds {
		status := s.Status
		if status == "" {
			status = "active"
		}
		people[i] = Person{
			Name:   s.Name,
			Email:  s.Email,
			Age:    s.Age,
			City:   s.City,
			Status: status,
		}
	}
	return people
}

// personID keys selection on the email column, which the configuration
// validator guarantees unique.
func personID(p Person, _ int) string {
	return p.Email
}

func statusGlyph(status string) string {
	switch strings.ToLower(status) {
	case "active":
		return "● active"
	case "pending":
		return "◐ pending"
	case "inactive":
		return "○ inactive"
	default:
		return status
	}
}

// NewGrid builds the demo's grid over the configured dataset.
func NewGrid(cfg *config.Config) *grid.Model[Person] {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return grid.New(personColumns()).
		WithRows(PeopleFromSeeds(cfg.People)).
		WithRowID(personID).
		WithSelectable(true).
		WithPageSize(cfg.PageSize).
		WithEmptyMessage("No people found")
}

// personColumns builds the grid column set for the dataset.
func personColumns() []grid.Column[Person] {
	return []grid.Column[Person]{
		{
			Key:      "name",
			Title:    "Name",
			Value:    func(p Person) any { return p.Name },
			Sortable: true,
			Width:    18,
		},
		{
			Key:       "age",
			Title:     "Age",
			Value:     func(p Person) any { return p.Age },
			Sortable:  true,
			Width:     5,
			Alignment: grid.AlignRight,
		},
		{
			Key:   "email",
			Title: "Email",
			Value: func(p Person) any { return p.Email },
			Width: 24,
		},
		{
			Key:      "city",
			Title:    "City",
			Value:    func(p Person) any { return p.City },
			Sortable: true,
			Width:    10,
		},
		{
			Key:   "status",
			Title: "Status",
			Width: 10,
			Render: func(p Person, _ int) string {
				return statusGlyph(p.Status)
			},
		},
	}
}

func taken(email string, existing []Person) bool {
	for _, p := range existing {
		if p.Email == email {
			return true
		}
	}
	return false
}
