// Package ui defines the minimal contracts shared by all terminal widgets.
package ui

// Renderable is any component that can draw itself to a string.
type Renderable interface {
	View() string
}
