package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jbickler/termgrid/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with optional gaps.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack creates a new vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		align:         lipgloss.Left,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack and its children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	if len(views) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = lipgloss.JoinHorizontal(s.align, s.withGaps(views, strings.Repeat(" ", s.gap))...)
	} else {
		content = lipgloss.JoinVertical(s.align, s.withGaps(views, strings.Repeat("\n", s.gap))...)
	}

	style := s.ComputeStyle(ctx.Theme)
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}
	return style.Render(content)
}

func (s *Stack) withGaps(views []string, spacer string) []string {
	if s.gap <= 0 {
		return views
	}
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return result
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis alignment.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
