package components

import (
	"github.com/jbickler/termgrid/internal/ui"
)

// Panel is a bordered container for grouping related content into sections.
type Panel struct {
	BaseComponent
	children []ui.Renderable
	title    string
	border   BorderVariant
	width    int
}

// NewPanel creates a new panel wrapping the given children.
func NewPanel(children ...ui.Renderable) *Panel {
	return &Panel{
		BaseComponent: NewBaseComponent(),
		children:      children,
		border:        BorderVariantRounded,
	}
}

// View renders the panel with the default theme.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the panel with the given theme context.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	inner := make([]ui.Renderable, 0, len(p.children)+2)
	if p.title != "" {
		inner = append(inner, TitleText(p.title), NewDivider().WithWidth(p.innerWidth()))
	}
	inner = append(inner, p.children...)

	content := VStack(inner...).ViewWithContext(ctx)

	style := ApplyStyles(
		p.ComputeStyle(ctx.Theme),
		ctx.Theme,
		Border(p.border),
		BorderForeground(PaletteNeutral),
		PaddingX(SpacingSizeExtraSmall),
	)
	if p.width > 0 {
		style = style.Width(p.width)
	}
	return style.Render(content)
}

func (p *Panel) innerWidth() int {
	if p.width > 2 {
		// Account for border and horizontal padding.
		return p.width - 4
	}
	return 0
}

// WithTitle sets the panel's title line.
func (p *Panel) WithTitle(title string) *Panel {
	p.title = title
	return p
}

// WithBorder sets the panel's border variant.
func (p *Panel) WithBorder(variant BorderVariant) *Panel {
	p.border = variant
	return p
}

// WithWidth fixes the panel's outer width.
func (p *Panel) WithWidth(width int) *Panel {
	p.width = width
	return p
}

// WithAppliers applies theme-based style modifiers.
func (p *Panel) WithAppliers(appliers ...StyleFunc) *Panel {
	p.AddAppliers(appliers...)
	return p
}

// Add appends children to the panel.
func (p *Panel) Add(children ...ui.Renderable) *Panel {
	p.children = append(p.children, children...)
	return p
}
