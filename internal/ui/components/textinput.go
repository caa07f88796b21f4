package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/jbickler/termgrid/pkg/errors"
)

// TextInput is a labelled, validated text entry widget. It fires its
// OnChange callback synchronously on every value change and renders an
// inline error with an invalid-state border when validation fails.
type TextInput struct {
	BaseComponent
	input    textinput.Model
	label    string
	help     string
	required bool
	rule     string
	errText  string
	onChange func(string)
	width    int
}

// NewTextInput creates a text input with the given label.
func NewTextInput(label string) *TextInput {
	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 32

	return &TextInput{
		BaseComponent: NewBaseComponent(),
		input:         ti,
		label:         label,
	}
}

// WithPlaceholder sets the placeholder text.
func (t *TextInput) WithPlaceholder(placeholder string) *TextInput {
	t.input.Placeholder = placeholder
	return t
}

// WithHelp sets the help line shown under the input when it is valid.
func (t *TextInput) WithHelp(help string) *TextInput {
	t.help = help
	return t
}

// WithRequired marks the field as required.
func (t *TextInput) WithRequired(required bool) *TextInput {
	t.required = required
	return t
}

// WithRule sets a validator/v10 rule tag checked by Validate, for
// example "email" or "numeric".
func (t *TextInput) WithRule(rule string) *TextInput {
	t.rule = rule
	return t
}

// WithWidth sets the width of the entry area in cells.
func (t *TextInput) WithWidth(width int) *TextInput {
	t.width = width
	if width > 4 {
		t.input.Width = width - 4
	}
	return t
}

// WithOnChange registers the change callback.
func (t *TextInput) WithOnChange(fn func(value string)) *TextInput {
	t.onChange = fn
	return t
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused reports whether the input has keyboard focus.
func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

// Value returns the current value.
func (t *TextInput) Value() string {
	return t.input.Value()
}

// SetValue replaces the current value and notifies the change callback.
func (t *TextInput) SetValue(value string) {
	if t.input.Value() == value {
		return
	}
	t.input.SetValue(value)
	t.notify()
}

// Clear resets the value to empty and notifies the change callback,
// even when the value was already empty. This is a direct state
// mutation; no synthetic input event is involved.
func (t *TextInput) Clear() {
	t.input.SetValue("")
	t.errText = ""
	t.notify()
}

// Label returns the input's label.
func (t *TextInput) Label() string {
	return t.label
}

// Err returns the current inline error text, empty when valid.
func (t *TextInput) Err() string {
	return t.errText
}

// Valid reports whether the last Validate call passed.
func (t *TextInput) Valid() bool {
	return t.errText == ""
}

// Validate applies the required flag and rule tag to the current value.
// The result is cached for rendering until the next Validate or Clear.
func (t *TextInput) Validate() error {
	value := strings.TrimSpace(t.input.Value())

	if t.required && value == "" {
		t.errText = fmt.Sprintf("%s is required", t.label)
		return apperrors.NewValidationError(t.label, "value is required", nil)
	}

	if t.rule != "" && value != "" {
		if err := checkRule(value, t.rule); err != nil {
			t.errText = fmt.Sprintf("%s is not a valid %s", t.label, ruleNoun(t.rule))
			return apperrors.NewValidationError(t.label, t.errText, err)
		}
	}

	t.errText = ""
	return nil
}

// Update handles bubbletea messages, forwarding them to the wrapped
// textinput and firing OnChange when the value changed.
func (t *TextInput) Update(msg tea.Msg) tea.Cmd {
	before := t.input.Value()

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	if t.input.Value() != before {
		t.notify()
	}
	return cmd
}

func (t *TextInput) notify() {
	if t.onChange != nil {
		t.onChange(t.input.Value())
	}
}

// View renders the input with the default theme.
func (t *TextInput) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, entry box, and error or help line.
func (t *TextInput) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	label := t.label
	if t.required {
		label += " *"
	}
	labelLine := theme.Typography.Label.Render(label)

	state := InputStateDefault
	switch {
	case t.errText != "":
		state = InputStateInvalid
	case t.input.Focused():
		state = InputStateFocus
	}

	box := theme.Input.ForState(state)
	if t.width > 0 {
		box = box.Width(t.width)
	}
	inputLine := box.Render(t.input.View())

	lines := []string{labelLine, inputLine}
	switch {
	case t.errText != "":
		lines = append(lines, ApplyStyles(lipgloss.NewStyle(), theme, Foreground(PaletteDanger)).Render("✗ "+t.errText))
	case t.help != "":
		lines = append(lines, theme.Typography.Muted.Render(t.help))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func ruleNoun(rule string) string {
	switch rule {
	case "email":
		return "email address"
	case "numeric", "number":
		return "number"
	case "url":
		return "URL"
	default:
		return "value"
	}
}
