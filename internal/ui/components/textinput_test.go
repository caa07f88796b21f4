package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jbickler/termgrid/pkg/errors"
)

func typeRunes(t *testing.T, input *TextInput, s string) {
	t.Helper()
	for _, r := range s {
		input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestTextInputOnChange(t *testing.T) {
	t.Parallel()

	var changes []string
	input := NewTextInput("Name").WithOnChange(func(v string) { changes = append(changes, v) })
	input.Focus()

	typeRunes(t, input, "hi")
	assert.Equal(t, []string{"h", "hi"}, changes)

	// SetValue to the same value does not notify.
	input.SetValue("hi")
	assert.Len(t, changes, 2)

	input.SetValue("bye")
	assert.Equal(t, "bye", changes[len(changes)-1])
}

func TestTextInputClear(t *testing.T) {
	t.Parallel()

	var changes []string
	input := NewTextInput("Name").
		WithRequired(true).
		WithOnChange(func(v string) { changes = append(changes, v) })

	input.SetValue("")
	require.Error(t, input.Validate())
	require.NotEmpty(t, input.Err())

	input.SetValue("ada")
	input.Clear()
	assert.Empty(t, input.Value())
	assert.Empty(t, input.Err(), "clear resets the inline error")
	assert.Equal(t, "", changes[len(changes)-1], "clear notifies with the empty value")

	// Clearing an already-empty input still notifies.
	before := len(changes)
	input.Clear()
	assert.Len(t, changes, before+1)
	assert.Equal(t, "", changes[len(changes)-1])
}

func TestTextInputValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		required bool
		rule     string
		value    string
		errText  string
	}{
		{name: "required empty", required: true, value: "", errText: "Email is required"},
		{name: "required whitespace", required: true, value: "   ", errText: "Email is required"},
		{name: "bad email", rule: "email", value: "nope", errText: "Email is not a valid email address"},
		{name: "good email", rule: "email", value: "ada@example.com"},
		{name: "optional empty skips rule", rule: "email", value: ""},
		{name: "numeric rule", rule: "numeric", value: "abc", errText: "Email is not a valid number"},
		{name: "valid numeric", rule: "numeric", value: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := NewTextInput("Email").WithRequired(tt.required).WithRule(tt.rule)
			input.SetValue(tt.value)

			err := input.Validate()
			if tt.errText == "" {
				assert.NoError(t, err)
				assert.True(t, input.Valid())
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.errText, input.Err())

			var validationErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestTextInputViewStates(t *testing.T) {
	t.Parallel()

	input := NewTextInput("Email").
		WithRequired(true).
		WithRule("email").
		WithHelp("We never share this")

	out := input.View()
	assert.Contains(t, out, "Email *")
	assert.Contains(t, out, "We never share this")

	input.SetValue("nope")
	require.Error(t, input.Validate())
	out = input.View()
	assert.Contains(t, out, "✗ Email is not a valid email address")
	assert.NotContains(t, out, "We never share this", "error replaces the help line")

	input.Clear()
	assert.Contains(t, input.View(), "We never share this")
}

func TestTextInputFocus(t *testing.T) {
	t.Parallel()

	input := NewTextInput("Name")
	assert.False(t, input.Focused())

	input.Focus()
	assert.True(t, input.Focused())

	input.Blur()
	assert.False(t, input.Focused())
}
