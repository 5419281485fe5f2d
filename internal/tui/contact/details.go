package contact

import (
	"os"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/gcloudgt/contacto/internal/inquiry"
	"github.com/gcloudgt/contacto/internal/tui/theme"
)

const (
	charLimitName    = 120
	charLimitEmail   = 254
	charLimitMessage = 4000
	messageHeight    = 5
)

// DetailsStep holds the name, email, and message inputs of the last step.
type DetailsStep struct {
	fields  []inquiry.Field
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int // index into fields, -1 when blurred
	width   int
	tmpFile string
}

// NewDetailsStep creates the inputs described by fields, prefilled with
// their values. Nothing is focused until Focus is called.
func NewDetailsStep(fields []inquiry.Field) *DetailsStep {
	d := &DetailsStep{fields: fields, focus: -1, width: 60}
	d.name = newInput(charLimitName)
	d.email = newInput(charLimitEmail)
	d.message = newMessageArea()

	for _, f := range fields {
		switch f.ID {
		case inquiry.FieldName:
			d.name.Placeholder = f.Placeholder
			d.name.SetValue(f.Value)
		case inquiry.FieldEmail:
			d.email.Placeholder = f.Placeholder
			d.email.SetValue(f.Value)
		case inquiry.FieldMessage:
			d.message.Placeholder = f.Placeholder
			d.message.SetValue(f.Value)
		}
	}
	d.SetWidth(d.width)
	return d
}

func newInput(limit int) textinput.Model {
	t := theme.Current()
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = limit
	in.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	return in
}

func newMessageArea() textarea.Model {
	t := theme.Current()
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = charLimitMessage
	ta.SetHeight(messageHeight)

	styles := textarea.DefaultDarkStyles()
	styles.Cursor.Color = lipgloss.Color(t.Primary)
	styles.Cursor.Shape = tea.CursorBar
	styles.Cursor.Blink = true
	ta.SetStyles(styles)
	return ta
}

// SetWidth resizes every input to fit width.
func (d *DetailsStep) SetWidth(width int) {
	d.width = width
	inner := width - 4 // border + padding of the field box
	if inner < 10 {
		inner = 10
	}
	d.name.SetWidth(inner)
	d.email.SetWidth(inner)
	d.message.SetWidth(inner)
}

// Values returns the current name, email, and message.
func (d *DetailsStep) Values() (name, email, message string) {
	return d.name.Value(), d.email.Value(), d.message.Value()
}

// FocusedField returns the id of the focused field, or "" when blurred.
func (d *DetailsStep) FocusedField() string {
	if d.focus < 0 || d.focus >= len(d.fields) {
		return ""
	}
	return d.fields[d.focus].ID
}

func (d *DetailsStep) focusedMultiline() bool {
	return d.focus >= 0 && d.focus < len(d.fields) && d.fields[d.focus].Multiline
}

// Focus focuses the first field.
func (d *DetailsStep) Focus() tea.Cmd {
	return d.focusAt(0)
}

// FocusLast focuses the last field.
func (d *DetailsStep) FocusLast() tea.Cmd {
	return d.focusAt(len(d.fields) - 1)
}

// Blur removes focus from every input.
func (d *DetailsStep) Blur() {
	d.focus = -1
	d.name.Blur()
	d.email.Blur()
	d.message.Blur()
}

func (d *DetailsStep) focusAt(i int) tea.Cmd {
	d.Blur()
	if i < 0 || i >= len(d.fields) {
		return nil
	}
	d.focus = i
	switch d.fields[i].ID {
	case inquiry.FieldName:
		return d.name.Focus()
	case inquiry.FieldEmail:
		return d.email.Focus()
	case inquiry.FieldMessage:
		return d.message.Focus()
	}
	return nil
}

// Update handles focus movement and forwards input to the focused field.
// Moving past either end emits FocusExitMsg.
func (d *DetailsStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case MessageEditedMsg:
		d.message.SetValue(msg.Content)
		if d.tmpFile != "" {
			_ = os.Remove(d.tmpFile)
			d.tmpFile = ""
		}
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab":
			return d.move(1)
		case "shift+tab":
			return d.move(-1)
		case "enter":
			if !d.focusedMultiline() {
				return d.move(1)
			}
		case "ctrl+e":
			if d.focusedMultiline() {
				return d.openEditor()
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch d.FocusedField() {
	case inquiry.FieldName:
		d.name, cmd = d.name.Update(msg)
	case inquiry.FieldEmail:
		d.email, cmd = d.email.Update(msg)
	case inquiry.FieldMessage:
		d.message, cmd = d.message.Update(msg)
	}
	return cmd
}

func (d *DetailsStep) move(delta int) tea.Cmd {
	next := d.focus + delta
	if next < 0 || next >= len(d.fields) {
		d.Blur()
		return exitFocus(delta > 0)
	}
	return d.focusAt(next)
}

// openEditor launches $EDITOR on the message and reports the edited text.
func (d *DetailsStep) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "contacto_message_*.md")
	if err != nil {
		return nil
	}
	if _, err := tmpfile.WriteString(d.message.Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()
	d.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("contacto", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		d.tmpFile = ""
		return nil
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorResult(path, err)
	})
}

// editorResult reads back the edited message. The temp file is removed here
// when the edit is abandoned; otherwise on MessageEditedMsg.
func editorResult(path string, execErr error) tea.Msg {
	if execErr != nil {
		_ = os.Remove(path)
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		_ = os.Remove(path)
		return nil
	}
	return MessageEditedMsg{Content: string(content)}
}

// View renders each field as a label over a bordered box.
func (d *DetailsStep) View() string {
	t := theme.Current()
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)).Bold(true)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderMuted)).
		Padding(0, 1).
		Width(d.width)
	focusedBox := box.BorderForeground(lipgloss.Color(t.BorderFocused))

	sections := make([]string, 0, len(d.fields)*2)
	for i, f := range d.fields {
		style := box
		if i == d.focus {
			style = focusedBox
		}

		var input string
		switch f.ID {
		case inquiry.FieldName:
			input = d.name.View()
		case inquiry.FieldEmail:
			input = d.email.View()
		case inquiry.FieldMessage:
			input = d.message.View()
		}

		label := f.Label
		if f.Required {
			label += " *"
		}
		sections = append(sections, labelStyle.Render(label), style.Render(input))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
