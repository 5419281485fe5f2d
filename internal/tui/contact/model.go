// Package contact is the interactive contact form: a three-step wizard that
// collects a project type, a budget range, and contact details.
package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/gcloudgt/contacto/internal/config"
	"github.com/gcloudgt/contacto/internal/inquiry"
	"github.com/gcloudgt/contacto/internal/logger"
	"github.com/gcloudgt/contacto/internal/tui"
	"github.com/gcloudgt/contacto/internal/tui/theme"
	"github.com/gcloudgt/contacto/internal/tui/wizard"
)

// Modal layout constants
const (
	modalMaxWidth  = 84
	modalMinWidth  = 48
	modalPaddingX  = 3
	modalBorder    = 1
	screenMarginX  = 4
	submittingText = "Enviando..."
)

var log = logger.Named("tui")

// Model is the Bubble Tea model for the contact form.
type Model struct {
	wizard    *inquiry.Wizard
	submitter inquiry.Submitter
	ctx       context.Context

	email string
	phone string

	width     int
	height    int
	cancelled bool

	// Step components; only the one for the current step is non-nil.
	options *OptionGrid
	details *DetailsStep

	buttonBar     *wizard.ButtonBar
	buttonFocused bool

	spinner   *tui.Spinner
	toast     *tui.Toast
	formErr   string // inline validation message under the fields
	submitErr error  // delivery failure, shows the retry modal
}

// New creates the form model. A nil submitter acknowledges without storing.
func New(ctx context.Context, cfg *config.Config, submitter inquiry.Submitter) *Model {
	if submitter == nil {
		submitter = inquiry.Discard
	}
	if cfg == nil {
		cfg = config.Default()
	}
	m := &Model{
		wizard:    inquiry.New(),
		submitter: submitter,
		ctx:       ctx,
		email:     cfg.ContactEmail,
		phone:     cfg.ContactPhone,
		spinner:   tui.NewDefaultSpinner(submittingText),
		toast:     tui.NewToast(time.Duration(cfg.ToastSeconds) * time.Second),
	}
	m.enterStep()
	return m
}

// Run opens the form full screen and blocks until the user leaves it.
func Run(ctx context.Context, cfg *config.Config, submitter inquiry.Submitter) error {
	m := New(ctx, cfg, submitter)
	p := tea.NewProgram(m, tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("contact form failed: %w", err)
	}
	if fm, ok := finalModel.(*Model); ok && fm.Cancelled() {
		log.Debug("contact form closed by user")
	}
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Wizard exposes the underlying state machine.
func (m *Model) Wizard() *inquiry.Wizard { return m.wizard }

// Cancelled reports whether the user closed the form.
func (m *Model) Cancelled() bool { return m.cancelled }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}

		// Retry modal takes every key while visible.
		if m.submitErr != nil {
			switch msg.String() {
			case "y", "Y":
				m.submitErr = nil
				return m.submit()
			case "n", "N", "esc":
				m.submitErr = nil
			}
			return m, nil
		}

		// Input is locked while a submission is in flight.
		if m.wizard.Submitting() {
			return m, nil
		}

		if m.buttonFocused && m.buttonBar != nil {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					return m, m.focusContentFirst()
				}
				return m, nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					return m, m.focusContentLast()
				}
				return m, nil
			case "enter", "space", " ":
				return m.activateButton(m.buttonBar.FocusedButton())
			}
		}

		switch msg.String() {
		case "esc":
			if m.wizard.Step() == inquiry.StepProjectType {
				m.cancelled = true
				return m, tea.Quit
			}
			return m.goBack()
		case "ctrl+s":
			if m.wizard.Step() == inquiry.StepContact {
				return m.submit()
			}
		}
		if m.buttonFocused {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case OptionChosenMsg:
		return m.choose(msg.ID)

	case FocusExitMsg:
		if m.buttonBar == nil {
			if m.options != nil {
				m.options.wrap(msg.Forward)
			}
			return m, nil
		}
		m.buttonFocused = true
		m.blurContent()
		if msg.Forward {
			m.buttonBar.FocusFirst()
		} else {
			m.buttonBar.FocusLast()
		}
		return m, nil

	case SubmitResultMsg:
		return m.finishSubmit(msg.Err)

	case tui.ToastDismissMsg:
		return m, m.toast.Update(msg)

	case spinner.TickMsg:
		if m.wizard.Submitting() {
			return m, m.spinner.Update(msg)
		}
		return m, nil
	}

	return m.updateCurrentStep(msg)
}

func (m *Model) updateCurrentStep(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch {
	case m.options != nil:
		return m, m.options.Update(msg)
	case m.details != nil:
		cmd := m.details.Update(msg)
		m.syncDetails()
		return m, cmd
	}
	return m, nil
}

// syncDetails copies the input values into the form state.
func (m *Model) syncDetails() {
	name, email, message := m.details.Values()
	data := m.wizard.Data()
	if name == data.Name && email == data.Email && message == data.Message {
		return
	}
	for _, err := range []error{
		m.wizard.SetName(name),
		m.wizard.SetEmail(email),
		m.wizard.SetMessage(message),
	} {
		if err != nil {
			log.Debug("ignoring field update: %v", err)
			return
		}
	}
	m.formErr = ""
}

func (m *Model) choose(id string) (tea.Model, tea.Cmd) {
	var err error
	switch m.wizard.Step() {
	case inquiry.StepProjectType:
		err = m.wizard.SelectProjectType(id)
	case inquiry.StepBudget:
		err = m.wizard.SelectBudget(id)
	default:
		err = fmt.Errorf("%w: option %q", inquiry.ErrWrongStep, id)
	}
	if err != nil {
		log.Warn("selection rejected: %v", err)
		return m, nil
	}
	return m, m.enterStep()
}

func (m *Model) goBack() (tea.Model, tea.Cmd) {
	if err := m.wizard.Back(); err != nil {
		log.Debug("back ignored: %v", err)
		return m, nil
	}
	return m, m.enterStep()
}

// submit validates and, when the form is complete, starts delivery.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	data, err := m.wizard.Begin()
	switch {
	case errors.Is(err, inquiry.ErrSubmitting), errors.Is(err, inquiry.ErrWrongStep):
		return m, nil
	case err != nil:
		m.formErr = "✗ " + err.Error()
		return m, nil
	}

	m.formErr = ""
	if m.buttonBar != nil {
		m.buttonBar.SetEnabled(wizard.ButtonSubmit, false)
	}
	return m, tea.Batch(m.spinner.Tick(), m.deliver(data))
}

// deliver hands the snapshot to the submitter off the update loop.
func (m *Model) deliver(data inquiry.FormData) tea.Cmd {
	ctx, s := m.ctx, m.submitter
	return func() tea.Msg {
		return SubmitResultMsg{Err: s.Submit(ctx, data)}
	}
}

func (m *Model) finishSubmit(err error) (tea.Model, tea.Cmd) {
	if !m.wizard.Submitting() {
		return m, nil
	}
	if err != nil {
		m.wizard.Abort(err)
		m.submitErr = err
		if m.buttonBar != nil {
			m.buttonBar.SetEnabled(wizard.ButtonSubmit, true)
		}
		return m, nil
	}

	m.wizard.Complete()
	focus := m.enterStep()
	return m, tea.Batch(focus, m.toast.Show(inquiry.SuccessMessage, tui.ToastSuccess))
}

// enterStep rebuilds the step components from the wizard's view.
func (m *Model) enterStep() tea.Cmd {
	v := m.wizard.View()
	m.options = nil
	m.details = nil
	m.buttonBar = nil
	m.buttonFocused = false
	m.formErr = ""

	var buttons []wizard.Button
	if v.BackLabel != "" {
		buttons = append(buttons, wizard.Button{ID: wizard.ButtonBack, Label: v.BackLabel})
	}
	if v.SubmitLabel != "" {
		buttons = append(buttons, wizard.Button{ID: wizard.ButtonSubmit, Label: v.SubmitLabel})
	}
	if len(buttons) > 0 {
		m.buttonBar = wizard.NewButtonBar(buttons...)
	}

	var cmd tea.Cmd
	if len(v.Options) > 0 {
		m.options = NewOptionGrid(v.Options, v.Selected)
	} else if len(v.Fields) > 0 {
		m.details = NewDetailsStep(v.Fields)
		cmd = m.details.Focus()
	}
	m.updateSizes()
	return cmd
}

func (m *Model) activateButton(id wizard.ButtonID) (tea.Model, tea.Cmd) {
	switch id {
	case wizard.ButtonBack:
		return m.goBack()
	case wizard.ButtonSubmit:
		return m.submit()
	}
	return m, nil
}

func (m *Model) focusContentFirst() tea.Cmd {
	m.buttonFocused = false
	m.buttonBar.Blur()
	switch {
	case m.options != nil:
		m.options.Focus()
	case m.details != nil:
		return m.details.Focus()
	}
	return nil
}

func (m *Model) focusContentLast() tea.Cmd {
	m.buttonFocused = false
	m.buttonBar.Blur()
	switch {
	case m.options != nil:
		m.options.Focus()
	case m.details != nil:
		return m.details.FocusLast()
	}
	return nil
}

func (m *Model) blurContent() {
	if m.options != nil {
		m.options.Blur()
	}
	if m.details != nil {
		m.details.Blur()
	}
}

// contentWidth is the usable width inside the modal.
func (m *Model) contentWidth() int {
	w := m.width - screenMarginX*2
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < modalMinWidth {
		w = modalMinWidth
	}
	return w - modalPaddingX*2 - modalBorder*2
}

func (m *Model) updateSizes() {
	w := m.contentWidth()
	if m.options != nil {
		m.options.SetWidth(w)
	}
	if m.details != nil {
		m.details.SetWidth(w)
	}
	if m.buttonBar != nil {
		m.buttonBar.SetWidth(w)
	}
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(m.render()).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// render lays out the whole screen; the last row is reserved for the toast.
func (m *Model) render() string {
	var body string
	if m.submitErr != nil {
		body = m.renderRetryModal()
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center,
			renderHero(),
			"",
			renderPills(m.email, m.phone),
			"",
			m.renderForm(),
			"",
			renderTrustNote(),
		)
	}

	bodyHeight := m.height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	screen := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	return screen + "\n" + m.toast.View(m.width, 1)
}

// renderForm renders the current step inside the form card.
func (m *Model) renderForm() string {
	t := theme.Current()
	s := t.S()
	v := m.wizard.View()
	w := m.contentWidth()

	center := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)
	sections := []string{center.Render(renderProgress(v.Progress)), ""}

	if v.Eyebrow != "" {
		sections = append(sections, center.Render(s.Eyebrow.Render(v.Eyebrow)))
	}
	sections = append(sections,
		center.Render(s.Title.Render(v.Title)),
		center.Render(s.Subtitle.Render(v.Subtitle)),
		"",
	)

	switch {
	case m.options != nil:
		sections = append(sections, m.options.View())
	case m.details != nil:
		sections = append(sections, m.details.View())
	}

	if m.formErr != "" {
		sections = append(sections, s.Error.Render(m.formErr))
	}

	if m.buttonBar != nil {
		sections = append(sections, "", m.buttonBar.Render())
	}

	sections = append(sections, "", center.Render(m.renderHints()))

	return s.Modal.Width(w + modalPaddingX*2 + modalBorder*2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m *Model) renderHints() string {
	if m.wizard.Submitting() {
		return m.spinner.View()
	}
	switch m.wizard.Step() {
	case inquiry.StepProjectType:
		return wizard.HintBar("←→↑↓", "elegir", "enter", "seleccionar", "esc", "salir")
	case inquiry.StepBudget:
		return wizard.HintBar("←→↑↓", "elegir", "enter", "seleccionar", "tab", "botones", "esc", "volver")
	default:
		return wizard.HintBar("tab", "siguiente", "ctrl+e", "editor", "ctrl+s", "enviar", "esc", "volver")
	}
}

func (m *Model) renderRetryModal() string {
	t := theme.Current()

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Error)).
		Render("⚠ No se pudo enviar")
	message := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		Width(56).
		Render(m.submitErr.Error())
	hint := wizard.HintBar("y", "reintentar", "n/esc", "cancelar")

	return lipgloss.NewStyle().
		Width(64).
		Padding(1, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Error)).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", message, "", hint))
}
