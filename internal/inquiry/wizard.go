// Package inquiry implements the contact form's state machine.
//
// A Wizard owns the collected FormData and the current Step. It is mutated
// only through its transition methods and is not safe for concurrent use;
// the TUI drives it from the Bubble Tea update loop.
package inquiry

import (
	"context"
	"errors"
	"fmt"

	"github.com/gcloudgt/contacto/internal/catalog"
	"github.com/gcloudgt/contacto/internal/logger"
)

var (
	// ErrWrongStep is returned when a transition is not allowed from the
	// current step.
	ErrWrongStep = errors.New("action not available on this step")
	// ErrUnknownOption is returned when a selection is not a catalog id.
	ErrUnknownOption = errors.New("unknown catalog option")
	// ErrSubmitting is returned while a previous submission is in flight.
	ErrSubmitting = errors.New("submission already in progress")
)

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Submitter delivers a validated form somewhere durable.
type Submitter interface {
	Submit(ctx context.Context, data FormData) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, data FormData) error

func (f SubmitterFunc) Submit(ctx context.Context, data FormData) error { return f(ctx, data) }

// Discard acknowledges every submission without storing it.
var Discard Submitter = SubmitterFunc(func(context.Context, FormData) error { return nil })

// Wizard is the (FormData, Step) pair plus the in-flight submission guard.
type Wizard struct {
	step       Step
	data       FormData
	submitting bool
	log        *logger.Logger
}

// New returns a wizard on the first step with an empty form.
func New() *Wizard {
	return &Wizard{
		step: StepProjectType,
		log:  logger.Named("inquiry"),
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Data returns a copy of the collected values.
func (w *Wizard) Data() FormData { return w.data }

// Submitting reports whether a submission is in flight.
func (w *Wizard) Submitting() bool { return w.submitting }

// View describes what should be rendered for the current state.
func (w *Wizard) View() View { return Describe(w.step, w.data) }

// SelectProjectType records a project type and advances to the budget step.
func (w *Wizard) SelectProjectType(id string) error {
	if err := w.expect(StepProjectType); err != nil {
		return err
	}
	if _, ok := catalog.ProjectType(id); !ok {
		return fmt.Errorf("%w: project type %q", ErrUnknownOption, id)
	}
	w.data.ProjectType = id
	w.moveTo(StepBudget)
	return nil
}

// SelectBudget records a budget range and advances to the contact step.
func (w *Wizard) SelectBudget(id string) error {
	if err := w.expect(StepBudget); err != nil {
		return err
	}
	if _, ok := catalog.Budget(id); !ok {
		return fmt.Errorf("%w: budget %q", ErrUnknownOption, id)
	}
	w.data.Budget = id
	w.moveTo(StepContact)
	return nil
}

// Back returns to the previous step without touching any field.
func (w *Wizard) Back() error {
	if w.submitting {
		return ErrSubmitting
	}
	switch w.step {
	case StepBudget:
		w.moveTo(StepProjectType)
	case StepContact:
		w.moveTo(StepBudget)
	default:
		return fmt.Errorf("%w: back from %s", ErrWrongStep, w.step)
	}
	return nil
}

// SetName sets the contact name. Only allowed on the contact step.
func (w *Wizard) SetName(v string) error {
	return w.setText(&w.data.Name, v)
}

// SetEmail sets the contact email. Only allowed on the contact step.
func (w *Wizard) SetEmail(v string) error {
	return w.setText(&w.data.Email, v)
}

// SetMessage sets the free-form message. Only allowed on the contact step.
func (w *Wizard) SetMessage(v string) error {
	return w.setText(&w.data.Message, v)
}

func (w *Wizard) setText(field *string, v string) error {
	if err := w.expect(StepContact); err != nil {
		return err
	}
	if w.submitting {
		return ErrSubmitting
	}
	*field = v
	return nil
}

// Begin validates the form and takes the submission lock. On success it
// returns the trimmed snapshot to hand to a Submitter; the caller must then
// call Complete or Abort. A rejected Begin changes nothing.
func (w *Wizard) Begin() (FormData, error) {
	if err := w.expect(StepContact); err != nil {
		return FormData{}, err
	}
	if w.submitting {
		return FormData{}, ErrSubmitting
	}
	if err := Validate(w.data); err != nil {
		w.log.Debug("submission rejected: %v", err)
		return FormData{}, err
	}
	w.submitting = true
	w.log.Debug("submission started (type=%s budget=%s)", w.data.ProjectType, w.data.Budget)
	return w.data.trimmed(), nil
}

// Complete releases the lock and resets the form and step after an accepted
// submission.
func (w *Wizard) Complete() {
	w.submitting = false
	w.Reset()
	w.log.Info("submission accepted")
}

// Abort releases the lock after a failed delivery, keeping every value so
// the user can retry.
func (w *Wizard) Abort(cause error) {
	w.submitting = false
	w.log.Warn("submission failed: %v", cause)
}

// Reset clears the form and returns to the first step.
func (w *Wizard) Reset() {
	w.data = FormData{}
	w.moveTo(StepProjectType)
}

// Submit runs a whole submission synchronously: Begin, deliver through s,
// then Complete and notify n, or Abort and return the delivery error.
func (w *Wizard) Submit(ctx context.Context, s Submitter, n Notifier) error {
	data, err := w.Begin()
	if err != nil {
		return err
	}
	if err := s.Submit(ctx, data); err != nil {
		w.Abort(err)
		return fmt.Errorf("delivering inquiry: %w", err)
	}
	w.Complete()
	if n != nil {
		n.Notify(SuccessMessage)
	}
	return nil
}

func (w *Wizard) expect(step Step) error {
	if w.step != step {
		return fmt.Errorf("%w: on %s, need %s", ErrWrongStep, w.step, step)
	}
	return nil
}

func (w *Wizard) moveTo(step Step) {
	w.log.Debug("step %s -> %s", w.step, step)
	w.step = step
}
