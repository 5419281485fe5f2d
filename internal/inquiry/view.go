package inquiry

import "github.com/gcloudgt/contacto/internal/catalog"

// Field identifiers on the contact step, in focus order.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Field describes one text input on the contact step.
type Field struct {
	ID          string
	Label       string
	Placeholder string
	Value       string
	Multiline   bool // takes newlines; enter does not advance
	Required    bool
}

// View is a render-ready description of one wizard state. It is derived by
// Describe and never mutated by renderers.
type View struct {
	Step        Step
	Progress    [StepCount]bool // Progress[i] is lit when step i+1 <= Step
	Eyebrow     string
	Title       string
	Subtitle    string
	Options     []catalog.Entry // step 1 and 2 only
	Selected    string          // id of the previously chosen option, if any
	Fields      []Field         // step 3 only
	BackLabel   string          // empty when there is no back action
	SubmitLabel string          // empty except on step 3
}

const (
	backLabel   = "← Volver"
	submitLabel = "Enviar mensaje"
)

// Describe maps a wizard state to its view. It has no side effects.
func Describe(step Step, data FormData) View {
	v := View{Step: step}
	for i := range v.Progress {
		v.Progress[i] = Step(i+1) <= step
	}

	switch step {
	case StepProjectType:
		v.Title = "¿Qué quieres crear?"
		v.Subtitle = "Selecciona el tipo de proyecto"
		v.Options = catalog.ProjectTypes()
		v.Selected = data.ProjectType

	case StepBudget:
		v.Title = "¿Cuál es tu presupuesto?"
		v.Subtitle = "Esto nos ayuda a proponerte la mejor solución"
		v.Options = catalog.BudgetRanges()
		v.Selected = data.Budget
		v.BackLabel = backLabel

	case StepContact:
		v.Eyebrow = "Último paso"
		v.Title = "¿Cómo te contactamos?"
		v.Subtitle = "Cuéntanos más sobre tu proyecto"
		v.Fields = []Field{
			{ID: FieldName, Label: "Tu nombre", Placeholder: "¿Cómo te llamas?", Value: data.Name, Required: true},
			{ID: FieldEmail, Label: "Email", Placeholder: "tu@email.com", Value: data.Email, Required: true},
			{
				ID:    FieldMessage,
				Label: "Cuéntanos tu idea",
				Placeholder: "¿Qué problema quieres resolver? ¿Qué te imaginas? " +
					"No te preocupes por los detalles técnicos, eso lo resolvemos juntos...",
				Value:     data.Message,
				Multiline: true,
				Required:  true,
			},
		}
		v.BackLabel = backLabel
		v.SubmitLabel = submitLabel
	}
	return v
}
