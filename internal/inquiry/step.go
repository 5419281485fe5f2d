package inquiry

import "fmt"

// Step is the visible stage of the contact wizard.
type Step int

const (
	StepProjectType Step = iota + 1 // 1: choose a project type
	StepBudget                      // 2: choose a budget range
	StepContact                     // 3: contact details and submit
)

// StepCount is the number of wizard stages.
const StepCount = 3

// String returns a short name used in logs.
func (s Step) String() string {
	switch s {
	case StepProjectType:
		return "project-type"
	case StepBudget:
		return "budget"
	case StepContact:
		return "contact"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Valid reports whether s is one of the three wizard stages.
func (s Step) Valid() bool {
	return s >= StepProjectType && s <= StepContact
}
