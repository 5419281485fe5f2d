// Package catalog holds the fixed option lists offered by the contact form.
//
// Both catalogs are immutable and ordered; order only affects layout.
package catalog

import "fmt"

// Kind identifies one of the two catalogs.
type Kind string

const (
	KindProjectType Kind = "project_types"
	KindBudget      Kind = "budgets"
)

// Entry is a selectable option. Project types carry an Icon, budget ranges a
// Description.
type Entry struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

var projectTypes = []Entry{
	{ID: "web", Label: "Página Web", Icon: "🌐"},
	{ID: "ecommerce", Label: "E-commerce", Icon: "🛒"},
	{ID: "app", Label: "Aplicación Web", Icon: "📱"},
	{ID: "redesign", Label: "Rediseño", Icon: "✨"},
}

var budgetRanges = []Entry{
	{ID: "starter", Label: "Q5,000 - Q15,000", Description: "Proyecto inicial"},
	{ID: "growth", Label: "Q15,000 - Q40,000", Description: "Negocio en crecimiento"},
	{ID: "enterprise", Label: "Q40,000+", Description: "Solución empresarial"},
	{ID: "talk", Label: "Conversemos", Description: "No estoy seguro"},
}

// ProjectTypes returns the project-type catalog in display order.
// The returned slice is a copy.
func ProjectTypes() []Entry {
	return append([]Entry(nil), projectTypes...)
}

// BudgetRanges returns the budget catalog in display order.
// The returned slice is a copy.
func BudgetRanges() []Entry {
	return append([]Entry(nil), budgetRanges...)
}

// List returns the catalog for kind.
func List(kind Kind) ([]Entry, error) {
	switch kind {
	case KindProjectType:
		return ProjectTypes(), nil
	case KindBudget:
		return BudgetRanges(), nil
	}
	return nil, fmt.Errorf("unknown catalog %q", kind)
}

// ProjectType looks up a project type by identifier.
func ProjectType(id string) (Entry, bool) {
	return find(projectTypes, id)
}

// Budget looks up a budget range by identifier.
func Budget(id string) (Entry, bool) {
	return find(budgetRanges, id)
}

// IDs returns the identifiers of entries, in order.
func IDs(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func find(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
