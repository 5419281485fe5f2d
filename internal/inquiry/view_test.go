package inquiry

import (
	"testing"

	"github.com/gcloudgt/contacto/internal/catalog"
	"github.com/stretchr/testify/require"
)

func TestDescribe_ProgressBars(t *testing.T) {
	t.Parallel()

	require.Equal(t, [StepCount]bool{true, false, false}, Describe(StepProjectType, FormData{}).Progress)
	require.Equal(t, [StepCount]bool{true, true, false}, Describe(StepBudget, FormData{}).Progress)
	require.Equal(t, [StepCount]bool{true, true, true}, Describe(StepContact, FormData{}).Progress)
}

func TestDescribe_Steps(t *testing.T) {
	t.Parallel()

	data := FormData{ProjectType: "app", Budget: "talk", Name: "Ana"}

	v1 := Describe(StepProjectType, data)
	require.Equal(t, "¿Qué quieres crear?", v1.Title)
	require.Equal(t, catalog.ProjectTypes(), v1.Options)
	require.Equal(t, "app", v1.Selected)
	require.Empty(t, v1.BackLabel)
	require.Empty(t, v1.Fields)

	v2 := Describe(StepBudget, data)
	require.Equal(t, catalog.BudgetRanges(), v2.Options)
	require.Equal(t, "talk", v2.Selected)
	require.Equal(t, "← Volver", v2.BackLabel)
	require.Empty(t, v2.SubmitLabel)

	v3 := Describe(StepContact, data)
	require.Equal(t, "Último paso", v3.Eyebrow)
	require.Nil(t, v3.Options)
	require.Len(t, v3.Fields, 3)
	require.Equal(t, []string{FieldName, FieldEmail, FieldMessage},
		[]string{v3.Fields[0].ID, v3.Fields[1].ID, v3.Fields[2].ID})
	require.Equal(t, "Ana", v3.Fields[0].Value)
	require.True(t, v3.Fields[2].Multiline)
	require.Equal(t, "Enviar mensaje", v3.SubmitLabel)
}

func TestDescribe_IsPure(t *testing.T) {
	t.Parallel()

	w := New()
	require.NoError(t, w.SelectProjectType("web"))
	before := w.Data()

	_ = w.View()
	_ = Describe(StepContact, before)

	require.Equal(t, before, w.Data())
	require.Equal(t, StepBudget, w.Step())
}
