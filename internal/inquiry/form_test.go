package inquiry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := FormData{Name: "Ana", Email: "ana@x.com", ProjectType: "web", Budget: "starter", Message: "Hola"}

	tests := []struct {
		name        string
		mutate      func(*FormData)
		wantMissing []string
		wantInvalid []string
	}{
		{name: "complete form", mutate: func(*FormData) {}},
		{
			name:        "missing name",
			mutate:      func(f *FormData) { f.Name = "" },
			wantMissing: []string{"nombre"},
		},
		{
			name:        "whitespace only counts as empty",
			mutate:      func(f *FormData) { f.Message = "   \n" },
			wantMissing: []string{"mensaje"},
		},
		{
			name:        "several missing in form order",
			mutate:      func(f *FormData) { f.Name, f.Email, f.Message = "", "", "" },
			wantMissing: []string{"nombre", "email", "mensaje"},
		},
		{
			name:        "malformed email",
			mutate:      func(f *FormData) { f.Email = "ana-at-x" },
			wantInvalid: []string{"email"},
		},
		{name: "dotless domain accepted", mutate: func(f *FormData) { f.Email = "a@localhost" }},
		{name: "plus addressing accepted", mutate: func(f *FormData) { f.Email = "ana+web@x.com.gt" }},
		{
			name:        "space inside email",
			mutate:      func(f *FormData) { f.Email = "ana @x.com" },
			wantInvalid: []string{"email"},
		},
		{
			name:        "domain ending in dot",
			mutate:      func(f *FormData) { f.Email = "ana@x." },
			wantInvalid: []string{"email"},
		},
		{
			name:        "budget outside catalog",
			mutate:      func(f *FormData) { f.Budget = "unlimited" },
			wantInvalid: []string{"presupuesto"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := valid
			tt.mutate(&data)

			err := Validate(data)
			if tt.wantMissing == nil && tt.wantInvalid == nil {
				require.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.wantMissing, ve.Missing)
			require.Equal(t, tt.wantInvalid, ve.Invalid)
			require.True(t, IsValidationError(err))
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Missing: []string{"nombre", "email"}, Invalid: []string{"email"}}
	require.Equal(t, "completa: nombre, email; email inválido", err.Error())
}
