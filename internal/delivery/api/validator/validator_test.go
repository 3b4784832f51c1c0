package validator

import (
	"testing"

	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Name      string  `json:"name" validate:"required,personname"`
	Phone     string  `json:"phone" validate:"required,phone"`
	BirthDate string  `json:"birthDate" validate:"required,birthdate"`
	Nickname  *string `json:"nickname,omitempty" validate:"omitempty,personname"`
}

type titled struct {
	Title string `json:"title" validate:"required,notblank,max=10"`
}

func TestValidate_NotBlank(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&titled{Title: " Café "}))

	for _, title := range []string{"   ", "\t\n"} {
		err := v.Validate(&titled{Title: title})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "title (notblank)", appErr.Details())
	}
}

func TestValidate(t *testing.T) {
	v := New()
	bad := "R2D2"

	tests := []struct {
		name    string
		input   form
		invalid []string
	}{
		{
			name:  "accented names and formatted phone",
			input: form{Name: "María José Núñez", Phone: "+54 9 11 5555-1234", BirthDate: "1990-04-12"},
		},
		{
			name:    "digits in name",
			input:   form{Name: "Juan 2", Phone: "1155551234", BirthDate: "1990-04-12"},
			invalid: []string{"name (personname)"},
		},
		{
			name:    "blank name",
			input:   form{Name: "   ", Phone: "1155551234", BirthDate: "1990-04-12"},
			invalid: []string{"name (personname)"},
		},
		{
			name:    "short phone",
			input:   form{Name: "Ana", Phone: "12345", BirthDate: "1990-04-12"},
			invalid: []string{"phone (phone)"},
		},
		{
			name:    "future birth date",
			input:   form{Name: "Ana", Phone: "1155551234", BirthDate: "2999-01-01"},
			invalid: []string{"birthDate (birthdate)"},
		},
		{
			name:    "wrong date layout",
			input:   form{Name: "Ana", Phone: "1155551234", BirthDate: "12/04/1990"},
			invalid: []string{"birthDate (birthdate)"},
		},
		{
			name:    "optional field present and invalid",
			input:   form{Name: "Ana", Phone: "1155551234", BirthDate: "1990-04-12", Nickname: &bad},
			invalid: []string{"nickname (personname)"},
		},
		{
			name:    "every required field missing",
			input:   form{},
			invalid: []string{"name (required)", "phone (required)", "birthDate (required)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if len(tt.invalid) == 0 {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			for _, field := range tt.invalid {
				assert.Contains(t, appErr.Details(), field)
			}
		})
	}
}
