package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=50"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	short := "x"
	bad := "not-an-email"
	ok := "alice"

	assert.NoError(t, v.Validate(&sample{}))
	assert.NoError(t, v.Validate(&sample{Name: &ok}))

	err := v.Validate(&sample{Name: &short, Email: &bad})
	assert.Error(t, err)
	assert.Equal(t, map[string]string{"name": "min=2", "email": "email"}, Details(err))
}

func TestDetails_NonValidationError(t *testing.T) {
	assert.Nil(t, Details(errors.New("boom")))
}
