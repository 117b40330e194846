package policy

import (
	"testing"

	"chess/internal/domain/entity"
	domainerrors "chess/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeSelf(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		caller  *entity.Account
		target  uuid.UUID
		wantErr error
	}{
		{name: "own account", caller: &entity.Account{ID: self}, target: self},
		{name: "someone else", caller: &entity.Account{ID: self}, target: other, wantErr: domainerrors.ErrForbidden},
		{name: "no caller", caller: nil, target: self, wantErr: domainerrors.ErrForbidden},
		{name: "nil ids never match", caller: &entity.Account{}, target: uuid.Nil, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeSelf(tt.caller, tt.target)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
