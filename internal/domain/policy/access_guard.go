// Package policy holds authorization rules that do not depend on storage.
package policy

import (
	"chess/internal/domain/entity"
	domainerrors "chess/internal/domain/errors"

	"github.com/google/uuid"
)

// AuthorizeSelf allows an operation only when the caller owns the target account.
// A mismatch is always Forbidden, whether or not the target exists.
func AuthorizeSelf(caller *entity.Account, targetID uuid.UUID) error {
	if caller == nil || caller.ID == uuid.Nil || caller.ID != targetID {
		return domainerrors.ErrForbidden
	}

	return nil
}
