// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// AccountNameMinLength and AccountNameMaxLength bound a display name in characters.
	AccountNameMinLength = 2
	AccountNameMaxLength = 50
)

// Account is the locally owned user record. Display name and email are globally unique.
type Account struct {
	ID        uuid.UUID // Local user id, generated by the database.
	Name      string    // Display name, unique across all accounts.
	Email     string    // Contact email, unique across all accounts.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidName reports whether name fits the display name length bounds.
func ValidName(name string) bool {
	n := utf8.RuneCountInString(name)

	return n >= AccountNameMinLength && n <= AccountNameMaxLength
}
