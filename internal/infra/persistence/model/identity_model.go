package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table: one row per authority subject.
type IdentityModel struct {
	Subject   string    `gorm:"type:varchar(255);primaryKey;column:subject"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:identities_account_id_key"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}
