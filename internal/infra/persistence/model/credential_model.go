// Package model holds the GORM persistence models.
package model

import "time"

// CredentialModel mirrors the 'credentials' table.
type CredentialModel struct {
	Email          string `gorm:"type:varchar(255);primaryKey"`
	PasswordDigest string `gorm:"type:varchar(255);not null"`
	Name           string `gorm:"type:varchar(100)"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
