package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The subject column stores the
// identity-provider subject and is the upsert key on sign-in.
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CognitoUserID     string    `gorm:"column:cognito_user_id;type:varchar(255);unique;not null"`
	Email             string    `gorm:"type:varchar(255);unique;not null"`
	Username          string    `gorm:"type:varchar(100);unique;not null"`
	FirstName         *string   `gorm:"type:varchar(100)"`
	LastName          *string   `gorm:"type:varchar(100)"`
	PreferredCurrency string    `gorm:"type:varchar(3);default:USD"`
	HomeCountry       *string   `gorm:"type:varchar(100)"`
	PreferredLanguage string    `gorm:"type:varchar(10);default:en"`
	IsActive          bool      `gorm:"not null;default:true"`
	LastLoginAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
