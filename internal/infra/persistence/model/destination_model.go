package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DestinationModel mirrors the 'destinations' catalog table.
type DestinationModel struct {
	ID                      uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                    string         `gorm:"type:varchar(255);not null"`
	Country                 string         `gorm:"type:varchar(100);not null"`
	City                    *string        `gorm:"type:varchar(100)"`
	Region                  *string        `gorm:"type:varchar(100)"`
	Latitude                *float64       `gorm:"type:decimal(10,8)"`
	Longitude               *float64       `gorm:"type:decimal(11,8)"`
	Description             *string        `gorm:"type:text"`
	BestTimeToVisit         *string        `gorm:"type:varchar(50)"`
	AverageTemperatureRange *string        `gorm:"type:varchar(50)"`
	PopularActivities       datatypes.JSON `gorm:"type:jsonb"`
	EstimatedDailyBudget    datatypes.JSON `gorm:"type:jsonb"`
	Tags                    datatypes.JSON `gorm:"type:jsonb"`
	IsPopular               bool           `gorm:"not null;default:false"`
	PopularityScore         int            `gorm:"not null;default:0"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (DestinationModel) TableName() string {
	return "destinations"
}
