// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationGroupModel is the GORM-specific struct for the 'location_groups' table.
type LocationGroupModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CreatorID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_location_groups_on_creator"`
	Title           string     `gorm:"type:varchar(255);not null"`
	Description     string     `gorm:"type:text;not null"`
	ImageURL        string     `gorm:"type:text;not null"`
	StartDate       time.Time  `gorm:"not null"`
	EndDate         time.Time  `gorm:"not null;index:idx_location_groups_on_end_date"`
	CollectionLimit int        `gorm:"not null"`
	AutoCollect     bool       `gorm:"not null;default:false"`
	Approved        bool       `gorm:"not null;default:false"`
	AssetID         *uuid.UUID `gorm:"type:uuid"`
	PageAssetCode   *string    `gorm:"type:varchar(64)"`
	RetiredAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationGroupModel) TableName() string {
	return "location_groups"
}
