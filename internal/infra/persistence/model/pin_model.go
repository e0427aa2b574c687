package model

import (
	"time"

	"github.com/google/uuid"
)

// PinModel is the GORM-specific struct for the 'pins' table.
type PinModel struct {
	ID                       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	GroupID                  uuid.UUID `gorm:"type:uuid;not null;index:idx_pins_on_group"`
	Latitude                 float64   `gorm:"type:decimal(10,8);not null;index:idx_pins_on_coordinates"`
	Longitude                float64   `gorm:"type:decimal(11,8);not null;index:idx_pins_on_coordinates"`
	CollectionLimitRemaining int       `gorm:"not null;check:collection_limit_remaining >= 0"`
	AutoCollect              bool      `gorm:"not null;default:false"`
	Group                    *LocationGroupModel `gorm:"foreignKey:GroupID"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (PinModel) TableName() string {
	return "pins"
}
