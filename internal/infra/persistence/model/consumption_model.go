package model

import (
	"time"

	"github.com/google/uuid"
)

// PinConsumptionModel is the GORM-specific struct for the 'pin_consumptions'
// table. The composite unique index on (pin_id, user_id) is the double
// collection guard.
type PinConsumptionModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PinID             uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_pin_consumptions_on_pin_user"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_pin_consumptions_on_pin_user;index:idx_pin_consumptions_on_user"`
	RewardAssetCode   string     `gorm:"type:varchar(12);not null"`
	RewardAssetIssuer string     `gorm:"type:varchar(56);not null"`
	CollectedAt       time.Time  `gorm:"not null"`
	ClaimedAt         *time.Time
	ClaimTxID         *string    `gorm:"type:varchar(64)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PinConsumptionModel) TableName() string {
	return "pin_consumptions"
}
