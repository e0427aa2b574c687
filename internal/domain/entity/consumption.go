package entity

import (
	"time"

	"github.com/google/uuid"
)

// PinConsumption records the fact that a specific user collected a specific
// pin. At most one record exists per (pin, user) pair.
type PinConsumption struct {
	ID                uuid.UUID  `json:"id"`                  // The Global Unique Identifier (GUID) for the consumption record.
	PinID             uuid.UUID  `json:"pin_id"`              // The ID of the collected pin.
	UserID            uuid.UUID  `json:"user_id"`             // The ID of the user who collected the pin.
	RewardAssetCode   string     `json:"reward_asset_code"`   // Reward asset code, snapshotted at collection time.
	RewardAssetIssuer string     `json:"reward_asset_issuer"` // Reward asset issuer, snapshotted at collection time.
	CollectedAt       time.Time  `json:"collected_at"`        // Timestamp of the collection.
	ClaimedAt         *time.Time `json:"claimed_at"`          // Set exactly once, only after a confirmed ledger settlement.
	ClaimTxID         *string    `json:"claim_tx_id"`         // The ledger transaction that settled the claim.
	CreatedAt         time.Time  `json:"created_at"`          // Timestamp of when this record was created.
	UpdatedAt         time.Time  `json:"updated_at"`          // Timestamp of the last modification.
}

// Claimed reports whether the reward for this consumption has been settled.
func (c *PinConsumption) Claimed() bool {
	return c.ClaimedAt != nil
}

// RewardAsset returns the reward snapshot taken at collection time.
func (c *PinConsumption) RewardAsset() Asset {
	return Asset{Code: c.RewardAssetCode, Issuer: c.RewardAssetIssuer}
}
