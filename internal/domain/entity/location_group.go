// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationGroup represents a creator campaign that owns one or more
// collectible pins and a reward definition.
type LocationGroup struct {
	ID              uuid.UUID  `json:"id"`               // The Global Unique Identifier (GUID) for the group.
	CreatorID       uuid.UUID  `json:"creator_id"`       // The ID of the creator who owns this campaign.
	Title           string     `json:"title"`            // Campaign title shown on the map UI.
	Description     string     `json:"description"`      // Campaign description.
	ImageURL        string     `json:"image_url"`        // Marker/cover image URL.
	StartDate       time.Time  `json:"start_date"`       // Beginning of the validity window.
	EndDate         time.Time  `json:"end_date"`         // End of the validity window.
	CollectionLimit int        `json:"collection_limit"` // Per-pin collection limit applied to member pins.
	AutoCollect     bool       `json:"auto_collect"`     // Whether collecting immediately chains into the claim flow.
	Approved        bool       `json:"approved"`         // Set by admin approval; unapproved groups are not collectible.
	AssetID         *uuid.UUID `json:"asset_id"`         // Optional marketplace asset linked as the reward.
	PageAssetCode   *string    `json:"page_asset_code"`  // Optional creator page-asset code linked as the reward.
	RetiredAt       *time.Time `json:"retired_at"`       // Set when the sweeper soft-retires an expired group.
	CreatedAt       time.Time  `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt       time.Time  `json:"updated_at"`       // Timestamp of the last modification.
}

// Active reports whether the group is collectible at the given instant:
// approved, not retired, and inside its validity window.
func (g *LocationGroup) Active(now time.Time) bool {
	if !g.Approved || g.RetiredAt != nil {
		return false
	}
	if now.Before(g.StartDate) || now.After(g.EndDate) {
		return false
	}

	return true
}

// HasLinkedReward reports whether the group references a reward asset at all.
func (g *LocationGroup) HasLinkedReward() bool {
	return g.AssetID != nil || g.PageAssetCode != nil
}
