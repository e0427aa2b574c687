package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pin represents a single geofenced collectible point on the map.
type Pin struct {
	ID                       uuid.UUID      `json:"id"`                         // The Global Unique Identifier (GUID) for the pin.
	GroupID                  uuid.UUID      `json:"group_id"`                   // The ID of the LocationGroup this pin belongs to.
	Latitude                 float64        `json:"latitude"`                   // The geographic latitude of the pin.
	Longitude                float64        `json:"longitude"`                  // The geographic longitude of the pin.
	CollectionLimitRemaining int            `json:"collection_limit_remaining"` // Remaining collections; monotonically non-increasing, never negative.
	AutoCollect              bool           `json:"auto_collect"`               // Per-pin override of the group's auto-collect flag.
	Group                    *LocationGroup `json:"group,omitempty"`            // Parent group, populated on reads that join it.
	CreatedAt                time.Time      `json:"created_at"`                 // Timestamp of when this record was created.
	UpdatedAt                time.Time      `json:"updated_at"`                 // Timestamp of the last modification.
}

// Collectible reports whether the pin can still be collected at the given
// instant. The remaining counter check here is advisory only; the
// authoritative check is the conditional decrement in the persistence layer.
func (p *Pin) Collectible(now time.Time) bool {
	if p.CollectionLimitRemaining <= 0 {
		return false
	}
	if p.Group == nil {
		return false
	}

	return p.Group.Active(now)
}
