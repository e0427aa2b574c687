package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClaimState is the position of a claim in the signing/submission protocol.
// Each transition is an independently invokable HTTP step; nothing is
// persisted before a signature comes back, so an abandoned offer simply
// expires.
type ClaimState string

const (
	ClaimStateUnsigned          ClaimState = "unsigned"
	ClaimStateAwaitingSignature ClaimState = "awaiting_signature"
	ClaimStateSigned            ClaimState = "signed"
	ClaimStateSubmitted         ClaimState = "submitted"
	ClaimStateConfirmed         ClaimState = "confirmed"
	ClaimStateRejected          ClaimState = "rejected"
	ClaimStateSubmissionFailed  ClaimState = "submission_failed"
)

// ClaimOffer is a transient unsigned transaction handed to the external
// wallet signer. It is regenerated on demand and only meaningful until
// signed, superseded, or expired.
type ClaimOffer struct {
	ConsumptionID     uuid.UUID `json:"consumption_id"`     // Ties the offer back to the consumption record being claimed.
	PinID             uuid.UUID `json:"pin_id"`             // The pin whose reward is being claimed.
	UserID            uuid.UUID `json:"user_id"`            // The claiming user.
	Asset             Asset     `json:"asset"`              // The reward asset being transferred.
	Envelope          string    `json:"envelope"`           // Base64 unsigned transaction envelope; empty when no signature is needed.
	RequiresSignature bool      `json:"requires_signature"` // False when the wallet already trusts the asset.
	ExpiresAt         time.Time `json:"expires_at"`         // After this instant the client must rebuild the offer.
}

// ClaimResult reports a settled (or benignly already-settled) claim.
type ClaimResult struct {
	ConsumptionID  uuid.UUID `json:"consumption_id"`
	TxID           string    `json:"tx_id"`           // The ledger transaction id of the settlement.
	ClaimedAt      time.Time `json:"claimed_at"`      // When the consumption record was marked claimed.
	AlreadyClaimed bool      `json:"already_claimed"` // True when this call was an idempotent retry.
}
