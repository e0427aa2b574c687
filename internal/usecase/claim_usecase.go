package usecase

import (
	"context"

	"pindrop/internal/domain/entity"

	"github.com/google/uuid"
)

// ClaimUsecase drives the signing/submission protocol. Each method is an
// independently invokable, idempotent protocol step; the signing wait lives
// entirely on the client side, so an abandoned offer needs no cleanup.
type ClaimUsecase interface {
	// BuildClaimOffer constructs an unsigned transaction for the reward of a
	// consumed-but-unclaimed pin. When the wallet already trusts the reward
	// asset the offer comes back with RequiresSignature=false and an empty
	// envelope; the caller proceeds straight to SubmitClaim. Building twice
	// before any signature returns an equivalent transaction (the sequence
	// number may advance).
	BuildClaimOffer(ctx context.Context, userID, pinID uuid.UUID, walletAddress string) (*entity.ClaimOffer, error)

	// SubmitClaim broadcasts the claim to the ledger and, only on confirmed
	// settlement, marks the consumption record claimed. With a signed
	// envelope it submits the wallet's payload as-is; with an empty envelope
	// it runs the no-signature-needed path, building and distributor-signing
	// a payment (valid only when the wallet trusts the asset). A failure at
	// any stage before confirmation leaves claimed_at untouched.
	SubmitClaim(ctx context.Context, userID, pinID uuid.UUID, walletAddress, signedEnvelope string) (*entity.ClaimResult, error)

	// FinalizeClaim marks a consumption record claimed for an already
	// confirmed ledger transaction. Safe to call twice: the second call is a
	// benign no-op reported as AlreadyClaimed=true.
	FinalizeClaim(ctx context.Context, userID, consumptionID uuid.UUID, txID string) (*entity.ClaimResult, error)
}
