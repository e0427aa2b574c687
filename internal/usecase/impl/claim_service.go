package impl

import (
	"context"
	"log/slog"
	"time"

	"pindrop/config"
	deliverycontext "pindrop/internal/delivery/context"
	"pindrop/internal/domain/entity"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/repository"
	"pindrop/internal/domain/service"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultBaseFee        = int64(100)
	defaultTrustlineLimit = "1000000"

	// Reward payments transfer exactly one unit of the asset.
	rewardAmount = "1"

	// Ledger result codes the protocol translates back to the client.
	resultCodeBadAuth = "tx_bad_auth"
	resultCodeBadSeq  = "tx_bad_seq"
)

// claimService implements the ClaimUsecase interface.
type claimService struct {
	consumptionRepo repository.ConsumptionRepository
	ledger          service.LedgerClient
	signer          service.TransactionSigner
	publisher       service.EventPublisher
	config          *config.Config
	logger          *slog.Logger
}

// NewClaimService is the constructor for claimService.
func NewClaimService(
	consumptionRepo repository.ConsumptionRepository,
	ledgerClient service.LedgerClient,
	signer service.TransactionSigner,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ClaimUsecase {
	if cfg.Ledger == nil {
		cfg.Ledger = &config.LedgerConfig{}
	}

	return &claimService{
		consumptionRepo: consumptionRepo,
		ledger:          ledgerClient,
		signer:          signer,
		publisher:       publisher,
		config:          cfg,
		logger:          logger,
	}
}

// BuildClaimOffer constructs an unsigned transaction for the reward of a
// consumed-but-unclaimed pin. Nothing is persisted here; an abandoned offer
// simply expires on the client side.
func (srv *claimService) BuildClaimOffer(ctx context.Context, userID, pinID uuid.UUID, walletAddress string) (*entity.ClaimOffer, error) {
	consumption, err := srv.loadUnclaimedConsumption(ctx, userID, pinID)
	if err != nil {
		return nil, err
	}

	asset := consumption.RewardAsset()

	trusts, err := srv.ledger.AccountTrustsAsset(ctx, walletAddress, asset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check wallet trustline")
	}

	offer := &entity.ClaimOffer{
		ConsumptionID:     consumption.ID,
		PinID:             pinID,
		UserID:            userID,
		Asset:             asset,
		RequiresSignature: !trusts,
		ExpiresAt:         time.Now().Add(srv.offerTTL()),
	}

	// A wallet that already trusts the asset needs no trustline change, so
	// there is nothing for it to sign. The client proceeds straight to
	// SubmitClaim with an empty envelope.
	if trusts {
		return offer, nil
	}

	account, err := srv.ledger.LoadAccount(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("wallet account does not exist on the ledger")
		}

		return nil, errors.Wrap(err, "failed to load wallet account")
	}

	tx := &service.UnsignedTransaction{
		Source:            walletAddress,
		Sequence:          account.Sequence + 1,
		Fee:               srv.baseFee() * 2,
		NetworkPassphrase: srv.config.Ledger.NetworkPassphrase,
		Memo:              consumption.ID.String(),
		Operations: []service.Operation{
			{
				Type:   service.OperationChangeTrust,
				Source: walletAddress,
				Asset:  asset,
				Limit:  srv.trustlineLimit(),
			},
			{
				Type:        service.OperationPayment,
				Source:      srv.config.Ledger.DistributorAccount,
				Destination: walletAddress,
				Asset:       asset,
				Amount:      rewardAmount,
			},
		},
	}

	envelope, err := tx.Envelope()
	if err != nil {
		return nil, err
	}
	offer.Envelope = envelope

	return offer, nil
}

// SubmitClaim broadcasts the claim to the ledger and, only on confirmed
// settlement, marks the consumption record claimed. A failure at any stage
// before confirmation leaves claimed_at untouched.
func (srv *claimService) SubmitClaim(ctx context.Context, userID, pinID uuid.UUID, walletAddress, signedEnvelope string) (*entity.ClaimResult, error) {
	consumption, err := srv.consumptionRepo.FindConsumptionByPinAndUser(ctx, pinID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrConsumptionNotFound) {
			return nil, domainerrors.ErrNotConsumed
		}

		return nil, errors.Wrap(err, "failed to load consumption record")
	}

	// An already settled claim is a benign retry, not an error.
	if consumption.Claimed() {
		return alreadyClaimedResult(consumption), nil
	}

	if consumption.RewardAssetCode == "" {
		return nil, domainerrors.ErrRewardUnresolvable
	}

	// An empty envelope selects the no-signature path: the server builds and
	// distributor-signs a plain payment. Valid only when the wallet already
	// trusts the asset.
	if signedEnvelope == "" {
		signedEnvelope, err = srv.buildDistributorPayment(ctx, consumption, walletAddress)
		if err != nil {
			return nil, err
		}
	}

	result, err := srv.ledger.SubmitTransaction(ctx, signedEnvelope)
	if err != nil {
		return nil, domainerrors.ErrSubmissionFailed.WrapMessage(err.Error())
	}
	if !result.Successful {
		return nil, translateResultCode(result.ResultCode)
	}

	return srv.settle(ctx, consumption, result.TxID)
}

// FinalizeClaim marks a consumption record claimed for an already confirmed
// ledger transaction. Safe to call twice.
func (srv *claimService) FinalizeClaim(ctx context.Context, userID, consumptionID uuid.UUID, txID string) (*entity.ClaimResult, error) {
	consumption, err := srv.consumptionRepo.FindConsumptionByID(ctx, consumptionID)
	if err != nil {
		if errors.Is(err, repository.ErrConsumptionNotFound) {
			return nil, domainerrors.ErrNotConsumed
		}

		return nil, errors.Wrap(err, "failed to load consumption record")
	}

	if consumption.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	if consumption.Claimed() {
		return alreadyClaimedResult(consumption), nil
	}

	// claimed_at is only ever set against a settlement the ledger confirms.
	tx, err := srv.ledger.GetTransaction(ctx, txID)
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			return nil, domainerrors.ErrNotConfirmed
		}

		return nil, errors.Wrap(err, "failed to look up ledger transaction")
	}
	if !tx.Successful {
		return nil, domainerrors.ErrNotConfirmed
	}
	// Reward transactions carry the consumption id as their memo. A confirmed
	// transaction with a different memo settles some other claim, not this one.
	if tx.Memo != consumption.ID.String() {
		return nil, domainerrors.ErrNotConfirmed
	}

	return srv.settle(ctx, consumption, txID)
}

// loadUnclaimedConsumption fetches the consumption record for a (pin, user)
// pair, rejecting missing, already claimed, and rewardless records.
func (srv *claimService) loadUnclaimedConsumption(ctx context.Context, userID, pinID uuid.UUID) (*entity.PinConsumption, error) {
	consumption, err := srv.consumptionRepo.FindConsumptionByPinAndUser(ctx, pinID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrConsumptionNotFound) {
			return nil, domainerrors.ErrNotConsumed
		}

		return nil, errors.Wrap(err, "failed to load consumption record")
	}

	if consumption.Claimed() {
		return nil, domainerrors.ErrAlreadyClaimed
	}

	if consumption.RewardAssetCode == "" {
		return nil, domainerrors.ErrRewardUnresolvable
	}

	return consumption, nil
}

// buildDistributorPayment builds and signs a payment from the distributor
// account for a wallet that already trusts the reward asset.
func (srv *claimService) buildDistributorPayment(ctx context.Context, consumption *entity.PinConsumption, walletAddress string) (string, error) {
	asset := consumption.RewardAsset()

	trusts, err := srv.ledger.AccountTrustsAsset(ctx, walletAddress, asset)
	if err != nil {
		return "", errors.Wrap(err, "failed to check wallet trustline")
	}
	if !trusts {
		return "", domainerrors.ErrValidationFailed.WrapMessage("wallet does not trust the reward asset, a signed envelope is required")
	}

	distributor, err := srv.ledger.LoadAccount(ctx, srv.config.Ledger.DistributorAccount)
	if err != nil {
		return "", errors.Wrap(err, "failed to load distributor account")
	}

	tx := &service.UnsignedTransaction{
		Source:            distributor.ID,
		Sequence:          distributor.Sequence + 1,
		Fee:               srv.baseFee(),
		NetworkPassphrase: srv.config.Ledger.NetworkPassphrase,
		Memo:              consumption.ID.String(),
		Operations: []service.Operation{
			{
				Type:        service.OperationPayment,
				Source:      distributor.ID,
				Destination: walletAddress,
				Asset:       asset,
				Amount:      rewardAmount,
			},
		},
	}

	return srv.signer.Sign(tx)
}

// settle marks the consumption claimed and emits the settlement event. The
// conditional update makes a concurrent double-settle collapse into a benign
// already-claimed result.
func (srv *claimService) settle(ctx context.Context, consumption *entity.PinConsumption, txID string) (*entity.ClaimResult, error) {
	claimedAt := time.Now()

	updated, err := srv.consumptionRepo.MarkClaimed(ctx, consumption.ID, txID, claimedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark consumption record claimed")
	}

	if !updated {
		current, err := srv.consumptionRepo.FindConsumptionByID(ctx, consumption.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reload consumption record")
		}

		return alreadyClaimedResult(current), nil
	}

	srv.publishSettled(ctx, consumption, txID, claimedAt)

	return &entity.ClaimResult{
		ConsumptionID: consumption.ID,
		TxID:          txID,
		ClaimedAt:     claimedAt,
	}, nil
}

// publishSettled emits the claim.settled event. Best effort, never fails the
// claim.
func (srv *claimService) publishSettled(ctx context.Context, consumption *entity.PinConsumption, txID string, claimedAt time.Time) {
	event := &service.CollectionEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventType:     service.EventTypeClaimSettled,
		ConsumptionID: consumption.ID.String(),
		PinID:         consumption.PinID.String(),
		UserID:        consumption.UserID.String(),
		AssetCode:     consumption.RewardAssetCode,
		TxID:          txID,
		OccurredAt:    claimedAt.UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishCollectionEvent(ctx, event); err != nil {
		srv.logger.Error("failed to publish claim.settled event",
			"error", err,
			"consumptionID", consumption.ID,
		)
	}
}

func (srv *claimService) offerTTL() time.Duration {
	if srv.config.Claim != nil && srv.config.Claim.OfferTTL > 0 {
		return srv.config.Claim.OfferTTL
	}

	return 10 * time.Minute
}

func (srv *claimService) baseFee() int64 {
	if srv.config.Ledger != nil && srv.config.Ledger.BaseFee > 0 {
		return srv.config.Ledger.BaseFee
	}

	return defaultBaseFee
}

func (srv *claimService) trustlineLimit() string {
	if srv.config.Claim != nil && srv.config.Claim.TrustlineLimit != "" {
		return srv.config.Claim.TrustlineLimit
	}

	return defaultTrustlineLimit
}

// translateResultCode maps ledger rejection codes onto protocol errors. A
// stale sequence number means the offer was superseded or expired; a bad
// signature means the wallet declined or mangled the envelope.
func translateResultCode(resultCode string) error {
	switch resultCode {
	case resultCodeBadSeq:
		return domainerrors.ErrClaimOfferExpired
	case resultCodeBadAuth:
		return domainerrors.ErrSigningRejected
	default:
		return domainerrors.ErrSubmissionFailed.WithDetails(resultCode)
	}
}

func alreadyClaimedResult(consumption *entity.PinConsumption) *entity.ClaimResult {
	result := &entity.ClaimResult{
		ConsumptionID:  consumption.ID,
		AlreadyClaimed: true,
	}
	if consumption.ClaimTxID != nil {
		result.TxID = *consumption.ClaimTxID
	}
	if consumption.ClaimedAt != nil {
		result.ClaimedAt = *consumption.ClaimedAt
	}

	return result
}
