package handler

import (
	"log/slog"
	"net/http"

	"pindrop/internal/delivery/http/response"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ClaimHandlerParams holds dependencies for ClaimHandler, injected by Fx.
type ClaimHandlerParams struct {
	fx.In

	ClaimUC usecase.ClaimUsecase
	Logger  *slog.Logger
}

// ClaimHandler holds dependencies for the reward claim protocol handlers.
type ClaimHandler struct {
	claimUC usecase.ClaimUsecase
	logger  *slog.Logger
}

// NewClaimHandler is the constructor for ClaimHandler.
func NewClaimHandler(params ClaimHandlerParams) *ClaimHandler {
	return &ClaimHandler{
		claimUC: params.ClaimUC,
		logger:  params.Logger,
	}
}

// BuildOfferRequest represents the request body for building a claim offer.
type BuildOfferRequest struct {
	WalletAddress string `json:"wallet_address"`
}

// SubmitClaimRequest represents the request body for submitting a claim.
type SubmitClaimRequest struct {
	WalletAddress  string `json:"wallet_address"`
	SignedEnvelope string `json:"signed_envelope"`
}

// FinalizeClaimRequest represents the request body for finalizing a claim.
type FinalizeClaimRequest struct {
	TxID string `json:"tx_id" validate:"required"`
}

// BuildOffer handles building the unsigned claim transaction for a pin the
// user collected.
func (h *ClaimHandler) BuildOffer(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	pinID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pin ID")
	}

	var req BuildOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim offer input")
	}

	walletAddress := h.resolveWallet(c, req.WalletAddress)
	if walletAddress == "" {
		return response.BadRequest(c, "MISSING_WALLET", "A wallet address is required")
	}

	offer, err := h.claimUC.BuildClaimOffer(c.Request().Context(), userID, pinID, walletAddress)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer, "Claim offer built successfully")
}

// Submit handles broadcasting the signed claim to the ledger. An empty
// signed_envelope selects the no-signature path.
func (h *ClaimHandler) Submit(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	pinID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pin ID")
	}

	var req SubmitClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim submission input")
	}

	walletAddress := h.resolveWallet(c, req.WalletAddress)
	if walletAddress == "" {
		return response.BadRequest(c, "MISSING_WALLET", "A wallet address is required")
	}

	result, err := h.claimUC.SubmitClaim(c.Request().Context(), userID, pinID, walletAddress, req.SignedEnvelope)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Claim submitted successfully")
}

// Finalize handles marking a consumption claimed for an already confirmed
// ledger transaction.
func (h *ClaimHandler) Finalize(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	consumptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid consumption ID")
	}

	var req FinalizeClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim finalization input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.claimUC.FinalizeClaim(c.Request().Context(), userID, consumptionID, req.TxID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Claim finalized successfully")
}

// resolveWallet prefers the wallet in the request body and falls back to the
// wallet hint the auth middleware extracted from the token.
func (h *ClaimHandler) resolveWallet(c echo.Context, bodyWallet string) string {
	if bodyWallet != "" {
		return bodyWallet
	}

	tokenWallet, _ := c.Get("walletAddress").(string)

	return tokenWallet
}

// getUserID extracts the user ID from the context.
func (h *ClaimHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors.
func (h *ClaimHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
