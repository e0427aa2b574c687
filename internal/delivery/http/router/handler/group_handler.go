package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pindrop/internal/delivery/http/response"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GroupHandlerParams holds dependencies for GroupHandler, injected by Fx.
type GroupHandlerParams struct {
	fx.In

	GroupUC usecase.GroupUsecase
	Logger  *slog.Logger
}

// GroupHandler holds dependencies for the creator campaign handlers.
type GroupHandler struct {
	groupUC usecase.GroupUsecase
	logger  *slog.Logger
}

// NewGroupHandler is the constructor for GroupHandler.
func NewGroupHandler(params GroupHandlerParams) *GroupHandler {
	return &GroupHandler{
		groupUC: params.GroupUC,
		logger:  params.Logger,
	}
}

// CreatePinRequest represents one pin inside a create group request.
type CreatePinRequest struct {
	Latitude        float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude       float64 `json:"longitude" validate:"min=-180,max=180"`
	CollectionLimit *int    `json:"collection_limit,omitempty" validate:"omitempty,min=1"`
	AutoCollect     *bool   `json:"auto_collect,omitempty"`
}

// CreateGroupRequest represents the request body for creating a location group.
type CreateGroupRequest struct {
	Title           string             `json:"title" validate:"required"`
	Description     string             `json:"description"`
	ImageURL        string             `json:"image_url"`
	StartDate       time.Time          `json:"start_date" validate:"required"`
	EndDate         time.Time          `json:"end_date" validate:"required"`
	CollectionLimit int                `json:"collection_limit" validate:"omitempty,min=1"`
	AutoCollect     bool               `json:"auto_collect"`
	AssetID         *uuid.UUID         `json:"asset_id,omitempty"`
	PageAssetCode   *string            `json:"page_asset_code,omitempty"`
	Pins            []CreatePinRequest `json:"pins" validate:"required,min=1,dive"`
}

// SetApprovalRequest represents the request body for approving a group.
type SetApprovalRequest struct {
	Approved bool `json:"approved"`
}

// CreateGroup handles a creator publishing a new campaign with its pins.
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	creatorID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateGroupInput{
		Title:           req.Title,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		CollectionLimit: req.CollectionLimit,
		AutoCollect:     req.AutoCollect,
		AssetID:         req.AssetID,
		PageAssetCode:   req.PageAssetCode,
		Pins:            make([]usecase.CreatePinInput, 0, len(req.Pins)),
	}
	for _, pin := range req.Pins {
		input.Pins = append(input.Pins, usecase.CreatePinInput{
			Latitude:        pin.Latitude,
			Longitude:       pin.Longitude,
			CollectionLimit: pin.CollectionLimit,
			AutoCollect:     pin.AutoCollect,
		})
	}

	output, err := h.groupUC.CreateGroup(c.Request().Context(), creatorID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Location group created successfully")
}

// GetGroups handles listing the creator's own campaigns.
func (h *GroupHandler) GetGroups(c echo.Context) error {
	creatorID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	groups, err := h.groupUC.GetCreatorGroups(c.Request().Context(), creatorID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups, "Location groups retrieved successfully")
}

// SetApproval handles an admin approving or rejecting a campaign.
func (h *GroupHandler) SetApproval(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid group ID")
	}

	var req SetApprovalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}

	if err := h.groupUC.SetApproval(c.Request().Context(), groupID, req.Approved); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"approved": req.Approved}, "Group approval updated successfully")
}

// getUserID extracts the user ID from the context.
func (h *GroupHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors.
func (h *GroupHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
