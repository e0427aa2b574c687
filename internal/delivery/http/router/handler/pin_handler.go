// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pindrop/internal/delivery/http/response"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/service"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PinHandlerParams holds dependencies for PinHandler, injected by Fx.
type PinHandlerParams struct {
	fx.In

	CollectionUC usecase.CollectionUsecase
	QRCodeSvc    service.QRCodeService
	Logger       *slog.Logger
}

// PinHandler holds dependencies for pin map and collection handlers.
type PinHandler struct {
	collectionUC usecase.CollectionUsecase
	qrcodeSvc    service.QRCodeService
	logger       *slog.Logger
}

// NewPinHandler is the constructor for PinHandler.
func NewPinHandler(params PinHandlerParams) *PinHandler {
	return &PinHandler{
		collectionUC: params.CollectionUC,
		qrcodeSvc:    params.QRCodeSvc,
		logger:       params.Logger,
	}
}

// QueryPins handles the viewport pin query for the map UI.
func (h *PinHandler) QueryPins(c echo.Context) error {
	input, err := parseViewport(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	pins, err := h.collectionUC.QueryNearby(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pins, "Pins retrieved successfully")
}

// Collect handles a user collecting a pin.
func (h *PinHandler) Collect(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	pinID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pin ID")
	}

	output, err := h.collectionUC.Collect(c.Request().Context(), userID, pinID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Pin collected successfully")
}

// CollectQRCode returns the printable QR code PNG for a pin.
func (h *PinHandler) CollectQRCode(c echo.Context) error {
	pinID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pin ID")
	}

	png, err := h.qrcodeSvc.GenerateCollectQR(pinID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseViewport reads the viewport bounds from query parameters.
func parseViewport(c echo.Context) (*usecase.QueryNearbyInput, error) {
	input := new(usecase.QueryNearbyInput)

	fields := []struct {
		name   string
		target *float64
	}{
		{"min_lat", &input.MinLat},
		{"min_lon", &input.MinLon},
		{"max_lat", &input.MaxLat},
		{"max_lon", &input.MaxLon},
	}

	for _, field := range fields {
		raw := c.QueryParam(field.name)
		if raw == "" {
			return nil, errors.Errorf("missing query parameter %q", field.name)
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Errorf("invalid query parameter %q", field.name)
		}
		*field.target = value
	}

	input.ShowExpired = c.QueryParam("show_expired") == "true"

	return input, nil
}

// getUserID extracts the user ID from the context.
func (h *PinHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors.
func (h *PinHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
