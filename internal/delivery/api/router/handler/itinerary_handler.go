package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"columbus/internal/delivery/api/response"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/infra/metrics"
	"columbus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderIdempotencyKey lets clients retry a generation without paying for it twice.
const HeaderIdempotencyKey = "Idempotency-Key"

const maxIdempotencyKeyLength = 255

// ItineraryHandlerParams holds dependencies for ItineraryHandler, injected by Fx.
type ItineraryHandlerParams struct {
	fx.In

	ItineraryUC usecase.ItineraryUsecase
	Logger      *slog.Logger
}

// ItineraryHandler holds dependencies for itinerary-related handlers
type ItineraryHandler struct {
	itineraryUC usecase.ItineraryUsecase
	logger      *slog.Logger
}

// NewItineraryHandler is the constructor for ItineraryHandler
func NewItineraryHandler(params ItineraryHandlerParams) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: params.ItineraryUC,
		logger:      params.Logger,
	}
}

// Generate handles POST /itinerary/generate
func (h *ItineraryHandler) Generate(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var input usecase.GenerateItineraryInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	input.IdempotencyKey = c.Request().Header.Get(HeaderIdempotencyKey)
	if len(input.IdempotencyKey) > maxIdempotencyKeyLength {
		return domainerrors.NewValidationError("invalid header", HeaderIdempotencyKey)
	}

	output, err := h.itineraryUC.Generate(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	metrics.IncItinerariesGenerated()

	return response.Created(c, output, "Itinerary generated successfully")
}

// Get handles GET /itinerary/:id
func (h *ItineraryHandler) Get(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	itineraryID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	itinerary, err := h.itineraryUC.Get(c.Request().Context(), identity, itineraryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, itinerary, "Itinerary retrieved successfully")
}

// ListDays handles GET /itinerary/:id/days
func (h *ItineraryHandler) ListDays(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	itineraryID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	days, err := h.itineraryUC.ListDays(c.Request().Context(), identity, itineraryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, days, "Itinerary days retrieved successfully")
}

// QRCode handles GET /itinerary/:id/qrcode
func (h *ItineraryHandler) QRCode(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	itineraryID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.itineraryUC.ShareQRCode(c.Request().Context(), identity, itineraryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Update handles PUT /itinerary/:id. The body is kept raw so the use case
// can tell absent fields from explicit values.
func (h *ItineraryHandler) Update(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	itineraryID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := (&echo.DefaultBinder{}).BindBody(c, &fields); err != nil {
		return domainerrors.ErrValidation.WithMessage("Request body must be a JSON object").WithDetails(err.Error())
	}

	output, err := h.itineraryUC.Update(c.Request().Context(), identity, itineraryID, &usecase.UpdateItineraryInput{Fields: fields})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output, "Itinerary updated successfully")
}
