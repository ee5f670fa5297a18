package handler

import (
	"log/slog"

	"columbus/internal/delivery/api/response"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TravelHandlerParams holds dependencies for TravelHandler, injected by Fx.
type TravelHandlerParams struct {
	fx.In

	DestinationUC    usecase.DestinationUsecase
	TransportationUC usecase.TransportationUsecase
	Logger           *slog.Logger
}

// TravelHandler serves destination suggestions and route guidance
type TravelHandler struct {
	destinationUC    usecase.DestinationUsecase
	transportationUC usecase.TransportationUsecase
	logger           *slog.Logger
}

// NewTravelHandler is the constructor for TravelHandler
func NewTravelHandler(params TravelHandlerParams) *TravelHandler {
	return &TravelHandler{
		destinationUC:    params.DestinationUC,
		transportationUC: params.TransportationUC,
		logger:           params.Logger,
	}
}

// SuggestDestinations handles GET /destinations/suggest
func (h *TravelHandler) SuggestDestinations(c echo.Context) error {
	var (
		input  usecase.SuggestDestinationsInput
		budget float64
	)
	err := echo.QueryParamsBinder(c).
		Float64("budget", &budget).
		String("travelStyle", &input.TravelStyle).
		Int("limit", &input.Limit).
		BindError()
	if err != nil {
		var bindErr *echo.BindingError
		if errors.As(err, &bindErr) {
			return domainerrors.NewValidationError("invalid query parameters", bindErr.Field)
		}

		return domainerrors.NewValidationError("invalid query parameters")
	}
	// An absent budget means no budget filter, not a budget of zero.
	if c.QueryParam("budget") != "" {
		input.Budget = &budget
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	suggestions, err := h.destinationUC.Suggest(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, suggestions, "Destinations suggested successfully")
}

// TransportationGuidance handles GET /transportation/guidance
func (h *TravelHandler) TransportationGuidance(c echo.Context) error {
	var input usecase.TransportationInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	guidance, err := h.transportationUC.Guidance(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, guidance, "Transportation guidance retrieved successfully")
}
