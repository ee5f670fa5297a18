package handler

import (
	"log/slog"
	"net/http"

	"columbus/internal/delivery/api/response"
	"columbus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	ProfileUC    usecase.ProfileUsecase
	PreferenceUC usecase.PreferenceUsecase
	SavedPlaceUC usecase.SavedPlaceUsecase
	Logger       *slog.Logger
}

// UserHandler serves the caller's own resources under /user.
type UserHandler struct {
	profileUC    usecase.ProfileUsecase
	preferenceUC usecase.PreferenceUsecase
	savedPlaceUC usecase.SavedPlaceUsecase
	logger       *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		profileUC:    params.ProfileUC,
		preferenceUC: params.PreferenceUC,
		savedPlaceUC: params.SavedPlaceUC,
		logger:       params.Logger,
	}
}

// GetProfile handles GET /user/profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "Profile retrieved successfully")
}

// UpdateProfile handles PUT /user/profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user, "Profile updated successfully")
}

// GetPreferences handles GET /user/preferences. Callers without a saved
// row receive the defaults.
func (h *UserHandler) GetPreferences(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	prefs, err := h.preferenceUC.GetPreferences(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, prefs, "Preferences retrieved successfully")
}

// SavePreferences handles POST /user/preferences
func (h *UserHandler) SavePreferences(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var input usecase.SavePreferencesInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	prefs, err := h.preferenceUC.SavePreferences(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, prefs, "Preferences saved successfully")
}

// SavePlace handles POST /user/saved-places
func (h *UserHandler) SavePlace(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var input usecase.SavePlaceInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	place, err := h.savedPlaceUC.Save(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, place, "Place saved successfully")
}

// ListSavedPlaces handles GET /user/saved-places
func (h *UserHandler) ListSavedPlaces(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	places, err := h.savedPlaceUC.List(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, places, "Saved places retrieved successfully")
}

// VisitedRequest flips the visited flag of a saved place
type VisitedRequest struct {
	Visited *bool `json:"visited" validate:"required"`
}

// SetVisited handles PUT /user/saved-places/:id/visited
func (h *UserHandler) SetVisited(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	placeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req VisitedRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	place, err := h.savedPlaceUC.SetVisited(c.Request().Context(), identity, placeID, *req.Visited)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, place, "Saved place updated successfully")
}
