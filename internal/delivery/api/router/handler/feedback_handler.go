package handler

import (
	"log/slog"

	"columbus/internal/delivery/api/response"
	"columbus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for feedback handlers
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
	logger     *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler
func NewFeedbackHandler(feedbackUC usecase.FeedbackUsecase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: feedbackUC,
		logger:     logger,
	}
}

// Submit handles POST /feedback
func (h *FeedbackHandler) Submit(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var input usecase.SubmitFeedbackInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	feedback, err := h.feedbackUC.Submit(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, feedback, "Feedback submitted successfully")
}

// ResolveRequest is the body of PUT /feedback/:id/resolve
type ResolveRequest struct {
	Resolved *bool `json:"resolved" validate:"required"`
}

// Resolve handles PUT /feedback/:id/resolve
func (h *FeedbackHandler) Resolve(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	feedbackID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ResolveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	feedback, err := h.feedbackUC.Resolve(c.Request().Context(), identity, feedbackID, *req.Resolved)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, feedback, "Feedback updated successfully")
}
