package handler

import (
	"log/slog"

	"columbus/internal/delivery/api/response"
	"columbus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for the travel assistant handlers
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(chatUC usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatUC: chatUC,
		logger: logger,
	}
}

// SendMessage handles POST /chat
func (h *ChatHandler) SendMessage(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var input usecase.ChatInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.chatUC.SendMessage(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output, "Message processed successfully")
}

// ListMessages handles GET /chat/:sessionId/messages
func (h *ChatHandler) ListMessages(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	sessionID, err := uuidParam(c, "sessionId")
	if err != nil {
		return err
	}

	messages, err := h.chatUC.ListMessages(c.Request().Context(), identity, sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, messages, "Chat messages retrieved successfully")
}
