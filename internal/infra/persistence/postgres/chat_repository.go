package postgres

import (
	"context"
	"slices"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"
	"columbus/internal/domain/repository"
	"columbus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

func (repo *chatRepository) Append(ctx context.Context, message *entity.ChatMessage) error {
	messageM := fromChatMessageDomain(message)
	if messageM.ID == uuid.Nil {
		messageM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewValidationError("unknown reference", "itinerary_id")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append chat message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListRecent reads the newest rows first, then flips them back into append order.
func (repo *chatRepository) ListRecent(ctx context.Context, sessionID uuid.UUID, limit int) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Order("seq DESC").
		Limit(limit).
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent chat messages")
	}
	slices.Reverse(messageModels)

	return toChatMessagesDomain(messageModels), nil
}

func (repo *chatRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Order("seq ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}

	return toChatMessagesDomain(messageModels), nil
}

func (repo *chatRepository) FindSessionOwner(ctx context.Context, sessionID uuid.UUID) (*uuid.UUID, error) {
	var messageM model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Select("user_id").
		Where("session_id = ? AND user_id IS NOT NULL", sessionID).
		Order("created_at ASC").
		Order("seq ASC").
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find chat session owner")
	}

	return messageM.UserID, nil
}

// --- Mapper Functions ---

func toChatMessagesDomain(messageModels []*model.ChatMessageModel) []*entity.ChatMessage {
	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toChatMessageDomain(messageM))
	}

	return messages
}

func toChatMessageDomain(data *model.ChatMessageModel) *entity.ChatMessage {
	if data == nil {
		return nil
	}

	return &entity.ChatMessage{
		ID:          data.ID,
		SessionID:   data.SessionID,
		UserID:      data.UserID,
		ItineraryID: data.ItineraryID,
		Role:        entity.ChatRole(data.Role),
		Content:     data.Content,
		Metadata:    columnToRaw(data.Metadata),
		CreatedAt:   data.CreatedAt,
	}
}

func fromChatMessageDomain(data *entity.ChatMessage) *model.ChatMessageModel {
	if data == nil {
		return nil
	}

	return &model.ChatMessageModel{
		ID:          data.ID,
		SessionID:   data.SessionID,
		UserID:      data.UserID,
		ItineraryID: data.ItineraryID,
		Role:        string(data.Role),
		Content:     data.Content,
		Metadata:    rawToColumn(data.Metadata),
		CreatedAt:   data.CreatedAt,
	}
}
