package postgres

import (
	"context"

	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/repository"
	"onevisit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new outbound message record.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid customer or campaign reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListByCampaign returns all messages produced by a campaign.
func (repo *messageRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Message, error) {
	var messageMs []model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC").
		Find(&messageMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages by campaign")
	}

	messages := make([]*entity.Message, 0, len(messageMs))
	for i := range messageMs {
		messages = append(messages, toMessageDomain(&messageMs[i]))
	}

	return messages, nil
}

// CountSentByBusiness counts sent messages across a business's customers.
func (repo *messageRepository) CountSentByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Joins("JOIN customers ON customers.id = messages.customer_id").
		Where("customers.business_id = ? AND messages.status = ?", businessID, string(entity.MessageStatusSent)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count sent messages by business")
	}

	return count, nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		CampaignID:   data.CampaignID,
		Type:         entity.MessageType(data.Type),
		Content:      data.Content,
		Status:       entity.MessageStatus(data.Status),
		SentAt:       data.SentAt,
		ErrorMessage: data.ErrorMessage,
		ExternalID:   data.ExternalID,
		CreatedAt:    data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		CampaignID:   data.CampaignID,
		Type:         string(data.Type),
		Content:      data.Content,
		Status:       string(data.Status),
		SentAt:       data.SentAt,
		ErrorMessage: data.ErrorMessage,
		ExternalID:   data.ExternalID,
	}
}
