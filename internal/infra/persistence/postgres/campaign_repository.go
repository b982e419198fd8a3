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

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// FindByID retrieves a single campaign by its unique ID.
func (repo *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	return toCampaignDomain(&campaignM), nil
}

// Create persists a new campaign entity.
func (repo *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid business or creator reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required campaign information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// Update modifies an existing campaign entity.
func (repo *campaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.db.WithContext(ctx).Save(campaignM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update campaign")
	}

	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// ListByBusiness returns all campaigns owned by a business, newest first.
func (repo *campaignRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Campaign, error) {
	var campaignMs []model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&campaignMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns by business")
	}

	campaigns := make([]*entity.Campaign, 0, len(campaignMs))
	for i := range campaignMs {
		campaigns = append(campaigns, toCampaignDomain(&campaignMs[i]))
	}

	return campaigns, nil
}

// --- Mapper Functions ---

func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	return &entity.Campaign{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Type:            entity.CampaignType(data.Type),
		Status:          entity.CampaignStatus(data.Status),
		BusinessID:      data.BusinessID,
		CreatedByID:     data.CreatedByID,
		ScheduledAt:     data.ScheduledAt,
		SentAt:          data.SentAt,
		MessageTemplate: data.MessageTemplate,
		MessageType:     entity.MessageType(data.MessageType),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromCampaignDomain(data *entity.Campaign) *model.CampaignModel {
	if data == nil {
		return nil
	}

	return &model.CampaignModel{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Type:            string(data.Type),
		Status:          string(data.Status),
		BusinessID:      data.BusinessID,
		CreatedByID:     data.CreatedByID,
		ScheduledAt:     data.ScheduledAt,
		SentAt:          data.SentAt,
		MessageTemplate: data.MessageTemplate,
		MessageType:     string(data.MessageType),
	}
}
