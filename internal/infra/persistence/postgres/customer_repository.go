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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByID retrieves a single customer by their unique ID.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByPhone retrieves a single customer by their exact phone number.
func (repo *customerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by phone")
	}

	return toCustomerDomain(&customerM), nil
}

// Create persists a new customer entity. The unique index on phone is the real
// enforcement point for the one-customer-per-phone rule, so a race lost after
// the application-level pre-check still comes back as the same conflict error.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPhoneAlreadyRegistered.WrapMessage("phone number already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCustomerCreationFailed.WrapMessage("missing required customer information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCustomerCreationFailed.WrapMessage("invalid business reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	// Update the entity with generated values
	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// Update modifies an existing customer entity.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Save(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPhoneAlreadyRegistered.WrapMessage("phone number already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update customer")
	}

	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// ListByBusiness returns one page of a business's customers plus the total count.
func (repo *customerRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Customer, int64, error) {
	var customerMs []model.CustomerModel
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("business_id = ?", businessID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers by business")
	}

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&customerMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list customers by business")
	}

	customers := make([]*entity.Customer, 0, len(customerMs))
	for i := range customerMs {
		customers = append(customers, toCustomerDomain(&customerMs[i]))
	}

	return customers, total, nil
}

// ListConsentedByBusiness returns every consented customer of a business.
func (repo *customerRepository) ListConsentedByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Customer, error) {
	var customerMs []model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND consent_given = ?", businessID, true).
		Order("created_at").
		Find(&customerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list consented customers")
	}

	customers := make([]*entity.Customer, 0, len(customerMs))
	for i := range customerMs {
		customers = append(customers, toCustomerDomain(&customerMs[i]))
	}

	return customers, nil
}

// CountByBusiness returns the number of customers owned by a business.
func (repo *customerRepository) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("business_id = ?", businessID).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count customers by business")
	}

	return total, nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	var gender *entity.Gender
	if data.Gender != nil {
		g := entity.Gender(*data.Gender)
		gender = &g
	}

	return &entity.Customer{
		ID:           data.ID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		DateOfBirth:  data.DateOfBirth,
		Gender:       gender,
		Preferences:  data.Preferences,
		ConsentGiven: data.ConsentGiven,
		ConsentDate:  data.ConsentDate,
		BusinessID:   data.BusinessID,
		VisitCount:   data.VisitCount,
		LastVisit:    data.LastVisit,
		TotalSpent:   data.TotalSpent,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	var gender *string
	if data.Gender != nil {
		g := string(*data.Gender)
		gender = &g
	}

	return &model.CustomerModel{
		ID:           data.ID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		DateOfBirth:  data.DateOfBirth,
		Gender:       gender,
		Preferences:  data.Preferences,
		ConsentGiven: data.ConsentGiven,
		ConsentDate:  data.ConsentDate,
		BusinessID:   data.BusinessID,
		VisitCount:   data.VisitCount,
		LastVisit:    data.LastVisit,
		TotalSpent:   data.TotalSpent,
	}
}
