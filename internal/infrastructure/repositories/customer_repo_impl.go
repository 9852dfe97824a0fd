package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/domain/repositories"
	"kyc-chain.backend/internal/infrastructure/models"
	"kyc-chain.backend/pkg/utils"
)

// customerRepo implements repositories.CustomerRepository
type customerRepo struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) repositories.CustomerRepository {
	return &customerRepo{db: db}
}

// Create inserts a new customer record
func (r *customerRepo) Create(ctx context.Context, customer *entities.Customer) error {
	m := models.Customer{
		KycID:          customer.KycID,
		Name:           customer.Name,
		PAN:            customer.PAN,
		Status:         int(customer.Status),
		CredentialHash: customer.CredentialHash,
	}
	if customer.Email.Valid {
		m.Email = &customer.Email.String
	}
	if customer.Phone.Valid {
		m.Phone = &customer.Phone.String
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The driver does not say which unique index fired, so look
			// up the kycId row to name the colliding field.
			if _, lookupErr := r.GetByKycID(ctx, customer.KycID); lookupErr == nil {
				return domainerrors.Conflict("kycId already exists", domainerrors.ErrAlreadyExists)
			}
			return domainerrors.Conflict("pan already exists", domainerrors.ErrAlreadyExists)
		}
		return err
	}
	customer.CreatedAt = m.CreatedAt
	return nil
}

// GetByKycID gets a customer by KYC id
func (r *customerRepo) GetByKycID(ctx context.Context, kycID string) (*entities.Customer, error) {
	var m models.Customer
	if err := GetDB(ctx, r.db).WithContext(ctx).First(&m, "kyc_id = ?", kycID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByPAN gets a customer by PAN
func (r *customerRepo) GetByPAN(ctx context.Context, pan string) (*entities.Customer, error) {
	var m models.Customer
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("pan = ?", pan).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdateStatus sets the customer's verification status
func (r *customerRepo) UpdateStatus(ctx context.Context, kycID string, status entities.KycStatus) error {
	res := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Customer{}).Where("kyc_id = ?", kycID).Update("status", int(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns customers ordered by creation time
func (r *customerRepo) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Customer, int64, error) {
	var ms []models.Customer
	var totalCount int64

	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Customer{})
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at asc")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	customers := make([]*entities.Customer, 0, len(ms))
	for _, m := range ms {
		model := m
		customers = append(customers, r.toEntity(&model))
	}
	return customers, totalCount, nil
}

// Count returns the number of customers
func (r *customerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *customerRepo) toEntity(m *models.Customer) *entities.Customer {
	c := &entities.Customer{
		KycID:          m.KycID,
		Name:           m.Name,
		PAN:            m.PAN,
		Status:         entities.KycStatus(m.Status),
		CredentialHash: m.CredentialHash,
		CreatedAt:      m.CreatedAt,
	}
	if m.Email != nil {
		c.Email = null.StringFrom(*m.Email)
	}
	if m.Phone != nil {
		c.Phone = null.StringFrom(*m.Phone)
	}
	return c
}
