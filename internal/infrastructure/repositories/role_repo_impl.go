package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kyc-chain.backend/internal/domain/entities"
	domainerrors "kyc-chain.backend/internal/domain/errors"
	"kyc-chain.backend/internal/domain/repositories"
	"kyc-chain.backend/internal/infrastructure/models"
)

// roleRepo implements repositories.RoleRepository
type roleRepo struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) repositories.RoleRepository {
	return &roleRepo{db: db}
}

// GetOwner returns the single owner row
func (r *roleRepo) GetOwner(ctx context.Context) (*entities.Owner, error) {
	var m models.Owner
	if err := GetDB(ctx, r.db).WithContext(ctx).First(&m, "id = ?", 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Owner{Address: m.Address, UpdatedAt: m.UpdatedAt}, nil
}

// SetOwner creates or replaces the owner row
func (r *roleRepo) SetOwner(ctx context.Context, address string) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	res := db.Model(&models.Owner{}).Where("id = ?", 1).Update("address", address)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return db.Create(&models.Owner{ID: 1, Address: address}).Error
	}
	return nil
}

// AddAdmin inserts an admin-set member
func (r *roleRepo) AddAdmin(ctx context.Context, admin *entities.Admin) error {
	m := models.Admin{
		Address: admin.Address,
		AddedBy: admin.AddedBy,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	admin.CreatedAt = m.CreatedAt
	return nil
}

// RemoveAdmin deletes an admin-set member
func (r *roleRepo) RemoveAdmin(ctx context.Context, address string) error {
	res := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Admin{}, "address = ?", address)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// IsAdmin reports membership in the admin set
func (r *roleRepo) IsAdmin(ctx context.Context, address string) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Admin{}).Where("address = ?", address).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListAdmins returns the full admin set ordered by insertion
func (r *roleRepo) ListAdmins(ctx context.Context) ([]*entities.Admin, error) {
	var ms []models.Admin
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at asc").Find(&ms).Error; err != nil {
		return nil, err
	}

	admins := make([]*entities.Admin, 0, len(ms))
	for _, m := range ms {
		admins = append(admins, &entities.Admin{
			Address:   m.Address,
			AddedBy:   m.AddedBy,
			CreatedAt: m.CreatedAt,
		})
	}
	return admins, nil
}
