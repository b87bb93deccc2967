package database

import (
	"context"

	"addressconv/internal/domain/entity"
	domainerrors "addressconv/internal/domain/errors"
	"addressconv/internal/domain/repository"
	"addressconv/internal/errors"
	"addressconv/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// addressRepository implements repository.AddressRepository with GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Save persists a new address.
func (repo *addressRepository) Save(ctx context.Context, address *entity.Address) error {
	addressM := model.FromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAddressAlreadyExists.WrapMessage("address " + address.ID().String())
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewStorageError(err, "missing required address information")
		}

		return domainerrors.NewStorageError(err, "failed to create address")
	}

	return nil
}

// Fetch retrieves an address by its unique ID.
func (repo *addressRepository) Fetch(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound.WrapMessage("address " + id.String())
		}

		return nil, domainerrors.NewStorageError(err, "failed to find address by ID")
	}

	address, err := model.ToAddressDomain(&addressM)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "corrupted address row "+id.String())
	}

	return address, nil
}

// Update replaces the address stored under id.
func (repo *addressRepository) Update(ctx context.Context, id uuid.UUID, address *entity.Address) error {
	addressM := model.FromAddressDomain(address)

	// Select("*") writes zero values too, so cleared optional lines are cleared in the row.
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", id).
		Select("*").
		Omit("id").
		Updates(addressM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.NewStorageError(result.Error, "missing required address information")
		}

		return domainerrors.NewStorageError(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound.WrapMessage("address " + id.String())
	}

	return nil
}

// Delete removes an address by its ID.
func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete address")
	}

	// If no rows were affected, it means the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound.WrapMessage("address " + id.String())
	}

	return nil
}
