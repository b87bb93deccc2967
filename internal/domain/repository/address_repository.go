// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addressconv/internal/domain/entity"
	domainerrors "addressconv/internal/domain/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence. Any other failure returned
// by an implementation is a *domainerrors.StorageError.
var (
	// ErrAddressNotFound is returned when no address is stored under the identifier.
	ErrAddressNotFound = domainerrors.ErrAddressNotFound
	// ErrAddressAlreadyExists is returned when saving an identifier that is already stored.
	ErrAddressAlreadyExists = domainerrors.ErrAddressAlreadyExists
)

// AddressRepository defines the interface for address persistence.
// Each operation is atomic with respect to a single identifier; nothing else is guaranteed.
type AddressRepository interface {
	// Save persists a new address.
	Save(ctx context.Context, address *entity.Address) error

	// Fetch retrieves an address by its unique ID.
	Fetch(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// Update replaces the address stored under id.
	Update(ctx context.Context, id uuid.UUID, address *entity.Address) error

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
