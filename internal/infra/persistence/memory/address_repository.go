// Package memory contains an in-process implementation of the persistence layer.
package memory

import (
	"context"
	"sync"

	"addressconv/internal/domain/entity"
	"addressconv/internal/domain/repository"
	"addressconv/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// addressRepository keeps stored records in a map. Records are copied in and
// out so callers never share state with the store.
type addressRepository struct {
	mu        sync.RWMutex
	addresses map[uuid.UUID]model.AddressModel
}

// NewAddressRepository is the constructor for the in-memory addressRepository.
func NewAddressRepository() repository.AddressRepository {
	return &addressRepository{
		addresses: make(map[uuid.UUID]model.AddressModel),
	}
}

// Save persists a new address.
func (repo *addressRepository) Save(_ context.Context, address *entity.Address) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.addresses[address.ID()]; ok {
		return repository.ErrAddressAlreadyExists.WrapMessage("address " + address.ID().String())
	}
	repo.addresses[address.ID()] = *model.FromAddressDomain(address)

	return nil
}

// Fetch retrieves an address by its unique ID.
func (repo *addressRepository) Fetch(_ context.Context, id uuid.UUID) (*entity.Address, error) {
	repo.mu.RLock()
	stored, ok := repo.addresses[id]
	repo.mu.RUnlock()

	if !ok {
		return nil, repository.ErrAddressNotFound.WrapMessage("address " + id.String())
	}

	return model.ToAddressDomain(&stored)
}

// Update replaces the address stored under id.
func (repo *addressRepository) Update(_ context.Context, id uuid.UUID, address *entity.Address) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.addresses[id]; !ok {
		return repository.ErrAddressNotFound.WrapMessage("address " + id.String())
	}

	stored := *model.FromAddressDomain(address)
	stored.ID = id
	repo.addresses[id] = stored

	return nil
}

// Delete removes an address by its ID.
func (repo *addressRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.addresses[id]; !ok {
		return repository.ErrAddressNotFound.WrapMessage("address " + id.String())
	}
	delete(repo.addresses, id)

	return nil
}
