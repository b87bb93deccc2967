package usecase

import (
	"context"

	"addressconv/internal/domain/entity"
)

// AddressUsecase defines the interface for address conversion and storage use cases
type AddressUsecase interface {
	// Save decodes payload in the given format, converts it and stores it under a new identifier
	Save(ctx context.Context, payload []byte, from entity.Format) (*entity.Address, error)

	// Update replaces the fields of an existing address with the converted payload
	Update(ctx context.Context, id string, payload []byte, from entity.Format) (*entity.Address, error)

	// Delete removes an address
	Delete(ctx context.Context, id string) error

	// Fetch loads an address
	Fetch(ctx context.Context, id string) (*entity.Address, error)

	// FetchAs loads an address and renders it in the requested format
	FetchAs(ctx context.Context, id string, format entity.Format) (entity.AddressConvertible, error)

	// Convert translates payload from one format to another without storing it
	Convert(ctx context.Context, payload []byte, from, to entity.Format) (entity.AddressConvertible, error)
}
