// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "addressconv/internal/delivery/context"
	"addressconv/internal/domain/entity"
	domainerrors "addressconv/internal/domain/errors"
	"addressconv/internal/domain/repository"
	"addressconv/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &addressService{
		addressRepo: params.AddressRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Save converts the payload and persists it as a new address.
func (srv *addressService) Save(ctx context.Context, payload []byte, from entity.Format) (*entity.Address, error) {
	converted, err := srv.convert(ctx, payload, from)
	if err != nil {
		return nil, err
	}

	address := entity.NewAddress(converted)
	if err := srv.addressRepo.Save(ctx, address); err != nil {
		srv.log(ctx).Error("failed to save address", slog.String("address_id", address.ID().String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save address")
	}

	srv.log(ctx).Info("address saved",
		slog.String("address_id", address.ID().String()),
		slog.String("format", from.String()),
		slog.String("kind", address.Kind().String()),
	)

	return address, nil
}

// Update replaces the canonical fields of an existing address.
func (srv *addressService) Update(ctx context.Context, id string, payload []byte, from entity.Format) (*entity.Address, error) {
	addressID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	address, err := srv.addressRepo.Fetch(ctx, addressID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch address")
	}

	converted, err := srv.convert(ctx, payload, from)
	if err != nil {
		return nil, err
	}

	address.ApplyUpdate(converted)

	if err := srv.addressRepo.Update(ctx, addressID, address); err != nil {
		srv.log(ctx).Error("failed to update address", slog.String("address_id", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update address")
	}

	srv.log(ctx).Info("address updated", slog.String("address_id", addressID.String()), slog.String("format", from.String()))

	return address, nil
}

// Delete removes an address.
func (srv *addressService) Delete(ctx context.Context, id string) error {
	addressID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := srv.addressRepo.Delete(ctx, addressID); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	srv.log(ctx).Info("address deleted", slog.String("address_id", addressID.String()))

	return nil
}

// Fetch loads an address.
func (srv *addressService) Fetch(ctx context.Context, id string) (*entity.Address, error) {
	addressID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("fetching address", slog.String("address_id", addressID.String()))

	address, err := srv.addressRepo.Fetch(ctx, addressID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch address")
	}

	return address, nil
}

// FetchAs loads an address and renders it in the requested format.
func (srv *addressService) FetchAs(ctx context.Context, id string, format entity.Format) (entity.AddressConvertible, error) {
	format, err := entity.ParseFormat(format.String())
	if err != nil {
		return nil, err
	}

	address, err := srv.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	rendered, err := address.Render(format)
	if err != nil {
		srv.log(ctx).Warn("address cannot be rendered",
			slog.String("address_id", address.ID().String()),
			slog.String("format", format.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	return rendered, nil
}

// Convert translates a payload between formats without persisting it.
func (srv *addressService) Convert(ctx context.Context, payload []byte, from, to entity.Format) (entity.AddressConvertible, error) {
	to, err := entity.ParseFormat(to.String())
	if err != nil {
		return nil, err
	}

	converted, err := srv.convert(ctx, payload, from)
	if err != nil {
		return nil, err
	}

	rendered, err := entity.Render(converted, to)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("address converted", slog.String("from", from.String()), slog.String("to", to.String()))

	return rendered, nil
}

func (srv *addressService) convert(ctx context.Context, payload []byte, from entity.Format) (entity.ConvertedAddress, error) {
	source, err := entity.DecodeAddress(payload, from)
	if err != nil {
		return entity.ConvertedAddress{}, err
	}

	converted, err := source.ToCanonical()
	if err != nil {
		srv.log(ctx).Debug("address conversion failed", slog.String("format", from.String()), slog.Any("error", err))

		return entity.ConvertedAddress{}, err
	}

	return converted, nil
}

func parseID(id string) (uuid.UUID, error) {
	addressID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:  "id",
			Rule:   "uuid",
			Detail: "identifier must be a UUID",
		})
	}

	return addressID, nil
}
