// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"addressconv/internal/delivery/http/response"
	"addressconv/internal/domain/entity"
	domainerrors "addressconv/internal/domain/errors"
	"addressconv/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// FormatQuery carries the format of the request body or of the response.
type FormatQuery struct {
	Format string `query:"format" validate:"required"`
}

// ConversionQuery carries both ends of a one-shot conversion.
type ConversionQuery struct {
	From string `query:"from" validate:"required"`
	To   string `query:"to" validate:"required"`
}

// AddressIdentity is returned by the write endpoints.
type AddressIdentity struct {
	ID        string    `json:"id"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newAddressIdentity(address *entity.Address) AddressIdentity {
	return AddressIdentity{
		ID:        address.ID().String(),
		UpdatedAt: address.UpdatedAt(),
	}
}

// SaveAddress stores the body, given in ?format=, under a new identifier
func (h *AddressHandler) SaveAddress(c echo.Context) error {
	format, err := bindFormat(c)
	if err != nil {
		return err
	}

	payload, err := readBody(c)
	if err != nil {
		return err
	}

	address, err := h.addressUC.Save(c.Request().Context(), payload, format)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newAddressIdentity(address), "Address saved successfully")
}

// GetAddress renders a stored address in ?format=
func (h *AddressHandler) GetAddress(c echo.Context) error {
	format, err := bindFormat(c)
	if err != nil {
		return err
	}

	rendered, err := h.addressUC.FetchAs(c.Request().Context(), c.Param("id"), format)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, rendered, "")
}

// UpdateAddress replaces a stored address with the body, given in ?format=
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	format, err := bindFormat(c)
	if err != nil {
		return err
	}

	payload, err := readBody(c)
	if err != nil {
		return err
	}

	address, err := h.addressUC.Update(c.Request().Context(), c.Param("id"), payload, format)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newAddressIdentity(address), "Address updated successfully")
}

// DeleteAddress removes a stored address
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	if err := h.addressUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ConvertAddress converts the body from ?from= to ?to= without storing it
func (h *AddressHandler) ConvertAddress(c echo.Context) error {
	var query ConversionQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return err
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	from, err := entity.ParseFormat(query.From)
	if err != nil {
		return err
	}
	to, err := entity.ParseFormat(query.To)
	if err != nil {
		return err
	}

	payload, err := readBody(c)
	if err != nil {
		return err
	}

	rendered, err := h.addressUC.Convert(c.Request().Context(), payload, from, to)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, rendered, "")
}

// HealthCheck reports that the API is up
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

func bindFormat(c echo.Context) (entity.Format, error) {
	var query FormatQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return "", err
	}
	if err := c.Validate(&query); err != nil {
		return "", err
	}

	return entity.ParseFormat(query.Format)
}

func readBody(c echo.Context) ([]byte, error) {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field: "body",
			Rule:  "required",
		})
	}

	return payload, nil
}
