// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"addressconv/internal/errors"

	"github.com/google/uuid"
)

// now is replaced in tests. Times are kept at microsecond precision so they
// survive every storage backend unchanged.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Address is the format-agnostic, identified address. It does not belong to a
// format: it can be rendered into either one on demand.
type Address struct {
	id        uuid.UUID       // Assigned once by NewAddress, never changes.
	updatedAt time.Time       // Creation or last update, UTC.
	source    Format          // Format of the last conversion applied. Informational only.
	fields    CanonicalFields // Canonical field set.
}

// NewAddress gives a conversion its identity. It is the only way to create a
// new Address, so an identity can only come from a real conversion.
func NewAddress(converted ConvertedAddress) *Address {
	return &Address{
		id:        uuid.New(),
		updatedAt: now(),
		source:    converted.source,
		fields:    converted.fields,
	}
}

// RestoreAddress rebuilds a persisted Address. It is meant for repository
// implementations and re-checks the canonical fields of the stored record.
func RestoreAddress(id uuid.UUID, updatedAt time.Time, source Format, fields CanonicalFields) (*Address, error) {
	if id == uuid.Nil {
		return nil, errors.New("stored address has no identifier")
	}
	if err := fields.validate(); err != nil {
		return nil, errors.Wrapf(err, "stored address %s is invalid", id)
	}

	return &Address{
		id:        id,
		updatedAt: updatedAt.UTC(),
		source:    source,
		fields:    fields,
	}, nil
}

// ID returns the unique identifier.
func (a *Address) ID() uuid.UUID {
	return a.id
}

// UpdatedAt returns the time of the last successful mutation.
func (a *Address) UpdatedAt() time.Time {
	return a.updatedAt
}

// Source returns the format of the last conversion applied to the address.
func (a *Address) Source() Format {
	return a.source
}

// Fields returns a copy of the canonical fields.
func (a *Address) Fields() CanonicalFields {
	return a.fields
}

// Kind returns the address variant.
func (a *Address) Kind() AddressKind {
	return a.fields.Kind
}

// Canonical returns the canonical view of the address.
func (a *Address) Canonical() ConvertedAddress {
	return newConvertedAddress(a.fields, a.source)
}

// ApplyUpdate replaces the canonical fields, keeps the identity and moves
// UpdatedAt strictly forward.
func (a *Address) ApplyUpdate(converted ConvertedAddress) {
	a.fields = converted.fields
	a.source = converted.source

	next := now()
	if !next.After(a.updatedAt) {
		next = a.updatedAt.Add(time.Microsecond)
	}
	a.updatedAt = next
}

// Render converts the address into the requested format.
func (a *Address) Render(format Format) (AddressConvertible, error) {
	return Render(a.Canonical(), format)
}
