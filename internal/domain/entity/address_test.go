package entity

import (
	"testing"
	"time"

	domainerrors "addressconv/internal/domain/errors"
	"addressconv/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freezeNow(t *testing.T, at time.Time) {
	t.Helper()

	original := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = original })
}

func TestNewAddress_IssuesDistinctIdentifiers(t *testing.T) {
	converted, err := frenchIndividual().ToCanonical()
	require.NoError(t, err)

	seen := make(map[uuid.UUID]struct{})
	for range 100 {
		address := NewAddress(converted)
		assert.Equal(t, uuid.Version(4), address.ID().Version())
		seen[address.ID()] = struct{}{}
	}

	assert.Len(t, seen, 100)
}

func TestNewAddress_CopiesCanonicalFields(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	freezeNow(t, at)

	converted, err := isoBusiness().ToCanonical()
	require.NoError(t, err)

	address := NewAddress(converted)
	assert.Equal(t, at, address.UpdatedAt())
	assert.Equal(t, converted.Fields(), address.Fields())
	assert.Equal(t, FormatISO20022, address.Source())
	assert.Equal(t, KindBusiness, address.Kind())
	assert.Equal(t, converted, address.Canonical())
}

func TestAddress_ApplyUpdate(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	freezeNow(t, at)

	original, err := frenchIndividual().ToCanonical()
	require.NoError(t, err)
	address := NewAddress(original)
	id := address.ID()

	freezeNow(t, at.Add(time.Minute))
	replacement, err := isoBusiness().ToCanonical()
	require.NoError(t, err)

	address.ApplyUpdate(replacement)
	assert.Equal(t, id, address.ID())
	assert.Equal(t, at.Add(time.Minute), address.UpdatedAt())
	assert.Equal(t, replacement.Fields(), address.Fields())
	assert.Equal(t, FormatISO20022, address.Source())
}

func TestAddress_ApplyUpdate_AdvancesWhenClockStalls(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	freezeNow(t, at)

	converted, err := frenchIndividual().ToCanonical()
	require.NoError(t, err)
	address := NewAddress(converted)

	address.ApplyUpdate(converted)
	first := address.UpdatedAt()
	assert.True(t, first.After(at))

	freezeNow(t, at.Add(-time.Hour))
	address.ApplyUpdate(converted)
	assert.True(t, address.UpdatedAt().After(first))
}

func TestAddress_Render(t *testing.T) {
	converted, err := frenchIndividual().ToCanonical()
	require.NoError(t, err)
	address := NewAddress(converted)

	rendered, err := address.Render(FormatISO20022)
	require.NoError(t, err)
	iso, ok := rendered.(IsoAddress)
	require.True(t, ok)
	assert.Equal(t, "33380", iso.PostalAddress.Postcode)
	assert.Equal(t, "MIOS", iso.PostalAddress.TownName)
	assert.Equal(t, "FR", iso.PostalAddress.Country)

	rendered, err = address.Render(FormatFrench)
	require.NoError(t, err)
	assert.Equal(t, frenchIndividual(), rendered)
}

func TestRestoreAddress(t *testing.T) {
	converted, err := frenchBusiness().ToCanonical()
	require.NoError(t, err)
	id := uuid.New()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	address, err := RestoreAddress(id, at, FormatFrench, converted.Fields())
	require.NoError(t, err)
	assert.Equal(t, id, address.ID())
	assert.Equal(t, time.UTC, address.UpdatedAt().Location())
	assert.True(t, at.Equal(address.UpdatedAt()))

	_, err = RestoreAddress(uuid.Nil, at, FormatFrench, converted.Fields())
	assert.Error(t, err)

	fields := converted.Fields()
	fields.Country = "ZZ"
	_, err = RestoreAddress(id, at, FormatFrench, fields)
	_, ok := errors.AsType[*domainerrors.ConversionError](err)
	assert.True(t, ok)
}
