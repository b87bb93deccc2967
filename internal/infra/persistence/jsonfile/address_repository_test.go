package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"addressconv/internal/domain/entity"
	domainerrors "addressconv/internal/domain/errors"
	"addressconv/internal/domain/repository"
	"addressconv/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAddress(t *testing.T, payload string, format entity.Format) *entity.Address {
	t.Helper()

	source, err := entity.DecodeAddress([]byte(payload), format)
	require.NoError(t, err)

	converted, err := source.ToCanonical()
	require.NoError(t, err)

	return entity.NewAddress(converted)
}

const (
	individualJSON = `{"name": "Monsieur Jean DELHOURME", "street": "25 RUE DE L'EGLISE", "postal": "33380 MIOS", "country": "FRANCE"}`
	businessJSON   = `{"business_name": "Société DUPONT", "postal_address": {"street_name": "RUE DU MOULIN", "postcode": "34092", "town_name": "MONTPELLIER CEDEX 5", "country": "FR"}}`
)

func TestNewAddressRepository_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "json_storage")

	_, err := NewAddressRepository(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAddressRepository_SaveWritesOneFilePerAddress(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewAddressRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	address := newTestAddress(t, individualJSON, entity.FormatFrench)
	require.NoError(t, repo.Save(ctx, address))

	data, err := os.ReadFile(filepath.Join(dir, address.ID().String()+".json"))
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, address.ID().String(), record["id"])
	assert.Equal(t, "33380", record["postcode"])
	assert.Equal(t, "FR", record["country"])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAddressRepository_RoundTrip(t *testing.T) {
	repo, err := NewAddressRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	address := newTestAddress(t, businessJSON, entity.FormatISO20022)
	require.NoError(t, repo.Save(ctx, address))

	fetched, err := repo.Fetch(ctx, address.ID())
	require.NoError(t, err)
	assert.Equal(t, address.ID(), fetched.ID())
	assert.True(t, address.UpdatedAt().Equal(fetched.UpdatedAt()))
	assert.Equal(t, address.Fields(), fetched.Fields())
	assert.Equal(t, entity.FormatISO20022, fetched.Source())

	assert.ErrorIs(t, repo.Save(ctx, address), repository.ErrAddressAlreadyExists)
}

func TestAddressRepository_Update(t *testing.T) {
	repo, err := NewAddressRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	address := newTestAddress(t, individualJSON, entity.FormatFrench)
	require.NoError(t, repo.Save(ctx, address))

	replacement := newTestAddress(t, businessJSON, entity.FormatISO20022)
	address.ApplyUpdate(replacement.Canonical())
	require.NoError(t, repo.Update(ctx, address.ID(), address))

	fetched, err := repo.Fetch(ctx, address.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.KindBusiness, fetched.Kind())
	assert.True(t, address.UpdatedAt().Equal(fetched.UpdatedAt()))

	missing := uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, missing, address), repository.ErrAddressNotFound)
}

func TestAddressRepository_Delete(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewAddressRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	address := newTestAddress(t, individualJSON, entity.FormatFrench)
	require.NoError(t, repo.Save(ctx, address))
	require.NoError(t, repo.Delete(ctx, address.ID()))

	_, err = os.Stat(filepath.Join(dir, address.ID().String()+".json"))
	assert.True(t, os.IsNotExist(err))

	_, err = repo.Fetch(ctx, address.ID())
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, address.ID()), repository.ErrAddressNotFound)
}

func TestAddressRepository_CorruptedRecord(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewAddressRepository(dir)
	require.NoError(t, err)

	id := uuid.New()
	require.NoError(t, os.WriteFile(filepath.Join(dir, id.String()+".json"), []byte(`{"id":`), 0o644))

	_, err = repo.Fetch(context.Background(), id)
	_, ok := errors.AsType[*domainerrors.StorageError](err)
	assert.True(t, ok)
}
