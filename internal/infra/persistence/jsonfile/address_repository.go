// Package jsonfile stores every address as one JSON document named after its identifier.
package jsonfile

import (
	"bufio"
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"addressconv/internal/domain/entity"
	domainerrors "addressconv/internal/domain/errors"
	"addressconv/internal/domain/repository"
	"addressconv/internal/errors"
	"addressconv/internal/infra/persistence/model"

	"github.com/google/renameio"
	"github.com/google/uuid"
)

const (
	defaultDirectoryPermissions fs.FileMode = 0o755
	defaultFilePermissions      fs.FileMode = 0o644
	recordExtension                         = ".json"
)

// addressRepository implements repository.AddressRepository on a directory.
type addressRepository struct {
	dir string
}

// NewAddressRepository creates the storage directory when missing.
func NewAddressRepository(dir string) (repository.AddressRepository, error) {
	if err := os.MkdirAll(dir, defaultDirectoryPermissions); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to create storage directory "+dir)
	}

	return &addressRepository{dir: dir}, nil
}

// Save persists a new address.
func (repo *addressRepository) Save(_ context.Context, address *entity.Address) error {
	path := repo.recordPath(address.ID())

	exists, err := fileExists(path)
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to check address record")
	}
	if exists {
		return repository.ErrAddressAlreadyExists.WrapMessage("address " + address.ID().String())
	}

	return repo.write(path, model.FromAddressDomain(address))
}

// Fetch retrieves an address by its unique ID.
func (repo *addressRepository) Fetch(_ context.Context, id uuid.UUID) (*entity.Address, error) {
	data, err := os.ReadFile(repo.recordPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrAddressNotFound.WrapMessage("address " + id.String())
		}

		return nil, domainerrors.NewStorageError(err, "failed to read address record")
	}

	var stored model.AddressModel
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to decode address record "+id.String())
	}

	address, err := model.ToAddressDomain(&stored)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "corrupted address record "+id.String())
	}

	return address, nil
}

// Update replaces the address stored under id.
func (repo *addressRepository) Update(_ context.Context, id uuid.UUID, address *entity.Address) error {
	path := repo.recordPath(id)

	exists, err := fileExists(path)
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to check address record")
	}
	if !exists {
		return repository.ErrAddressNotFound.WrapMessage("address " + id.String())
	}

	stored := model.FromAddressDomain(address)
	stored.ID = id

	return repo.write(path, stored)
}

// Delete removes an address by its ID.
func (repo *addressRepository) Delete(_ context.Context, id uuid.UUID) error {
	if err := os.Remove(repo.recordPath(id)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return repository.ErrAddressNotFound.WrapMessage("address " + id.String())
		}

		return domainerrors.NewStorageError(err, "failed to delete address record")
	}

	return nil
}

func (repo *addressRepository) recordPath(id uuid.UUID) string {
	return filepath.Join(repo.dir, id.String()+recordExtension)
}

// write replaces path atomically: readers see the old record or the new one, never a partial file.
func (repo *addressRepository) write(path string, stored *model.AddressModel) error {
	data, err := json.Marshal(stored)
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to encode address record")
	}

	pending, err := renameio.TempFile(repo.dir, path)
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to create temporary record")
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	if err := pending.Chmod(defaultFilePermissions); err != nil {
		return domainerrors.NewStorageError(err, "failed to set record permissions")
	}

	w := bufio.NewWriter(pending)
	if _, err := w.Write(data); err != nil {
		return domainerrors.NewStorageError(err, "failed to write address record")
	}
	if err := w.Flush(); err != nil {
		return domainerrors.NewStorageError(err, "failed to write address record")
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return domainerrors.NewStorageError(err, "failed to replace address record")
	}

	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}
