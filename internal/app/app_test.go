package app

import (
	"context"
	"path/filepath"
	"testing"

	"addressconv/config"
	"addressconv/internal/domain/entity"
	"addressconv/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func testConfig(driver string, t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "error"
	cfg.Storage.Driver = driver
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "json_storage")
	if driver == config.DriverSQLite {
		cfg.Storage.DSN = filepath.Join(t.TempDir(), "addresses.db")
	}

	return cfg
}

func TestModule_EveryDriver(t *testing.T) {
	for _, driver := range []string{config.DriverJSON, config.DriverMemory, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			var uc usecase.AddressUsecase
			app := fxtest.New(t, Module(testConfig(driver, t)), fx.Populate(&uc))
			app.RequireStart()
			defer app.RequireStop()

			ctx := context.Background()
			payload := []byte(`{"name": "Monsieur Jean DELHOURME", "street": "25 RUE DE L'EGLISE", "postal": "33380 MIOS", "country": "FRANCE"}`)

			saved, err := uc.Save(ctx, payload, entity.FormatFrench)
			require.NoError(t, err)

			fetched, err := uc.Fetch(ctx, saved.ID().String())
			require.NoError(t, err)
			assert.Equal(t, saved.Fields(), fetched.Fields())
		})
	}
}

func TestModule_UnknownDriver(t *testing.T) {
	var uc usecase.AddressUsecase
	app := fx.New(Module(testConfig("mongo", t)), fx.Populate(&uc), fx.NopLogger)
	assert.Error(t, app.Err())
}
