package main

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func TestBuildServiceContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	config := DefaultConfig()
	config.Database.Path = filepath.Join(t.TempDir(), "sheets.db")

	serviceContainer, err := BuildServiceContainer(config)
	require.NoError(t, err)

	// check storage
	assert.NotNil(t, serviceContainer.Storage)
	assert.IsType(t, &BoltSheetStorage{}, serviceContainer.Storage)
	defer serviceContainer.Storage.Close()

	// check webhook dispatcher
	assert.NotNil(t, serviceContainer.WebhookDispatcher)
	assert.IsType(t, &WebhookDispatcher{}, serviceContainer.WebhookDispatcher)

	webhookDispatcher := serviceContainer.WebhookDispatcher.(*WebhookDispatcher)
	assert.Equal(t, config.Webhook.Workers, webhookDispatcher.workersCount)
	assert.Equal(t, config.Webhook.QueueSize, cap(webhookDispatcher.queue))
	assert.Equal(t, config.Webhook.Timeout(), webhookDispatcher.timeout)

	// check sheet repository
	assert.NotNil(t, serviceContainer.SheetRepository)
	assert.IsType(t, &SheetRepository{}, serviceContainer.SheetRepository)

	sheetRepository := serviceContainer.SheetRepository.(*SheetRepository)
	assert.Equal(t, serviceContainer.Storage, sheetRepository.storage)
	assert.Equal(t, serviceContainer.WebhookDispatcher, sheetRepository.webhookDispatcher)
	assert.IsType(t, &Canonicalizer{}, sheetRepository.canonicalizer)
	assert.IsType(t, &XlsxSheetExporter{}, sheetRepository.exporter)

	exporter := sheetRepository.exporter.(*XlsxSheetExporter)
	assert.Same(t, sheetRepository.canonicalizer, exporter.canonicalizer)

	// check api controller
	assert.NotNil(t, serviceContainer.ApiController)
	assert.IsType(t, &ApiController{}, serviceContainer.ApiController)

	apiController := serviceContainer.ApiController.(*ApiController)
	assert.Equal(t, serviceContainer.SheetRepository, apiController.SheetRepository)
	assert.Equal(t, serviceContainer.WebhookDispatcher, apiController.WebhookDispatcher)

	// check router
	assert.NotNil(t, serviceContainer.Router)
	assert.IsType(t, &gin.Engine{}, serviceContainer.Router)

	// 8 api routes + health check
	assert.Len(t, serviceContainer.Router.Routes(), 9)
}

func TestOpenSheetStorage(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		storage, err := OpenSheetStorage(DatabaseConfig{
			Driver: SqliteDriver,
			Path:   filepath.Join(t.TempDir(), "sheets.sqlite"),
		}, NewSheetJsonSerializer())

		require.NoError(t, err)
		assert.IsType(t, &SqliteSheetStorage{}, storage)
		assert.NoError(t, storage.Close())
	})

	t.Run("unknown_driver", func(t *testing.T) {
		_, err := OpenSheetStorage(DatabaseConfig{Driver: "mysql", Path: "x"}, NewSheetJsonSerializer())
		assert.ErrorIs(t, err, ConfigError)
	})

	t.Run("bolt_missing_directory", func(t *testing.T) {
		_, err := OpenSheetStorage(DatabaseConfig{
			Driver: BoltDriver,
			Path:   filepath.Join(t.TempDir(), "missing", "sheets.db"),
		}, NewSheetJsonSerializer())
		assert.Error(t, err)
	})
}
