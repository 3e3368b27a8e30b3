package main

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"lookupSheet/contracts"
)

type ServiceContainer struct {
	Storage           contracts.SheetStorage
	ApiController     contracts.ApiController
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
	Router            *gin.Engine
}

func BuildServiceContainer(config *Config) (container ServiceContainer, err error) {
	container.Storage, err = OpenSheetStorage(config.Database, NewSheetJsonSerializer())
	if err != nil {
		return
	}

	canonicalizer := NewCanonicalizer()

	container.WebhookDispatcher = NewWebhookDispatcher(config.Webhook.Workers, config.Webhook.QueueSize, config.Webhook.Timeout())
	container.SheetRepository = NewSheetRepository(
		container.Storage, canonicalizer, NewXlsxSheetExporter(canonicalizer), container.WebhookDispatcher,
	)
	container.ApiController = NewApiController(container.SheetRepository, container.WebhookDispatcher)

	container.Router = SetupRouter(container.ApiController)

	return
}

func OpenSheetStorage(config DatabaseConfig, serializer contracts.SheetSerializer) (contracts.SheetStorage, error) {
	switch config.Driver {
	case BoltDriver:
		return OpenBoltSheetStorage(config.Path, serializer)
	case SqliteDriver:
		return OpenSqliteSheetStorage(config.Path, serializer)
	}

	return nil, fmt.Errorf("database driver `%s`: %w", config.Driver, ConfigError)
}
