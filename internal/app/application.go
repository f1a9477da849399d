// Package app composes the shopping list service with its dependencies.
// Nothing in here is business logic; rules live in internal/app/services.
package app

import (
	"github.com/groceryworks/listd/internal/app/services/items"
	"github.com/groceryworks/listd/internal/app/storage"
	"github.com/groceryworks/listd/internal/app/storage/memory"
	"github.com/groceryworks/listd/pkg/logger"
)

// Service identity surfaced by the welcome and health endpoints.
const (
	ServiceName = "Shopping List API"
	Version     = "1.0.0"
)

// Application ties the domain services together. The list store is injected
// explicitly; there is deliberately no package-level shared state.
type Application struct {
	log *logger.Logger

	Items *items.Service
}

// New builds an application around the provided store. A nil store defaults
// to the in-memory implementation; a nil logger defaults to info level.
func New(store storage.ItemStore, log *logger.Logger) *Application {
	if log == nil {
		log = logger.NewDefault("app")
	}
	if store == nil {
		store = memory.New()
	}

	return &Application{
		log:   log,
		Items: items.New(store, log.WithField("component", "items")),
	}
}
