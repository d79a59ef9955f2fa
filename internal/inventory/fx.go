package inventory

import (
	"github.com/chonx19/act-r/internal/inventory/repository"
	"github.com/chonx19/act-r/internal/inventory/service"
	"go.uber.org/fx"
)

var Module = fx.Module("inventory.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
