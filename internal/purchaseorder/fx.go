package purchaseorder

import (
	"github.com/chonx19/act-r/internal/purchaseorder/repository"
	"github.com/chonx19/act-r/internal/purchaseorder/service"
	"go.uber.org/fx"
)

var Module = fx.Module("purchaseorder.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
