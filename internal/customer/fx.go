package customer

import (
	"github.com/chonx19/act-r/internal/customer/repository"
	"github.com/chonx19/act-r/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
