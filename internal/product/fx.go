package product

import (
	"github.com/chonx19/act-r/internal/product/repository"
	"github.com/chonx19/act-r/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
