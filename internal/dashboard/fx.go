package dashboard

import (
	"github.com/chonx19/act-r/internal/dashboard/repository"
	"github.com/chonx19/act-r/internal/dashboard/service"
	"go.uber.org/fx"
)

var Module = fx.Module("dashboard.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
