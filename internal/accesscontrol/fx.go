package accesscontrol

import (
	"github.com/chonx19/act-r/internal/accesscontrol/repository"
	"github.com/chonx19/act-r/internal/accesscontrol/service"
	"go.uber.org/fx"
)

var Module = fx.Module("accesscontrol.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
