package user

import (
	"github.com/chonx19/act-r/internal/user/repository"
	"github.com/chonx19/act-r/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
