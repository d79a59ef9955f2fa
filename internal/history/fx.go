package history

import (
	"github.com/chonx19/act-r/internal/history/repository"
	"github.com/chonx19/act-r/internal/history/service"
	"go.uber.org/fx"
)

var Module = fx.Module("history.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
