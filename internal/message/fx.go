package message

import (
	"github.com/chonx19/act-r/internal/message/repository"
	"github.com/chonx19/act-r/internal/message/service"
	"go.uber.org/fx"
)

var Module = fx.Module("message.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
