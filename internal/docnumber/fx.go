package docnumber

import (
	"github.com/chonx19/act-r/internal/docnumber/repository"
	"github.com/chonx19/act-r/internal/docnumber/service"
	"go.uber.org/fx"
)

var Module = fx.Module("docnumber.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
