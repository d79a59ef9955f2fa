package observability

import (
	"github.com/chonx19/act-r/internal/observability/logger"
	"github.com/chonx19/act-r/internal/observability/metrics"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(
		logger.New,
		metrics.New,
	),
)
