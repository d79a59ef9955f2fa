package config

import (
	"github.com/chonx19/act-r/internal/observability/logger"
	"github.com/chonx19/act-r/pkg/db"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(
		Load,
		provideDBConfig,
		provideLoggerConfig,
	),
)

func provideDBConfig(cfg Config) db.Config {
	return db.Config{
		Type:     cfg.DBType,
		Path:     cfg.DBPath,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		Name:     cfg.DBName,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		SSLMode:  cfg.DBSSLMode,
	}
}

func provideLoggerConfig(cfg Config) logger.Config {
	return logger.Config{
		ServiceName:   cfg.AppName,
		Environment:   cfg.Environment,
		Version:       cfg.AppVersion,
		Level:         cfg.LogLevel,
		Format:        cfg.LogFormat,
		IncludeCaller: true,
	}
}
