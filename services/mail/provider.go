package mail

import (
	"github.com/tech-arch1tect/signup/config"
	"github.com/tech-arch1tect/signup/services/logging"
	"go.uber.org/fx"
)

func ProvideMailService(cfg *config.Config, logger *logging.Service) (*Service, error) {
	return NewService(cfg, logger)
}

var Module = fx.Options(
	fx.Provide(ProvideMailService),
)
