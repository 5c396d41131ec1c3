package signup

import (
	"github.com/tech-arch1tect/signup/config"
	"github.com/tech-arch1tect/signup/services/logging"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func ProvideSignupService(cfg *config.Config, db *gorm.DB, notifier Notifier, logger *logging.Service) (*Service, error) {
	return NewService(cfg, NewGormStore(db), notifier, logger)
}

var Module = fx.Options(
	fx.Provide(ProvideSignupService),
)
