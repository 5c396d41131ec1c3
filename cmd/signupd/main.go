package main

import (
	"github.com/tech-arch1tect/signup/config"
	"github.com/tech-arch1tect/signup/database"
	"github.com/tech-arch1tect/signup/server"
	"github.com/tech-arch1tect/signup/services/logging"
	"github.com/tech-arch1tect/signup/services/mail"
	"github.com/tech-arch1tect/signup/services/signup"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.NewProvider(nil),
		logging.Module,
		fx.Provide(func() *database.ModelsOption {
			return database.WithModels(&signup.Account{})
		}),
		database.Module,
		mail.Module,
		fx.Provide(func(mailSvc *mail.Service) signup.Notifier {
			return mailSvc
		}),
		signup.Module,
		server.NewProvider(),
	)

	app.Run()
}
