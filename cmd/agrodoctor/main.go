package main

import (
	"context"
	"log/slog"
	"os"

	"agrodoctor/config"
	"agrodoctor/internal/delivery"
	"agrodoctor/internal/delivery/cli"
	"agrodoctor/internal/domain/repository"
	"agrodoctor/internal/infra/api"
	"agrodoctor/internal/infra/credstore"
	"agrodoctor/internal/infra/location"
	logs "agrodoctor/internal/infra/log"
	"agrodoctor/internal/infra/theme"
	"agrodoctor/internal/usecase/impl"

	"go.uber.org/fx"
)

type runParams struct {
	fx.In

	Logger     *slog.Logger
	Shutdowner fx.Shutdowner
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			run,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		theme.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newCredentialStore,
		),
	)
}

// newCredentialStore resolves the token path from configuration.
func newCredentialStore(cfg *config.Config) (repository.CredentialStore, error) {
	return credstore.New(cfg.Storage.TokenPath)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			api.New,
			location.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewDiagnosisService,
			impl.NewOutbreakService,
			impl.NewProfileService,
			impl.NewFeedbackService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				cli.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func run(ctx context.Context, params runParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("delivery failed", slog.Any("error", err))
				os.Exit(1)
			}

			// The terminal session ended normally; stop the app.
			if err := params.Shutdowner.Shutdown(); err != nil {
				params.Logger.Error("shutdown failed", slog.Any("error", err))
			}
		}()
	}
}
