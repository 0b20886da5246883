package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/nkwain/reviewbot/internal/config"
	"github.com/nkwain/reviewbot/internal/github"
	"github.com/nkwain/reviewbot/internal/logging"
	"github.com/nkwain/reviewbot/internal/provider"
)

type appKey struct{}

type App struct {
	Config   config.Config
	Log      *zap.Logger
	GH       *github.Client
	Reviewer provider.Invoker
}

func withApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func getApp(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok || app == nil {
		return nil, fmt.Errorf("internal error: app not initialized")
	}
	return app, nil
}

func initApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	var ghRunner github.Runner = github.RealRunner{}
	var reviewer provider.Invoker = provider.NewHTTPInvoker(cfg.Provider)
	if os.Getenv("REVIEWBOT_MOCK") == "1" {
		fixtures := os.Getenv("REVIEWBOT_MOCK_DIR")
		if fixtures == "" {
			fixtures = filepath.Join("testdata", "gh")
		}
		ghRunner = github.NewFixtureRunner(fixtures)
		fixturePath := os.Getenv("REVIEWBOT_PROVIDER_FIXTURE")
		if fixturePath == "" {
			fixturePath = filepath.Join("testdata", "provider", "assessment.json")
		}
		reviewer = provider.NewFakeInvoker(fixturePath)
	}

	return &App{
		Config:   cfg,
		Log:      log,
		GH:       github.NewClient(ghRunner),
		Reviewer: reviewer,
	}, nil
}
