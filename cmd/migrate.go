package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BeerHall/configs"
	"droscher.com/BeerHall/pkg/model"
	"droscher.com/BeerHall/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".BeerHall.toml" help:"Path to config file" short:"c"`
	Seed       bool   `help:"Insert the default locations"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logger := developmentLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	ctx := context.Background()

	if err = repo.Migrate(ctx); err != nil {
		logger.Error("error migrating database", zap.Error(err))

		return err
	}

	if m.Seed {
		return repo.SeedLocations(ctx, model.DefaultLocations())
	}

	return nil
}
