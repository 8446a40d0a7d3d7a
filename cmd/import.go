package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerHall/configs"
	"droscher.com/BeerHall/pkg/integrations"
	"droscher.com/BeerHall/pkg/model"
	"droscher.com/BeerHall/pkg/repository"
	"droscher.com/BeerHall/pkg/server"
)

var ErrImportFailed = errors.New("import failed")

type ImportCmd struct {
	ConfigFile string `default:".BeerHall.toml" help:"Path to config file" short:"c"`
	Name       string `help:"Name of the brewer to look up" required:""`
	All        bool   `help:"Import every match instead of the first one"`
	Beers      bool   `help:"Also import the beers of every imported brewer"`
}

func (i *ImportCmd) Run(_ *Context) error {
	logger := developmentLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(i.ConfigFile, logger)
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

	integration, brewers := i.find(conf.Integrations.Brewer, logger)
	if len(brewers) == 0 {
		logger.Warn("no brewers found", zap.String("name", i.Name))

		return nil
	}

	brewerImporter := importer{
		sessions:  func() repository.BrewerRepository { return repo.NewBrewerSession() },
		locations: repo.Locations(),
		beers:     repo,
		logger:    logger,
	}

	if i.Beers {
		brewerImporter.findBeers = integration.FindBeers
	}

	return brewerImporter.run(context.Background(), brewers)
}

// find asks every configured integration until one has results.
func (i *ImportCmd) find(names []string, logger *zap.Logger) (integrations.Integration, []model.Brewer) {
	for _, name := range names {
		integration := integrations.GetIntegration(name, logger)
		if integration == nil {
			logger.Warn("unknown integration", zap.String("integration", name))

			continue
		}

		brewers, err := integration.FindBrewer(i.Name)
		if err != nil {
			logger.Error("error finding brewers", zap.String("integration", name), zap.Error(err))
		}

		if len(brewers) == 0 {
			continue
		}

		if !i.All {
			return integration, brewers[:1]
		}

		return integration, brewers
	}

	return nil, nil
}

// importer creates every brewer in its own unit of work, so one rejected
// brewer does not keep the others out. With findBeers set the beers of each
// created brewer are stored as well.
type importer struct {
	sessions  func() repository.BrewerRepository
	locations repository.LocationRepository
	beers     repository.BeerRepository
	findBeers func(brewer string) ([]model.Beer, error)
	logger    *zap.Logger
}

func (im *importer) run(ctx context.Context, brewers []model.Brewer) error {
	var errs error

	for index := range brewers {
		outcome := server.NewBrewerServer(im.sessions(), im.locations, im.logger).Create(ctx, server.ToEditView(&brewers[index]))
		if !outcome.Succeeded() {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrImportFailed, outcome.Message))

			continue
		}

		im.logger.Info(outcome.Message, zap.Uint("brewer_id", outcome.Brewer.ID))

		errs = multierr.Append(errs, im.importBeers(ctx, outcome.Brewer))
	}

	return errs
}

// importBeers stores whatever beers were found, even when the lookup itself
// reported problems.
func (im *importer) importBeers(ctx context.Context, brewer *model.Brewer) error {
	if im.findBeers == nil {
		return nil
	}

	var errs error

	found, err := im.findBeers(brewer.Name)
	if err != nil {
		im.logger.Warn("error finding beers", zap.Uint("brewer_id", brewer.ID), zap.Error(err))
		errs = fmt.Errorf("%w: beers of %s: %w", ErrImportFailed, brewer.Name, err)
	}

	for _, beer := range found {
		if len(strings.TrimSpace(beer.Name)) == 0 {
			continue
		}

		beer.BrewerID = brewer.ID

		stored, err := im.beers.AddBeer(ctx, beer)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: beer %s: %w", ErrImportFailed, beer.Name, err))

			continue
		}

		im.logger.Info("imported beer", zap.Uint("beer_id", stored.ID), zap.String("name", stored.Name),
			zap.Uint("brewer_id", brewer.ID))
	}

	return errs
}
