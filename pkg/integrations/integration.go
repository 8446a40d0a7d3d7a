package integrations

import (
	"go.uber.org/zap"

	"droscher.com/BeerHall/pkg/integrations/untappd-web"
	"droscher.com/BeerHall/pkg/model"
)

// Integration looks brewers and their beers up in an external catalog.
// Returned entities are unsaved; brewers carry no turnover and beers no brewer id.
type Integration interface {
	FindBrewer(name string) ([]model.Brewer, error)
	FindBeers(brewer string) ([]model.Beer, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == untappdweb.IntegrationName {
		return untappdweb.NewUntappdWebIntegration(logger)
	}

	return nil
}
