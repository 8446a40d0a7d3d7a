package untappdweb

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerHall/pkg/model"
)

type BeerJSON struct {
	Description string `json:"description"`
	Brand       struct {
		Name string `json:"name"`
	} `json:"brand"`
}

type BeerScraped struct {
	IDLink  string `attr:"href"          selector:"a.label"`
	Name    string `selector:".name > a"`
	Brewery string `selector:".brewery > a"`
	ABV     string `selector:".abv"`
}

type BeerContent struct {
	Description string `selector:".beer-descrption-read-more"`
}

// FindBeers searches beers by the name of their brewer and keeps the ones
// that brewer actually brews.
func (u *UntappdWebIntegration) FindBeers(brewer string) ([]model.Beer, error) {
	collector, search, err := u.newCollector()
	if err != nil {
		return nil, err
	}

	var (
		errs    error
		scraped []BeerScraped
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		item := BeerScraped{}

		if err := element.Unmarshal(&item); multierr.AppendInto(&errs, err) {
			u.logger.Error("failed to unmarshal scraped beer", zap.Error(err))

			return
		}

		if !strings.EqualFold(strings.TrimSpace(item.Brewery), strings.TrimSpace(brewer)) {
			return
		}

		item.IDLink = element.Request.AbsoluteURL(item.IDLink)
		scraped = append(scraped, item)
	})

	search.RawQuery = url.Values{"q": {brewer}, "type": {"beer"}}.Encode()

	if multierr.AppendInto(&errs, collector.Visit(search.String())) {
		return nil, errs
	}

	results := make([]model.Beer, 0, len(scraped))

	for _, item := range scraped {
		beer, err := u.getBeerData(collector.Clone(), item)
		multierr.AppendInto(&errs, err)

		results = append(results, beer)
	}

	u.logger.Debug("found beers", zap.String("brewer", brewer), zap.Int("count", len(results)))

	return results, errs
}

// getBeerData completes a search hit with the description on its details
// page. The hit itself is returned even when that page fails.
func (u *UntappdWebIntegration) getBeerData(detailCollector *colly.Collector, scraped BeerScraped) (model.Beer, error) {
	beer := model.Beer{
		Name: strings.TrimSpace(scraped.Name),
		ABV:  extractABV(scraped),
	}

	detailCollector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var beerJSON BeerJSON
		if err := json.Unmarshal([]byte(element.Text), &beerJSON); err != nil {
			u.logger.Warn("failed to parse beer details", zap.String("url", scraped.IDLink), zap.Error(err))

			return
		}

		beer.Description = strings.TrimSpace(beerJSON.Description)
	})

	detailCollector.OnHTML(".content", func(element *colly.HTMLElement) {
		beerContent := BeerContent{}

		if err := element.Unmarshal(&beerContent); err != nil {
			return
		}

		if len(beer.Description) == 0 {
			beer.Description = strings.TrimSpace(beerContent.Description)
		}
	})

	return beer, detailCollector.Visit(scraped.IDLink)
}

func extractABV(details BeerScraped) *float64 {
	index := strings.Index(details.ABV, "%")
	if index < 0 {
		return nil
	}

	abv, err := strconv.ParseFloat(strings.TrimSpace(details.ABV[:index]), 64)
	if err != nil {
		return nil
	}

	return &abv
}
