package untappdweb

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerHall/pkg/model"
)

type BreweryJSON struct {
	Name    string `json:"name"`
	Address struct {
		StreetAddress   string `json:"streetAddress"`
		PostalCode      string `json:"postalCode"`
		AddressLocality string `json:"addressLocality"`
	} `json:"address"`
}

// FindBrewer searches brewers by name and reads the details page of every
// rated hit.
func (u *UntappdWebIntegration) FindBrewer(name string) ([]model.Brewer, error) {
	collector, search, err := u.newCollector()
	if err != nil {
		return nil, err
	}

	var (
		errs  error
		links []string
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		ratingString := element.ChildAttr(".rating > div.caps", "data-rating")
		rating, _ := strconv.ParseFloat(ratingString, 64)

		if rating > 0.0 {
			links = append(links, element.Request.AbsoluteURL(element.ChildAttr(".name > a", "href")))
		}
	})

	search.RawQuery = url.Values{"q": {name}, "type": {"brewery"}}.Encode()

	if multierr.AppendInto(&errs, collector.Visit(search.String())) {
		return nil, errs
	}

	results := make([]model.Brewer, 0, len(links))

	for _, link := range links {
		brewer, err := u.getBrewerFromURI(link, collector.Clone())
		if multierr.AppendInto(&errs, err) {
			continue
		}

		results = append(results, brewer)
	}

	u.logger.Debug("found brewers", zap.String("name", name), zap.Int("count", len(results)))

	return results, errs
}

func (u *UntappdWebIntegration) getBrewerFromURI(uri string, collector *colly.Collector) (model.Brewer, error) {
	var (
		errs   error
		found  bool
		brewer = *model.NewBrewer("")
	)

	collector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var breweryJSON BreweryJSON

		if err := json.Unmarshal([]byte(element.Text), &breweryJSON); err != nil {
			u.logger.Error("failed to parse brewery details", zap.String("url", uri), zap.Error(err))
			multierr.AppendInto(&errs, err)

			return
		}

		found = true
		brewer.Name = strings.TrimSpace(breweryJSON.Name)
		brewer.Street = strings.TrimSpace(breweryJSON.Address.StreetAddress)
		brewer.LocationPostalCode = stringPointer(strings.TrimSpace(breweryJSON.Address.PostalCode))
	})

	multierr.AppendInto(&errs, collector.Visit(uri))

	if errs == nil && !found {
		errs = fmt.Errorf("no brewery details on %s", uri)
	}

	return brewer, errs
}

func stringPointer(value string) *string {
	if len(value) > 0 {
		return &value
	}

	return nil
}
