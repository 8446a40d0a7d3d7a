package web

import (
	"github.com/shopspring/decimal"
	"go.openly.dev/pointy"

	"droscher.com/BeerHall/pkg/model"
	"droscher.com/BeerHall/pkg/server"
)

type Catalog struct {
	Brewers       []*Brewer       `json:"brewers"`
	TotalTurnover decimal.Decimal `json:"totalTurnover"`
}

type Brewer struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Street     string          `json:"street,omitempty"`
	PostalCode *string         `json:"postalCode,omitempty"`
	Location   *string         `json:"location,omitempty"`
	Turnover   decimal.Decimal `json:"turnover"`
	Beers      []*Beer         `json:"beers"`
}

type Beer struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ABV         *float64 `json:"abv,omitempty"`
}

func CatalogFromList(list *server.BrewerList) *Catalog {
	brewers := make([]*Brewer, 0, len(list.Brewers))

	for _, brewer := range list.Brewers {
		brewers = append(brewers, BrewerFromModel(brewer))
	}

	return &Catalog{Brewers: brewers, TotalTurnover: list.TotalTurnover}
}

func BrewerFromModel(brewer *model.Brewer) *Brewer {
	dto := Brewer{
		ID:         brewer.ID,
		Name:       brewer.Name,
		Street:     brewer.Street,
		PostalCode: brewer.PostalCode(),
		Turnover:   brewer.Turnover,
		Beers:      BeersFromModel(brewer.Beers),
	}

	if brewer.Location != nil && len(brewer.Location.Name) > 0 {
		dto.Location = pointy.String(brewer.Location.Name)
	}

	return &dto
}

func BeersFromModel(beers []model.Beer) []*Beer {
	dtos := make([]*Beer, 0, len(beers))

	for _, beer := range beers {
		dto := Beer{ID: beer.ID, Name: beer.Name, Description: beer.Description}

		if beer.ABV != nil {
			dto.ABV = pointy.Float64(*beer.ABV)
		}

		dtos = append(dtos, &dto)
	}

	return dtos
}
