package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"droscher.com/BeerHall/pkg/model"
)

// BeerRepository stores beers of already committed brewers.
type BeerRepository interface {
	AddBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)
}

var _ BeerRepository = (*Repository)(nil)

// AddBeer inserts beer, or updates the beer its brewer already has under the
// same name.
func (r *Repository) AddBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "brewer_id"}},
		UpdateAll: true,
	}).Create(&beer)

	if result.Error != nil {
		r.Logger.Error("error adding beer", zap.String("name", beer.Name), zap.Uint("brewer_id", beer.BrewerID),
			zap.Error(result.Error))

		return nil, result.Error
	}

	return &beer, nil
}
