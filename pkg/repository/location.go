package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"droscher.com/BeerHall/pkg/model"
)

// LocationRepository gives read access to the reference locations. GetAll makes
// no ordering promise.
type LocationRepository interface {
	GetAll(ctx context.Context) ([]*model.Location, error)
	GetBy(ctx context.Context, postalCode string) (*model.Location, error)
}

var _ LocationRepository = (*LocationStore)(nil)

type LocationStore struct {
	db *gorm.DB
}

func (l *LocationStore) GetAll(ctx context.Context) ([]*model.Location, error) {
	var locations []*model.Location

	if result := l.db.WithContext(ctx).Find(&locations); result.Error != nil {
		return nil, result.Error
	}

	return locations, nil
}

// GetBy returns nil without an error for an unknown postal code.
func (l *LocationStore) GetBy(ctx context.Context, postalCode string) (*model.Location, error) {
	var location model.Location

	result := l.db.WithContext(ctx).Where("postal_code = ?", postalCode).First(&location)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil // absent is not an error for lookups
		}

		return nil, result.Error
	}

	return &location, nil
}
