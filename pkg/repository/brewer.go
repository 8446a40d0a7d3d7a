package repository

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BeerHall/pkg/model"
)

// BrewerRepository stages changes to brewers until SaveChanges commits them.
// Lookups return nil without an error when no brewer matches.
type BrewerRepository interface {
	GetAll(ctx context.Context) ([]*model.Brewer, error)
	GetAllWithBeers(ctx context.Context) ([]*model.Brewer, error)
	GetBy(ctx context.Context, brewerID uint) (*model.Brewer, error)
	GetByWithBeers(ctx context.Context, brewerID uint) (*model.Brewer, error)
	Add(brewer *model.Brewer)
	Delete(brewer *model.Brewer)
	SaveChanges(ctx context.Context) error
}

var _ BrewerRepository = (*BrewerSession)(nil)

// brewerColumns are the only columns written for a modified brewer.
var brewerColumns = []string{"Name", "Street", "Turnover", "LocationPostalCode"}

// Snapshot holds the persisted columns of a brewer as they were loaded.
type Snapshot struct {
	name       string
	street     string
	turnover   decimal.Decimal
	postalCode *string
}

func SnapshotOf(brewer *model.Brewer) Snapshot {
	return Snapshot{
		name:       brewer.Name,
		street:     brewer.Street,
		turnover:   brewer.Turnover,
		postalCode: brewer.PostalCode(),
	}
}

// Differs reports whether brewer has changed a persisted column since the
// snapshot was taken.
func (s Snapshot) Differs(brewer *model.Brewer) bool {
	current := SnapshotOf(brewer)

	if s.name != current.name || s.street != current.street || !s.turnover.Equal(current.turnover) {
		return true
	}

	if (s.postalCode == nil) != (current.postalCode == nil) {
		return true
	}

	return s.postalCode != nil && *s.postalCode != *current.postalCode
}

type trackedBrewer struct {
	brewer   *model.Brewer
	original Snapshot
}

// BrewerSession is a request scoped unit of work. Brewers it hands out are
// tracked: mutating them in place and calling SaveChanges persists the change.
// A session is not safe for concurrent use.
type BrewerSession struct {
	db      *gorm.DB
	logger  *zap.Logger
	tracked map[uint]*trackedBrewer
	added   []*model.Brewer
	deleted []*model.Brewer
}

func newBrewerSession(db *gorm.DB, logger *zap.Logger) *BrewerSession {
	return &BrewerSession{db: db, logger: logger, tracked: make(map[uint]*trackedBrewer)}
}

func (s *BrewerSession) GetAll(ctx context.Context) ([]*model.Brewer, error) {
	var brewers []*model.Brewer

	result := s.db.WithContext(ctx).
		Joins("Location").
		Order("brewers.name").
		Find(&brewers)
	if result.Error != nil {
		s.logger.Error("error getting brewers", zap.Error(result.Error))

		return nil, result.Error
	}

	return s.trackAll(brewers), nil
}

func (s *BrewerSession) GetAllWithBeers(ctx context.Context) ([]*model.Brewer, error) {
	var brewers []*model.Brewer

	result := s.db.WithContext(ctx).
		Joins("Location").
		Preload("Beers").
		Order("brewers.name").
		Find(&brewers)
	if result.Error != nil {
		s.logger.Error("error getting brewers with beers", zap.Error(result.Error))

		return nil, result.Error
	}

	return s.trackAll(brewers), nil
}

func (s *BrewerSession) GetBy(ctx context.Context, brewerID uint) (*model.Brewer, error) {
	return s.first(ctx, s.db.WithContext(ctx).Joins("Location"), brewerID)
}

func (s *BrewerSession) GetByWithBeers(ctx context.Context, brewerID uint) (*model.Brewer, error) {
	return s.first(ctx, s.db.WithContext(ctx).Joins("Location").Preload("Beers"), brewerID)
}

func (s *BrewerSession) first(_ context.Context, query *gorm.DB, brewerID uint) (*model.Brewer, error) {
	var brewer model.Brewer

	result := query.First(&brewer, brewerID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil // absent is not an error for lookups
		}

		s.logger.Error("error getting brewer", zap.Uint("brewer_id", brewerID), zap.Error(result.Error))

		return nil, result.Error
	}

	return s.track(&brewer), nil
}

// track returns the instance already handed out for the same id, if any, so
// that every caller in the session works on one object.
func (s *BrewerSession) track(brewer *model.Brewer) *model.Brewer {
	if existing, found := s.tracked[brewer.ID]; found {
		if brewer.Beers != nil {
			existing.brewer.Beers = brewer.Beers
		}

		return existing.brewer
	}

	s.tracked[brewer.ID] = &trackedBrewer{brewer: brewer, original: SnapshotOf(brewer)}

	return brewer
}

func (s *BrewerSession) trackAll(brewers []*model.Brewer) []*model.Brewer {
	for index := range brewers {
		brewers[index] = s.track(brewers[index])
	}

	return brewers
}

func (s *BrewerSession) Add(brewer *model.Brewer) {
	if brewer == nil || slices.Contains(s.added, brewer) {
		return
	}

	s.added = append(s.added, brewer)
}

func (s *BrewerSession) Delete(brewer *model.Brewer) {
	if brewer == nil {
		return
	}

	if index := slices.Index(s.added, brewer); index >= 0 {
		s.added = slices.Delete(s.added, index, index+1)

		return
	}

	delete(s.tracked, brewer.ID)

	if !slices.Contains(s.deleted, brewer) {
		s.deleted = append(s.deleted, brewer)
	}
}

// SaveChanges commits staged additions, modifications of tracked brewers and
// deletions in a single transaction. When it fails nothing is committed and
// the staged changes are kept.
func (s *BrewerSession) SaveChanges(ctx context.Context) error {
	modified := s.modified()

	if len(s.added) == 0 && len(s.deleted) == 0 && len(modified) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, brewer := range s.added {
			if result := tx.Omit(clause.Associations).Create(brewer); result.Error != nil {
				return result.Error
			}
		}

		for _, brewer := range modified {
			if result := tx.Model(brewer).Select(brewerColumns).Updates(brewer); result.Error != nil {
				return result.Error
			}
		}

		for _, brewer := range s.deleted {
			if result := tx.Select("Beers").Delete(brewer); result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("error saving brewers",
			zap.Int("added", len(s.added)), zap.Int("modified", len(modified)), zap.Int("deleted", len(s.deleted)),
			zap.Error(err))

		return err
	}

	for _, brewer := range s.added {
		s.tracked[brewer.ID] = &trackedBrewer{brewer: brewer}
	}

	for _, entry := range s.tracked {
		entry.original = SnapshotOf(entry.brewer)
	}

	s.added = nil
	s.deleted = nil

	return nil
}

func (s *BrewerSession) modified() []*model.Brewer {
	var modified []*model.Brewer

	for _, entry := range s.tracked {
		if entry.original.Differs(entry.brewer) {
			modified = append(modified, entry.brewer)
		}
	}

	slices.SortFunc(modified, func(a, b *model.Brewer) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return modified
}
