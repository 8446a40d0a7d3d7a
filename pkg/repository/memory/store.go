// Package memory keeps brewers and locations in process memory. It honours the
// same staging and commit rules as the database backed sessions and is meant
// for tests and local experiments.
package memory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"droscher.com/BeerHall/pkg/model"
	"droscher.com/BeerHall/pkg/repository"
)

var (
	_ repository.BrewerRepository   = (*BrewerSession)(nil)
	_ repository.LocationRepository = (*LocationStore)(nil)
	_ repository.BeerRepository     = (*Store)(nil)
)

var ErrUnknownBrewer = errors.New("unknown brewer")

type Store struct {
	mu        sync.RWMutex
	brewers   map[uint]model.Brewer
	locations map[string]model.Location
	nextID    uint
	nextBeer  uint
	commits   int
	failWith  error
}

func NewStore() *Store {
	return &Store{
		brewers:   make(map[uint]model.Brewer),
		locations: make(map[string]model.Location),
		nextID:    1,
		nextBeer:  1,
	}
}

func (s *Store) AddLocations(locations ...model.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, location := range locations {
		s.locations[location.PostalCode] = location
	}
}

// Seed stores brewers directly, assigning ids to those without one.
func (s *Store) Seed(brewers ...model.Brewer) []uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uint, 0, len(brewers))

	for _, brewer := range brewers {
		s.insert(&brewer)
		ids = append(ids, brewer.ID)
	}

	return ids
}

// FailCommitsWith makes every following SaveChanges fail with err. Pass nil to
// recover.
func (s *Store) FailCommitsWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failWith = err
}

// Commits counts the successful SaveChanges calls.
func (s *Store) Commits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.commits
}

// Brewer returns a copy of the committed state of a brewer.
func (s *Store) Brewer(brewerID uint) (model.Brewer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	brewer, found := s.brewers[brewerID]
	if !found {
		return model.Brewer{}, false
	}

	return clone(brewer), true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.brewers)
}

// AddBeer stores beer with its brewer, replacing a beer of the same name.
func (s *Store) AddBeer(_ context.Context, beer model.Beer) (*model.Beer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	brewer, found := s.brewers[beer.BrewerID]
	if !found {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBrewer, beer.BrewerID)
	}

	index := slices.IndexFunc(brewer.Beers, func(existing model.Beer) bool { return existing.Name == beer.Name })
	if index >= 0 {
		beer.ID = brewer.Beers[index].ID
		brewer.Beers[index] = beer
	} else {
		beer.ID = s.nextBeer
		s.nextBeer++
		brewer.Beers = append(brewer.Beers, beer)
	}

	s.brewers[beer.BrewerID] = brewer

	return &beer, nil
}

func (s *Store) NewBrewerSession() *BrewerSession {
	return &BrewerSession{store: s, tracked: make(map[uint]*trackedBrewer)}
}

func (s *Store) Locations() *LocationStore {
	return &LocationStore{store: s}
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) insert(brewer *model.Brewer) {
	if brewer.ID == 0 {
		brewer.ID = s.nextID
	}

	s.nextID = max(s.nextID, brewer.ID+1)

	stored := clone(*brewer)

	for index := range stored.Beers {
		beer := &stored.Beers[index]
		if beer.ID == 0 {
			beer.ID = s.nextBeer
		}

		beer.BrewerID = stored.ID
		s.nextBeer = max(s.nextBeer, beer.ID+1)
	}

	s.brewers[brewer.ID] = stored
}

// update writes the persisted columns of brewer over the stored record.
func (s *Store) update(brewer *model.Brewer) {
	stored, found := s.brewers[brewer.ID]
	if !found {
		return
	}

	stored.Name = brewer.Name
	stored.Street = brewer.Street
	stored.Turnover = brewer.Turnover
	stored.LocationPostalCode = brewer.PostalCode()
	stored.Location = nil
	s.brewers[brewer.ID] = stored
}

// load resolves the stored foreign key against the current reference data.
func (s *Store) load(brewer model.Brewer, withBeers bool) *model.Brewer {
	loaded := clone(brewer)
	loaded.Location = nil

	if loaded.LocationPostalCode != nil {
		if location, found := s.locations[*loaded.LocationPostalCode]; found {
			loaded.Location = &location
		}
	}

	if !withBeers {
		loaded.Beers = nil
	}

	return &loaded
}

func clone(brewer model.Brewer) model.Brewer {
	if brewer.LocationPostalCode != nil {
		postalCode := *brewer.LocationPostalCode
		brewer.LocationPostalCode = &postalCode
	}

	if brewer.Location != nil {
		location := *brewer.Location
		brewer.Location = &location
	}

	brewer.Beers = slices.Clone(brewer.Beers)

	return brewer
}

type LocationStore struct {
	store *Store
}

func (l *LocationStore) GetAll(_ context.Context) ([]*model.Location, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()

	locations := make([]*model.Location, 0, len(l.store.locations))

	for _, location := range l.store.locations {
		locations = append(locations, &location)
	}

	return locations, nil
}

func (l *LocationStore) GetBy(_ context.Context, postalCode string) (*model.Location, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()

	location, found := l.store.locations[postalCode]
	if !found {
		return nil, nil //nolint:nilnil // absent is not an error for lookups
	}

	return &location, nil
}

type trackedBrewer struct {
	brewer   *model.Brewer
	original repository.Snapshot
}

// BrewerSession hands out copies of stored brewers; nothing reaches the store
// before SaveChanges.
type BrewerSession struct {
	store   *Store
	tracked map[uint]*trackedBrewer
	added   []*model.Brewer
	deleted []*model.Brewer
}

func (b *BrewerSession) GetAll(_ context.Context) ([]*model.Brewer, error) {
	return b.all(false), nil
}

func (b *BrewerSession) GetAllWithBeers(_ context.Context) ([]*model.Brewer, error) {
	return b.all(true), nil
}

func (b *BrewerSession) GetBy(_ context.Context, brewerID uint) (*model.Brewer, error) {
	return b.one(brewerID, false), nil
}

func (b *BrewerSession) GetByWithBeers(_ context.Context, brewerID uint) (*model.Brewer, error) {
	return b.one(brewerID, true), nil
}

func (b *BrewerSession) all(withBeers bool) []*model.Brewer {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	brewers := make([]*model.Brewer, 0, len(b.store.brewers))

	for _, brewer := range b.store.brewers {
		brewers = append(brewers, b.track(b.store.load(brewer, withBeers)))
	}

	slices.SortFunc(brewers, func(left, right *model.Brewer) int {
		return cmp.Compare(left.Name, right.Name)
	})

	return brewers
}

func (b *BrewerSession) one(brewerID uint, withBeers bool) *model.Brewer {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	brewer, found := b.store.brewers[brewerID]
	if !found {
		return nil
	}

	return b.track(b.store.load(brewer, withBeers))
}

func (b *BrewerSession) track(brewer *model.Brewer) *model.Brewer {
	if existing, found := b.tracked[brewer.ID]; found {
		if brewer.Beers != nil {
			existing.brewer.Beers = brewer.Beers
		}

		return existing.brewer
	}

	b.tracked[brewer.ID] = &trackedBrewer{brewer: brewer, original: repository.SnapshotOf(brewer)}

	return brewer
}

func (b *BrewerSession) Add(brewer *model.Brewer) {
	if brewer == nil || slices.Contains(b.added, brewer) {
		return
	}

	b.added = append(b.added, brewer)
}

func (b *BrewerSession) Delete(brewer *model.Brewer) {
	if brewer == nil {
		return
	}

	if index := slices.Index(b.added, brewer); index >= 0 {
		b.added = slices.Delete(b.added, index, index+1)

		return
	}

	delete(b.tracked, brewer.ID)

	if !slices.Contains(b.deleted, brewer) {
		b.deleted = append(b.deleted, brewer)
	}
}

// SaveChanges writes the brewers changed since they were loaded; between
// sessions the last writer wins.
func (b *BrewerSession) SaveChanges(_ context.Context) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	if b.store.failWith != nil {
		return b.store.failWith
	}

	for _, entry := range b.tracked {
		if entry.original.Differs(entry.brewer) {
			b.store.update(entry.brewer)
		}
	}

	for _, brewer := range b.added {
		b.store.insert(brewer)
		b.tracked[brewer.ID] = &trackedBrewer{brewer: brewer}
	}

	for _, brewer := range b.deleted {
		delete(b.store.brewers, brewer.ID)
	}

	for _, entry := range b.tracked {
		entry.original = repository.SnapshotOf(entry.brewer)
	}

	b.added = nil
	b.deleted = nil
	b.store.commits++

	return nil
}
