package server

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerHall/pkg/model"
	"droscher.com/BeerHall/pkg/repository"
)

var (
	ErrBrewerNotFound = errors.New("brewer not found")
	ErrInvalidInput   = errors.New("bad request")
)

// Action names the page a write flow continues with.
type Action string

const ActionIndex Action = "Index"

type Status int

const (
	StatusSuccess Status = iota
	StatusValidationRejected
	StatusNotFound
	StatusStoreError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusValidationRejected:
		return "validation rejected"
	case StatusNotFound:
		return "not found"
	case StatusStoreError:
		return "store error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is the result of a write. Write flows never return errors, every
// failure is folded into Status and a message meant for the user.
type Outcome struct {
	Status   Status
	Message  string
	Navigate Action
	Brewer   *model.Brewer
}

func (o Outcome) Succeeded() bool {
	return o.Status == StatusSuccess
}

type BrewerList struct {
	Brewers       []*model.Brewer
	TotalTurnover decimal.Decimal
}

type LocationOption struct {
	PostalCode string
	Name       string
	Selected   bool
}

type EditForm struct {
	BrewerID  uint
	IsEdit    bool
	View      EditView
	Locations []LocationOption
}

type DeleteConfirmation struct {
	BrewerID uint
	Name     string
}

// BrewerServer holds the brewer use cases. The brewer repository is a unit of
// work, so a BrewerServer is meant to live for a single request.
type BrewerServer struct {
	brewers   repository.BrewerRepository
	locations repository.LocationRepository
	logger    *zap.Logger
}

func NewBrewerServer(brewers repository.BrewerRepository, locations repository.LocationRepository, logger *zap.Logger) *BrewerServer {
	return &BrewerServer{brewers: brewers, locations: locations, logger: logger}
}

func (b *BrewerServer) Index(ctx context.Context) (*BrewerList, error) {
	brewers, err := b.brewers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return newBrewerList(brewers), nil
}

// Catalog is Index with every brewer's beers loaded.
func (b *BrewerServer) Catalog(ctx context.Context) (*BrewerList, error) {
	brewers, err := b.brewers.GetAllWithBeers(ctx)
	if err != nil {
		return nil, err
	}

	return newBrewerList(brewers), nil
}

func newBrewerList(brewers []*model.Brewer) *BrewerList {
	sorted := slices.Clone(brewers)
	slices.SortStableFunc(sorted, func(a, b *model.Brewer) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return &BrewerList{Brewers: sorted, TotalTurnover: totalTurnover(sorted)}
}

func totalTurnover(brewers []*model.Brewer) decimal.Decimal {
	total := decimal.Zero

	for _, brewer := range brewers {
		total = total.Add(brewer.Turnover)
	}

	return total
}

func (b *BrewerServer) Details(ctx context.Context, brewerID uint) (*model.Brewer, error) {
	brewer, err := b.brewers.GetByWithBeers(ctx, brewerID)
	if err != nil {
		return nil, err
	}

	if brewer == nil {
		return nil, fmt.Errorf("%w: id %d", ErrBrewerNotFound, brewerID)
	}

	return brewer, nil
}

func (b *BrewerServer) EditForm(ctx context.Context, brewerID uint) (*EditForm, error) {
	brewer, err := b.brewers.GetBy(ctx, brewerID)
	if err != nil {
		return nil, err
	}

	if brewer == nil {
		return nil, fmt.Errorf("%w: id %d", ErrBrewerNotFound, brewerID)
	}

	view := ToEditView(brewer)

	options, err := b.locationOptions(ctx, view.PostalCode)
	if err != nil {
		return nil, err
	}

	return &EditForm{BrewerID: brewer.ID, IsEdit: true, View: view, Locations: options}, nil
}

func (b *BrewerServer) CreateForm(ctx context.Context) (*EditForm, error) {
	options, err := b.locationOptions(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &EditForm{View: EditView{Turnover: decimal.Zero}, Locations: options}, nil
}

// locationOptions lists every location by name, marking selected if given.
func (b *BrewerServer) locationOptions(ctx context.Context, selected *string) ([]LocationOption, error) {
	locations, err := b.locations.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(locations, func(a, b *model.Location) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.PostalCode, b.PostalCode))
	})

	options := make([]LocationOption, 0, len(locations))

	for _, location := range locations {
		options = append(options, LocationOption{
			PostalCode: location.PostalCode,
			Name:       location.Name,
			Selected:   selected != nil && *selected == location.PostalCode,
		})
	}

	return options, nil
}

// Edit applies the view to an existing brewer and commits it. An invalid view
// leaves the brewer untouched and nothing is committed.
func (b *BrewerServer) Edit(ctx context.Context, brewerID uint, view EditView) Outcome {
	brewer, err := b.brewers.GetBy(ctx, brewerID)
	if err != nil {
		return b.storeFailure(err, fmt.Sprintf("Sorry, something went wrong, brewer %d was not saved...", brewerID), nil)
	}

	if brewer == nil {
		return b.notFound(brewerID)
	}

	if err = view.Validate(); err != nil {
		b.logger.Warn("rejected brewer edit", zap.Uint("brewer_id", brewerID), zap.Error(err))

		return Outcome{
			Status:   StatusValidationRejected,
			Message:  fmt.Sprintf("Brewer %s was not saved: %s", brewer.Name, Describe(err)),
			Navigate: ActionIndex,
			Brewer:   brewer,
		}
	}

	failure := fmt.Sprintf("Sorry, something went wrong, brewer %s was not saved...", brewer.Name)

	location, err := b.resolveLocation(ctx, view.PostalCode)
	if err != nil {
		return b.storeFailure(err, failure, brewer)
	}

	ApplyEditView(view, brewer, location)

	if err = b.brewers.SaveChanges(ctx); err != nil {
		return b.storeFailure(err, failure, brewer)
	}

	return Outcome{
		Status:   StatusSuccess,
		Message:  fmt.Sprintf("You successfully saved brewer %s", brewer.Name),
		Navigate: ActionIndex,
		Brewer:   brewer,
	}
}

// Create registers a new brewer built from the view and commits it. An
// invalid view registers nothing.
func (b *BrewerServer) Create(ctx context.Context, view EditView) Outcome {
	if err := view.Validate(); err != nil {
		b.logger.Warn("rejected new brewer", zap.String("name", view.Name), zap.Error(err))

		return Outcome{
			Status:   StatusValidationRejected,
			Message:  "The new brewer was not created: " + Describe(err),
			Navigate: ActionIndex,
		}
	}

	failure := fmt.Sprintf("Sorry, something went wrong, brewer %s was not created...", view.Name)

	location, err := b.resolveLocation(ctx, view.PostalCode)
	if err != nil {
		return b.storeFailure(err, failure, nil)
	}

	brewer := model.NewBrewer(view.Name)
	ApplyEditView(view, brewer, location)

	b.brewers.Add(brewer)

	if err = b.brewers.SaveChanges(ctx); err != nil {
		return b.storeFailure(err, failure, nil)
	}

	return Outcome{
		Status:   StatusSuccess,
		Message:  fmt.Sprintf("You successfully created brewer %s", brewer.Name),
		Navigate: ActionIndex,
		Brewer:   brewer,
	}
}

func (b *BrewerServer) DeleteForm(ctx context.Context, brewerID uint) (*DeleteConfirmation, error) {
	brewer, err := b.brewers.GetBy(ctx, brewerID)
	if err != nil {
		return nil, err
	}

	if brewer == nil {
		return nil, fmt.Errorf("%w: id %d", ErrBrewerNotFound, brewerID)
	}

	return &DeleteConfirmation{BrewerID: brewer.ID, Name: brewer.Name}, nil
}

func (b *BrewerServer) Delete(ctx context.Context, brewerID uint) Outcome {
	brewer, err := b.brewers.GetBy(ctx, brewerID)
	if err != nil {
		return b.storeFailure(err, fmt.Sprintf("Sorry, something went wrong, brewer %d was not deleted...", brewerID), nil)
	}

	if brewer == nil {
		return b.notFound(brewerID)
	}

	b.brewers.Delete(brewer)

	if err = b.brewers.SaveChanges(ctx); err != nil {
		return b.storeFailure(err, fmt.Sprintf("Sorry, something went wrong, brewer %s was not deleted...", brewer.Name), brewer)
	}

	return Outcome{
		Status:   StatusSuccess,
		Message:  fmt.Sprintf("You successfully deleted brewer %s", brewer.Name),
		Navigate: ActionIndex,
		Brewer:   brewer,
	}
}

// resolveLocation maps a missing postal code, or one without a location, to nil.
func (b *BrewerServer) resolveLocation(ctx context.Context, postalCode *string) (*model.Location, error) {
	if postalCode == nil {
		return nil, nil //nolint:nilnil // no location requested
	}

	location, err := b.locations.GetBy(ctx, *postalCode)
	if err != nil {
		return nil, err
	}

	if location == nil {
		b.logger.Warn("unknown postal code", zap.String("postal_code", *postalCode))
	}

	return location, nil
}

func (b *BrewerServer) notFound(brewerID uint) Outcome {
	b.logger.Warn("brewer not found", zap.Uint("brewer_id", brewerID))

	return Outcome{
		Status:   StatusNotFound,
		Message:  fmt.Sprintf("Brewer %d was not found", brewerID),
		Navigate: ActionIndex,
	}
}

func (b *BrewerServer) storeFailure(err error, message string, brewer *model.Brewer) Outcome {
	fields := []zap.Field{zap.Error(err)}
	if brewer != nil {
		fields = append(fields, zap.Uint("brewer_id", brewer.ID), zap.String("name", brewer.Name))
	}

	b.logger.Error("error storing brewer", fields...)

	return Outcome{Status: StatusStoreError, Message: message, Navigate: ActionIndex, Brewer: brewer}
}

// Describe turns validation errors into a sentence for the user.
func Describe(err error) string {
	problems := make([]string, 0, len(multierr.Errors(err)))

	for _, problem := range multierr.Errors(err) {
		problems = append(problems, strings.TrimPrefix(problem.Error(), ErrInvalidInput.Error()+": "))
	}

	return strings.Join(problems, ", ")
}
