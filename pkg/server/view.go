package server

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"droscher.com/BeerHall/pkg/model"
)

const maxNameLength = 50

// EditView carries the editable fields of a brewer between a form and the
// entity. A nil PostalCode means the brewer has no location.
type EditView struct {
	Name       string
	Street     string
	PostalCode *string
	Turnover   decimal.Decimal
}

// ToEditView copies the editable fields of brewer. The result shares no
// memory with the brewer.
func ToEditView(brewer *model.Brewer) EditView {
	return EditView{
		Name:       brewer.Name,
		Street:     brewer.Street,
		PostalCode: brewer.PostalCode(),
		Turnover:   brewer.Turnover,
	}
}

// ApplyEditView overwrites the editable fields of brewer with the view, name
// and street trimmed the way Validate judges them. location is the already
// resolved location for view.PostalCode and may be nil.
func ApplyEditView(view EditView, brewer *model.Brewer, location *model.Location) {
	brewer.Name = strings.TrimSpace(view.Name)
	brewer.Street = strings.TrimSpace(view.Street)
	brewer.Turnover = view.Turnover
	brewer.SetLocation(location)
}

// Validate reports every problem with the view at once; each one wraps
// ErrInvalidInput.
func (v EditView) Validate() error {
	var errs error

	name := strings.TrimSpace(v.Name)

	if len(name) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: name is required", ErrInvalidInput))
	} else if utf8.RuneCountInString(name) > maxNameLength {
		errs = multierr.Append(errs, fmt.Errorf("%w: name cannot be longer than %d characters", ErrInvalidInput, maxNameLength))
	}

	if v.Turnover.IsNegative() {
		errs = multierr.Append(errs, fmt.Errorf("%w: turnover cannot be negative", ErrInvalidInput))
	}

	return errs
}
