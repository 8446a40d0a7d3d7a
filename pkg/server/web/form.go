package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"go.openly.dev/pointy"

	"droscher.com/BeerHall/pkg/server"
)

const (
	fieldName       = "Name"
	fieldStreet     = "Street"
	fieldPostalCode = "PostalCode"
	fieldTurnover   = "Turnover"
)

// decodeEditView reads a submitted brewer form. An empty postal code means no
// location and an empty turnover means zero.
func decodeEditView(r *http.Request) (server.EditView, error) {
	if err := r.ParseForm(); err != nil {
		return server.EditView{}, fmt.Errorf("%w: %w", server.ErrInvalidInput, err)
	}

	view := server.EditView{
		Name:     strings.TrimSpace(r.PostForm.Get(fieldName)),
		Street:   strings.TrimSpace(r.PostForm.Get(fieldStreet)),
		Turnover: decimal.Zero,
	}

	if postalCode := strings.TrimSpace(r.PostForm.Get(fieldPostalCode)); len(postalCode) > 0 {
		view.PostalCode = pointy.String(postalCode)
	}

	if raw := strings.TrimSpace(r.PostForm.Get(fieldTurnover)); len(raw) > 0 {
		turnover, err := decimal.NewFromString(raw)
		if err != nil {
			return server.EditView{}, fmt.Errorf("%w: turnover %q is not a number", server.ErrInvalidInput, raw)
		}

		view.Turnover = turnover
	}

	return view, nil
}
