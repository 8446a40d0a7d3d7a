package server_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"

	"droscher.com/BeerHall/pkg/model"
	"droscher.com/BeerHall/pkg/server"
)

func TestToEditView_CopiesEditableFields(t *testing.T) {
	brewer := model.NewBrewer("Bavik")
	brewer.Street = "Rijksweg 33"
	brewer.Turnover = decimal.NewFromInt(20000000)
	brewer.SetLocation(&model.Location{PostalCode: "8531", Name: "Bavikhove"})

	view := server.ToEditView(brewer)

	assert.Equal(t, "Bavik", view.Name)
	assert.Equal(t, "Rijksweg 33", view.Street)
	assert.Equal(t, pointy.String("8531"), view.PostalCode)
	assert.True(t, decimal.NewFromInt(20000000).Equal(view.Turnover))

	*view.PostalCode = "9000"
	assert.Equal(t, "8531", *brewer.PostalCode())
}

func TestToEditView_NoLocation(t *testing.T) {
	view := server.ToEditView(model.NewBrewer("De Leeuw"))

	assert.Nil(t, view.PostalCode)
	assert.True(t, view.Turnover.IsZero())
}

func TestApplyEditView_OverwritesFields(t *testing.T) {
	brewer := model.NewBrewer("Bavik")
	brewer.SetLocation(&model.Location{PostalCode: "8531", Name: "Bavikhove"})
	puurs := &model.Location{PostalCode: "2870", Name: "Puurs"}

	server.ApplyEditView(server.EditView{
		Name:       "Duvel Moortgat",
		Street:     "Breendonkdorp 58",
		PostalCode: pointy.String("2870"),
		Turnover:   decimal.NewFromInt(50000),
	}, brewer, puurs)

	assert.Equal(t, "Duvel Moortgat", brewer.Name)
	assert.Equal(t, "Breendonkdorp 58", brewer.Street)
	assert.Same(t, puurs, brewer.Location)
	assert.Equal(t, pointy.String("2870"), brewer.LocationPostalCode)
	assert.True(t, decimal.NewFromInt(50000).Equal(brewer.Turnover))
}

func TestApplyEditView_NilLocationClearsForeignKey(t *testing.T) {
	brewer := model.NewBrewer("Bavik")
	brewer.SetLocation(&model.Location{PostalCode: "8531", Name: "Bavikhove"})

	server.ApplyEditView(server.EditView{Name: "Bavik"}, brewer, nil)

	assert.Nil(t, brewer.Location)
	assert.Nil(t, brewer.LocationPostalCode)
}

func TestApplyEditView_TrimsNameAndStreet(t *testing.T) {
	brewer := model.NewBrewer("Bavik")

	server.ApplyEditView(server.EditView{Name: "  De Leeuw\t", Street: " Peter Schunckstraat 1 "}, brewer, nil)

	assert.Equal(t, "De Leeuw", brewer.Name)
	assert.Equal(t, "Peter Schunckstraat 1", brewer.Street)
}

func TestDescribe_JoinsProblemsWithoutSentinel(t *testing.T) {
	err := server.EditView{Name: " ", Turnover: decimal.NewFromInt(-1)}.Validate()

	assert.Equal(t, "name is required, turnover cannot be negative", server.Describe(err))
}

func TestEditView_Validate(t *testing.T) {
	tests := []struct {
		name     string
		view     server.EditView
		problems []string
	}{
		{name: "valid", view: server.EditView{Name: "Bavik", Turnover: decimal.NewFromInt(1)}},
		{name: "zero turnover", view: server.EditView{Name: "Bavik"}},
		{name: "exactly fifty characters", view: server.EditView{Name: "Brouwerij Sint-Bernardus en de Gebroeders Van Eeck"}},
		{name: "fifty accented characters", view: server.EditView{Name: "éééééééééééééééééééééééééééééééééééééééééééééééééé"}},
		{name: "empty name", view: server.EditView{}, problems: []string{"bad request: name is required"}},
		{name: "blank name", view: server.EditView{Name: " \t "}, problems: []string{"bad request: name is required"}},
		{
			name:     "long name",
			view:     server.EditView{Name: "Brouwerij Sint-Bernardus en de Gebroeders Van Eecke"},
			problems: []string{"bad request: name cannot be longer than 50 characters"},
		},
		{
			name:     "negative turnover",
			view:     server.EditView{Name: "Bavik", Turnover: decimal.RequireFromString("-0.01")},
			problems: []string{"bad request: turnover cannot be negative"},
		},
		{
			name:     "every problem at once",
			view:     server.EditView{Turnover: decimal.NewFromInt(-5)},
			problems: []string{"bad request: name is required", "bad request: turnover cannot be negative"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.view.Validate()

			if len(test.problems) == 0 {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, server.ErrInvalidInput)

			for _, problem := range test.problems {
				assert.ErrorContains(t, err, problem)
			}
		})
	}
}
