package server_test

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"droscher.com/BeerHall/pkg/model"
	"droscher.com/BeerHall/pkg/repository/memory"
	"droscher.com/BeerHall/pkg/server"
)

var postalCodes = []string{"1000", "2870", "8531", "9000"}

func newMemoryServer(store *memory.Store) *server.BrewerServer {
	return server.NewBrewerServer(store.NewBrewerSession(), store.Locations(), zap.NewNop())
}

func seededStore() *memory.Store {
	store := memory.NewStore()
	store.AddLocations(
		model.Location{PostalCode: "1000", Name: "Brussel"},
		model.Location{PostalCode: "2870", Name: "Puurs"},
		model.Location{PostalCode: "8531", Name: "Bavikhove"},
		model.Location{PostalCode: "9000", Name: "Gent"},
	)

	return store
}

func turnoverGenerator() *rapid.Generator[decimal.Decimal] {
	return rapid.Custom(func(t *rapid.T) decimal.Decimal {
		return decimal.New(rapid.Int64Range(0, 1_000_000_000_000).Draw(t, "cents"), -2)
	})
}

func validViewGenerator() *rapid.Generator[server.EditView] {
	return rapid.Custom(func(t *rapid.T) server.EditView {
		view := server.EditView{
			Name:     rapid.StringMatching(`[A-Z][a-z]{0,20}( [A-Z][a-z]{0,20})?`).Draw(t, "name"),
			Street:   rapid.StringMatching(`([A-Z][a-z]{2,15} [0-9]{1,3})?`).Draw(t, "street"),
			Turnover: turnoverGenerator().Draw(t, "turnover"),
		}

		if rapid.Bool().Draw(t, "located") {
			postalCode := rapid.SampledFrom(postalCodes).Draw(t, "postal code")
			view.PostalCode = &postalCode
		}

		return view
	})
}

func TestIndex_TotalIsSumOfTurnovers(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := seededStore()
		turnovers := rapid.SliceOfN(turnoverGenerator(), 0, 20).Draw(t, "turnovers")
		expected := decimal.Zero

		for index, turnover := range turnovers {
			brewer := model.NewBrewer(rapid.StringMatching(`[A-Z][a-z]{1,10}`).Draw(t, "name"))
			brewer.Turnover = turnover
			store.Seed(*brewer)

			expected = expected.Add(turnovers[index])
		}

		list, err := newMemoryServer(store).Index(context.Background())
		if err != nil {
			t.Fatalf("index: %v", err)
		}

		if !expected.Equal(list.TotalTurnover) {
			t.Fatalf("total %s, expected %s", list.TotalTurnover, expected)
		}

		if len(list.Brewers) != len(turnovers) {
			t.Fatalf("got %d brewers, expected %d", len(list.Brewers), len(turnovers))
		}

		if !slices.IsSortedFunc(list.Brewers, func(a, b *model.Brewer) int { return strings.Compare(a.Name, b.Name) }) {
			t.Fatalf("brewers are not sorted by name")
		}
	})
}

func TestEditView_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		view := validViewGenerator().Draw(t, "view")
		brewer := model.NewBrewer("Placeholder")

		var location *model.Location
		if view.PostalCode != nil {
			location = &model.Location{PostalCode: *view.PostalCode}
		}

		server.ApplyEditView(view, brewer, location)
		got := server.ToEditView(brewer)

		if got.Name != view.Name || got.Street != view.Street || !got.Turnover.Equal(view.Turnover) {
			t.Fatalf("round trip changed %+v into %+v", view, got)
		}

		if (got.PostalCode == nil) != (view.PostalCode == nil) || (got.PostalCode != nil && *got.PostalCode != *view.PostalCode) {
			t.Fatalf("round trip changed postal code %v into %v", view.PostalCode, got.PostalCode)
		}
	})
}

func TestEdit_UnchangedViewLeavesBrewerIdentical(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := seededStore()
		view := validViewGenerator().Draw(t, "stored")

		brewer := model.NewBrewer(view.Name)
		brewer.Street = view.Street
		brewer.Turnover = view.Turnover
		brewer.LocationPostalCode = view.PostalCode
		brewer.Beers = []model.Beer{{Name: rapid.StringMatching(`[A-Z][a-z]{1,10}`).Draw(t, "beer")}}

		id := store.Seed(*brewer)[0]
		before, _ := store.Brewer(id)

		loaded, err := store.NewBrewerSession().GetBy(context.Background(), id)
		if err != nil || loaded == nil {
			t.Fatalf("loading brewer %d: %v", id, err)
		}

		outcome := newMemoryServer(store).Edit(context.Background(), id, server.ToEditView(loaded))
		if !outcome.Succeeded() {
			t.Fatalf("edit failed: %s", outcome.Message)
		}

		after, _ := store.Brewer(id)

		if after.ID != before.ID || after.Name != before.Name || after.Street != before.Street || !after.Turnover.Equal(before.Turnover) {
			t.Fatalf("submit cycle changed %+v into %+v", before, after)
		}

		if (after.LocationPostalCode == nil) != (before.LocationPostalCode == nil) ||
			(after.LocationPostalCode != nil && *after.LocationPostalCode != *before.LocationPostalCode) {
			t.Fatalf("submit cycle changed postal code %v into %v", before.LocationPostalCode, after.LocationPostalCode)
		}

		if len(after.Beers) != 1 || after.Beers[0].Name != before.Beers[0].Name {
			t.Fatalf("submit cycle changed beers %v into %v", before.Beers, after.Beers)
		}
	})
}

func TestEdit_InvalidInputNeverCommits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := seededStore()
		ids := store.Seed(model.Brewer{Name: "Bavik", Street: "Rijksweg 33", Turnover: decimal.NewFromInt(20000000)})
		before, _ := store.Brewer(ids[0])

		view := validViewGenerator().Draw(t, "view")
		if rapid.Bool().Draw(t, "blank name") {
			view.Name = rapid.StringMatching(`[ \t]{0,5}`).Draw(t, "blank")
		} else {
			view.Turnover = decimal.New(-rapid.Int64Range(1, 1_000_000).Draw(t, "debt"), -2)
		}

		outcome := newMemoryServer(store).Edit(context.Background(), ids[0], view)

		if outcome.Status != server.StatusValidationRejected {
			t.Fatalf("status %s, expected validation rejected", outcome.Status)
		}

		after, _ := store.Brewer(ids[0])
		if store.Commits() != 0 || after.Name != before.Name || !after.Turnover.Equal(before.Turnover) {
			t.Fatalf("rejected edit reached the store: %+v", after)
		}
	})
}

func TestCreate_ValidInputIsStoredOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := seededStore()
		view := validViewGenerator().Draw(t, "view")

		outcome := newMemoryServer(store).Create(context.Background(), view)

		if !outcome.Succeeded() {
			t.Fatalf("create failed: %s", outcome.Message)
		}

		stored, found := store.Brewer(outcome.Brewer.ID)
		if !found || store.Len() != 1 || store.Commits() != 1 {
			t.Fatalf("expected exactly one committed brewer, have %d after %d commits", store.Len(), store.Commits())
		}

		if stored.Name != view.Name || !stored.Turnover.Equal(view.Turnover) {
			t.Fatalf("stored %+v for %+v", stored, view)
		}
	})
}

func TestDelete_RemovesOnlyThatBrewer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := seededStore()
		count := rapid.IntRange(1, 10).Draw(t, "count")

		for range count {
			store.Seed(*model.NewBrewer(rapid.StringMatching(`[A-Z][a-z]{1,10}`).Draw(t, "name")))
		}

		victim := uint(rapid.IntRange(1, count).Draw(t, "victim"))

		outcome := newMemoryServer(store).Delete(context.Background(), victim)

		if !outcome.Succeeded() {
			t.Fatalf("delete failed: %s", outcome.Message)
		}

		if _, found := store.Brewer(victim); found || store.Len() != count-1 {
			t.Fatalf("brewer %d still stored or others lost, %d left of %d", victim, store.Len(), count)
		}
	})
}
