package tracker

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodTracker/internal/testutil"
	"foodTracker/models"
	"foodTracker/repository"
)

type fixture struct {
	svc          *Service
	consumptions *repository.ConsumptionRepository
	alice, bob   *models.User
	appleID      int64
	breadID      int64
}

func newFixture(t *testing.T, name string) *fixture {
	t.Helper()
	d := testutil.OpenInMemoryDB(t, name)
	f := &fixture{
		consumptions: repository.NewConsumptionRepository(d),
		alice:        &models.User{ID: testutil.SeedUser(t, d, "alice"), Username: "alice"},
		bob:          &models.User{ID: testutil.SeedUser(t, d, "bob"), Username: "bob"},
		appleID:      testutil.SeedFood(t, d, "Apple", 52),
		breadID:      testutil.SeedFood(t, d, "Bread", 265),
	}
	f.svc = NewService(repository.NewFoodRepository(d), f.consumptions)
	return f
}

func (f *fixture) count(t *testing.T, u *models.User) int {
	t.Helper()
	n, err := f.consumptions.CountByUser(context.Background(), u.ID)
	require.NoError(t, err)
	return n
}

func TestIndex_WithoutSubmission(t *testing.T) {
	f := newFixture(t, "trackerindex")

	view, err := f.svc.Index(context.Background(), f.alice, mo.None[string]())
	require.NoError(t, err)
	require.Len(t, view.Foods, 2)
	assert.Equal(t, "Apple", view.Foods[0].Name)
	assert.Equal(t, "Bread", view.Foods[1].Name)
	assert.Empty(t, view.ConsumedFoods)
	assert.Equal(t, 0, f.count(t, f.alice))
}

func TestIndex_SubmissionScenario(t *testing.T) {
	f := newFixture(t, "trackerscenario")
	ctx := context.Background()

	view, err := f.svc.Index(ctx, f.alice, mo.Some(strconv.FormatInt(f.appleID, 10)))
	require.NoError(t, err)
	require.Len(t, view.ConsumedFoods, 1)
	rec := view.ConsumedFoods[0]
	assert.Equal(t, f.alice.ID, rec.UserID)
	assert.Equal(t, f.appleID, rec.FoodID)
	require.NotNil(t, rec.Food)
	assert.Equal(t, "Apple", rec.Food.Name)

	bobView, err := f.svc.Index(ctx, f.bob, mo.None[string]())
	require.NoError(t, err)
	assert.Empty(t, bobView.ConsumedFoods)
	assert.Len(t, bobView.Foods, 2)
}

func TestRecord_NoDeduplication(t *testing.T) {
	f := newFixture(t, "trackerdup")
	ctx := context.Background()
	raw := strconv.FormatInt(f.breadID, 10)

	_, err := f.svc.Record(ctx, f.alice, raw)
	require.NoError(t, err)
	assert.Equal(t, 1, f.count(t, f.alice))

	_, err = f.svc.Record(ctx, f.alice, raw)
	require.NoError(t, err)
	assert.Equal(t, 2, f.count(t, f.alice))
}

func TestRecord_Errors(t *testing.T) {
	f := newFixture(t, "trackerrecorderr")

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "unknown food", raw: "9999", want: ErrFoodNotFound},
		{name: "empty", raw: "", want: ErrInvalidID},
		{name: "not a number", raw: "apple", want: ErrInvalidID},
		{name: "zero", raw: "0", want: ErrInvalidID},
		{name: "negative", raw: "-3", want: ErrInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Record(context.Background(), f.alice, tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, 0, f.count(t, f.alice))
		})
	}
}

func TestIndex_FailedSubmissionCreatesNothing(t *testing.T) {
	f := newFixture(t, "trackerindexerr")

	view, err := f.svc.Index(context.Background(), f.alice, mo.Some("424242"))
	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, 0, f.count(t, f.alice))
}

func TestRemove(t *testing.T) {
	f := newFixture(t, "trackerremove")
	ctx := context.Background()

	rec, err := f.svc.Record(ctx, f.alice, strconv.FormatInt(f.appleID, 10))
	require.NoError(t, err)
	rawID := strconv.FormatInt(rec.ID, 10)

	// Non-owner sees not found; the record survives.
	err = f.svc.Remove(ctx, f.bob, rawID)
	assert.ErrorIs(t, err, ErrConsumptionNotFound)
	assert.Equal(t, 1, f.count(t, f.alice))

	require.NoError(t, f.svc.Remove(ctx, f.alice, rawID))
	history, err := f.svc.History(ctx, f.alice)
	require.NoError(t, err)
	assert.Empty(t, history)

	// Deleting again is an error, not a no-op.
	assert.ErrorIs(t, f.svc.Remove(ctx, f.alice, rawID), ErrConsumptionNotFound)
	assert.ErrorIs(t, f.svc.Remove(ctx, f.alice, "x"), ErrInvalidID)
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("1.5")
	assert.ErrorIs(t, err, ErrInvalidID)
}
