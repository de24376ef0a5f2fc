package repository

import (
	"testing"
	"time"

	"textile-inventory-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndOfDay(t *testing.T) {
	day := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	end := EndOfDay(day)

	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, 999*int(time.Millisecond), end.Nanosecond())
	assert.Equal(t, day.Year(), end.Year())
	assert.Equal(t, day.Month(), end.Month())
	assert.Equal(t, day.Day(), end.Day())
}

func TestActivityFilterMatches(t *testing.T) {
	ts := time.Date(2025, 3, 14, 23, 59, 59, 999*int(time.Millisecond), time.UTC)
	rec := ActivityRecord{
		ActivityLog: model.ActivityLog{
			Action:    model.ActionProductRestock,
			Timestamp: ts,
		},
		ProductName: "Cotton Fabric",
		StoreName:   "Store A - NMB Branch",
	}

	t.Run("Empty filter matches everything", func(t *testing.T) {
		assert.True(t, ActivityFilter{}.Matches(rec))
	})

	t.Run("Search is case-insensitive across fields", func(t *testing.T) {
		assert.True(t, ActivityFilter{Search: "cotton"}.Matches(rec))
		assert.True(t, ActivityFilter{Search: "RESTOCKED"}.Matches(rec))
		assert.True(t, ActivityFilter{Search: "nmb"}.Matches(rec))
		assert.False(t, ActivityFilter{Search: "silk"}.Matches(rec))
	})

	t.Run("Action type is a case-insensitive substring", func(t *testing.T) {
		assert.True(t, ActivityFilter{ActionType: "restocked"}.Matches(rec))
		assert.True(t, ActivityFilter{ActionType: "Restock"}.Matches(rec))
		assert.False(t, ActivityFilter{ActionType: "deleted"}.Matches(rec))
	})

	t.Run("DateTo includes the whole end day", func(t *testing.T) {
		to := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
		assert.True(t, ActivityFilter{DateTo: &to}.Matches(rec))

		// one millisecond past end of day falls outside
		late := rec
		late.Timestamp = EndOfDay(to).Add(time.Millisecond)
		assert.False(t, ActivityFilter{DateTo: &to}.Matches(late))
	})

	t.Run("DateFrom is inclusive", func(t *testing.T) {
		from := ts
		assert.True(t, ActivityFilter{DateFrom: &from}.Matches(rec))

		early := rec
		early.Timestamp = ts.Add(-time.Millisecond)
		assert.False(t, ActivityFilter{DateFrom: &from}.Matches(early))
	})
}

func TestDemoBackendSeedsStores(t *testing.T) {
	backend := NewDemoBackend()
	ownerID := uuid.New()

	stores, err := backend.ListStores(ownerID)
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "Store A - NMB Branch", stores[0].Name)
	assert.Equal(t, "Store B - Msimbazi", stores[1].Name)
	for _, s := range stores {
		assert.Equal(t, ownerID, s.OwnerID)
		assert.True(t, s.IsActive)
	}

	// idempotent per owner
	stores, err = backend.ListStores(ownerID)
	require.NoError(t, err)
	assert.Len(t, stores, 2)

	// another demo owner gets an isolated pair
	other, err := backend.ListStores(uuid.New())
	require.NoError(t, err)
	assert.Len(t, other, 2)
	assert.NotEqual(t, stores[0].ID, other[0].ID)
}

func TestDemoBackendProducts(t *testing.T) {
	backend := NewDemoBackend()
	ownerID := uuid.New()

	stores, err := backend.ListStores(ownerID)
	require.NoError(t, err)

	product := &model.Product{
		Name:     "Demo Fabric",
		Form:     model.FormMeters,
		Quantity: 20,
		StoreID:  stores[0].ID,
		OwnerID:  ownerID,
	}
	require.NoError(t, backend.CreateProduct(product, model.NewProductAddedLog(model.NewDemoActor("s"), product)))
	assert.NotEqual(t, uuid.Nil, product.ID)

	updated, err := backend.UpdateQuantity(product.ID, 15, nil)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Quantity)

	found, err := backend.FindProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, found.Quantity)

	require.NoError(t, backend.DeleteProduct(product.ID, nil))
	_, err = backend.FindProduct(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDemoBackendCannedActivities(t *testing.T) {
	backend := NewDemoBackend()
	actor := model.NewDemoActor("session-1")

	records, err := backend.ListActivities(actor, ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	// newest first
	assert.Equal(t, "Silk Fabric", records[0].ProductName)
	assert.Equal(t, "Canvas Material", records[1].ProductName)
	assert.True(t, records[0].Timestamp.After(records[1].Timestamp))

	first := records[0]
	assert.Equal(t, model.ActionProductRemoved, first.Action)
	assert.Equal(t, -10, *first.QuantityChange)
	assert.Equal(t, 150, *first.PreviousQuantity)
	assert.Equal(t, 140, *first.NewQuantity)

	t.Run("Filterable like real entries", func(t *testing.T) {
		records, err := backend.ListActivities(actor, ActivityFilter{Search: "canvas"})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Canvas Material", records[0].ProductName)
	})

	t.Run("Stable per session", func(t *testing.T) {
		again, err := backend.ListActivities(actor, ActivityFilter{})
		require.NoError(t, err)
		require.Len(t, again, 2)
		assert.Equal(t, records[0].ID, again[0].ID)
	})
}
