package service

import (
	"bytes"
	"testing"
	"time"

	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestListActivitiesAppliesFilter(t *testing.T) {
	invSvc, backend, owner, store := setup(t)
	svc := NewActivityService(repository.BackendSelector{Remote: backend, Demo: newMockBackend()})

	product := addProduct(t, invSvc, owner, store, "Cotton Fabric", 100)
	_, err := invSvc.SetQuantity(owner, product.ID, 150)
	require.NoError(t, err)
	_, err = invSvc.SetQuantity(owner, product.ID, 140)
	require.NoError(t, err)

	all, err := svc.ListActivities(owner, repository.ActivityFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3) // added, restocked, removed

	restocks, err := svc.ListActivities(owner, repository.ActivityFilter{ActionType: "restocked"})
	require.NoError(t, err)
	require.Len(t, restocks, 1)
	assert.Equal(t, model.ActionProductRestock, restocks[0].Action)
	assert.Equal(t, 50, *restocks[0].QuantityChange)
}

func TestExportActivities(t *testing.T) {
	invSvc, backend, owner, store := setup(t)
	svc := NewActivityService(repository.BackendSelector{Remote: backend, Demo: newMockBackend()})

	product := addProduct(t, invSvc, owner, store, "Cotton Fabric", 100)
	_, err := invSvc.SetQuantity(owner, product.ID, 140)
	require.NoError(t, err)

	// an entry with no quantity fields renders as N/A
	backend.entries = append(backend.entries, &model.ActivityLog{
		ID:        uuid.New(),
		UserID:    owner.ID,
		Action:    model.ActionProductDeleted,
		Timestamp: time.Now(),
	})

	data, fileName, err := svc.ExportActivities(owner, repository.ActivityFilter{})
	require.NoError(t, err)
	assert.Contains(t, fileName, "activity-report-")
	assert.Contains(t, fileName, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Activity Report")
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 3 entries

	assert.Equal(t, "Previous Quantity", rows[0][4])

	var sawNA, sawChange bool
	for _, row := range rows[1:] {
		if row[1] == model.ActionProductDeleted && row[4] == "N/A" && row[6] == "N/A" {
			sawNA = true
		}
		if row[1] == model.ActionProductRestock && row[6] == "40" {
			sawChange = true
		}
	}
	assert.True(t, sawNA, "entry without quantities should render N/A")
	assert.True(t, sawChange, "quantity change should be rendered as a number")
}
