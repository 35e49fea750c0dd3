package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/listing"
)

func vehicleSnapshot(n int, hasMore bool) listing.Snapshot[domain.Record] {
	items := make([]domain.Record, n)
	for i := range items {
		items[i] = &domain.Vehicle{ID: int64(i + 1), Name: "Truck"}
	}
	lastPage := 1
	if hasMore {
		lastPage = 2
	}
	return listing.Snapshot[domain.Record]{
		Items:      items,
		Pagination: domain.Pagination{CurrentPage: 1, LastPage: lastPage, Total: n},
	}
}

func TestListViewCursorClampsOnShrink(t *testing.T) {
	v := NewListView(domain.ResourceVehicles)
	v.SetSize(80, 24)
	v.SetSnapshot(vehicleSnapshot(5, false), nil)

	for i := 0; i < 4; i++ {
		v.MoveDown()
	}
	require.NotNil(t, v.Selected())
	assert.Equal(t, int64(5), v.Selected().GetID())

	// A narrower result set pulls the cursor back in range
	v.SetSnapshot(vehicleSnapshot(2, false), nil)
	require.NotNil(t, v.Selected())
	assert.Equal(t, int64(2), v.Selected().GetID())
}

func TestListViewMoveDownSignalsLoadMoreAtEnd(t *testing.T) {
	v := NewListView(domain.ResourceVehicles)
	v.SetSize(80, 24)
	v.SetSnapshot(vehicleSnapshot(2, true), nil)

	assert.False(t, v.MoveDown())
	assert.True(t, v.MoveDown(), "cursor at the last loaded row should request the next page")
}

func TestListViewMoveDownNoSignalOnLastPage(t *testing.T) {
	v := NewListView(domain.ResourceVehicles)
	v.SetSize(80, 24)
	v.SetSnapshot(vehicleSnapshot(2, false), nil)

	v.MoveDown()
	assert.False(t, v.MoveDown())
}

func TestListViewSelectedNilWhenEmpty(t *testing.T) {
	v := NewListView(domain.ResourceVehicles)
	v.SetSnapshot(listing.Snapshot[domain.Record]{}, nil)

	assert.Nil(t, v.Selected())
}
