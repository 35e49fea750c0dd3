package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

func TestRecordFetcherAdaptsTypedPages(t *testing.T) {
	list := func(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Vehicle], error) {
		return domain.Page[domain.Vehicle]{
			Items: []domain.Vehicle{
				{ID: 1, Name: "Truck 1"},
				{ID: 2, Name: "Truck 2"},
			},
			Pagination: domain.Pagination{CurrentPage: 1, LastPage: 3, Total: 41},
		}, nil
	}

	fetch := recordFetcher[domain.Vehicle, *domain.Vehicle](list)

	page, err := fetch(context.Background(), domain.NewListQuery())
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(1), page.Items[0].GetID())
	assert.Equal(t, "Truck 2", page.Items[1].GetTitle())
	assert.Equal(t, 41, page.Pagination.Total)
	assert.True(t, page.Pagination.HasMore())
}

func TestRecordFetcherPropagatesErrors(t *testing.T) {
	list := func(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Vehicle], error) {
		return domain.Page[domain.Vehicle]{}, domain.ErrServerOffline
	}

	fetch := recordFetcher[domain.Vehicle, *domain.Vehicle](list)

	_, err := fetch(context.Background(), domain.NewListQuery())
	assert.ErrorIs(t, err, domain.ErrServerOffline)
}
