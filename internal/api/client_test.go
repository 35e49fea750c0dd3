package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	applog "github.com/fleetdesk/fleetdesk/internal/log"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, "test-token", applog.NullLogger())
}

func TestListParams(t *testing.T) {
	tests := []struct {
		name  string
		query domain.ListQuery
		want  string
	}{
		{
			name:  "defaults",
			query: domain.ListQuery{},
			want:  "page=1&per_page=20",
		},
		{
			name:  "explicit page",
			query: domain.ListQuery{Page: 3, PerPage: 50},
			want:  "page=3&per_page=50",
		},
		{
			name:  "search trimmed",
			query: domain.ListQuery{Search: "  scania  "},
			want:  "page=1&per_page=20&search=scania",
		},
		{
			name:  "blank search omitted",
			query: domain.ListQuery{Search: "   "},
			want:  "page=1&per_page=20",
		},
		{
			name:  "filter included",
			query: domain.ListQuery{Filters: map[string]string{"status": "active"}},
			want:  "page=1&per_page=20&status=active",
		},
		{
			name:  "all filter omitted",
			query: domain.ListQuery{Filters: map[string]string{"status": "all", "type": ""}},
			want:  "page=1&per_page=20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listParams(tt.query).Encode())
		})
	}
}

func TestListVehiclesDecodesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vehicles", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"data": [
				{"id": 1, "registration": "B-FD 1234", "make": "MAN", "model": "TGX", "status": "active", "mileage": 185000},
				{"id": 2, "registration": "B-FD 5678", "make": "Volvo", "model": "FH16", "status": "maintenance", "mileage": 92000}
			],
			"meta": {"current_page": 2, "last_page": 5, "total": 93, "per_page": 20}
		}`)
	})

	page, err := client.ListVehicles(context.Background(), domain.ListQuery{Page: 2})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "B-FD 1234", page.Items[0].Registration)
	assert.Equal(t, domain.VehicleStatusMaintenance, page.Items[1].Status)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, 5, page.Pagination.LastPage)
	assert.Equal(t, 93, page.Pagination.Total)
	assert.True(t, page.Pagination.HasMore())
}

func TestCreateVehicleSendsIdempotencyKey(t *testing.T) {
	var firstKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		key := r.Header.Get("X-Idempotency-Key")
		assert.NotEmpty(t, key)
		if firstKey == "" {
			firstKey = key
		} else {
			assert.NotEqual(t, firstKey, key)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data": {"id": 7, "registration": "B-FD 9999", "status": "active"}}`)
	})

	input := domain.VehicleInput{Registration: "B-FD 9999", Make: "MAN", Type: "truck"}

	v, err := client.CreateVehicle(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.ID)

	// A second create gets its own key.
	_, err = client.CreateVehicle(context.Background(), input)
	require.NoError(t, err)
}

func TestValidationErrorMapping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{
			"message": "The given data was invalid.",
			"errors": {
				"registration": ["The registration field is required."],
				"mileage": ["The mileage must be a number.", "The mileage must be at least 0."]
			}
		}`)
	})

	_, err := client.CreateVehicle(context.Background(), domain.VehicleInput{})
	require.Error(t, err)

	verr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "The given data was invalid.", verr.Message)
	assert.Equal(t, "The registration field is required.", verr.First("registration"))
	assert.Equal(t, "The mileage must be a number.", verr.First("mileage"))
	assert.ElementsMatch(t, []string{"registration", "mileage"}, verr.FieldNames())
}

func TestMalformedValidationBodyFallsBack(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `not json`)
	})

	_, err := client.CreateContact(context.Background(), domain.ContactInput{})
	require.Error(t, err)

	verr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.NotEmpty(t, verr.Message)
	assert.Empty(t, verr.Fields)
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, domain.ErrAuthFailed},
		{"not found", http.StatusNotFound, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.GetVehicle(context.Background(), 1)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTransportErrorMapsToServerOffline(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "token", applog.NullLogger())

	err := client.Ping(context.Background())
	assert.ErrorIs(t, err, domain.ErrServerOffline)
}

func TestServerErrorIsNotSilentlySwallowed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListInvoices(context.Background(), domain.NewListQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
