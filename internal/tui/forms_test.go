package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/form"
)

func TestEditableResources(t *testing.T) {
	assert.True(t, editable(domain.ResourceVehicles))
	assert.True(t, editable(domain.ResourceFaultReports))
	assert.True(t, editable(domain.ResourceGroupMessages))

	// Billing records are read-only in the companion client
	assert.False(t, editable(domain.ResourceInvoices))
	assert.False(t, editable(domain.ResourceQuotes))
}

func TestUpdatableResources(t *testing.T) {
	assert.True(t, updatable(domain.ResourceVehicles))
	assert.True(t, updatable(domain.ResourceContacts))

	// Fault reports and group messages are append-only
	assert.False(t, updatable(domain.ResourceFaultReports))
	assert.False(t, updatable(domain.ResourceGroupMessages))
}

func TestPrefillVehicle(t *testing.T) {
	f := newForm(domain.ResourceVehicles, form.NopNotifier{})
	require.NotNil(t, f)

	prefill(f, &domain.Vehicle{
		Name:         "Truck 7",
		Registration: "B-FD 700",
		Make:         "MAN",
		Model:        "TGX",
		Year:         2021,
		Type:         "truck",
		Status:       domain.VehicleStatusMaintenance,
		Mileage:      185000,
	})

	assert.Equal(t, "Truck 7", f.Value("name"))
	assert.Equal(t, "B-FD 700", f.Value("registration"))
	assert.Equal(t, "2021", f.Value("year"))
	assert.Equal(t, "185000", f.Value("mileage"))
	assert.Equal(t, "maintenance", f.Value("status"))
}

func TestPrefillLeavesZeroNumbersBlank(t *testing.T) {
	f := newForm(domain.ResourceVehicles, form.NopNotifier{})
	require.NotNil(t, f)

	prefill(f, &domain.Vehicle{Name: "Trailer 2", Status: domain.VehicleStatusActive})

	assert.Empty(t, f.Value("year"))
	assert.Empty(t, f.Value("mileage"))
}

func TestNewFormSeedsDefaults(t *testing.T) {
	f := newForm(domain.ResourceFaultReports, form.NopNotifier{})
	require.NotNil(t, f)
	assert.Equal(t, "medium", f.Value("severity"))

	f = newForm(domain.ResourceTires, form.NopNotifier{})
	require.NotNil(t, f)
	assert.Equal(t, "new", f.Value("condition"))
	assert.Equal(t, "1", f.Value("quantity"))
}

func TestSplitGroups(t *testing.T) {
	assert.Equal(t, []string{"drivers", "dispatch"}, splitGroups("drivers, dispatch"))
	assert.Equal(t, []string{"drivers"}, splitGroups("drivers,, "))
	assert.Nil(t, splitGroups("  "))
}

func TestPickerForMapsReferenceFields(t *testing.T) {
	kind, ok := pickerFor(domain.ResourceFaultReports, "vehicle_id")
	require.True(t, ok)
	assert.Equal(t, RefVehicles, kind)

	kind, ok = pickerFor(domain.ResourceCategories, "parent_id")
	require.True(t, ok)
	assert.Equal(t, RefCategories, kind)

	_, ok = pickerFor(domain.ResourceFaultReports, "title")
	assert.False(t, ok)
}
