package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The backend's documented 422 messages for common constraint violations.
// Client-side validation must produce identical wording so a user sees the
// same message whether the rejection happens locally or on the server.
var serverMessages = map[string]map[string]string{
	"vehicles": {
		"name":         "Name is required",
		"registration": "Registration is required",
	},
	"contacts": {
		"name":  "Name is required",
		"email": "Email must be a valid email address",
	},
	"fault-reports": {
		"title":       "Title is required",
		"description": "Description is required",
	},
	"group-messages": {
		"subject": "Subject is required",
		"body":    "Body is required",
	},
}

func validateEmpty(t *testing.T, fields []Field) *Form {
	t.Helper()
	f := New(NopNotifier{}, fields...)
	require.False(t, f.Validate())
	return f
}

func TestClientMessagesMatchServerWording(t *testing.T) {
	forms := map[string]*Form{
		"vehicles":       validateEmpty(t, VehicleFields()),
		"contacts":       validateEmpty(t, ContactFields()),
		"fault-reports":  validateEmpty(t, FaultReportFields()),
		"group-messages": validateEmpty(t, GroupMessageFields()),
	}
	// The email rule only fires on non-empty input.
	forms["contacts"].SetValue("email", "nope")
	forms["contacts"].Validate()

	for resource, fields := range serverMessages {
		for field, want := range fields {
			got := forms[resource].FieldError(field)
			assert.Equal(t, want, got, "%s.%s drifted from the server's message", resource, field)
		}
	}
}

func TestEveryRuleSetHasWireNames(t *testing.T) {
	sets := [][]Field{
		VehicleFields(), ContactFields(), FaultReportFields(),
		TireFields(), CategoryFields(), GroupMessageFields(),
	}
	for _, fields := range sets {
		seen := map[string]bool{}
		for _, f := range fields {
			assert.NotEmpty(t, f.Name)
			assert.NotEmpty(t, f.Label)
			assert.NotEmpty(t, f.Section)
			assert.False(t, seen[f.Name], "duplicate field name %q", f.Name)
			seen[f.Name] = true
		}
	}
}
