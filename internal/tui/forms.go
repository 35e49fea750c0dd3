package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/fleetdesk/fleetdesk/internal/api"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/form"
)

// Form construction and submission per resource. Field values travel
// as strings through the form; the typed inputs are assembled here.

// editable reports whether the resource has a create form
func editable(resource domain.Resource) bool {
	switch resource {
	case domain.ResourceVehicles, domain.ResourceContacts, domain.ResourceFaultReports,
		domain.ResourceTires, domain.ResourceCategories, domain.ResourceGroupMessages:
		return true
	default:
		return false
	}
}

// updatable reports whether existing records of the resource can be edited
func updatable(resource domain.Resource) bool {
	switch resource {
	case domain.ResourceVehicles, domain.ResourceContacts, domain.ResourceTires, domain.ResourceCategories:
		return true
	default:
		return false
	}
}

// newForm builds an empty form for the resource
func newForm(resource domain.Resource, notifier form.Notifier) *form.Form {
	switch resource {
	case domain.ResourceVehicles:
		f := form.New(notifier, form.VehicleFields()...)
		f.SetValue("status", "active")
		return f
	case domain.ResourceContacts:
		f := form.New(notifier, form.ContactFields()...)
		f.SetValue("type", "customer")
		return f
	case domain.ResourceFaultReports:
		f := form.New(notifier, form.FaultReportFields()...)
		f.SetValue("severity", "medium")
		return f
	case domain.ResourceTires:
		f := form.New(notifier, form.TireFields()...)
		f.SetValue("condition", "new")
		f.SetValue("quantity", "1")
		return f
	case domain.ResourceCategories:
		return form.New(notifier, form.CategoryFields()...)
	case domain.ResourceGroupMessages:
		return form.New(notifier, form.GroupMessageFields()...)
	default:
		return nil
	}
}

// prefill copies a record's current values into its edit form
func prefill(f *form.Form, record domain.Record) {
	switch r := record.(type) {
	case *domain.Vehicle:
		f.SetValue("name", r.Name)
		f.SetValue("registration", r.Registration)
		f.SetValue("type", r.Type)
		f.SetValue("status", string(r.Status))
		f.SetValue("make", r.Make)
		f.SetValue("model", r.Model)
		f.SetValue("year", intValue(r.Year))
		f.SetValue("mileage", intValue(r.Mileage))
		f.SetValue("vin", r.VIN)
	case *domain.Contact:
		f.SetValue("name", r.Name)
		f.SetValue("type", string(r.Type))
		f.SetValue("company", r.Company)
		f.SetValue("email", r.Email)
		f.SetValue("phone", r.Phone)
		f.SetValue("street", r.Street)
		f.SetValue("city", r.City)
		f.SetValue("postal_code", r.PostalCode)
		f.SetValue("country", r.Country)
		f.SetValue("notes", r.Notes)
	case *domain.Tire:
		f.SetValue("brand", r.Brand)
		f.SetValue("model", r.Model)
		f.SetValue("size", r.Size)
		f.SetValue("season", string(r.Season))
		f.SetValue("condition", r.Condition)
		if r.TreadDepth > 0 {
			f.SetValue("tread_depth", strconv.FormatFloat(r.TreadDepth, 'f', 1, 64))
		}
		f.SetValue("quantity", intValue(r.Quantity))
		f.SetValue("location", r.Location)
	case *domain.ProductCategory:
		f.SetValue("name", r.Name)
		if r.ParentID > 0 {
			f.SetValue("parent_id", strconv.FormatInt(r.ParentID, 10))
		}
		f.SetValue("description", r.Description)
	}
}

func intValue(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// submitFunc builds the closure that performs the create or update for
// the given form. id is 0 for creates.
func submitFunc(client *api.Client, resource domain.Resource, f *form.Form, id int64) func(ctx context.Context) (domain.Record, error) {
	switch resource {
	case domain.ResourceVehicles:
		in := domain.VehicleInput{
			Name:         f.Value("name"),
			Registration: f.Value("registration"),
			Make:         f.Value("make"),
			Model:        f.Value("model"),
			Year:         atoi(f.Value("year")),
			Type:         f.Value("type"),
			Status:       f.Value("status"),
			Mileage:      atoi(f.Value("mileage")),
			VIN:          f.Value("vin"),
		}
		return func(ctx context.Context) (domain.Record, error) {
			if id > 0 {
				return client.UpdateVehicle(ctx, id, in)
			}
			return client.CreateVehicle(ctx, in)
		}
	case domain.ResourceContacts:
		in := domain.ContactInput{
			Name:       f.Value("name"),
			Company:    f.Value("company"),
			Type:       f.Value("type"),
			Email:      f.Value("email"),
			Phone:      f.Value("phone"),
			Street:     f.Value("street"),
			City:       f.Value("city"),
			PostalCode: f.Value("postal_code"),
			Country:    f.Value("country"),
			Notes:      f.Value("notes"),
		}
		return func(ctx context.Context) (domain.Record, error) {
			if id > 0 {
				return client.UpdateContact(ctx, id, in)
			}
			return client.CreateContact(ctx, in)
		}
	case domain.ResourceFaultReports:
		in := domain.FaultReportInput{
			VehicleID:   atoi64(f.Value("vehicle_id")),
			Title:       f.Value("title"),
			Description: f.Value("description"),
			Severity:    f.Value("severity"),
		}
		return func(ctx context.Context) (domain.Record, error) {
			return client.CreateFaultReport(ctx, in)
		}
	case domain.ResourceTires:
		in := domain.TireInput{
			Brand:      f.Value("brand"),
			Model:      f.Value("model"),
			Size:       f.Value("size"),
			Season:     f.Value("season"),
			Condition:  f.Value("condition"),
			TreadDepth: atof(f.Value("tread_depth")),
			Quantity:   atoi(f.Value("quantity")),
			Location:   f.Value("location"),
		}
		return func(ctx context.Context) (domain.Record, error) {
			if id > 0 {
				return client.UpdateTire(ctx, id, in)
			}
			return client.CreateTire(ctx, in)
		}
	case domain.ResourceCategories:
		in := domain.CategoryInput{
			Name:        f.Value("name"),
			ParentID:    atoi64(f.Value("parent_id")),
			Description: f.Value("description"),
		}
		return func(ctx context.Context) (domain.Record, error) {
			if id > 0 {
				return client.UpdateCategory(ctx, id, in)
			}
			return client.CreateCategory(ctx, in)
		}
	case domain.ResourceGroupMessages:
		in := domain.GroupMessageInput{
			Subject: f.Value("subject"),
			Body:    f.Value("body"),
			Groups:  splitGroups(f.Value("groups")),
		}
		return func(ctx context.Context) (domain.Record, error) {
			return client.SendGroupMessage(ctx, in)
		}
	default:
		return nil
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func atoi64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

func atof(s string) float64 {
	n, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return n
}

// splitGroups parses the comma-separated recipient group list
func splitGroups(s string) []string {
	var groups []string
	for _, part := range strings.Split(s, ",") {
		if g := strings.TrimSpace(part); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}

// pickerFor maps a form field to the reference picker that fills it
func pickerFor(resource domain.Resource, field string) (RefKind, bool) {
	switch {
	case resource == domain.ResourceFaultReports && field == "vehicle_id":
		return RefVehicles, true
	case resource == domain.ResourceCategories && field == "parent_id":
		return RefCategories, true
	default:
		return 0, false
	}
}
