package form

// Per-resource field declarations. The rule tags mirror the backend's
// validation so the client rejects what the server would reject; the
// wording drift between the two is pinned by rules_test.go.

// VehicleFields declares the vehicle create/edit form.
func VehicleFields() []Field {
	return []Field{
		{Name: "name", Label: "Name", Section: "General", Rules: "required,max=100"},
		{Name: "registration", Label: "Registration", Section: "General", Rules: "required,max=20"},
		{Name: "type", Label: "Type", Section: "General", Rules: "required,oneof=truck van trailer car"},
		{Name: "status", Label: "Status", Section: "General", Rules: "required,oneof=active maintenance retired sold"},
		{Name: "make", Label: "Make", Section: "Details", Rules: "required,max=60"},
		{Name: "model", Label: "Model", Section: "Details", Rules: "required,max=60"},
		{Name: "year", Label: "Year", Section: "Details", Rules: "omitempty,numeric"},
		{Name: "mileage", Label: "Mileage", Section: "Details", Rules: "omitempty,numeric"},
		{Name: "vin", Label: "VIN", Section: "Details", Rules: "omitempty,max=17"},
	}
}

// ContactFields declares the contact create/edit form.
func ContactFields() []Field {
	return []Field{
		{Name: "name", Label: "Name", Section: "General", Rules: "required,max=100"},
		{Name: "type", Label: "Type", Section: "General", Rules: "required,oneof=customer supplier driver"},
		{Name: "company", Label: "Company", Section: "General", Rules: "omitempty,max=100"},
		{Name: "email", Label: "Email", Section: "Contact", Rules: "omitempty,email"},
		{Name: "phone", Label: "Phone", Section: "Contact", Rules: "omitempty,max=30"},
		{Name: "street", Label: "Street", Section: "Address", Rules: "omitempty,max=120"},
		{Name: "city", Label: "City", Section: "Address", Rules: "omitempty,max=80"},
		{Name: "postal_code", Label: "Postal code", Section: "Address", Rules: "omitempty,max=12"},
		{Name: "country", Label: "Country", Section: "Address", Rules: "omitempty,max=60"},
		{Name: "notes", Label: "Notes", Section: "Notes", Rules: "omitempty,max=2000"},
	}
}

// FaultReportFields declares the fault report create form.
func FaultReportFields() []Field {
	return []Field{
		{Name: "vehicle_id", Label: "Vehicle", Section: "General", Rules: "required,numeric"},
		{Name: "title", Label: "Title", Section: "General", Rules: "required,max=120"},
		{Name: "severity", Label: "Severity", Section: "General", Rules: "required,oneof=low medium high critical"},
		{Name: "description", Label: "Description", Section: "Details", Rules: "required,max=4000"},
	}
}

// TireFields declares the tire create/edit form.
func TireFields() []Field {
	return []Field{
		{Name: "brand", Label: "Brand", Section: "General", Rules: "required,max=60"},
		{Name: "model", Label: "Model", Section: "General", Rules: "required,max=60"},
		{Name: "size", Label: "Size", Section: "General", Rules: "required,max=30"},
		{Name: "season", Label: "Season", Section: "General", Rules: "required,oneof=summer winter all_season"},
		{Name: "condition", Label: "Condition", Section: "Stock", Rules: "required,oneof=new used worn"},
		{Name: "tread_depth", Label: "Tread depth", Section: "Stock", Rules: "omitempty,numeric"},
		{Name: "quantity", Label: "Quantity", Section: "Stock", Rules: "required,numeric"},
		{Name: "location", Label: "Location", Section: "Stock", Rules: "omitempty,max=60"},
	}
}

// CategoryFields declares the product category create/edit form.
func CategoryFields() []Field {
	return []Field{
		{Name: "name", Label: "Name", Section: "General", Rules: "required,max=80"},
		{Name: "parent_id", Label: "Parent category", Section: "General", Rules: "omitempty,numeric"},
		{Name: "description", Label: "Description", Section: "General", Rules: "omitempty,max=500"},
	}
}

// GroupMessageFields declares the group message compose form.
func GroupMessageFields() []Field {
	return []Field{
		{Name: "subject", Label: "Subject", Section: "Message", Rules: "required,max=150"},
		{Name: "groups", Label: "Groups", Section: "Message", Rules: "required"},
		{Name: "body", Label: "Body", Section: "Message", Rules: "required,max=8000"},
	}
}
