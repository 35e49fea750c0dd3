package domain

// Resource identifies one of the client's record collections. Used as the
// key for per-screen preferences and for screen routing.
type Resource string

const (
	ResourceVehicles      Resource = "vehicles"
	ResourceContacts      Resource = "contacts"
	ResourceInvoices      Resource = "invoices"
	ResourceQuotes        Resource = "quotes"
	ResourceFaultReports  Resource = "fault-reports"
	ResourceTires         Resource = "tires"
	ResourceCategories    Resource = "product-categories"
	ResourceGroupMessages Resource = "group-messages"
)

// Resources lists all collections in sidebar order.
var Resources = []Resource{
	ResourceVehicles,
	ResourceContacts,
	ResourceInvoices,
	ResourceQuotes,
	ResourceFaultReports,
	ResourceTires,
	ResourceCategories,
	ResourceGroupMessages,
}

// Title returns the display name of the resource.
func (r Resource) Title() string {
	switch r {
	case ResourceVehicles:
		return "Vehicles"
	case ResourceContacts:
		return "Contacts"
	case ResourceInvoices:
		return "Invoices"
	case ResourceQuotes:
		return "Quotes"
	case ResourceFaultReports:
		return "Fault Reports"
	case ResourceTires:
		return "Tire Inventory"
	case ResourceCategories:
		return "Product Categories"
	case ResourceGroupMessages:
		return "Group Messages"
	default:
		return string(r)
	}
}

// FilterValues returns the cycleable values per filter key for the
// resource's list screen. The leading "all" value clears the filter.
func (r Resource) FilterValues() map[string][]string {
	switch r {
	case ResourceVehicles:
		return map[string][]string{
			"status": {"all", "active", "maintenance", "retired", "sold"},
			"type":   {"all", "truck", "van", "trailer", "car"},
		}
	case ResourceContacts:
		return map[string][]string{
			"type": {"all", "customer", "supplier", "driver"},
		}
	case ResourceInvoices:
		return map[string][]string{
			"status": {"all", "draft", "sent", "paid", "overdue", "cancelled"},
		}
	case ResourceQuotes:
		return map[string][]string{
			"status": {"all", "draft", "sent", "accepted", "declined", "expired"},
		}
	case ResourceFaultReports:
		return map[string][]string{
			"status": {"all", "open", "in_progress", "resolved", "closed"},
		}
	case ResourceTires:
		return map[string][]string{
			"season":    {"all", "summer", "winter", "all_season"},
			"condition": {"all", "new", "used", "worn"},
		}
	default:
		return nil
	}
}
