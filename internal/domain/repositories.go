package domain

import "context"

// VehicleInput carries the editable fields of a vehicle.
type VehicleInput struct {
	Name         string
	Registration string
	Make         string
	Model        string
	Year         int
	Type         string
	Status       string
	Mileage      int
	VIN          string
}

// ContactInput carries the editable fields of a contact.
type ContactInput struct {
	Name       string
	Company    string
	Type       string
	Email      string
	Phone      string
	Street     string
	City       string
	PostalCode string
	Country    string
	Notes      string
}

// FaultReportInput carries the fields of a new fault report.
type FaultReportInput struct {
	VehicleID   int64
	Title       string
	Description string
	Severity    string
}

// TireInput carries the editable fields of a tire set.
type TireInput struct {
	Brand      string
	Model      string
	Size       string
	Season     string
	Condition  string
	TreadDepth float64
	Quantity   int
	Location   string
}

// CategoryInput carries the editable fields of a product category.
type CategoryInput struct {
	Name        string
	ParentID    int64
	Description string
}

// GroupMessageInput carries the fields of an outgoing group message.
type GroupMessageInput struct {
	Subject string
	Body    string
	Groups  []string
}

// VehicleRepository provides access to the fleet's vehicle records
type VehicleRepository interface {
	ListVehicles(ctx context.Context, q ListQuery) (Page[Vehicle], error)
	GetVehicle(ctx context.Context, id int64) (*Vehicle, error)
	CreateVehicle(ctx context.Context, in VehicleInput) (*Vehicle, error)
	UpdateVehicle(ctx context.Context, id int64, in VehicleInput) (*Vehicle, error)
}

// ContactRepository provides access to customer/supplier/driver records
type ContactRepository interface {
	ListContacts(ctx context.Context, q ListQuery) (Page[Contact], error)
	GetContact(ctx context.Context, id int64) (*Contact, error)
	CreateContact(ctx context.Context, in ContactInput) (*Contact, error)
	UpdateContact(ctx context.Context, id int64, in ContactInput) (*Contact, error)
}

// InvoiceRepository provides read access to invoices
type InvoiceRepository interface {
	ListInvoices(ctx context.Context, q ListQuery) (Page[Invoice], error)
	GetInvoice(ctx context.Context, id int64) (*Invoice, error)
}

// QuoteRepository provides read access to quotes
type QuoteRepository interface {
	ListQuotes(ctx context.Context, q ListQuery) (Page[Quote], error)
	GetQuote(ctx context.Context, id int64) (*Quote, error)
}

// FaultReportRepository provides access to fault reports
type FaultReportRepository interface {
	ListFaultReports(ctx context.Context, q ListQuery) (Page[FaultReport], error)
	GetFaultReport(ctx context.Context, id int64) (*FaultReport, error)
	CreateFaultReport(ctx context.Context, in FaultReportInput) (*FaultReport, error)
}

// TireRepository provides access to the tire inventory
type TireRepository interface {
	ListTires(ctx context.Context, q ListQuery) (Page[Tire], error)
	CreateTire(ctx context.Context, in TireInput) (*Tire, error)
	UpdateTire(ctx context.Context, id int64, in TireInput) (*Tire, error)
}

// CategoryRepository provides access to product categories
type CategoryRepository interface {
	ListCategories(ctx context.Context, q ListQuery) (Page[ProductCategory], error)
	CreateCategory(ctx context.Context, in CategoryInput) (*ProductCategory, error)
	UpdateCategory(ctx context.Context, id int64, in CategoryInput) (*ProductCategory, error)
}

// GroupMessageRepository provides access to the group messaging endpoint
type GroupMessageRepository interface {
	ListGroupMessages(ctx context.Context, q ListQuery) (Page[GroupMessage], error)
	SendGroupMessage(ctx context.Context, in GroupMessageInput) (*GroupMessage, error)
}
