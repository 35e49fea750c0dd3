package domain

import (
	"fmt"
	"time"
)

// VehicleStatus is the lifecycle state of a fleet vehicle
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusRetired     VehicleStatus = "retired"
	VehicleStatusSold        VehicleStatus = "sold"
)

// Vehicle represents a fleet vehicle
type Vehicle struct {
	ID           int64  // Server-assigned identifier
	Name         string // Display label (usually the call sign)
	Registration string // License plate
	Make         string // Manufacturer
	Model        string // Model name
	Year         int    // Year of first registration
	Type         string // "truck", "van", "trailer", "car"
	Status       VehicleStatus
	Mileage      int    // Odometer reading in km
	VIN          string // Chassis number
	Driver       string // Currently assigned driver (display name)
	NextService  time.Time
	UpdatedAt    time.Time
}

func (v *Vehicle) GetID() int64      { return v.ID }
func (v *Vehicle) GetTitle() string  { return v.Name }
func (v *Vehicle) GetStatus() string { return string(v.Status) }

func (v *Vehicle) GetDescription() string {
	if v.Registration != "" {
		return fmt.Sprintf("%s · %s %s", v.Registration, v.Make, v.Model)
	}
	return fmt.Sprintf("%s %s", v.Make, v.Model)
}

// FormattedMileage returns the odometer reading in a human-readable format
func (v *Vehicle) FormattedMileage() string {
	if v.Mileage <= 0 {
		return ""
	}
	return fmt.Sprintf("%d km", v.Mileage)
}

// ContactType distinguishes the role a contact plays
type ContactType string

const (
	ContactTypeCustomer ContactType = "customer"
	ContactTypeSupplier ContactType = "supplier"
	ContactTypeDriver   ContactType = "driver"
)

// Contact represents a customer, supplier or driver record
type Contact struct {
	ID         int64
	Name       string
	Company    string
	Type       ContactType
	Email      string
	Phone      string
	Street     string
	City       string
	PostalCode string
	Country    string
	Notes      string
	UpdatedAt  time.Time
}

func (c *Contact) GetID() int64      { return c.ID }
func (c *Contact) GetTitle() string  { return c.Name }
func (c *Contact) GetStatus() string { return string(c.Type) }

func (c *Contact) GetDescription() string {
	switch {
	case c.Company != "" && c.City != "":
		return fmt.Sprintf("%s · %s", c.Company, c.City)
	case c.Company != "":
		return c.Company
	default:
		return c.Email
	}
}

// InvoiceStatus is the billing state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice represents an outgoing invoice
type Invoice struct {
	ID          int64
	Number      string // Invoice number, e.g. "INV-2026-0142"
	ContactID   int64
	ContactName string
	Status      InvoiceStatus
	IssueDate   time.Time
	DueDate     time.Time
	TotalNet    int64 // Minor currency units
	TotalGross  int64 // Minor currency units
	Currency    string
}

func (i *Invoice) GetID() int64      { return i.ID }
func (i *Invoice) GetTitle() string  { return i.Number }
func (i *Invoice) GetStatus() string { return string(i.Status) }

func (i *Invoice) GetDescription() string {
	return fmt.Sprintf("%s · %s", i.ContactName, FormatAmount(i.TotalGross, i.Currency))
}

// IsOverdue reports whether the invoice is unpaid past its due date
func (i *Invoice) IsOverdue(now time.Time) bool {
	if i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusCancelled {
		return false
	}
	return !i.DueDate.IsZero() && now.After(i.DueDate)
}

// QuoteStatus is the negotiation state of a quote
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// Quote represents a price quotation offered to a customer
type Quote struct {
	ID          int64
	Number      string
	ContactID   int64
	ContactName string
	Status      QuoteStatus
	ValidUntil  time.Time
	TotalNet    int64 // Minor currency units
	Currency    string
}

func (q *Quote) GetID() int64      { return q.ID }
func (q *Quote) GetTitle() string  { return q.Number }
func (q *Quote) GetStatus() string { return string(q.Status) }

func (q *Quote) GetDescription() string {
	return fmt.Sprintf("%s · %s", q.ContactName, FormatAmount(q.TotalNet, q.Currency))
}

// FaultStatus is the workflow state of a fault report
type FaultStatus string

const (
	FaultStatusOpen       FaultStatus = "open"
	FaultStatusInProgress FaultStatus = "in_progress"
	FaultStatusResolved   FaultStatus = "resolved"
	FaultStatusClosed     FaultStatus = "closed"
)

// FaultReport represents a driver-reported vehicle defect
type FaultReport struct {
	ID          int64
	VehicleID   int64
	VehicleName string
	Title       string
	Description string
	Severity    string // "low", "medium", "high", "critical"
	Status      FaultStatus
	ReportedBy  string
	ReportedAt  time.Time
}

func (f *FaultReport) GetID() int64      { return f.ID }
func (f *FaultReport) GetTitle() string  { return f.Title }
func (f *FaultReport) GetStatus() string { return string(f.Status) }

func (f *FaultReport) GetDescription() string {
	if f.VehicleName != "" {
		return fmt.Sprintf("%s · %s", f.VehicleName, f.Severity)
	}
	return f.Severity
}

// TireSeason categorizes a tire set
type TireSeason string

const (
	TireSeasonSummer  TireSeason = "summer"
	TireSeasonWinter  TireSeason = "winter"
	TireSeasonAllYear TireSeason = "all_season"
)

// Tire represents a tire set held in inventory
type Tire struct {
	ID         int64
	Brand      string
	Model      string
	Size       string // e.g. "315/70 R22.5"
	Season     TireSeason
	Condition  string  // "new", "used", "worn"
	TreadDepth float64 // Remaining profile in mm
	Quantity   int
	Location   string // Storage slot
	VehicleID  int64  // Mounted vehicle, 0 when in storage
}

func (t *Tire) GetID() int64      { return t.ID }
func (t *Tire) GetStatus() string { return t.Condition }

func (t *Tire) GetTitle() string {
	return fmt.Sprintf("%s %s %s", t.Brand, t.Model, t.Size)
}

func (t *Tire) GetDescription() string {
	return fmt.Sprintf("%s · %.1f mm · %d pcs", t.Season, t.TreadDepth, t.Quantity)
}

// ProductCategory represents a node of the product category tree
type ProductCategory struct {
	ID           int64
	Name         string
	ParentID     int64 // 0 for root categories
	ParentName   string
	Description  string
	ProductCount int
}

func (p *ProductCategory) GetID() int64      { return p.ID }
func (p *ProductCategory) GetTitle() string  { return p.Name }
func (p *ProductCategory) GetStatus() string { return "" }

func (p *ProductCategory) GetDescription() string {
	if p.ParentName != "" {
		return fmt.Sprintf("%s · %d products", p.ParentName, p.ProductCount)
	}
	if p.ProductCount == 1 {
		return "1 product"
	}
	return fmt.Sprintf("%d products", p.ProductCount)
}

// GroupMessage represents a broadcast message sent to recipient groups
type GroupMessage struct {
	ID             int64
	Subject        string
	Body           string
	Groups         []string // Recipient group names
	SentBy         string
	SentAt         time.Time
	RecipientCount int
}

func (m *GroupMessage) GetID() int64      { return m.ID }
func (m *GroupMessage) GetTitle() string  { return m.Subject }
func (m *GroupMessage) GetStatus() string { return "" }

func (m *GroupMessage) GetDescription() string {
	if m.RecipientCount == 1 {
		return "1 recipient"
	}
	return fmt.Sprintf("%d recipients", m.RecipientCount)
}

// FormatAmount renders minor currency units as a display string
func FormatAmount(minor int64, currency string) string {
	if currency == "" {
		currency = "EUR"
	}
	return fmt.Sprintf("%.2f %s", float64(minor)/100, currency)
}
