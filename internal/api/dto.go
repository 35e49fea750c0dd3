package api

// Wire types for the ERP backend's JSON API. List endpoints wrap records in
// a data array plus pagination metadata; detail endpoints wrap one record.

type listEnvelope[D any] struct {
	Data []D     `json:"data"`
	Meta metaDTO `json:"meta"`
}

type itemEnvelope[D any] struct {
	Data D `json:"data"`
}

type metaDTO struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
}

type validationErrorDTO struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type vehicleDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Mileage      int    `json:"mileage"`
	VIN          string `json:"vin"`
	Driver       string `json:"driver_name"`
	NextService  string `json:"next_service_at"`
	UpdatedAt    string `json:"updated_at"`
}

type vehiclePayload struct {
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Mileage      int    `json:"mileage"`
	VIN          string `json:"vin,omitempty"`
}

type contactDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Company    string `json:"company"`
	Type       string `json:"type"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Notes      string `json:"notes"`
	UpdatedAt  string `json:"updated_at"`
}

type contactPayload struct {
	Name       string `json:"name"`
	Company    string `json:"company,omitempty"`
	Type       string `json:"type"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type invoiceDTO struct {
	ID          int64  `json:"id"`
	Number      string `json:"number"`
	ContactID   int64  `json:"contact_id"`
	ContactName string `json:"contact_name"`
	Status      string `json:"status"`
	IssueDate   string `json:"issue_date"`
	DueDate     string `json:"due_date"`
	TotalNet    int64  `json:"total_net"`
	TotalGross  int64  `json:"total_gross"`
	Currency    string `json:"currency"`
}

type quoteDTO struct {
	ID          int64  `json:"id"`
	Number      string `json:"number"`
	ContactID   int64  `json:"contact_id"`
	ContactName string `json:"contact_name"`
	Status      string `json:"status"`
	ValidUntil  string `json:"valid_until"`
	TotalNet    int64  `json:"total_net"`
	Currency    string `json:"currency"`
}

type faultReportDTO struct {
	ID          int64  `json:"id"`
	VehicleID   int64  `json:"vehicle_id"`
	VehicleName string `json:"vehicle_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Status      string `json:"status"`
	ReportedBy  string `json:"reported_by"`
	ReportedAt  string `json:"reported_at"`
}

type faultReportPayload struct {
	VehicleID   int64  `json:"vehicle_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

type tireDTO struct {
	ID         int64   `json:"id"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	Size       string  `json:"size"`
	Season     string  `json:"season"`
	Condition  string  `json:"condition"`
	TreadDepth float64 `json:"tread_depth"`
	Quantity   int     `json:"quantity"`
	Location   string  `json:"location"`
	VehicleID  int64   `json:"vehicle_id"`
}

type tirePayload struct {
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	Size       string  `json:"size"`
	Season     string  `json:"season"`
	Condition  string  `json:"condition"`
	TreadDepth float64 `json:"tread_depth"`
	Quantity   int     `json:"quantity"`
	Location   string  `json:"location,omitempty"`
}

type categoryDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ParentID     int64  `json:"parent_id"`
	ParentName   string `json:"parent_name"`
	Description  string `json:"description"`
	ProductCount int    `json:"product_count"`
}

type categoryPayload struct {
	Name        string `json:"name"`
	ParentID    int64  `json:"parent_id,omitempty"`
	Description string `json:"description,omitempty"`
}

type groupMessageDTO struct {
	ID             int64    `json:"id"`
	Subject        string   `json:"subject"`
	Body           string   `json:"body"`
	Groups         []string `json:"groups"`
	SentBy         string   `json:"sent_by"`
	SentAt         string   `json:"sent_at"`
	RecipientCount int      `json:"recipient_count"`
}

type groupMessagePayload struct {
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	Groups  []string `json:"groups"`
}
