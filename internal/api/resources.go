package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

// Client implements domain.VehicleRepository

func (c *Client) ListVehicles(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Vehicle], error) {
	return fetchList(ctx, c, "/api/vehicles", q, mapVehicle)
}

func (c *Client) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	path := fmt.Sprintf("/api/vehicles/%d", id)
	return fetchOne(ctx, c, http.MethodGet, path, nil, mapVehicle)
}

func (c *Client) CreateVehicle(ctx context.Context, in domain.VehicleInput) (*domain.Vehicle, error) {
	return fetchOne(ctx, c, http.MethodPost, "/api/vehicles", vehicleBody(in), mapVehicle)
}

func (c *Client) UpdateVehicle(ctx context.Context, id int64, in domain.VehicleInput) (*domain.Vehicle, error) {
	path := fmt.Sprintf("/api/vehicles/%d", id)
	return fetchOne(ctx, c, http.MethodPut, path, vehicleBody(in), mapVehicle)
}

func vehicleBody(in domain.VehicleInput) vehiclePayload {
	return vehiclePayload{
		Name:         in.Name,
		Registration: in.Registration,
		Make:         in.Make,
		Model:        in.Model,
		Year:         in.Year,
		Type:         in.Type,
		Status:       in.Status,
		Mileage:      in.Mileage,
		VIN:          in.VIN,
	}
}

// Client implements domain.ContactRepository

func (c *Client) ListContacts(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Contact], error) {
	return fetchList(ctx, c, "/api/contacts", q, mapContact)
}

func (c *Client) GetContact(ctx context.Context, id int64) (*domain.Contact, error) {
	path := fmt.Sprintf("/api/contacts/%d", id)
	return fetchOne(ctx, c, http.MethodGet, path, nil, mapContact)
}

func (c *Client) CreateContact(ctx context.Context, in domain.ContactInput) (*domain.Contact, error) {
	return fetchOne(ctx, c, http.MethodPost, "/api/contacts", contactBody(in), mapContact)
}

func (c *Client) UpdateContact(ctx context.Context, id int64, in domain.ContactInput) (*domain.Contact, error) {
	path := fmt.Sprintf("/api/contacts/%d", id)
	return fetchOne(ctx, c, http.MethodPut, path, contactBody(in), mapContact)
}

func contactBody(in domain.ContactInput) contactPayload {
	return contactPayload{
		Name:       in.Name,
		Company:    in.Company,
		Type:       in.Type,
		Email:      in.Email,
		Phone:      in.Phone,
		Street:     in.Street,
		City:       in.City,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		Notes:      in.Notes,
	}
}

// Client implements domain.InvoiceRepository

func (c *Client) ListInvoices(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Invoice], error) {
	return fetchList(ctx, c, "/api/invoices", q, mapInvoice)
}

func (c *Client) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	path := fmt.Sprintf("/api/invoices/%d", id)
	return fetchOne(ctx, c, http.MethodGet, path, nil, mapInvoice)
}

// Client implements domain.QuoteRepository

func (c *Client) ListQuotes(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Quote], error) {
	return fetchList(ctx, c, "/api/quotes", q, mapQuote)
}

func (c *Client) GetQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	path := fmt.Sprintf("/api/quotes/%d", id)
	return fetchOne(ctx, c, http.MethodGet, path, nil, mapQuote)
}

// Client implements domain.FaultReportRepository

func (c *Client) ListFaultReports(ctx context.Context, q domain.ListQuery) (domain.Page[domain.FaultReport], error) {
	return fetchList(ctx, c, "/api/fault-reports", q, mapFaultReport)
}

func (c *Client) GetFaultReport(ctx context.Context, id int64) (*domain.FaultReport, error) {
	path := fmt.Sprintf("/api/fault-reports/%d", id)
	return fetchOne(ctx, c, http.MethodGet, path, nil, mapFaultReport)
}

func (c *Client) CreateFaultReport(ctx context.Context, in domain.FaultReportInput) (*domain.FaultReport, error) {
	payload := faultReportPayload{
		VehicleID:   in.VehicleID,
		Title:       in.Title,
		Description: in.Description,
		Severity:    in.Severity,
	}
	return fetchOne(ctx, c, http.MethodPost, "/api/fault-reports", payload, mapFaultReport)
}

// Client implements domain.TireRepository

func (c *Client) ListTires(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Tire], error) {
	return fetchList(ctx, c, "/api/tires", q, mapTire)
}

func (c *Client) CreateTire(ctx context.Context, in domain.TireInput) (*domain.Tire, error) {
	return fetchOne(ctx, c, http.MethodPost, "/api/tires", tireBody(in), mapTire)
}

func (c *Client) UpdateTire(ctx context.Context, id int64, in domain.TireInput) (*domain.Tire, error) {
	path := fmt.Sprintf("/api/tires/%d", id)
	return fetchOne(ctx, c, http.MethodPut, path, tireBody(in), mapTire)
}

func tireBody(in domain.TireInput) tirePayload {
	return tirePayload{
		Brand:      in.Brand,
		Model:      in.Model,
		Size:       in.Size,
		Season:     in.Season,
		Condition:  in.Condition,
		TreadDepth: in.TreadDepth,
		Quantity:   in.Quantity,
		Location:   in.Location,
	}
}

// Client implements domain.CategoryRepository

func (c *Client) ListCategories(ctx context.Context, q domain.ListQuery) (domain.Page[domain.ProductCategory], error) {
	return fetchList(ctx, c, "/api/product-categories", q, mapCategory)
}

func (c *Client) CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.ProductCategory, error) {
	payload := categoryPayload{Name: in.Name, ParentID: in.ParentID, Description: in.Description}
	return fetchOne(ctx, c, http.MethodPost, "/api/product-categories", payload, mapCategory)
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, in domain.CategoryInput) (*domain.ProductCategory, error) {
	path := fmt.Sprintf("/api/product-categories/%d", id)
	payload := categoryPayload{Name: in.Name, ParentID: in.ParentID, Description: in.Description}
	return fetchOne(ctx, c, http.MethodPut, path, payload, mapCategory)
}

// Client implements domain.GroupMessageRepository

func (c *Client) ListGroupMessages(ctx context.Context, q domain.ListQuery) (domain.Page[domain.GroupMessage], error) {
	return fetchList(ctx, c, "/api/group-messages", q, mapGroupMessage)
}

func (c *Client) SendGroupMessage(ctx context.Context, in domain.GroupMessageInput) (*domain.GroupMessage, error) {
	payload := groupMessagePayload{Subject: in.Subject, Body: in.Body, Groups: in.Groups}
	return fetchOne(ctx, c, http.MethodPost, "/api/group-messages", payload, mapGroupMessage)
}
