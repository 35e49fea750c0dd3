package api

import (
	"time"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

// parseDate accepts the backend's two timestamp shapes: bare dates for
// business fields and RFC 3339 for audit fields. Zero time on failure.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func (m metaDTO) toDomain() domain.Pagination {
	return domain.Pagination{
		CurrentPage: m.CurrentPage,
		LastPage:    m.LastPage,
		Total:       m.Total,
	}
}

func mapVehicle(d vehicleDTO) domain.Vehicle {
	return domain.Vehicle{
		ID:           d.ID,
		Name:         d.Name,
		Registration: d.Registration,
		Make:         d.Make,
		Model:        d.Model,
		Year:         d.Year,
		Type:         d.Type,
		Status:       domain.VehicleStatus(d.Status),
		Mileage:      d.Mileage,
		VIN:          d.VIN,
		Driver:       d.Driver,
		NextService:  parseDate(d.NextService),
		UpdatedAt:    parseDate(d.UpdatedAt),
	}
}

func mapContact(d contactDTO) domain.Contact {
	return domain.Contact{
		ID:         d.ID,
		Name:       d.Name,
		Company:    d.Company,
		Type:       domain.ContactType(d.Type),
		Email:      d.Email,
		Phone:      d.Phone,
		Street:     d.Street,
		City:       d.City,
		PostalCode: d.PostalCode,
		Country:    d.Country,
		Notes:      d.Notes,
		UpdatedAt:  parseDate(d.UpdatedAt),
	}
}

func mapInvoice(d invoiceDTO) domain.Invoice {
	return domain.Invoice{
		ID:          d.ID,
		Number:      d.Number,
		ContactID:   d.ContactID,
		ContactName: d.ContactName,
		Status:      domain.InvoiceStatus(d.Status),
		IssueDate:   parseDate(d.IssueDate),
		DueDate:     parseDate(d.DueDate),
		TotalNet:    d.TotalNet,
		TotalGross:  d.TotalGross,
		Currency:    d.Currency,
	}
}

func mapQuote(d quoteDTO) domain.Quote {
	return domain.Quote{
		ID:          d.ID,
		Number:      d.Number,
		ContactID:   d.ContactID,
		ContactName: d.ContactName,
		Status:      domain.QuoteStatus(d.Status),
		ValidUntil:  parseDate(d.ValidUntil),
		TotalNet:    d.TotalNet,
		Currency:    d.Currency,
	}
}

func mapFaultReport(d faultReportDTO) domain.FaultReport {
	return domain.FaultReport{
		ID:          d.ID,
		VehicleID:   d.VehicleID,
		VehicleName: d.VehicleName,
		Title:       d.Title,
		Description: d.Description,
		Severity:    d.Severity,
		Status:      domain.FaultStatus(d.Status),
		ReportedBy:  d.ReportedBy,
		ReportedAt:  parseDate(d.ReportedAt),
	}
}

func mapTire(d tireDTO) domain.Tire {
	return domain.Tire{
		ID:         d.ID,
		Brand:      d.Brand,
		Model:      d.Model,
		Size:       d.Size,
		Season:     domain.TireSeason(d.Season),
		Condition:  d.Condition,
		TreadDepth: d.TreadDepth,
		Quantity:   d.Quantity,
		Location:   d.Location,
		VehicleID:  d.VehicleID,
	}
}

func mapCategory(d categoryDTO) domain.ProductCategory {
	return domain.ProductCategory{
		ID:           d.ID,
		Name:         d.Name,
		ParentID:     d.ParentID,
		ParentName:   d.ParentName,
		Description:  d.Description,
		ProductCount: d.ProductCount,
	}
}

func mapGroupMessage(d groupMessageDTO) domain.GroupMessage {
	return domain.GroupMessage{
		ID:             d.ID,
		Subject:        d.Subject,
		Body:           d.Body,
		Groups:         d.Groups,
		SentBy:         d.SentBy,
		SentAt:         parseDate(d.SentAt),
		RecipientCount: d.RecipientCount,
	}
}
