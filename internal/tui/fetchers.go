package tui

import (
	"context"

	"github.com/fleetdesk/fleetdesk/internal/api"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/listing"
)

// Each list screen renders domain.Record values; the typed repository
// pages are adapted here so one controller type serves every resource.

func asRecords[T any, PT interface {
	*T
	domain.Record
}](page domain.Page[T]) domain.Page[domain.Record] {
	records := make([]domain.Record, len(page.Items))
	for i := range page.Items {
		records[i] = PT(&page.Items[i])
	}
	return domain.Page[domain.Record]{Items: records, Pagination: page.Pagination}
}

func recordFetcher[T any, PT interface {
	*T
	domain.Record
}](list func(context.Context, domain.ListQuery) (domain.Page[T], error)) listing.Fetcher[domain.Record] {
	return func(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Record], error) {
		page, err := list(ctx, q)
		if err != nil {
			return domain.Page[domain.Record]{}, err
		}
		return asRecords[T, PT](page), nil
	}
}

// fetcherFor returns the list fetcher for a resource.
func fetcherFor(client *api.Client, resource domain.Resource) listing.Fetcher[domain.Record] {
	switch resource {
	case domain.ResourceVehicles:
		return recordFetcher[domain.Vehicle, *domain.Vehicle](client.ListVehicles)
	case domain.ResourceContacts:
		return recordFetcher[domain.Contact, *domain.Contact](client.ListContacts)
	case domain.ResourceInvoices:
		return recordFetcher[domain.Invoice, *domain.Invoice](client.ListInvoices)
	case domain.ResourceQuotes:
		return recordFetcher[domain.Quote, *domain.Quote](client.ListQuotes)
	case domain.ResourceFaultReports:
		return recordFetcher[domain.FaultReport, *domain.FaultReport](client.ListFaultReports)
	case domain.ResourceTires:
		return recordFetcher[domain.Tire, *domain.Tire](client.ListTires)
	case domain.ResourceCategories:
		return recordFetcher[domain.ProductCategory, *domain.ProductCategory](client.ListCategories)
	case domain.ResourceGroupMessages:
		return recordFetcher[domain.GroupMessage, *domain.GroupMessage](client.ListGroupMessages)
	default:
		return func(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Record], error) {
			return domain.Page[domain.Record]{}, domain.ErrNotFound
		}
	}
}
