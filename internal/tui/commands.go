package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fleetdesk/fleetdesk/internal/api"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/search"
)

// Command factories for async operations

const requestTimeout = 30 * time.Second

// waitForListChange blocks until one of the list controllers reports a
// state change, then asks the screen to re-render from a fresh snapshot.
func waitForListChange(ch chan domain.Resource) tea.Cmd {
	return func() tea.Msg {
		return ListChangedMsg{Resource: <-ch}
	}
}

// LoadDetailCmd loads a single record for the detail pane
func LoadDetailCmd(client *api.Client, resource domain.Resource, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		record, err := loadDetail(ctx, client, resource, id)
		if err != nil {
			return DetailFailedMsg{Resource: resource, ID: id, Err: err}
		}
		return DetailLoadedMsg{Resource: resource, Record: record}
	}
}

// hasDetailEndpoint reports whether the backend exposes a GET-by-id
// route for the resource.
func hasDetailEndpoint(resource domain.Resource) bool {
	switch resource {
	case domain.ResourceVehicles, domain.ResourceContacts, domain.ResourceInvoices,
		domain.ResourceQuotes, domain.ResourceFaultReports:
		return true
	default:
		return false
	}
}

func loadDetail(ctx context.Context, client *api.Client, resource domain.Resource, id int64) (domain.Record, error) {
	switch resource {
	case domain.ResourceVehicles:
		return client.GetVehicle(ctx, id)
	case domain.ResourceContacts:
		return client.GetContact(ctx, id)
	case domain.ResourceInvoices:
		return client.GetInvoice(ctx, id)
	case domain.ResourceQuotes:
		return client.GetQuote(ctx, id)
	case domain.ResourceFaultReports:
		return client.GetFaultReport(ctx, id)
	default:
		return nil, domain.ErrNotFound
	}
}

// SubmitCmd runs a form submission. A 422 rejection is carried back as
// field errors rather than as a hard failure.
func SubmitCmd(resource domain.Resource, submit func(ctx context.Context) (domain.Record, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		record, err := submit(ctx)
		if err != nil {
			if verr, ok := domain.AsValidationError(err); ok {
				return SubmitResultMsg{Resource: resource, Validation: verr}
			}
			return SubmitResultMsg{Resource: resource, Err: err}
		}
		return SubmitResultMsg{Resource: resource, Record: record}
	}
}

// LoadVehicleRefsCmd loads the vehicle candidates for form pickers. The
// fault report form still opens when this fails; the picker is just
// empty and the degradation is logged.
func LoadVehicleRefsCmd(client *api.Client, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		q := domain.NewListQuery()
		q.PerPage = 100
		page, err := client.ListVehicles(ctx, q)
		if err != nil {
			logger.Warn("vehicle reference load failed", "error", err)
			return RefsLoadedMsg{Kind: RefVehicles, Partial: true}
		}

		candidates := make([]search.Candidate, len(page.Items))
		for i, v := range page.Items {
			candidates[i] = search.Candidate{ID: v.ID, Label: v.GetTitle()}
		}
		return RefsLoadedMsg{Kind: RefVehicles, Items: candidates, Partial: page.Pagination.HasMore()}
	}
}

// LoadCategoryRefsCmd loads the parent-category candidates for the
// category form picker.
func LoadCategoryRefsCmd(client *api.Client, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		q := domain.NewListQuery()
		q.PerPage = 100
		page, err := client.ListCategories(ctx, q)
		if err != nil {
			logger.Warn("category reference load failed", "error", err)
			return RefsLoadedMsg{Kind: RefCategories, Partial: true}
		}

		candidates := make([]search.Candidate, len(page.Items))
		for i, c := range page.Items {
			candidates[i] = search.Candidate{ID: c.ID, Label: c.Name}
		}
		return RefsLoadedMsg{Kind: RefCategories, Items: candidates, Partial: page.Pagination.HasMore()}
	}
}

// ClearStatusCmd clears the status bar after a delay
func ClearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// TickCmd drives the spinner animation
func TickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
