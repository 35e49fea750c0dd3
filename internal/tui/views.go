package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/tui/styles"
)

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.helpView()
	}

	var main string
	switch {
	case m.picker.IsVisible():
		main = lipgloss.Place(m.width, m.listHeight(), lipgloss.Center, lipgloss.Center, m.picker.View())
	case m.focus == PaneForm && m.formView != nil:
		main = lipgloss.Place(m.width, m.listHeight(), lipgloss.Center, lipgloss.Top, m.formView.View())
	case m.focus == PaneDetail && m.detailErr != "":
		main = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.detailErrorView())
	case m.focus == PaneDetail && m.detail != nil:
		main = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.detailView())
	default:
		main = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.listView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, m.statusView())
}

func (m Model) listView() string {
	if v := m.activeList(); v != nil {
		return v.View()
	}
	return styles.DimStyle.Render("Loading...")
}

func (m Model) statusView() string {
	bar := m.status
	switch m.focus {
	case PaneForm:
		bar.SetHints("↑/↓: field · tab: section · C-s: save · esc: cancel")
	case PaneDetail:
		if m.detailErr != "" {
			bar.SetHints("r: retry · esc: back")
		} else {
			bar.SetHints("e: edit · esc: back")
		}
	case PaneList:
		bar.SetHints("/: search · f: filter · n: new · e: edit · R: refresh · ?: help")
	default:
		bar.SetHints("j/k: move · enter: open · ?: help")
	}
	return bar.View()
}

func (m Model) detailView() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.detail.GetTitle()))
	b.WriteString("\n")
	if status := m.detail.GetStatus(); status != "" {
		b.WriteString(styles.RenderStatus(status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, row := range detailRows(m.detail) {
		if row.value == "" {
			continue
		}
		b.WriteString(styles.FieldLabelStyle.Render(styles.Pad(row.label, 16)))
		b.WriteString(" ")
		b.WriteString(styles.Truncate(row.value, m.listWidth()-20))
		b.WriteString("\n")
	}

	return styles.ActiveBorder.Width(m.listWidth()).Height(m.listHeight()).Render(b.String())
}

// detailErrorView fills the detail pane when the record could not be
// fetched, with the retry key spelled out.
func (m Model) detailErrorView() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.ErrorBannerStyle.Render(m.detailErr),
		"",
		styles.DimStyle.Render("r: retry · esc: back"),
	)
	centered := lipgloss.Place(m.listWidth()-4, m.listHeight()-2, lipgloss.Center, lipgloss.Center, body)
	return styles.ActiveBorder.Width(m.listWidth()).Height(m.listHeight()).Render(centered)
}

type detailRow struct {
	label string
	value string
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// detailRows flattens a record into label/value pairs for the detail pane
func detailRows(record domain.Record) []detailRow {
	switch r := record.(type) {
	case *domain.Vehicle:
		return []detailRow{
			{"Registration", r.Registration},
			{"Make / Model", strings.TrimSpace(r.Make + " " + r.Model)},
			{"Year", intRow(r.Year)},
			{"Type", r.Type},
			{"Mileage", r.FormattedMileage()},
			{"VIN", r.VIN},
			{"Driver", r.Driver},
			{"Next service", formatDate(r.NextService)},
		}
	case *domain.Contact:
		return []detailRow{
			{"Company", r.Company},
			{"Email", r.Email},
			{"Phone", r.Phone},
			{"Street", r.Street},
			{"City", strings.TrimSpace(r.PostalCode + " " + r.City)},
			{"Country", r.Country},
			{"Notes", r.Notes},
		}
	case *domain.Invoice:
		return []detailRow{
			{"Contact", r.ContactName},
			{"Issued", formatDate(r.IssueDate)},
			{"Due", formatDate(r.DueDate)},
			{"Net", domain.FormatAmount(r.TotalNet, r.Currency)},
			{"Gross", domain.FormatAmount(r.TotalGross, r.Currency)},
		}
	case *domain.Quote:
		return []detailRow{
			{"Contact", r.ContactName},
			{"Valid until", formatDate(r.ValidUntil)},
			{"Net", domain.FormatAmount(r.TotalNet, r.Currency)},
		}
	case *domain.FaultReport:
		return []detailRow{
			{"Vehicle", r.VehicleName},
			{"Severity", r.Severity},
			{"Reported by", r.ReportedBy},
			{"Reported", formatDate(r.ReportedAt)},
			{"Description", r.Description},
		}
	case *domain.Tire:
		return []detailRow{
			{"Size", r.Size},
			{"Season", string(r.Season)},
			{"Tread depth", fmt.Sprintf("%.1f mm", r.TreadDepth)},
			{"Quantity", intRow(r.Quantity)},
			{"Location", r.Location},
		}
	case *domain.ProductCategory:
		return []detailRow{
			{"Parent", r.ParentName},
			{"Products", intRow(r.ProductCount)},
			{"Description", r.Description},
		}
	case *domain.GroupMessage:
		return []detailRow{
			{"Groups", strings.Join(r.Groups, ", ")},
			{"Sent by", r.SentBy},
			{"Sent", formatDate(r.SentAt)},
			{"Recipients", intRow(r.RecipientCount)},
			{"Body", r.Body},
		}
	default:
		return []detailRow{{"Description", record.GetDescription()}}
	}
}

func intRow(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

func (m Model) helpView() string {
	rows := [][2]string{
		{"j/k, ↑/↓", "move"},
		{"h/l, ←/→", "switch pane"},
		{"enter", "open record"},
		{"/", "search (debounced)"},
		{"f", "cycle filter value"},
		{"tab", "next filter key"},
		{"F", "save filter preset"},
		{"m, PgDn", "load more"},
		{"R", "refresh"},
		{"r", "retry after error"},
		{"n", "new record"},
		{"e", "edit record"},
		{"C-s", "save form"},
		{"?", "close help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Keys"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(styles.HelpKeyStyle.Render(styles.Pad(row[0], 12)))
		b.WriteString(styles.HelpDescStyle.Render(row[1]))
		b.WriteString("\n")
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(b.String()))
}
