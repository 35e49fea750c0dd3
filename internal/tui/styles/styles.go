package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Color palette
var (
	FleetBlue  = lipgloss.Color("#2563EB")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Amber      = lipgloss.Color("#F59E0B")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FleetBlue)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(FleetBlue)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)
)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)
)

// Status badge styles, keyed by the record status strings the backend uses.
var statusBadges = map[string]lipgloss.Style{
	"active":      lipgloss.NewStyle().Foreground(Green),
	"paid":        lipgloss.NewStyle().Foreground(Green),
	"accepted":    lipgloss.NewStyle().Foreground(Green),
	"resolved":    lipgloss.NewStyle().Foreground(Green),
	"sent":        lipgloss.NewStyle().Foreground(FleetBlue),
	"open":        lipgloss.NewStyle().Foreground(Amber),
	"in_progress": lipgloss.NewStyle().Foreground(Amber),
	"maintenance": lipgloss.NewStyle().Foreground(Amber),
	"overdue":     lipgloss.NewStyle().Foreground(Red),
	"rejected":    lipgloss.NewStyle().Foreground(Red),
	"retired":     lipgloss.NewStyle().Foreground(DimGray),
	"sold":        lipgloss.NewStyle().Foreground(DimGray),
	"draft":       lipgloss.NewStyle().Foreground(DimGray),
	"expired":     lipgloss.NewStyle().Foreground(DimGray),
}

// RenderStatus renders a record status with its badge color.
func RenderStatus(status string) string {
	if style, ok := statusBadges[status]; ok {
		return style.Render(status)
	}
	return DimStyle.Render(status)
}

// Error banner shown above a list that failed to refresh
var ErrorBannerStyle = lipgloss.NewStyle().
	Foreground(White).
	Background(Red).
	Padding(0, 1)

// Form styles
var (
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SectionActiveStyle = lipgloss.NewStyle().
				Foreground(FleetBlue).
				Bold(true).
				Underline(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	SectionErrorStyle = lipgloss.NewStyle().
				Foreground(Red)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FleetBlue).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(FleetBlue)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Match highlight styles for picker results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(FleetBlue).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(FleetBlue).
					Background(SlateLight).
					Bold(true)
)

// Spinner style and frames
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(FleetBlue)

	SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
)

// Helper functions

// Truncate shortens a string to the given display width with an
// ellipsis, never splitting a multibyte rune.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// Pad pads or clips a string to the given display width
func Pad(s string, width int) string {
	if runewidth.StringWidth(s) >= width {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}
