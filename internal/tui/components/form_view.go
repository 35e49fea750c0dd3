package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fleetdesk/fleetdesk/internal/form"
	"github.com/fleetdesk/fleetdesk/internal/tui/styles"
)

// FormView renders a sectioned record form. One field is focused at a
// time; its value is edited through a text input that writes back into
// the form on every keystroke.
type FormView struct {
	Title  string
	form   *form.Form
	input  textinput.Model
	cursor int // Index within the active section's fields
	width  int
	height int
}

// NewFormView wraps a form for rendering
func NewFormView(title string, f *form.Form) FormView {
	ti := textinput.New()
	ti.CharLimit = 500
	ti.Prompt = "> "
	ti.PromptStyle = styles.AccentStyle
	ti.Focus()

	v := FormView{Title: title, form: f, input: ti}
	v.syncInput()
	return v
}

// Form returns the wrapped form
func (v *FormView) Form() *form.Form {
	return v.form
}

// SetSize updates the component dimensions
func (v *FormView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.input.Width = width - 10
}

// syncInput loads the focused field's value into the text input
func (v *FormView) syncInput() {
	fields := v.form.SectionFields(v.form.ActiveSection())
	if len(fields) == 0 {
		return
	}
	if v.cursor >= len(fields) {
		v.cursor = len(fields) - 1
	}
	v.input.SetValue(fields[v.cursor].Value)
	v.input.CursorEnd()
}

// FocusedField returns the name of the field under the cursor
func (v FormView) FocusedField() string {
	fields := v.form.SectionFields(v.form.ActiveSection())
	if v.cursor < 0 || v.cursor >= len(fields) {
		return ""
	}
	return fields[v.cursor].Name
}

// FocusField moves the cursor to the named field, switching sections
// when needed. Used after server errors pick the section to show.
func (v *FormView) FocusField(name string) {
	for _, f := range v.form.Fields() {
		if f.Name != name {
			continue
		}
		v.form.SetActiveSection(f.Section)
		for i, sf := range v.form.SectionFields(f.Section) {
			if sf.Name == name {
				v.cursor = i
				break
			}
		}
		break
	}
	v.syncInput()
}

// Resync re-reads the form state, e.g. after server errors moved the
// active section.
func (v *FormView) Resync() {
	v.cursor = 0
	if errs := v.erroredFields(v.form.ActiveSection()); len(errs) > 0 {
		v.FocusField(errs[0])
		return
	}
	v.syncInput()
}

func (v *FormView) erroredFields(section string) []string {
	var names []string
	for _, f := range v.form.SectionFields(section) {
		if f.Err != "" {
			names = append(names, f.Name)
		}
	}
	return names
}

// NextField moves focus down within the active section
func (v *FormView) NextField() {
	fields := v.form.SectionFields(v.form.ActiveSection())
	if v.cursor < len(fields)-1 {
		v.cursor++
	}
	v.syncInput()
}

// PrevField moves focus up within the active section
func (v *FormView) PrevField() {
	if v.cursor > 0 {
		v.cursor--
	}
	v.syncInput()
}

// NextSection cycles to the next section
func (v *FormView) NextSection() {
	v.form.NextSection()
	v.cursor = 0
	v.syncInput()
}

// UpdateInput forwards a key event to the focused field's editor
func (v *FormView) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)

	fields := v.form.SectionFields(v.form.ActiveSection())
	if v.cursor < len(fields) {
		v.form.SetValue(fields[v.cursor].Name, v.input.Value())
	}
	return cmd
}

// View renders the form
func (v FormView) View() string {
	var b strings.Builder

	b.WriteString(styles.ModalTitleStyle.Render(v.Title))
	b.WriteString("\n")
	b.WriteString(v.sectionTabs())
	b.WriteString("\n\n")

	fields := v.form.SectionFields(v.form.ActiveSection())
	for i, f := range fields {
		label := styles.FieldLabelStyle.Render(f.Label)
		if i == v.cursor {
			label = styles.AccentStyle.Render(f.Label)
		}
		b.WriteString(label)
		b.WriteString("\n")

		if i == v.cursor {
			b.WriteString(v.input.View())
		} else if f.Value != "" {
			b.WriteString("  " + styles.Truncate(f.Value, v.width-6))
		} else {
			b.WriteString("  " + styles.DimStyle.Render("—"))
		}
		b.WriteString("\n")

		if f.Err != "" {
			b.WriteString(styles.FieldErrorStyle.Render("  " + f.Err))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("tab: section  ·  C-s: save  ·  esc: cancel"))

	return styles.ModalStyle.Width(v.width).Render(b.String())
}

// sectionTabs renders the section strip; sections holding errors are
// flagged so the user can find rejected fields that are off-screen.
func (v FormView) sectionTabs() string {
	var tabs []string
	for _, section := range v.form.Sections() {
		label := section
		if len(v.erroredFields(section)) > 0 {
			label += " !"
		}
		switch {
		case section == v.form.ActiveSection():
			tabs = append(tabs, styles.SectionActiveStyle.Render(label))
		case len(v.erroredFields(section)) > 0:
			tabs = append(tabs, styles.SectionErrorStyle.Render(label))
		default:
			tabs = append(tabs, styles.SectionStyle.Render(label))
		}
	}
	return strings.Join(tabs, "  ")
}
