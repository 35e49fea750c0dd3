// Package form implements the controller behind create/edit screens:
// sectioned fields, declarative client-side validation mirroring the
// server's rules, and mapping of server 422 responses back onto fields.
package form

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Notifier is the port for user feedback on submit outcomes. The UI layer
// provides the status-bar implementation; tests provide a recorder.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all feedback.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// Field is one editable form field.
type Field struct {
	Name    string // Wire name, matches the server's validation key
	Label   string // Display label
	Section string // Owning tab/section
	Rules   string // validator/v10 tag, e.g. "required,email"
	Value   string
	Err     string
}

// Form holds ordered fields grouped into sections and tracks the active
// section for tabbed rendering.
type Form struct {
	fields   []*Field
	index    map[string]*Field
	sections []string
	active   int
	validate *validator.Validate
	notifier Notifier
}

// New builds a form from the given field declarations, in order. Sections
// appear in first-use order.
func New(notifier Notifier, fields ...Field) *Form {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	f := &Form{
		index:    make(map[string]*Field, len(fields)),
		validate: validator.New(),
		notifier: notifier,
	}
	for i := range fields {
		fld := fields[i]
		f.fields = append(f.fields, &fld)
		f.index[fld.Name] = &fld
		if !contains(f.sections, fld.Section) {
			f.sections = append(f.sections, fld.Section)
		}
	}
	return f
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// Fields returns a copy of the field states in declaration order.
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	for i, fld := range f.fields {
		out[i] = *fld
	}
	return out
}

// SectionFields returns the fields belonging to one section.
func (f *Form) SectionFields(section string) []Field {
	var out []Field
	for _, fld := range f.fields {
		if fld.Section == section {
			out = append(out, *fld)
		}
	}
	return out
}

// Sections returns the section names in declaration order.
func (f *Form) Sections() []string {
	return append([]string(nil), f.sections...)
}

// ActiveSection returns the currently selected section name.
func (f *Form) ActiveSection() string {
	if len(f.sections) == 0 {
		return ""
	}
	return f.sections[f.active]
}

// SetActiveSection selects a section by name; unknown names are ignored.
func (f *Form) SetActiveSection(name string) {
	for i, s := range f.sections {
		if s == name {
			f.active = i
			return
		}
	}
}

// NextSection cycles to the following section.
func (f *Form) NextSection() {
	if len(f.sections) > 0 {
		f.active = (f.active + 1) % len(f.sections)
	}
}

// Value returns a field's current value.
func (f *Form) Value(name string) string {
	if fld, ok := f.index[name]; ok {
		return fld.Value
	}
	return ""
}

// SetValue updates a field and clears its error: a fresh edit invalidates
// the previous validation verdict for that field.
func (f *Form) SetValue(name, value string) {
	if fld, ok := f.index[name]; ok {
		fld.Value = value
		fld.Err = ""
	}
}

// FieldError returns the current error message for a field.
func (f *Form) FieldError(name string) string {
	if fld, ok := f.index[name]; ok {
		return fld.Err
	}
	return ""
}

// Validate runs the declarative rules client-side. It fills per-field
// errors, focuses the first errored field's section, and reports whether
// the form is clean.
func (f *Form) Validate() bool {
	ok := true
	for _, fld := range f.fields {
		fld.Err = ""
		if fld.Rules == "" {
			continue
		}
		if err := f.validate.Var(fld.Value, fld.Rules); err != nil {
			var verrs validator.ValidationErrors
			if ok2 := asValidationErrors(err, &verrs); ok2 && len(verrs) > 0 {
				fld.Err = ruleMessage(fld.Label, verrs[0])
			} else {
				fld.Err = fmt.Sprintf("%s is invalid", fld.Label)
			}
			ok = false
		}
	}
	if !ok {
		f.focusFirstError()
		f.notifier.Error("Please correct the highlighted fields.")
	}
	return ok
}

// ApplyServerErrors maps a server-side rejection onto the form: the first
// message per field is shown, the section containing the first errored
// field (declaration order) becomes active, and the rejection message is
// raised through the notifier port.
func (f *Form) ApplyServerErrors(message string, fields map[string][]string) {
	for name, msgs := range fields {
		if fld, ok := f.index[name]; ok && len(msgs) > 0 {
			fld.Err = msgs[0]
		}
	}
	f.focusFirstError()
	if message == "" {
		message = "The submitted data was rejected."
	}
	f.notifier.Error(message)
}

// ClearErrors removes every field error.
func (f *Form) ClearErrors() {
	for _, fld := range f.fields {
		fld.Err = ""
	}
}

// HasErrors reports whether any field currently carries an error.
func (f *Form) HasErrors() bool {
	for _, fld := range f.fields {
		if fld.Err != "" {
			return true
		}
	}
	return false
}

// Notifier returns the injected feedback port.
func (f *Form) Notifier() Notifier {
	return f.notifier
}

func (f *Form) focusFirstError() {
	for _, fld := range f.fields {
		if fld.Err != "" {
			f.SetActiveSection(fld.Section)
			return
		}
	}
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

// ruleMessage renders a human message for a failed rule, matching the
// wording the backend uses for the same constraint.
func ruleMessage(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "numeric":
		return fmt.Sprintf("%s must be a number", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s may not be longer than %s characters", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be %s or more", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
