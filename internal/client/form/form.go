// Package form is the form-binding layer: a declarative field schema
// (required, length, numeric bounds, cross-field rules) tracked against
// per-field values, per-field errors and a form-level dirty flag.
// Fields are addressed by dotted paths such as "name.en".
package form

import (
	"fmt"
	"strconv"
)

// Mode decides when a field's rule is evaluated
type Mode int

const (
	// OnSubmit defers validation until a submit attempt
	OnSubmit Mode = iota
	// OnChange validates a field every time it changes
	OnChange
)

// Rule is the declarative validation of one field
type Rule struct {
	// Path is the dotted field path, e.g. "name.en"
	Path     string
	Required bool
	// Message overrides the generated required message
	Message string
	MinLen  int
	MaxLen  int
	// Min/Max bound numeric fields; the value is parsed as a float
	Min *float64
	Max *float64
	// Section groups fields for error surfacing, e.g. a language tab
	Section string
}

// CrossRule validates across fields. It returns the offending path and
// a message, or "" when satisfied.
type CrossRule func(get func(path string) string) (path, message string)

// Schema is the full declarative description of a form
type Schema struct {
	Rules []Rule
	Cross []CrossRule
}

// Form tracks one form instance
type Form struct {
	schema  *Schema
	mode    Mode
	initial map[string]string
	values  map[string]string
	errors  map[string]string
}

// New creates a form over schema with the given initial values. The
// initial snapshot is the dirty-flag baseline.
func New(schema *Schema, initial map[string]string, mode Mode) *Form {
	f := &Form{
		schema:  schema,
		mode:    mode,
		initial: make(map[string]string, len(initial)),
		values:  make(map[string]string, len(initial)),
		errors:  make(map[string]string),
	}
	for path, value := range initial {
		f.initial[path] = value
		f.values[path] = value
	}
	return f
}

// Get returns a field's current value
func (f *Form) Get(path string) string {
	return f.values[path]
}

// Set updates a field. In OnChange mode the field's rule is evaluated
// immediately, so correcting an invalid value clears its error.
func (f *Form) Set(path, value string) {
	f.values[path] = value
	if f.mode == OnChange {
		f.validateField(path)
	}
}

// Error returns a field's current error message, "" when valid or not
// yet evaluated.
func (f *Form) Error(path string) string {
	return f.errors[path]
}

// IsDirty reports whether any field differs from its initial value
func (f *Form) IsDirty() bool {
	for path, value := range f.values {
		if f.initial[path] != value {
			return true
		}
	}
	for path, value := range f.initial {
		if _, present := f.values[path]; !present && value != "" {
			return true
		}
	}
	return false
}

// Validate evaluates every rule, populating errors. Returns true when
// the form is submittable.
func (f *Form) Validate() bool {
	f.errors = make(map[string]string)
	for _, rule := range f.schema.Rules {
		f.applyRule(rule)
	}
	for _, cross := range f.schema.Cross {
		path, message := cross(f.Get)
		if message != "" {
			if _, taken := f.errors[path]; !taken {
				f.errors[path] = message
			}
		}
	}
	return len(f.errors) == 0
}

// FirstInvalidSection returns the section of the first rule (in schema
// order) whose field is currently in error, so the caller can switch
// the user to the tab containing the problem. "" when none.
func (f *Form) FirstInvalidSection() string {
	for _, rule := range f.schema.Rules {
		if f.errors[rule.Path] != "" {
			return rule.Section
		}
	}
	return ""
}

// Errors returns a copy of the current error map
func (f *Form) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for path, message := range f.errors {
		out[path] = message
	}
	return out
}

// Submit validates and, only when clean, runs fn with the current
// values. A successful submit resets the dirty baseline so the form can
// stay open; a validation failure refuses without calling fn.
func (f *Form) Submit(fn func(values map[string]string) error) error {
	if !f.Validate() {
		return fmt.Errorf("form has validation errors")
	}

	values := make(map[string]string, len(f.values))
	for path, value := range f.values {
		values[path] = value
	}
	if err := fn(values); err != nil {
		return err
	}

	f.initial = values
	return nil
}

// Cancel decides whether leaving the form is allowed: a dirty form
// prompts for confirmation first. Returns true when the caller may
// discard the form.
func (f *Form) Cancel(confirm func(prompt string) bool) bool {
	if !f.IsDirty() {
		return true
	}
	if confirm == nil {
		return false
	}
	return confirm("Discard unsaved changes?")
}

func (f *Form) validateField(path string) {
	for _, rule := range f.schema.Rules {
		if rule.Path == path {
			f.applyRule(rule)
			return
		}
	}
}

func (f *Form) applyRule(rule Rule) {
	value := f.values[rule.Path]

	fail := func(message string) {
		f.errors[rule.Path] = message
	}

	if rule.Required && value == "" {
		if rule.Message != "" {
			fail(rule.Message)
		} else {
			fail(rule.Path + " is required")
		}
		return
	}
	if value == "" {
		delete(f.errors, rule.Path)
		return
	}
	if rule.MinLen > 0 && len([]rune(value)) < rule.MinLen {
		fail(fmt.Sprintf("%s must be at least %d characters", rule.Path, rule.MinLen))
		return
	}
	if rule.MaxLen > 0 && len([]rune(value)) > rule.MaxLen {
		fail(fmt.Sprintf("%s must be at most %d characters", rule.Path, rule.MaxLen))
		return
	}
	if rule.Min != nil || rule.Max != nil {
		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			fail(rule.Path + " must be a number")
			return
		}
		if rule.Min != nil && number < *rule.Min {
			fail(fmt.Sprintf("%s must be at least %g", rule.Path, *rule.Min))
			return
		}
		if rule.Max != nil && number > *rule.Max {
			fail(fmt.Sprintf("%s must be at most %g", rule.Path, *rule.Max))
			return
		}
	}
	delete(f.errors, rule.Path)
}
