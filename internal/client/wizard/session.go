package wizard

import (
	"github.com/addiskitchen/platform/internal/client/gateway"
)

// Completion records how a step entered the completed set
type Completion int

const (
	// CompletedByVisit means the user finished the step's form
	CompletedByVisit Completion = iota + 1
	// CompletedBySkip means the custom-package shortcut jumped over it
	CompletedBySkip
)

// Session is one run of the package wizard. It is created fresh for
// create mode or hydrated from a fetched package for edit mode, lives
// only in memory, and is discarded on navigation away.
type Session struct {
	current   Step
	completed map[Step]Completion
	form      FormData
	isCustom  bool

	// editID is set in edit mode; it routes the submit to the
	// section update endpoints instead of a single create.
	editID string
}

// NewSession starts a fresh create-mode session on the base step
func NewSession() *Session {
	return &Session{
		current:   StepBase,
		completed: make(map[Step]Completion),
	}
}

// NewEditSession hydrates a session from an existing package. The first
// four steps are marked completed so the user can jump around; image
// fields carry URLs only, because the server has no re-uploadable file
// content to give back.
func NewEditSession(pkg *gateway.Package) *Session {
	form := FormData{
		Name:           pkg.Name,
		Description:    pkg.Description,
		BasePrice:      pkg.BasePrice,
		MinGuests:      pkg.MinGuests,
		MaxGuests:      pkg.MaxGuests,
		Banner:         ExistingImage(pkg.BannerImage),
		IncludesHall:   pkg.IncludesHall,
		Foods:          pkg.FoodIDs,
		Drinks:         pkg.DrinkIDs,
		Services:       pkg.Services,
		IsActive:       pkg.IsActive,
		IsCustom:       pkg.IsCustom,
		PerPerson:      pkg.PerPerson,
		PerPersonPrice: pkg.PerPersonPrice,
	}
	if pkg.Hall != nil {
		hall := HallData{Capacity: pkg.Hall.Capacity}
		for _, url := range pkg.Hall.Images {
			hall.Images = append(hall.Images, ExistingImage(url))
		}
		form.Hall = hall
	}

	return &Session{
		current: StepBase,
		completed: map[Step]Completion{
			StepBase:     CompletedByVisit,
			StepHall:     CompletedByVisit,
			StepFood:     CompletedByVisit,
			StepServices: CompletedByVisit,
		},
		form:     form,
		isCustom: pkg.IsCustom,
		editID:   pkg.ID,
	}
}

// Current returns the active step
func (s *Session) Current() Step {
	return s.current
}

// EditID returns the package id in edit mode, "" in create mode
func (s *Session) EditID() string {
	return s.editID
}

// IsCustom reports the custom-package flag
func (s *Session) IsCustom() bool {
	return s.isCustom
}

// Form returns a snapshot of the aggregate form record
func (s *Session) Form() FormData {
	return s.form
}

// Completed reports whether step is in the completed set
func (s *Session) Completed(step Step) bool {
	_, ok := s.completed[step]
	return ok
}

// CompletionOf reports how step entered the completed set
func (s *Session) CompletionOf(step Step) (Completion, bool) {
	c, ok := s.completed[step]
	return c, ok
}

// UpdateForm shallow-merges patch into the form record. The custom
// flag mirror is refreshed in the same call, never in a later pass, so
// a transition decided right after an update sees the new flag.
func (s *Session) UpdateForm(patch Patch) {
	patch.apply(&s.form)
	s.isCustom = s.form.IsCustom
}

// Advance marks the current step completed and moves forward. On the
// custom path, completing base jumps straight to preview and marks the
// three skipped steps completed-by-skip in the same transition.
func (s *Session) Advance() {
	if _, done := s.completed[s.current]; !done {
		s.completed[s.current] = CompletedByVisit
	}

	next := NextStep(s.current, s.form)
	if s.isCustom && s.current == StepBase {
		for _, skipped := range []Step{StepHall, StepFood, StepServices} {
			if _, done := s.completed[skipped]; !done {
				s.completed[skipped] = CompletedBySkip
			}
		}
	}
	s.current = next
}

// Retreat moves one position back in the fixed sequence, a no-op on
// base. It works on position alone: backing out of preview on a custom
// package lands on services, a step the user never actually visited.
// That matches the shipped behavior exactly; see the tests.
// Completed-step membership is never removed by moving backward.
func (s *Session) Retreat() {
	s.current = PrevStep(s.current)
}

// SkipHall declines the venue section: records includesHall=false and
// moves on to the food step.
func (s *Session) SkipHall() {
	s.UpdateForm(Patch{IncludesHall: Bool(false)})
	s.Advance()
}
