// Package wizard implements the package-creation flow: a five step
// sequence over one aggregate form record, with a shortcut that jumps
// custom packages straight from base info to preview.
package wizard

// Step is one stage of the package creation flow
type Step string

const (
	StepBase     Step = "base"
	StepHall     Step = "hall"
	StepFood     Step = "food"
	StepServices Step = "services"
	StepPreview  Step = "preview"
)

// Sequence is the fixed forward order of the steps
var Sequence = []Step{StepBase, StepHall, StepFood, StepServices, StepPreview}

// indexOf returns the position of step in Sequence, -1 if unknown
func indexOf(step Step) int {
	for i, s := range Sequence {
		if s == step {
			return i
		}
	}
	return -1
}

// NextStep computes the step that follows current for the given form
// snapshot. Custom packages skip the hall, food and services steps and
// land directly on preview. Preview has no successor.
func NextStep(current Step, form FormData) Step {
	if form.IsCustom && current == StepBase {
		return StepPreview
	}
	i := indexOf(current)
	if i < 0 || i == len(Sequence)-1 {
		return current
	}
	return Sequence[i+1]
}

// PrevStep computes the step before current by position alone. It
// deliberately ignores the custom-package shortcut: going back from
// preview on a custom package lands on services even though that step
// was skipped on the way forward. See the note on Session.Retreat.
func PrevStep(current Step) Step {
	i := indexOf(current)
	if i <= 0 {
		return current
	}
	return Sequence[i-1]
}
