// Package wizard models the upload → validate → interaction → result flow as
// a pure reducer over explicit states.
package wizard

import "bannerval/internal/domain"

// Step is the current wizard screen.
type Step string

const (
	StepUpload      Step = "UPLOAD"
	StepValidating  Step = "VALIDATING"
	StepInteraction Step = "INTERACTION"
	StepError       Step = "ERROR"
	StepResult      Step = "RESULT"
)

// Progress is the percentage shown by the progress bar for s.
func (s Step) Progress() int {
	switch s {
	case StepUpload:
		return 25
	case StepValidating:
		return 50
	case StepInteraction:
		return 75
	default:
		return 100
	}
}

// Upload describes the file being validated. The bytes are never kept.
type Upload struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// State is everything the wizard holds between steps. The zero value is the
// initial UPLOAD state.
type State struct {
	Step Step `json:"step"`
	// Attempt increases on every upload so that late validation results of a
	// discarded attempt can be told apart.
	Attempt     int                      `json:"attempt"`
	Upload      *Upload                  `json:"upload,omitempty"`
	Validation  *domain.ValidationResult `json:"validation,omitempty"`
	Interaction *domain.InteractionInput `json:"interaction,omitempty"`
	Records     []domain.DataLayerRecord `json:"records,omitempty"`
}

// Initial returns the UPLOAD state.
func Initial() State {
	return State{Step: StepUpload}
}

func (s State) step() Step {
	if s.Step == "" {
		return StepUpload
	}
	return s.Step
}
