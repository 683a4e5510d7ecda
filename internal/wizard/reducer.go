package wizard

import (
	"fmt"

	"bannerval/internal/datalayer"
	"bannerval/internal/domain"
)

// Event is an input to Reduce.
type Event interface {
	event()
}

// UploadStarted moves UPLOAD to VALIDATING.
type UploadStarted struct {
	Upload Upload
}

// ValidationFailed moves VALIDATING to ERROR.
type ValidationFailed struct {
	Attempt int
	Result  domain.ValidationResult
}

// ValidationSucceeded moves VALIDATING to INTERACTION.
type ValidationSucceeded struct {
	Attempt int
	Result  domain.ValidationResult
}

// InteractionSubmitted expands the data layer records and moves INTERACTION
// to RESULT.
type InteractionSubmitted struct {
	Input  domain.InteractionInput
	Brands []domain.Brand
}

// Reset discards everything and returns to UPLOAD.
type Reset struct{}

func (UploadStarted) event()        {}
func (ValidationFailed) event()     {}
func (ValidationSucceeded) event()  {}
func (InteractionSubmitted) event() {}
func (Reset) event()                {}

// Reduce applies e to s. It has no side effects: on an illegal event it
// returns s unchanged with an error wrapping domain.ErrInvalidTransition, or
// domain.ErrBusy for an upload while VALIDATING.
func Reduce(s State, e Event) (State, error) {
	cur := s.step()
	switch ev := e.(type) {
	case Reset:
		return State{Step: StepUpload, Attempt: s.Attempt}, nil

	case UploadStarted:
		if cur == StepValidating {
			return s, domain.ErrBusy
		}
		if cur != StepUpload {
			return s, invalid(cur, "upload")
		}
		up := ev.Upload
		return State{Step: StepValidating, Attempt: s.Attempt + 1, Upload: &up}, nil

	case ValidationFailed:
		if cur != StepValidating || ev.Attempt != s.Attempt {
			return s, invalid(cur, "validation failure")
		}
		res := ev.Result
		res.IsValid = false
		next := s
		next.Step = StepError
		next.Validation = &res
		return next, nil

	case ValidationSucceeded:
		if cur != StepValidating || ev.Attempt != s.Attempt {
			return s, invalid(cur, "validation success")
		}
		if !ev.Result.IsValid {
			return s, fmt.Errorf("%w: success event carries an invalid result", domain.ErrInvalidTransition)
		}
		res := ev.Result
		next := s
		next.Step = StepInteraction
		next.Validation = &res
		return next, nil

	case InteractionSubmitted:
		if cur != StepInteraction || s.Validation == nil {
			return s, invalid(cur, "interaction")
		}
		in := ev.Input
		next := s
		next.Step = StepResult
		next.Interaction = &in
		next.Records = datalayer.Expand(datalayer.FromValidation(*s.Validation), in, ev.Brands)
		return next, nil
	}
	return s, fmt.Errorf("%w: unknown event %T", domain.ErrInvalidTransition, e)
}

func invalid(step Step, what string) error {
	return fmt.Errorf("%w: %s not allowed in %s", domain.ErrInvalidTransition, what, step)
}
