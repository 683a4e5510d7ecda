package wizard

import (
	"errors"
	"testing"

	"bannerval/internal/catalog"
	"bannerval/internal/domain"
)

func validResult() domain.ValidationResult {
	return domain.ValidationResult{
		IsValid:       true,
		Width:         1440,
		Height:        260,
		Format:        "PNG",
		PromotionName: "Black Friday",
		TextElement:   "Compre Já",
	}
}

func TestReduceHappyPath(t *testing.T) {
	s := Initial()
	steps := []struct {
		event Event
		want  Step
	}{
		{UploadStarted{Upload: Upload{Filename: "banner.png", MIMEType: "image/png", Size: 10}}, StepValidating},
		{ValidationSucceeded{Attempt: 1, Result: validResult()}, StepInteraction},
		{InteractionSubmitted{Input: domain.InteractionInput{PageName: "Home", LocationElement: "Banner Principal"}, Brands: catalog.Default().Brands}, StepResult},
	}
	for _, st := range steps {
		next, err := Reduce(s, st.event)
		if err != nil {
			t.Fatalf("Reduce(%s, %T) returned error: %v", s.Step, st.event, err)
		}
		if next.Step != st.want {
			t.Fatalf("Reduce(%s, %T) step = %s, want %s", s.Step, st.event, next.Step, st.want)
		}
		s = next
	}

	if len(s.Records) != 6 {
		t.Fatalf("len(Records) = %d, want 6", len(s.Records))
	}
	if s.Records[0].PageName != "anhanguera:home" || s.Records[5].PageName != "uniderp:home" {
		t.Fatalf("unexpected page names: %q, %q", s.Records[0].PageName, s.Records[5].PageName)
	}
	if s.Records[3].TextElement != "compre_ja" || s.Records[3].PromotionName != "black_friday" {
		t.Fatalf("unexpected record: %+v", s.Records[3])
	}
}

func TestReduceResetClearsEverything(t *testing.T) {
	s := State{
		Step:        StepResult,
		Attempt:     3,
		Upload:      &Upload{Filename: "banner.png"},
		Validation:  &domain.ValidationResult{IsValid: true},
		Interaction: &domain.InteractionInput{PageName: "home"},
		Records:     []domain.DataLayerRecord{{PageName: "unic:home"}},
	}
	next, err := Reduce(s, Reset{})
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if next.Step != StepUpload {
		t.Fatalf("Step = %s, want UPLOAD", next.Step)
	}
	if next.Upload != nil || next.Validation != nil || next.Interaction != nil || next.Records != nil {
		t.Fatalf("reset leaked state: %+v", next)
	}
	if next.Attempt != 3 {
		t.Fatalf("Attempt = %d, want 3", next.Attempt)
	}
}

func TestReduceResetFromEveryStep(t *testing.T) {
	for _, step := range []Step{StepUpload, StepValidating, StepInteraction, StepError, StepResult} {
		next, err := Reduce(State{Step: step}, Reset{})
		if err != nil || next.Step != StepUpload {
			t.Fatalf("Reset from %s = %s, %v", step, next.Step, err)
		}
	}
}

func TestReduceRejectsIllegalEvents(t *testing.T) {
	validating := State{Step: StepValidating, Attempt: 2, Upload: &Upload{}}
	interaction := State{Step: StepInteraction, Attempt: 1, Validation: &domain.ValidationResult{IsValid: true}}
	tests := []struct {
		name  string
		state State
		event Event
		want  error
	}{
		{name: "upload while validating", state: validating, event: UploadStarted{}, want: domain.ErrBusy},
		{name: "upload in interaction", state: interaction, event: UploadStarted{}, want: domain.ErrInvalidTransition},
		{name: "upload in error", state: State{Step: StepError}, event: UploadStarted{}, want: domain.ErrInvalidTransition},
		{name: "stale success", state: validating, event: ValidationSucceeded{Attempt: 1, Result: validResult()}, want: domain.ErrInvalidTransition},
		{name: "stale failure", state: validating, event: ValidationFailed{Attempt: 1}, want: domain.ErrInvalidTransition},
		{name: "success with invalid result", state: validating, event: ValidationSucceeded{Attempt: 2}, want: domain.ErrInvalidTransition},
		{name: "success outside validating", state: Initial(), event: ValidationSucceeded{Attempt: 0, Result: validResult()}, want: domain.ErrInvalidTransition},
		{name: "error cannot reach interaction", state: State{Step: StepError, Validation: &domain.ValidationResult{}}, event: InteractionSubmitted{}, want: domain.ErrInvalidTransition},
		{name: "submit twice", state: State{Step: StepResult, Validation: &domain.ValidationResult{IsValid: true}}, event: InteractionSubmitted{}, want: domain.ErrInvalidTransition},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Reduce(tc.state, tc.event)
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
			if next.Step != tc.state.Step || next.Attempt != tc.state.Attempt {
				t.Fatalf("state changed on rejected event: %+v", next)
			}
		})
	}
}

func TestReduceValidationFailedForcesInvalid(t *testing.T) {
	s := State{Step: StepValidating, Attempt: 1}
	next, err := Reduce(s, ValidationFailed{Attempt: 1, Result: domain.ValidationResult{IsValid: true, Error: "x"}})
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if next.Step != StepError || next.Validation == nil || next.Validation.IsValid {
		t.Fatalf("unexpected state: %+v", next)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := State{Step: StepValidating, Attempt: 1, Upload: &Upload{Filename: "a.png"}}
	if _, err := Reduce(s, ValidationSucceeded{Attempt: 1, Result: validResult()}); err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if s.Step != StepValidating || s.Validation != nil {
		t.Fatalf("input state mutated: %+v", s)
	}
}

func TestStepProgress(t *testing.T) {
	want := map[Step]int{StepUpload: 25, StepValidating: 50, StepInteraction: 75, StepResult: 100, StepError: 100}
	for step, p := range want {
		if got := step.Progress(); got != p {
			t.Fatalf("%s.Progress() = %d, want %d", step, got, p)
		}
	}
}
