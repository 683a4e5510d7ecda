package wizard

import (
	"context"
	"errors"

	"bannerval/internal/domain"
)

// Wizard drives sessions through the pipeline.
type Wizard struct {
	pipeline *Pipeline
}

func New(p *Pipeline) *Wizard {
	return &Wizard{pipeline: p}
}

// Pipeline exposes the validation pipeline.
func (w *Wizard) Pipeline() *Pipeline {
	return w.pipeline
}

// Upload validates f for sess. The session is VALIDATING while the pipeline
// runs, so a second upload in the meantime fails with domain.ErrBusy. A
// mismatch is not an error here: the returned state is ERROR.
func (w *Wizard) Upload(ctx context.Context, sess *Session, f File, locale string) (State, error) {
	st, err := sess.Apply(UploadStarted{Upload: Upload{
		Filename: f.Name,
		MIMEType: f.MIMEType,
		Size:     int64(len(f.Data)),
	}})
	if err != nil {
		return st, err
	}

	res, verr := w.pipeline.Validate(ctx, f, locale)
	var mismatch *domain.MismatchError
	switch {
	case verr == nil:
		return sess.Apply(ValidationSucceeded{Attempt: st.Attempt, Result: res})
	case errors.As(verr, &mismatch):
		return sess.Apply(ValidationFailed{Attempt: st.Attempt, Result: res})
	default:
		return sess.Apply(ValidationFailed{Attempt: st.Attempt, Result: ProcessingFailure(locale)})
	}
}

// Fail records a processing failure for an upload that never reached the
// pipeline, for example because the file could not be read.
func (w *Wizard) Fail(sess *Session, f File, locale string) (State, error) {
	st, err := sess.Apply(UploadStarted{Upload: Upload{Filename: f.Name, MIMEType: f.MIMEType}})
	if err != nil {
		return st, err
	}
	w.pipeline.metrics.ValidationOutcome("error")
	return sess.Apply(ValidationFailed{Attempt: st.Attempt, Result: ProcessingFailure(locale)})
}

// Submit expands the data layer records for every configured brand. Missing
// or blank fields fail with an *InputError and leave the session in
// INTERACTION.
func (w *Wizard) Submit(sess *Session, in domain.InteractionInput) (State, error) {
	if err := ValidateInteraction(in); err != nil {
		return sess.State(), err
	}
	st, err := sess.Apply(InteractionSubmitted{Input: in, Brands: w.pipeline.Catalog().Brands})
	if err != nil {
		return st, err
	}
	w.pipeline.metrics.RecordsGenerated(len(st.Records))
	return st, nil
}

// Reset discards all transient state of sess.
func (w *Wizard) Reset(sess *Session) (State, error) {
	return sess.Apply(Reset{})
}
