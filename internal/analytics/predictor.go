package analytics

import "context"

// Features is the input vector for the auxiliary predictor.
type Features struct {
	UserID          string
	AverageScore    float64
	SubmissionCount int
	WeakCompetencies int
}

// Prediction is the auxiliary model's output.
type Prediction struct {
	Label      string
	Confidence float64
}

// Predictor is an injected capability wrapping whatever model the deployment
// provides. It replaces the old process-wide lazy-loaded model singleton:
// injecting it decouples analytics from process lifecycle and makes the
// predictor substitutable in tests.
type Predictor interface {
	Predict(ctx context.Context, f Features) (*Prediction, error)
}

// ErrModelUnavailable is returned by predictors whose backing model cannot
// be reached or is not loaded.
type ErrModelUnavailable struct {
	Err error
}

func (e *ErrModelUnavailable) Error() string {
	if e.Err != nil {
		return "prediction model unavailable: " + e.Err.Error()
	}
	return "prediction model unavailable"
}

func (e *ErrModelUnavailable) Unwrap() error { return e.Err }
