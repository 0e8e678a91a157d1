package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidIntake indicates the intake bytes are not a readable workbook.
	// A readable workbook with a missing sheet or missing headers is NOT an
	// error; it produces an empty intake.
	ErrInvalidIntake = errors.New("invalid intake workbook")

	// ErrVersionStore indicates the version tracker could not be loaded or saved.
	ErrVersionStore = errors.New("version store unavailable")

	// ErrRender indicates the document could not be encoded.
	ErrRender = errors.New("document render failed")

	// ErrUnsupportedBackend indicates an unknown storage backend name.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")

	// ErrInvalidSetting indicates a settings key or value was rejected.
	ErrInvalidSetting = errors.New("invalid setting")
)

// Stage names the step of a generation that failed.
type Stage string

// Generation stages.
const (
	StageParse   Stage = "parse"
	StageRender  Stage = "render"
	StageVersion Stage = "version"
	StageHistory Stage = "history"
)

// StageError wraps a failure with the generation stage it came from.
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements error.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps err with stage. Returns nil when err is nil.
func NewStageError(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

// StageOf reports the stage recorded on err, if any.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
