package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrModelNotLoaded means no trained model artifact is available; callers
// should treat it as "try later", not as bad input.
var ErrModelNotLoaded = errors.New("model not loaded")

// ValidationError reports input fields outside their declared domain.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid value for field(s): " + strings.Join(e.Fields, ", ")
}

// PredictionError wraps a failure inside the model collaborator.
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction error: %v", e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }
