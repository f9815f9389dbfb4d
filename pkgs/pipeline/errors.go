package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies how a pipeline failure surfaces at the boundary.
type Kind int

const (
	// KindClientInput is a request that failed validation.
	KindClientInput Kind = iota + 1
	// KindCollaboratorUnavailable is an absent video; the video is skipped.
	KindCollaboratorUnavailable
	// KindCollaboratorFailure is any other collaborator error.
	KindCollaboratorFailure
	// KindAsyncFailure is a failure of the sentiment pass.
	KindAsyncFailure
)

func (k Kind) String() string {
	switch k {
	case KindClientInput:
		return "ClientInput"
	case KindCollaboratorUnavailable:
		return "CollaboratorUnavailable"
	case KindCollaboratorFailure:
		return "CollaboratorFailure"
	case KindAsyncFailure:
		return "AsyncFailure"
	default:
		return "Unknown"
	}
}

var (
	ErrMissingFields    = errors.New("Missing required fields")
	ErrVideoUnavailable = errors.New("video details unavailable")
)

// PipelineError is the single error type returned by Pipeline.Run.
type PipelineError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *PipelineError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or 0 when err is not a *PipelineError.
func KindOf(err error) Kind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

func clientInput(err error) error {
	return &PipelineError{Kind: KindClientInput, Err: err}
}

func unavailable(op string) error {
	return &PipelineError{Kind: KindCollaboratorUnavailable, Op: op, Err: ErrVideoUnavailable}
}

func collaboratorFailure(op string, err error) error {
	return &PipelineError{Kind: KindCollaboratorFailure, Op: op, Err: err}
}

func asyncFailure(op string, err error) error {
	return &PipelineError{Kind: KindAsyncFailure, Op: op, Err: err}
}
