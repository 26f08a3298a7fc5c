package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("authentication required")
)

// ValidationError marks malformed or missing client input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// StoreError wraps an I/O or lock failure on a backing file.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

// Publish pipeline stages, in execution order.
const (
	StageGenerate = "generate"
	StageStage    = "stage"
	StageCommit   = "commit"
	StagePush     = "push"
)

// StageError reports which publish stage failed. A commit with no staged
// changes is not a StageError.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("publish stage %s: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// UpstreamError summarizes a failed third-party call. Summary is safe to
// return to the client; the raw upstream error never is.
type UpstreamError struct {
	Timeout bool
	Summary string
}

func (e *UpstreamError) Error() string { return e.Summary }
