package core

import (
	"context"
	"errors"
)

// ErrRunNotFound is returned by RunStore implementations for unknown run ids.
var ErrRunNotFound = errors.New("check run not found")

// RunStore persists completed check runs.
type RunStore interface {
	Save(ctx context.Context, run CheckRun) error

	// Get returns the run with the given id, or ErrRunNotFound.
	Get(ctx context.Context, id string) (CheckRun, error)

	// ListRecent returns up to limit runs, newest first.
	ListRecent(ctx context.Context, limit int) ([]CheckRun, error)
}
