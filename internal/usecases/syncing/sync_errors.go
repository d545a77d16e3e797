package syncing

import (
	"errors"
	"fmt"
)

var (
	ErrRunFailed = errors.New("sales snapshot sync failed")
)

// RunError carries the stage that made a run fail. Err keeps the typed cause
// (AuthError, FetchError, PublishError or a write error) for errors.As.
type RunError struct {
	Stage string
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrRunFailed.Error(), e.Stage, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

func (e *RunError) Is(target error) bool {
	return target == ErrRunFailed
}
