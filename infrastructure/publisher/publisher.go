package publisher

import (
	"context"
	"errors"
	"fmt"
)

type Status string

const (
	Published Status = "published"
	Skipped   Status = "skipped"
)

var ErrPublish = errors.New("publish failed")

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// ArtifactPublisher makes the local snapshot file the current version in some external store.
// Implementations are idempotent: publishing unchanged content reports Skipped.
type ArtifactPublisher interface {
	Publish(ctx context.Context, artifactPath string) (Result, error)
}

type Result struct {
	Status   Status `json:"status"`
	Reason   string `json:"reason,omitempty"`
	Revision string `json:"revision,omitempty"` // commit hash, object generation or checksum
}

func Skip(reason string) Result {
	return Result{Status: Skipped, Reason: reason}
}

func Done(revision string) Result {
	return Result{Status: Published, Revision: revision}
}

// PublishError names the step that failed. Err never carries credentials.
type PublishError struct {
	Op  string
	Err error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish %s: %v", e.Op, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

func (e *PublishError) Is(target error) bool {
	return target == ErrPublish
}

// Noop is used for local runs where nothing leaves the machine.
type Noop struct{}

func (Noop) Publish(ctx context.Context, artifactPath string) (Result, error) {
	return Skip("publishing disabled"), nil
}
