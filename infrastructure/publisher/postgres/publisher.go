package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/orangepax/outlet-sales-sync/infrastructure/publisher"
	"github.com/orangepax/outlet-sales-sync/infrastructure/repository"
)

// Publisher keeps the current snapshot in one table row keyed by artifact name.
type Publisher struct {
	repo       repository.SnapshotArtifactRepository
	name       string
	now         func() time.Time
	schemaMu    sync.Mutex
	schemaReady bool
}

func New(repo repository.SnapshotArtifactRepository, name string) *Publisher {
	return &Publisher{
		repo: repo,
		name: name,
		now:  time.Now,
	}
}

func (p *Publisher) Publish(ctx context.Context, artifactPath string) (publisher.Result, error) {
	if err := p.ensureSchema(ctx); err != nil {
		return publisher.Result{}, &publisher.PublishError{Op: "schema", Err: err}
	}

	content, err := os.ReadFile(artifactPath)
	if err != nil {
		return publisher.Result{}, &publisher.PublishError{Op: "read", Err: err}
	}

	sum := sha256.Sum256(content)
	checksum := hex.EncodeToString(sum[:])

	current, found, err := p.repo.GetChecksum(ctx, p.name)
	if err != nil {
		return publisher.Result{}, &publisher.PublishError{Op: "checksum", Err: err}
	}
	if found && current == checksum {
		logrus.WithField("name", p.name).Info("publish: stored snapshot unchanged, nothing to publish")
		return publisher.Skip("nothing to publish"), nil
	}

	err = p.repo.Save(ctx, &repository.SnapshotArtifact{
		Name:      p.name,
		Checksum:  checksum,
		Content:   content,
		UpdatedAt: p.now().UTC(),
	})
	if err != nil {
		return publisher.Result{}, &publisher.PublishError{Op: "save", Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"name":     p.name,
		"checksum": checksum,
	}).Info("publish: snapshot stored")

	return publisher.Done(checksum), nil
}

// ensureSchema creates the table on the first successful publish; a failure is retried next run.
func (p *Publisher) ensureSchema(ctx context.Context) error {
	p.schemaMu.Lock()
	defer p.schemaMu.Unlock()

	if p.schemaReady {
		return nil
	}
	if err := p.repo.EnsureSchema(ctx); err != nil {
		return err
	}
	p.schemaReady = true
	return nil
}
