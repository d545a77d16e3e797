package gcs

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"

	"github.com/orangepax/outlet-sales-sync/infrastructure/publisher"
	"github.com/orangepax/outlet-sales-sync/internal/config"
)

const contentType = "application/json; charset=utf-8"

// object is the part of a storage object handle the publisher needs.
type object interface {
	Attrs(ctx context.Context) (*storage.ObjectAttrs, error)
	Upload(ctx context.Context, data []byte, cacheControl string) (int64, error)
}

type Publisher struct {
	object       object
	target       string
	cacheControl string
}

// New connects with application default credentials.
func New(ctx context.Context, cfg *config.Config) (*Publisher, error) {
	if cfg.GCS.Bucket == "" {
		return nil, errors.New("gcs: GCS_BUCKET is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs: failed to create client: %w", err)
	}

	handle := client.Bucket(cfg.GCS.Bucket).Object(cfg.GCS.Object)
	return newPublisher(&storageObject{handle: handle}, "gs://"+cfg.GCS.Bucket+"/"+cfg.GCS.Object, cfg.GCS.CacheControl), nil
}

func newPublisher(obj object, target, cacheControl string) *Publisher {
	return &Publisher{
		object:       obj,
		target:       target,
		cacheControl: cacheControl,
	}
}

// Publish uploads the artifact unless the stored object already has the same MD5.
func (p *Publisher) Publish(ctx context.Context, artifactPath string) (publisher.Result, error) {
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return publisher.Result{}, &publisher.PublishError{Op: "read", Err: err}
	}
	sum := md5.Sum(data)

	attrs, err := p.object.Attrs(ctx)
	switch {
	case err == nil && bytes.Equal(attrs.MD5, sum[:]):
		logrus.WithField("object", p.target).Info("publish: object unchanged, nothing to publish")
		return publisher.Skip("nothing to publish"), nil
	case err != nil && !errors.Is(err, storage.ErrObjectNotExist):
		return publisher.Result{}, &publisher.PublishError{Op: "attrs", Err: err}
	}

	generation, err := p.object.Upload(ctx, data, p.cacheControl)
	if err != nil {
		return publisher.Result{}, &publisher.PublishError{Op: "upload", Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"object":     p.target,
		"md5":        hex.EncodeToString(sum[:]),
		"generation": generation,
	}).Info("publish: snapshot uploaded")

	return publisher.Done(strconv.FormatInt(generation, 10)), nil
}

type storageObject struct {
	handle *storage.ObjectHandle
}

func (o *storageObject) Attrs(ctx context.Context) (*storage.ObjectAttrs, error) {
	return o.handle.Attrs(ctx)
}

func (o *storageObject) Upload(ctx context.Context, data []byte, cacheControl string) (int64, error) {
	w := o.handle.NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = cacheControl

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return w.Attrs().Generation, nil
}
