package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"

	"github.com/orangepax/outlet-sales-sync/internal/config"
	"github.com/orangepax/outlet-sales-sync/internal/domain"
)

const (
	DateLayout       = "2006-01-02"
	LastUpdateLayout = "15:04"
)

var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var ErrWrite = errors.New("snapshot write failed")

//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks

type SnapshotWriter interface {
	Write(ctx context.Context, views Views, now time.Time) (string, error)
	Read() ([]byte, error)
}

// Views are the three dashboard tables plus their filter metadata.
type Views struct {
	Today     []domain.OutletSalesRow
	Yesterday []domain.OutletSalesRow
	MTD       []domain.OutletSalesRow
	Metadata  domain.SnapshotMetadata
}

type FileWriter struct {
	path      string
	touchFile string
	location  *time.Location
}

func NewFileWriter(cfg *config.Config) *FileWriter {
	return &FileWriter{
		path:      cfg.Snapshot.OutputPath,
		touchFile: cfg.Snapshot.TouchFile,
		location:  cfg.Snapshot.DisplayLocation(),
	}
}

func (w *FileWriter) Path() string {
	return w.path
}

// Build assembles the document. Nil views become empty arrays so the dashboard never sees null.
func Build(views Views, now time.Time, location *time.Location) domain.Snapshot {
	local := now.In(location)

	return domain.Snapshot{
		Date:       local.Format(DateLayout),
		LastUpdate: local.Format(LastUpdateLayout),
		Today:      nonNil(views.Today),
		Yesterday:  nonNil(views.Yesterday),
		MTD:        nonNil(views.MTD),
		Metadata: domain.SnapshotMetadata{
			Cities: nonNilStrings(views.Metadata.Cities),
			Areas:  nonNilStrings(views.Metadata.Areas),
		},
	}
}

func Encode(snap domain.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Write replaces the snapshot file as a whole: the document goes to a temporary file in the
// same directory which is then renamed over the destination.
func (w *FileWriter) Write(ctx context.Context, views Views, now time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	data, err := Encode(Build(views, now, w.location))
	if err != nil {
		return "", fmt.Errorf("%w: encode: %v", ErrWrite, err)
	}

	if err := writeAtomic(w.path, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	logrus.WithFields(logrus.Fields{
		"path":      w.path,
		"bytes":     len(data),
		"today":     len(views.Today),
		"yesterday": len(views.Yesterday),
		"mtd":       len(views.MTD),
	}).Info("snapshot: written")

	w.touch(now)

	return w.path, nil
}

func (w *FileWriter) Read() ([]byte, error) {
	return os.ReadFile(w.path)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	suffix, err := gonanoid.New(10)
	if err != nil {
		return err
	}
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+suffix+".tmp")

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// touch bumps the mtime of the dashboard page so static hosts revalidate it.
func (w *FileWriter) touch(now time.Time) {
	if w.touchFile == "" {
		return
	}

	if err := os.Chtimes(w.touchFile, now, now); err != nil {
		entry := logrus.WithField("path", w.touchFile)
		if errors.Is(err, fs.ErrNotExist) {
			entry.Debug("snapshot: touch file not present")
			return
		}
		entry.WithError(err).Warn("snapshot: failed to touch file")
	}
}

func nonNil(rows []domain.OutletSalesRow) []domain.OutletSalesRow {
	if rows == nil {
		return []domain.OutletSalesRow{}
	}
	return rows
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
