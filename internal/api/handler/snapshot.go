package handler

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/orangepax/outlet-sales-sync/pkg/apiErrors"
	"github.com/orangepax/outlet-sales-sync/pkg/log"
)

// SnapshotReader returns the bytes of the last written snapshot.
type SnapshotReader interface {
	Read() ([]byte, error)
}

// GetSnapshot serves data.json exactly as it is on disk.
func GetSnapshot(reader SnapshotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := reader.Read()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "no snapshot has been written yet", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("error reading snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "could not read snapshot", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-cache")
		if _, err := w.Write(data); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("error writing snapshot response")
		}
	}
}
