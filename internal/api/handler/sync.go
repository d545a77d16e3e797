package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/orangepax/outlet-sales-sync/pkg/apiErrors"
	"github.com/orangepax/outlet-sales-sync/pkg/log"
	"github.com/orangepax/outlet-sales-sync/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SyncTrigger is the part of the scheduler the API drives.
type SyncTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunSync starts a sync in the background and answers 202, or 409 when one is already running.
func RunSync(trigger SyncTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("subject", claims.Subject)
		}

		if !trigger.TriggerManualSync() {
			logger.Info("manual sync refused, a run is in progress")
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "a sync is already running", nil)
			return
		}

		logger.Info("manual sync triggered")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "sync started",
		})
	}
}

func GetSyncStatus(trigger SyncTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trigger.GetStatus()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error encoding sync status")
		}
	}
}
