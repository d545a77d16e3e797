package handler

import (
	"net/http"

	"github.com/orangepax/outlet-sales-sync/internal/api/handler/router"
	"github.com/orangepax/outlet-sales-sync/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Snapshot(reader SnapshotReader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/snapshot",
			Method:  http.MethodGet,
			Handler: GetSnapshot(reader),
		},
	}
}

func Sync(trigger SyncTrigger, secretKey string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(trigger),
		},
		{
			Path:        "/v1/sync/run",
			Method:      http.MethodPost,
			Handler:     RunSync(trigger),
			Middlewares: []func(http.Handler) http.Handler{middleware.BearerAuth(secretKey)},
		},
	}
}
