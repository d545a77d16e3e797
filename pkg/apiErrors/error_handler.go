package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Authentication (AUTH_xxx)
	ErrInvalidToken = "AUTH_001"
	ErrExpiredToken = "AUTH_002"
	ErrAuthDisabled = "AUTH_003"

	// Validation (VAL_xxx)
	ErrInvalidRequest = "VAL_001"

	// Resources (RES_xxx)
	ErrNotFound       = "RES_001"
	ErrSyncInProgress = "RES_002"

	// Server (SRV_xxx)
	ErrInternalServer  = "SRV_001"
	ErrExternalService = "SRV_002"
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:    http.StatusUnauthorized,
	ErrExpiredToken:    http.StatusUnauthorized,
	ErrAuthDisabled:    http.StatusForbidden,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrNotFound:        http.StatusNotFound,
	ErrSyncInProgress:  http.StatusConflict,
	ErrInternalServer:  http.StatusInternalServerError,
	ErrExternalService: http.StatusBadGateway,
}

// APIError is the body of every non-2xx response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an APIError carrying code.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
