package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/bornholm/todo/internal/metrics"
	"github.com/pkg/errors"
)

const (
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeInvalidBody      = "INVALID_BODY"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInternalError    = "INTERNAL_ERROR"
)

type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// HandleError is the single mapping point between the internal error
// taxonomy and the wire-level status codes and error bodies. Internal
// faults are logged with their stack and returned with a generic
// message only.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *port.ValidationError
	if errors.As(err, &validationErr) {
		details := make([]FieldError, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			details = append(details, FieldError{
				Path:    f.Path,
				Message: f.Message,
			})
		}

		code := CodeInvalidInput
		message := "invalid input"

		switch validationErr.Source {
		case port.ValidationSourceQuery:
			code = CodeInvalidParameter
			message = "invalid query parameters"
		case port.ValidationSourceBody:
			code = CodeInvalidBody
			message = "invalid request body"
		}

		writeError(w, r, http.StatusBadRequest, ErrorResponse{
			Code:    code,
			Message: message,
			Details: details,
		})
		return
	}

	switch {
	case errors.Is(err, port.ErrUnauthenticated):
		writeError(w, r, http.StatusUnauthorized, ErrorResponse{
			Code:    CodeUnauthorized,
			Message: "authentication required",
		})
	case errors.Is(err, port.ErrForbidden):
		writeError(w, r, http.StatusForbidden, ErrorResponse{
			Code:    CodeForbidden,
			Message: "you do not have access to this resource",
		})
	case errors.Is(err, port.ErrNotFound):
		writeError(w, r, http.StatusNotFound, ErrorResponse{
			Code:    CodeNotFound,
			Message: "resource not found",
		})
	default:
		slog.ErrorContext(r.Context(), "unexpected error", slogx.Error(errors.WithStack(err)))
		writeError(w, r, http.StatusInternalServerError, ErrorResponse{
			Code:    CodeInternalError,
			Message: "internal error",
		})
	}
}

// HandleUnauthenticated is the authn middleware callback for requests
// carrying no usable identity.
func HandleUnauthenticated(w http.ResponseWriter, r *http.Request) {
	HandleError(w, r, errors.WithStack(port.ErrUnauthenticated))
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, res ErrorResponse) {
	metrics.TotalRejectedRequests.Inc()

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(r.Context(), "could not encode error response", slogx.Error(err))
	}
}
