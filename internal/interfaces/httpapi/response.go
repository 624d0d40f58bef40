package httpapi

import (
	"context"
	"net/http"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/match-analyst/internal/usecase"
)

const (
	googleAPIVersion     = "2.0"
	errorDomain          = "match-analyst"
	internalErrorMessage = "internal server error"
)

// googleResponseEnvelope follows the Google JSON style guide: exactly one
// of data or error is set.
type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorKind struct {
	sentinel   error
	httpStatus int
	reason     string
	status     string
}

// errorKinds is checked in order; the first sentinel found in the chain wins.
var errorKinds = []errorKind{
	{sentinel: usecase.ErrInvalidInput, httpStatus: http.StatusBadRequest, reason: "invalidInput", status: "INVALID_ARGUMENT"},
	{sentinel: usecase.ErrNotFound, httpStatus: http.StatusNotFound, reason: "notFound", status: "NOT_FOUND"},
	{sentinel: usecase.ErrUnauthorized, httpStatus: http.StatusUnauthorized, reason: "unauthorized", status: "UNAUTHENTICATED"},
	{sentinel: usecase.ErrDependencyUnavailable, httpStatus: http.StatusServiceUnavailable, reason: "dependencyUnavailable", status: "UNAVAILABLE"},
}

var internalErrorKind = errorKind{httpStatus: http.StatusInternalServerError, reason: "internalError", status: "INTERNAL"}

func classifyError(err error) errorKind {
	for _, kind := range errorKinds {
		if crerr.Is(err, kind.sentinel) {
			return kind
		}
	}
	return internalErrorKind
}

func writeEnvelope(w http.ResponseWriter, status int, envelope googleResponseEnvelope) {
	body, err := sonic.Marshal(envelope)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"apiVersion":"` + googleAPIVersion + `","error":{"code":500,"message":"` + internalErrorMessage + `","status":"INTERNAL"}}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	_, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeEnvelope(w, status, googleResponseEnvelope{APIVersion: googleAPIVersion, Data: data})
}

// writeError maps err onto its HTTP status. Unclassified errors are reported
// as a generic internal error so driver and upstream details stay in logs.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	_, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	kind := classifyError(err)
	message := internalErrorMessage
	if kind.sentinel != nil {
		message = err.Error()
	}
	writeErrorBody(w, kind, message)
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	_, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeErrorBody(w, internalErrorKind, internalErrorMessage)
}

func writeErrorBody(w http.ResponseWriter, kind errorKind, message string) {
	writeEnvelope(w, kind.httpStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    kind.httpStatus,
			Message: message,
			Status:  kind.status,
			Errors:  []googleErrorItem{{Domain: errorDomain, Reason: kind.reason, Message: message}},
		},
	})
}
