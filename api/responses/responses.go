package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/benjaminbelloeil/portfolio-api/pkg/errors"
	"github.com/benjaminbelloeil/portfolio-api/pkg/logger"
)

// The storefront predates this service and expects flat bodies: successes
// are plain objects and failures are {"error": "..."}. No envelopes.

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

// WriteSent reports a successful email dispatch with its provider id.
func WriteSent(w http.ResponseWriter, message, id string) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": message,
		"id":      id,
	})
}

// WriteError maps a coded error to its HTTP status and public message. The
// cause chain is logged but never serialized: provider failures in
// particular must not leak upstream details to the caller.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	if typed.Code() != pkgerrors.CodeInternal {
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	if logg != nil {
		fields := map[string]any{
			"error":      err.Error(),
			"error_code": string(typed.Code()),
		}
		if cause := errors.Unwrap(typed); cause != nil {
			fields["cause"] = cause.Error()
		}
		if details := typed.Details(); details != nil {
			fields["details"] = details
		}
		logg.Error(logg.WithFields(ctx, fields), "request.error", err)
	}

	WriteJSON(w, meta.HTTPStatus, map[string]string{"error": msg})
}
