package responses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/benjaminbelloeil/portfolio-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteSent(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSent(rec, "Email sent successfully", "msg_123")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeBody(t, rec)
	assert.Equal(t, "Email sent successfully", body["message"])
	assert.Equal(t, "msg_123", body["id"])
}

func TestWriteError_FlatErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeValidation, "Missing required fields"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"error": "Missing required fields"}, decodeBody(t, rec))
}

func TestWriteError_DeliveryHidesCause(t *testing.T) {
	cause := pkgerrors.New(pkgerrors.CodeInternal, "resend: api key revoked")
	err := pkgerrors.Wrap(pkgerrors.CodeDelivery, cause, "Failed to send order email")

	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to send order email", body["error"])
	assert.NotContains(t, rec.Body.String(), "api key")
}

func TestWriteError_StatusPerCode(t *testing.T) {
	cases := []struct {
		code   pkgerrors.Code
		status int
	}{
		{pkgerrors.CodeValidation, http.StatusBadRequest},
		{pkgerrors.CodeRateLimit, http.StatusTooManyRequests},
		{pkgerrors.CodeServiceConfig, http.StatusInternalServerError},
		{pkgerrors.CodeDelivery, http.StatusBadRequest},
		{pkgerrors.CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteError(context.Background(), nil, rec, pkgerrors.New(tc.code, "boom"))
		assert.Equal(t, tc.status, rec.Code, string(tc.code))
	}
}

func TestWriteError_InternalNeverEchoesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeInternal, "pool exhausted at 10.0.0.4"))

	assert.Equal(t, map[string]string{"error": "Internal server error"}, decodeBody(t, rec))
}

func TestWriteError_UncodedErrorBecomesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, rec)["error"])
}
