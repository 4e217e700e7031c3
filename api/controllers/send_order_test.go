package controllers

import (
	"net/http"
	"testing"

	pkgerrors "github.com/benjaminbelloeil/portfolio-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validOrderBody = `{
	"firstName": "Jane",
	"lastName": "Doe",
	"email": "jane@example.com",
	"platform": "drive",
	"cart": [{"id": 3, "title": "JavaScript Dynamic Website", "price": "$100", "quantity": 1}],
	"total": "100.00"
}`

func TestSendOrder_Success(t *testing.T) {
	svc := &fakeSubmissionService{id: "msg_ord"}
	rec := postJSON(SendOrder(svc, nil), "/api/send-order", validOrderBody)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, "Order email sent successfully", body["message"])
	assert.Equal(t, "msg_ord", body["id"])

	require.Len(t, svc.orderReqs, 1)
	assert.Equal(t, "drive", svc.orderReqs[0].Platform)
	require.Len(t, svc.orderReqs[0].Cart, 1)
	assert.Equal(t, "$100", svc.orderReqs[0].Cart[0].Price)
}

func TestSendOrder_EmptyCartRejected(t *testing.T) {
	svc := &fakeSubmissionService{id: "msg_ord"}
	rec := postJSON(SendOrder(svc, nil), "/api/send-order",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","cart":[],"total":"0.00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decodeJSON(t, rec)["error"])
	assert.Empty(t, svc.orderReqs)
}

func TestSendOrder_DeliveryFailureIs400WithGenericMessage(t *testing.T) {
	svc := &fakeSubmissionService{err: pkgerrors.Wrap(pkgerrors.CodeDelivery, assert.AnError, "Failed to send order email")}
	rec := postJSON(SendOrder(svc, nil), "/api/send-order", validOrderBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Failed to send order email", decodeJSON(t, rec)["error"])
}
