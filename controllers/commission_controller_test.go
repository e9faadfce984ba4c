package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestWithdrawalRequiresToken(t *testing.T) {
	controller := NewCommissionController(nil, nil)
	c, rec := newTestContext(t, http.MethodPost, "/api/withdrawals", `{"amount":25000,"method":"cash"}`)

	require.NoError(t, controller.RequestWithdrawal(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProcessWithdrawalRejectsInvalidID(t *testing.T) {
	controller := NewCommissionController(nil, nil)
	c, rec := newTestContext(t, http.MethodPut, "/api/withdrawals/not-an-id/process", `{"approve":true}`)
	c.SetParamNames("id")
	c.SetParamValues("not-an-id")

	require.NoError(t, controller.ProcessWithdrawal(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessWithdrawalRequiresRejectionReason(t *testing.T) {
	controller := NewCommissionController(nil, nil)
	c, rec := newTestContext(t, http.MethodPut, "/api/withdrawals/507f1f77bcf86cd799439011/process", `{"approve":false}`)
	c.SetParamNames("id")
	c.SetParamValues("507f1f77bcf86cd799439011")

	require.NoError(t, controller.ProcessWithdrawal(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
