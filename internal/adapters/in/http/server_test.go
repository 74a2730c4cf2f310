package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "orderchat/internal/adapters/in/http"
	"orderchat/internal/core/application/interpreter"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubmitter struct {
	result interpreter.Result
	err    error

	gotText   string
	gotUserID string
}

func (s *stubSubmitter) Submit(_ context.Context, text, userID string) (interpreter.Result, error) {
	s.gotText = text
	s.gotUserID = userID
	return s.result, s.err
}

func performRequest(t *testing.T, submitter *stubSubmitter, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	httpin.NewServer(submitter).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSubmitCommand_ForwardsTextAndUser(t *testing.T) {
	submitter := &stubSubmitter{result: interpreter.Result{
		Reply:  "Your order has been created. Tracking ID: ORD-ABC123",
		Action: interpreter.ActionCreatedOrder,
	}}

	rec := performRequest(t, submitter, `{"text": "create an order for bread", "userId": "user-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "create an order for bread", submitter.gotText)
	assert.Equal(t, "user-1", submitter.gotUserID)
	assert.Contains(t, rec.Body.String(), `"created_order"`)
	assert.Contains(t, rec.Body.String(), "ORD-ABC123")
}

func TestSubmitCommand_EmptyText_IsBadRequest(t *testing.T) {
	submitter := &stubSubmitter{}

	rec := performRequest(t, submitter, `{"text": "", "userId": "user-1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, submitter.gotText)
}

func TestSubmitCommand_MalformedBody_IsBadRequest(t *testing.T) {
	submitter := &stubSubmitter{}

	rec := performRequest(t, submitter, `{"text": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitCommand_InterpreterError_IsInternalWithErrorPayload(t *testing.T) {
	submitter := &stubSubmitter{err: errors.New("chat fallback: backend down")}

	rec := performRequest(t, submitter, `{"text": "hello", "userId": "user-1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.Contains(t, rec.Body.String(), "backend down")
}

func TestSubmitCommand_ClarificationResult_IsOK(t *testing.T) {
	submitter := &stubSubmitter{result: interpreter.Result{
		Reply:  "Which order would you like to cancel? Please provide the order ID.",
		Action: interpreter.ActionAskForOrderID,
	}}

	rec := performRequest(t, submitter, `{"text": "cancel order", "userId": "user-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ask_for_order_id"`)
}

func TestHealth_ReturnsOK(t *testing.T) {
	e := echo.New()
	httpin.NewServer(&stubSubmitter{}).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
