package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	loginOut *LoginOut
	loginErr error

	resetOut *MessageOut
	resetErr error

	verifyOut *MessageOut
	verifyErr error
}

func (s *stubService) Login(context.Context, LoginIn) (*LoginOut, error) {
	return s.loginOut, s.loginErr
}

func (s *stubService) RequestReset(context.Context, ResetPasswordIn) (*MessageOut, error) {
	return s.resetOut, s.resetErr
}

func (s *stubService) VerifyOTP(context.Context, VerifyOTPIn) (*MessageOut, error) {
	return s.verifyOut, s.verifyErr
}

func doRequest(t *testing.T, svc servicer, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	NewRouter(svc).ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var out MessageOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.Message
}

func TestHandleLogin(t *testing.T) {
	t.Run("success returns token and user", func(t *testing.T) {
		svc := &stubService{loginOut: &LoginOut{
			Token: "t1",
			User:  UserOut{ID: "1", Name: "A", Email: "a@b.com", Role: "staff", BranchID: "5"},
		}}

		rec := doRequest(t, svc, "/login", `{"email":"a@b.com","password":"secret"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var out LoginOut
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, *svc.loginOut, out)
	})

	t.Run("invalid credentials answer 401 with a message", func(t *testing.T) {
		svc := &stubService{loginErr: ErrInvalidCredentials}

		rec := doRequest(t, svc, "/login", `{"email":"a@b.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeMessage(t, rec))
	})

	t.Run("malformed email answers 400", func(t *testing.T) {
		rec := doRequest(t, &stubService{}, "/login", `{"email":"not-an-email","password":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		rec := doRequest(t, &stubService{}, "/login", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeMessage(t, rec))
	})
}

func TestHandleResetPassword(t *testing.T) {
	t.Run("always answers 200 with a message", func(t *testing.T) {
		svc := &stubService{resetOut: &MessageOut{Message: resetRequestedMsg}}

		rec := doRequest(t, svc, "/reset-password", `{"email":"a@b.com"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, resetRequestedMsg, decodeMessage(t, rec))
	})

	t.Run("service failure answers 500 with a message", func(t *testing.T) {
		svc := &stubService{resetErr: assert.AnError}

		rec := doRequest(t, svc, "/reset-password", `{"email":"a@b.com"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decodeMessage(t, rec))
	})
}

func TestHandleVerifyOTP(t *testing.T) {
	t.Run("valid code answers 200", func(t *testing.T) {
		svc := &stubService{verifyOut: &MessageOut{Message: "Code verified"}}

		rec := doRequest(t, svc, "/verify-otp", `{"email":"a@b.com","otp":"123456"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Code verified", decodeMessage(t, rec))
	})

	t.Run("invalid code answers 400 with a message", func(t *testing.T) {
		svc := &stubService{verifyErr: ErrInvalidCode}

		rec := doRequest(t, svc, "/verify-otp", `{"email":"a@b.com","otp":"123456"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid or expired code", decodeMessage(t, rec))
	})

	t.Run("short otp is rejected before the service", func(t *testing.T) {
		rec := doRequest(t, &stubService{}, "/verify-otp", `{"email":"a@b.com","otp":"123"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
