package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitebranch/ordering/internal/shared/config"
)

func newTestClient(serverURL string, opts ...Option) *Client {
	cfg := &config.Config{APIBaseURL: serverURL}
	return NewClient(cfg, zerolog.Nop(), opts...)
}

func TestLogin(t *testing.T) {
	t.Run("successful login round-trips the payload", func(t *testing.T) {
		var gotBody loginRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/login", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token":"t1","user":{"id":"1","name":"A","email":"a@b.com","role":"staff","branch_id":"5"}}`))
		}))
		defer server.Close()

		res := newTestClient(server.URL).Login(context.Background(), "a@b.com", "secret")

		require.True(t, res.OK())
		assert.Empty(t, res.Message())
		assert.Equal(t, loginRequest{Email: "a@b.com", Password: "secret"}, gotBody)
		assert.Equal(t, LoginPayload{
			Token: "t1",
			User:  User{ID: "1", Name: "A", Email: "a@b.com", Role: "staff", BranchID: "5"},
		}, res.Payload())
	})

	t.Run("server rejection surfaces the server message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid credentials"}`))
		}))
		defer server.Close()

		res := newTestClient(server.URL).Login(context.Background(), "a@b.com", "wrong")

		require.False(t, res.OK())
		assert.Equal(t, "Invalid credentials", res.Message())
		assert.Zero(t, res.Payload())
	})

	t.Run("non-JSON error body synthesizes the status message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("<html>gateway exploded</html>"))
		}))
		defer server.Close()

		res := newTestClient(server.URL).Login(context.Background(), "a@b.com", "secret")

		require.False(t, res.OK())
		assert.Equal(t, "HTTP error! status: 500", res.Message())
	})

	t.Run("JSON error body without a message synthesizes the status message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"code":12}`))
		}))
		defer server.Close()

		res := newTestClient(server.URL).Login(context.Background(), "a@b.com", "secret")

		require.False(t, res.OK())
		assert.Equal(t, "HTTP error! status: 403", res.Message())
	})

	t.Run("unreachable server yields the network advisory", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		res := newTestClient(server.URL).Login(context.Background(), "a@b.com", "secret")

		require.False(t, res.OK())
		assert.Equal(t, msgNetworkUnreachable, res.Message())
	})
}

func TestResetPassword(t *testing.T) {
	t.Run("success carries the server message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/reset-password", r.URL.Path)
			var body resetPasswordRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a@b.com", body.Email)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"If the account exists, a reset code was sent"}`))
		}))
		defer server.Close()

		res := newTestClient(server.URL).ResetPassword(context.Background(), "a@b.com")

		require.True(t, res.OK())
		assert.Equal(t, "If the account exists, a reset code was sent", res.Payload().Message)
	})

	t.Run("transport failure passes the error message through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		res := newTestClient(server.URL).ResetPassword(context.Background(), "a@b.com")

		require.False(t, res.OK())
		// no advisory classification for reset-password, the raw dial
		// error is surfaced
		assert.NotEqual(t, msgNetworkUnreachable, res.Message())
		assert.Contains(t, res.Message(), "connection refused")
	})
}

func TestVerifyOTP(t *testing.T) {
	t.Run("success carries the server message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/verify-otp", r.URL.Path)
			var body verifyOTPRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, verifyOTPRequest{Email: "a@b.com", OTP: "123456"}, body)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"Code verified"}`))
		}))
		defer server.Close()

		res := newTestClient(server.URL).VerifyOTP(context.Background(), "a@b.com", "123456")

		require.True(t, res.OK())
		assert.Equal(t, "Code verified", res.Payload().Message)
	})

	t.Run("rejection with a non-JSON body synthesizes the status message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("bad request"))
		}))
		defer server.Close()

		res := newTestClient(server.URL).VerifyOTP(context.Background(), "a@b.com", "000000")

		require.False(t, res.OK())
		assert.Equal(t, "HTTP error! status: 400", res.Message())
	})
}

func TestRequestContext(t *testing.T) {
	t.Run("web context sends the Origin header", func(t *testing.T) {
		var gotOrigin string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotOrigin = r.Header.Get("Origin")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"ok"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, WithOrigin("https://order.bitebranch.app"))
		res := client.ResetPassword(context.Background(), "a@b.com")

		require.True(t, res.OK())
		assert.Equal(t, "https://order.bitebranch.app", gotOrigin)
		assert.NotNil(t, client.http.Jar)
	})

	t.Run("native context omits Origin and credentials", func(t *testing.T) {
		originSent := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, originSent = r.Header["Origin"]
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"ok"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		res := client.ResetPassword(context.Background(), "a@b.com")

		require.True(t, res.OK())
		assert.False(t, originSent)
		assert.Nil(t, client.http.Jar)
	})
}

func TestResult(t *testing.T) {
	t.Run("exactly one variant populated", func(t *testing.T) {
		ok := Success(MessagePayload{Message: "done"})
		assert.True(t, ok.OK())
		assert.Empty(t, ok.Message())
		assert.Equal(t, "done", ok.Payload().Message)

		bad := Failure[MessagePayload]("nope")
		assert.False(t, bad.OK())
		assert.Equal(t, "nope", bad.Message())
		assert.Zero(t, bad.Payload())
	})
}
