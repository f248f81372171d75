// Package apiclient is the ordering app's client for the authentication
// API. Every operation translates a typed request into a POST against the
// configured base address and folds the outcome into a Result; transport,
// application and decode failures never escape as errors. The client keeps
// no state between calls and callers may issue operations concurrently.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bitebranch/ordering/internal/shared/config"
)

// defaultTimeout bounds every exchange; a hung network call fails the
// operation instead of blocking it indefinitely.
const defaultTimeout = 10 * time.Second

type (
	Client struct {
		baseURL string
		reqCtx  requestContext
		http    *http.Client
		logger  zerolog.Logger
	}

	Option func(*Client)

	loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	resetPasswordRequest struct {
		Email string `json:"email"`
	}

	verifyOTPRequest struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}

	// httpError is an application failure: the server answered with a
	// non-2xx status and this is the derived user-facing message.
	httpError struct {
		status  int
		message string
	}
)

func (e *httpError) Error() string {
	return e.message
}

// WithOrigin marks the client as running in a browser-hosted web context.
// Requests then carry an Origin header and include credentials via a
// cookie jar; native clients omit both.
func WithOrigin(origin string) Option {
	return func(c *Client) {
		c.reqCtx = resolveRequestContext(origin)
	}
}

// WithHTTPClient replaces the underlying HTTP client. The request-context
// cookie jar, when present, is attached to the replacement.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

func NewClient(cfg *config.Config, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		reqCtx:  resolveRequestContext(""),
		logger:  logger.With().Str("component", "apiclient").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}
	if c.reqCtx.jar != nil {
		c.http.Jar = c.reqCtx.jar
	}
	return c
}

// Login exchanges credentials for a token and the user profile. Transport
// failures are classified into a closed set of advisory messages; server
// rejections surface the server's own message.
func (c *Client) Login(ctx context.Context, email, password string) Result[LoginPayload] {
	payload, err := post[LoginPayload](ctx, c, "/login", loginRequest{Email: email, Password: password})
	if err == nil {
		return Success(payload)
	}

	var httpErr *httpError
	if errors.As(err, &httpErr) {
		c.logger.Warn().Int("status", httpErr.status).Str("email", email).Msg("Login rejected")
		return Failure[LoginPayload](httpErr.message)
	}

	c.logger.Error().Err(err).Str("url", c.baseURL+"/login").Msg("Login transport failure")
	return Failure[LoginPayload](classifyLoginTransportError(err))
}

// ResetPassword asks the server to start a password reset for the address.
func (c *Client) ResetPassword(ctx context.Context, email string) Result[MessagePayload] {
	payload, err := post[MessagePayload](ctx, c, "/reset-password", resetPasswordRequest{Email: email})
	if err == nil {
		return Success(payload)
	}

	var httpErr *httpError
	if errors.As(err, &httpErr) {
		c.logger.Warn().Int("status", httpErr.status).Str("email", email).Msg("Reset password rejected")
		return Failure[MessagePayload](httpErr.message)
	}

	c.logger.Error().Err(err).Str("url", c.baseURL+"/reset-password").Msg("Reset password transport failure")
	return Failure[MessagePayload](transportMessage(err))
}

// VerifyOTP submits the one-time code received after a reset request.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) Result[MessagePayload] {
	payload, err := post[MessagePayload](ctx, c, "/verify-otp", verifyOTPRequest{Email: email, OTP: otp})
	if err == nil {
		return Success(payload)
	}

	var httpErr *httpError
	if errors.As(err, &httpErr) {
		c.logger.Warn().Int("status", httpErr.status).Str("email", email).Msg("OTP verification rejected")
		return Failure[MessagePayload](httpErr.message)
	}

	c.logger.Error().Err(err).Str("url", c.baseURL+"/verify-otp").Msg("OTP verification transport failure")
	return Failure[MessagePayload](transportMessage(err))
}

// post issues one JSON POST and hands the raw response to decodeResponse.
// It returns the decoded payload, an *httpError for non-2xx statuses, or
// the transport/decode error as-is.
func post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var zero T

	encoded, err := json.Marshal(body)
	if err != nil {
		return zero, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return zero, err
	}
	for key, values := range c.reqCtx.headers {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return zero, err
	}
	defer res.Body.Close()

	return decodeResponse[T](res)
}

// decodeResponse is the shared response handler. The content type decides
// whether the body is treated as structured JSON or opaque text; non-2xx
// statuses derive their message from the payload's message field when one
// exists and synthesize one from the status code otherwise.
func decodeResponse[T any](res *http.Response) (T, error) {
	var zero T

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return zero, err
	}

	isJSON := strings.Contains(res.Header.Get("Content-Type"), "application/json")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		message, err := deriveErrorMessage(res.StatusCode, body, isJSON)
		if err != nil {
			return zero, err
		}
		return zero, &httpError{status: res.StatusCode, message: message}
	}

	if !isJSON {
		return zero, fmt.Errorf("unexpected content type %q", res.Header.Get("Content-Type"))
	}
	if err := json.Unmarshal(body, &zero); err != nil {
		var empty T
		return empty, err
	}
	return zero, nil
}

// deriveErrorMessage prefers the structured payload's message field; a
// non-JSON or message-less body falls back to the status line. A body that
// declares JSON but does not parse is a decode failure and propagates to
// the operation's transport-failure handling.
func deriveErrorMessage(status int, body []byte, isJSON bool) (string, error) {
	if isJSON {
		var payload MessagePayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return "", err
		}
		if payload.Message != "" {
			return payload.Message, nil
		}
	}
	return fmt.Sprintf("HTTP error! status: %d", status), nil
}
