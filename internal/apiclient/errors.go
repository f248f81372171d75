package apiclient

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// Fixed advisory texts shown to the end user in place of raw transport
// errors. The UI renders these verbatim as inline form feedback.
const (
	msgNetworkUnreachable = "Unable to reach the server. Please check your internet connection and try again."
	msgConnectionBlocked  = "The connection was blocked before reaching the server. If you are using the web app, this is usually a cross-origin configuration issue."
	msgGenericFailure     = "Something went wrong. Please try again."
)

// classifyLoginTransportError maps a failed transport exchange to one of a
// small closed set of user-facing messages. Typed errors are inspected
// first; the string heuristics only catch errors that carry no structured
// signal. Only login gets this treatment, the other operations surface the
// error message as-is.
func classifyLoginTransportError(err error) string {
	inner := err
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		inner = urlErr.Err
	}

	var dnsErr *net.DNSError
	switch {
	case errors.As(inner, &dnsErr),
		errors.Is(inner, syscall.ECONNREFUSED),
		errors.Is(inner, syscall.EHOSTUNREACH),
		errors.Is(inner, syscall.ENETUNREACH):
		return msgNetworkUnreachable
	}
	var netErr net.Error
	if errors.As(inner, &netErr) && netErr.Timeout() {
		return msgNetworkUnreachable
	}

	// No structured signal left, fall back to message matching. "Failed to
	// fetch" and "NetworkError" are the texts browser fetch layers produce
	// for unreachable hosts and blocked cross-origin calls respectively.
	msg := inner.Error()
	if msg == "Failed to fetch" {
		return msgNetworkUnreachable
	}
	if strings.Contains(msg, "NetworkError") || strings.Contains(msg, "Network request failed") {
		return msgConnectionBlocked
	}

	return failureMessage(inner)
}

// transportMessage is the classification applied to reset-password and
// verify-otp transport failures: the underlying error's message verbatim,
// with only the URL wrapping stripped.
func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return failureMessage(urlErr.Err)
	}
	return failureMessage(err)
}

// failureMessage surfaces the error's own message, or the generic fallback
// when it has none.
func failureMessage(err error) string {
	if err == nil || err.Error() == "" {
		return msgGenericFailure
	}
	return err.Error()
}
