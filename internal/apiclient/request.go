package apiclient

import (
	"net/http"
	"net/http/cookiejar"
)

type (
	// requestContext is the header-and-option set shared by every request
	// a client issues. It is resolved once at construction; the web/native
	// distinction never branches inside the operations themselves.
	requestContext struct {
		headers http.Header
		jar     http.CookieJar
	}
)

// resolveRequestContext builds the request context for the given origin.
// An empty origin means a native app context: JSON content headers only.
// A non-empty origin means a browser-hosted web context: the Origin header
// is attached and a cookie jar carries credentials across requests. No
// pre-flight connectivity probe is performed and X-Requested-With is not
// sent in either context.
func resolveRequestContext(origin string) requestContext {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")

	if origin == "" {
		return requestContext{headers: headers}
	}

	headers.Set("Origin", origin)
	// cookiejar.New never fails with nil options
	jar, _ := cookiejar.New(nil)
	return requestContext{headers: headers, jar: jar}
}
