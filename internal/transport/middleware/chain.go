// Package middleware holds the HTTP middleware stack wrapped around the API
// router: request ids, panic recovery, request logging, CORS, curator
// identity, and rate limiting.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into one. They apply in the order
// given: Chain(mw1, mw2)(handler) results in mw1(mw2(handler)), so mw1 sees
// the request first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		wrapped := final
		for i := len(mws) - 1; i >= 0; i-- {
			wrapped = mws[i](wrapped)
		}
		return wrapped
	}
}
