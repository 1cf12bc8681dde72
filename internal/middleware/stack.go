package middleware

import "net/http"

// Stack composes middlewares into a single wrapper. The first middleware is
// the outermost:
//
//	stack := Stack(loggingMw, rateLimitMw)
//	mux.Handle("POST /api/analyses", stack(analysisHandler))
func Stack(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
