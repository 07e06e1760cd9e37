package ncnews

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// middleware is a convenient type for declaring middlewares.
type middleware func(httprouter.Handle) httprouter.Handle

// httpMiddleware is a convenient type for declaring middlewares wrapping the whole router.
type httpMiddleware func(http.Handler) http.Handler

// contextKey is a type for storing values in each request context.
type contextKey string

// String returns a stringified context key.
func (k contextKey) String() string { return string(k) }

// ctxKeyBody is the context key for storing the decoded JSON body.
var ctxKeyBody = contextKey("body")

// ctxKeyRequestID is the context key for storing the request id.
var ctxKeyRequestID = contextKey("request_id")

const requestIDHeader = "X-Request-ID"

// ctxBody is a helper func to fetch the decoded request body from the context.
// It never returns nil.
func ctxBody(ctx context.Context) map[string]interface{} {
	v, ok := ctx.Value(ctxKeyBody).(map[string]interface{})
	if !ok || v == nil {
		return map[string]interface{}{}
	}
	return v
}

// ctxRequestID is a helper func to fetch the request id from the context.
func ctxRequestID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

// withMiddlewares is a helper function to declare routes with middlewares more easily.
// The caller declares its routes in the body on the f function, calling f's argument on its
// httprouter.Handle to wrap them.
func withMiddlewares(f func(middleware), middlewares ...middleware) {
	wrapper := func(handle httprouter.Handle) httprouter.Handle {
		h := handle
		for i := len(middlewares) - 1; i >= 0; i-- {
			m := middlewares[i]
			h = m(h)
		}
		return h
	}

	f(wrapper)
}

// withHTTPMiddlewares wraps h so that middlewares run in the given order.
func withHTTPMiddlewares(h http.Handler, middlewares ...httpMiddleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// jsonBodyMiddleware decodes the request body as a JSON object and stores it in
// the request context. A body that is not a JSON object halts the chain with an
// invalid input error.
func (s *Server) jsonBodyMiddleware() middleware {
	return func(next httprouter.Handle) httprouter.Handle {
		return httprouter.Handle(func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
			body, err := readBody(r)
			if err != nil {
				s.respondError(w, r, InvalidInput(err))
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyBody, body)
			next(w, r.WithContext(ctx), p)
		})
	}
}

// requestIDMiddleware reuses the X-Request-ID header of the request, or
// generates one, and echoes it in the response.
func (s *Server) requestIDMiddleware() httpMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			w.Header().Set(requestIDHeader, id)
			ctx := context.WithValue(r.Context(), ctxKeyRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logMiddleware logs every request once it has been served.
func (s *Server) logMiddleware() httpMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			s.Logger.Info().
				Str("request_id", ctxRequestID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

// corsMiddleware lets browsers on any origin call the API, answering
// preflight requests before they reach the router.
func (s *Server) corsMiddleware() httpMiddleware {
	return cors.AllowAll().Handler
}
