package ncnews

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
)

func TestWithMiddlewares(t *testing.T) {
	c := qt.New(t)

	handler := func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {}

	c.Run("calls middlewares", func(c *qt.C) {
		s1 := false
		m1 := func(h httprouter.Handle) httprouter.Handle { s1 = true; return h }

		withMiddlewares(func(m middleware) { m(handler) }, m1)
		c.Assert(s1, qt.IsTrue)
	})

	c.Run("passing m1, m2, m3 run them in that order", func(c *qt.C) {
		trace := []int{}
		m1 := func(h httprouter.Handle) httprouter.Handle {
			return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
				trace = append(trace, 1)
				h(w, r, p)
			}
		}
		m2 := func(h httprouter.Handle) httprouter.Handle {
			return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
				trace = append(trace, 2)
				h(w, r, p)
			}
		}
		m3 := func(h httprouter.Handle) httprouter.Handle {
			return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
				trace = append(trace, 3)
				h(w, r, p)
			}
		}

		var h httprouter.Handle
		withMiddlewares(func(m middleware) { h = m(handler) },
			m1,
			m2,
			m3)

		h(httptest.NewRecorder(), &http.Request{}, httprouter.Params{})

		c.Assert(trace, qt.DeepEquals, []int{1, 2, 3})
	})
}

func TestJSONBodyMiddleware(t *testing.T) {
	c := qt.New(t)
	s := NewServer(&ServerConfig{}, zerolog.Nop(), newFakeStore())

	var got map[string]interface{}
	h := s.jsonBodyMiddleware()(func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		got = ctxBody(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	c.Run("decodes a json object", func(c *qt.C) {
		got = nil
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"inc_votes": 1}`))
		h(rec, req, nil)

		c.Assert(rec.Code, qt.Equals, http.StatusOK)
		c.Assert(got, qt.DeepEquals, map[string]interface{}{"inc_votes": float64(1)})
	})

	c.Run("empty body is an empty object", func(c *qt.C) {
		got = nil
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		h(rec, req, nil)

		c.Assert(rec.Code, qt.Equals, http.StatusOK)
		c.Assert(got, qt.DeepEquals, map[string]interface{}{})
	})

	c.Run("malformed body halts the chain", func(c *qt.C) {
		got = nil
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[1, 2`))
		h(rec, req, nil)

		c.Assert(rec.Code, qt.Equals, http.StatusBadRequest)
		c.Assert(got, qt.IsNil)

		var body map[string]string
		c.Assert(json.NewDecoder(rec.Body).Decode(&body), qt.IsNil)
		c.Assert(body["msg"], qt.Equals, "invalid input")
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	c := qt.New(t)
	s := NewServer(&ServerConfig{}, zerolog.Nop(), newFakeStore())

	var got string
	h := s.requestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxRequestID(r.Context())
	}))

	c.Run("generates an id", func(c *qt.C) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))

		c.Assert(got, qt.Not(qt.Equals), "")
		c.Assert(rec.Header().Get(requestIDHeader), qt.Equals, got)
	})

	c.Run("reuses the incoming id", func(c *qt.C) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		req.Header.Set(requestIDHeader, "abc")
		h.ServeHTTP(rec, req)

		c.Assert(got, qt.Equals, "abc")
		c.Assert(rec.Header().Get(requestIDHeader), qt.Equals, "abc")
	})
}

func TestCORSMiddleware(t *testing.T) {
	c := qt.New(t)

	c.Run("simple request", func(c *qt.C) {
		s := newTestServer(c)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		req.Header.Set("Origin", "http://frontend.example")
		s.ServeHTTP(rec, req)

		c.Assert(rec.Code, qt.Equals, http.StatusOK)
		c.Assert(rec.Header().Get("Access-Control-Allow-Origin"), qt.Equals, "*")
	})

	c.Run("preflight", func(c *qt.C) {
		s := newTestServer(c)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/articles/1", nil)
		req.Header.Set("Origin", "http://frontend.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		s.ServeHTTP(rec, req)

		c.Assert(rec.Code, qt.Equals, http.StatusNoContent)
		c.Assert(rec.Header().Get("Access-Control-Allow-Origin"), qt.Equals, "*")
		c.Assert(rec.Header().Get("Access-Control-Allow-Methods"), qt.Equals, http.MethodPatch)
	})
}
