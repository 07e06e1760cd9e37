package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"

	ncnews "github.com/DTCoding01/be-nc-news"
	"github.com/DTCoding01/be-nc-news/seed"
	"github.com/DTCoding01/be-nc-news/sqlstore"
	qt "github.com/frankban/quicktest"
	"github.com/rs/zerolog"
)

const (
	sqliteDSN      = "file::memory:?_pragma=foreign_keys(1)"
	testServerHost = "localhost:9091"
)

// testingLogWriter is an output target for zerolog which will print on the testing logger.
type testingLogWriter struct {
	c *qt.C
}

// Write outputs on the passed bytes on the test logger
func (l *testingLogWriter) Write(p []byte) (n int, err error) {
	str := string(p[0 : len(p)-1]) // drop the final \n
	l.c.Log(str)
	return len(p), nil
}

// A struct to hold the server and its components.
// Provides a few helpers for convenience.
type testContext struct {
	c          *qt.C
	server     *ncnews.Server
	testServer *httptest.Server
	store      *sqlstore.Store
}

// newTestContext creates a server instance backed by a seeded database. The
// database is an in-memory sqlite one, unless NCNEWS_TEST_PG holds a postgres DSN.
func newTestContext(c *qt.C) *testContext {
	tc := testContext{c: c}

	w := testingLogWriter{c}
	output := zerolog.ConsoleWriter{Out: &w, NoColor: true}
	logger := zerolog.New(output)

	if dsn := os.Getenv("NCNEWS_TEST_PG"); dsn != "" {
		tc.store = sqlstore.New(sqlstore.DriverPostgres, dsn)
	} else {
		tc.store = sqlstore.New(sqlstore.DriverSQLite, sqliteDSN)
	}

	tc.server = ncnews.NewServer(
		&ncnews.ServerConfig{Addr: testServerHost},
		logger,
		tc.store,
	)
	tc.testServer = httptest.NewServer(tc.server)

	return &tc
}

// url returns an url to the test server based on the given path
func (tc *testContext) url(path string) string {
	return tc.testServer.URL + path
}

// prepareServer boots up the server, seeds the database and sets up its teardown for the current test
func (tc *testContext) prepareServer() {
	tc.c.Assert(tc.server.Prepare(), qt.IsNil, qt.Commentf("couldn't prepare the server"))

	ctx := context.Background()
	tc.c.Assert(tc.store.Reset(ctx), qt.IsNil)
	tc.c.Assert(seed.Run(ctx, tc.store), qt.IsNil)

	tc.c.Cleanup(func() {
		// kill the server
		tc.testServer.Close()
		tc.store.Close()
	})
}

// do sends a request with an optional JSON body and decodes the JSON response
// into out, unless out is nil.
func (tc *testContext) do(method string, path string, body interface{}, out interface{}) int {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		tc.c.Assert(err, qt.IsNil)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, tc.url(path), r)
	tc.c.Assert(err, qt.IsNil)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	tc.c.Assert(err, qt.IsNil)
	defer resp.Body.Close()

	if out != nil {
		tc.c.Assert(json.NewDecoder(resp.Body).Decode(out), qt.IsNil, qt.Commentf("%s %s", method, path))
	}

	return resp.StatusCode
}

type msgResponse struct {
	Msg string `json:"msg"`
}

type articlesResponse struct {
	Articles   []*ncnews.ArticleSummary `json:"articles"`
	TotalCount int64                    `json:"total_count"`
}

type articleResponse struct {
	Article *ncnews.Article `json:"article"`
}

type commentsResponse struct {
	Comments []*ncnews.Comment `json:"comments"`
}

type commentResponse struct {
	Comment *ncnews.Comment `json:"comment"`
}
