package store

import (
	"bytes"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/epeers/portview/internal/api"
	"github.com/gin-gonic/gin"
)

// recordedRequest is what the fake backend saw for one call
type recordedRequest struct {
	Method      string
	Path        string
	Query       map[string]string
	ContentType string
	Body        []byte
}

// fakeBackend is a gin router behind an httptest server that records every request
type fakeBackend struct {
	router *gin.Engine
	server *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fakeBackend{router: gin.New()}
	f.router.Use(func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		query := make(map[string]string)
		for k, v := range c.Request.URL.Query() {
			query[k] = v[0]
		}

		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method:      c.Request.Method,
			Path:        c.Request.URL.Path,
			Query:       query,
			ContentType: c.GetHeader("Content-Type"),
			Body:        body,
		})
		f.mu.Unlock()
		c.Next()
	})

	f.server = httptest.NewServer(f.router)
	t.Cleanup(f.server.Close)
	return f
}

// newStore returns a store talking to the fake backend
func (f *fakeBackend) newStore(opts ...Option) *Store {
	client := api.NewClientWithHTTPClient(f.server.URL, f.server.Client())
	return New(client, opts...)
}

func (f *fakeBackend) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// fixedClock returns a clock frozen at the given instant
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
