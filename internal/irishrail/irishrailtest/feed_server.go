// Package irishrailtest provides a fake realtime feed for tests.
package irishrailtest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// GetFixturePath returns the absolute path to a fixture file in the "testdata" directory relative to the project's root.
func GetFixturePath(t *testing.T, fixturePath string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("..", "..", "testdata", fixturePath))
	if err != nil {
		t.Fatalf("Failed to get absolute path to testdata/%s: %v", fixturePath, err)
	}

	return absPath
}

type cannedResponse struct {
	status int
	body   []byte
}

// FeedServer answers feed operations ("getAllStationsXML_WithStationType",
// ...) with canned bodies and records every request it receives. Unknown
// operations get a 404.
type FeedServer struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]cannedResponse
	requests  []url.URL
}

// NewFeedServer starts a server that is closed when the test finishes.
func NewFeedServer(t *testing.T) *FeedServer {
	t.Helper()

	s := &FeedServer{responses: make(map[string]cannedResponse)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// ServeFixture answers operation with the contents of testdata/fixture.
func (s *FeedServer) ServeFixture(t *testing.T, operation, fixture string) {
	t.Helper()

	body, err := os.ReadFile(GetFixturePath(t, fixture))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", fixture, err)
	}
	s.ServeBody(operation, http.StatusOK, string(body))
}

// ServeBody answers operation with status and body.
func (s *FeedServer) ServeBody(operation string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[operation] = cannedResponse{status: status, body: []byte(body)}
}

// Requests returns the URLs requested so far, in order.
func (s *FeedServer) Requests() []url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.URL(nil), s.requests...)
}

// LastQuery returns the query of the most recent request, or nil.
func (s *FeedServer) LastQuery() url.Values {
	requests := s.Requests()
	if len(requests) == 0 {
		return nil
	}
	return requests[len(requests)-1].Query()
}

func (s *FeedServer) serve(w http.ResponseWriter, r *http.Request) {
	operation := strings.TrimPrefix(r.URL.Path, "/")

	s.mu.Lock()
	s.requests = append(s.requests, *r.URL)
	resp, ok := s.responses[operation]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}
