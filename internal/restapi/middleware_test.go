package restapi

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Briscoooe/irish-rail-rest-api/internal/logging"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimitMiddleware_BlocksRequestsOverLimit(t *testing.T) {
	limitedHandler := NewRateLimitMiddleware(3, time.Second).Handler(okHandler)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/stations?key=test-api-key", nil)
		w := httptest.NewRecorder()

		limitedHandler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "Request %d should be allowed", i+1)
	}

	req := httptest.NewRequest("GET", "/stations?key=test-api-key", nil)
	w := httptest.NewRecorder()
	limitedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code, "Request over limit should be blocked")
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	assert.Contains(t, w.Body.String(), `"code":429`)
}

func TestRateLimitMiddleware_PerClientLimiting(t *testing.T) {
	limitedHandler := NewRateLimitMiddleware(1, time.Second).Handler(okHandler)

	send := func(target, remoteAddr string) int {
		req := httptest.NewRequest("GET", target, nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		limitedHandler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("/stations?key=alpha", "10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, send("/stations?key=beta", "10.0.0.1:5000"), "keys are limited separately")
	assert.Equal(t, http.StatusTooManyRequests, send("/stations?key=alpha", "10.0.0.2:5000"), "a key is limited across addresses")

	assert.Equal(t, http.StatusOK, send("/stations", "10.0.0.3:5000"))
	assert.Equal(t, http.StatusOK, send("/stations", "10.0.0.4:5000"), "anonymous clients are limited by address")
	assert.Equal(t, http.StatusTooManyRequests, send("/stations", "10.0.0.3:6000"), "the port does not matter")
}

func TestRateLimitMiddleware_DisabledForNonPositiveRate(t *testing.T) {
	limitedHandler := NewRateLimitMiddleware(0, time.Second).Handler(okHandler)

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		limitedHandler.ServeHTTP(w, httptest.NewRequest("GET", "/stations", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_ConcurrentClientsShareOneLimiter(t *testing.T) {
	middleware := NewRateLimitMiddleware(10, time.Hour)
	limitedHandler := middleware.Handler(okHandler)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			limitedHandler.ServeHTTP(w, httptest.NewRequest("GET", "/stations?key=shared", nil))
			if w.Code == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, allowed)
	assert.Equal(t, 1, middleware.limiters.ItemCount())
}

func TestSecurityHeaders(t *testing.T) {
	handler := securityHeaders(okHandler)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/stations", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none';", w.Header().Get("Content-Security-Policy"))
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("any origin when none configured", func(t *testing.T) {
		handler := NewCORSMiddleware(nil)(okHandler)

		req := httptest.NewRequest("GET", "/stations", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("only configured origins", func(t *testing.T) {
		handler := NewCORSMiddleware([]string{"https://trains.example"})(okHandler)

		req := httptest.NewRequest("GET", "/stations", nil)
		req.Header.Set("Origin", "https://trains.example")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, "https://trains.example", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest("GET", "/stations", nil)
		req.Header.Set("Origin", "https://elsewhere.example")
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("answers preflight requests", func(t *testing.T) {
		api, feed := createTestApi(t)

		req := httptest.NewRequest(http.MethodOptions, "/stations", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		api.Handler().ServeHTTP(w, req)

		assert.Less(t, w.Code, 300)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
		assert.Empty(t, feed.Requests())
	})
}

func TestRequestLoggingMiddleware(t *testing.T) {
	t.Run("logs HTTP request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("test response"))
		})

		req := httptest.NewRequest("GET", "/stations?type=D", nil)
		req.Header.Set("User-Agent", "test-client/1.0")
		recorder := httptest.NewRecorder()
		NewRequestLoggingMiddleware(logger)(testHandler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusTeapot, recorder.Code)
		assert.Equal(t, "test response", recorder.Body.String())

		output := buf.String()
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/stations"`)
		assert.Contains(t, output, `"status":418`)
		assert.Contains(t, output, `"user_agent":"test-client/1.0"`)
		assert.Contains(t, output, `"component":"http_server"`)
		assert.Contains(t, output, `"request_id":"`+recorder.Header().Get(requestIDHeader)+`"`)
	})

	t.Run("assigns a request id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		NewRequestLoggingMiddleware(nil)(okHandler).ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

		_, err := uuid.Parse(recorder.Header().Get(requestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("keeps a caller supplied request id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(requestIDHeader, id)
		recorder := httptest.NewRecorder()
		NewRequestLoggingMiddleware(nil)(okHandler).ServeHTTP(recorder, req)

		assert.Equal(t, id, recorder.Header().Get(requestIDHeader))
	})

	t.Run("replaces a malformed request id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(requestIDHeader, "not a uuid\n")
		recorder := httptest.NewRecorder()
		NewRequestLoggingMiddleware(nil)(okHandler).ServeHTTP(recorder, req)

		assert.NotEqual(t, "not a uuid\n", recorder.Header().Get(requestIDHeader))
	})

	t.Run("handlers log through the request logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("inside handler")
		})
		recorder := httptest.NewRecorder()
		NewRequestLoggingMiddleware(logger)(testHandler).ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], `"msg":"inside handler"`)
		assert.Contains(t, lines[0], `"request_id":`)
	})
}

func TestCompressionMiddleware(t *testing.T) {
	largeResponse := strings.Repeat(`{"name": "Dublin Connolly"}`, 1000)
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(largeResponse))
	})

	t.Run("compresses response when gzip accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stations", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		recorder := httptest.NewRecorder()

		CompressionMiddleware(testHandler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "gzip", recorder.Header().Get("Content-Encoding"))
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		reader, err := gzip.NewReader(bytes.NewReader(recorder.Body.Bytes()))
		require.NoError(t, err)
		defer func() { _ = reader.Close() }()

		decompressed, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, largeResponse, string(decompressed))
		assert.Less(t, recorder.Body.Len(), len(largeResponse))
	})

	t.Run("does not compress when gzip not accepted", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		CompressionMiddleware(testHandler).ServeHTTP(recorder, httptest.NewRequest("GET", "/stations", nil))

		assert.Empty(t, recorder.Header().Get("Content-Encoding"))
		assert.Equal(t, largeResponse, recorder.Body.String())
	})

	t.Run("default config", func(t *testing.T) {
		config := DefaultCompressionConfig()
		assert.Equal(t, 1024, config.MinSize)
		assert.Equal(t, 6, config.Level)
	})

	t.Run("station list is compressed end to end", func(t *testing.T) {
		api, feed := createTestApi(t)
		feed.ServeFixture(t, stationsOperation, "stations.xml")

		server := httptest.NewServer(api.Handler())
		defer server.Close()

		client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
		req, err := http.NewRequest("GET", fmt.Sprintf("%s/stations", server.URL), nil)
		require.NoError(t, err)
		req.Header.Set("Accept-Encoding", "gzip")

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := io.Reader(resp.Body)
		if resp.Header.Get("Content-Encoding") == "gzip" {
			reader, err := gzip.NewReader(resp.Body)
			require.NoError(t, err)
			defer func() { _ = reader.Close() }()
			body = reader
		}
		decoded, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Contains(t, string(decoded), `"code":200`)
	})
}
