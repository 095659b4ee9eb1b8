package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Briscoooe/irish-rail-rest-api/internal/app"
	"github.com/Briscoooe/irish-rail-rest-api/internal/appconf"
	"github.com/Briscoooe/irish-rail-rest-api/internal/irishrail"
	"github.com/Briscoooe/irish-rail-rest-api/internal/irishrail/irishrailtest"
	"github.com/Briscoooe/irish-rail-rest-api/internal/logging"
)

// testResponse is the JSON envelope as seen by an API client.
type testResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
	Data        struct {
		List []map[string]interface{} `json:"list"`
	} `json:"data"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// createTestApi creates a RestAPI backed by a fake feed server.
func createTestApi(t *testing.T) (*RestAPI, *irishrailtest.FeedServer) {
	t.Helper()

	feed := irishrailtest.NewFeedServer(t)
	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			RateLimit: 1000,
		},
		Logger: logging.NewStructuredLogger(io.Discard, slog.LevelError),
		Feed:   irishrail.NewClient(irishrail.Config{BaseURL: feed.URL, Timeout: 2 * time.Second}, nil),
	}

	return NewRestAPI(application), feed
}

// serveApiAndRetrieveEndpoint runs the full handler chain in a test server,
// requests endpoint and decodes the JSON body.
func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, testResponse) {
	t.Helper()

	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response testResponse
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

func serveAndRetrieveEndpoint(t *testing.T, fixtures map[string]string, endpoint string) (*irishrailtest.FeedServer, *http.Response, testResponse) {
	t.Helper()

	api, feed := createTestApi(t)
	for operation, fixture := range fixtures {
		feed.ServeFixture(t, operation, fixture)
	}
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return feed, resp, model
}
