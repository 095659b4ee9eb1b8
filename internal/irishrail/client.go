// Package irishrail extracts stations, timetables, trains and train movements
// from the Irish Rail realtime XML feed.
package irishrail

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strings"

	"github.com/Briscoooe/irish-rail-rest-api/internal/xmlfeed"
)

// Client runs the resource extractors against one feed. Each call is a
// single stateless fetch, extract, post-process pass; a Client is safe for
// concurrent use.
type Client struct {
	baseURL string
	fetcher Fetcher
}

func NewClient(config Config, fetcher Fetcher) *Client {
	if fetcher == nil {
		fetcher = NewHTTPFetcher(config)
	}
	return &Client{
		baseURL: strings.TrimRight(config.baseURL(), "/"),
		fetcher: fetcher,
	}
}

func (c *Client) endpointURL(operation string, params url.Values) string {
	return c.baseURL + "/" + operation + "?" + params.Encode()
}

// records fetches one feed document and extracts every record element with table.
func (c *Client) records(ctx context.Context, operation string, params url.Values, table xmlfeed.Table) ([]xmlfeed.Record, error) {
	endpoint := c.endpointURL(operation, params)

	raw, err := c.fetcher.Fetch(ctx, endpoint)
	if err != nil {
		var te *TransportError
		if !errors.As(err, &te) {
			err = &TransportError{URL: endpoint, Err: err}
		}
		return nil, err
	}

	root, err := xmlfeed.ParseDocument(raw)
	if err != nil {
		return nil, err
	}
	return Namespace.ExtractAll(root, table), nil
}

// decodeAll converts extracted records into typed values. The first coercion
// failure fails the whole call.
func decodeAll[T any](records []xmlfeed.Record, decode func(*xmlfeed.RecordDecoder) T) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, rec := range records {
		dec := xmlfeed.NewRecordDecoder(rec, i)
		v := decode(dec)
		if err := dec.Err(); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// sortByName orders records by name using a stable, case-sensitive byte
// comparison. Records without a name sort first.
func sortByName[T any](list []T, name func(T) *string) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := name(list[i]), name(list[j])
		if a == nil || b == nil {
			return a == nil && b != nil
		}
		return *a < *b
	})
}
