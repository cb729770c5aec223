package explorer

import (
	"context"
	"errors"
	"time"

	"github.com/dbsmedya/autoprobe/internal/apiclient"
	"github.com/dbsmedya/autoprobe/internal/types"
)

type call struct {
	endpoint string
	query    string
}

// fakeService answers queries from a handler and records every call.
type fakeService struct {
	handler func(endpoint, query string) apiclient.Result
	calls   []call
}

func (f *fakeService) Query(_ context.Context, endpoint, query string) apiclient.Result {
	f.calls = append(f.calls, call{endpoint: endpoint, query: query})
	return f.handler(endpoint, query)
}

func (f *fakeService) queriesFor(endpoint string) []string {
	var out []string
	for _, c := range f.calls {
		if c.endpoint == endpoint {
			out = append(out, c.query)
		}
	}
	return out
}

func ok(names ...string) apiclient.Result {
	if names == nil {
		names = []string{}
	}
	return apiclient.Result{Kind: apiclient.KindOK, Names: names, StatusCode: 200, Responded: true}
}

func notFound() apiclient.Result {
	return apiclient.Result{Kind: apiclient.KindNotFound, StatusCode: 404, Responded: true}
}

func rateLimited() apiclient.Result {
	return apiclient.Result{Kind: apiclient.KindRateLimited, StatusCode: 429, Responded: true}
}

func serverError() apiclient.Result {
	return apiclient.Result{Kind: apiclient.KindFailure, StatusCode: 500, Responded: true, Err: apiclient.ErrHTTPStatus}
}

func transportError() apiclient.Result {
	return apiclient.Result{Kind: apiclient.KindFailure, Err: errors.New("connection refused")}
}

// memStore keeps every save in memory.
type memStore struct {
	saves   int
	summary types.RunSummary
	names   *types.VersionNames
	err     error
}

func (m *memStore) Save(summary types.RunSummary, names *types.VersionNames) error {
	m.saves++
	m.summary = summary
	m.names = names
	return m.err
}

// recordingSleeper records requested pauses without waiting.
type recordingSleeper struct {
	pauses []time.Duration
}

func (s *recordingSleeper) sleep(ctx context.Context, d time.Duration) error {
	s.pauses = append(s.pauses, d)
	return ctx.Err()
}

func (s *recordingSleeper) count(d time.Duration) int {
	n := 0
	for _, p := range s.pauses {
		if p == d {
			n++
		}
	}
	return n
}

const (
	testDelay     = 500 * time.Millisecond
	testRateLimit = 5 * time.Second
)

func newTestExplorer(svc *fakeService, store *memStore, sl *recordingSleeper) *Explorer {
	return New(svc, store,
		WithMaxAttempts(3),
		WithRequestDelay(testDelay),
		WithRateLimitWait(testRateLimit),
		WithSleeper(sl.sleep),
	)
}

var (
	v1 = types.NewEndpoint("/v1/autocomplete")
	v2 = types.NewEndpoint("/v2/autocomplete")
	v3 = types.NewEndpoint("/v3/autocomplete")
)
