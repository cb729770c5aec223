package explorer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/autoprobe/internal/apiclient"
	"github.com/dbsmedya/autoprobe/internal/logger"
	"github.com/dbsmedya/autoprobe/internal/types"
)

var (
	// ErrEndpointNotFound marks an endpoint that answered 404.
	ErrEndpointNotFound = errors.New("endpoint does not exist")
	// ErrUnhandledFault wraps a panic recovered during Run.
	ErrUnhandledFault = errors.New("unhandled fault during exploration")
)

// Querier performs a single autocomplete request.
type Querier interface {
	Query(ctx context.Context, endpoint, query string) apiclient.Result
}

// ResultStore persists the summary and the per-version names.
type ResultStore interface {
	Save(summary types.RunSummary, names *types.VersionNames) error
}

type endpointState struct {
	endpoint types.Endpoint
	requests int
	names    types.NameSet
}

// Explorer owns the HTTP client, the per-endpoint counters and the
// accumulated name sets for one run.
type Explorer struct {
	client Querier
	store  ResultStore
	log    *logger.Logger

	maxAttempts   int
	rateLimitWait time.Duration
	requestDelay  time.Duration
	sleep         func(ctx context.Context, d time.Duration) error

	// keyed by endpoint path, in exploration order
	state *orderedmap.OrderedMap[string, *endpointState]
}

// New creates an Explorer for the fixed endpoint set.
func New(client Querier, store ResultStore, opts ...Option) *Explorer {
	e := &Explorer{
		client:        client,
		store:         store,
		log:           logger.NewNop(),
		maxAttempts:   3,
		rateLimitWait: 5 * time.Second,
		requestDelay:  500 * time.Millisecond,
		sleep:         sleepContext,
		state:         orderedmap.NewOrderedMap[string, *endpointState](),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, ep := range types.Endpoints() {
		e.state.Set(ep.Path, &endpointState{endpoint: ep, names: types.NewNameSet()})
	}
	return e
}

// Endpoints returns the endpoints in exploration order.
func (e *Explorer) Endpoints() []types.Endpoint {
	out := make([]types.Endpoint, 0, e.state.Len())
	for el := e.state.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.endpoint)
	}
	return out
}

// Requests returns the number of responses received from an endpoint so far.
func (e *Explorer) Requests(ep types.Endpoint) int {
	return e.stateFor(ep).requests
}

// Names returns the names stored for an endpoint.
func (e *Explorer) Names(ep types.Endpoint) types.NameSet {
	return e.stateFor(ep).names
}

func (e *Explorer) stateFor(ep types.Endpoint) *endpointState {
	st, ok := e.state.Get(ep.Path)
	if !ok {
		st = &endpointState{endpoint: ep, names: types.NewNameSet()}
		e.state.Set(ep.Path, st)
	}
	return st
}

// MakeRequest queries one prefix, retrying only on rate limiting. It returns
// ErrEndpointNotFound on 404, a context error if interrupted, and an empty
// result for every other failure.
func (e *Explorer) MakeRequest(ctx context.Context, ep types.Endpoint, query string) ([]string, error) {
	st := e.stateFor(ep)
	log := e.log.WithEndpoint(ep.Path).WithQuery(query)

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		res := e.client.Query(ctx, ep.Path, query)
		if res.Responded {
			st.requests++
		}

		alog := log.WithFields(map[string]interface{}{
			"attempt": attempt,
			"status":  res.StatusCode,
		})

		switch res.Kind {
		case apiclient.KindOK:
			return res.Names, nil

		case apiclient.KindNotFound:
			alog.Warnw("Endpoint not found")
			return nil, ErrEndpointNotFound

		case apiclient.KindRateLimited:
			alog.Warnw("Rate limit hit, waiting before retry", "wait", e.rateLimitWait)
			if err := e.sleep(ctx, e.rateLimitWait); err != nil {
				return nil, err
			}

		case apiclient.KindFailure:
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			alog.Warnw("Request failed", "error", res.Err)
			return nil, nil

		default:
			alog.Errorw("Unknown result kind", "kind", res.Kind)
			return nil, nil
		}
	}

	log.Warnw("Failed to fetch data after retries", "attempts", e.maxAttempts)
	return nil, nil
}

// ExploreEndpoint collects every name it can reach on one endpoint. On
// interruption it returns the names gathered so far with the context error.
func (e *Explorer) ExploreEndpoint(ctx context.Context, ep types.Endpoint) (types.NameSet, error) {
	names := types.NewNameSet()
	log := e.log.WithEndpoint(ep.Path)
	log.Infow("Exploring endpoint")

	results, err := e.MakeRequest(ctx, ep, "")
	if err != nil {
		return names, err
	}
	if len(results) > 0 {
		names.Add(results...)
		log.Infow("Empty query returned results", "results", len(results))
		return names, nil
	}

	for _, q := range singleLetterPrefixes() {
		if err := e.probe(ctx, ep, q, names); err != nil {
			return names, err
		}
	}

	counts, err := e.sampleCounts(ctx, ep)
	if err != nil {
		return names, err
	}

	if names.Len() > 0 && looksCapped(counts) {
		log.Infow("Endpoint may have a result limit, trying two-letter queries", "limit", counts[0])
		for _, q := range twoLetterPrefixes() {
			if err := e.probe(ctx, ep, q, names); err != nil {
				return names, err
			}
		}
	}

	return names, nil
}

// probe queries one prefix, accumulates the result and then pauses.
func (e *Explorer) probe(ctx context.Context, ep types.Endpoint, query string, names types.NameSet) error {
	results, err := e.MakeRequest(ctx, ep, query)
	if err != nil {
		return err
	}
	names.Add(results...)
	return e.sleep(ctx, e.requestDelay)
}

// sampleCounts re-queries the sample letters. A 404 counts as zero results;
// sampled names are not accumulated.
func (e *Explorer) sampleCounts(ctx context.Context, ep types.Endpoint) ([]int, error) {
	counts := make([]int, 0, len(sampleLetters))
	for _, q := range sampleLetters {
		results, err := e.MakeRequest(ctx, ep, q)
		if err != nil && !errors.Is(err, ErrEndpointNotFound) {
			return nil, err
		}
		counts = append(counts, len(results))
	}
	return counts, nil
}

// Run explores every endpoint in order and saves the results on every exit
// path, including interruption and recovered panics.
func (e *Explorer) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Errorw("Unexpected fault, saving current progress", "panic", r)
			err = fmt.Errorf("%w: %v", ErrUnhandledFault, r)
		}
		if saveErr := e.SaveResults(); saveErr != nil {
			err = errors.Join(err, saveErr)
		}
	}()

	for _, ep := range e.Endpoints() {
		if err := ctx.Err(); err != nil {
			return err
		}

		log := e.log.WithEndpoint(ep.Path)
		names, err := e.ExploreEndpoint(ctx, ep)
		switch {
		case errors.Is(err, ErrEndpointNotFound):
			log.Warnw("Skipping endpoint as it doesn't exist")
		case err != nil:
			e.stateFor(ep).names.Add(names.Sorted()...)
			log.Warnw("Exploration interrupted, keeping partial results", "names", names.Len())
			return err
		default:
			e.stateFor(ep).names.Add(names.Sorted()...)
			log.Infow("Found names", "names", names.Len())
		}
	}
	return nil
}

// Summary builds the run summary and the per-version name lists from the
// current state. It is valid at any point of a run.
func (e *Explorer) Summary() (types.RunSummary, *types.VersionNames) {
	requests := types.NewVersionCounts()
	results := types.NewVersionCounts()
	names := types.NewVersionNames()
	sets := make([]types.NameSet, 0, e.state.Len())

	for el := e.state.Front(); el != nil; el = el.Next() {
		st := el.Value
		version := st.endpoint.Version
		requests.Set(version, st.requests)
		results.Set(version, st.names.Len())
		names.Set(version, st.names)
		sets = append(sets, st.names)
	}

	return types.RunSummary{
		Requests:           requests,
		ResultsCount:       results,
		TotalRequests:      requests.Sum(),
		TotalUniqueRecords: types.Union(sets...).Len(),
	}, names
}

// SaveResults writes the summary and names through the store. Safe to call
// repeatedly and with partial state.
func (e *Explorer) SaveResults() error {
	summary, names := e.Summary()
	if err := e.store.Save(summary, names); err != nil {
		e.log.Errorw("Failed to save results", "error", err)
		return fmt.Errorf("failed to save results: %w", err)
	}
	e.log.Infow("Results saved",
		"total_requests", summary.TotalRequests,
		"total_unique_records", summary.TotalUniqueRecords,
	)
	return nil
}
