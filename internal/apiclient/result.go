package apiclient

import (
	"errors"
	"fmt"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fastjson"
)

// Kind tags the outcome of a single query.
type Kind int

const (
	KindOK Kind = iota
	KindRateLimited
	KindNotFound
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindRateLimited:
		return "rate_limited"
	case KindNotFound:
		return "not_found"
	case KindFailure:
		return "failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	// ErrUnexpectedFormat means the body was valid JSON of the wrong shape.
	ErrUnexpectedFormat = errors.New("unexpected response format")
	// ErrMalformedBody means the body was not valid JSON.
	ErrMalformedBody = errors.New("malformed response body")
	// ErrHTTPStatus wraps error statuses other than 404 and 429.
	ErrHTTPStatus = errors.New("unexpected HTTP status")
)

// Result is the outcome of one HTTP request.
type Result struct {
	Kind  Kind
	Names []string

	// StatusCode is zero when no response was received.
	StatusCode int
	// Responded is true when an HTTP response arrived, whatever its status.
	Responded bool

	// Err explains a KindFailure.
	Err error
}

// Classify maps a received HTTP response onto a Result.
func Classify(status int, body []byte) Result {
	res := Result{StatusCode: status, Responded: true}

	switch {
	case status == fasthttp.StatusTooManyRequests:
		res.Kind = KindRateLimited
	case status == fasthttp.StatusNotFound:
		res.Kind = KindNotFound
	case status >= fasthttp.StatusBadRequest:
		res.Kind = KindFailure
		res.Err = fmt.Errorf("%w: %d", ErrHTTPStatus, status)
	default:
		names, err := Decode(body)
		if err != nil {
			res.Kind = KindFailure
			res.Err = err
			return res
		}
		res.Kind = KindOK
		res.Names = names
	}
	return res
}

// Decode extracts names from a response body. Accepted shapes are a JSON
// array of strings and a JSON object whose "results" key holds one.
func Decode(body []byte) ([]string, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	switch v.Type() {
	case fastjson.TypeArray:
		return stringArray(v)
	case fastjson.TypeObject:
		results := v.Get("results")
		if results == nil {
			return nil, fmt.Errorf("%w: object without \"results\" key", ErrUnexpectedFormat)
		}
		if results.Type() != fastjson.TypeArray {
			return nil, fmt.Errorf("%w: \"results\" is %s", ErrUnexpectedFormat, results.Type())
		}
		return stringArray(results)
	default:
		return nil, fmt.Errorf("%w: top-level %s", ErrUnexpectedFormat, v.Type())
	}
}

func stringArray(v *fastjson.Value) ([]string, error) {
	items, err := v.Array()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}
	names := make([]string, 0, len(items))
	for i, item := range items {
		b, err := item.StringBytes()
		if err != nil {
			return nil, fmt.Errorf("%w: element %d is %s", ErrUnexpectedFormat, i, item.Type())
		}
		names = append(names, string(b))
	}
	return names, nil
}
