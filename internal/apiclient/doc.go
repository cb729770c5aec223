// Package apiclient talks to the autocomplete service.
//
// Every call produces a Result tagged with one of four kinds: KindOK (names
// decoded), KindRateLimited (HTTP 429), KindNotFound (HTTP 404, the endpoint
// does not exist) and KindFailure (any other HTTP error, transport error or
// unreadable body). Retrying is the caller's business; the client makes
// exactly one HTTP request per Query.
package apiclient
