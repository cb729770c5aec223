// Package explorer enumerates the names an autocomplete service can return.
//
// For each endpoint it first sends an empty query. If that yields names they
// are taken as the complete set. Otherwise it queries every single lowercase
// letter, then re-samples "a", "b" and "c": three equal non-zero counts are
// read as a per-query result cap, and every two-letter prefix is queried as
// well. A 404 at any step marks the endpoint as non-existent.
//
// Requests are strictly sequential. All pauses honour the context, and Run
// saves whatever it has gathered on every exit path.
package explorer
