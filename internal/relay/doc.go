// Package relay is the HTTP boundary of the key custodian.
//
// The server side (Handler) exposes a domain.ShareCustodian over HTTP; the
// client side (HTTPClient) implements domain.ShareCustodian against that
// API, so the letter service works the same with a local or a remote
// custodian.
//
// HTTP API
//
//	POST /shares  {"letter_id", "share", "unlock_at"}
//	    Deposit a server share. 201 on success, 409 if one already exists.
//
//	GET /shares/{id}
//	    Release the server share as {"share"}. 404 for unknown letters,
//	    423 (Locked) before the unlock time with Retry-After in seconds.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses the client does not map to a domain error are
// returned with the HTTP method, path, and status text to aid diagnostics.
// The client share never crosses this boundary.
package relay
