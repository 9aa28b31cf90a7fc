// Package api contains the transport client for the snipserve HTTP API.
//
// The Client interface is the contract the rest of the application depends
// on; HTTPClient is the production implementation. Every call attaches the
// session cookie (via the client's cookie jar) and, when one is cached, the
// bearer API key, so the server may authenticate through either channel.
package api
