// Package client implements the transport layer of the poetry CLI: the
// Client interface describing the consumed backend REST surface, an HTTP
// implementation that attaches the bearer credential to every outgoing
// request, and the bootstrap of the local sqlite state database.
package client
