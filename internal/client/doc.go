// Package client is an HTTP client for the graph service.
package client
