// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package only defines the
// settings it reads: listen port, API key and request body limit.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/start.go.
package server
