// Package timeouts defines shared timeout constants. Centralizing these
// values prevents drift between surfaces and makes the durations
// discoverable.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Session is the default lifetime of a web session record.
const Session = 7 * 24 * time.Hour

// RememberMe is the lifetime of a remember-me token and its cookie.
const RememberMe = 30 * 24 * time.Hour
