// Package keyvalue connects to the Redis key-value server used by the Redis ledger store.
//
// Connect dials with the configured timeouts and pings once so that a misconfigured
// address fails at startup instead of on the first observation.
package keyvalue
