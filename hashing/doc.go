// Package hashing computes the hex-encoded message digests used by the
// authentication pipeline.
//
// A Provider caches the hash constructors for its supported algorithms at
// construction time; the cache is read-only afterwards and safe for
// concurrent use by in-flight requests.
package hashing
