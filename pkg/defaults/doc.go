// Package defaults centralizes timeout constants shared across itemd
// components so that server, store, and CLI code agree on the same
// operational bounds.
package defaults
