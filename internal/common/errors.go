// Package common defines shared constants and sentinel errors used across
// the upload client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository / key-value store errors.
	ErrorNotFound = errors.New("not found")

	// Configuration errors: credentials or bucket/endpoint missing.
	// These short-circuit before any I/O and are never retried.
	ErrMissingCredentials = errors.New("storage credentials are not configured")
	ErrMissingBucket      = errors.New("no target bucket configured")

	// Connectivity errors, classified by the prober.
	ErrInvalidAccessKey   = errors.New("access key is not recognized by the storage provider")
	ErrInvalidSecretKey   = errors.New("secret key does not match")
	ErrBucketInaccessible = errors.New("bucket does not exist or access is denied")
	ErrProbeTimeout       = errors.New("storage provider did not respond in time")

	// Transfer errors: every delivery strategy was attempted and failed.
	ErrAllStrategiesFailed = errors.New("all upload strategies failed")
)
