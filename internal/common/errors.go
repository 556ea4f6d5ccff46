// Package common defines shared sentinel errors used across the
// sadhana-backend services and HTTP layer. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Validation / input errors (user-correctable).
	ErrorValidation = errors.New("validation error")

	// Account errors.
	ErrorAccountExists      = errors.New("account already exists")
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Auth-layer rejections.
	ErrorUnauthenticated = errors.New("missing or malformed credentials")
	ErrorInvalidToken    = errors.New("invalid token")
	ErrorTokenExpired    = errors.New("token expired")

	// Data-integrity inconsistencies.
	ErrorMissingPartition = errors.New("account has no stats table")

	// External record store failures.
	ErrorUpstreamUnavailable = errors.New("record store unavailable")
	ErrorUpstreamWrite       = errors.New("record store write failed")
	ErrorProvisioning        = errors.New("stats table provisioning failed")

	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Generic internal flow control.
	ErrorInternal = errors.New("internal error")
)
