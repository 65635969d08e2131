package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Generation errors
	ErrMsgArtifactGeneration = "artifact generation failed"
	ErrMsgStatusUnavailable  = "generation status unavailable"
	ErrMsgFreeQuotaExhausted = "free generation quota exhausted"

	// Persistence errors
	ErrMsgPersistence = "collectible persistence failed"

	// Marketplace errors
	ErrMsgPurchaseUnavailable = "item is no longer listed for sale"

	// Collectible errors
	ErrMsgCollectibleNotFound = "collectible not found"

	// Wallet errors
	ErrMsgInvalidAddress = "invalid wallet address"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrArtifactGeneration: the image/flavor-text generation step failed.
	// Retry is manual and user-triggered, never automatic.
	ErrArtifactGeneration = errors.New(ErrMsgArtifactGeneration)

	// ErrStatusUnavailable: the ledger could not be read. Callers must treat
	// this as "assume paid path" rather than silently granting a free
	// generation.
	ErrStatusUnavailable = errors.New(ErrMsgStatusUnavailable)

	// ErrFreeQuotaExhausted: a free generation was requested but the
	// address has used its full free tier.
	ErrFreeQuotaExhausted = errors.New(ErrMsgFreeQuotaExhausted)

	// ErrPersistence: the durable collectible document write failed.
	ErrPersistence = errors.New(ErrMsgPersistence)

	// ErrPurchaseUnavailable: the target item left the listed pool before
	// the buy completed (e.g. already bought).
	ErrPurchaseUnavailable = errors.New(ErrMsgPurchaseUnavailable)

	ErrCollectibleNotFound = errors.New(ErrMsgCollectibleNotFound)

	ErrInvalidAddress = errors.New(ErrMsgInvalidAddress)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
