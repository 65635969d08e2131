package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/voidlabz/lootvault/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Generation messages
	ErrMsgArtifactFailedError    = "The forge sputtered. Your loot box could not be opened, please try again."
	ErrMsgStatusUnavailableError = "Could not check your free generations. Payment is required to continue."
	ErrMsgQuotaExhaustedError    = "Free generations used up. Payment is required to open more boxes."

	// Marketplace messages
	ErrMsgPurchaseUnavailableError = "That item is no longer for sale."
	ErrMsgCollectibleNotFoundError = "Collectible not found."

	// Wallet messages
	ErrMsgInvalidAddressError = "Invalid wallet address."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrArtifactGeneration):
		return http.StatusBadGateway, ErrMsgArtifactFailedError
	case errors.Is(err, domain.ErrStatusUnavailable):
		return http.StatusServiceUnavailable, ErrMsgStatusUnavailableError
	case errors.Is(err, domain.ErrFreeQuotaExhausted):
		return http.StatusPaymentRequired, ErrMsgQuotaExhaustedError
	case errors.Is(err, domain.ErrPurchaseUnavailable):
		return http.StatusConflict, ErrMsgPurchaseUnavailableError
	case errors.Is(err, domain.ErrCollectibleNotFound):
		return http.StatusNotFound, ErrMsgCollectibleNotFoundError
	case errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest, ErrMsgInvalidAddressError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short custom messages (tests, mocks) pass through; anything long or
	// system-level collapses to the generic message
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
