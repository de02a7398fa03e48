package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/logger"
)

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

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

var validationErrors = []error{
	domain.ErrInvalidTileIndex,
	domain.ErrInvalidPlotIndex,
	domain.ErrInvalidCropType,
	domain.ErrInvalidResourceType,
	domain.ErrInvalidItemID,
	domain.ErrInvalidToolType,
	domain.ErrInvalidPatternType,
	domain.ErrInvalidSeasonIndex,
	domain.ErrInvalidQuantity,
	domain.ErrGatherAmountExceeded,
	domain.ErrInvalidPlayerID,
}

var preconditionErrors = []error{
	domain.ErrTileNotEmpty,
	domain.ErrNoActiveCrop,
	domain.ErrCropNotMature,
	domain.ErrInvalidSeasonForCrop,
	domain.ErrCraftingInProgress,
	domain.ErrNoCraftingInProgress,
	domain.ErrCraftingNotComplete,
	domain.ErrInsufficientFertilizer,
	domain.ErrInsufficientResources,
	domain.ErrInsufficientPoints,
	domain.ErrInsufficientToolUses,
	domain.ErrNoCompostBins,
	domain.ErrResourceStackOverflow,
	domain.ErrPlayerAlreadyExists,
}

var cooldownErrors = []error{
	domain.ErrGatherCooldownActive,
	domain.ErrWateringTooFrequent,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// mapServiceError maps domain errors to an HTTP status and a client-safe message.
// Client errors echo the wrapped domain message; everything else is generic.
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case isAny(err, validationErrors):
		return http.StatusBadRequest, err.Error()
	case isAny(err, cooldownErrors):
		return http.StatusTooManyRequests, err.Error()
	case isAny(err, preconditionErrors):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, domain.ErrMsgPlayerNotFound
	case errors.Is(err, domain.ErrIdentityMismatch):
		return http.StatusForbidden, domain.ErrMsgIdentityMismatch
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError logs err at a level matching its status and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgRequestFailed, "operation", op, "error", err)
	} else {
		log.Debug(LogMsgRequestFailed, "operation", op, "status", status, "error", err)
	}
	respondError(w, status, msg)
}
