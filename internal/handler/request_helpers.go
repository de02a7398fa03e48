package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FarmEconomy_Go/internal/farm"
	"github.com/osse101/FarmEconomy_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates its tags.
//
// If this function returns an error, the HTTP response has already been written
// and the handler should return.
//
//	var req TileRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Debug(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// requirePlayer returns the acting player set by the identity middleware.
// If ok is false, the response has already been written.
func requirePlayer(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := farm.CallerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgMissingPlayerID)
		return "", false
	}
	return id, true
}

// intURLParam parses a chi path parameter as an int.
// If ok is false, the response has already been written.
func intURLParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return 0, false
	}
	return v, true
}

func fmtQueryParam(name string) string {
	return fmt.Sprintf(ErrMsgInvalidQueryParam, name)
}
