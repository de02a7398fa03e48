package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/FarmEconomy_Go/internal/eventlog"
	"github.com/osse101/FarmEconomy_Go/internal/logger"
	"github.com/osse101/FarmEconomy_Go/internal/naming"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 1000
)

// AdminEventsHandler handles admin event log queries
type AdminEventsHandler struct {
	eventlogService eventlog.Service
}

// NewAdminEventsHandler creates a new admin events handler
func NewAdminEventsHandler(eventlogService eventlog.Service) *AdminEventsHandler {
	return &AdminEventsHandler{eventlogService: eventlogService}
}

// EventsResponse contains event log query results
type EventsResponse struct {
	Events []repository.EventLogEntry `json:"events"`
}

// HandleGetEvents retrieves events based on query parameters
// @Summary Query the event log
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param player_id query string false "Player UUID"
// @Param event_type query string false "Event type"
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Param limit query int false "1-1000, default 50"
// @Success 200 {object} EventsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameter"
// @Router /admin/events [get]
func (h *AdminEventsHandler) HandleGetEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.EventLogFilter{Limit: defaultEventLimit}

	if playerID := query.Get("player_id"); playerID != "" {
		filter.PlayerID = &playerID
	}
	if eventType := query.Get("event_type"); eventType != "" {
		filter.EventType = &eventType
	}

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"since", &filter.Since}, {"until", &filter.Until}} {
		s := query.Get(p.name)
		if s == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmtQueryParam(p.name))
			return
		}
		*p.dst = &ts
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > maxEventLimit {
			respondError(w, http.StatusBadRequest, fmtQueryParam("limit"))
			return
		}
		filter.Limit = limit
	}

	events, err := h.eventlogService.GetEvents(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, "GetEvents", err)
		return
	}
	if events == nil {
		events = []repository.EventLogEntry{}
	}
	respondJSON(w, http.StatusOK, EventsResponse{Events: events})
}

// HandleReloadAliases reloads the naming resolver alias file
// @Summary Reload catalog aliases
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/reload-aliases [post]
func HandleReloadAliases(resolver naming.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := resolver.Reload(); err != nil {
			log.Error("Failed to reload naming resolver", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadFailed)
			return
		}

		log.Info("Naming aliases reloaded")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAliasesReloaded})
	}
}
