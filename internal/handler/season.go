package handler

import (
	"net/http"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/logger"
	"github.com/osse101/FarmEconomy_Go/internal/naming"
	"github.com/osse101/FarmEconomy_Go/internal/season"
)

// SeasonResponse is the calendar as shown to clients
type SeasonResponse struct {
	Season         domain.Season `json:"season"`
	SeasonName     string        `json:"season_name"`
	DaysPassed     uint32        `json:"days_passed"`
	SeasonStartDay uint32        `json:"season_start_day"`
	DaysIntoSeason uint32        `json:"days_into_season"`
	DaysRemaining  uint32        `json:"days_remaining"`
}

// SeasonHandler serves the global calendar
type SeasonHandler struct {
	svc season.Service
}

// NewSeasonHandler creates a new season handler
func NewSeasonHandler(svc season.Service) *SeasonHandler {
	return &SeasonHandler{svc: svc}
}

func (h *SeasonHandler) toResponse(c *domain.SeasonClock) SeasonResponse {
	return SeasonResponse{
		Season:         c.CurrentSeason,
		SeasonName:     naming.Display(c.CurrentSeason.String()),
		DaysPassed:     c.DaysPassed,
		SeasonStartDay: c.SeasonStartDay,
		DaysIntoSeason: c.DaysIntoSeason(),
		DaysRemaining:  season.DaysRemaining(*c, h.svc.Lengths()),
	}
}

// Get handles season reads
// @Summary Get the current season
// @Tags season
// @Produce json
// @Success 200 {object} SeasonResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /season [get]
func (h *SeasonHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetSeason(r.Context())
	if err != nil {
		respondServiceError(w, r, "GetSeason", err)
		return
	}
	respondJSON(w, http.StatusOK, h.toResponse(c))
}

// Advance handles the admin day advance
// @Summary Advance the calendar one day
// @Tags season
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} SeasonResponse
// @Router /season/advance [post]
func (h *SeasonHandler) Advance(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.AdvanceDay(r.Context())
	if err != nil {
		respondServiceError(w, r, "AdvanceDay", err)
		return
	}
	logger.FromContext(r.Context()).Info("Day advanced by admin", "days_passed", c.DaysPassed, "season", c.CurrentSeason.String())
	respondJSON(w, http.StatusOK, h.toResponse(c))
}

// SetSeasonRequest forces the calendar to a season index
type SetSeasonRequest struct {
	Season *int `json:"season" validate:"required"`
}

// Set handles the admin season override
// @Summary Force the current season
// @Tags season
// @Accept json
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param request body SetSeasonRequest true "Season index (0-3)"
// @Success 200 {object} SeasonResponse
// @Failure 400 {object} ErrorResponse "Invalid season index"
// @Router /season/set [post]
func (h *SeasonHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req SetSeasonRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set season"); err != nil {
		return
	}

	c, err := h.svc.SetSeason(r.Context(), *req.Season)
	if err != nil {
		respondServiceError(w, r, "SetSeason", err)
		return
	}
	logger.FromContext(r.Context()).Info("Season set by admin", "season", c.CurrentSeason.String())
	respondJSON(w, http.StatusOK, h.toResponse(c))
}
