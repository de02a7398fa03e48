package handler

import (
	"net/http"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/farm"
	"github.com/osse101/FarmEconomy_Go/internal/logger"
	"github.com/osse101/FarmEconomy_Go/internal/naming"
)

// TileRequest targets a single grid tile
type TileRequest struct {
	TileIndex *int `json:"tile_index" validate:"required,min=0,max=24"`
}

// PlotRequest targets a plot for a tool action
type PlotRequest struct {
	PlotIndex *int `json:"plot_index" validate:"required,min=0,max=24"`
}

// PlantRequest plants a crop chosen by identifier or by name
type PlantRequest struct {
	TileIndex *int             `json:"tile_index" validate:"required,min=0,max=24"`
	CropType  *domain.CropType `json:"crop_type,omitempty"`
	CropName  string           `json:"crop_name,omitempty" validate:"catalog_name"`
}

// BuyToolRequest buys quantity units of a shop tool
type BuyToolRequest struct {
	ToolType *domain.ToolType `json:"tool_type,omitempty"`
	ToolName string           `json:"tool_name,omitempty" validate:"catalog_name"`
	Quantity uint16           `json:"quantity" validate:"required,min=1"`
}

// GatherRequest gathers raw resources by hand
type GatherRequest struct {
	ResourceType *domain.ResourceType `json:"resource_type,omitempty"`
	ResourceName string               `json:"resource_name,omitempty" validate:"catalog_name"`
	Amount       uint16               `json:"amount" validate:"required,min=1"`
}

// CraftRequest starts or completes a recipe
type CraftRequest struct {
	ItemID   *domain.ItemID `json:"item_id,omitempty"`
	ItemName string         `json:"item_name,omitempty" validate:"catalog_name"`
}

// WaterResponse reports the moisture after watering
type WaterResponse struct {
	Plot       int   `json:"plot"`
	WaterLevel uint8 `json:"water_level"`
}

// FertilizeResponse reports the fertility after fertilizing
type FertilizeResponse struct {
	Plot      int   `json:"plot"`
	Fertility uint8 `json:"fertility"`
}

// RefillResponse reports the cost of refilling the watering can
type RefillResponse struct {
	CoinsSpent      uint64 `json:"coins_spent"`
	WateringCanUses uint8  `json:"watering_can_uses"`
}

// FarmHandler serves the per-player farm commands
type FarmHandler struct {
	svc   farm.Service
	names naming.Resolver
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(svc farm.Service, names naming.Resolver) *FarmHandler {
	return &FarmHandler{svc: svc, names: names}
}

// resolveID picks the catalog identifier from a name (preferred) or a raw id.
// If ok is false, the response has already been written.
func resolveID[T ~uint8](w http.ResponseWriter, r *http.Request, op string, id *T, name string, resolve func(string) (T, error), missing string) (T, bool) {
	if name != "" {
		v, err := resolve(name)
		if err != nil {
			respondServiceError(w, r, op, err)
			return 0, false
		}
		return v, true
	}
	if id == nil {
		respondError(w, http.StatusBadRequest, missing)
		return 0, false
	}
	return *id, true
}

// Init handles player initialization
// @Summary Create a farm
// @Description Creates the ledger for the calling player with the starting resources and tools
// @Tags farm
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Success 201 {object} DataResponse "Farm created"
// @Failure 400 {object} ErrorResponse "Invalid player id"
// @Failure 409 {object} ErrorResponse "Player already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /farm/init [post]
func (h *FarmHandler) Init(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	ledger, err := h.svc.InitializePlayer(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "InitializePlayer", err)
		return
	}

	logger.FromContext(r.Context()).Info("Farm created", "player_id", playerID)
	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgPlayerInitialized, Data: ledger})
}

// GetLedger handles ledger reads
// @Summary Get the farm ledger
// @Tags farm
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Success 200 {object} domain.PlayerLedger
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /farm [get]
func (h *FarmHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	ledger, err := h.svc.GetLedger(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "GetLedger", err)
		return
	}
	respondJSON(w, http.StatusOK, ledger)
}

// Plant handles planting
// @Summary Plant a crop
// @Description Plants a crop by crop_type or crop_name on an empty tile. The crop must be valid in the current season.
// @Tags farm
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Param request body PlantRequest true "Plant request"
// @Success 200 {object} harvest.PlantResult
// @Failure 400 {object} ErrorResponse "Invalid tile or crop"
// @Failure 409 {object} ErrorResponse "Tile not empty or wrong season"
// @Router /farm/plant [post]
func (h *FarmHandler) Plant(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}
	crop, ok := resolveID(w, r, "PlantCrop", req.CropType, req.CropName, h.names.ResolveCrop, ErrMsgCropRequired)
	if !ok {
		return
	}

	res, err := h.svc.PlantCrop(r.Context(), playerID, *req.TileIndex, crop)
	if err != nil {
		respondServiceError(w, r, "PlantCrop", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Harvest handles harvesting
// @Summary Harvest a mature crop
// @Description Collects a mature crop, applying freshness, fertility, water, season and synergy modifiers
// @Tags farm
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Param request body TileRequest true "Tile"
// @Success 200 {object} harvest.HarvestResult
// @Failure 409 {object} ErrorResponse "No crop or crop not mature"
// @Router /farm/harvest [post]
func (h *FarmHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	var req TileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
		return
	}

	res, err := h.svc.HarvestCrop(r.Context(), playerID, *req.TileIndex)
	if err != nil {
		respondServiceError(w, r, "HarvestCrop", err)
		return
	}

	logger.FromContext(r.Context()).Info("Crop harvested",
		"player_id", playerID,
		"tile", res.Plot,
		"crop", res.Crop.String(),
		"yield", res.Yield,
		"patterns", len(res.Patterns))
	respondJSON(w, http.StatusOK, res)
}

// Clear handles tile clearing
// @Summary Clear a growing crop
// @Tags farm
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Param request body TileRequest true "Tile"
// @Success 200 {object} SuccessResponse
// @Failure 409 {object} ErrorResponse "No crop on tile"
// @Router /farm/clear [post]
func (h *FarmHandler) Clear(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	var req TileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Clear"); err != nil {
		return
	}

	if err := h.svc.ClearTile(r.Context(), playerID, *req.TileIndex); err != nil {
		respondServiceError(w, r, "ClearTile", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTileCleared})
}

// Fallow handles fertility restoration on resting tiles
// @Summary Rest an empty tile
// @Description Restores one fertility point per full hour the tile has been empty
// @Tags farm
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Param request body TileRequest true "Tile"
// @Success 200 {object} DataResponse
// @Failure 409 {object} ErrorResponse "Tile not empty"
// @Router /farm/fallow [post]
func (h *FarmHandler) Fallow(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	var req TileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Fallow"); err != nil {
		return
	}

	res, err := h.svc.LeaveFallow(r.Context(), playerID, *req.TileIndex)
	if err != nil {
		respondServiceError(w, r, "LeaveFallow", err)
		return
	}

	resp := DataResponse{Data: res}
	if res.FertilityGained == 0 {
		resp.Message = MsgNothingRestored
	}
	respondJSON(w, http.StatusOK, resp)
}

// Water handles watering
// @Summary Water a plot
// @Tags tools
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Param request body PlotRequest true "Plot"
// @Success 200 {object} WaterResponse
// @Failure 409 {object} ErrorResponse "Watering can empty"
// @Failure 429 {object} ErrorResponse "Watered too recently"
// @Router /farm/water [post]
func (h *FarmHandler) Water(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	var req PlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Water"); err != nil {
		return
	}

	level, err := h.svc.WaterTile(r.Context(), playerID, *req.PlotIndex)
	if err != nil {
		respondServiceError(w, r, "WaterTile", err)
		return
	}
	respondJSON(w, http.StatusOK, WaterResponse{Plot: *req.PlotIndex, WaterLevel: level})
}

// Fertilize handles fertilizer use
// @Summary Fertilize a plot
// @Tags tools
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Param request body PlotRequest true "Plot"
// @Success 200 {object} FertilizeResponse
// @Failure 409 {object} ErrorResponse "No fertilizer"
// @Router /farm/fertilize [post]
func (h *FarmHandler) Fertilize(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	var req PlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Fertilize"); err != nil {
		return
	}

	fertility, err := h.svc.UseFertilizer(r.Context(), playerID, *req.PlotIndex)
	if err != nil {
		respondServiceError(w, r, "UseFertilizer", err)
		return
	}
	respondJSON(w, http.StatusOK, FertilizeResponse{Plot: *req.PlotIndex, Fertility: fertility})
}

// Refill handles watering can refills
// @Summary Refill the watering can
// @Tags tools
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Success 200 {object} RefillResponse
// @Failure 409 {object} ErrorResponse "Not enough coins"
// @Router /farm/refill [post]
func (h *FarmHandler) Refill(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	cost, err := h.svc.RefillWateringCan(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "RefillWateringCan", err)
		return
	}
	respondJSON(w, http.StatusOK, RefillResponse{CoinsSpent: cost, WateringCanUses: domain.MaxWateringCanUses})
}

// BuyTool handles shop purchases
// @Summary Buy tools
// @Tags tools
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Param request body BuyToolRequest true "Purchase"
// @Success 200 {object} tool.PurchaseResult
// @Failure 409 {object} ErrorResponse "Not enough coins"
// @Router /farm/tools/buy [post]
func (h *FarmHandler) BuyTool(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	var req BuyToolRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy tool"); err != nil {
		return
	}
	t, ok := resolveID(w, r, "BuyTool", req.ToolType, req.ToolName, h.names.ResolveTool, ErrMsgToolRequired)
	if !ok {
		return
	}

	res, err := h.svc.BuyTool(r.Context(), playerID, t, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "BuyTool", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Gather handles manual resource gathering
// @Summary Gather resources
// @Tags resources
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Param request body GatherRequest true "Gather"
// @Success 200 {object} resource.GatherResult
// @Failure 400 {object} ErrorResponse "Amount out of range"
// @Failure 429 {object} ErrorResponse "Cooldown active"
// @Router /farm/gather [post]
func (h *FarmHandler) Gather(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	var req GatherRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Gather"); err != nil {
		return
	}
	rt, ok := resolveID(w, r, "GatherResource", req.ResourceType, req.ResourceName, h.names.ResolveResource, ErrMsgResourceRequired)
	if !ok {
		return
	}

	res, err := h.svc.GatherResource(r.Context(), playerID, rt, req.Amount)
	if err != nil {
		respondServiceError(w, r, "GatherResource", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Craft handles crafting
// @Summary Craft an item
// @Description Instant recipes are granted immediately; timed recipes occupy the crafting slot until claimed
// @Tags crafting
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Param request body CraftRequest true "Recipe"
// @Success 200 {object} DataResponse
// @Failure 409 {object} ErrorResponse "Missing inputs or job in progress"
// @Router /farm/craft [post]
func (h *FarmHandler) Craft(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	var req CraftRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
		return
	}
	item, ok := resolveID(w, r, "CraftItem", req.ItemID, req.ItemName, h.names.ResolveItem, ErrMsgItemRequired)
	if !ok {
		return
	}

	res, err := h.svc.CraftItem(r.Context(), playerID, item)
	if err != nil {
		respondServiceError(w, r, "CraftItem", err)
		return
	}

	msg := MsgCraftingStarted
	if res.Instant {
		msg = MsgItemCrafted
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: msg, Data: res})
}

// Claim handles collecting a finished crafting job
// @Summary Claim a crafted item
// @Tags crafting
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Success 200 {object} crafting.ClaimResult
// @Failure 409 {object} ErrorResponse "No job or job not complete"
// @Router /farm/craft/claim [post]
func (h *FarmHandler) Claim(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	res, err := h.svc.ClaimCraftedItem(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "ClaimCraftedItem", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// CollectCompost handles compost bin collection
// @Summary Collect compost
// @Description Converts elapsed days into fertilizer for every owned compost bin
// @Tags crafting
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Success 200 {object} compost.Result
// @Failure 409 {object} ErrorResponse "No compost bins"
// @Router /farm/compost/collect [post]
func (h *FarmHandler) CollectCompost(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	res, err := h.svc.CollectCompost(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "CollectCompost", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// CheckPatterns handles the read-only pattern preview
// @Summary Preview synergy patterns
// @Tags patterns
// @Produce json
// @Param X-Player-ID header string true "Player UUID"
// @Param plot path int true "Plot index (0-24)"
// @Success 200 {object} harvest.PreviewResult
// @Failure 400 {object} ErrorResponse "Invalid plot"
// @Router /farm/patterns/{plot} [get]
func (h *FarmHandler) CheckPatterns(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}
	plot, ok := intURLParam(w, r, "plot")
	if !ok {
		return
	}

	res, err := h.svc.CheckPatterns(r.Context(), playerID, plot)
	if err != nil {
		respondServiceError(w, r, "CheckPatterns", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
