package handler

import (
	"net/http"

	"github.com/osse101/FarmEconomy_Go/internal/crafting"
	"github.com/osse101/FarmEconomy_Go/internal/crop"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/naming"
	"github.com/osse101/FarmEconomy_Go/internal/resource"
	"github.com/osse101/FarmEconomy_Go/internal/synergy"
	"github.com/osse101/FarmEconomy_Go/internal/tool"
)

// CropInfo is the public view of a crop configuration
type CropInfo struct {
	Type          domain.CropType `json:"type"`
	Name          string          `json:"name"`
	DisplayName   string          `json:"display_name"`
	GrowthTime    int64           `json:"growth_time_seconds"`
	OptimalWindow int64           `json:"optimal_window_seconds"`
	MaxDecayTime  int64           `json:"max_decay_seconds"`
	BaseYield     uint32          `json:"base_yield"`
	MinYield      uint32          `json:"min_yield"`
	FertilityCost uint8           `json:"fertility_cost"`
	Restorative   bool            `json:"restorative"`
	ValidSeasons  []string        `json:"valid_seasons"`
	SeedGrant     uint16          `json:"seed_grant"`
	FiberGrant    uint16          `json:"fiber_grant"`
}

// PatternInfo pairs a pattern with its bonus
type PatternInfo struct {
	Type  domain.PatternType `json:"type"`
	Name  string             `json:"name"`
	Bonus synergy.Bonus      `json:"bonus"`
}

func toCropInfo(c crop.Config) CropInfo {
	seasons := make([]string, 0, len(c.ValidSeasons))
	for _, s := range c.ValidSeasons {
		seasons = append(seasons, s.String())
	}
	return CropInfo{
		Type:          c.Type,
		Name:          c.Type.String(),
		DisplayName:   naming.Display(c.Type.String()),
		GrowthTime:    c.GrowthTime,
		OptimalWindow: c.OptimalWindow,
		MaxDecayTime:  c.MaxDecayTime,
		BaseYield:     c.BaseYield,
		MinYield:      c.MinYield,
		FertilityCost: c.FertilityCost,
		Restorative:   c.Restorative,
		ValidSeasons:  seasons,
		SeedGrant:     c.SeedGrant,
		FiberGrant:    c.FiberGrant,
	}
}

func cropInfos() []CropInfo {
	all := crop.All()
	out := make([]CropInfo, 0, len(all))
	for _, c := range all {
		out = append(out, toCropInfo(c))
	}
	return out
}

func patternInfos() ([]PatternInfo, error) {
	out := make([]PatternInfo, 0, domain.NumPatternTypes)
	for p := domain.PatternType(0); p < domain.NumPatternTypes; p++ {
		b, err := synergy.ForPattern(p)
		if err != nil {
			return nil, err
		}
		out = append(out, PatternInfo{Type: p, Name: p.String(), Bonus: b})
	}
	return out, nil
}

// CatalogResponse bundles every static catalog
type CatalogResponse struct {
	Crops     []CropInfo        `json:"crops"`
	Tools     []tool.Info       `json:"tools"`
	Resources []resource.Info   `json:"resources"`
	Recipes   []crafting.Recipe `json:"recipes"`
	Patterns  []PatternInfo     `json:"patterns"`
}

// HandleGetCatalog returns all catalogs in one document
// @Summary Get the full catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /catalog [get]
func HandleGetCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patterns, err := patternInfos()
		if err != nil {
			respondServiceError(w, r, "GetCatalog", err)
			return
		}
		respondJSON(w, http.StatusOK, CatalogResponse{
			Crops:     cropInfos(),
			Tools:     tool.All(),
			Resources: resource.All(),
			Recipes:   crafting.All(),
			Patterns:  patterns,
		})
	}
}

// HandleGetCrops lists the crop catalog
// @Summary List crops
// @Tags catalog
// @Produce json
// @Success 200 {array} CropInfo
// @Router /catalog/crops [get]
func HandleGetCrops() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, cropInfos())
	}
}

// HandleGetTools lists the tool shop
// @Summary List shop tools
// @Tags catalog
// @Produce json
// @Success 200 {array} tool.Info
// @Router /catalog/tools [get]
func HandleGetTools() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, tool.All())
	}
}

// HandleGetResources lists the resource stack limits
// @Summary List resources
// @Tags catalog
// @Produce json
// @Success 200 {array} resource.Info
// @Router /catalog/resources [get]
func HandleGetResources() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, resource.All())
	}
}

// HandleGetRecipes lists crafting recipes
// @Summary List recipes
// @Tags catalog
// @Produce json
// @Success 200 {array} crafting.Recipe
// @Router /catalog/recipes [get]
func HandleGetRecipes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, crafting.All())
	}
}

// HandleGetPatterns lists the synergy patterns and their bonuses
// @Summary List synergy patterns
// @Tags catalog
// @Produce json
// @Success 200 {array} PatternInfo
// @Router /catalog/patterns [get]
func HandleGetPatterns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := patternInfos()
		if err != nil {
			respondServiceError(w, r, "ListPatterns", err)
			return
		}
		respondJSON(w, http.StatusOK, out)
	}
}
