package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/crafting"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/handler"
	"github.com/osse101/FarmEconomy_Go/internal/tool"
)

func getJSON(t *testing.T, h http.HandlerFunc, out interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHandleGetCrops(t *testing.T) {
	var crops []handler.CropInfo
	getJSON(t, handler.HandleGetCrops(), &crops)

	require.Len(t, crops, len(domain.AllCrops))
	assert.Equal(t, domain.CropWheat, crops[0].Type)
	assert.Equal(t, "wheat", crops[0].Name)
	assert.Equal(t, "Wheat", crops[0].DisplayName)
	assert.NotEmpty(t, crops[0].ValidSeasons)
}

func TestHandleGetTools(t *testing.T) {
	var tools []tool.Info
	getJSON(t, handler.HandleGetTools(), &tools)
	assert.Equal(t, tool.All(), tools)
}

func TestHandleGetRecipes(t *testing.T) {
	var recipes []crafting.Recipe
	getJSON(t, handler.HandleGetRecipes(), &recipes)
	assert.Len(t, recipes, len(crafting.All()))
}

func TestHandleGetPatterns(t *testing.T) {
	var patterns []handler.PatternInfo
	getJSON(t, handler.HandleGetPatterns(), &patterns)

	require.Len(t, patterns, domain.NumPatternTypes)
	assert.Equal(t, domain.PatternMonocultureRow.String(), patterns[0].Name)
	assert.Equal(t, uint32(11500), patterns[0].Bonus.YieldMultiplierBP)
}

func TestHandleGetResources(t *testing.T) {
	var resources []map[string]interface{}
	getJSON(t, handler.HandleGetResources(), &resources)
	assert.Len(t, resources, domain.NumResourceTypes)
}

func TestHandleGetCatalog(t *testing.T) {
	var cat handler.CatalogResponse
	getJSON(t, handler.HandleGetCatalog(), &cat)

	assert.Len(t, cat.Crops, len(domain.AllCrops))
	assert.Len(t, cat.Tools, len(domain.AllTools))
	assert.Len(t, cat.Resources, domain.NumResourceTypes)
	assert.Len(t, cat.Recipes, len(domain.AllItems))
	assert.Len(t, cat.Patterns, domain.NumPatternTypes)
}
