// Package docs registers the OpenAPI description served at /swagger/.
// Regenerate with `swag init -g cmd/app/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/farm/init": {
            "post": {
                "tags": ["farm"],
                "summary": "Create a farm",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm": {
            "get": {
                "tags": ["farm"],
                "summary": "Get the farm ledger",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/plant": {
            "post": {
                "tags": ["farm"],
                "summary": "Plant a crop",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/harvest": {
            "post": {
                "tags": ["farm"],
                "summary": "Harvest a mature crop",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/clear": {
            "post": {
                "tags": ["farm"],
                "summary": "Clear a growing crop",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/fallow": {
            "post": {
                "tags": ["farm"],
                "summary": "Rest an empty tile",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/water": {
            "post": {
                "tags": ["tools"],
                "summary": "Water a plot",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/fertilize": {
            "post": {
                "tags": ["tools"],
                "summary": "Fertilize a plot",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/refill": {
            "post": {
                "tags": ["tools"],
                "summary": "Refill the watering can",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/tools/buy": {
            "post": {
                "tags": ["tools"],
                "summary": "Buy tools",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/gather": {
            "post": {
                "tags": ["resources"],
                "summary": "Gather resources",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/craft": {
            "post": {
                "tags": ["crafting"],
                "summary": "Craft an item",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/craft/claim": {
            "post": {
                "tags": ["crafting"],
                "summary": "Claim a crafted item",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/compost/collect": {
            "post": {
                "tags": ["crafting"],
                "summary": "Collect compost",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/farm/patterns/{plot}": {
            "get": {
                "tags": ["patterns"],
                "summary": "Preview synergy patterns",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [{"type": "integer", "name": "plot", "in": "path", "required": true}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/events": {
            "get": {
                "tags": ["admin"],
                "summary": "Query the event log",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/reload-aliases": {
            "post": {
                "tags": ["admin"],
                "summary": "Reload catalog aliases",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/catalog": {
            "get": {
                "tags": ["catalog"],
                "summary": "Get the full catalog",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/catalog/crops": {
            "get": {
                "tags": ["catalog"],
                "summary": "List crops",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/catalog/tools": {
            "get": {
                "tags": ["catalog"],
                "summary": "List shop tools",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/catalog/resources": {
            "get": {
                "tags": ["catalog"],
                "summary": "List resources",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/catalog/recipes": {
            "get": {
                "tags": ["catalog"],
                "summary": "List recipes",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/catalog/patterns": {
            "get": {
                "tags": ["catalog"],
                "summary": "List synergy patterns",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness check",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/readyz": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness check",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/season": {
            "get": {
                "tags": ["season"],
                "summary": "Get the current season",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/season/advance": {
            "post": {
                "tags": ["season"],
                "summary": "Advance the calendar one day",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/season/set": {
            "post": {
                "tags": ["season"],
                "summary": "Force the current season",
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Farm Economy API",
	Description:      "Per-player 5x5 farms with seasons, crop synergies, tools, crafting and compost.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
