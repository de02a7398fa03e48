// Package configs ships the default game tuning file and its schema.
package configs

import _ "embed"

// GameSchema is the JSON Schema every game.yaml must satisfy
//
//go:embed schemas/game.schema.json
var GameSchema []byte

// DefaultGame is the stock game.yaml
//
//go:embed game.yaml
var DefaultGame []byte
