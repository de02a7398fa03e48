package validation

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lengthsSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"season_lengths": {
			"type": "array",
			"items": {"type": "integer", "minimum": 1},
			"minItems": 4,
			"maxItems": 4
		},
		"scheduler": {
			"type": "object",
			"properties": {"worker_count": {"type": "integer", "minimum": 1}}
		}
	},
	"required": ["season_lengths"]
}`

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantLoc string
		wantKw  string
	}{
		{name: "valid", data: `{"season_lengths": [30, 30, 30, 30]}`},
		{name: "valid with scheduler", data: `{"season_lengths": [7, 7, 7, 7], "scheduler": {"worker_count": 2}}`},
		{name: "missing lengths", data: `{}`, wantLoc: "(root)", wantKw: "required"},
		{name: "zero day season", data: `{"season_lengths": [30, 0, 30, 30]}`, wantLoc: "/season_lengths/1", wantKw: "minimum"},
		{name: "three seasons", data: `{"season_lengths": [30, 30, 30]}`, wantLoc: "/season_lengths", wantKw: "minItems"},
		{name: "fractional days", data: `{"season_lengths": [30.5, 30, 30, 30]}`, wantLoc: "/season_lengths/0", wantKw: "type"},
		{name: "no workers", data: `{"season_lengths": [1, 1, 1, 1], "scheduler": {"worker_count": 0}}`, wantLoc: "/scheduler/worker_count", wantKw: "minimum"},
	}

	v := NewSchemaValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate([]byte(tt.data), "game.schema.json", []byte(lengthsSchema))
			if tt.wantLoc == "" {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, "game.schema.json", verr.Schema)
			assert.Contains(t, verr.Violations, Violation{Location: tt.wantLoc, Keyword: tt.wantKw})
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestValidate_MalformedData(t *testing.T) {
	err := NewSchemaValidator().Validate([]byte(`{"season_lengths": [30,`), "game.schema.json", []byte(lengthsSchema))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON data")
}

func TestValidate_BrokenSchema(t *testing.T) {
	err := NewSchemaValidator().Validate([]byte(`{}`), "broken.schema.json", []byte(`{"type": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema broken.schema.json")
}

func TestValidate_CachesByName(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, v.Validate([]byte(`{"season_lengths": [1, 2, 3, 4]}`), "game.schema.json", []byte(lengthsSchema)))
		}()
	}
	wg.Wait()
	assert.Len(t, v.schemas, 1)

	// a cached name ignores the bytes passed later
	assert.NoError(t, v.Validate([]byte(`{"season_lengths": [1, 2, 3, 4]}`), "game.schema.json", []byte(`{"type": `)))
}

func TestViolation_String(t *testing.T) {
	assert.Equal(t, "at /season_lengths/1: minimum", Violation{Location: "/season_lengths/1", Keyword: "minimum"}.String())
	assert.Equal(t, "at (root): invalid", Violation{Location: "(root)"}.String())
}
