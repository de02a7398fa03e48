// Package naming maps free-form player input to catalog identifiers and
// renders identifiers back as display text.
package naming

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
)

// Kind selects one of the catalogs.
type Kind string

const (
	KindCrop     Kind = "crop"
	KindResource Kind = "resource"
	KindItem     Kind = "item"
	KindTool     Kind = "tool"
)

// Resolver handles catalog name resolution
type Resolver interface {
	ResolveCrop(name string) (domain.CropType, error)
	ResolveResource(name string) (domain.ResourceType, error)
	ResolveItem(name string) (domain.ItemID, error)
	ResolveTool(name string) (domain.ToolType, error)

	// Suggest returns the closest known name within the edit-distance limit
	Suggest(kind Kind, name string) (string, bool)

	// RegisterAlias adds an extra public name for an identifier
	RegisterAlias(kind Kind, alias string, id uint8)

	// Reload re-reads the alias file
	Reload() error
}

type resolver struct {
	mu sync.RWMutex

	// names[kind][normalized name] -> identifier
	names map[Kind]map[string]uint8

	aliasesPath string
}

// NewResolver creates a resolver seeded with every catalog's canonical names.
// aliasesPath may be empty or point at a missing file.
func NewResolver(aliasesPath string) (Resolver, error) {
	r := &resolver{aliasesPath: aliasesPath}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func canonicalNames() map[Kind]map[string]uint8 {
	names := map[Kind]map[string]uint8{
		KindCrop:     {},
		KindResource: {},
		KindItem:     {},
		KindTool:     {},
	}
	for _, c := range domain.AllCrops {
		names[KindCrop][c.String()] = uint8(c)
	}
	for _, res := range domain.AllResources {
		names[KindResource][res.String()] = uint8(res)
	}
	for _, i := range domain.AllItems {
		names[KindItem][i.String()] = uint8(i)
	}
	for _, t := range domain.AllTools {
		names[KindTool][t.String()] = uint8(t)
	}
	return names
}

// Normalize lowercases and joins words with underscores.
func Normalize(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(name)), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	return strings.Join(fields, "_")
}

// Display renders an identifier name as title-cased words.
func Display(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

func (r *resolver) RegisterAlias(kind Kind, alias string, id uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if key := Normalize(alias); key != "" {
		if r.names[kind] == nil {
			r.names[kind] = make(map[string]uint8)
		}
		r.names[kind][key] = id
	}
}

func (r *resolver) lookup(kind Kind, name string) (uint8, error) {
	r.mu.RLock()
	id, ok := r.names[kind][Normalize(name)]
	r.mu.RUnlock()
	if ok {
		return id, nil
	}

	sentinel := sentinelFor(kind)
	if suggestion, found := r.Suggest(kind, name); found {
		return 0, fmt.Errorf(ErrFmtUnknownNameSuggest, sentinel, name, suggestion)
	}
	return 0, fmt.Errorf(ErrFmtUnknownName, sentinel, name)
}

func sentinelFor(kind Kind) error {
	switch kind {
	case KindCrop:
		return domain.ErrInvalidCropType
	case KindResource:
		return domain.ErrInvalidResourceType
	case KindItem:
		return domain.ErrInvalidItemID
	default:
		return domain.ErrInvalidToolType
	}
}

func (r *resolver) ResolveCrop(name string) (domain.CropType, error) {
	id, err := r.lookup(KindCrop, name)
	return domain.CropType(id), err
}

func (r *resolver) ResolveResource(name string) (domain.ResourceType, error) {
	id, err := r.lookup(KindResource, name)
	return domain.ResourceType(id), err
}

func (r *resolver) ResolveItem(name string) (domain.ItemID, error) {
	id, err := r.lookup(KindItem, name)
	return domain.ItemID(id), err
}

func (r *resolver) ResolveTool(name string) (domain.ToolType, error) {
	id, err := r.lookup(KindTool, name)
	return domain.ToolType(id), err
}

// Suggest picks the nearest known name. Ties break alphabetically.
func (r *resolver) Suggest(kind Kind, name string) (string, bool) {
	token := Normalize(name)
	if token == "" {
		return "", false
	}

	r.mu.RLock()
	candidates := make([]string, 0, len(r.names[kind]))
	for cand := range r.names[kind] {
		candidates = append(candidates, cand)
	}
	r.mu.RUnlock()
	sort.Strings(candidates)

	best, bestDist := "", -1
	for _, cand := range candidates {
		if strings.HasPrefix(cand, token) && len(token) >= MinPrefixLength {
			return cand, true
		}
		dist := levenshtein.ComputeDistance(token, cand)
		if dist > distanceLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

func distanceLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

// Reload resets to canonical names and re-applies the alias file
func (r *resolver) Reload() error {
	names := canonicalNames()

	if r.aliasesPath != "" {
		aliases, err := loadAliases(r.aliasesPath)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToLoadAliases, err)
		}
		for kind, entries := range aliases {
			if names[kind] == nil {
				return fmt.Errorf(ErrMsgUnknownAliasKind, r.aliasesPath, kind)
			}
			for alias, id := range entries {
				if key := Normalize(alias); key != "" {
					names[kind][key] = id
				}
			}
		}
	}

	r.mu.Lock()
	r.names = names
	r.mu.Unlock()
	return nil
}

func loadAliases(path string) (map[Kind]map[string]uint8, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var config struct {
		Version string                     `json:"version"`
		Schema  string                     `json:"schema"`
		Aliases map[Kind]map[string]uint8 `json:"aliases"`
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrContextFailedToParseConfig+": %w", path, err)
	}
	if config.Version == "" {
		return nil, fmt.Errorf(ErrMsgMissingVersionField, path)
	}
	if config.Schema != SchemaAliases {
		return nil, fmt.Errorf(ErrMsgInvalidSchema, path, SchemaAliases, config.Schema)
	}
	return config.Aliases, nil
}
