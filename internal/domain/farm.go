package domain

import "time"

// Plot is one cell of the farm grid.
type Plot struct {
	Crop                 CropType `json:"crop"`
	PlantedAt            int64    `json:"planted_at"`
	Fertility            uint8    `json:"fertility"`
	LastCrop             CropType `json:"last_crop"`
	RestorativeBonusUsed bool     `json:"restorative_bonus_used"`
	PlantedInSeason      *Season  `json:"planted_in_season,omitempty"`
	FallowSince          int64    `json:"fallow_since"`
}

// Empty reports whether no crop is growing on the plot.
func (p *Plot) Empty() bool {
	return p.Crop == CropNone
}

// ClearCrop removes the growing crop and keeps LastCrop for rotation.
func (p *Plot) ClearCrop(now int64) {
	p.Crop = CropNone
	p.PlantedAt = 0
	p.RestorativeBonusUsed = false
	p.PlantedInSeason = nil
	p.FallowSince = now
}

// Grid is the row-major 5x5 farm.
type Grid [TileCount]Plot

// At returns the plot at (row, col), or false when the coordinate is off the grid.
func (g *Grid) At(row, col int) (*Plot, bool) {
	idx, ok := Index(row, col)
	if !ok {
		return nil, false
	}
	return &g[idx], true
}

// ToolInventory holds consumable tool counters.
type ToolInventory struct {
	WateringCanUses uint8  `json:"watering_can_uses"`
	Fertilizer      uint16 `json:"fertilizer"`
	PremiumSeeds    uint16 `json:"premium_seeds"`
}

// ResourceStock holds raw resource counters.
type ResourceStock struct {
	Wood  uint16 `json:"wood"`
	Stone uint16 `json:"stone"`
	Fiber uint16 `json:"fiber"`
	Seeds uint16 `json:"seeds"`
}

// Get returns the counter for t.
func (r *ResourceStock) Get(t ResourceType) uint16 {
	switch t {
	case ResourceWood:
		return r.Wood
	case ResourceStone:
		return r.Stone
	case ResourceFiber:
		return r.Fiber
	case ResourceSeeds:
		return r.Seeds
	}
	return 0
}

// Set overwrites the counter for t.
func (r *ResourceStock) Set(t ResourceType, v uint16) {
	switch t {
	case ResourceWood:
		r.Wood = v
	case ResourceStone:
		r.Stone = v
	case ResourceFiber:
		r.Fiber = v
	case ResourceSeeds:
		r.Seeds = v
	}
}

// StructureCounts holds permanent crafted structures.
type StructureCounts struct {
	CompostBins   uint8 `json:"compost_bins"`
	Scarecrows    uint8 `json:"scarecrows"`
	Fences        uint8 `json:"fences"`
	Sprinklers    uint8 `json:"sprinklers"`
	AdvancedTools uint8 `json:"advanced_tools"`
}

// CraftingJob is the single in-flight timed craft.
type CraftingJob struct {
	ItemID    ItemID `json:"item_id"`
	StartedAt int64  `json:"started_at"`
	Duration  int64  `json:"duration"`
}

// ReadyAt returns the timestamp at which the job can be claimed.
func (j CraftingJob) ReadyAt() int64 {
	return j.StartedAt + j.Duration
}

// PlayerLedger is the per-player aggregate mutated by every gameplay operation.
type PlayerLedger struct {
	PlayerID string `json:"player_id"`
	Coins    uint64 `json:"coins"`
	Plots    Grid   `json:"plots"`

	WaterLevels         [TileCount]uint8 `json:"water_levels"`
	LastWatered         [TileCount]int64 `json:"last_watered"`
	LastWaterDecayCheck int64            `json:"last_water_decay_check"`

	Tools      ToolInventory   `json:"tools"`
	Resources  ResourceStock   `json:"resources"`
	Structures StructureCounts `json:"structures"`

	CraftingJob           *CraftingJob            `json:"crafting_job,omitempty"`
	LastGatherTime        [NumResourceTypes]int64 `json:"last_gather_time"`
	LastCompostCollection int64                   `json:"last_compost_collection"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPlayerLedger returns a freshly initialized ledger for playerID.
func NewPlayerLedger(playerID string, now time.Time) *PlayerLedger {
	ts := now.Unix()
	l := &PlayerLedger{
		PlayerID:            playerID,
		LastWaterDecayCheck: ts,
		Tools: ToolInventory{
			WateringCanUses: MaxWateringCanUses,
			Fertilizer:      StartingFertilizer,
		},
		Resources: ResourceStock{
			Wood:  StartingWood,
			Stone: StartingStone,
			Fiber: StartingFiber,
			Seeds: StartingSeeds,
		},
		LastCompostCollection: ts,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	for i := range l.Plots {
		l.Plots[i].Fertility = DefaultPlayerFertility
		l.Plots[i].FallowSince = ts
		l.WaterLevels[i] = DefaultWaterLevel
	}
	return l
}

// Clone returns a deep copy of the ledger.
func (l *PlayerLedger) Clone() *PlayerLedger {
	c := *l
	for i := range c.Plots {
		if s := l.Plots[i].PlantedInSeason; s != nil {
			c.Plots[i].PlantedInSeason = SeasonPtr(*s)
		}
	}
	if l.CraftingJob != nil {
		job := *l.CraftingJob
		c.CraftingJob = &job
	}
	return &c
}

// SeasonClock is the global calendar shared by every player.
type SeasonClock struct {
	CurrentSeason  Season    `json:"current_season"`
	DaysPassed     uint32    `json:"days_passed"`
	SeasonStartDay uint32    `json:"season_start_day"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DaysIntoSeason returns how many days the current season has run.
func (c SeasonClock) DaysIntoSeason() uint32 {
	if c.DaysPassed < c.SeasonStartDay {
		return 0
	}
	return c.DaysPassed - c.SeasonStartDay
}
