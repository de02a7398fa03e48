// Package pattern scans the farm grid for spatial crop arrangements around a
// target cell. Only mature crops take part in any pattern.
package pattern

import (
	"github.com/osse101/FarmEconomy_Go/internal/crop"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/synergy"
)

type offset struct{ dr, dc int }

// Orthogonal neighbours in scan order: up, down, left, right.
var orthogonal = [4]offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

var kingMoves = [8]offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Detect returns every pattern the target cell takes part in, in identifier order.
// CompanionPlanting is never returned here; see CheckCompanion.
func Detect(g *domain.Grid, row, col int, now int64) []domain.PatternType {
	if _, ok := cropAt(g, row, col, now); !ok {
		return nil
	}

	checks := []struct {
		pattern domain.PatternType
		match   func(*domain.Grid, int, int, int64) bool
	}{
		{domain.PatternMonocultureRow, monocultureRow},
		{domain.PatternMonocultureBlock, monocultureBlock},
		{domain.PatternCropDiversity, cropDiversity},
		{domain.PatternCrossPattern, crossPattern},
		{domain.PatternCheckerboard, checkerboard},
		{domain.PatternPerimeterDefense, perimeterDefense},
		{domain.PatternRotationSequence, rotationSequence},
	}

	var found []domain.PatternType
	for _, c := range checks {
		if c.match(g, row, col, now) {
			found = append(found, c.pattern)
		}
	}
	return found
}

// CheckCompanion returns the crop of the first orthogonal neighbour that forms
// a companion pair with the target.
func CheckCompanion(g *domain.Grid, row, col int, now int64) (domain.CropType, bool) {
	center, ok := cropAt(g, row, col, now)
	if !ok {
		return domain.CropNone, false
	}
	for _, o := range orthogonal {
		n, ok := cropAt(g, row+o.dr, col+o.dc, now)
		if !ok {
			continue
		}
		if _, ok := synergy.Companion(center, n); ok {
			return n, true
		}
	}
	return domain.CropNone, false
}

// cropAt returns the crop at (row, col) if it is on the grid, planted and mature.
func cropAt(g *domain.Grid, row, col int, now int64) (domain.CropType, bool) {
	p, ok := g.At(row, col)
	if !ok || !crop.IsMature(p, now) {
		return domain.CropNone, false
	}
	return p.Crop, true
}

func monocultureRow(g *domain.Grid, row, col int, now int64) bool {
	target, _ := cropAt(g, row, col, now)
	return runLength(g, row, col, 0, 1, target, now) >= 3 ||
		runLength(g, row, col, 1, 0, target, now) >= 3
}

// runLength counts contiguous cells equal to target through (row, col) along (dr, dc).
func runLength(g *domain.Grid, row, col, dr, dc int, target domain.CropType, now int64) int {
	n := 1
	for _, sign := range [2]int{-1, 1} {
		for i := 1; ; i++ {
			c, ok := cropAt(g, row+sign*i*dr, col+sign*i*dc, now)
			if !ok || c != target {
				break
			}
			n++
		}
	}
	return n
}

func monocultureBlock(g *domain.Grid, row, col int, now int64) bool {
	target, _ := cropAt(g, row, col, now)
	for _, top := range [2]int{row - 1, row} {
		for _, left := range [2]int{col - 1, col} {
			if allEqual(g, top, left, 2, target, now) {
				return true
			}
		}
	}
	return false
}

func allEqual(g *domain.Grid, top, left, size int, target domain.CropType, now int64) bool {
	for r := top; r < top+size; r++ {
		for c := left; c < left+size; c++ {
			got, ok := cropAt(g, r, c, now)
			if !ok || got != target {
				return false
			}
		}
	}
	return true
}

func neighbours(g *domain.Grid, row, col int, now int64, offsets []offset) ([]domain.CropType, bool) {
	out := make([]domain.CropType, 0, len(offsets))
	for _, o := range offsets {
		c, ok := cropAt(g, row+o.dr, col+o.dc, now)
		if !ok {
			return nil, false
		}
		out = append(out, c)
	}
	return out, true
}

func cropDiversity(g *domain.Grid, row, col int, now int64) bool {
	center, _ := cropAt(g, row, col, now)
	ns, ok := neighbours(g, row, col, now, orthogonal[:])
	if !ok {
		return false
	}
	for _, n := range ns {
		if n == center {
			return false
		}
	}
	return pairwiseDistinct(ns)
}

func crossPattern(g *domain.Grid, row, col int, now int64) bool {
	center, _ := cropAt(g, row, col, now)
	ns, ok := neighbours(g, row, col, now, orthogonal[:])
	if !ok {
		return false
	}
	for _, n := range ns {
		if n != center {
			return false
		}
	}
	return true
}

// checkerboard tries every 3x3 window that contains the target and fits on the grid.
func checkerboard(g *domain.Grid, row, col int, now int64) bool {
	for top := row - 2; top <= row; top++ {
		for left := col - 2; left <= col; left++ {
			if top < 0 || left < 0 || top+2 >= domain.GridSize || left+2 >= domain.GridSize {
				continue
			}
			if isCheckerboard(g, top, left, now) {
				return true
			}
		}
	}
	return false
}

func isCheckerboard(g *domain.Grid, top, left int, now int64) bool {
	var even, odd domain.CropType
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c, ok := cropAt(g, top+i, left+j, now)
			if !ok {
				return false
			}
			slot := &odd
			if (i+j)%2 == 0 {
				slot = &even
			}
			if *slot == domain.CropNone {
				*slot = c
			} else if *slot != c {
				return false
			}
		}
	}
	return even != odd
}

func perimeterDefense(g *domain.Grid, row, col int, now int64) bool {
	if row < 1 || row > domain.GridSize-2 || col < 1 || col > domain.GridSize-2 {
		return false
	}
	center, _ := cropAt(g, row, col, now)
	ns, ok := neighbours(g, row, col, now, kingMoves[:])
	if !ok {
		return false
	}
	for _, n := range ns {
		if n == center {
			return false
		}
	}
	return true
}

func rotationSequence(g *domain.Grid, row, col int, now int64) bool {
	return rotationWindow(g, row, col, 0, 1, now) || rotationWindow(g, row, col, 1, 0, now)
}

// rotationWindow checks the four length-4 windows through (row, col) along (dr, dc).
func rotationWindow(g *domain.Grid, row, col, dr, dc int, now int64) bool {
	for start := -3; start <= 0; start++ {
		crops := make([]domain.CropType, 0, 4)
		for k := start; k < start+4; k++ {
			c, ok := cropAt(g, row+k*dr, col+k*dc, now)
			if !ok {
				break
			}
			crops = append(crops, c)
		}
		if len(crops) == 4 && pairwiseDistinct(crops) {
			return true
		}
	}
	return false
}

func pairwiseDistinct(crops []domain.CropType) bool {
	seen := make(map[domain.CropType]struct{}, len(crops))
	for _, c := range crops {
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}
