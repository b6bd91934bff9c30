package dirty

import (
	"slices"

	"github.com/dshills/gridsketch/internal/grid"
)

// ChangeType classifies what caused cells to become dirty.
type ChangeType uint8

const (
	// ChangeCells indicates committed cell content changed.
	ChangeCells ChangeType = iota

	// ChangeSelection indicates the selection rectangle moved.
	ChangeSelection

	// ChangePreview indicates the tool preview changed.
	ChangePreview

	// ChangeView indicates zoom or pan changed.
	ChangeView

	// ChangeResize indicates the grid was resized.
	ChangeResize
)

// String returns the string representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeCells:
		return "cells"
	case ChangeSelection:
		return "selection"
	case ChangePreview:
		return "preview"
	case ChangeView:
		return "view"
	case ChangeResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Change is a single invalidation event.
type Change struct {
	Type   ChangeType
	Region Region
}

// Tracker collects dirty cells of a grid and coalesces them into regions.
// It is not safe for concurrent use.
type Tracker struct {
	regions []Region

	// fullRedraw means every cell needs repainting.
	fullRedraw bool

	// maxRegions bounds the region list; beyond it regions collapse into
	// their bounding box.
	maxRegions int

	width  int
	height int

	// coalesceThreshold is the dirty fraction of the grid that switches
	// to a full redraw.
	coalesceThreshold float64
}

// NewTracker creates a tracker for a width × height grid. A new tracker
// starts with a full redraw pending since nothing has been painted yet.
func NewTracker(width, height int) *Tracker {
	return &Tracker{
		regions:           make([]Region, 0, 16),
		maxRegions:        32,
		width:             max(width, 0),
		height:            max(height, 0),
		coalesceThreshold: 0.5,
		fullRedraw:        true,
	}
}

// SetSize updates the grid dimensions and schedules a full redraw.
func (t *Tracker) SetSize(width, height int) {
	t.width = max(width, 0)
	t.height = max(height, 0)
	t.MarkFullRedraw()
}

// Size returns the grid dimensions the tracker clips to.
func (t *Tracker) Size() (width, height int) {
	return t.width, t.height
}

// MarkFullRedraw marks every cell dirty.
func (t *Tracker) MarkFullRedraw() {
	t.fullRedraw = true
	t.regions = t.regions[:0]
}

// MarkCell marks one cell dirty.
func (t *Tracker) MarkCell(p grid.Point) {
	t.add(CellRegion(p))
}

// MarkRect marks every cell of r dirty.
func (t *Tracker) MarkRect(r grid.Rect) {
	t.add(Region{r})
}

// MarkOps marks the cells touched by ops dirty. Ops on one row that form
// a contiguous run are recorded as one region.
func (t *Tracker) MarkOps(ops []grid.DrawOp) {
	if t.fullRedraw || len(ops) == 0 {
		return
	}
	run := CellRegion(ops[0].At())
	for _, op := range ops[1:] {
		p := op.At()
		if p.Y == run.Y && p.X == run.Right() {
			run.Width++
			continue
		}
		t.add(run)
		run = CellRegion(p)
	}
	t.add(run)
}

// MarkChange marks a region dirty based on a change event.
func (t *Tracker) MarkChange(change Change) {
	switch change.Type {
	case ChangeView:
		t.MarkFullRedraw()
	case ChangeResize:
		t.SetSize(change.Region.Width, change.Region.Height)
	default:
		t.add(change.Region)
	}
}

func (t *Tracker) add(r Region) {
	if t.fullRedraw {
		return
	}
	r = Region{r.Intersect(grid.Rect{Width: t.width, Height: t.height})}
	if r.Empty() {
		return
	}

	for i := range t.regions {
		if merged, ok := t.regions[i].Merge(r); ok {
			t.regions[i] = merged
			t.coalesce()
			t.checkThreshold()
			return
		}
	}

	t.regions = append(t.regions, r)
	if len(t.regions) > t.maxRegions {
		t.coalesce()
	}
	if len(t.regions) > t.maxRegions {
		t.collapse()
	}
	t.checkThreshold()
}

// coalesce merges overlapping or adjacent regions until none remain.
func (t *Tracker) coalesce() {
	changed := true
	for changed {
		changed = false
	outer:
		for i := 0; i < len(t.regions); i++ {
			for j := i + 1; j < len(t.regions); j++ {
				if merged, ok := t.regions[i].Merge(t.regions[j]); ok {
					t.regions[i] = merged
					t.regions = slices.Delete(t.regions, j, j+1)
					changed = true
					break outer
				}
			}
		}
	}
}

// collapse replaces all regions with their bounding box.
func (t *Tracker) collapse() {
	var box grid.Rect
	for _, r := range t.regions {
		box = box.Union(r.Rect)
	}
	t.regions = append(t.regions[:0], Region{box})
}

func (t *Tracker) checkThreshold() {
	if t.dirtyRatio() > t.coalesceThreshold {
		t.MarkFullRedraw()
	}
}

func (t *Tracker) dirtyRatio() float64 {
	total := float64(t.width) * float64(t.height)
	if total == 0 {
		return 0
	}
	area := 0
	for _, r := range t.regions {
		area += r.Area()
	}
	return float64(area) / total
}

// IsDirty reports whether anything needs repainting.
func (t *Tracker) IsDirty() bool {
	return t.fullRedraw || len(t.regions) > 0
}

// NeedsFullRedraw reports whether every cell needs repainting.
func (t *Tracker) NeedsFullRedraw() bool {
	return t.fullRedraw
}

// Regions returns a copy of the dirty regions. A pending full redraw is
// reported as one region covering the grid.
func (t *Tracker) Regions() []Region {
	if t.fullRedraw {
		if t.width == 0 || t.height == 0 {
			return nil
		}
		return []Region{{grid.Rect{Width: t.width, Height: t.height}}}
	}
	return slices.Clone(t.regions)
}

// IsCellDirty reports whether p needs repainting.
func (t *Tracker) IsCellDirty(p grid.Point) bool {
	if t.fullRedraw {
		return p.X >= 0 && p.X < t.width && p.Y >= 0 && p.Y < t.height
	}
	for _, r := range t.regions {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Clear forgets all dirty state.
func (t *Tracker) Clear() {
	t.regions = t.regions[:0]
	t.fullRedraw = false
}

// SetMaxRegions sets the region count beyond which regions collapse.
// Values below 1 are raised to 1.
func (t *Tracker) SetMaxRegions(n int) {
	t.maxRegions = max(n, 1)
}

// SetCoalesceThreshold sets the dirty fraction that triggers a full
// redraw, clamped to [0, 1].
func (t *Tracker) SetCoalesceThreshold(threshold float64) {
	t.coalesceThreshold = min(max(threshold, 0), 1)
}

// Stats returns statistics about the tracker state.
func (t *Tracker) Stats() TrackerStats {
	return TrackerStats{
		RegionCount:   len(t.regions),
		FullRedraw:    t.fullRedraw,
		DirtyRatio:    t.dirtyRatio(),
		Width:         t.width,
		Height:        t.height,
		MaxRegions:    t.maxRegions,
		CoalThreshold: t.coalesceThreshold,
	}
}

// TrackerStats contains statistics about the tracker state.
type TrackerStats struct {
	RegionCount   int
	FullRedraw    bool
	DirtyRatio    float64
	Width         int
	Height        int
	MaxRegions    int
	CoalThreshold float64
}
