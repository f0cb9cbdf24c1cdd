package planning

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Claim records that a programming record occupies a plot for a season and
// epoch. A nil EpochID is the "no epoch" value: it equals another nil and
// differs from every concrete epoch.
type Claim struct {
	PlotID   uint
	SeasonID uint
	EpochID  *uint
	RecordID uint
}

// Occupies reports whether the claim holds the plot for exactly (season, epoch).
func (c Claim) Occupies(seasonID uint, epochID *uint) bool {
	return c.SeasonID == seasonID && SameEpoch(c.EpochID, epochID)
}

// SameEpoch is null-safe epoch equality.
func SameEpoch(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Conflict is an occupied plot together with the record that holds it.
type Conflict struct {
	PlotID   uint
	PlotName string
	RecordID uint
}

// PlotConflictError lists every conflicting plot. It matches ErrPlotConflict.
type PlotConflictError struct {
	Conflicts []Conflict
}

func (e *PlotConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPlotConflict.Error(), strings.Join(e.PlotNames(), ", "))
}

func (e *PlotConflictError) Unwrap() error {
	return ErrPlotConflict
}

func (e *PlotConflictError) PlotIDs() []uint {
	ids := make([]uint, len(e.Conflicts))
	for i, c := range e.Conflicts {
		ids[i] = c.PlotID
	}
	return ids
}

func (e *PlotConflictError) PlotNames() []string {
	names := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		names[i] = c.PlotName
	}
	return names
}

// FindConflictsIn filters claims down to those occupying one of plotIDs for
// (seasonID, epochID), ignoring claims held by excludeRecordID. One claim
// per plot is returned, ordered by plot id.
func FindConflictsIn(claims []Claim, plotIDs []uint, seasonID uint, epochID *uint, excludeRecordID uint) []Claim {
	wanted := make(map[uint]bool, len(plotIDs))
	for _, id := range plotIDs {
		wanted[id] = true
	}

	byPlot := make(map[uint]Claim)
	for _, c := range claims {
		if !wanted[c.PlotID] || !c.Occupies(seasonID, epochID) {
			continue
		}
		if excludeRecordID != 0 && c.RecordID == excludeRecordID {
			continue
		}
		if _, seen := byPlot[c.PlotID]; !seen {
			byPlot[c.PlotID] = c
		}
	}

	out := make([]Claim, 0, len(byPlot))
	for _, c := range byPlot {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlotID < out[j].PlotID })
	return out
}

// ClaimReader loads existing claims. Implementations may return claims for
// other epochs; the detector filters them.
type ClaimReader interface {
	ListClaims(ctx context.Context, plotIDs []uint, seasonID uint) ([]Claim, error)
}

// PlotNamer resolves plot display names.
type PlotNamer interface {
	PlotNames(ctx context.Context, plotIDs []uint) (map[uint]string, error)
}

// Detector answers whether plots are still available for a season and epoch.
type Detector struct {
	claims ClaimReader
	plots  PlotNamer
}

func NewDetector(claims ClaimReader, plots PlotNamer) *Detector {
	return &Detector{claims: claims, plots: plots}
}

// FindConflicts returns the occupied plots among plotIDs. Claims held by
// excludeRecordID (the record being edited) never count.
func (d *Detector) FindConflicts(ctx context.Context, plotIDs []uint, seasonID uint, epochID *uint, excludeRecordID uint) ([]Conflict, error) {
	if len(plotIDs) == 0 {
		return nil, nil
	}

	claims, err := d.claims.ListClaims(ctx, plotIDs, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plot claims: %w", err)
	}

	occupied := FindConflictsIn(claims, plotIDs, seasonID, epochID, excludeRecordID)
	if len(occupied) == 0 {
		return nil, nil
	}

	ids := make([]uint, len(occupied))
	for i, c := range occupied {
		ids[i] = c.PlotID
	}
	names, err := d.plots.PlotNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve plot names: %w", err)
	}

	conflicts := make([]Conflict, len(occupied))
	for i, c := range occupied {
		name := names[c.PlotID]
		if name == "" {
			name = fmt.Sprintf("#%d", c.PlotID)
		}
		conflicts[i] = Conflict{PlotID: c.PlotID, PlotName: name, RecordID: c.RecordID}
	}
	return conflicts, nil
}

// Check returns a *PlotConflictError when any plot is occupied.
func (d *Detector) Check(ctx context.Context, plotIDs []uint, seasonID uint, epochID *uint, excludeRecordID uint) error {
	conflicts, err := d.FindConflicts(ctx, plotIDs, seasonID, epochID, excludeRecordID)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &PlotConflictError{Conflicts: conflicts}
	}
	return nil
}
