package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SizeGroup represents a named colors x sizes quantity matrix with its own
// unit price. Quantities are stored as raw strings so an empty cell stays
// distinct from an explicit zero.
type SizeGroup struct {
	ID        string
	GroupName string
	UnitPrice decimal.Decimal
	Currency  string
	Sizes     []SizeLabel
	Colors    []ColorEntry
	Breakdown map[ColorID]map[SizeLabel]string
}

// NewSizeGroup creates a size group with the default size run and one
// placeholder color, matching what the authoring flow starts from.
func NewSizeGroup(name string) *SizeGroup {
	sizes := make([]SizeLabel, len(DefaultSizeRun))
	copy(sizes, DefaultSizeRun)

	return &SizeGroup{
		ID:        uuid.NewString(),
		GroupName: name,
		UnitPrice: decimal.Zero,
		Currency:  "USD",
		Sizes:     sizes,
		Colors:    []ColorEntry{NewColorEntry("")},
		Breakdown: make(map[ColorID]map[SizeLabel]string),
	}
}

// SetQuantity stores the raw cell value for a (color, size) pair.
// Any string is accepted; non-numeric values count as 0 downstream.
func (g *SizeGroup) SetQuantity(colorID ColorID, size SizeLabel, raw string) {
	if g.Breakdown == nil {
		g.Breakdown = make(map[ColorID]map[SizeLabel]string)
	}
	row, ok := g.Breakdown[colorID]
	if !ok {
		row = make(map[SizeLabel]string)
		g.Breakdown[colorID] = row
	}
	row[size] = raw
}

// QuantityAt returns the parsed quantity for a (color, size) cell
func (g *SizeGroup) QuantityAt(colorID ColorID, size SizeLabel) Quantity {
	return ParseQuantity(g.Breakdown[colorID][size])
}

// TotalQuantity sums every stored cell in the breakdown, counting blank and
// non-numeric cells as 0. The stored breakdown is the source of truth: cells
// orphaned by a size removal keep contributing until their row is deleted by
// a color removal.
func (g *SizeGroup) TotalQuantity() Quantity {
	var total Quantity
	for _, row := range g.Breakdown {
		for _, raw := range row {
			total += ParseQuantity(raw)
		}
	}
	return total
}

// TotalValue is the group total quantity times the unit price
func (g *SizeGroup) TotalValue() decimal.Decimal {
	return g.UnitPrice.Mul(decimal.NewFromInt(int64(g.TotalQuantity())))
}

// AddColor appends a new colorway and returns it
func (g *SizeGroup) AddColor(name string) ColorEntry {
	entry := NewColorEntry(name)
	g.Colors = append(g.Colors, entry)
	return entry
}

// RemoveColor removes a colorway and deletes its breakdown row.
// Unknown ids are ignored.
func (g *SizeGroup) RemoveColor(id ColorID) {
	for i, c := range g.Colors {
		if c.ID == id {
			g.Colors = append(g.Colors[:i], g.Colors[i+1:]...)
			break
		}
	}
	delete(g.Breakdown, id)
}

// RenameColor updates a colorway's display name. Quantities keyed by the
// color id are unaffected.
func (g *SizeGroup) RenameColor(id ColorID, name string) {
	for i := range g.Colors {
		if g.Colors[i].ID == id {
			g.Colors[i].Name = name
			return
		}
	}
}

// ColorName resolves a color id to its current display name
func (g *SizeGroup) ColorName(id ColorID) (string, bool) {
	for _, c := range g.Colors {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}

// HasSize reports whether a size label is in the group's active size list
func (g *SizeGroup) HasSize(size SizeLabel) bool {
	for _, s := range g.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// AddSize inserts a size label into the active size list, keeping the list
// sorted. Adding a duplicate is a no-op.
func (g *SizeGroup) AddSize(size SizeLabel) {
	if g.HasSize(size) {
		return
	}
	g.Sizes = append(g.Sizes, size)
	SortSizeLabels(g.Sizes)
}

// RemoveSize removes a size label from the active size list. Breakdown
// cells for the removed size are kept in storage; re-adding the label
// restores the previously entered quantities.
func (g *SizeGroup) RemoveSize(size SizeLabel) {
	for i, s := range g.Sizes {
		if s == size {
			g.Sizes = append(g.Sizes[:i], g.Sizes[i+1:]...)
			return
		}
	}
}

// ToggleSize adds the size if absent, removes it if present
func (g *SizeGroup) ToggleSize(size SizeLabel) {
	if g.HasSize(size) {
		g.RemoveSize(size)
		return
	}
	g.AddSize(size)
}
