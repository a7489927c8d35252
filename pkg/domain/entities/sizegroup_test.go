package entities

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewSizeGroup_Defaults(t *testing.T) {
	group := NewSizeGroup("Main")

	if group.GroupName != "Main" {
		t.Errorf("expected group name Main, got %s", group.GroupName)
	}
	if !reflect.DeepEqual(group.Sizes, DefaultSizeRun) {
		t.Errorf("expected default size run %v, got %v", DefaultSizeRun, group.Sizes)
	}
	if len(group.Colors) != 1 {
		t.Fatalf("expected one placeholder color, got %d", len(group.Colors))
	}
	if group.Colors[0].ID == "" {
		t.Error("placeholder color must have a stable id")
	}
}

func TestSizeGroup_TotalQuantity(t *testing.T) {
	group := NewSizeGroup("Main")
	red := group.AddColor("Red")
	blue := group.AddColor("Blue")

	group.SetQuantity(red.ID, "S", "100")
	group.SetQuantity(red.ID, "M", "")
	group.SetQuantity(red.ID, "L", "abc")
	group.SetQuantity(blue.ID, "S", "50")
	group.SetQuantity(blue.ID, "XL", "25")

	if got := group.TotalQuantity(); got != 175 {
		t.Errorf("TotalQuantity() = %d, want 175", got)
	}
}

func TestSizeGroup_TotalValue(t *testing.T) {
	group := NewSizeGroup("Main")
	red := group.AddColor("Red")
	group.SetQuantity(red.ID, "S", "10")
	group.UnitPrice = decimal.RequireFromString("4.25")

	want := decimal.RequireFromString("42.5")
	if got := group.TotalValue(); !got.Equal(want) {
		t.Errorf("TotalValue() = %s, want %s", got, want)
	}
}

func TestSizeGroup_RemoveColorPurgesRow(t *testing.T) {
	group := NewSizeGroup("Main")
	red := group.AddColor("Red")
	blue := group.AddColor("Blue")

	group.SetQuantity(red.ID, "S", "300")
	group.SetQuantity(blue.ID, "S", "200")

	group.RemoveColor(red.ID)

	if _, ok := group.Breakdown[red.ID]; ok {
		t.Error("removed color must not keep a breakdown row")
	}
	if got := group.TotalQuantity(); got != 200 {
		t.Errorf("TotalQuantity() after color removal = %d, want 200", got)
	}
	if _, ok := group.ColorName(red.ID); ok {
		t.Error("removed color id must not resolve")
	}
}

func TestSizeGroup_RemoveSizeKeepsOrphanedCells(t *testing.T) {
	group := NewSizeGroup("Main")
	red := group.AddColor("Red")
	group.SetQuantity(red.ID, "M", "75")

	group.RemoveSize("M")

	if group.HasSize("M") {
		t.Error("size M should be removed from the active list")
	}
	if raw := group.Breakdown[red.ID]["M"]; raw != "75" {
		t.Errorf("orphaned cell = %q, want %q", raw, "75")
	}

	// Re-adding the size restores the previously entered quantity
	group.AddSize("M")
	if got := group.QuantityAt(red.ID, "M"); got != 75 {
		t.Errorf("restored quantity = %d, want 75", got)
	}
}

func TestSizeGroup_AddSize(t *testing.T) {
	group := NewSizeGroup("Main")

	// Duplicate add is a no-op
	before := len(group.Sizes)
	group.AddSize("M")
	if len(group.Sizes) != before {
		t.Errorf("duplicate AddSize changed size count: %d -> %d", before, len(group.Sizes))
	}

	// Custom numeric label interleaves with the preset run by sort order
	group.AddSize("3XL")
	want := []SizeLabel{"S", "M", "L", "XL", "XXL", "3XL"}
	if !reflect.DeepEqual(group.Sizes, want) {
		t.Errorf("sizes after AddSize = %v, want %v", group.Sizes, want)
	}
}

func TestSizeGroup_ToggleSize(t *testing.T) {
	group := NewSizeGroup("Main")

	group.ToggleSize("M")
	if group.HasSize("M") {
		t.Error("toggle should remove an active size")
	}
	group.ToggleSize("M")
	if !group.HasSize("M") {
		t.Error("toggle should re-add a removed size")
	}
}

func TestSizeGroup_RenameColorKeepsQuantities(t *testing.T) {
	group := NewSizeGroup("Main")
	red := group.AddColor("Red")
	group.SetQuantity(red.ID, "S", "40")

	group.RenameColor(red.ID, "Crimson")

	name, ok := group.ColorName(red.ID)
	if !ok || name != "Crimson" {
		t.Errorf("renamed color = %q (ok=%v), want Crimson", name, ok)
	}
	if got := group.QuantityAt(red.ID, "S"); got != 40 {
		t.Errorf("quantity after rename = %d, want 40", got)
	}
}
