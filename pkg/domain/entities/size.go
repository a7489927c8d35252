package entities

import (
	"sort"
	"strconv"
	"strings"
)

// SizeLabel identifies a garment size (e.g. "32", "34L", "XL")
type SizeLabel string

// Quantity represents an integer quantity of garment units
type Quantity int64

// DefaultSizeRun is the size run a new size group starts with
var DefaultSizeRun = []SizeLabel{"S", "M", "L", "XL", "XXL"}

// presetSizeOrder fixes the relative order of the standard apparel run so
// preset sizes interleave correctly with custom labels already present
var presetSizeOrder = map[SizeLabel]int{
	"XXS": 0, "XS": 1, "S": 2, "M": 3, "L": 4,
	"XL": 5, "XXL": 6, "3XL": 7, "4XL": 8, "5XL": 9, "6XL": 10,
}

// ParseQuantity converts a raw quantity string to a Quantity.
// Blank or non-numeric input contributes 0; fractional input truncates.
func ParseQuantity(raw string) Quantity {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Quantity(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Quantity(f)
	}
	return 0
}

// CompareSizeLabels compares two size labels for display and key ordering.
// Returns: -1 if a < b, 0 if equal, 1 if a > b.
// Numeric labels compare numerically, preset labels by run position,
// everything else lexicographically.
func CompareSizeLabels(a, b SizeLabel) int {
	if a == b {
		return 0
	}

	na, aNum := parseNumericSize(a)
	nb, bNum := parseNumericSize(b)
	if aNum && bNum {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}

	pa, aPreset := presetSizeOrder[a]
	pb, bPreset := presetSizeOrder[b]
	if aPreset && bPreset {
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(string(a), string(b))
}

// SortSizeLabels sorts labels in place using CompareSizeLabels
func SortSizeLabels(labels []SizeLabel) {
	sort.SliceStable(labels, func(i, j int) bool {
		return CompareSizeLabels(labels[i], labels[j]) < 0
	})
}

// parseNumericSize extracts the integer value of a purely numeric size label
func parseNumericSize(label SizeLabel) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(string(label)), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
