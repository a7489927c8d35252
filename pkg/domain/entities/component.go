package entities

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GenericUsageKey is the single implicit usage key of the Uniform rule
const GenericUsageKey = "generic"

// ConsumptionRule determines how a component's consumption rate is keyed
// against order quantities
type ConsumptionRule int

const (
	UsageUniform ConsumptionRule = iota
	UsageByColor
	UsageBySizeGroup
	UsageByIndividualSize
	UsageByCustomGroup
)

// String method for ConsumptionRule enum
func (r ConsumptionRule) String() string {
	switch r {
	case UsageUniform:
		return "Uniform"
	case UsageByColor:
		return "ByColor"
	case UsageBySizeGroup:
		return "BySizeGroup"
	case UsageByIndividualSize:
		return "ByIndividualSize"
	case UsageByCustomGroup:
		return "ByCustomGroup"
	default:
		return "Unknown"
	}
}

// Label returns the human-readable rule name used on reports
func (r ConsumptionRule) Label() string {
	switch r {
	case UsageUniform:
		return "Uniform"
	case UsageByColor:
		return "By Color"
	case UsageBySizeGroup:
		return "By Size Group"
	case UsageByIndividualSize:
		return "By Individual Size"
	case UsageByCustomGroup:
		return "By Custom Group"
	default:
		return "Unknown"
	}
}

// ParseConsumptionRule parses a rule name as written in data files
func ParseConsumptionRule(s string) (ConsumptionRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform":
		return UsageUniform, nil
	case "bycolor":
		return UsageByColor, nil
	case "bysizegroup":
		return UsageBySizeGroup, nil
	case "byindividualsize":
		return UsageByIndividualSize, nil
	case "bycustomgroup":
		return UsageByCustomGroup, nil
	default:
		return UsageUniform, fmt.Errorf("invalid consumption rule: %s (expected: Uniform, ByColor, BySizeGroup, ByIndividualSize, or ByCustomGroup)", s)
	}
}

// ProcessCategory groups BOM components on the material requirement report
type ProcessCategory int

const (
	CategoryFabric ProcessCategory = iota
	CategoryTrim
	CategoryPacking
	CategoryEmbellishment
	CategoryWash
)

// String method for ProcessCategory enum
func (c ProcessCategory) String() string {
	switch c {
	case CategoryFabric:
		return "Fabric"
	case CategoryTrim:
		return "Trim"
	case CategoryPacking:
		return "Packing"
	case CategoryEmbellishment:
		return "Embellishment"
	case CategoryWash:
		return "Wash"
	default:
		return "Unknown"
	}
}

// ProcessCategories lists every category in report order
var ProcessCategories = []ProcessCategory{
	CategoryFabric,
	CategoryTrim,
	CategoryPacking,
	CategoryEmbellishment,
	CategoryWash,
}

// ParseProcessCategory parses a category name as written in data files
func ParseProcessCategory(s string) (ProcessCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fabric":
		return CategoryFabric, nil
	case "trim":
		return CategoryTrim, nil
	case "packing":
		return CategoryPacking, nil
	case "embellishment":
		return CategoryEmbellishment, nil
	case "wash":
		return CategoryWash, nil
	default:
		return CategoryFabric, fmt.Errorf("invalid process category: %s (expected: Fabric, Trim, Packing, Embellishment, or Wash)", s)
	}
}

// BOMComponent represents one bill-of-materials line item. Usage maps a
// rule-dependent key to a per-unit consumption rate:
//   - UsageUniform: the single key GenericUsageKey
//   - UsageByColor: color display names
//   - UsageBySizeGroup: size-group names
//   - UsageByIndividualSize: size labels
//   - UsageByCustomGroup: sorted comma-joined size-label lists
type BOMComponent struct {
	ID             string
	Name           string
	VendorRef      string
	Category       ProcessCategory
	UnitOfMeasure  string
	UnitPrice      decimal.Decimal
	Rule           ConsumptionRule
	Usage          map[string]decimal.Decimal
	WastagePercent decimal.Decimal
}

// NewBOMComponent creates a component with an empty usage table
func NewBOMComponent(name string, category ProcessCategory, rule ConsumptionRule) *BOMComponent {
	return &BOMComponent{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Rule:     rule,
		Usage:    make(map[string]decimal.Decimal),
	}
}

// SetRate sets the consumption rate for a usage key
func (c *BOMComponent) SetRate(key string, rate decimal.Decimal) {
	if c.Usage == nil {
		c.Usage = make(map[string]decimal.Decimal)
	}
	c.Usage[key] = rate
}

// UsageKeys returns the usage keys in deterministic report order: size
// labels in size order for the individual-size rule, lexicographic for
// everything else.
func (c *BOMComponent) UsageKeys() []string {
	keys := make([]string, 0, len(c.Usage))
	for key := range c.Usage {
		keys = append(keys, key)
	}
	if c.Rule == UsageByIndividualSize {
		sort.SliceStable(keys, func(i, j int) bool {
			return CompareSizeLabels(SizeLabel(keys[i]), SizeLabel(keys[j])) < 0
		})
	} else {
		sort.Strings(keys)
	}
	return keys
}

// MakeCustomGroupKey builds a custom-group usage key: the selected sizes
// sorted ascending and joined with ", "
func MakeCustomGroupKey(sizes []SizeLabel) string {
	sorted := make([]SizeLabel, len(sizes))
	copy(sorted, sizes)
	SortSizeLabels(sorted)

	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// SplitCustomGroupKey splits a custom-group usage key back into its size
// labels, stripping whitespace around each
func SplitCustomGroupKey(key string) []SizeLabel {
	var sizes []SizeLabel
	for _, part := range strings.Split(key, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		sizes = append(sizes, SizeLabel(trimmed))
	}
	return sizes
}
