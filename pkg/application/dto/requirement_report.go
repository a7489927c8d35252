package dto

import (
	"github.com/shopspring/decimal"

	"github.com/stitchworks/orderplan/pkg/domain/entities"
)

// RequirementLine is one usage-key row of a component's requirement
// breakdown. Required is independently ceiling-rounded for display, so the
// lines of a component may sum to slightly more than its TotalRequired.
type RequirementLine struct {
	Key           string            `json:"key"`
	ApplicableQty entities.Quantity `json:"applicableQty"`
	Rate          decimal.Decimal   `json:"rate"`
	Required      entities.Quantity `json:"required"`
}

// ComponentRequirement is the calculated requirement of one BOM component
type ComponentRequirement struct {
	ComponentID    string                   `json:"componentId"`
	Name           string                   `json:"name"`
	VendorRef      string                   `json:"vendorRef"`
	Category       entities.ProcessCategory `json:"-"`
	CategoryLabel  string                   `json:"category"`
	RuleLabel      string                   `json:"rule"`
	UnitOfMeasure  string                   `json:"unitOfMeasure"`
	WastagePercent decimal.Decimal          `json:"wastagePercent"`
	Lines          []RequirementLine        `json:"lines"`
	TotalRequired  entities.Quantity        `json:"totalRequired"`
}

// ReportSection groups component requirements by process category
type ReportSection struct {
	Category      entities.ProcessCategory `json:"-"`
	CategoryLabel string                   `json:"category"`
	Components    []ComponentRequirement   `json:"components"`
}

// MaterialReport is the complete printable material requirement summary
// for one order
type MaterialReport struct {
	OrderID       string                  `json:"orderId"`
	StyleRef      string                  `json:"styleRef"`
	Buyer         string                  `json:"buyer"`
	TotalQuantity entities.Quantity       `json:"totalQuantity"`
	Breakdown     entities.OrderBreakdown `json:"breakdown"`
	Sections      []ReportSection         `json:"sections"`
}
