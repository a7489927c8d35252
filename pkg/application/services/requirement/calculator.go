// Package requirement computes the material quantities a BOM component
// needs for an order. Every function is pure over snapshots of its inputs
// and never fails: dangling usage keys, unmatched group names, and missing
// buckets all degrade to a zero contribution.
package requirement

import (
	"github.com/shopspring/decimal"

	"github.com/stitchworks/orderplan/pkg/application/dto"
	"github.com/stitchworks/orderplan/pkg/application/services/breakdown"
	"github.com/stitchworks/orderplan/pkg/domain/entities"
)

var hundred = decimal.NewFromInt(100)

// RequiredQuantity computes the total quantity of a component required for
// the order, inclusive of wastage. The ceiling is applied exactly once,
// after the wastage markup, never per usage key.
func RequiredQuantity(
	b entities.OrderBreakdown,
	groups []*entities.SizeGroup,
	component *entities.BOMComponent,
) entities.Quantity {
	base := baseQuantity(b, groups, component)
	return ceil(base.Mul(wastageMultiplier(component.WastagePercent)))
}

// LineRequirement computes the requirement contributed by a single usage
// key: applicable order quantity times rate times the wastage multiplier,
// ceiling-rounded on its own. Because each line rounds independently, the
// lines of a component may sum to slightly more than RequiredQuantity;
// that drift is documented display behavior, not a defect. Keys absent
// from the component's usage table contribute 0.
func LineRequirement(
	b entities.OrderBreakdown,
	groups []*entities.SizeGroup,
	component *entities.BOMComponent,
	key string,
) entities.Quantity {
	rate, ok := component.Usage[key]
	if !ok {
		return 0
	}
	applicable := applicableQuantity(b, groups, component, key)
	line := decimal.NewFromInt(int64(applicable)).Mul(rate)
	return ceil(line.Mul(wastageMultiplier(component.WastagePercent)))
}

// ComponentReport builds the per-key requirement breakdown of one component
// for the printable material summary
func ComponentReport(
	b entities.OrderBreakdown,
	groups []*entities.SizeGroup,
	component *entities.BOMComponent,
) dto.ComponentRequirement {
	report := dto.ComponentRequirement{
		ComponentID:    component.ID,
		Name:           component.Name,
		VendorRef:      component.VendorRef,
		Category:       component.Category,
		CategoryLabel:  component.Category.String(),
		RuleLabel:      component.Rule.Label(),
		UnitOfMeasure:  component.UnitOfMeasure,
		WastagePercent: component.WastagePercent,
		TotalRequired:  RequiredQuantity(b, groups, component),
	}

	for _, key := range component.UsageKeys() {
		report.Lines = append(report.Lines, dto.RequirementLine{
			Key:           key,
			ApplicableQty: applicableQuantity(b, groups, component, key),
			Rate:          component.Usage[key],
			Required:      LineRequirement(b, groups, component, key),
		})
	}

	return report
}

// MaterialReport builds the complete requirement summary for an order,
// grouped by process category in report order
func MaterialReport(order *entities.Order) dto.MaterialReport {
	b := breakdown.ComputeBreakdown(order.SizeGroups)

	report := dto.MaterialReport{
		OrderID:       order.ID,
		StyleRef:      order.StyleRef,
		Buyer:         order.Buyer,
		TotalQuantity: b.TotalQuantity,
		Breakdown:     b,
	}

	for _, category := range entities.ProcessCategories {
		section := dto.ReportSection{
			Category:      category,
			CategoryLabel: category.String(),
		}
		for _, component := range order.Components {
			if component.Category != category {
				continue
			}
			section.Components = append(section.Components, ComponentReport(b, order.SizeGroups, component))
		}
		if len(section.Components) > 0 {
			report.Sections = append(report.Sections, section)
		}
	}

	return report
}

// baseQuantity computes the pre-wastage consumption of a component by
// dispatching exhaustively on its rule
func baseQuantity(
	b entities.OrderBreakdown,
	groups []*entities.SizeGroup,
	component *entities.BOMComponent,
) decimal.Decimal {
	switch component.Rule {
	case entities.UsageUniform:
		rate := component.Usage[entities.GenericUsageKey]
		return decimal.NewFromInt(int64(b.TotalQuantity)).Mul(rate)

	case entities.UsageByColor, entities.UsageBySizeGroup,
		entities.UsageByIndividualSize, entities.UsageByCustomGroup:
		base := decimal.Zero
		for key, rate := range component.Usage {
			applicable := applicableQuantity(b, groups, component, key)
			base = base.Add(decimal.NewFromInt(int64(applicable)).Mul(rate))
		}
		return base

	default:
		return decimal.Zero
	}
}

// applicableQuantity resolves the order quantity one usage key applies to.
// Unresolvable keys return 0.
func applicableQuantity(
	b entities.OrderBreakdown,
	groups []*entities.SizeGroup,
	component *entities.BOMComponent,
	key string,
) entities.Quantity {
	switch component.Rule {
	case entities.UsageUniform:
		if key != entities.GenericUsageKey {
			return 0
		}
		return b.TotalQuantity

	case entities.UsageByColor:
		return b.ColorQuantity(key)

	case entities.UsageBySizeGroup:
		return breakdown.GroupTotal(groups, key)

	case entities.UsageByIndividualSize:
		return b.SizeQuantity(entities.SizeLabel(key))

	case entities.UsageByCustomGroup:
		// A size claimed by several custom keys counts toward each;
		// exclusivity is an authoring-time guard only.
		var total entities.Quantity
		for _, size := range entities.SplitCustomGroupKey(key) {
			total += b.SizeQuantity(size)
		}
		return total

	default:
		return 0
	}
}

// wastageMultiplier converts a wastage percentage into a markup factor
func wastageMultiplier(percent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(percent.Div(hundred))
}

// ceil rounds a decimal up to the next whole quantity
func ceil(d decimal.Decimal) entities.Quantity {
	return entities.Quantity(d.Ceil().IntPart())
}
