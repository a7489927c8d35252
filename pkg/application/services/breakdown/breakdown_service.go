// Package breakdown aggregates the per-group quantity matrices of an order
// into its derived totals. The aggregation is a pure function over snapshots
// of the size groups: callers must not mutate a group mid-call, and repeated
// calls over unchanged input always produce the identical result.
package breakdown

import (
	"github.com/stitchworks/orderplan/pkg/domain/entities"
)

// ComputeBreakdown walks every stored (color, size, value) cell of every
// size group and accumulates the order totals. Color ids resolve to their
// current display name, so same-named colorways from different groups merge
// into one bucket; ids that no longer resolve are attributed to the
// "Unknown" bucket rather than dropped. Non-numeric cells count as 0.
func ComputeBreakdown(groups []*entities.SizeGroup) entities.OrderBreakdown {
	result := entities.NewOrderBreakdown()

	for _, group := range groups {
		for colorID, row := range group.Breakdown {
			name, ok := group.ColorName(colorID)
			if !ok {
				name = entities.UnknownColorBucket
			}
			for size, raw := range row {
				qty := entities.ParseQuantity(raw)
				result.TotalQuantity += qty
				result.QuantityByColor[name] += qty
				result.QuantityBySize[size] += qty
			}
		}
	}

	return result
}

// GroupTotal returns the summed quantity of every size group whose name
// matches. An unmatched name contributes 0. The by-size-group consumption
// rule keys on this total, not on the order-wide breakdown.
func GroupTotal(groups []*entities.SizeGroup, groupName string) entities.Quantity {
	var total entities.Quantity
	for _, group := range groups {
		if group.GroupName == groupName {
			total += group.TotalQuantity()
		}
	}
	return total
}
