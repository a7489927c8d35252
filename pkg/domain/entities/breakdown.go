package entities

// UnknownColorBucket collects quantities whose color id no longer resolves
// to a colorway. Dangling quantities are kept visible, never dropped.
const UnknownColorBucket = "Unknown"

// OrderBreakdown is the derived quantity aggregate across every size group
// of an order. Colors aggregate by display name: same-named colorways from
// different groups share one bucket.
type OrderBreakdown struct {
	TotalQuantity   Quantity
	QuantityByColor map[string]Quantity
	QuantityBySize  map[SizeLabel]Quantity
}

// NewOrderBreakdown creates an empty breakdown
func NewOrderBreakdown() OrderBreakdown {
	return OrderBreakdown{
		QuantityByColor: make(map[string]Quantity),
		QuantityBySize:  make(map[SizeLabel]Quantity),
	}
}

// ColorQuantity returns the aggregate quantity for a color display name,
// 0 when the name has no bucket
func (b OrderBreakdown) ColorQuantity(name string) Quantity {
	return b.QuantityByColor[name]
}

// SizeQuantity returns the aggregate quantity for a size label, 0 when the
// label has no bucket
func (b OrderBreakdown) SizeQuantity(size SizeLabel) Quantity {
	return b.QuantityBySize[size]
}
