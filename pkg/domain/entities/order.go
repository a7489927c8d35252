package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order represents one production order: the buyer/style header plus the
// aggregates the editing flow owns. SizeGroups belong to the general-info
// section and Components to the BOM section; the requirement calculator is
// a pure function over both and owns neither.
type Order struct {
	ID           string
	StyleRef     string
	Buyer        string
	Season       string
	Merchandiser string
	OrderDate    time.Time
	DeliveryDate time.Time

	SizeGroups     []*SizeGroup
	Components     []*BOMComponent
	SamplingStages []*SamplingStage
	Embellishments []*Embellishment
	Wash           *WashSpec
	Schedule       []*ScheduleTask
}

// NewOrder creates a validated order header
func NewOrder(styleRef, buyer string, orderDate, deliveryDate time.Time) (*Order, error) {
	if styleRef == "" {
		return nil, fmt.Errorf("style reference cannot be empty")
	}
	if buyer == "" {
		return nil, fmt.Errorf("buyer cannot be empty")
	}
	if !deliveryDate.IsZero() && deliveryDate.Before(orderDate) {
		return nil, fmt.Errorf("delivery date %v cannot be before order date %v", deliveryDate, orderDate)
	}

	return &Order{
		ID:           uuid.NewString(),
		StyleRef:     styleRef,
		Buyer:        buyer,
		OrderDate:    orderDate,
		DeliveryDate: deliveryDate,
	}, nil
}

// SizeVocabulary returns the distinct size labels across every size group's
// active size list, in size order. This is the selection universe for
// custom usage groups.
func (o *Order) SizeVocabulary() []SizeLabel {
	seen := make(map[SizeLabel]bool)
	var vocabulary []SizeLabel
	for _, group := range o.SizeGroups {
		for _, size := range group.Sizes {
			if !seen[size] {
				seen[size] = true
				vocabulary = append(vocabulary, size)
			}
		}
	}
	SortSizeLabels(vocabulary)
	return vocabulary
}

// ComponentByID finds a component by id
func (o *Order) ComponentByID(id string) (*BOMComponent, bool) {
	for _, c := range o.Components {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// SizeGroupByID finds a size group by id
func (o *Order) SizeGroupByID(id string) (*SizeGroup, bool) {
	for _, g := range o.SizeGroups {
		if g.ID == id {
			return g, true
		}
	}
	return nil, false
}

// RemoveSizeGroup deletes a size group from the order. The deletion is
// irreversible; quantities entered for the group are discarded with it.
func (o *Order) RemoveSizeGroup(id string) {
	for i, g := range o.SizeGroups {
		if g.ID == id {
			o.SizeGroups = append(o.SizeGroups[:i], o.SizeGroups[i+1:]...)
			return
		}
	}
}
