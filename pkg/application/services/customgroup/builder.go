// Package customgroup builds ad-hoc size groupings for the "configure your
// own" consumption rule. The builder is the authoring-time guard that keeps
// a size in at most one custom group per component; the calculator itself
// does not re-enforce exclusivity.
package customgroup

import (
	"github.com/shopspring/decimal"

	"github.com/stitchworks/orderplan/pkg/domain/entities"
)

// Builder accumulates a working selection of size labels for one component.
// It is re-enterable indefinitely: committing a group returns it to the
// idle state, ready for the next selection.
type Builder struct {
	component  *entities.BOMComponent
	vocabulary map[entities.SizeLabel]bool
	selection  map[entities.SizeLabel]bool
}

// NewBuilder creates a builder over the order's distinct size vocabulary
func NewBuilder(component *entities.BOMComponent, groups []*entities.SizeGroup) *Builder {
	vocabulary := make(map[entities.SizeLabel]bool)
	for _, group := range groups {
		for _, size := range group.Sizes {
			vocabulary[size] = true
		}
	}

	return &Builder{
		component:  component,
		vocabulary: vocabulary,
		selection:  make(map[entities.SizeLabel]bool),
	}
}

// Toggle flips a size's membership in the working selection. Sizes outside
// the vocabulary and sizes already claimed by one of the component's
// existing custom-group keys are silently ignored.
func (b *Builder) Toggle(size entities.SizeLabel) {
	if !b.vocabulary[size] {
		return
	}
	if b.selection[size] {
		delete(b.selection, size)
		return
	}
	if b.claimed(size) {
		return
	}
	b.selection[size] = true
}

// Selecting reports whether the builder holds a non-empty working selection
func (b *Builder) Selecting() bool {
	return len(b.selection) > 0
}

// Selection returns the working selection in size order
func (b *Builder) Selection() []entities.SizeLabel {
	sizes := make([]entities.SizeLabel, 0, len(b.selection))
	for size := range b.selection {
		sizes = append(sizes, size)
	}
	entities.SortSizeLabels(sizes)
	return sizes
}

// Commit turns the working selection into a usage key with a zero rate and
// clears the selection. An empty selection is a no-op. A key that already
// exists in the component's usage table is left untouched and the selection
// is retained, so a stray double-commit cannot reset an entered rate.
func (b *Builder) Commit() (string, bool) {
	if len(b.selection) == 0 {
		return "", false
	}

	key := entities.MakeCustomGroupKey(b.Selection())
	if _, exists := b.component.Usage[key]; exists {
		return "", false
	}

	b.component.SetRate(key, decimal.Zero)
	b.selection = make(map[entities.SizeLabel]bool)
	return key, true
}

// RemoveKey deletes a custom-group key from the component, freeing its
// sizes for reuse in future groups
func (b *Builder) RemoveKey(key string) {
	delete(b.component.Usage, key)
}

// claimed reports whether a size already belongs to one of the component's
// committed custom-group keys
func (b *Builder) claimed(size entities.SizeLabel) bool {
	for key := range b.component.Usage {
		for _, claimed := range entities.SplitCustomGroupKey(key) {
			if claimed == size {
				return true
			}
		}
	}
	return false
}
