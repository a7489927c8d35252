package services

import (
	"fmt"

	"github.com/stitchworks/orderplan/pkg/domain/entities"
)

// UsageValidator lints component usage tables against the order they are
// calculated with. The calculator itself never rejects a dangling key (it
// degrades to a zero contribution); the validator surfaces those keys at
// authoring time so they can be fixed or cleaned up.
type UsageValidator struct{}

// NewUsageValidator creates a new usage validator
func NewUsageValidator() *UsageValidator {
	return &UsageValidator{}
}

// ComponentIssues collects the dangling references of one component
type ComponentIssues struct {
	ComponentID   string
	ComponentName string
	DanglingKeys  []string
}

// ValidationResult contains the results of usage validation
type ValidationResult struct {
	Issues   []ComponentIssues
	Warnings []string
}

// HasIssues reports whether any component carried a dangling reference
func (r *ValidationResult) HasIssues() bool {
	return len(r.Issues) > 0 || len(r.Warnings) > 0
}

// ValidateOrder checks every component's usage keys against the order's
// current colors, size-group names, and size vocabulary
func (v *UsageValidator) ValidateOrder(order *entities.Order) *ValidationResult {
	result := &ValidationResult{
		Issues:   make([]ComponentIssues, 0),
		Warnings: make([]string, 0),
	}

	colorNames := make(map[string]bool)
	groupNames := make(map[string]bool)
	for _, group := range order.SizeGroups {
		groupNames[group.GroupName] = true
		for _, color := range group.Colors {
			colorNames[color.Name] = true
		}
	}

	vocabulary := make(map[entities.SizeLabel]bool)
	for _, size := range order.SizeVocabulary() {
		vocabulary[size] = true
	}

	for _, component := range order.Components {
		issues := v.validateComponent(component, colorNames, groupNames, vocabulary)
		if len(issues.DanglingKeys) > 0 {
			result.Issues = append(result.Issues, issues)
		}
		if component.Rule == entities.UsageByCustomGroup {
			result.Warnings = append(result.Warnings, v.detectCustomGroupOverlap(component)...)
		}
	}

	return result
}

// validateComponent resolves each usage key the same way the calculator
// does and records the ones that resolve to nothing
func (v *UsageValidator) validateComponent(
	component *entities.BOMComponent,
	colorNames map[string]bool,
	groupNames map[string]bool,
	vocabulary map[entities.SizeLabel]bool,
) ComponentIssues {
	issues := ComponentIssues{
		ComponentID:   component.ID,
		ComponentName: component.Name,
	}

	for _, key := range component.UsageKeys() {
		switch component.Rule {
		case entities.UsageUniform:
			if key != entities.GenericUsageKey {
				issues.DanglingKeys = append(issues.DanglingKeys, key)
			}
		case entities.UsageByColor:
			if !colorNames[key] {
				issues.DanglingKeys = append(issues.DanglingKeys, key)
			}
		case entities.UsageBySizeGroup:
			if !groupNames[key] {
				issues.DanglingKeys = append(issues.DanglingKeys, key)
			}
		case entities.UsageByIndividualSize:
			if !vocabulary[entities.SizeLabel(key)] {
				issues.DanglingKeys = append(issues.DanglingKeys, key)
			}
		case entities.UsageByCustomGroup:
			for _, size := range entities.SplitCustomGroupKey(key) {
				if !vocabulary[size] {
					issues.DanglingKeys = append(issues.DanglingKeys, key)
					break
				}
			}
		}
	}

	return issues
}

// detectCustomGroupOverlap warns when a size label is claimed by more than
// one custom-group key. The calculator counts the size toward each key; the
// authoring flow is supposed to prevent this state.
func (v *UsageValidator) detectCustomGroupOverlap(component *entities.BOMComponent) []string {
	var warnings []string
	claimedBy := make(map[entities.SizeLabel]string)

	for _, key := range component.UsageKeys() {
		for _, size := range entities.SplitCustomGroupKey(key) {
			if prior, claimed := claimedBy[size]; claimed {
				warnings = append(warnings, fmt.Sprintf(
					"component %s: size %s appears in custom groups %q and %q and will be counted toward both",
					component.Name, size, prior, key))
				continue
			}
			claimedBy[size] = key
		}
	}

	return warnings
}
