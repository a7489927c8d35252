package requirement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stitchworks/orderplan/pkg/application/services/breakdown"
	"github.com/stitchworks/orderplan/pkg/domain/entities"
)

// matrixGroup builds a size group with one colorway per name->size->qty row
func matrixGroup(t *testing.T, name string, rows map[string]map[entities.SizeLabel]string) *entities.SizeGroup {
	t.Helper()

	group := entities.NewSizeGroup(name)
	group.Colors = nil
	for colorName, cells := range rows {
		color := group.AddColor(colorName)
		for size, qty := range cells {
			if !group.HasSize(size) {
				group.AddSize(size)
			}
			group.SetQuantity(color.ID, size, qty)
		}
	}
	return group
}

func TestRequiredQuantity_Uniform(t *testing.T) {
	// 1000 units x 1.5 per unit, 3% wastage: ceil(1500 x 1.03) = 1545
	group := matrixGroup(t, "Main", map[string]map[entities.SizeLabel]string{
		"Red": {"S": "400", "M": "600"},
	})
	groups := []*entities.SizeGroup{group}
	b := breakdown.ComputeBreakdown(groups)

	component := entities.NewBOMComponent("Sewing Thread", entities.CategoryTrim, entities.UsageUniform)
	component.SetRate(entities.GenericUsageKey, decimal.RequireFromString("1.5"))
	component.WastagePercent = decimal.NewFromInt(3)

	if got := RequiredQuantity(b, groups, component); got != 1545 {
		t.Errorf("RequiredQuantity = %d, want 1545", got)
	}
}

func TestRequiredQuantity_ByColor(t *testing.T) {
	// Red 300 x 2 + Blue 700 x 1 = 1300, no wastage
	group := matrixGroup(t, "Main", map[string]map[entities.SizeLabel]string{
		"Red":  {"S": "300"},
		"Blue": {"S": "700"},
	})
	groups := []*entities.SizeGroup{group}
	b := breakdown.ComputeBreakdown(groups)

	component := entities.NewBOMComponent("Dyed Zip", entities.CategoryTrim, entities.UsageByColor)
	component.SetRate("Red", decimal.NewFromInt(2))
	component.SetRate("Blue", decimal.NewFromInt(1))

	if got := RequiredQuantity(b, groups, component); got != 1300 {
		t.Errorf("RequiredQuantity = %d, want 1300", got)
	}
}

func TestRequiredQuantity_MissingKeyContributesZero(t *testing.T) {
	group := matrixGroup(t, "Main", map[string]map[entities.SizeLabel]string{
		"Red": {"S": "300"},
	})
	groups := []*entities.SizeGroup{group}
	b := breakdown.ComputeBreakdown(groups)

	component := entities.NewBOMComponent("Dyed Zip", entities.CategoryTrim, entities.UsageByColor)
	component.SetRate("Red", decimal.NewFromInt(2))
	component.SetRate("Chartreuse", decimal.NewFromInt(50)) // no such colorway

	if got := RequiredQuantity(b, groups, component); got != 600 {
		t.Errorf("RequiredQuantity = %d, want 600 (absent key must contribute 0)", got)
	}
}

func TestRequiredQuantity_BySizeGroupUsesGroupTotal(t *testing.T) {
	main := matrixGroup(t, "Main", map[string]map[entities.SizeLabel]string{
		"Red": {"S": "100", "M": "200"},
	})
	petite := matrixGroup(t, "Petite", map[string]map[entities.SizeLabel]string{
		"Red": {"S": "50"},
	})
	groups := []*entities.SizeGroup{main, petite}
	b := breakdown.ComputeBreakdown(groups)

	component := entities.NewBOMComponent("Hang Tag", entities.CategoryPacking, entities.UsageBySizeGroup)
	component.SetRate("Main", decimal.NewFromInt(1))
	component.SetRate("Petite", decimal.NewFromInt(2))
	component.SetRate("Tall", decimal.NewFromInt(9)) // no matching group

	// 300 x 1 + 50 x 2 + 0 x 9 = 400
	if got := RequiredQuantity(b, groups, component); got != 400 {
		t.Errorf("RequiredQuantity = %d, want 400", got)
	}
}

func TestRequiredQuantity_ByIndividualSize(t *testing.T) {
	group := matrixGroup(t, "Main", map[string]map[entities.SizeLabel]string{
		"Red": {"30": "100", "32": "150", "34": "50"},
	})
	groups := []*entities.SizeGroup{group}
	b := breakdown.ComputeBreakdown(groups)

	component := entities.NewBOMComponent("Size Label", entities.CategoryTrim, entities.UsageByIndividualSize)
	component.SetRate("30", decimal.NewFromInt(1))
	component.SetRate("32", decimal.NewFromInt(1))

	// 34 has no rate, so it contributes nothing
	if got := RequiredQuantity(b, groups, component); got != 250 {
		t.Errorf("RequiredQuantity = %d, want 250", got)
	}
}

func TestRequiredQuantity_CustomGroupOverlapDoubleCounts(t *testing.T) {
	// Keys "30, 32" and "32, 34" both claim size 32: each key counts it
	group := matrixGroup(t, "Main", map[string]map[entities.SizeLabel]string{
		"Red": {"30": "100", "32": "100", "34": "100"},
	})
	groups := []*entities.SizeGroup{group}
	b := breakdown.ComputeBreakdown(groups)

	component := entities.NewBOMComponent("Waist Button", entities.CategoryTrim, entities.UsageByCustomGroup)
	component.SetRate("30, 32", decimal.NewFromInt(1))
	component.SetRate("32, 34", decimal.NewFromInt(1))

	if got := RequiredQuantity(b, groups, component); got != 400 {
		t.Errorf("RequiredQuantity = %d, want 400 (overlap double-counts by design)", got)
	}
}

func TestRequiredQuantity_CeilingAfterWastage(t *testing.T) {
	tests := []struct {
		name    string
		rate    string
		wastage int64
		qty     string
		want    entities.Quantity
	}{
		{"zero_wastage_identity", "1.5", 0, "99", 149},     // ceil(148.5)
		{"fractional_base_rounds_up", "0.333", 0, "10", 4}, // ceil(3.33)
		{"wastage_then_single_ceiling", "1", 5, "101", 107}, // ceil(106.05)
		{"exact_product_not_bumped", "1", 3, "100", 103},    // ceil(103) = 103
		{"zero_quantity", "2.5", 10, "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := matrixGroup(t, "Main", map[string]map[entities.SizeLabel]string{
				"Red": {"S": tt.qty},
			})
			groups := []*entities.SizeGroup{group}
			b := breakdown.ComputeBreakdown(groups)

			component := entities.NewBOMComponent("Fabric", entities.CategoryFabric, entities.UsageUniform)
			component.SetRate(entities.GenericUsageKey, decimal.RequireFromString(tt.rate))
			component.WastagePercent = decimal.NewFromInt(tt.wastage)

			if got := RequiredQuantity(b, groups, component); got != tt.want {
				t.Errorf("RequiredQuantity = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLineRequirement(t *testing.T) {
	group := matrixGroup(t, "Main", map[string]map[entities.SizeLabel]string{
		"Red":  {"S": "300"},
		"Blue": {"S": "700"},
	})
	groups := []*entities.SizeGroup{group}
	b := breakdown.ComputeBreakdown(groups)

	component := entities.NewBOMComponent("Dyed Zip", entities.CategoryTrim, entities.UsageByColor)
	component.SetRate("Red", decimal.RequireFromString("1.1"))
	component.SetRate("Blue", decimal.NewFromInt(1))
	component.WastagePercent = decimal.NewFromInt(2)

	// Red line: ceil(300 x 1.1 x 1.02) = ceil(336.6) = 337
	if got := LineRequirement(b, groups, component, "Red"); got != 337 {
		t.Errorf("LineRequirement(Red) = %d, want 337", got)
	}
	// Key absent from the usage table contributes 0
	if got := LineRequirement(b, groups, component, "Green"); got != 0 {
		t.Errorf("LineRequirement(Green) = %d, want 0", got)
	}
}

func TestLineRequirement_DriftAgainstTotal(t *testing.T) {
	// Each line rounds on its own, so the line sum may exceed the total:
	// lines ceil(0.3)+ceil(0.3) = 2 while the total is ceil(0.6) = 1.
	group := matrixGroup(t, "Main", map[string]map[entities.SizeLabel]string{
		"Red":  {"S": "3"},
		"Blue": {"S": "3"},
	})
	groups := []*entities.SizeGroup{group}
	b := breakdown.ComputeBreakdown(groups)

	component := entities.NewBOMComponent("Twill Tape", entities.CategoryTrim, entities.UsageByColor)
	component.SetRate("Red", decimal.RequireFromString("0.1"))
	component.SetRate("Blue", decimal.RequireFromString("0.1"))

	total := RequiredQuantity(b, groups, component)
	lineSum := LineRequirement(b, groups, component, "Red") +
		LineRequirement(b, groups, component, "Blue")

	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
	if lineSum != 2 {
		t.Errorf("line sum = %d, want 2", lineSum)
	}
}

func TestComponentReport(t *testing.T) {
	group := matrixGroup(t, "Main", map[string]map[entities.SizeLabel]string{
		"Red":  {"S": "300"},
		"Blue": {"S": "700"},
	})
	groups := []*entities.SizeGroup{group}
	b := breakdown.ComputeBreakdown(groups)

	component := entities.NewBOMComponent("Dyed Zip", entities.CategoryTrim, entities.UsageByColor)
	component.VendorRef = "ZIP-44"
	component.UnitOfMeasure = "pcs"
	component.SetRate("Blue", decimal.NewFromInt(1))
	component.SetRate("Red", decimal.NewFromInt(2))

	report := ComponentReport(b, groups, component)

	if report.TotalRequired != 1300 {
		t.Errorf("TotalRequired = %d, want 1300", report.TotalRequired)
	}
	if len(report.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(report.Lines))
	}
	// Keys are emitted in deterministic sorted order
	if report.Lines[0].Key != "Blue" || report.Lines[1].Key != "Red" {
		t.Errorf("line order = %s, %s; want Blue, Red", report.Lines[0].Key, report.Lines[1].Key)
	}
	if report.Lines[1].ApplicableQty != 300 {
		t.Errorf("Red applicable qty = %d, want 300", report.Lines[1].ApplicableQty)
	}
	if report.RuleLabel != "By Color" {
		t.Errorf("RuleLabel = %q, want %q", report.RuleLabel, "By Color")
	}
}

func TestMaterialReport_GroupsByCategory(t *testing.T) {
	placed := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	order, err := entities.NewOrder("ST-2044", "Harborline", placed, placed.AddDate(0, 4, 0))
	if err != nil {
		t.Fatalf("NewOrder failed: %v", err)
	}

	order.SizeGroups = append(order.SizeGroups, matrixGroup(t, "Main", map[string]map[entities.SizeLabel]string{
		"Indigo": {"30": "500", "32": "500"},
	}))

	shell := entities.NewBOMComponent("Denim Shell", entities.CategoryFabric, entities.UsageUniform)
	shell.SetRate(entities.GenericUsageKey, decimal.RequireFromString("1.35"))
	shell.WastagePercent = decimal.NewFromInt(5)

	rivet := entities.NewBOMComponent("Copper Rivet", entities.CategoryTrim, entities.UsageUniform)
	rivet.SetRate(entities.GenericUsageKey, decimal.NewFromInt(6))

	carton := entities.NewBOMComponent("Export Carton", entities.CategoryPacking, entities.UsageUniform)
	carton.SetRate(entities.GenericUsageKey, decimal.RequireFromString("0.05"))

	order.Components = append(order.Components, rivet, shell, carton)

	report := MaterialReport(order)

	if report.TotalQuantity != 1000 {
		t.Errorf("TotalQuantity = %d, want 1000", report.TotalQuantity)
	}
	if len(report.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(report.Sections))
	}
	// Sections follow report category order regardless of component order
	wantOrder := []entities.ProcessCategory{entities.CategoryFabric, entities.CategoryTrim, entities.CategoryPacking}
	for i, want := range wantOrder {
		if report.Sections[i].Category != want {
			t.Errorf("section %d category = %v, want %v", i, report.Sections[i].Category, want)
		}
	}
	// ceil(1000 x 1.35 x 1.05) = ceil(1417.5) = 1418
	if got := report.Sections[0].Components[0].TotalRequired; got != 1418 {
		t.Errorf("fabric requirement = %d, want 1418", got)
	}
}
