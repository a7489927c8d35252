// Package testing provides shared order fixtures for infrastructure tests.
package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stitchworks/orderplan/pkg/domain/entities"
)

// BuildDenimOrder builds a fully populated five-pocket denim order: two
// size groups, components covering every consumption rule, sampling,
// embellishment, wash, and schedule records.
func BuildDenimOrder() *entities.Order {
	placed := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	order, err := entities.NewOrder("DN-5012", "Harborline", placed, placed.AddDate(0, 4, 0))
	if err != nil {
		panic(err)
	}
	order.Season = "FW25"
	order.Merchandiser = "R. Okafor"

	main := entities.NewSizeGroup("Main")
	main.Colors = nil
	main.Sizes = []entities.SizeLabel{"30", "32", "34", "36"}
	main.UnitPrice = decimal.RequireFromString("11.40")
	indigo := main.AddColor("Indigo")
	black := main.AddColor("Black")
	main.SetQuantity(indigo.ID, "30", "120")
	main.SetQuantity(indigo.ID, "32", "240")
	main.SetQuantity(indigo.ID, "34", "240")
	main.SetQuantity(indigo.ID, "36", "120")
	main.SetQuantity(black.ID, "32", "90")
	main.SetQuantity(black.ID, "34", "90")

	petite := entities.NewSizeGroup("Petite")
	petite.Colors = nil
	petite.Sizes = []entities.SizeLabel{"28", "30", "32"}
	petite.UnitPrice = decimal.RequireFromString("11.40")
	petiteIndigo := petite.AddColor("Indigo")
	petite.SetQuantity(petiteIndigo.ID, "28", "60")
	petite.SetQuantity(petiteIndigo.ID, "30", "80")
	petite.SetQuantity(petiteIndigo.ID, "32", "60")

	order.SizeGroups = []*entities.SizeGroup{main, petite}

	shell := entities.NewBOMComponent("Denim Shell 12oz", entities.CategoryFabric, entities.UsageUniform)
	shell.VendorRef = "MIL-1208"
	shell.UnitOfMeasure = "m"
	shell.SetRate(entities.GenericUsageKey, decimal.RequireFromString("1.35"))
	shell.WastagePercent = decimal.NewFromInt(5)

	zip := entities.NewBOMComponent("Dyed Zip", entities.CategoryTrim, entities.UsageByColor)
	zip.VendorRef = "ZIP-44"
	zip.UnitOfMeasure = "pcs"
	zip.SetRate("Indigo", decimal.NewFromInt(1))
	zip.SetRate("Black", decimal.NewFromInt(1))
	zip.WastagePercent = decimal.NewFromInt(2)

	bag := entities.NewBOMComponent("Poly Bag", entities.CategoryPacking, entities.UsageBySizeGroup)
	bag.UnitOfMeasure = "pcs"
	bag.SetRate("Main", decimal.NewFromInt(1))
	bag.SetRate("Petite", decimal.NewFromInt(1))

	label := entities.NewBOMComponent("Woven Size Label", entities.CategoryTrim, entities.UsageByIndividualSize)
	label.UnitOfMeasure = "pcs"
	for _, size := range []string{"28", "30", "32", "34", "36"} {
		label.SetRate(size, decimal.NewFromInt(1))
	}

	button := entities.NewBOMComponent("Waist Button", entities.CategoryTrim, entities.UsageByCustomGroup)
	button.UnitOfMeasure = "pcs"
	button.SetRate("28, 30, 32", decimal.NewFromInt(1))
	button.SetRate("34, 36", decimal.NewFromInt(2))

	order.Components = []*entities.BOMComponent{shell, zip, bag, label, button}

	order.SamplingStages = []*entities.SamplingStage{
		entities.NewSamplingStage(entities.StageProto, placed.AddDate(0, 0, 14)),
		entities.NewSamplingStage(entities.StageFit, placed.AddDate(0, 1, 0)),
	}
	order.Embellishments = []*entities.Embellishment{
		{ID: "emb-back-patch", Type: entities.EmbPrint, Placement: "Back waistband", ArtworkRef: "AW-881", Vendor: "InkHouse"},
	}
	order.Wash = &entities.WashSpec{Type: entities.WashStone, Shade: "Mid Indigo"}

	fabricTask := mustTask("Fabric In-House", 30, nil)
	cuttingTask := mustTask("Cutting", 5, []string{fabricTask.ID})
	sewingTask := mustTask("Sewing", 20, []string{cuttingTask.ID})
	washTask := mustTask("Washing", 7, []string{sewingTask.ID})
	order.Schedule = []*entities.ScheduleTask{fabricTask, cuttingTask, sewingTask, washTask}

	return order
}

func mustTask(name string, days int, deps []string) *entities.ScheduleTask {
	task, err := entities.NewScheduleTask(name, "merch", days, deps)
	if err != nil {
		panic(err)
	}
	return task
}
