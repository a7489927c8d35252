package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stitchworks/orderplan/pkg/application/dto"
	"github.com/stitchworks/orderplan/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Report bundles everything one order's report run produced
type Report struct {
	Material dto.MaterialReport
	Schedule *entities.ScheduleAnalysis // nil unless critical-path analysis ran
}

// printer renders quantities with digit grouping (1,545 not 1545)
var printer = message.NewPrinter(language.English)

// Generate creates output in the specified format
func Generate(report *Report, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(report, config)
	case "json":
		return generateJSONOutput(report, config)
	case "html":
		return generateHTMLOutput(report, config)
	default:
		return fmt.Errorf("unsupported output format: %s (expected: text, json, or html)", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(report *Report, config Config) error {
	material := report.Material

	fmt.Printf("📊 Material Requirement Summary\n")
	fmt.Printf("===============================\n\n")
	fmt.Printf("Style: %s\n", material.StyleRef)
	fmt.Printf("Buyer: %s\n", material.Buyer)
	printer.Printf("Order Quantity: %d pcs\n\n", material.TotalQuantity)

	printBreakdown(material.Breakdown)

	for _, section := range material.Sections {
		fmt.Printf("▶ %s\n", section.CategoryLabel)
		for _, component := range section.Components {
			printComponent(component)
		}
		fmt.Println()
	}

	if report.Schedule != nil {
		printSchedule(report.Schedule)
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if config.Verbose {
			fmt.Printf("💾 Results printed; use -format json or html for file output\n")
		}
	}

	return nil
}

func printBreakdown(b entities.OrderBreakdown) {
	if len(b.QuantityByColor) > 0 {
		fmt.Printf("By Color:\n")
		for _, name := range sortedKeys(b.QuantityByColor) {
			printer.Printf("  %-20s %10d\n", name, b.QuantityByColor[name])
		}
		fmt.Println()
	}
	if len(b.QuantityBySize) > 0 {
		fmt.Printf("By Size:\n")
		sizes := make([]entities.SizeLabel, 0, len(b.QuantityBySize))
		for size := range b.QuantityBySize {
			sizes = append(sizes, size)
		}
		entities.SortSizeLabels(sizes)
		for _, size := range sizes {
			printer.Printf("  %-20s %10d\n", size, b.QuantityBySize[size])
		}
		fmt.Println()
	}
}

func printComponent(c dto.ComponentRequirement) {
	printer.Printf("  %s (%s) | %s | wastage %s%% | total %d %s\n",
		c.Name, c.RuleLabel, c.VendorRef, c.WastagePercent, c.TotalRequired, c.UnitOfMeasure)
	for _, line := range c.Lines {
		printer.Printf("    %-24s qty %8d x %-8s = %10d\n",
			line.Key, line.ApplicableQty, line.Rate, line.Required)
	}
}

func printSchedule(analysis *entities.ScheduleAnalysis) {
	fmt.Printf("📅 Schedule Analysis\n")
	fmt.Printf("--------------------\n")
	fmt.Printf("%s\n", analysis.Summary())
	fmt.Printf("Earliest completion: %d days | Paths: %d\n", analysis.TotalDays, analysis.TotalPaths)
	for i, path := range analysis.TopPaths {
		fmt.Printf("  %d. %s\n", i+1, path.PathSummary())
		for _, node := range path.PathDetails {
			fmt.Printf("     %-24s day %3d → %3d (%d days)\n",
				node.Name, node.EarliestStart, node.EarliestFinish, node.DurationDays)
		}
	}
	fmt.Println()
}

// generateJSONOutput creates JSON output
func generateJSONOutput(report *Report, config Config) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, "material_report.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	if config.Verbose {
		fmt.Printf("💾 JSON report saved to: %s\n", filename)
	}
	return nil
}

// generateHTMLOutput renders the printable HTML report
func generateHTMLOutput(report *Report, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for HTML format")
	}

	html, err := RenderHTML(report)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, "material_report.html")
	if err := os.WriteFile(filename, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}
	if config.Verbose {
		fmt.Printf("💾 HTML report saved to: %s\n", filename)
	}
	return nil
}

func sortedKeys(m map[string]entities.Quantity) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
