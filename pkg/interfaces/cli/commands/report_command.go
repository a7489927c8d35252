package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/stitchworks/orderplan/pkg/application/services/requirement"
	"github.com/stitchworks/orderplan/pkg/application/services/schedule"
	"github.com/stitchworks/orderplan/pkg/domain/entities"
	"github.com/stitchworks/orderplan/pkg/domain/services"
	"github.com/stitchworks/orderplan/pkg/infrastructure/audit"
	"github.com/stitchworks/orderplan/pkg/infrastructure/repositories/csv"
	"github.com/stitchworks/orderplan/pkg/infrastructure/repositories/sqlite"
	"github.com/stitchworks/orderplan/pkg/interfaces/cli/output"
)

// Config holds configuration for the report command
type Config struct {
	ScenarioDir  string
	DBPath       string
	OrderID      string
	SaveDB       bool
	OutputDir    string
	Format       string
	Verbose      bool
	CriticalPath bool
	TopPaths     int
	Help         bool
}

// ReportCommand loads an order, validates its usage tables, and produces
// the material requirement report
type ReportCommand struct {
	config Config
	trail  *audit.Trail
}

// NewReportCommand creates a new report command with the given configuration
func NewReportCommand(config Config) *ReportCommand {
	return &ReportCommand{
		config: config,
		trail:  audit.NewTrail(),
	}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	order, err := c.loadOrder(ctx)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("✅ Order loaded: %s for %s\n", order.StyleRef, order.Buyer)
		fmt.Printf("  Size groups: %d\n", len(order.SizeGroups))
		fmt.Printf("  Components: %d\n", len(order.Components))
		fmt.Printf("  Schedule tasks: %d\n", len(order.Schedule))
		fmt.Println()
	}

	// Lint usage tables before calculating. Issues are surfaced but never
	// fatal; the calculator degrades dangling keys to zero.
	if c.config.Verbose {
		fmt.Println("🔍 Validating component usage tables...")
	}
	validation := services.NewUsageValidator().ValidateOrder(order)
	c.printValidation(validation)

	if c.config.SaveDB {
		if err := c.saveOrder(ctx, order); err != nil {
			return err
		}
	}

	if c.config.Verbose {
		fmt.Println("🔄 Calculating material requirements...")
	}
	report := &output.Report{
		Material: requirement.MaterialReport(order),
	}

	if c.config.CriticalPath && len(order.Schedule) > 0 {
		analysis, err := schedule.NewService().Analyze(order, c.config.TopPaths)
		if err != nil {
			return fmt.Errorf("schedule analysis failed: %w", err)
		}
		report.Schedule = analysis
		if c.config.Verbose {
			fmt.Printf("📊 %s\n\n", analysis.Summary())
		}
	}

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}
	if err := output.Generate(report, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Report complete!")
	}
	return nil
}

// loadOrder resolves the order source: a CSV scenario directory or a
// previously saved order in the database
func (c *ReportCommand) loadOrder(ctx context.Context) (*entities.Order, error) {
	if c.config.ScenarioDir != "" {
		if _, err := os.Stat(c.config.ScenarioDir); os.IsNotExist(err) {
			return nil, fmt.Errorf("scenario directory not found: %s", c.config.ScenarioDir)
		}
		order, err := csv.NewLoader().LoadScenario(c.config.ScenarioDir)
		if err != nil {
			return nil, fmt.Errorf("error loading scenario: %w", err)
		}
		return order, nil
	}

	store, err := sqlite.Open(c.config.DBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	order, err := store.Get(ctx, c.config.OrderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// saveOrder persists the loaded order so later runs can reference it by id
func (c *ReportCommand) saveOrder(ctx context.Context, order *entities.Order) error {
	store, err := sqlite.Open(c.config.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(ctx, order); err != nil {
		return err
	}
	c.trail.Record(order.ID, "order.saved", fmt.Sprintf("style %s imported from %s", order.StyleRef, c.config.ScenarioDir))

	if c.config.Verbose {
		fmt.Printf("💾 Order saved to %s with id %s\n\n", c.config.DBPath, order.ID)
	}
	return nil
}

func (c *ReportCommand) printValidation(validation *services.ValidationResult) {
	if !validation.HasIssues() {
		if c.config.Verbose {
			fmt.Println("✅ Usage validation passed")
			fmt.Println()
		}
		return
	}

	for _, issue := range validation.Issues {
		fmt.Printf("⚠️  %s: dangling usage keys %v (counted as 0)\n", issue.ComponentName, issue.DanglingKeys)
	}
	for _, warning := range validation.Warnings {
		fmt.Printf("⚠️  %s\n", warning)
	}
	fmt.Println()
}

// validateInputs validates the command configuration
func (c *ReportCommand) validateInputs() error {
	if c.config.ScenarioDir == "" && (c.config.DBPath == "" || c.config.OrderID == "") {
		return fmt.Errorf("must specify either -scenario directory or -db with -order")
	}
	if c.config.SaveDB {
		if c.config.ScenarioDir == "" {
			return fmt.Errorf("-save requires a -scenario directory to import")
		}
		if c.config.DBPath == "" {
			return fmt.Errorf("-save requires a -db path")
		}
	}
	if c.config.TopPaths < 1 {
		return fmt.Errorf("-top-paths must be at least 1, got %d", c.config.TopPaths)
	}
	return nil
}

// showHelp displays the help message
func (c *ReportCommand) showHelp() {
	fmt.Printf(`orderplan - Material Requirement Reports for Apparel Production Orders

USAGE:
    orderplan -scenario <directory>            # Load an order from CSV files
    orderplan -db <file> -order <id>           # Load a previously saved order

OPTIONS:
    -scenario <dir>     Path to scenario directory containing CSV files
    -db <file>          Path to the order database (SQLite)
    -order <id>         Order id to load from the database
    -save               Save the loaded scenario into the database
    -output <dir>       Output directory for results (optional)
    -format <fmt>       Output format: text, json, html (default: text)
    -verbose            Enable verbose output
    -critical-path      Analyze the order's time-and-action schedule
    -top-paths <n>      Number of longest schedule chains to show (default: 3)
    -help               Show this help message

SCENARIO DIRECTORY STRUCTURE:
    scenario_name/
    ├── order.csv        # Order header
    ├── size_groups.csv  # Size groups with sizes and unit prices
    ├── colors.csv       # Colorways per size group
    ├── breakdown.csv    # Quantity per (group, color, size) cell
    ├── components.csv   # BOM components
    ├── usage.csv        # Consumption rates per usage key
    └── schedule.csv     # Time-and-action tasks (optional)

CSV FILE FORMATS:

order.csv:
    style_ref,buyer,season,merchandiser,order_date,delivery_date
    DN-5012,Harborline,FW25,R. Okafor,2025-02-10,2025-06-10

size_groups.csv:
    group_name,unit_price,currency,sizes
    Main,11.40,USD,30|32|34|36

colors.csv:
    group_name,color_name
    Main,Indigo

breakdown.csv:
    group_name,color_name,size,quantity
    Main,Indigo,32,240

components.csv:
    name,vendor_ref,category,unit_of_measure,unit_price,rule,wastage_percent
    Denim Shell 12oz,MIL-1208,Fabric,m,4.80,Uniform,5

usage.csv:
    component_name,usage_key,rate
    Denim Shell 12oz,generic,1.35

schedule.csv:
    task_name,owner,duration_days,depends_on
    Cutting,factory,5,Fabric In-House

EXAMPLES:
    # Report a scenario
    orderplan -scenario scenarios/fw25_denim -verbose

    # Report with schedule analysis
    orderplan -scenario scenarios/fw25_denim -critical-path -top-paths 5

    # Import a scenario into the database, then report it later by id
    orderplan -scenario scenarios/fw25_denim -db orders.db -save
    orderplan -db orders.db -order <id> -format html -output reports/
`)
}
