package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/stitchworks/orderplan/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing CSV files",
		)
		dbPath       = flag.String("db", "", "Path to the order database (SQLite)")
		orderID      = flag.String("order", "", "Order id to load from the database")
		saveDB       = flag.Bool("save", false, "Save the loaded scenario into the database")
		outputDir    = flag.String("output", "", "Output directory for results (optional)")
		format       = flag.String("format", "text", "Output format: text, json, html")
		verbose      = flag.Bool("verbose", false, "Enable verbose output")
		criticalPath = flag.Bool("critical-path", false, "Analyze the order schedule")
		topPaths     = flag.Int("top-paths", 3, "Number of longest schedule chains to show")
		help         = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ScenarioDir:  *scenarioDir,
		DBPath:       *dbPath,
		OrderID:      *orderID,
		SaveDB:       *saveDB,
		OutputDir:    *outputDir,
		Format:       *format,
		Verbose:      *verbose,
		CriticalPath: *criticalPath,
		TopPaths:     *topPaths,
		Help:         *help,
	}

	// Create and execute command
	cmd := commands.NewReportCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
