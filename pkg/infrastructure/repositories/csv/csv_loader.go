// Package csv loads an order scenario from a directory of CSV files.
// A scenario is the file set merchandisers export from costing sheets:
// order.csv, size_groups.csv, colors.csv, breakdown.csv, components.csv,
// usage.csv, and optionally schedule.csv.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stitchworks/orderplan/pkg/domain/entities"
)

// Loader handles loading order scenarios from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadScenario reads every scenario file under dir and assembles the order
// aggregate. schedule.csv is optional; all other files are required.
func (l *Loader) LoadScenario(dir string) (*entities.Order, error) {
	order, err := l.loadOrderHeader(filepath.Join(dir, "order.csv"))
	if err != nil {
		return nil, err
	}

	groupNames, groups, err := l.loadSizeGroups(filepath.Join(dir, "size_groups.csv"))
	if err != nil {
		return nil, err
	}
	if err := l.loadColors(filepath.Join(dir, "colors.csv"), groups); err != nil {
		return nil, err
	}
	if err := l.loadBreakdown(filepath.Join(dir, "breakdown.csv"), groups); err != nil {
		return nil, err
	}
	for _, name := range groupNames {
		order.SizeGroups = append(order.SizeGroups, groups[name].group)
	}

	componentNames, components, err := l.loadComponents(filepath.Join(dir, "components.csv"))
	if err != nil {
		return nil, err
	}
	if err := l.loadUsage(filepath.Join(dir, "usage.csv"), components); err != nil {
		return nil, err
	}
	for _, name := range componentNames {
		order.Components = append(order.Components, components[name])
	}

	schedulePath := filepath.Join(dir, "schedule.csv")
	if _, err := os.Stat(schedulePath); err == nil {
		schedule, err := l.loadSchedule(schedulePath)
		if err != nil {
			return nil, err
		}
		order.Schedule = schedule
	}

	return order, nil
}

// groupRecord pairs a size group with its name-to-id color index so later
// files can reference colors by name
type groupRecord struct {
	group  *entities.SizeGroup
	colors map[string]entities.ColorID
}

func (l *Loader) loadOrderHeader(filename string) (*entities.Order, error) {
	records, err := readRows(filename, []string{"style_ref", "buyer", "season", "merchandiser", "order_date", "delivery_date"})
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, fmt.Errorf("order CSV must have exactly one data row, got %d", len(records))
	}
	record := records[0]

	orderDate, err := time.Parse("2006-01-02", record[4])
	if err != nil {
		return nil, fmt.Errorf("invalid order_date: %s (expected YYYY-MM-DD)", record[4])
	}
	deliveryDate, err := time.Parse("2006-01-02", record[5])
	if err != nil {
		return nil, fmt.Errorf("invalid delivery_date: %s (expected YYYY-MM-DD)", record[5])
	}

	order, err := entities.NewOrder(record[0], record[1], orderDate, deliveryDate)
	if err != nil {
		return nil, fmt.Errorf("order CSV: %w", err)
	}
	order.Season = record[2]
	order.Merchandiser = record[3]
	return order, nil
}

func (l *Loader) loadSizeGroups(filename string) ([]string, map[string]*groupRecord, error) {
	records, err := readRows(filename, []string{"group_name", "unit_price", "currency", "sizes"})
	if err != nil {
		return nil, nil, err
	}

	var names []string
	groups := make(map[string]*groupRecord, len(records))
	for i, record := range records {
		name := record[0]
		if _, dup := groups[name]; dup {
			return nil, nil, fmt.Errorf("size_groups CSV row %d: duplicate group name %s", i+2, name)
		}

		unitPrice, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, nil, fmt.Errorf("size_groups CSV row %d: invalid unit_price: %s", i+2, record[1])
		}

		group := entities.NewSizeGroup(name)
		group.UnitPrice = unitPrice
		if record[2] != "" {
			group.Currency = record[2]
		}
		// Scenario files declare the size run explicitly, replacing the
		// default run and placeholder color.
		group.Sizes = nil
		group.Colors = nil
		for _, size := range splitList(record[3]) {
			group.AddSize(entities.SizeLabel(size))
		}

		names = append(names, name)
		groups[name] = &groupRecord{group: group, colors: make(map[string]entities.ColorID)}
	}
	return names, groups, nil
}

func (l *Loader) loadColors(filename string, groups map[string]*groupRecord) error {
	records, err := readRows(filename, []string{"group_name", "color_name"})
	if err != nil {
		return err
	}

	for i, record := range records {
		group, ok := groups[record[0]]
		if !ok {
			return fmt.Errorf("colors CSV row %d: unknown group %s", i+2, record[0])
		}
		entry := group.group.AddColor(record[1])
		group.colors[record[1]] = entry.ID
	}
	return nil
}

func (l *Loader) loadBreakdown(filename string, groups map[string]*groupRecord) error {
	records, err := readRows(filename, []string{"group_name", "color_name", "size", "quantity"})
	if err != nil {
		return err
	}

	for i, record := range records {
		group, ok := groups[record[0]]
		if !ok {
			return fmt.Errorf("breakdown CSV row %d: unknown group %s", i+2, record[0])
		}
		colorID, ok := group.colors[record[1]]
		if !ok {
			return fmt.Errorf("breakdown CSV row %d: unknown color %s in group %s", i+2, record[1], record[0])
		}
		// The raw cell value is stored untouched; blank and non-numeric
		// values are legal and count as 0.
		group.group.SetQuantity(colorID, entities.SizeLabel(record[2]), record[3])
	}
	return nil
}

func (l *Loader) loadComponents(filename string) ([]string, map[string]*entities.BOMComponent, error) {
	records, err := readRows(filename, []string{"name", "vendor_ref", "category", "unit_of_measure", "unit_price", "rule", "wastage_percent"})
	if err != nil {
		return nil, nil, err
	}

	var names []string
	components := make(map[string]*entities.BOMComponent, len(records))
	for i, record := range records {
		name := record[0]
		if _, dup := components[name]; dup {
			return nil, nil, fmt.Errorf("components CSV row %d: duplicate component name %s", i+2, name)
		}

		category, err := entities.ParseProcessCategory(record[2])
		if err != nil {
			return nil, nil, fmt.Errorf("components CSV row %d: %w", i+2, err)
		}
		rule, err := entities.ParseConsumptionRule(record[5])
		if err != nil {
			return nil, nil, fmt.Errorf("components CSV row %d: %w", i+2, err)
		}
		unitPrice, err := decimal.NewFromString(record[4])
		if err != nil {
			return nil, nil, fmt.Errorf("components CSV row %d: invalid unit_price: %s", i+2, record[4])
		}
		wastage, err := decimal.NewFromString(record[6])
		if err != nil {
			return nil, nil, fmt.Errorf("components CSV row %d: invalid wastage_percent: %s", i+2, record[6])
		}

		component := entities.NewBOMComponent(name, category, rule)
		component.VendorRef = record[1]
		component.UnitOfMeasure = record[3]
		component.UnitPrice = unitPrice
		component.WastagePercent = wastage
		names = append(names, name)
		components[name] = component
	}
	return names, components, nil
}

func (l *Loader) loadUsage(filename string, components map[string]*entities.BOMComponent) error {
	records, err := readRows(filename, []string{"component_name", "usage_key", "rate"})
	if err != nil {
		return err
	}

	for i, record := range records {
		component, ok := components[record[0]]
		if !ok {
			return fmt.Errorf("usage CSV row %d: unknown component %s", i+2, record[0])
		}
		rate, err := decimal.NewFromString(record[2])
		if err != nil {
			return fmt.Errorf("usage CSV row %d: invalid rate: %s", i+2, record[2])
		}
		component.SetRate(record[1], rate)
	}
	return nil
}

func (l *Loader) loadSchedule(filename string) ([]*entities.ScheduleTask, error) {
	records, err := readRows(filename, []string{"task_name", "owner", "duration_days", "depends_on"})
	if err != nil {
		return nil, err
	}

	// First pass creates the tasks so the second pass can resolve
	// dependency names to generated ids.
	tasks := make([]*entities.ScheduleTask, 0, len(records))
	byName := make(map[string]*entities.ScheduleTask, len(records))
	for i, record := range records {
		days, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("schedule CSV row %d: invalid duration_days: %s", i+2, record[2])
		}
		task, err := entities.NewScheduleTask(record[0], record[1], days, nil)
		if err != nil {
			return nil, fmt.Errorf("schedule CSV row %d: %w", i+2, err)
		}
		if _, dup := byName[task.Name]; dup {
			return nil, fmt.Errorf("schedule CSV row %d: duplicate task name %s", i+2, task.Name)
		}
		tasks = append(tasks, task)
		byName[task.Name] = task
	}

	for i, record := range records {
		for _, depName := range splitList(record[3]) {
			dep, ok := byName[depName]
			if !ok {
				return nil, fmt.Errorf("schedule CSV row %d: unknown dependency %s", i+2, depName)
			}
			tasks[i].DependsOn = append(tasks[i].DependsOn, dep.ID)
		}
	}
	return tasks, nil
}

// readRows reads a CSV file, validates its header, and returns the data rows
func readRows(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath.Base(filename), err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(filename), err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s must have a header row", filepath.Base(filename))
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("%s header mismatch. Expected: %v, Got: %v",
			filepath.Base(filename), expectedHeader, records[0])
	}

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d",
				filepath.Base(filename), i+2, len(expectedHeader), len(record))
		}
	}
	return records[1:], nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

// splitList splits a pipe-separated list cell, dropping empty entries
func splitList(cell string) []string {
	var out []string
	for _, part := range strings.Split(cell, "|") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
