package output

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/stitchworks/orderplan/pkg/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateData contains all data for rendering the HTML report
type TemplateData struct {
	*Report
	SortedColors []breakdownRow
	SortedSizes  []breakdownRow
	GeneratedAt  string
}

type breakdownRow struct {
	Label    string
	Quantity entities.Quantity
}

// RenderHTML renders the printable material report page
func RenderHTML(report *Report) (string, error) {
	tmpl, err := template.New("report.html").Funcs(template.FuncMap{
		"grouped": func(q entities.Quantity) string {
			return printer.Sprintf("%d", q)
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	data := TemplateData{
		Report:      report,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
	}
	for _, label := range sortedKeys(report.Material.Breakdown.QuantityByColor) {
		data.SortedColors = append(data.SortedColors, breakdownRow{
			Label:    label,
			Quantity: report.Material.Breakdown.QuantityByColor[label],
		})
	}
	sizes := make([]entities.SizeLabel, 0, len(report.Material.Breakdown.QuantityBySize))
	for size := range report.Material.Breakdown.QuantityBySize {
		sizes = append(sizes, size)
	}
	entities.SortSizeLabels(sizes)
	for _, size := range sizes {
		data.SortedSizes = append(data.SortedSizes, breakdownRow{
			Label:    string(size),
			Quantity: report.Material.Breakdown.QuantityBySize[size],
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.String(), nil
}
