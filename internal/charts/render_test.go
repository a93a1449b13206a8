package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/epeers/exposure/internal/models"
)

func sampleReport() *models.AnalysisReport {
	total := 10000.0
	return &models.AnalysisReport{
		PortfolioName: "retirement",
		TER:           0.00215,
		TotalAmount:   &total,
		Results: []models.ExposureResult{
			{
				Dimension: models.DimensionSector,
				Items: []models.ExposureItem{
					{Label: "Technology", Percentage: 54.5},
					{Label: "Financials", Percentage: 25.5},
					{Label: "Unknown", Percentage: 20.0},
				},
			},
			{
				Dimension: models.DimensionCountry,
				Items: []models.ExposureItem{
					{Label: "United States", Percentage: 100.0},
				},
			},
		},
	}
}

func TestRender_WritesHTMLReport(t *testing.T) {
	dir := t.TempDir()
	htmlPath, err := Render(sampleReport(), Config{
		OutputFolder: dir,
		FileStem:     "retirement",
		Limit:        25,
		Currency:     "€",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if filepath.Base(htmlPath) != "retirement.html" {
		t.Errorf("unexpected report file name %q", htmlPath)
	}

	raw, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	content := string(raw)

	// TER renders as a percentage with three decimals.
	if !strings.Contains(content, "Asset exposure for retirement portfolio, TER 0.215%") {
		t.Error("main title with TER missing from report")
	}
	for _, want := range []string{"Technology", "United States", "% Net assets"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in report", want)
		}
	}
	if !strings.Contains(content, unknownColor) {
		t.Error("residual bucket should be colored gray")
	}
}

func TestRender_LimitTruncatesItems(t *testing.T) {
	dir := t.TempDir()
	htmlPath, err := Render(sampleReport(), Config{
		OutputFolder: dir,
		FileStem:     "top1",
		Limit:        1,
		Currency:     "€",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	raw, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if strings.Contains(string(raw), "Financials") {
		t.Error("items beyond the limit should be dropped")
	}
	if !strings.Contains(string(raw), "Technology") {
		t.Error("top item should survive the limit")
	}
}
