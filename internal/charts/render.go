package charts

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	log "github.com/sirupsen/logrus"

	"github.com/epeers/exposure/internal/models"
)

// unknownColor marks the residual bucket so it reads as filler, not as a
// real position.
const unknownColor = "#808080"

// Config controls how a report is rendered.
type Config struct {
	OutputFolder string
	FileStem     string
	Limit        int
	Currency     string
}

// Render writes the report as a page of stacked bar charts, one per
// dimension, and returns the path of the HTML file.
func Render(report *models.AnalysisReport, conf Config) (string, error) {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s exposure", report.PortfolioName)
	page.SetLayout(components.PageCenterLayout)

	mainTitle := fmt.Sprintf("Asset exposure for %s portfolio, TER %.3f%%",
		report.PortfolioName, report.TER*100)
	for i, result := range report.Results {
		title := string(result.Dimension)
		subtitle := ""
		if i == 0 {
			title = mainTitle
			subtitle = string(result.Dimension)
		}
		page.AddCharts(exposureBar(result, title, subtitle, report, conf))
	}

	htmlPath := filepath.Join(conf.OutputFolder, conf.FileStem+".html")
	f, err := os.Create(htmlPath)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	log.Infof("Wrote report to %s", htmlPath)
	return htmlPath, nil
}

// exposureBar builds one dimension's bar chart, keeping the top items up to
// the configured limit.
func exposureBar(result models.ExposureResult, title, subtitle string, report *models.AnalysisReport, conf Config) *echarts.Bar {
	items := result.Items
	if conf.Limit > 0 && len(items) > conf.Limit {
		items = items[:conf.Limit]
	}

	labels := make([]string, 0, len(items))
	data := make([]opts.BarData, 0, len(items))
	for _, it := range items {
		labels = append(labels, it.Label)
		d := opts.BarData{Value: math.Round(it.Percentage*100) / 100}
		if it.Label == "Unknown" {
			d.ItemStyle = &opts.ItemStyle{Color: unknownColor}
		}
		data = append(data, d)
	}

	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "420px"}),
		echarts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle, Left: "center"}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "% Net assets"}),
		echarts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 30, Interval: "0"}}),
		echarts.WithTooltipOpts(tooltip(report, conf)),
	)
	bar.SetXAxis(labels).AddSeries(string(result.Dimension), data,
		echarts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top", Formatter: "{c}%"}),
	)
	return bar
}

// tooltip shows the absolute currency value of a bar when the portfolio was
// given as amounts, otherwise the plain percentage.
func tooltip(report *models.AnalysisReport, conf Config) opts.Tooltip {
	t := opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}
	if report.TotalAmount != nil {
		t.Formatter = formatterWithAmount(*report.TotalAmount, conf.Currency)
	}
	return t
}

func formatterWithAmount(total float64, currency string) types.FuncStr {
	return opts.FuncOpts(fmt.Sprintf(
		`function (params) { return params.name + ': ' + params.value + '%% (' + Math.round(params.value * %f / 100) + ' %s)'; }`,
		total, currency))
}
