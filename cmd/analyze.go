package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epeers/exposure/config"
	"github.com/epeers/exposure/internal/charts"
	"github.com/epeers/exposure/internal/database"
	"github.com/epeers/exposure/internal/loader"
	"github.com/epeers/exposure/internal/models"
	"github.com/epeers/exposure/internal/repository"
	"github.com/epeers/exposure/internal/services"
	"github.com/epeers/exposure/internal/staticdata"
	"github.com/epeers/exposure/internal/util"
)

var (
	outputFolder  string
	chartLimit    int
	eurAmounts    bool
	usdAmounts    bool
	currency      string
	saveImage     bool
	imageScale    float64
	display       bool
	databaseURL   string
	portfolioName string
)

// analyzeCmd implements the 'exposure analyze' command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [securities.csv] [portfolio.csv]",
	Short: "Analyze a portfolio's exposures and render the report",
	Long: `Analyze resolves a portfolio's exposure across all dimensions and
writes an HTML report of bar charts next to the portfolio file.

The two CSV arguments are the securities reference data and the portfolio
allocation. With --database-url both are loaded from Postgres instead and
--portfolio-name picks the stored portfolio.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outputFolder, "output-folder", "o", "", "folder for report files (default: the portfolio file's directory)")
	analyzeCmd.Flags().IntVarP(&chartLimit, "limit", "l", 25, "show the top N items per chart")
	analyzeCmd.Flags().BoolVar(&eurAmounts, "eur", false, "display absolute amounts in euros")
	analyzeCmd.Flags().BoolVar(&usdAmounts, "usd", false, "display absolute amounts in dollars")
	analyzeCmd.Flags().StringVar(&currency, "currency", "€", "currency symbol for absolute amounts")
	analyzeCmd.Flags().BoolVarP(&saveImage, "save-image", "i", false, "also save the report as a PNG image")
	analyzeCmd.Flags().Float64VarP(&imageScale, "image-scale", "s", 1.0, "scale factor for the PNG image")
	analyzeCmd.Flags().BoolVarP(&display, "display", "d", false, "open the report in the default browser")
	analyzeCmd.Flags().StringVar(&databaseURL, "database-url", "", "load from Postgres instead of CSV files (defaults to DATABASE_URL)")
	analyzeCmd.Flags().StringVar(&portfolioName, "portfolio-name", "", "portfolio to load in database mode")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}
	if !cmd.Flags().Changed("limit") {
		chartLimit = cfg.ChartLimit
	}
	switch {
	case usdAmounts:
		currency = "$"
	case eurAmounts:
		currency = "€"
	case !cmd.Flags().Changed("currency"):
		currency = cfg.Currency
	}

	tables, err := staticdata.Load()
	if err != nil {
		return err
	}

	ctx, wc := services.NewWarningContext(cmd.Context())

	var (
		reg       *models.Registry
		portfolio *models.Portfolio
		stem      string
		folder    string
	)
	if len(args) == 2 {
		reg, err = loader.LoadSecurities(args[0], tables)
		if err != nil {
			return err
		}
		portfolio, err = loader.LoadPortfolio(ctx, args[1])
		if err != nil {
			return err
		}
		stem = util.FileStem(args[1])
		folder = util.OutputFolder(args[1], outputFolder)
	} else if databaseURL != "" {
		reg, portfolio, err = loadFromDatabase(ctx)
		if err != nil {
			return err
		}
		stem = portfolioName
		folder = outputFolder
		if folder == "" {
			folder = "."
		}
	} else {
		return fmt.Errorf("need a securities CSV and a portfolio CSV, or --database-url")
	}

	if err := services.DeriveExposures(reg, tables); err != nil {
		return err
	}

	analysis := services.NewAnalysisService(reg)
	results, err := analysis.AnalyzeAll(ctx, portfolio)
	if err != nil {
		return err
	}
	ter, err := analysis.CalculateTER(portfolio)
	if err != nil {
		return err
	}

	report := &models.AnalysisReport{
		PortfolioName: stem,
		Results:       results,
		TER:           ter,
		TotalAmount:   portfolio.TotalAmount,
		Warnings:      wc.GetWarnings(),
	}
	for _, w := range report.Warnings {
		log.Warnf("%s: %s", w.Code, w.Message)
	}

	htmlPath, err := charts.Render(report, charts.Config{
		OutputFolder: folder,
		FileStem:     stem,
		Limit:        chartLimit,
		Currency:     currency,
	})
	if err != nil {
		return err
	}

	if saveImage {
		pngPath := strings.TrimSuffix(htmlPath, ".html") + ".png"
		if err := charts.SaveImage(cmd.Context(), htmlPath, pngPath, imageScale); err != nil {
			return err
		}
	}
	if display {
		if err := browser.OpenFile(htmlPath); err != nil {
			log.Errorf("Failed to open browser: %v", err)
		}
	}
	return nil
}

// loadFromDatabase reads the registry and the named portfolio from Postgres.
func loadFromDatabase(ctx context.Context) (*models.Registry, *models.Portfolio, error) {
	db, err := database.New(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	portfolioRepo := repository.NewPortfolioRepository(db.Pool)
	if portfolioName == "" {
		names, err := portfolioRepo.ListPortfolios(ctx)
		if err == nil && len(names) > 0 {
			return nil, nil, fmt.Errorf("--portfolio-name is required; stored portfolios: %s", strings.Join(names, ", "))
		}
		return nil, nil, fmt.Errorf("--portfolio-name is required")
	}

	reg, err := repository.NewSecurityRepository(db.Pool).LoadRegistry(ctx)
	if err != nil {
		return nil, nil, err
	}
	portfolio, err := portfolioRepo.LoadPortfolio(ctx, portfolioName)
	if err != nil {
		return nil, nil, err
	}
	return reg, portfolio, nil
}
