package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/epeers/exposure/internal/loader"
	"github.com/epeers/exposure/internal/models"
	"github.com/epeers/exposure/internal/services"
	"github.com/epeers/exposure/internal/staticdata"
	"github.com/epeers/exposure/internal/util"
)

// AnalyzeHandler handles exposure analysis endpoints
type AnalyzeHandler struct {
	tables *staticdata.Tables
}

// NewAnalyzeHandler creates a new AnalyzeHandler
func NewAnalyzeHandler(tables *staticdata.Tables) *AnalyzeHandler {
	return &AnalyzeHandler{tables: tables}
}

// Analyze handles POST /analyze
// @Summary Analyze portfolio exposures
// @Description Upload a securities reference CSV and a portfolio allocation CSV, get the portfolio's exposure breakdown per dimension plus its TER and any warnings
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param securities formData file true "Securities reference CSV"
// @Param portfolio formData file true "Portfolio allocation CSV"
// @Success 200 {object} models.AnalysisReport
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	ctx, wc := services.NewWarningContext(c.Request.Context())

	secHeader, err := c.FormFile("securities")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "securities file is required",
		})
		return
	}
	secFile, err := secHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	defer secFile.Close()

	reg, err := loader.ParseSecuritiesCSV(secFile, h.tables)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	portHeader, err := c.FormFile("portfolio")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "portfolio file is required",
		})
		return
	}
	portFile, err := portHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	defer portFile.Close()

	portfolio, err := loader.ParsePortfolioCSV(ctx, portFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	if err := services.DeriveExposures(reg, h.tables); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "unmapped_country",
			Message: err.Error(),
		})
		return
	}

	analysis := services.NewAnalysisService(reg)
	results, err := analysis.AnalyzeAll(ctx, portfolio)
	if err != nil {
		status, code := analysisErrorStatus(err)
		c.JSON(status, models.ErrorResponse{Error: code, Message: err.Error()})
		return
	}

	ter, err := analysis.CalculateTER(portfolio)
	if err != nil {
		log.Errorf("TER calculation failed after analysis succeeded: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, &models.AnalysisReport{
		PortfolioName: util.FileStem(portHeader.Filename),
		Results:       results,
		TER:           ter,
		TotalAmount:   portfolio.TotalAmount,
		Warnings:      wc.GetWarnings(),
	})
}

// analysisErrorStatus maps analysis failures to HTTP statuses: data problems
// in the uploaded files are 422, everything else is 500.
func analysisErrorStatus(err error) (int, string) {
	var unknown *services.UnknownSecuritiesError
	var overAlloc *services.OverAllocationError
	var cyclic *services.CyclicHoldingError
	switch {
	case errors.As(err, &unknown):
		return http.StatusUnprocessableEntity, "unknown_securities"
	case errors.As(err, &overAlloc):
		return http.StatusUnprocessableEntity, "over_allocation"
	case errors.As(err, &cyclic):
		return http.StatusUnprocessableEntity, "cyclic_holdings"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// Dimensions handles GET /dimensions
// @Summary List exposure dimensions
// @Description The dimensions every analysis reports, in report order
// @Tags analysis
// @Produce json
// @Success 200 {object} models.DimensionsResponse
// @Router /dimensions [get]
func (h *AnalyzeHandler) Dimensions(c *gin.Context) {
	c.JSON(http.StatusOK, models.DimensionsResponse{Dimensions: models.Dimensions()})
}
