package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/epeers/exposure/internal/models"
	"github.com/epeers/exposure/internal/staticdata"
)

const testSecuritiesCSV = `ISIN,Name,Ticker,TER,Holding,HoldingWeight,Sector,SectorWeight,Country,CountryWeight,Region,RegionWeight
IE00EQUITY01,Tech Equity Fund,TEQ,0.07,Apple,60,Technology,100,United States,100,,
IE00FUND0005,Wrapper Fund,WRP,0.15,IE00EQUITY01,100,,,,,,
`

const testPortfolioCSV = `ISIN,Weight
IE00FUND0005,50
IE00EQUITY01,50
`

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tables, err := staticdata.Load()
	if err != nil {
		t.Fatalf("staticdata.Load failed: %v", err)
	}
	return NewRouter(tables)
}

// buildAnalyzeRequest builds a POST /analyze request with multipart file
// parts for the securities and portfolio CSVs. An empty content string
// omits that part.
func buildAnalyzeRequest(t *testing.T, securities, portfolio string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if securities != "" {
		part, err := writer.CreateFormFile("securities", "securities.csv")
		if err != nil {
			t.Fatalf("failed to create securities part: %v", err)
		}
		if _, err := part.Write([]byte(securities)); err != nil {
			t.Fatalf("failed to write securities content: %v", err)
		}
	}
	if portfolio != "" {
		part, err := writer.CreateFormFile("portfolio", "retirement.csv")
		if err != nil {
			t.Fatalf("failed to create portfolio part: %v", err)
		}
		if _, err := part.Write([]byte(portfolio)); err != nil {
			t.Fatalf("failed to write portfolio content: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest("POST", "/analyze", &buf)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAnalyzeEndpoint_FullReport(t *testing.T) {
	router := setupRouter(t)

	req := buildAnalyzeRequest(t, testSecuritiesCSV, testPortfolioCSV)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var report models.AnalysisReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if report.PortfolioName != "retirement" {
		t.Errorf("expected portfolio name from the uploaded file, got %q", report.PortfolioName)
	}
	if len(report.Results) != len(models.Dimensions()) {
		t.Fatalf("expected %d dimension results, got %d", len(models.Dimensions()), len(report.Results))
	}
	if report.Results[0].Dimension != models.DimensionHolding {
		t.Errorf("results should follow report order, first was %s", report.Results[0].Dimension)
	}

	// 50% wrapper (0.15%) + 50% equity fund (0.07%).
	if math.Abs(report.TER-0.0011) > 1e-9 {
		t.Errorf("expected TER 0.0011, got %v", report.TER)
	}

	for _, result := range report.Results {
		if result.Dimension != models.DimensionSector {
			continue
		}
		if len(result.Items) != 1 || result.Items[0].Label != "Technology" {
			t.Fatalf("unexpected sector breakdown %v", result.Items)
		}
		if math.Abs(result.Items[0].Percentage-100) > 1e-9 {
			t.Errorf("expected full technology exposure, got %v", result.Items[0].Percentage)
		}
	}

	// The wrapper's look-through only covers 60% of holdings, so the
	// Holding dimension carries a residual warning.
	if len(report.Warnings) != 1 || report.Warnings[0].Code != models.WarnResidualExposure {
		t.Errorf("expected a single residual warning, got %v", report.Warnings)
	}
}

func TestAnalyzeEndpoint_UnknownSecurities(t *testing.T) {
	router := setupRouter(t)

	portfolio := "ISIN,Weight\nXX0000000000,100\n"
	req := buildAnalyzeRequest(t, testSecuritiesCSV, portfolio)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != "unknown_securities" {
		t.Errorf("expected unknown_securities, got %q", resp.Error)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("XX0000000000")) {
		t.Errorf("expected the unknown ISIN in the message, got %q", resp.Message)
	}
}

func TestAnalyzeEndpoint_MissingPortfolioFile(t *testing.T) {
	router := setupRouter(t)

	req := buildAnalyzeRequest(t, testSecuritiesCSV, "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAnalyzeEndpoint_MalformedSecuritiesCSV(t *testing.T) {
	router := setupRouter(t)

	req := buildAnalyzeRequest(t, "ISIN,Name\nIE00EQUITY01,Broken\n", testPortfolioCSV)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDimensionsEndpoint(t *testing.T) {
	router := setupRouter(t)

	req, _ := http.NewRequest("GET", "/dimensions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp models.DimensionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Dimensions) != 5 || resp.Dimensions[0] != models.DimensionHolding {
		t.Errorf("unexpected dimensions %v", resp.Dimensions)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"status":"ok"`)) {
		t.Errorf("unexpected health body %s", w.Body.String())
	}
}
