package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/epeers/exposure/internal/models"
	"github.com/epeers/exposure/internal/services"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidPosition is wrapped around the collected per-row validation
// failures of a portfolio CSV.
var ErrInvalidPosition = errors.New("invalid portfolio position")

// LoadPortfolio reads a portfolio allocation CSV from disk.
func LoadPortfolio(ctx context.Context, path string) (*models.Portfolio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open portfolio file: %w", err)
	}
	defer f.Close()
	return ParsePortfolioCSV(ctx, f)
}

// ParsePortfolioCSV parses a portfolio allocation CSV. The header decides
// the mode: a Weight column carries percentages (normalized by 100), an
// Amount column carries currency amounts (normalized by their sum, with the
// sum retained as the portfolio's total value). Lines starting with # are
// comments. A duplicate ISIN keeps the first row and warns; a percentage
// above 100 is a row error, collected so every bad row is reported at once.
func ParsePortfolioCSV(ctx context.Context, r io.Reader) (*models.Portfolio, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := colIdx["isin"]; !ok {
		return nil, fmt.Errorf("missing required column: isin")
	}

	var percent bool
	var allocCol string
	if _, ok := colIdx["weight"]; ok {
		percent = true
		allocCol = "weight"
		log.Debug("Portfolio specified as percentage weights")
	} else if _, ok := colIdx["amount"]; ok {
		allocCol = "amount"
		log.Debug("Portfolio specified as currency amounts")
	} else {
		return nil, fmt.Errorf("portfolio header needs a Weight or Amount column")
	}

	p := models.NewPortfolio()
	var rowErrors []string
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		isin := strings.TrimSpace(record[colIdx["isin"]])
		if isin == "" {
			return nil, fmt.Errorf("row %d: ISIN is empty", rowNum)
		}

		allocStr := strings.TrimSpace(record[colIdx[allocCol]])
		alloc, err := strconv.ParseFloat(allocStr, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s %q", rowNum, allocCol, allocStr)
		}

		if percent && alloc > 100 {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: ISIN %s weight %.2f > 100%%", rowNum, isin, alloc))
			continue
		}

		// The first occurrence of an ISIN wins.
		if _, exists := p.Weights[isin]; exists {
			services.AddWarning(ctx, models.Warning{
				Code:    models.WarnDuplicatePosition,
				Message: fmt.Sprintf("row %d: duplicate ISIN %s ignored", rowNum, isin),
			})
			continue
		}
		p.Weights[isin] = alloc
	}

	if len(rowErrors) > 0 {
		for _, e := range rowErrors {
			log.Errorf("%s", e)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidPosition, strings.Join(rowErrors, "; "))
	}

	if percent {
		for isin := range p.Weights {
			p.Weights[isin] /= 100
		}
	} else {
		var total float64
		for _, isin := range p.ISINs() {
			total += p.Weights[isin]
		}
		if total == 0 {
			return nil, fmt.Errorf("portfolio total amount is zero")
		}
		for isin := range p.Weights {
			p.Weights[isin] /= total
		}
		p.TotalAmount = &total
		log.Infof("Portfolio total value %.2f", total)
	}

	log.Infof("Parsed %d positions into portfolio", p.Len())
	return p, nil
}
