package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/epeers/exposure/internal/models"
	"github.com/epeers/exposure/internal/staticdata"
	log "github.com/sirupsen/logrus"
)

// securitiesColumns is the required header of a securities reference CSV.
// Each row carries one composition entry per dimension; consecutive rows
// with a blank ISIN continue the previous security.
var securitiesColumns = []string{
	"isin", "name", "ticker", "ter",
	"holding", "holdingweight",
	"sector", "sectorweight",
	"country", "countryweight",
	"region", "regionweight",
}

// LoadSecurities reads a securities reference CSV from disk into a registry.
func LoadSecurities(path string, tables *staticdata.Tables) (*models.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open securities file: %w", err)
	}
	defer f.Close()
	return ParseSecuritiesCSV(f, tables)
}

// ParseSecuritiesCSV parses securities reference rows into a registry.
// Weight cells are percentages and become fractions; absent or unparsable
// numbers count as zero and zero-weight entries are not recorded. Sector
// labels are canonicalized against the static tables — an unknown label is
// a fatal load error. The TER column is a percentage too (0.22 meaning
// 0.22% a year) and is stored as a fraction.
func ParseSecuritiesCSV(r io.Reader, tables *staticdata.Tables) (*models.Registry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range securitiesColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	reg := models.NewRegistry()
	var lastISIN string
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

		field := func(col string) string {
			return strings.TrimSpace(record[colIdx[col]])
		}

		// Blank ISIN cells inherit the previous row's ISIN.
		isin := field("isin")
		if isin == "" {
			isin = lastISIN
		} else {
			lastISIN = isin
		}
		if isin == "" {
			return nil, fmt.Errorf("row %d: blank ISIN with no previous row to continue", rowNum)
		}

		sector, err := tables.CanonicalSector(field("sector"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		rec := models.NewSecurity(isin)
		rec.Name = field("name")
		rec.CostRatio = parseWeight(field("ter"))
		addEntry(rec.Holding, field("holding"), parseWeight(field("holdingweight")))
		addEntry(rec.Sector, sector, parseWeight(field("sectorweight")))
		addEntry(rec.Country, field("country"), parseWeight(field("countryweight")))
		addEntry(rec.Region, field("region"), parseWeight(field("regionweight")))
		reg.Merge(rec)
	}

	log.Infof("Parsed %d securities into registry", reg.Len())
	return reg, nil
}

// parseWeight converts a percentage cell to a weight fraction. Absent or
// unparsable cells count as zero.
func parseWeight(cell string) float64 {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0
	}
	return v / 100
}

func addEntry(m map[string]float64, label string, weight float64) {
	if label == "" || weight <= 0 {
		return
	}
	m[label] = weight
}
