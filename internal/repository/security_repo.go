package repository

import (
	"context"
	"fmt"

	"github.com/epeers/exposure/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// SecurityRepository reads securities reference data from Postgres.
type SecurityRepository struct {
	pool *pgxpool.Pool
}

// NewSecurityRepository creates a new SecurityRepository
func NewSecurityRepository(pool *pgxpool.Pool) *SecurityRepository {
	return &SecurityRepository{pool: pool}
}

// LoadRegistry reads every composition row from security_exposure into a
// registry. Each row carries one label of one dimension and rows sharing an
// ISIN merge, like continuation rows in the CSV loader. TER is stored as a
// fraction (0.0022 for 0.22% a year), not a percentage.
func (r *SecurityRepository) LoadRegistry(ctx context.Context) (*models.Registry, error) {
	query := `
		SELECT isin, name, ter, dimension, label, weight
		FROM security_exposure
		ORDER BY isin, dimension, label
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query security exposures: %w", err)
	}
	defer rows.Close()

	reg := models.NewRegistry()
	for rows.Next() {
		var isin, name, dimension, label string
		var ter, weight float64
		if err := rows.Scan(&isin, &name, &ter, &dimension, &label, &weight); err != nil {
			return nil, fmt.Errorf("failed to scan exposure row: %w", err)
		}

		rec := models.NewSecurity(isin)
		rec.Name = name
		rec.CostRatio = ter
		if dimension != "" && label != "" && weight > 0 {
			dim, err := models.ParseDimension(dimension)
			if err != nil {
				return nil, fmt.Errorf("security %s: %w", isin, err)
			}
			rec.Exposure(dim)[label] = weight
		}
		reg.Merge(rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read security exposures: %w", err)
	}

	log.Infof("Loaded %d securities from database", reg.Len())
	return reg, nil
}
