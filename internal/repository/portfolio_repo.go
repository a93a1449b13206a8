package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/epeers/exposure/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// ErrPortfolioNotFound means the named portfolio has no positions stored.
var ErrPortfolioNotFound = errors.New("portfolio not found")

// PortfolioRepository reads portfolio allocations from Postgres.
type PortfolioRepository struct {
	pool *pgxpool.Pool
}

// NewPortfolioRepository creates a new PortfolioRepository
func NewPortfolioRepository(pool *pgxpool.Pool) *PortfolioRepository {
	return &PortfolioRepository{pool: pool}
}

// ListPortfolios returns the stored portfolio names.
func (r *PortfolioRepository) ListPortfolios(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT portfolio
		FROM portfolio_position
		ORDER BY portfolio
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// LoadPortfolio reads the named portfolio's positions. Each row carries
// either a currency amount or a percentage weight; any positive amount puts
// the whole portfolio in amount mode, mirroring the CSV loader's header
// detection. Amounts are normalized by their sum (retained as the total
// value), weights by 100.
func (r *PortfolioRepository) LoadPortfolio(ctx context.Context, name string) (*models.Portfolio, error) {
	query := `
		SELECT isin, amount, weight
		FROM portfolio_position
		WHERE portfolio = $1
		ORDER BY isin
	`
	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio positions: %w", err)
	}
	defer rows.Close()

	p := models.NewPortfolio()
	var amountMode, weightMode bool
	for rows.Next() {
		var isin string
		var amount, weight float64
		if err := rows.Scan(&isin, &amount, &weight); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		if amount > 0 {
			amountMode = true
			p.Weights[isin] = amount
		} else {
			if weight > 100 {
				return nil, fmt.Errorf("portfolio %s: ISIN %s weight %.2f > 100%%", name, isin, weight)
			}
			weightMode = true
			p.Weights[isin] = weight
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read portfolio positions: %w", err)
	}
	if p.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPortfolioNotFound, name)
	}
	if amountMode && weightMode {
		return nil, fmt.Errorf("portfolio %s mixes amount and weight positions", name)
	}

	if amountMode {
		var total float64
		for _, isin := range p.ISINs() {
			total += p.Weights[isin]
		}
		for isin := range p.Weights {
			p.Weights[isin] /= total
		}
		p.TotalAmount = &total
		log.Infof("Portfolio total value %.2f", total)
	} else {
		for isin := range p.Weights {
			p.Weights[isin] /= 100
		}
	}

	log.Infof("Loaded %d positions for portfolio %s", p.Len(), name)
	return p, nil
}
