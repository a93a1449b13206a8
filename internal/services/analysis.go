package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/epeers/exposure/internal/models"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// allocationEpsilon is the tolerance around 100% when judging a dimension's
// resolved total. Shortfalls inside the band get no residual bucket and
// overruns inside it are not treated as malformed data.
const allocationEpsilon = 1e-3

// AnalysisService computes exposure breakdowns and the blended cost ratio
// for a portfolio against a fully built registry. The registry must have
// been through the derivation pass and is treated as read-only here, which
// is what lets AnalyzeAll fan the dimensions out concurrently.
type AnalysisService struct {
	registry *models.Registry
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(registry *models.Registry) *AnalysisService {
	return &AnalysisService{registry: registry}
}

// Analyze resolves every portfolio position for one dimension and merges
// the contributions into a ranked percentage breakdown. A position with an
// unknown ISIN does not abort the pass: unknowns are collected, logged, and
// reported together once every position has been processed, because a
// silently partial breakdown is worse than an explicit failure. Totals
// short of 100% gain a trailing "Unknown" residual entry; totals beyond
// 100% fail as malformed source data.
func (s *AnalysisService) Analyze(ctx context.Context, portfolio *models.Portfolio, dim models.Dimension) (models.ExposureResult, error) {
	defer TrackTime("Analyze "+string(dim), time.Now())

	merged := make(map[string]float64)
	var unknown []string
	for _, isin := range portfolio.ISINs() {
		contribution, err := Resolve(s.registry, dim, isin, portfolio.Weights[isin])
		if err != nil {
			var unknownErr *UnknownSecurityError
			if errors.As(err, &unknownErr) {
				log.Errorf("%s", err)
				unknown = append(unknown, unknownErr.ISIN)
				continue
			}
			return models.ExposureResult{}, err
		}
		if len(contribution) == 0 {
			AddWarning(ctx, models.Warning{
				Code:    models.WarnNoExposureData,
				Message: fmt.Sprintf("position %s contributes no %s exposure", isin, dim),
			})
		}
		for label, weight := range contribution {
			merged[label] += weight
		}
	}
	if len(unknown) > 0 {
		return models.ExposureResult{}, &UnknownSecuritiesError{ISINs: unknown}
	}

	items := make([]models.ExposureItem, 0, len(merged))
	var total float64
	for _, label := range sortedKeys(merged) {
		percentage := merged[label] * 100
		total += percentage
		items = append(items, models.ExposureItem{Label: label, Percentage: percentage})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Percentage > items[j].Percentage
	})

	if total > 100+allocationEpsilon {
		return models.ExposureResult{}, &OverAllocationError{Dimension: dim, Total: total}
	}
	if total < 100-allocationEpsilon {
		residual := 100 - total
		items = append(items, models.ExposureItem{Label: "Unknown", Percentage: residual})
		AddWarning(ctx, models.Warning{
			Code:    models.WarnResidualExposure,
			Message: fmt.Sprintf("%s exposure covers %.2f%%, showing %.2f%% as Unknown", dim, total, residual),
		})
	}
	return models.ExposureResult{Dimension: dim, Items: items}, nil
}

// AnalyzeAll computes the breakdown for every dimension in report order.
// The per-dimension passes share no mutable state, so they run
// concurrently; the first failure cancels the rest.
func (s *AnalysisService) AnalyzeAll(ctx context.Context, portfolio *models.Portfolio) ([]models.ExposureResult, error) {
	defer TrackTime("AnalyzeAll", time.Now())

	dims := models.Dimensions()
	results := make([]models.ExposureResult, len(dims))
	g, ctx := errgroup.WithContext(ctx)
	for i, dim := range dims {
		i, dim := i, dim
		g.Go(func() error {
			result, err := s.Analyze(ctx, portfolio, dim)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CalculateTER returns the portfolio's blended expense ratio as a fraction:
// the weighted sum of each position's cost ratio. Unlike Analyze it fails
// on the first unknown ISIN — a single scalar has no useful partial result.
func (s *AnalysisService) CalculateTER(portfolio *models.Portfolio) (float64, error) {
	defer TrackTime("CalculateTER", time.Now())

	var ter float64
	for _, isin := range portfolio.ISINs() {
		sec := s.registry.Lookup(isin)
		if sec == nil {
			return 0, &UnknownSecurityError{ISIN: isin}
		}
		ter += sec.CostRatio * portfolio.Weights[isin]
	}
	log.Infof("Calculated portfolio TER: %.3f%%", ter*100)
	return ter, nil
}
