package services

import (
	"context"
	"testing"

	"github.com/epeers/exposure/internal/models"
)

func TestWarningCollector_CollectsInOrder(t *testing.T) {
	ctx, wc := NewWarningContext(context.Background())

	AddWarning(ctx, models.Warning{Code: models.WarnResidualExposure, Message: "first"})
	AddWarning(ctx, models.Warning{Code: models.WarnDuplicatePosition, Message: "second"})

	warnings := wc.GetWarnings()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}
	if warnings[0].Message != "first" || warnings[1].Message != "second" {
		t.Errorf("warnings out of order: %v", warnings)
	}
}

func TestAddWarning_NoCollectorIsNoop(t *testing.T) {
	// Must not panic when the context carries no collector.
	AddWarning(context.Background(), models.Warning{Code: models.WarnResidualExposure, Message: "dropped"})
}
