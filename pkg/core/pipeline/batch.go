package pipeline

import (
	"context"
	"log"

	"github.com/Zareef13/Partly-MVP-V1/pkg/models"
)

// BatchItem is one row of a batch ingest, already resolved to (mpn,
// manufacturer) by the external spreadsheet adapter.
type BatchItem struct {
	MPN          string
	Manufacturer string
}

// BatchOutcome pairs one BatchItem with its FinalResult, or the
// propagating error that aborted just that item. A per-MPN failure never
// aborts the rest of the batch.
type BatchOutcome struct {
	Item   BatchItem
	Result models.FinalResult
	Err    error
}

// RunBatch processes items serially. A per-MPN error is logged and the
// loop continues; it is never returned from RunBatch itself.
func (o *Orchestrator) RunBatch(ctx context.Context, items []BatchItem) []BatchOutcome {
	outcomes := make([]BatchOutcome, 0, len(items))

	for _, item := range items {
		if item.MPN == "" {
			continue
		}

		result, err := o.RunForProduct(ctx, item.MPN, item.Manufacturer)
		if err != nil {
			log.Printf("[batch] %s failed: %v", item.MPN, err)
			outcomes = append(outcomes, BatchOutcome{Item: item, Err: err})
			continue
		}

		outcomes = append(outcomes, BatchOutcome{Item: item, Result: result})
	}

	return outcomes
}
