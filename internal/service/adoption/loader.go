package adoption

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/miaudota/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type petLister interface {
	ListPets(ctx context.Context) ([]domain.Candidate, error)
}

// newPetLoader batches pet lookups by id. The shelter API has no bulk
// lookup, so each batch is served from one catalog listing. Unknown ids
// resolve to nil. Loaders cache results: create one per operation.
func newPetLoader(api petLister) *dataloader.Loader[string, map[string]any] {
	return dataloader.NewBatchedLoader(
		newPetsBatchFn(api),
		dataloader.WithWait[string, map[string]any](wait),
		dataloader.WithBatchCapacity[string, map[string]any](maxBatch),
	)
}

func newPetsBatchFn(api petLister) dataloader.BatchFunc[string, map[string]any] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[map[string]any] {
		pets, err := api.ListPets(ctx)
		if err != nil {
			return errorResults[map[string]any](len(keys), err)
		}

		byID := make(map[string]map[string]any, len(pets))
		for _, p := range pets {
			if p.ID != "" {
				byID[p.ID] = p.Raw
			}
		}

		results := make([]*dataloader.Result[map[string]any], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[map[string]any]{Data: byID[key]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
