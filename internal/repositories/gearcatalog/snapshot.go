package gearcatalog

import (
	"context"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
)

// Snapshot resolves every item referenced by the given sets into an
// in-memory catalog the engine can read without touching storage.
// Items missing from the repository are simply absent from the result.
func Snapshot(ctx context.Context, repo Repository, sets ...*gear.Set) (gear.StaticCatalog, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, set := range sets {
		if set == nil {
			continue
		}
		for _, id := range set.Items {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	out, err := repo.ListByIDs(ctx, ListByIDsInput{IDs: ids})
	if err != nil {
		return nil, err
	}

	pieces := make([]*gear.Piece, 0, len(out.Pieces))
	for _, p := range out.Pieces {
		pieces = append(pieces, p)
	}
	return gear.NewStaticCatalog(pieces...), nil
}
