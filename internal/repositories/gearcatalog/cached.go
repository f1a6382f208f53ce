package gearcatalog

import (
	"context"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

// DefaultCacheTTL is how long resolved pieces stay in memory
const DefaultCacheTTL = 10 * time.Minute

type cachedRepository struct {
	next  Repository
	store *cache.Cache
}

// CachedConfig configures the read-through cache
type CachedConfig struct {
	Repository Repository
	TTL        time.Duration
}

// Validate validates the config
func (cfg *CachedConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Repository == nil {
		return errors.InvalidArgument("repository cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl must not be negative")
	}
	return nil
}

// NewCached wraps a repository with an in-memory read-through cache for
// single-piece lookups. List always reads through.
func NewCached(cfg *CachedConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &cachedRepository{
		next:  cfg.Repository,
		store: cache.New(ttl, 2*ttl),
	}, nil
}

func (r *cachedRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if v, ok := r.store.Get(input.ID); ok {
		return &GetOutput{Piece: clonePiece(v.(*gear.Piece))}, nil
	}

	out, err := r.next.Get(ctx, input)
	if err != nil {
		return nil, err
	}
	r.store.SetDefault(input.ID, clonePiece(out.Piece))
	return out, nil
}

func (r *cachedRepository) ListByIDs(ctx context.Context, input ListByIDsInput) (*ListByIDsOutput, error) {
	pieces := make(map[string]*gear.Piece, len(input.IDs))
	var missing []string
	for _, id := range input.IDs {
		if v, ok := r.store.Get(id); ok {
			pieces[id] = clonePiece(v.(*gear.Piece))
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return &ListByIDsOutput{Pieces: pieces}, nil
	}

	sort.Strings(missing)
	out, err := r.next.ListByIDs(ctx, ListByIDsInput{IDs: missing})
	if err != nil {
		return nil, err
	}
	for id, p := range out.Pieces {
		r.store.SetDefault(id, clonePiece(p))
		pieces[id] = p
	}
	return &ListByIDsOutput{Pieces: pieces}, nil
}

func (r *cachedRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	return r.next.List(ctx, input)
}

func (r *cachedRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	out, err := r.next.Upsert(ctx, input)
	if err != nil {
		return nil, err
	}
	for _, p := range input.Pieces {
		if p != nil {
			r.store.Delete(p.ID)
		}
	}
	return out, nil
}

func clonePiece(p *gear.Piece) *gear.Piece {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
