package ranking

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	redisclient "github.com/KirkDiggler/raid-planner/internal/redis"
)

const rankingKeyPrefix = "ranking:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the redis ranking repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the config
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a redis-backed ranking repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

// RankingKey returns the key of a group's ranking
func RankingKey(groupID string) string {
	return rankingKeyPrefix + groupID
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.GroupID == "" {
		return nil, errors.InvalidArgument("group ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, RankingKey(input.GroupID)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no priority ranking for group %s", input.GroupID)
		}
		return nil, errors.Wrapf(err, "failed to get ranking for group %s", input.GroupID)
	}

	var rk loot.Ranking
	if err := json.Unmarshal([]byte(raw), &rk); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal ranking for group %s", input.GroupID)
	}
	if rk.Priorities == nil {
		rk.Priorities = loot.PriorityRanking{}
	}
	return &GetOutput{Ranking: &rk}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Ranking == nil {
		return nil, errors.InvalidArgument("ranking cannot be nil")
	}
	if input.Ranking.GroupID == "" {
		return nil, errors.InvalidArgument("group ID cannot be empty")
	}

	data, err := json.Marshal(input.Ranking)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal ranking")
	}
	if err := r.client.Set(ctx, RankingKey(input.Ranking.GroupID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save ranking for group %s", input.Ranking.GroupID)
	}
	return &SaveOutput{Ranking: input.Ranking}, nil
}
